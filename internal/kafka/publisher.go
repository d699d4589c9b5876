package kafka

import (
	"context"
	"time"

	"go.uber.org/zap"

	"parcelverge/internal/db"
	"parcelverge/internal/repository"
	"parcelverge/internal/storage"
)

const (
	pollInterval = 2 * time.Second
	batchSize    = 100
	maxAttempts  = 3
)

// Publisher drains the outbox table into Kafka. Tasks are claimed inside a
// transaction with SKIP LOCKED, so several publishers can run side by side
// without double-sending; a crash between claim and publish leaves the task
// in PROCESSING until its row is retried as FAILED by an operator or the
// attempts budget.
type Publisher struct {
	db       db.DB
	tasks    storage.OutboxTaskRepository
	producer Producer
	logger   *zap.Logger
}

func NewPublisher(database db.DB, tasks storage.OutboxTaskRepository, producer Producer, logger *zap.Logger) *Publisher {
	return &Publisher{
		db:       database,
		tasks:    tasks,
		producer: producer,
		logger:   logger,
	}
}

// Run polls until the context is cancelled.
func (p *Publisher) Run(ctx context.Context) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.processBatch(ctx); err != nil {
				p.logger.Error("outbox batch failed", zap.Error(err))
			}
		}
	}
}

func (p *Publisher) processBatch(ctx context.Context) error {
	tasks, err := p.claimBatch(ctx)
	if err != nil {
		return err
	}

	for _, task := range tasks {
		p.publishTask(ctx, task)
	}
	return nil
}

func (p *Publisher) claimBatch(ctx context.Context) ([]*repository.OutboxTask, error) {
	tx, err := p.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	tasks, err := p.tasks.GetProcessableTasks(ctx, tx, batchSize, maxAttempts)
	if err != nil {
		return nil, err
	}

	for _, task := range tasks {
		err = p.tasks.UpdateTaskStatusTx(ctx, tx, task.ID, repository.TaskStatusProcessing, task.Attempts+1, task.LastError, nil)
		if err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (p *Publisher) publishTask(ctx context.Context, task *repository.OutboxTask) {
	attempts := task.Attempts + 1

	if err := p.producer.Publish(ctx, task.Topic, []byte(task.ID.String()), task.Payload); err != nil {
		p.logger.Warn("publish failed",
			zap.String("task_id", task.ID.String()),
			zap.Int("attempts", attempts),
			zap.Error(err),
		)
		errMsg := err.Error()
		if updateErr := p.tasks.UpdateTaskStatus(ctx, task.ID, repository.TaskStatusFailed, attempts, &errMsg, nil); updateErr != nil {
			p.logger.Error("failed to mark outbox task failed", zap.String("task_id", task.ID.String()), zap.Error(updateErr))
		}
		return
	}

	now := time.Now().UTC()
	if err := p.tasks.UpdateTaskStatus(ctx, task.ID, repository.TaskStatusDone, attempts, nil, &now); err != nil {
		p.logger.Error("failed to mark outbox task done", zap.String("task_id", task.ID.String()), zap.Error(err))
	}
}
