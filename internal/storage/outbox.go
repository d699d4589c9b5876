package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"parcelverge/internal/db"
	"parcelverge/internal/repository"
)

//go:generate mockgen -source ./outbox.go -destination=./mocks/outbox.go -package=mock_storage

type OutboxTaskRepository interface {
	Create(ctx context.Context, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, tx db.Tx, limit, maxAttempts int) ([]*repository.OutboxTask, error)
	UpdateTaskStatus(ctx context.Context, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}
