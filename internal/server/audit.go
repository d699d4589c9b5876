package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"parcelverge/internal/repository"
	"parcelverge/internal/storage"
)

type AuditLogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Handler    string    `json:"handler"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	UserEmail  string    `json:"user_email,omitempty"`
	ParcelID   string    `json:"parcel_id,omitempty"`
	OldStatus  string    `json:"old_status,omitempty"`
	NewStatus  string    `json:"new_status,omitempty"`
	Request    string    `json:"request,omitempty"`
	Response   string    `json:"response,omitempty"`
}

// AuditSink receives flushed audit batches.
type AuditSink interface {
	WriteBatch(ctx context.Context, batch []AuditLogEntry) error
}

// OutboxSink stages audit entries as outbox tasks; the Kafka publisher picks
// them up asynchronously. Dropping an entry on a failed insert is acceptable
// for audit data, it is logged by the manager.
type OutboxSink struct {
	tasks storage.OutboxTaskRepository
	topic string
}

func NewOutboxSink(tasks storage.OutboxTaskRepository, topic string) *OutboxSink {
	return &OutboxSink{tasks: tasks, topic: topic}
}

func (s *OutboxSink) WriteBatch(ctx context.Context, batch []AuditLogEntry) error {
	for _, entry := range batch {
		payload, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal audit entry: %w", err)
		}
		task := &repository.OutboxTask{
			Payload: payload,
			Topic:   s.topic,
		}
		if err := s.tasks.Create(ctx, task); err != nil {
			return fmt.Errorf("failed to stage audit entry: %w", err)
		}
	}
	return nil
}

// LogSink writes batches straight to the logger. Used when no database-backed
// sink is wired, for example in tests.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) WriteBatch(_ context.Context, batch []AuditLogEntry) error {
	for _, entry := range batch {
		s.logger.Info("audit entry",
			zap.String("handler", entry.Handler),
			zap.String("method", entry.Method),
			zap.String("path", entry.Path),
			zap.Int("status_code", entry.StatusCode),
			zap.String("user_email", entry.UserEmail),
		)
	}
	return nil
}
