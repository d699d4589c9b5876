package postgresql

import (
	"context"

	"parcelverge/internal/db"
	"parcelverge/internal/repository"
	"parcelverge/internal/storage"
)

type HistoryRepo struct {
	db db.DB
}

func NewHistoryRepo(db db.DB) storage.HistoryRepository {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) Create(ctx context.Context, entry *repository.StatusHistoryEntry) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO parcel_status_history (parcel_id, status, changed_at)
        VALUES ($1, $2, $3)
    `, entry.ParcelID, entry.Status, entry.ChangedAt)
	return err
}

func (r *HistoryRepo) GetByParcelID(ctx context.Context, parcelID string) ([]*repository.StatusHistoryEntry, error) {
	var entries []*repository.StatusHistoryEntry
	err := r.db.Select(ctx, &entries, `
        SELECT * FROM parcel_status_history
        WHERE parcel_id = $1
        ORDER BY changed_at ASC, id ASC
    `, parcelID)
	return entries, err
}
