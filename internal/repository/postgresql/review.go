package postgresql

import (
	"context"
	"fmt"

	"parcelverge/internal/db"
	"parcelverge/internal/repository"
	"parcelverge/internal/storage"
)

type ReviewRepo struct {
	db db.DB
}

func NewReviewRepo(db db.DB) storage.ReviewRepository {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) Create(ctx context.Context, review *repository.Review) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO reviews (id, delivery_person_id, rating, content, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, review.ID, review.DeliveryPersonID, review.Rating, review.Content, review.CreatedAt)
	return err
}

func (r *ReviewRepo) GetByDeliveryPerson(ctx context.Context, deliveryPersonID string) ([]*repository.Review, error) {
	var reviews []*repository.Review
	err := r.db.Select(ctx, &reviews, `
        SELECT * FROM reviews
        WHERE delivery_person_id = $1
        ORDER BY created_at DESC, id DESC
    `, deliveryPersonID)
	return reviews, err
}

// Average returns the mean rating for a delivery person, 0 when they have no
// reviews yet.
func (r *ReviewRepo) Average(ctx context.Context, deliveryPersonID string) (float64, error) {
	var avg float64
	err := r.db.ExecQueryRow(ctx, `
        SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE delivery_person_id = $1
    `, deliveryPersonID).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("failed to average reviews: %w", err)
	}
	return avg, nil
}

func (r *ReviewRepo) GetAll(ctx context.Context) ([]*repository.Review, error) {
	var reviews []*repository.Review
	err := r.db.Select(ctx, &reviews, "SELECT * FROM reviews ORDER BY created_at DESC, id DESC")
	return reviews, err
}
