package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"parcelverge/internal/db"
	"parcelverge/internal/repository"
	"parcelverge/internal/storage"
)

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) storage.UserRepository {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *repository.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, email, name, phone_number, image_url, role, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, user.ID, user.Email, user.Name, user.PhoneNumber, user.ImageURL, user.Role, user.CreatedAt)
	return err
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE email = $1", email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) UpdateRole(ctx context.Context, id, role string) (int64, error) {
	tag, err := r.db.Exec(ctx, "UPDATE users SET role = $1 WHERE id = $2", role, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.ExecQueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]*repository.User, error) {
	var users []*repository.User
	err := r.db.Select(ctx, &users, `
        SELECT * FROM users
        WHERE role = $1
        ORDER BY created_at ASC, id ASC
    `, role)
	return users, err
}

// SpendSummaries joins every user with their bookings by email. Users with no
// bookings appear with zero totals.
func (r *UserRepo) SpendSummaries(ctx context.Context) ([]*repository.UserSpend, error) {
	var summaries []*repository.UserSpend
	err := r.db.Select(ctx, &summaries, `
        SELECT
            u.id,
            u.email,
            u.name,
            u.phone_number,
            u.image_url,
            u.role,
            COUNT(p.id) AS number_of_bookings,
            COALESCE(SUM(p.price), 0) AS total_spent
        FROM users u
        LEFT JOIN parcels p ON p.email = u.email
        GROUP BY u.id, u.email, u.name, u.phone_number, u.image_url, u.role
        ORDER BY u.created_at ASC, u.id ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate user spend: %w", err)
	}
	return summaries, nil
}
