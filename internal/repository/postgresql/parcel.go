package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"parcelverge/internal/db"
	"parcelverge/internal/repository"
	"parcelverge/internal/storage"
)

type ParcelRepo struct {
	db db.DB
}

func NewParcelRepo(db db.DB) storage.ParcelRepository {
	return &ParcelRepo{db: db}
}

func (r *ParcelRepo) Create(ctx context.Context, parcel *repository.Parcel) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO parcels (
            id, name, email, phone_number, parcel_type, parcel_weight,
            receiver_name, receiver_phone_number, parcel_delivery_address,
            delivery_address_latitude, delivery_address_longitude,
            requested_delivery_date, price, booking_date, status,
            delivery_person_id, approximate_delivery_date, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
    `, parcel.ID, parcel.Name, parcel.Email, parcel.PhoneNumber, parcel.ParcelType, parcel.ParcelWeight,
		parcel.ReceiverName, parcel.ReceiverPhoneNumber, parcel.ParcelDeliveryAddress,
		parcel.DeliveryAddressLatitude, parcel.DeliveryAddressLongitude,
		parcel.RequestedDeliveryDate, parcel.Price, parcel.BookingDate, parcel.Status,
		parcel.DeliveryPersonID, parcel.ApproximateDeliveryDate, parcel.CreatedAt, parcel.UpdatedAt)
	return err
}

func (r *ParcelRepo) GetByID(ctx context.Context, id string) (*repository.Parcel, error) {
	var parcel repository.Parcel
	err := r.db.Get(ctx, &parcel, "SELECT * FROM parcels WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &parcel, nil
}

// GetByEmail returns the sender's bookings newest first. The secondary id key
// keeps the order stable when two rows share a created_at.
func (r *ParcelRepo) GetByEmail(ctx context.Context, email string) ([]*repository.Parcel, error) {
	var parcels []*repository.Parcel
	err := r.db.Select(ctx, &parcels, `
        SELECT * FROM parcels
        WHERE email = $1
        ORDER BY created_at DESC, id DESC
    `, email)
	return parcels, err
}

// GetFiltered applies the optional date range (inclusive on both ends) and
// assignee filter. Empty arguments leave that dimension unconstrained.
func (r *ParcelRepo) GetFiltered(ctx context.Context, fromDate, toDate, deliveryPersonID string) ([]*repository.Parcel, error) {
	query := "SELECT * FROM parcels WHERE 1=1"
	args := []interface{}{}

	if fromDate != "" {
		args = append(args, fromDate)
		query += fmt.Sprintf(" AND requested_delivery_date >= $%d", len(args))
	}
	if toDate != "" {
		args = append(args, toDate)
		query += fmt.Sprintf(" AND requested_delivery_date <= $%d", len(args))
	}
	if deliveryPersonID != "" {
		args = append(args, deliveryPersonID)
		query += fmt.Sprintf(" AND delivery_person_id = $%d", len(args))
	}

	query += " ORDER BY created_at DESC, id DESC"

	var parcels []*repository.Parcel
	err := r.db.Select(ctx, &parcels, query, args...)
	return parcels, err
}

func (r *ParcelRepo) Update(ctx context.Context, parcel *repository.Parcel) (int64, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE parcels
        SET
            name = $1,
            email = $2,
            phone_number = $3,
            parcel_type = $4,
            parcel_weight = $5,
            receiver_name = $6,
            receiver_phone_number = $7,
            parcel_delivery_address = $8,
            delivery_address_latitude = $9,
            delivery_address_longitude = $10,
            requested_delivery_date = $11,
            price = $12,
            booking_date = $13,
            status = $14,
            updated_at = $15
        WHERE id = $16
    `, parcel.Name, parcel.Email, parcel.PhoneNumber, parcel.ParcelType, parcel.ParcelWeight,
		parcel.ReceiverName, parcel.ReceiverPhoneNumber, parcel.ParcelDeliveryAddress,
		parcel.DeliveryAddressLatitude, parcel.DeliveryAddressLongitude,
		parcel.RequestedDeliveryDate, parcel.Price, parcel.BookingDate, parcel.Status,
		parcel.UpdatedAt, parcel.ID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *ParcelRepo) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE parcels
        SET status = $1, updated_at = $2
        WHERE id = $3
    `, status, updatedAt, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Assign writes the assignment triple in one statement so a reader never sees
// a parcel with an assignee but no approximate date.
func (r *ParcelRepo) Assign(ctx context.Context, id, deliveryPersonID, approximateDate, status string, updatedAt time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE parcels
        SET status = $1, delivery_person_id = $2, approximate_delivery_date = $3, updated_at = $4
        WHERE id = $5
    `, status, deliveryPersonID, approximateDate, updatedAt, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *ParcelRepo) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM parcels WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *ParcelRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.ExecQueryRow(ctx, "SELECT COUNT(*) FROM parcels").Scan(&count)
	return count, err
}

func (r *ParcelRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.ExecQueryRow(ctx, "SELECT COUNT(*) FROM parcels WHERE status = $1", status).Scan(&count)
	return count, err
}

func (r *ParcelRepo) CountsByBookingDate(ctx context.Context) ([]*repository.DateCount, error) {
	var buckets []*repository.DateCount
	err := r.db.Select(ctx, &buckets, `
        SELECT to_char(booking_date, 'YYYY-MM-DD') AS date, COUNT(*) AS count
        FROM parcels
        GROUP BY 1
        ORDER BY 1 ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings by date: %w", err)
	}
	return buckets, nil
}

// CountsByDeliveryPerson groups bookings by assignee, skipping unassigned
// rows. Ties on the booking count break on the assignee id so the ranking is
// deterministic.
func (r *ParcelRepo) CountsByDeliveryPerson(ctx context.Context, limit int) ([]*repository.DeliveryPersonCount, error) {
	var counts []*repository.DeliveryPersonCount
	err := r.db.Select(ctx, &counts, `
        SELECT delivery_person_id, COUNT(*) AS count
        FROM parcels
        WHERE delivery_person_id IS NOT NULL
        GROUP BY delivery_person_id
        ORDER BY count DESC, delivery_person_id ASC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings by delivery person: %w", err)
	}
	return counts, nil
}
