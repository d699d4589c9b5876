package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"parcelverge/internal/cache"
	"parcelverge/internal/repository"
)

//go:generate mockgen -source ./storage.go -destination=./mocks/repositories.go -package=mock_storage

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("not found")

type ParcelRepository interface {
	Create(ctx context.Context, parcel *repository.Parcel) error
	GetByID(ctx context.Context, id string) (*repository.Parcel, error)
	GetByEmail(ctx context.Context, email string) ([]*repository.Parcel, error)
	GetFiltered(ctx context.Context, fromDate, toDate, deliveryPersonID string) ([]*repository.Parcel, error)
	Update(ctx context.Context, parcel *repository.Parcel) (int64, error)
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) (int64, error)
	Assign(ctx context.Context, id, deliveryPersonID, approximateDate, status string, updatedAt time.Time) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountsByBookingDate(ctx context.Context) ([]*repository.DateCount, error)
	CountsByDeliveryPerson(ctx context.Context, limit int) ([]*repository.DeliveryPersonCount, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *repository.User) error
	GetByEmail(ctx context.Context, email string) (*repository.User, error)
	GetByID(ctx context.Context, id string) (*repository.User, error)
	UpdateRole(ctx context.Context, id, role string) (int64, error)
	Count(ctx context.Context) (int64, error)
	ListByRole(ctx context.Context, role string) ([]*repository.User, error)
	SpendSummaries(ctx context.Context) ([]*repository.UserSpend, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *repository.Review) error
	GetByDeliveryPerson(ctx context.Context, deliveryPersonID string) ([]*repository.Review, error)
	Average(ctx context.Context, deliveryPersonID string) (float64, error)
	GetAll(ctx context.Context) ([]*repository.Review, error)
}

type HistoryRepository interface {
	Create(ctx context.Context, entry *repository.StatusHistoryEntry) error
	GetByParcelID(ctx context.Context, parcelID string) ([]*repository.StatusHistoryEntry, error)
}

// PostgresStorage composes the parcel, user and review stores over their
// repositories. Every operation is atomic at the single-row level only; there
// are no cross-row transactions in the booking path.
type PostgresStorage struct {
	parcels  ParcelRepository
	users    UserRepository
	reviews  ReviewRepository
	history  HistoryRepository
	profiles *cache.ProfileCache
}

func NewPostgresStorage(
	parcels ParcelRepository,
	users UserRepository,
	reviews ReviewRepository,
	history HistoryRepository,
	profiles *cache.ProfileCache,
) *PostgresStorage {
	return &PostgresStorage{
		parcels:  parcels,
		users:    users,
		reviews:  reviews,
		history:  history,
		profiles: profiles,
	}
}

// BookParcel inserts a new booking. The caller-supplied status and assignment
// are ignored: every booking starts Pending and unassigned.
func (s *PostgresStorage) BookParcel(ctx context.Context, parcel Parcel) (*Parcel, error) {
	now := time.Now().UTC()

	parcel.ID = uuid.New().String()
	parcel.Status = StatusPending
	parcel.DeliveryPersonID = nil
	parcel.ApproximateDeliveryDate = nil
	if parcel.BookingDate.IsZero() {
		parcel.BookingDate = now
	}

	row := toRepoParcel(&parcel)
	row.CreatedAt = now
	row.UpdatedAt = now

	if err := s.parcels.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to book parcel: %w", err)
	}

	if err := s.recordStatus(ctx, parcel.ID, StatusPending, now); err != nil {
		return nil, err
	}

	return &parcel, nil
}

func (s *PostgresStorage) GetParcel(ctx context.Context, id string) (*Parcel, error) {
	row, err := s.parcels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get parcel: %w", err)
	}
	parcel := toDomainParcel(row)
	return &parcel, nil
}

func (s *PostgresStorage) ListParcelsByEmail(ctx context.Context, email string) ([]Parcel, error) {
	rows, err := s.parcels.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels: %w", err)
	}
	return toDomainParcels(rows), nil
}

func (s *PostgresStorage) FilterParcels(ctx context.Context, filter ParcelFilter) ([]Parcel, error) {
	rows, err := s.parcels.GetFiltered(ctx, filter.FromDate, filter.ToDate, filter.DeliveryPersonID)
	if err != nil {
		return nil, fmt.Errorf("failed to filter parcels: %w", err)
	}
	return toDomainParcels(rows), nil
}

// ReplaceParcel overwrites the editable field set of a booking. A missing id
// creates a new record under that id (create-or-replace, as the original API
// promised its callers). Assignment fields are never touched here.
func (s *PostgresStorage) ReplaceParcel(ctx context.Context, id string, parcel Parcel) (UpdateResult, error) {
	now := time.Now().UTC()
	parcel.ID = id

	existing, err := s.parcels.GetByID(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
		return UpdateResult{}, fmt.Errorf("failed to load parcel for update: %w", err)
	}

	if existing == nil {
		parcel.DeliveryPersonID = nil
		parcel.ApproximateDeliveryDate = nil
		if parcel.BookingDate.IsZero() {
			parcel.BookingDate = now
		}
		row := toRepoParcel(&parcel)
		row.CreatedAt = now
		row.UpdatedAt = now
		if err := s.parcels.Create(ctx, row); err != nil {
			return UpdateResult{}, fmt.Errorf("failed to upsert parcel: %w", err)
		}
		if err := s.recordStatus(ctx, id, parcel.Status, now); err != nil {
			return UpdateResult{}, err
		}
		return UpdateResult{UpsertedID: &id}, nil
	}

	row := toRepoParcel(&parcel)
	row.UpdatedAt = now
	modified, err := s.parcels.Update(ctx, row)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to update parcel: %w", err)
	}

	if existing.Status != string(parcel.Status) {
		if err := s.recordStatus(ctx, id, parcel.Status, now); err != nil {
			return UpdateResult{}, err
		}
	}

	return UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
}

// UpdateParcelStatus writes the status without checking the transition: the
// lifecycle is permissive by contract and concurrent writers race
// last-write-wins.
func (s *PostgresStorage) UpdateParcelStatus(ctx context.Context, id string, status Status) (UpdateResult, error) {
	now := time.Now().UTC()
	matched, err := s.parcels.UpdateStatus(ctx, id, string(status), now)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to update parcel status: %w", err)
	}
	if matched == 0 {
		return UpdateResult{}, nil
	}
	if err := s.recordStatus(ctx, id, status, now); err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{MatchedCount: matched, ModifiedCount: matched}, nil
}

// AssignParcel sets the assignment triple in one write: a booking never holds
// a delivery person without an approximate date, or vice versa.
func (s *PostgresStorage) AssignParcel(ctx context.Context, id, deliveryPersonID, approximateDate string, status Status) (UpdateResult, error) {
	now := time.Now().UTC()
	matched, err := s.parcels.Assign(ctx, id, deliveryPersonID, approximateDate, string(status), now)
	if err != nil {
		return UpdateResult{}, fmt.Errorf("failed to assign parcel: %w", err)
	}
	if matched == 0 {
		return UpdateResult{}, nil
	}
	if err := s.recordStatus(ctx, id, status, now); err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{MatchedCount: matched, ModifiedCount: matched}, nil
}

// DeleteParcel removes a booking unconditionally. Deliberately no status
// guard: cancellation policy for assigned bookings is an open product
// question and the API has always allowed this.
func (s *PostgresStorage) DeleteParcel(ctx context.Context, id string) (DeleteResult, error) {
	deleted, err := s.parcels.Delete(ctx, id)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("failed to delete parcel: %w", err)
	}
	return DeleteResult{DeletedCount: deleted}, nil
}

func (s *PostgresStorage) CountParcels(ctx context.Context) (int64, error) {
	return s.parcels.Count(ctx)
}

func (s *PostgresStorage) ParcelCounts(ctx context.Context) (ParcelCounts, error) {
	total, err := s.parcels.Count(ctx)
	if err != nil {
		return ParcelCounts{}, fmt.Errorf("failed to count parcels: %w", err)
	}
	delivered, err := s.parcels.CountByStatus(ctx, string(StatusDelivered))
	if err != nil {
		return ParcelCounts{}, fmt.Errorf("failed to count delivered parcels: %w", err)
	}
	return ParcelCounts{TotalParcels: total, DeliveredParcels: delivered}, nil
}

func (s *PostgresStorage) ParcelHistory(ctx context.Context, id string) ([]StatusChange, error) {
	entries, err := s.history.GetByParcelID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcel history: %w", err)
	}
	changes := make([]StatusChange, 0, len(entries))
	for _, entry := range entries {
		changes = append(changes, StatusChange{
			ParcelID:  entry.ParcelID,
			Status:    Status(entry.Status),
			ChangedAt: entry.ChangedAt,
		})
	}
	return changes, nil
}

// RegisterUser inserts the user unless the email is already taken, in which
// case the existing record is returned untouched. Registration is idempotent
// by email.
func (s *PostgresStorage) RegisterUser(ctx context.Context, user User) (RegisterResult, error) {
	existing, err := s.users.GetByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
		return RegisterResult{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		domain := toDomainUser(existing)
		return RegisterResult{Created: false, User: &domain}, nil
	}

	user.ID = uuid.New().String()
	if user.Role == "" {
		user.Role = RoleCustomer
	}

	row := toRepoUser(&user)
	row.CreatedAt = time.Now().UTC()
	if err := s.users.Create(ctx, row); err != nil {
		return RegisterResult{}, fmt.Errorf("failed to register user: %w", err)
	}
	return RegisterResult{Created: true, InsertedID: user.ID, User: &user}, nil
}

func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	row, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user := toDomainUser(row)
	return &user, nil
}

func (s *PostgresStorage) GetUserByID(ctx context.Context, id string) (*User, error) {
	row, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user := toDomainUser(row)
	return &user, nil
}

func (s *PostgresStorage) PromoteToDeliveryPerson(ctx context.Context, id string) error {
	matched, err := s.users.UpdateRole(ctx, id, RoleDeliveryPerson)
	if err != nil {
		return fmt.Errorf("failed to promote user: %w", err)
	}
	if matched == 0 {
		return ErrNotFound
	}
	// The cached profile is stale after a role change.
	s.profiles.Delete(id)
	return nil
}

func (s *PostgresStorage) CountUsers(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

func (s *PostgresStorage) ListDeliveryPersons(ctx context.Context) ([]User, error) {
	rows, err := s.users.ListByRole(ctx, RoleDeliveryPerson)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery persons: %w", err)
	}
	users := make([]User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toDomainUser(row))
	}
	return users, nil
}

// AddReview inserts a review. There is no uniqueness rule: a customer may
// review the same delivery person more than once.
func (s *PostgresStorage) AddReview(ctx context.Context, review Review) (*Review, error) {
	review.ID = uuid.New().String()
	review.CreatedAt = time.Now().UTC()

	if err := s.reviews.Create(ctx, toRepoReview(&review)); err != nil {
		return nil, fmt.Errorf("failed to add review: %w", err)
	}
	return &review, nil
}

func (s *PostgresStorage) ReviewsByDeliveryPerson(ctx context.Context, deliveryPersonID string) ([]Review, error) {
	rows, err := s.reviews.GetByDeliveryPerson(ctx, deliveryPersonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	reviews := make([]Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, toDomainReview(row))
	}
	return reviews, nil
}

// AverageReview yields 0 for a delivery person with no reviews; that is the
// documented "no data" value, not an error.
func (s *PostgresStorage) AverageReview(ctx context.Context, deliveryPersonID string) (AverageReviewResult, error) {
	avg, err := s.reviews.Average(ctx, deliveryPersonID)
	if err != nil {
		return AverageReviewResult{}, err
	}
	return AverageReviewResult{DeliveryPersonID: deliveryPersonID, AverageReview: avg}, nil
}

func (s *PostgresStorage) AllReviews(ctx context.Context) ([]Review, error) {
	rows, err := s.reviews.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	reviews := make([]Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, toDomainReview(row))
	}
	return reviews, nil
}

func (s *PostgresStorage) recordStatus(ctx context.Context, parcelID string, status Status, at time.Time) error {
	entry := &repository.StatusHistoryEntry{
		ParcelID:  parcelID,
		Status:    string(status),
		ChangedAt: at,
	}
	if err := s.history.Create(ctx, entry); err != nil {
		return fmt.Errorf("failed to record status change: %w", err)
	}
	return nil
}

func toRepoParcel(p *Parcel) *repository.Parcel {
	return &repository.Parcel{
		ID:                       p.ID,
		Name:                     p.Name,
		Email:                    p.Email,
		PhoneNumber:              p.PhoneNumber,
		ParcelType:               p.ParcelType,
		ParcelWeight:             p.ParcelWeight,
		ReceiverName:             p.ReceiverName,
		ReceiverPhoneNumber:      p.ReceiverPhoneNumber,
		ParcelDeliveryAddress:    p.ParcelDeliveryAddress,
		DeliveryAddressLatitude:  p.DeliveryAddressLatitude,
		DeliveryAddressLongitude: p.DeliveryAddressLongitude,
		RequestedDeliveryDate:    p.RequestedDeliveryDate,
		Price:                    p.Price,
		BookingDate:              p.BookingDate,
		Status:                   string(p.Status),
		DeliveryPersonID:         p.DeliveryPersonID,
		ApproximateDeliveryDate:  p.ApproximateDeliveryDate,
	}
}

func toDomainParcel(row *repository.Parcel) Parcel {
	return Parcel{
		ID:                       row.ID,
		Name:                     row.Name,
		Email:                    row.Email,
		PhoneNumber:              row.PhoneNumber,
		ParcelType:               row.ParcelType,
		ParcelWeight:             row.ParcelWeight,
		ReceiverName:             row.ReceiverName,
		ReceiverPhoneNumber:      row.ReceiverPhoneNumber,
		ParcelDeliveryAddress:    row.ParcelDeliveryAddress,
		DeliveryAddressLatitude:  row.DeliveryAddressLatitude,
		DeliveryAddressLongitude: row.DeliveryAddressLongitude,
		RequestedDeliveryDate:    row.RequestedDeliveryDate,
		Price:                    row.Price,
		BookingDate:              row.BookingDate,
		Status:                   Status(row.Status),
		DeliveryPersonID:         row.DeliveryPersonID,
		ApproximateDeliveryDate:  row.ApproximateDeliveryDate,
	}
}

func toDomainParcels(rows []*repository.Parcel) []Parcel {
	parcels := make([]Parcel, 0, len(rows))
	for _, row := range rows {
		parcels = append(parcels, toDomainParcel(row))
	}
	return parcels
}

func toRepoUser(u *User) *repository.User {
	return &repository.User{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		PhoneNumber: u.PhoneNumber,
		ImageURL:    u.ImageURL,
		Role:        u.Role,
	}
}

func toDomainUser(row *repository.User) User {
	return User{
		ID:          row.ID,
		Email:       row.Email,
		Name:        row.Name,
		PhoneNumber: row.PhoneNumber,
		ImageURL:    row.ImageURL,
		Role:        row.Role,
	}
}

func toRepoReview(r *Review) *repository.Review {
	return &repository.Review{
		ID:               r.ID,
		DeliveryPersonID: r.DeliveryPersonID,
		Rating:           r.Rating,
		Content:          r.Content,
		CreatedAt:        r.CreatedAt,
	}
}

func toDomainReview(row *repository.Review) Review {
	return Review{
		ID:               row.ID,
		DeliveryPersonID: row.DeliveryPersonID,
		Rating:           row.Rating,
		Content:          row.Content,
		CreatedAt:        row.CreatedAt,
	}
}
