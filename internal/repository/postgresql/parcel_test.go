package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "parcelverge/internal/db/mocks"
	"parcelverge/internal/repository"
	"parcelverge/internal/repository/postgresql"
)

func testParcel(now time.Time) *repository.Parcel {
	return &repository.Parcel{
		ID:                    "parcel-123",
		Name:                  "John Doe",
		Email:                 "john@example.com",
		PhoneNumber:           "+15550001111",
		ParcelType:            "Documents",
		ParcelWeight:          1.5,
		ReceiverName:          "Jane Doe",
		ReceiverPhoneNumber:   "+15550002222",
		ParcelDeliveryAddress: "1 Main St",
		RequestedDeliveryDate: "2025-02-01",
		Price:                 75,
		BookingDate:           now,
		Status:                "Pending",
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func TestParcelRepo_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		parcel := testParcel(now)

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(parcel.ID),
			gomock.Eq(parcel.Name),
			gomock.Eq(parcel.Email),
			gomock.Eq(parcel.PhoneNumber),
			gomock.Eq(parcel.ParcelType),
			gomock.Eq(parcel.ParcelWeight),
			gomock.Eq(parcel.ReceiverName),
			gomock.Eq(parcel.ReceiverPhoneNumber),
			gomock.Eq(parcel.ParcelDeliveryAddress),
			gomock.Eq(parcel.DeliveryAddressLatitude),
			gomock.Eq(parcel.DeliveryAddressLongitude),
			gomock.Eq(parcel.RequestedDeliveryDate),
			gomock.Eq(parcel.Price),
			gomock.Eq(parcel.BookingDate),
			gomock.Eq(parcel.Status),
			gomock.Eq(parcel.DeliveryPersonID),
			gomock.Eq(parcel.ApproximateDeliveryDate),
			gomock.Eq(parcel.CreatedAt),
			gomock.Eq(parcel.UpdatedAt),
		).Return(pgconn.CommandTag("INSERT 0 1"), nil)

		err := repo.Create(ctx, parcel)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		expectedErr := errors.New("database error")

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.Create(ctx, testParcel(now))
		assert.Equal(t, expectedErr, err)
	})
}

func TestParcelRepo_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("parcel found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		expected := testParcel(now)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(expected.ID)).
			DoAndReturn(func(_ context.Context, dest *repository.Parcel, _ string, _ string) error {
				*dest = *expected
				return nil
			})

		parcel, err := repo.GetByID(ctx, expected.ID)
		assert.NoError(t, err)
		assert.Equal(t, expected, parcel)
	})

	t.Run("parcel not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		mockDB.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgx.ErrNoRows)

		parcel, err := repo.GetByID(ctx, "non-existent-id")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
		assert.Nil(t, parcel)
	})
}

func TestParcelRepo_GetByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns parcels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		expected := []*repository.Parcel{testParcel(now)}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("john@example.com")).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Parcel, _ string, _ string) error {
				*dest = expected
				return nil
			})

		parcels, err := repo.GetByEmail(ctx, "john@example.com")
		assert.NoError(t, err)
		assert.Equal(t, expected, parcels)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(expectedErr)

		_, err := repo.GetByEmail(ctx, "john@example.com")
		assert.Equal(t, expectedErr, err)
	})
}

func TestParcelRepo_GetFiltered(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("all filters applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		expected := []*repository.Parcel{testParcel(now)}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Eq("2025-01-01"), gomock.Eq("2025-01-31"), gomock.Eq("dp-1")).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Parcel, _ string, _ ...interface{}) error {
				*dest = expected
				return nil
			})

		parcels, err := repo.GetFiltered(ctx, "2025-01-01", "2025-01-31", "dp-1")
		assert.NoError(t, err)
		assert.Equal(t, expected, parcels)
	})

	t.Run("no filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Parcel, _ string, _ ...interface{}) error {
				*dest = nil
				return nil
			})

		parcels, err := repo.GetFiltered(ctx, "", "", "")
		assert.NoError(t, err)
		assert.Empty(t, parcels)
	})
}

func TestParcelRepo_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("row matched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(),
			gomock.Eq("Delivered"), gomock.Eq(now), gomock.Eq("parcel-123")).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		matched, err := repo.UpdateStatus(ctx, "parcel-123", "Delivered", now)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), matched)
	})

	t.Run("no row matched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		matched, err := repo.UpdateStatus(ctx, "missing", "Delivered", now)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), matched)
	})
}

func TestParcelRepo_Assign(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("assigns triple in one statement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(),
			gomock.Eq("OnTheWay"), gomock.Eq("dp-1"), gomock.Eq("2025-02-01"), gomock.Eq(now), gomock.Eq("parcel-123")).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		matched, err := repo.Assign(ctx, "parcel-123", "dp-1", "2025-02-01", "OnTheWay", now)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), matched)
	})
}

func TestParcelRepo_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq("parcel-123")).
			Return(pgconn.CommandTag("DELETE 1"), nil)

		deleted, err := repo.Delete(ctx, "parcel-123")
		assert.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Eq("parcel-123")).
			Return(nil, expectedErr)

		_, err := repo.Delete(ctx, "parcel-123")
		assert.Equal(t, expectedErr, err)
	})
}

func TestParcelRepo_CountsByDeliveryPerson(t *testing.T) {
	ctx := context.Background()

	t.Run("ranked counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewParcelRepo(mockDB)

		expected := []*repository.DeliveryPersonCount{
			{DeliveryPersonID: "dp-1", Count: 12},
			{DeliveryPersonID: "dp-2", Count: 7},
		}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq(5)).
			DoAndReturn(func(_ context.Context, dest *[]*repository.DeliveryPersonCount, _ string, _ int) error {
				*dest = expected
				return nil
			})

		counts, err := repo.CountsByDeliveryPerson(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, expected, counts)
	})
}
