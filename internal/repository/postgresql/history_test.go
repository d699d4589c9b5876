package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_database "parcelverge/internal/db/mocks"
	"parcelverge/internal/repository"
	"parcelverge/internal/repository/postgresql"
)

func TestHistoryRepo_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewHistoryRepo(mockDB)

		entry := &repository.StatusHistoryEntry{
			ParcelID:  "parcel-123",
			Status:    "Pending",
			ChangedAt: now,
		}

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(entry.ParcelID),
			gomock.Eq(entry.Status),
			gomock.Eq(entry.ChangedAt),
		).Return(pgconn.CommandTag("INSERT 0 1"), nil)

		err := repo.Create(ctx, entry)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewHistoryRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.Create(ctx, &repository.StatusHistoryEntry{ParcelID: "parcel-123"})
		assert.Equal(t, expectedErr, err)
	})
}

func TestHistoryRepo_GetByParcelID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("entries in chronological order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewHistoryRepo(mockDB)

		expected := []*repository.StatusHistoryEntry{
			{ID: 1, ParcelID: "parcel-123", Status: "Pending", ChangedAt: now},
			{ID: 2, ParcelID: "parcel-123", Status: "OnTheWay", ChangedAt: now.Add(time.Hour)},
		}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("parcel-123")).
			DoAndReturn(func(_ context.Context, dest *[]*repository.StatusHistoryEntry, _ string, _ string) error {
				*dest = expected
				return nil
			})

		entries, err := repo.GetByParcelID(ctx, "parcel-123")
		assert.NoError(t, err)
		assert.Equal(t, expected, entries)
	})
}
