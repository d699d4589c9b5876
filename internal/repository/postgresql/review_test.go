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

type fakeRow struct {
	scan func(dest ...interface{}) error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	return r.scan(dest...)
}

func TestReviewRepo_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReviewRepo(mockDB)

		review := &repository.Review{
			ID:               "review-1",
			DeliveryPersonID: "dp-1",
			Rating:           5,
			Content:          "fast and careful",
			CreatedAt:        now,
		}

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq(review.ID),
			gomock.Eq(review.DeliveryPersonID),
			gomock.Eq(review.Rating),
			gomock.Eq(review.Content),
			gomock.Eq(review.CreatedAt),
		).Return(pgconn.CommandTag("INSERT 0 1"), nil)

		err := repo.Create(ctx, review)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReviewRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.Create(ctx, &repository.Review{ID: "review-1"})
		assert.Equal(t, expectedErr, err)
	})
}

func TestReviewRepo_GetByDeliveryPerson(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("returns reviews", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReviewRepo(mockDB)

		expected := []*repository.Review{
			{ID: "review-2", DeliveryPersonID: "dp-1", Rating: 4, CreatedAt: now.Add(time.Hour)},
			{ID: "review-1", DeliveryPersonID: "dp-1", Rating: 5, CreatedAt: now},
		}

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("dp-1")).
			DoAndReturn(func(_ context.Context, dest *[]*repository.Review, _ string, _ string) error {
				*dest = expected
				return nil
			})

		reviews, err := repo.GetByDeliveryPerson(ctx, "dp-1")
		assert.NoError(t, err)
		assert.Equal(t, expected, reviews)
	})

	t.Run("no reviews is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReviewRepo(mockDB)

		mockDB.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		reviews, err := repo.GetByDeliveryPerson(ctx, "dp-unknown")
		assert.NoError(t, err)
		assert.Empty(t, reviews)
	})
}

func TestReviewRepo_Average(t *testing.T) {
	ctx := context.Background()

	t.Run("average of ratings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReviewRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Eq("dp-1")).
			Return(fakeRow{scan: func(dest ...interface{}) error {
				*dest[0].(*float64) = 4.5
				return nil
			}})

		avg, err := repo.Average(ctx, "dp-1")
		assert.NoError(t, err)
		assert.Equal(t, 4.5, avg)
	})

	t.Run("no reviews yields zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		repo := postgresql.NewReviewRepo(mockDB)

		mockDB.EXPECT().ExecQueryRow(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fakeRow{scan: func(dest ...interface{}) error {
				*dest[0].(*float64) = 0
				return nil
			}})

		avg, err := repo.Average(ctx, "dp-unknown")
		assert.NoError(t, err)
		assert.Zero(t, avg)
	})
}
