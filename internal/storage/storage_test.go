package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"parcelverge/internal/cache"
	"parcelverge/internal/repository"
	"parcelverge/internal/storage"
	mock_storage "parcelverge/internal/storage/mocks"
)

type storageMocks struct {
	parcels *mock_storage.MockParcelRepository
	users   *mock_storage.MockUserRepository
	reviews *mock_storage.MockReviewRepository
	history *mock_storage.MockHistoryRepository
}

func newTestStorage(t *testing.T) (*storage.PostgresStorage, storageMocks) {
	ctrl := gomock.NewController(t)
	mocks := storageMocks{
		parcels: mock_storage.NewMockParcelRepository(ctrl),
		users:   mock_storage.NewMockUserRepository(ctrl),
		reviews: mock_storage.NewMockReviewRepository(ctrl),
		history: mock_storage.NewMockHistoryRepository(ctrl),
	}
	st := storage.NewPostgresStorage(mocks.parcels, mocks.users, mocks.reviews, mocks.history, cache.NewProfileCache())
	return st, mocks
}

func TestBookParcel(t *testing.T) {
	ctx := context.Background()

	t.Run("forces pending and unassigned", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		deliveryPerson := "dp-1"
		approx := "2025-02-01"
		request := storage.Parcel{
			Email:                 "john@example.com",
			Name:                  "John Doe",
			RequestedDeliveryDate: "2025-02-01",
			Price:                 120,
			Status:                storage.StatusDelivered,
			DeliveryPersonID:      &deliveryPerson,
			ApproximateDeliveryDate: &approx,
		}

		var created *repository.Parcel
		mocks.parcels.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, row *repository.Parcel) error {
				created = row
				return nil
			})
		mocks.history.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *repository.StatusHistoryEntry) error {
				assert.Equal(t, string(storage.StatusPending), entry.Status)
				return nil
			})

		booked, err := st.BookParcel(ctx, request)
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.NotEmpty(t, booked.ID)
		assert.Equal(t, storage.StatusPending, booked.Status)
		assert.Nil(t, booked.DeliveryPersonID)
		assert.Nil(t, booked.ApproximateDeliveryDate)
		assert.Equal(t, "Pending", created.Status)
		assert.Nil(t, created.DeliveryPersonID)
		assert.False(t, created.BookingDate.IsZero())
	})

	t.Run("store failure", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.parcels.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		booked, err := st.BookParcel(ctx, storage.Parcel{Email: "john@example.com"})
		assert.Error(t, err)
		assert.Nil(t, booked)
	})
}

func TestGetParcel(t *testing.T) {
	ctx := context.Background()

	t.Run("maps missing row to ErrNotFound", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.parcels.EXPECT().GetByID(gomock.Any(), gomock.Eq("missing")).
			Return(nil, repository.ErrObjectNotFound)

		parcel, err := st.GetParcel(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, parcel)
	})
}

func TestReplaceParcel(t *testing.T) {
	ctx := context.Background()

	t.Run("missing id upserts a new record", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.parcels.EXPECT().GetByID(gomock.Any(), gomock.Eq("parcel-9")).
			Return(nil, repository.ErrObjectNotFound)
		mocks.parcels.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, row *repository.Parcel) error {
				assert.Equal(t, "parcel-9", row.ID)
				assert.Nil(t, row.DeliveryPersonID)
				return nil
			})
		mocks.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		result, err := st.ReplaceParcel(ctx, "parcel-9", storage.Parcel{
			Email:  "john@example.com",
			Status: storage.StatusPending,
		})
		require.NoError(t, err)
		require.NotNil(t, result.UpsertedID)
		assert.Equal(t, "parcel-9", *result.UpsertedID)
		assert.Zero(t, result.MatchedCount)
	})

	t.Run("existing id is replaced, history only on status change", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.parcels.EXPECT().GetByID(gomock.Any(), gomock.Eq("parcel-1")).
			Return(&repository.Parcel{ID: "parcel-1", Status: "Pending"}, nil)
		mocks.parcels.EXPECT().Update(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		mocks.history.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *repository.StatusHistoryEntry) error {
				assert.Equal(t, "OnTheWay", entry.Status)
				return nil
			})

		result, err := st.ReplaceParcel(ctx, "parcel-1", storage.Parcel{
			Email:  "john@example.com",
			Status: storage.StatusOnTheWay,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.MatchedCount)
		assert.Equal(t, int64(1), result.ModifiedCount)
		assert.Nil(t, result.UpsertedID)
	})

	t.Run("same status skips history", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.parcels.EXPECT().GetByID(gomock.Any(), gomock.Eq("parcel-1")).
			Return(&repository.Parcel{ID: "parcel-1", Status: "Pending"}, nil)
		mocks.parcels.EXPECT().Update(gomock.Any(), gomock.Any()).Return(int64(1), nil)

		_, err := st.ReplaceParcel(ctx, "parcel-1", storage.Parcel{
			Email:  "john@example.com",
			Status: storage.StatusPending,
		})
		assert.NoError(t, err)
	})
}

func TestUpdateParcelStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("matched row records history", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.parcels.EXPECT().UpdateStatus(gomock.Any(), gomock.Eq("parcel-1"), gomock.Eq("Delivered"), gomock.Any()).
			Return(int64(1), nil)
		mocks.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		result, err := st.UpdateParcelStatus(ctx, "parcel-1", storage.StatusDelivered)
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.MatchedCount)
	})

	t.Run("no match means no history", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.parcels.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil)

		result, err := st.UpdateParcelStatus(ctx, "missing", storage.StatusDelivered)
		require.NoError(t, err)
		assert.Zero(t, result.MatchedCount)
		assert.Zero(t, result.ModifiedCount)
	})
}

func TestAssignParcel(t *testing.T) {
	ctx := context.Background()

	t.Run("single write for the assignment triple", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.parcels.EXPECT().Assign(gomock.Any(), gomock.Eq("parcel-1"), gomock.Eq("dp-1"),
			gomock.Eq("2025-02-01"), gomock.Eq("OnTheWay"), gomock.Any()).
			Return(int64(1), nil)
		mocks.history.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		result, err := st.AssignParcel(ctx, "parcel-1", "dp-1", "2025-02-01", storage.StatusOnTheWay)
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.MatchedCount)
	})
}

func TestDeleteParcel(t *testing.T) {
	ctx := context.Background()

	t.Run("reports deleted count", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.parcels.EXPECT().Delete(gomock.Any(), gomock.Eq("parcel-1")).Return(int64(1), nil)

		result, err := st.DeleteParcel(ctx, "parcel-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), result.DeletedCount)
	})

	t.Run("missing parcel deletes nothing", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.parcels.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		result, err := st.DeleteParcel(ctx, "missing")
		require.NoError(t, err)
		assert.Zero(t, result.DeletedCount)
	})
}

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("new email inserts", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.users.EXPECT().GetByEmail(gomock.Any(), gomock.Eq("john@example.com")).
			Return(nil, repository.ErrObjectNotFound)
		mocks.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, row *repository.User) error {
				assert.NotEmpty(t, row.ID)
				assert.Equal(t, storage.RoleCustomer, row.Role)
				return nil
			})

		result, err := st.RegisterUser(ctx, storage.User{Email: "john@example.com", Name: "John"})
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.NotEmpty(t, result.InsertedID)
	})

	t.Run("existing email is a no-op", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		existing := &repository.User{ID: "user-1", Email: "john@example.com", Role: "customer"}
		mocks.users.EXPECT().GetByEmail(gomock.Any(), gomock.Eq("john@example.com")).
			Return(existing, nil)

		result, err := st.RegisterUser(ctx, storage.User{Email: "john@example.com", Name: "Different Name"})
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Empty(t, result.InsertedID)
		require.NotNil(t, result.User)
		assert.Equal(t, "user-1", result.User.ID)
	})
}

func TestPromoteToDeliveryPerson(t *testing.T) {
	ctx := context.Background()

	t.Run("missing user", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.users.EXPECT().UpdateRole(gomock.Any(), gomock.Eq("missing"), gomock.Eq(storage.RoleDeliveryPerson)).
			Return(int64(0), nil)

		err := st.PromoteToDeliveryPerson(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("success", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.users.EXPECT().UpdateRole(gomock.Any(), gomock.Eq("user-1"), gomock.Eq(storage.RoleDeliveryPerson)).
			Return(int64(1), nil)

		err := st.PromoteToDeliveryPerson(ctx, "user-1")
		assert.NoError(t, err)
	})
}

func TestAverageReview(t *testing.T) {
	ctx := context.Background()

	t.Run("no reviews yields zero", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.reviews.EXPECT().Average(gomock.Any(), gomock.Eq("dp-unknown")).Return(0.0, nil)

		result, err := st.AverageReview(ctx, "dp-unknown")
		require.NoError(t, err)
		assert.Equal(t, "dp-unknown", result.DeliveryPersonID)
		assert.Zero(t, result.AverageReview)
	})

	t.Run("mean of ratings", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.reviews.EXPECT().Average(gomock.Any(), gomock.Eq("dp-1")).Return(4.5, nil)

		result, err := st.AverageReview(ctx, "dp-1")
		require.NoError(t, err)
		assert.Equal(t, 4.5, result.AverageReview)
	})
}
