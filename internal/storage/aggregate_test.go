package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"parcelverge/internal/repository"
	"parcelverge/internal/storage"
)

func TestUserSpendSummaries(t *testing.T) {
	ctx := context.Background()
	st, mocks := newTestStorage(t)

	rows := []*repository.UserSpend{
		{ID: "user-1", Email: "john@example.com", Name: "John", NumberOfBookings: 3, TotalSpent: 270},
		{ID: "user-2", Email: "jane@example.com", Name: "Jane", NumberOfBookings: 0, TotalSpent: 0},
	}
	mocks.users.EXPECT().SpendSummaries(gomock.Any()).Return(rows, nil)

	summaries, err := st.UserSpendSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, int64(3), summaries[0].NumberOfBookings)
	assert.Equal(t, 270.0, summaries[0].TotalSpent)
	assert.Zero(t, summaries[1].TotalSpent)
}

func TestTopDeliveryPersons(t *testing.T) {
	ctx := context.Background()

	t.Run("joins profile and review average", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.parcels.EXPECT().CountsByDeliveryPerson(gomock.Any(), 5).
			Return([]*repository.DeliveryPersonCount{
				{DeliveryPersonID: "dp-1", Count: 12},
				{DeliveryPersonID: "dp-2", Count: 7},
			}, nil)
		mocks.users.EXPECT().GetByID(gomock.Any(), "dp-1").
			Return(&repository.User{ID: "dp-1", Name: "Ann", PhoneNumber: "+15550003333", ImageURL: "ann.png"}, nil)
		mocks.users.EXPECT().GetByID(gomock.Any(), "dp-2").
			Return(&repository.User{ID: "dp-2", Name: "Bob", ImageURL: "bob.png"}, nil)
		mocks.reviews.EXPECT().Average(gomock.Any(), "dp-1").Return(4.5, nil)
		mocks.reviews.EXPECT().Average(gomock.Any(), "dp-2").Return(0.0, nil)

		ranks, err := st.TopDeliveryPersons(ctx, true)
		require.NoError(t, err)
		require.Len(t, ranks, 2)

		assert.Equal(t, "dp-1", ranks[0].ID)
		assert.Equal(t, "Ann", ranks[0].Name)
		assert.Equal(t, "+15550003333", ranks[0].Phone)
		assert.Equal(t, int64(12), ranks[0].TotalDelivery)
		assert.Equal(t, 4.5, ranks[0].AverageReview)
		assert.Zero(t, ranks[1].AverageReview)
	})

	t.Run("public shape hides id and phone", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.parcels.EXPECT().CountsByDeliveryPerson(gomock.Any(), 5).
			Return([]*repository.DeliveryPersonCount{{DeliveryPersonID: "dp-1", Count: 12}}, nil)
		mocks.users.EXPECT().GetByID(gomock.Any(), "dp-1").
			Return(&repository.User{ID: "dp-1", Name: "Ann", PhoneNumber: "+15550003333", ImageURL: "ann.png"}, nil)
		mocks.reviews.EXPECT().Average(gomock.Any(), "dp-1").Return(4.5, nil)

		ranks, err := st.TopDeliveryPersons(ctx, false)
		require.NoError(t, err)
		require.Len(t, ranks, 1)
		assert.Empty(t, ranks[0].ID)
		assert.Empty(t, ranks[0].Phone)
		assert.Equal(t, "Ann", ranks[0].Name)
	})

	t.Run("dangling assignee keeps its slot", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.parcels.EXPECT().CountsByDeliveryPerson(gomock.Any(), 5).
			Return([]*repository.DeliveryPersonCount{{DeliveryPersonID: "dp-gone", Count: 3}}, nil)
		mocks.users.EXPECT().GetByID(gomock.Any(), "dp-gone").
			Return(nil, repository.ErrObjectNotFound)
		mocks.reviews.EXPECT().Average(gomock.Any(), "dp-gone").Return(0.0, nil)

		ranks, err := st.TopDeliveryPersons(ctx, true)
		require.NoError(t, err)
		require.Len(t, ranks, 1)
		assert.Empty(t, ranks[0].Name)
		assert.Equal(t, int64(3), ranks[0].TotalDelivery)
	})

	t.Run("second call hits the profile cache", func(t *testing.T) {
		st, mocks := newTestStorage(t)

		mocks.parcels.EXPECT().CountsByDeliveryPerson(gomock.Any(), 5).
			Return([]*repository.DeliveryPersonCount{{DeliveryPersonID: "dp-1", Count: 12}}, nil).
			Times(2)
		mocks.users.EXPECT().GetByID(gomock.Any(), "dp-1").
			Return(&repository.User{ID: "dp-1", Name: "Ann"}, nil).
			Times(1)
		mocks.reviews.EXPECT().Average(gomock.Any(), "dp-1").Return(4.5, nil).Times(2)

		_, err := st.TopDeliveryPersons(ctx, false)
		require.NoError(t, err)
		_, err = st.TopDeliveryPersons(ctx, false)
		require.NoError(t, err)
	})
}

func TestBookingsByDate(t *testing.T) {
	ctx := context.Background()
	st, mocks := newTestStorage(t)

	mocks.parcels.EXPECT().CountsByBookingDate(gomock.Any()).
		Return([]*repository.DateCount{
			{Date: "2025-01-01", Count: 2},
			{Date: "2025-01-03", Count: 5},
		}, nil)

	buckets, err := st.BookingsByDate(ctx)
	require.NoError(t, err)
	require.Len(t, buckets, 2)
	assert.Equal(t, "2025-01-01", buckets[0].Date)
	assert.Equal(t, int64(5), buckets[1].Count)
}

func TestParcelCounts(t *testing.T) {
	ctx := context.Background()
	st, mocks := newTestStorage(t)

	mocks.parcels.EXPECT().Count(gomock.Any()).Return(int64(10), nil)
	mocks.parcels.EXPECT().CountByStatus(gomock.Any(), string(storage.StatusDelivered)).Return(int64(4), nil)

	counts, err := st.ParcelCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), counts.TotalParcels)
	assert.Equal(t, int64(4), counts.DeliveredParcels)
}
