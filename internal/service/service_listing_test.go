package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/internal/mock"
	. "github.com/esawctha/esawctha/internal/service"
	"github.com/esawctha/esawctha/internal/store"
	"github.com/esawctha/esawctha/models"
)

func newTestListingSvc(t *testing.T, ctrl *gomock.Controller) (ListingService, *mock.MockListingRepository) {
	t.Helper()
	mockListings := mock.NewMockListingRepository(ctrl)
	svc := NewListingService(&store.Storages{ListingRepository: mockListings}, 0, logger.Nop())
	return svc, mockListings
}

func TestListingService_Create_AssignsIDAndTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockListings := newTestListingSvc(t, ctrl)
	ctx := context.Background()

	mockListings.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, l models.Listing) error {
			_, err := uuid.Parse(l.ID)
			assert.NoError(t, err, "identifier must be a UUID")
			assert.False(t, l.PostedAt.IsZero())
			assert.Zero(t, l.Views)
			return nil
		},
	)

	created, err := svc.Create(ctx, models.Listing{
		Title:     "Mountain bike",
		Price:     120,
		Category:  models.CategorySports,
		Condition: models.ConditionGood,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Mountain bike", created.Title)
}

func TestListingService_Create_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository call expected for either rejection.
	svc, _ := newTestListingSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Create(ctx, models.Listing{Title: "   ", Price: 10})
	require.ErrorIs(t, err, ErrInvalidListing)

	_, err = svc.Create(ctx, models.Listing{Title: "Chair", Price: -1})
	require.ErrorIs(t, err, ErrInvalidListing)
}

func TestListingService_Open_CountsView(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockListings := newTestListingSvc(t, ctrl)
	ctx := context.Background()

	stored := models.Listing{ID: "abc", Title: "Lamp", Views: 3}
	gomock.InOrder(
		mockListings.EXPECT().GetByID(ctx, "abc").Return(stored, nil),
		mockListings.EXPECT().IncrementViews(ctx, "abc").Return(nil),
	)

	opened, err := svc.Open(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(4), opened.Views)
}

func TestListingService_Open_CounterFailureStillReturnsListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockListings := newTestListingSvc(t, ctrl)
	ctx := context.Background()

	stored := models.Listing{ID: "abc", Title: "Lamp", Views: 3}
	gomock.InOrder(
		mockListings.EXPECT().GetByID(ctx, "abc").Return(stored, nil),
		mockListings.EXPECT().IncrementViews(ctx, "abc").Return(errors.New("locked")),
	)

	opened, err := svc.Open(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(3), opened.Views)
}

func TestListingService_Open_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockListings := newTestListingSvc(t, ctrl)
	ctx := context.Background()

	mockListings.EXPECT().GetByID(ctx, "gone").Return(models.Listing{}, store.ErrListingNotFound)

	_, err := svc.Open(ctx, "gone")
	require.ErrorIs(t, err, store.ErrListingNotFound)
}
