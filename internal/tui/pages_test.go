package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/esawctha/esawctha/internal/mock"
	"github.com/esawctha/esawctha/internal/router"
	"github.com/esawctha/esawctha/internal/service"
	"github.com/esawctha/esawctha/models"
)

func TestSellModel_SavedOpensFreshListingDetail(t *testing.T) {
	m := NewSellModel(context.Background(), mock.NewMockListingService(gomock.NewController(t)))

	saved := models.Listing{ID: "listing-1", Title: "Bike", Price: 25}
	_, cmd := m.Update(listingSavedMsg{listing: saved})
	require.NotNil(t, cmd)
	assert.False(t, m.submitting)

	assert.Contains(t, drainCmd(cmd), tea.Msg(NavigateTo{
		Route:   router.RouteListings,
		Payload: listingOpenedMsg{listing: saved},
	}))

	// The marketplace page adopts the payload as its detail view without a
	// view-count round trip.
	browser := NewListingsModel(context.Background(), mock.NewMockListingService(gomock.NewController(t)))
	_, _ = browser.Update(listingOpenedMsg{listing: saved})
	require.NotNil(t, browser.detail)
	assert.Equal(t, "listing-1", browser.detail.ID)
}

func TestWasteModel_DeniedLookupClearsLoadingAndFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	centers := mock.NewMockWasteCenterService(ctrl)
	centers.EXPECT().NearbyCenters(gomock.Any()).
		Return(service.FallbackCenters(), service.LocationDenied)

	m := NewWasteModel(context.Background(), centers)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	require.NotNil(t, cmd)
	require.True(t, m.loading)

	loaded, ok := cmd().(centersLoadedMsg)
	require.True(t, ok)

	_, toastCmd := m.Update(loaded)
	assert.False(t, m.loading)
	assert.True(t, m.searched)
	assert.Len(t, m.roster, 4)

	require.NotNil(t, toastCmd)
	toast, ok := toastCmd().(toastMsg)
	require.True(t, ok)
	assert.Equal(t, "Location Permission Denied", toast.toast.Title)
	assert.Equal(t, models.ToastDestructive, toast.toast.Variant)
}
