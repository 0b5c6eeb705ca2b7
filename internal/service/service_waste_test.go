package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/esawctha/esawctha/internal/geo"
	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/internal/mock"
	. "github.com/esawctha/esawctha/internal/service"
)

func TestWasteCenterService_NearbyCenters(t *testing.T) {
	tests := []struct {
		name        string
		locateErr   error
		wantOutcome LocationOutcome
	}{
		{
			name:        "location found",
			locateErr:   nil,
			wantOutcome: LocationFound,
		},
		{
			name:        "location denied",
			locateErr:   geo.ErrLocationDenied,
			wantOutcome: LocationDenied,
		},
		{
			name:        "location unsupported",
			locateErr:   geo.ErrLocationUnsupported,
			wantOutcome: LocationUnsupported,
		},
		{
			name:        "unclassified failure degrades to unsupported",
			locateErr:   errors.New("dns timeout"),
			wantOutcome: LocationUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLocator := mock.NewMockLocator(ctrl)
			mockLocator.EXPECT().Locate(gomock.Any()).Return(geo.Coordinates{Lat: 52.5, Lng: 13.4}, tt.locateErr)

			svc := NewWasteCenterService(mockLocator, 0, logger.Nop())
			centers, outcome := svc.NearbyCenters(context.Background())

			assert.Equal(t, tt.wantOutcome, outcome)
			// Every outcome yields the same roster: there is no facility API
			// behind the lookup, only the static dataset.
			require.Len(t, centers, 4)
			assert.Equal(t, FallbackCenters(), centers)
		})
	}
}

func TestFallbackCenters_Stable(t *testing.T) {
	centers := FallbackCenters()
	require.Len(t, centers, 4)

	assert.Equal(t, "Green Earth Recycling Center", centers[0].Name)
	assert.Equal(t, "City Waste Management Hub", centers[1].Name)
	assert.Equal(t, "EcoTech Processing Center", centers[2].Name)
	assert.Equal(t, "Community Recycle Point", centers[3].Name)

	for _, c := range centers {
		assert.NotEmpty(t, c.Address)
		assert.NotEmpty(t, c.Phone)
		assert.NotEmpty(t, c.Hours)
		assert.NotEmpty(t, c.Specialties)
		assert.Positive(t, c.Rating)
	}

	// Callers may mutate the returned slice; the dataset itself must not move.
	centers[0].Name = "changed"
	assert.Equal(t, "Green Earth Recycling Center", FallbackCenters()[0].Name)
}
