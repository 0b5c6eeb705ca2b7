package service

import (
	"context"
	"errors"
	"time"

	"github.com/esawctha/esawctha/internal/geo"
	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/models"
)

// wasteCenterService implements [WasteCenterService]. A real facility API
// does not exist; the dataset is the static list regardless of coordinates,
// which is the behavior contract of the source system. The location lookup
// only decides which toast the page shows.
type wasteCenterService struct {
	locator     geo.Locator
	logger      *logger.Logger
	submitDelay time.Duration
}

// NewWasteCenterService constructs a [WasteCenterService].
func NewWasteCenterService(locator geo.Locator, submitDelay time.Duration, logger *logger.Logger) WasteCenterService {
	return &wasteCenterService{
		locator:     locator,
		logger:      logger,
		submitDelay: submitDelay,
	}
}

// NearbyCenters resolves the client location and returns the facility list.
// Every outcome terminates: denied and unsupported fall back to the same
// static dataset, so the caller can always clear its loading state.
func (s *wasteCenterService) NearbyCenters(ctx context.Context) ([]models.WasteCenter, LocationOutcome) {
	sleep(ctx, s.submitDelay)

	coords, err := s.locator.Locate(ctx)
	switch {
	case errors.Is(err, geo.ErrLocationDenied):
		return FallbackCenters(), LocationDenied
	case errors.Is(err, geo.ErrLocationUnsupported):
		return FallbackCenters(), LocationUnsupported
	case err != nil:
		// Unclassified lookup failures degrade like a missing capability.
		s.logger.Warn().Err(err).Msg("unexpected geolocation failure")
		return FallbackCenters(), LocationUnsupported
	}

	s.logger.Debug().Float64("lat", coords.Lat).Float64("lng", coords.Lng).Msg("location found")
	return FallbackCenters(), LocationFound
}

// FallbackCenters is the static dataset shown when no facility API is
// reachable, and — for now — also the "nearby" result set.
func FallbackCenters() []models.WasteCenter {
	return []models.WasteCenter{
		{
			ID:          1,
			Name:        "Green Earth Recycling Center",
			Address:     "123 Eco Street, Green District",
			Phone:       "(555) 123-4567",
			Distance:    "0.8 miles",
			Type:        "General Recycling",
			Hours:       "Mon-Sat: 8:00 AM - 6:00 PM",
			Specialties: []string{"Electronics", "Paper", "Plastic", "Metal"},
			Rating:      4.8,
		},
		{
			ID:          2,
			Name:        "City Waste Management Hub",
			Address:     "456 Clean Ave, Municipal Area",
			Phone:       "(555) 234-5678",
			Distance:    "1.5 miles",
			Type:        "Municipal Facility",
			Hours:       "Daily: 7:00 AM - 8:00 PM",
			Specialties: []string{"Hazardous Waste", "Bulk Items", "Composting"},
			Rating:      4.6,
		},
		{
			ID:          3,
			Name:        "EcoTech Processing Center",
			Address:     "789 Sustainable Blvd, Tech Park",
			Phone:       "(555) 345-6789",
			Distance:    "2.2 miles",
			Type:        "Specialized E-Waste",
			Hours:       "Mon-Fri: 9:00 AM - 5:00 PM",
			Specialties: []string{"Electronics", "Batteries", "Mobile Phones"},
			Rating:      4.9,
		},
		{
			ID:          4,
			Name:        "Community Recycle Point",
			Address:     "321 Neighborhood St, Suburb",
			Phone:       "(555) 456-7890",
			Distance:    "3.1 miles",
			Type:        "Community Center",
			Hours:       "Tue-Sun: 10:00 AM - 4:00 PM",
			Specialties: []string{"Clothing", "Books", "Furniture"},
			Rating:      4.4,
		},
	}
}
