package service

import (
	"github.com/esawctha/esawctha/internal/config"
	"github.com/esawctha/esawctha/internal/geo"
	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/internal/store"
)

// Services groups all application services into a single value passed to the
// UI layer. The three auth actions plus the read-only session state are the
// entire contract the pages consume.
type Services struct {
	AuthService        AuthService
	AssessmentService  AssessmentService
	ListingService     ListingService
	WasteCenterService WasteCenterService
}

// NewServices wires the service layer from the storage layer, the
// geolocation collaborator, and application settings.
func NewServices(storages *store.Storages, locator geo.Locator, app config.App, logger *logger.Logger) *Services {
	logger.Info().Dur("submit_delay", app.SubmitDelay).Msg("creating services...")

	return &Services{
		AuthService:        NewAuthService(storages, app.SubmitDelay, logger),
		AssessmentService:  NewAssessmentService(storages, app.SubmitDelay, logger),
		ListingService:     NewListingService(storages, app.SubmitDelay, logger),
		WasteCenterService: NewWasteCenterService(locator, app.SubmitDelay, logger),
	}
}
