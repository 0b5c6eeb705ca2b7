package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/internal/router"
	"github.com/esawctha/esawctha/internal/service"
)

// ErrUserQuit reports that the user closed the program with Ctrl+C rather
// than the program finishing on its own.
var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	services *service.Services
	log      *logger.Logger
}

// New creates the terminal UI over the service layer.
func New(services *service.Services, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}
	return &TUI{services: services, log: log}, nil
}

// Run restores the persisted session, resolves the start route through the
// guard, and drives the Bubble Tea program until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	session, err := t.services.AuthService.Restore(ctx)
	if err != nil {
		return err
	}
	if session.Authenticated() {
		t.log.Info().Str("email", session.User.Email).Msg("session restored")
	}

	pages := map[router.Route]tea.Model{
		router.RouteHome:           NewHomeModel(ctx, t.services.AuthService),
		router.RouteLogin:          NewLoginModel(ctx, t.services.AuthService),
		router.RouteSignup:         NewSignupModel(ctx, t.services.AuthService),
		router.RouteDashboard:      NewDashboardModel(ctx, t.services.AssessmentService),
		router.RouteWasteDashboard: NewWasteDashboardModel(service.FallbackCenters()),
		router.RouteSell:           NewSellModel(ctx, t.services.ListingService),
		router.RouteListings:       NewListingsModel(ctx, t.services.ListingService),
		router.RouteWasteLookup:    NewWasteModel(ctx, t.services.WasteCenterService),
		router.RoutePredict:        NewPredictModel(ctx, t.services.AssessmentService),
		router.RouteResults:        NewResultsModel(ctx, t.services.AssessmentService),
		router.RouteInfo:           NewInfoModel(),
	}

	start := router.RouteLogin
	if session.Authenticated() {
		start = router.HomeFor(session)
	}

	root := NewRootModel(pages, start, session)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
