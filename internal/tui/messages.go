package tui

import (
	"github.com/esawctha/esawctha/internal/router"
	"github.com/esawctha/esawctha/internal/service"
	"github.com/esawctha/esawctha/models"
)

// NavigateTo asks the root model to switch pages. The guard re-evaluates the
// target against the current session before anything renders. Payload, when
// non-nil, is delivered to the target page after the switch.
type NavigateTo struct {
	Route   router.Route
	Payload interface{}
}

// sessionNotice delivers the current session to a freshly opened page.
type sessionNotice struct {
	session models.Session
}

// authResultMsg finishes an async login or signup command.
type authResultMsg struct {
	session models.Session
	err     error
	signup  bool
}

// logoutDoneMsg finishes an async logout command.
type logoutDoneMsg struct {
	err error
}

// toastMsg shows a notification overlay.
type toastMsg struct {
	toast models.Toast
}

// clearToastMsg hides the notification overlay; seq guards against clearing
// a newer toast.
type clearToastMsg struct {
	seq int
}

type assessmentDoneMsg struct {
	result models.AssessmentResult
	err    error
}

type lastAssessmentMsg struct {
	result models.AssessmentResult
	err    error
}

type listingsLoadedMsg struct {
	items []models.Listing
	err   error
}

type listingSavedMsg struct {
	listing models.Listing
	err     error
}

type listingOpenedMsg struct {
	listing models.Listing
	err     error
}

type centersLoadedMsg struct {
	centers []models.WasteCenter
	outcome service.LocationOutcome
}

type copiedMsg struct {
	err error
}
