package service

import (
	"context"

	"github.com/esawctha/esawctha/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Credentials is the login form payload.
type Credentials struct {
	Email    string
	Password string
}

// SignupProfile is the signup form payload. Password and ConfirmPassword
// must be identical for the signup to proceed.
type SignupProfile struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            models.Role
}

// AuthService is the session store: the single source of truth for "who is
// logged in". Every successful state transition writes or deletes exactly
// one persisted session record.
type AuthService interface {
	// Login establishes a session for the user whose email and password
	// match exactly. On no match it returns [ErrInvalidCredentials] and
	// leaves any existing session untouched.
	Login(ctx context.Context, creds Credentials) (models.Session, error)
	// Signup validates the profile, appends a new user to the persisted
	// collection, and establishes a session from it.
	Signup(ctx context.Context, profile SignupProfile) (models.Session, error)
	// Logout clears the persisted session record. Idempotent.
	Logout(ctx context.Context) error
	// Restore adopts the persisted session record without re-validating
	// credentials. An absent record yields the unauthenticated session,
	// not an error.
	Restore(ctx context.Context) (models.Session, error)
}

// AssessmentService computes and stores heart-disease risk assessments.
type AssessmentService interface {
	// Submit scores the input, persists the result to the single-slot
	// record, and returns it.
	Submit(ctx context.Context, input models.AssessmentInput) (models.AssessmentResult, error)
	// Last returns the most recent persisted result, or
	// store.ErrPredictionNotFound when none exists.
	Last(ctx context.Context) (models.AssessmentResult, error)
}

// ListingService manages marketplace listings.
type ListingService interface {
	// Create validates and persists a new listing, assigning its identifier
	// and posting timestamp.
	Create(ctx context.Context, listing models.Listing) (models.Listing, error)
	// All returns every listing, newest first.
	All(ctx context.Context) ([]models.Listing, error)
	// Open returns one listing and counts the view.
	Open(ctx context.Context, id string) (models.Listing, error)
}

// LocationOutcome describes how the waste-center lookup resolved.
type LocationOutcome string

const (
	LocationFound       LocationOutcome = "found"
	LocationDenied      LocationOutcome = "denied"
	LocationUnsupported LocationOutcome = "unsupported"
)

// WasteCenterService finds nearby waste-management facilities.
type WasteCenterService interface {
	// NearbyCenters resolves the client location and returns facilities.
	// Denied and unsupported locations degrade to the static fallback
	// dataset; the outcome tells the caller which toast to show. The
	// returned slice is never empty.
	NearbyCenters(ctx context.Context) ([]models.WasteCenter, LocationOutcome)
}
