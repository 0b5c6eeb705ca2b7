package store

import (
	"context"

	"github.com/esawctha/esawctha/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the append-only persisted user collection. Users are
// created once and never updated or deleted.
type UserRepository interface {
	// CreateUser appends a new user. Returns [ErrEmailAlreadyExists] when
	// the email is already present in the collection.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindByCredentials returns the user whose email and password both match
	// exactly (case-sensitive). Returns [ErrNoUserWasFound] otherwise; the
	// caller must not learn which of the two fields failed to match.
	FindByCredentials(ctx context.Context, email, password string) (models.User, error)
	// EmailExists reports whether any user holds the given email.
	EmailExists(ctx context.Context, email string) (bool, error)
	// Count returns the number of persisted users.
	Count(ctx context.Context) (int64, error)
}

// SessionRepository persists the single current-session record. At most one
// session exists per client.
type SessionRepository interface {
	// Save writes the session record, replacing any previous one.
	Save(ctx context.Context, user models.User) error
	// Get reads the persisted session record. Returns [ErrSessionNotFound]
	// when none is stored.
	Get(ctx context.Context) (models.User, error)
	// Delete removes the session record. Deleting an absent record is a
	// no-op.
	Delete(ctx context.Context) error
}

// AssessmentRepository persists the single-slot last-prediction record.
type AssessmentRepository interface {
	// Save overwrites the slot with the given result.
	Save(ctx context.Context, result models.AssessmentResult) error
	// Get reads the slot. Returns [ErrPredictionNotFound] when it has never
	// been written.
	Get(ctx context.Context) (models.AssessmentResult, error)
}

// ListingRepository persists marketplace listings. Listings have no update
// or delete operation; only the view counter is mutable.
type ListingRepository interface {
	Create(ctx context.Context, listing models.Listing) error
	GetAll(ctx context.Context) ([]models.Listing, error)
	GetByID(ctx context.Context, id string) (models.Listing, error)
	IncrementViews(ctx context.Context, id string) error
}
