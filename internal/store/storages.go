package store

import (
	"context"
	"fmt"

	"github.com/esawctha/esawctha/internal/config"
	"github.com/esawctha/esawctha/internal/logger"
)

// Storages groups all local repositories into a single value that can be
// passed around the service layer. The backing SQLite database stands in for
// the browser local storage of the source system: one file per client, no
// cross-process coordination.
type Storages struct {
	// UserRepository is the append-only persisted user collection
	// (the "users" local-storage key).
	UserRepository UserRepository

	// SessionRepository holds the single current-session record
	// (the "currentUser" local-storage key).
	SessionRepository SessionRepository

	// AssessmentRepository holds the single-slot last-prediction record
	// (the "lastPrediction" local-storage key).
	AssessmentRepository AssessmentRepository

	// ListingRepository holds marketplace listings.
	ListingRepository ListingRepository
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		SessionRepository:    NewSessionRepository(db, logger),
		AssessmentRepository: NewAssessmentRepository(db, logger),
		ListingRepository:    NewListingRepository(db, logger),
	}, nil
}
