package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/models"
)

// sessionRepository persists the single current-session record in the
// "current_session" table. The table is keyed on a constant slot so a write
// is always an upsert and at most one session exists per client.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// Save upserts the session record with a full copy of the user. The single
// statement makes the session update and its persistence one unit: no reader
// can observe one without the other.
func (r *sessionRepository) Save(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, saveSession,
		user.UserID, user.Name, user.Email, user.Password, string(user.Role), user.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Save").Msg("failed to upsert session")
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}

// Get reads the persisted session record. The record is trusted as written:
// no credential re-validation happens here.
func (r *sessionRepository) Get(ctx context.Context) (models.User, error) {
	row := r.db.QueryRowContext(ctx, getSession)

	var user models.User
	var role string
	err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.Password, &role, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrSessionNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}
	user.Role = models.Role(role)

	return user, nil
}

// Delete removes the session record. Deleting when nothing is stored
// affects zero rows and reports no error, which gives logout its
// idempotence.
func (r *sessionRepository) Delete(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession); err != nil {
		log.Err(err).Str("func", "sessionRepository.Delete").Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
