package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/models"
)

// userRepository is the SQLite-backed implementation of [UserRepository].
// It handles account creation and credential lookup against the "users"
// table. The collection is append-only: no update or delete statements exist.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the canonical database
// representation of the newly created account.
//
// Error handling:
//   - SQLite unique constraint violation → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.UserID, user.Name, user.Email, user.Password, string(user.Role), user.CreatedAt)

	var created models.User
	var role string
	if err := row.Scan(&created.UserID, &created.Name, &created.Email, &created.Password, &role, &created.CreatedAt); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			log.Debug().Str("email", user.Email).Msg("email already taken")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	created.Role = models.Role(role)

	return created, nil
}

// FindByCredentials looks up the user whose email and password both match
// exactly. The single [ErrNoUserWasFound] covers both an unknown email and a
// wrong password so the caller cannot tell the cases apart.
func (r *userRepository) FindByCredentials(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByCredentials, email, password)

	var found models.User
	var role string
	err := row.Scan(&found.UserID, &found.Name, &found.Email, &found.Password, &role, &found.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "userRepository.FindByCredentials").Msg("failed to query user")
		return models.User{}, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	found.Role = models.Role(role)

	return found, nil
}

// EmailExists reports whether any persisted user holds the given email.
func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, countUsersByEmail, email).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return count > 0, nil
}

// Count returns the number of persisted users.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, countUsers).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return count, nil
}
