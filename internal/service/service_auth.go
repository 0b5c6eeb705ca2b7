package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/internal/store"
	"github.com/esawctha/esawctha/models"
)

// authService implements [AuthService] on top of the local user and session
// repositories. All operations are synchronous from the caller's point of
// view; submitDelay only stretches them cosmetically.
type authService struct {
	users    store.UserRepository
	sessions store.SessionRepository
	logger   *logger.Logger

	// submitDelay simulates network latency on login/signup. Zero in tests.
	submitDelay time.Duration

	// lastID guards identifier monotonicity when two signups land within
	// the same millisecond.
	mu     sync.Mutex
	lastID int64
}

// NewAuthService constructs an [AuthService].
func NewAuthService(storages *store.Storages, submitDelay time.Duration, logger *logger.Logger) AuthService {
	return &authService{
		users:       storages.UserRepository,
		sessions:    storages.SessionRepository,
		logger:      logger,
		submitDelay: submitDelay,
	}
}

// Login looks up the user collection for an entry whose email and password
// match exactly. On match it persists the session record and returns the new
// session; on no match it returns [ErrInvalidCredentials] without touching
// any existing session.
func (a *authService) Login(ctx context.Context, creds Credentials) (models.Session, error) {
	a.simulateLatency(ctx)

	user, err := a.users.FindByCredentials(ctx, creds.Email, creds.Password)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("login lookup: %w", err)
	}

	if err := a.sessions.Save(ctx, user); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}

	a.logger.Debug().Int64("user_id", user.UserID).Msg("login successful")
	return models.Session{User: &user}, nil
}

// Signup creates a new account and establishes a session from it.
// Validation order is fixed: password mismatch is surfaced before any
// persistence attempt, duplicate email before any mutation.
func (a *authService) Signup(ctx context.Context, profile SignupProfile) (models.Session, error) {
	if profile.Password != profile.ConfirmPassword {
		return models.Session{}, ErrPasswordMismatch
	}

	a.simulateLatency(ctx)

	exists, err := a.users.EmailExists(ctx, profile.Email)
	if err != nil {
		return models.Session{}, fmt.Errorf("signup email check: %w", err)
	}
	if exists {
		return models.Session{}, ErrDuplicateAccount
	}

	now := time.Now()
	user := models.User{
		UserID:    a.nextID(now),
		Name:      profile.Name,
		Email:     profile.Email,
		Password:  profile.Password,
		Role:      profile.Role,
		CreatedAt: now,
	}

	created, err := a.users.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.Session{}, ErrDuplicateAccount
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("create user: %w", err)
	}

	if err := a.sessions.Save(ctx, created); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}

	a.logger.Debug().Int64("user_id", created.UserID).Str("role", string(created.Role)).Msg("signup successful")
	return models.Session{User: &created}, nil
}

// Logout removes the persisted session record. Calling it with no active
// session is a no-op.
func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.Delete(ctx)
}

// Restore adopts the persisted session record as the active session. This is
// a trust-on-read design: the record is assumed authentic because it was
// written by this same client.
func (a *authService) Restore(ctx context.Context) (models.Session, error) {
	user, err := a.sessions.Get(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}

	return models.Session{User: &user}, nil
}

// nextID assigns a current-time-based identifier, bumped past the previous
// one when two assignments share a millisecond.
func (a *authService) nextID(now time.Time) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := now.UnixMilli()
	if id <= a.lastID {
		id = a.lastID + 1
	}
	a.lastID = id
	return id
}

func (a *authService) simulateLatency(ctx context.Context) {
	sleep(ctx, a.submitDelay)
}

// sleep waits for d or until ctx is done. Cosmetic only: correctness and
// ordering never depend on it.
func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
