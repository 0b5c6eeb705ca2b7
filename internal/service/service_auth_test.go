package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/internal/mock"
	. "github.com/esawctha/esawctha/internal/service"
	"github.com/esawctha/esawctha/internal/store"
	"github.com/esawctha/esawctha/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository, *mock.MockSessionRepository) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	storages := &store.Storages{
		UserRepository:    mockUsers,
		SessionRepository: mockSessions,
	}

	svc := NewAuthService(storages, 0, logger.Nop())
	return svc, mockUsers, mockSessions
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestAuthService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	profile := SignupProfile{
		Name:            "Alice",
		Email:           "a@x.io",
		Password:        "pw",
		ConfirmPassword: "pw",
		Role:            models.RoleSeller,
	}

	gomock.InOrder(
		mockUsers.EXPECT().EmailExists(ctx, "a@x.io").Return(false, nil),
		mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "Alice", u.Name)
				assert.Equal(t, "a@x.io", u.Email)
				assert.Equal(t, "pw", u.Password)
				assert.Equal(t, models.RoleSeller, u.Role)
				assert.Positive(t, u.UserID)
				assert.False(t, u.CreatedAt.IsZero())
				return u, nil
			},
		),
		mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(nil),
	)

	session, err := svc.Signup(ctx, profile)
	require.NoError(t, err)
	require.True(t, session.Authenticated())
	assert.Equal(t, "Alice", session.User.Name)
	assert.Equal(t, models.RoleSeller, session.Role())
}

func TestAuthService_Signup_PasswordMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository calls expected: the mismatch check precedes persistence.
	svc, _, _ := newTestAuthSvc(t, ctrl)

	session, err := svc.Signup(context.Background(), SignupProfile{
		Email:           "a@x.io",
		Password:        "pw",
		ConfirmPassword: "other",
	})
	require.ErrorIs(t, err, ErrPasswordMismatch)
	assert.False(t, session.Authenticated())
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().EmailExists(ctx, "a@x.io").Return(true, nil)

	_, err := svc.Signup(ctx, SignupProfile{
		Email:           "a@x.io",
		Password:        "pw",
		ConfirmPassword: "pw",
	})
	require.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestAuthService_Signup_DuplicateRaceOnInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// The existence check passes but the insert still hits the unique
	// constraint; the caller sees the same duplicate-account error.
	mockUsers.EXPECT().EmailExists(ctx, "a@x.io").Return(false, nil)
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Signup(ctx, SignupProfile{
		Email:           "a@x.io",
		Password:        "pw",
		ConfirmPassword: "pw",
	})
	require.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestAuthService_Signup_MonotonicIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	var ids []int64
	mockUsers.EXPECT().EmailExists(ctx, gomock.Any()).Return(false, nil).Times(3)
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			ids = append(ids, u.UserID)
			return u, nil
		},
	).Times(3)
	mockSessions.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(3)

	for i := 0; i < 3; i++ {
		_, err := svc.Signup(ctx, SignupProfile{
			Email:           "a@x.io",
			Password:        "pw",
			ConfirmPassword: "pw",
		})
		require.NoError(t, err)
	}

	require.Len(t, ids, 3)
	assert.Less(t, ids[0], ids[1])
	assert.Less(t, ids[1], ids[2])
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: 42, Name: "Alice", Email: "a@x.io", Password: "pw", Role: models.RoleSeller}

	gomock.InOrder(
		mockUsers.EXPECT().FindByCredentials(ctx, "a@x.io", "pw").Return(user, nil),
		mockSessions.EXPECT().Save(ctx, user).Return(nil),
	)

	session, err := svc.Login(ctx, Credentials{Email: "a@x.io", Password: "pw"})
	require.NoError(t, err)
	require.True(t, session.Authenticated())
	assert.Equal(t, int64(42), session.User.UserID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// The repository collapses unknown email and wrong password into one
	// error; no session write happens on failure.
	mockUsers.EXPECT().FindByCredentials(ctx, "a@x.io", "nope").Return(models.User{}, store.ErrNoUserWasFound)

	session, err := svc.Login(ctx, Credentials{Email: "a@x.io", Password: "nope"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, session.Authenticated())
}

func TestAuthService_Login_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindByCredentials(ctx, "a@x.io", "pw").Return(models.User{}, errors.New("disk on fire"))

	_, err := svc.Login(ctx, Credentials{Email: "a@x.io", Password: "pw"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Logout / Restore ─────────────────────────────────────────────────────────

func TestAuthService_Logout_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().Delete(ctx).Return(nil).Times(2)

	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.Logout(ctx))
}

func TestAuthService_Restore_Present(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: 7, Name: "Bob", Email: "b@x.io", Role: models.RoleWasteManagement}
	mockSessions.EXPECT().Get(ctx).Return(user, nil)

	session, err := svc.Restore(ctx)
	require.NoError(t, err)
	require.True(t, session.Authenticated())
	assert.Equal(t, models.RoleWasteManagement, session.Role())
}

func TestAuthService_Restore_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().Get(ctx).Return(models.User{}, store.ErrSessionNotFound)

	// An absent record is the unauthenticated session, not an error.
	session, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, session.Authenticated())
	assert.Equal(t, models.RoleNone, session.Role())
}
