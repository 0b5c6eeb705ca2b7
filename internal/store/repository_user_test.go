package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"

	"github.com/esawctha/esawctha/internal/logger"
	"github.com/esawctha/esawctha/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func uniqueViolation() error {
	return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	user := models.User{
		UserID:    1700000000000,
		Name:      "Alice",
		Email:     "a@x.io",
		Password:  "pw",
		Role:      models.RoleSeller,
		CreatedAt: now,
	}

	rows := sqlmock.
		NewRows([]string{"user_id", "name", "email", "password", "role", "created_at"}).
		AddRow(user.UserID, user.Name, user.Email, user.Password, string(user.Role), now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.UserID, user.Name, user.Email, user.Password, string(user.Role), now).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != user.UserID {
		t.Errorf("expected UserID=%d, got %d", user.UserID, created.UserID)
	}
	if created.Role != models.RoleSeller {
		t.Errorf("expected seller role, got %q", created.Role)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(uniqueViolation())

	_, err := repo.CreateUser(ctx, models.User{Email: "a@x.io"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.User{Email: "a@x.io"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindByCredentials_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "name", "email", "password", "role", "created_at"}).
		AddRow(int64(7), "Bob", "b@x.io", "pw", "waste-management", now)

	mock.ExpectQuery("SELECT(.+)FROM users").
		WithArgs("b@x.io", "pw").
		WillReturnRows(rows)

	found, err := repo.FindByCredentials(ctx, "b@x.io", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Role != models.RoleWasteManagement {
		t.Errorf("expected waste-management role, got %q", found.Role)
	}
}

func TestFindByCredentials_NoMatch(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	// Wrong password and unknown email produce the same empty result set and
	// therefore the same error value.
	mock.ExpectQuery("SELECT(.+)FROM users").
		WithArgs("b@x.io", "wrong").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "password", "role", "created_at"}))

	_, err := repo.FindByCredentials(ctx, "b@x.io", "wrong")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestEmailExists(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("a@x.io").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.EmailExists(ctx, "a@x.io")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected email to exist")
	}
}
