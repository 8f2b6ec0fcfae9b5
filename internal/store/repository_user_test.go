package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/models"
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

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userTestColumns = []string{"user_id", "email", "username", "salt", "hash", "activated", "provider", "bio", "image", "created_at"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Email:    "alice@example.com",
		Username: "alice",
		Salt:     "per-user-salt",
		Hash:     "pbkdf2-hash",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows(userTestColumns).
		AddRow(1, user.Email, user.Username, user.Salt, user.Hash, false, nil, nil, nil, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.Username, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
	if created.Activated {
		t.Error("expected a freshly created account to be inactive")
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Email: "alice@example.com", Username: "alice"}

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, models.User{Email: "alice@example.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(userTestColumns).
		AddRow(7, "bob@example.com", "bob", nil, nil, true, "google", "writes about Go", nil, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("bob@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", found.UserID)
	}
	if found.Provider != "google" {
		t.Errorf("expected provider google, got %q", found.Provider)
	}
	if found.Salt != "" {
		t.Errorf("expected empty salt for a social account, got %q", found.Salt)
	}
	if !found.Activated {
		t.Error("expected activated account")
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByProvider_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows(userTestColumns).
		AddRow(9, "carol@gmail.com", "Carol", nil, nil, true, "google", nil, nil, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("Carol", "google").
		WillReturnRows(rows)

	found, err := repo.FindUserByProvider(context.Background(), "Carol", "google")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Username != "Carol" || found.Provider != "google" {
		t.Errorf("unexpected user returned: %+v", found)
	}
}

func TestActivateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ActivateUser(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestActivateUser_UnknownUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ActivateUser(context.Background(), 99)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateCredentials_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs("new-salt", "new-hash", "alice@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateCredentials(context.Background(), "alice@example.com", "new-salt", "new-hash"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateCredentials_UnknownEmail(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WithArgs("salt", "hash", "nobody@example.com").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateCredentials(context.Background(), "nobody@example.com", "salt", "hash")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateCredentials_ExecError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE users").
		WillReturnError(errors.New("connection reset"))

	err := repo.UpdateCredentials(context.Background(), "alice@example.com", "salt", "hash")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
