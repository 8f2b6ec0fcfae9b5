package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, activation, and credential rotation
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
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

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Username, nullString(user.Salt), nullString(user.Hash), nullString(user.Provider))

	var created models.User
	if err := scanUser(row, &created); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user was not created")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the user record registered with the given email.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, findUserByEmail, email)
}

// FindUserByID retrieves the user record with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, userID)
}

// FindUserByUsername retrieves the user record with the given display name.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

// FindUserByProvider retrieves the social account registered under the
// given display name and OAuth provider pair.
func (r *userRepository) FindUserByProvider(ctx context.Context, username, provider string) (models.User, error) {
	return r.findUser(ctx, findUserByProvider, username, provider)
}

// ActivateUser idempotently flips the activation flag to true. Activating
// an already-activated account is not an error.
func (r *userRepository) ActivateUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, activateUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ActivateUser").Msg("error: activation update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// UpdateCredentials overwrites the stored salt and hash of the account
// registered with the given email. Used by the password-reset flow; the
// previous credential is unrecoverable afterwards.
func (r *userRepository) UpdateCredentials(ctx context.Context, email, salt, hash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateCredentials, salt, hash, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateCredentials").Msg("error: credentials update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) findUser(ctx context.Context, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := scanUser(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// scanUser reads one users row. Salt, hash, and provider are nullable
// because social accounts carry no local credential.
func scanUser(row *sql.Row, user *models.User) error {
	var salt, hash, provider, bio, image sql.NullString

	if err := row.Scan(&user.UserID, &user.Email, &user.Username, &salt, &hash, &user.Activated, &provider, &bio, &image, &user.CreatedAt); err != nil {
		return err
	}

	user.Salt = salt.String
	user.Hash = hash.String
	user.Provider = provider.String
	user.Bio = bio.String
	user.Image = image.String

	return nil
}

// nullString maps an empty string to SQL NULL so optional columns stay
// NULL instead of holding empty strings.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
