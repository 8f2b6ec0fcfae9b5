package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/models"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository]: the revocation set consulted on every authenticated
// request. Rows outlive their token's expiry only until the sweeper runs.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// BlacklistToken inserts the token into the revocation set keyed by its
// original expiry. Revoking an already-revoked token is a no-op.
func (r *tokenRepository) BlacklistToken(ctx context.Context, token models.BlacklistToken) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, blacklistToken, token.Token, token.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*tokenRepository.BlacklistToken").Msg("error: blacklisting token failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// IsTokenBlacklisted reports whether the token is in the revocation set.
// A revoked token is rejected regardless of its cryptographic validity.
func (r *tokenRepository) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	log := logger.FromContext(ctx)

	var revoked bool
	if err := r.db.QueryRowContext(ctx, isTokenBlacklisted, token).Scan(&revoked); err != nil {
		log.Err(err).Str("func", "*tokenRepository.IsTokenBlacklisted").Msg("error: revocation check failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return revoked, nil
}

// DeleteExpiredTokens sweeps rows whose expiry has passed. An expired
// token could not authenticate anyway, so removing the row is safe.
// Returns the number of rows removed.
func (r *tokenRepository) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteExpiredTokens)
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteExpiredTokens").Msg("error: sweeping expired tokens failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
