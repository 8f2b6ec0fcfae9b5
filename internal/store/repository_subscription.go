package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/models"
	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

// subscriptionRepository is the PostgreSQL-backed implementation of
// [SubscriptionRepository]. Each row holds one subscriber set keyed by the
// discriminated (target_kind, target_id) pair; the bigint[] column keeps
// membership updates a single statement.
type subscriptionRepository struct {
	logger *logger.Logger
	db     *DB
	sb     squirrel.StatementBuilderType
}

// NewSubscriptionRepository constructs a [SubscriptionRepository] backed by
// the provided database connection and logger.
func NewSubscriptionRepository(db *DB, logger *logger.Logger) SubscriptionRepository {
	logger.Debug().Msg("creating subscription repository")
	return &subscriptionRepository{
		db:     db,
		logger: logger,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FindSubscription retrieves the subscriber set for the given target key,
// or [ErrSubscriptionNotFound] when no record exists for it yet.
func (r *subscriptionRepository) FindSubscription(ctx context.Context, targetKind string, targetID int64) (models.Subscription, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.sb.
		Select("id", "target_kind", "target_id", "subscriber_ids").
		From("subscriptions").
		Where(squirrel.Eq{"target_kind": targetKind, "target_id": targetID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*subscriptionRepository.FindSubscription").Msg("error: building query")
		return models.Subscription{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Subscription
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&found.ID, &found.TargetKind, &found.TargetID, pq.Array(&found.Subscribers)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Subscription{}, ErrSubscriptionNotFound
		}
		log.Err(err).Str("func", "*subscriptionRepository.FindSubscription").Msg("error: scanning error")
		return models.Subscription{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// AddSubscriber puts userID into the target's subscriber set, creating the
// record when it is the first subscriber. The upsert keeps set semantics:
// adding an already-present subscriber is a no-op, also under concurrency.
func (r *subscriptionRepository) AddSubscriber(ctx context.Context, targetKind string, targetID, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, addSubscriber, targetKind, targetID, userID); err != nil {
		log.Err(err).Str("func", "*subscriptionRepository.AddSubscriber").Msg("error: adding subscriber failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RemoveSubscriber drops userID from the target's subscriber set. Returns
// [ErrSubscriptionNotFound] when no record exists for the target key;
// membership of the caller is the service layer's check.
func (r *subscriptionRepository) RemoveSubscriber(ctx context.Context, targetKind string, targetID, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, removeSubscriber, targetKind, targetID, userID)
	if err != nil {
		log.Err(err).Str("func", "*subscriptionRepository.RemoveSubscriber").Msg("error: removing subscriber failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}
