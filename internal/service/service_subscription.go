package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/internal/store"
	"github.com/MKhiriev/author-haven/models"
)

// subscriptionService is the concrete implementation of SubscriptionService.
// A subscription target string is resolved to an article by slug first and
// falls back to an author by username, so a username that happens to equal
// some article's slug resolves to the article.
type subscriptionService struct {
	subscriptionRepository store.SubscriptionRepository
	articleRepository      store.ArticleRepository
	userRepository         store.UserRepository
	logger                 *logger.Logger
}

// NewSubscriptionService constructs a SubscriptionService backed by the given repositories.
func NewSubscriptionService(subscriptionRepository store.SubscriptionRepository, articleRepository store.ArticleRepository, userRepository store.UserRepository, logger *logger.Logger) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		articleRepository:      articleRepository,
		userRepository:         userRepository,
		logger:                 logger,
	}
}

// Subscribe adds the user to the target's subscriber set and returns the
// refreshed subscription. Subscribing twice is a no-op: the set semantics
// keep the subscriber recorded once.
//
// Returns ErrSubscriptionTargetNotFound when the target string resolves to
// neither an article slug nor an author username.
func (s *subscriptionService) Subscribe(ctx context.Context, userID int64, target string) (models.Subscription, error) {
	log := logger.FromContext(ctx)

	targetKind, targetID, err := s.resolveTarget(ctx, target)
	if err != nil {
		log.Err(err).Str("target", target).Msg("subscription target resolution failed")
		return models.Subscription{}, err
	}

	if err := s.subscriptionRepository.AddSubscriber(ctx, targetKind, targetID, userID); err != nil {
		log.Err(err).Str("target_kind", targetKind).Int64("target_id", targetID).Msg("subscriber addition failed")
		return models.Subscription{}, fmt.Errorf("subscriber addition failed: %w", err)
	}

	subscription, err := s.subscriptionRepository.FindSubscription(ctx, targetKind, targetID)
	if err != nil {
		log.Err(err).Str("target_kind", targetKind).Int64("target_id", targetID).Msg("subscription lookup failed")
		return models.Subscription{}, fmt.Errorf("subscription lookup failed: %w", err)
	}

	return subscription, nil
}

// Unsubscribe removes the user from the target's subscriber set and returns
// the refreshed subscription. Membership is checked first: the array_remove
// statement matches the row whether or not the caller is in the set, so
// without the check a stranger could "unsubscribe" successfully.
//
// Returns ErrSubscriptionTargetNotFound when the target does not resolve, a
// wrapped store.ErrSubscriptionNotFound when no subscriber set exists for it,
// and ErrNotSubscribed when the caller is not in the set.
func (s *subscriptionService) Unsubscribe(ctx context.Context, userID int64, target string) (models.Subscription, error) {
	log := logger.FromContext(ctx)

	targetKind, targetID, err := s.resolveTarget(ctx, target)
	if err != nil {
		log.Err(err).Str("target", target).Msg("subscription target resolution failed")
		return models.Subscription{}, err
	}

	subscription, err := s.subscriptionRepository.FindSubscription(ctx, targetKind, targetID)
	if err != nil {
		log.Err(err).Str("target_kind", targetKind).Int64("target_id", targetID).Msg("subscription lookup failed")
		return models.Subscription{}, fmt.Errorf("subscription lookup failed: %w", err)
	}

	if !subscription.HasSubscriber(userID) {
		log.Error().Str("target_kind", targetKind).Int64("target_id", targetID).Int64("user_id", userID).Msg("unsubscribe attempt by non-subscriber")
		return models.Subscription{}, ErrNotSubscribed
	}

	if err := s.subscriptionRepository.RemoveSubscriber(ctx, targetKind, targetID, userID); err != nil {
		log.Err(err).Str("target_kind", targetKind).Int64("target_id", targetID).Msg("subscriber removal failed")
		return models.Subscription{}, fmt.Errorf("subscriber removal failed: %w", err)
	}

	subscription, err = s.subscriptionRepository.FindSubscription(ctx, targetKind, targetID)
	if err != nil {
		log.Err(err).Str("target_kind", targetKind).Int64("target_id", targetID).Msg("subscription lookup failed")
		return models.Subscription{}, fmt.Errorf("subscription lookup failed: %w", err)
	}

	return subscription, nil
}

// resolveTarget maps a slug-or-username string to a (kind, id) pair.
func (s *subscriptionService) resolveTarget(ctx context.Context, target string) (string, int64, error) {
	article, err := s.articleRepository.FindArticleBySlug(ctx, target)
	if err == nil {
		return models.TargetArticle, article.ID, nil
	}
	if !errors.Is(err, store.ErrArticleNotFound) {
		return "", 0, fmt.Errorf("article search by slug failed: %w", err)
	}

	author, err := s.userRepository.FindUserByUsername(ctx, target)
	if err == nil {
		return models.TargetAuthor, author.UserID, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return "", 0, fmt.Errorf("user search by username failed: %w", err)
	}

	return "", 0, ErrSubscriptionTargetNotFound
}
