package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/internal/mock"
	"github.com/MKhiriev/author-haven/internal/store"
	"github.com/MKhiriev/author-haven/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSubscriptionSvc(t *testing.T, ctrl *gomock.Controller) (SubscriptionService, *mock.MockSubscriptionRepository, *mock.MockArticleRepository, *mock.MockUserRepository) {
	t.Helper()

	subscriptions := mock.NewMockSubscriptionRepository(ctrl)
	articles := mock.NewMockArticleRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewSubscriptionService(subscriptions, articles, users, logger.Nop())

	return svc, subscriptions, articles, users
}

func TestSubscriptionService_Subscribe_ToArticle(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	svc, subscriptions, articles, _ := newTestSubscriptionSvc(t, ctrl)

	gomock.InOrder(
		articles.EXPECT().FindArticleBySlug(ctx, "some-slug").Return(models.Article{ID: 9}, nil),
		subscriptions.EXPECT().AddSubscriber(ctx, models.TargetArticle, int64(9), int64(5)).Return(nil),
		subscriptions.EXPECT().FindSubscription(ctx, models.TargetArticle, int64(9)).Return(models.Subscription{
			TargetKind:  models.TargetArticle,
			TargetID:    9,
			Subscribers: []int64{5},
		}, nil),
	)

	subscription, err := svc.Subscribe(ctx, 5, "some-slug")

	require.NoError(t, err)
	assert.True(t, subscription.HasSubscriber(5))
}

func TestSubscriptionService_Subscribe_ToAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	svc, subscriptions, articles, users := newTestSubscriptionSvc(t, ctrl)

	gomock.InOrder(
		articles.EXPECT().FindArticleBySlug(ctx, "writer").Return(models.Article{}, store.ErrArticleNotFound),
		users.EXPECT().FindUserByUsername(ctx, "writer").Return(models.User{UserID: 7, Username: "writer"}, nil),
		subscriptions.EXPECT().AddSubscriber(ctx, models.TargetAuthor, int64(7), int64(5)).Return(nil),
		subscriptions.EXPECT().FindSubscription(ctx, models.TargetAuthor, int64(7)).Return(models.Subscription{
			TargetKind:  models.TargetAuthor,
			TargetID:    7,
			Subscribers: []int64{5},
		}, nil),
	)

	subscription, err := svc.Subscribe(ctx, 5, "writer")

	require.NoError(t, err)
	assert.Equal(t, models.TargetAuthor, subscription.TargetKind)
}

func TestSubscriptionService_Subscribe_TargetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	svc, _, articles, users := newTestSubscriptionSvc(t, ctrl)

	gomock.InOrder(
		articles.EXPECT().FindArticleBySlug(ctx, "nobody").Return(models.Article{}, store.ErrArticleNotFound),
		users.EXPECT().FindUserByUsername(ctx, "nobody").Return(models.User{}, store.ErrNoUserWasFound),
	)

	_, err := svc.Subscribe(ctx, 5, "nobody")

	assert.ErrorIs(t, err, ErrSubscriptionTargetNotFound)
}

func TestSubscriptionService_Subscribe_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	svc, subscriptions, articles, _ := newTestSubscriptionSvc(t, ctrl)

	// second subscribe finds the user already present in the set
	gomock.InOrder(
		articles.EXPECT().FindArticleBySlug(ctx, "some-slug").Return(models.Article{ID: 9}, nil),
		subscriptions.EXPECT().AddSubscriber(ctx, models.TargetArticle, int64(9), int64(5)).Return(nil),
		subscriptions.EXPECT().FindSubscription(ctx, models.TargetArticle, int64(9)).Return(models.Subscription{
			TargetKind:  models.TargetArticle,
			TargetID:    9,
			Subscribers: []int64{5},
		}, nil),
	)

	subscription, err := svc.Subscribe(ctx, 5, "some-slug")

	require.NoError(t, err)
	assert.Len(t, subscription.Subscribers, 1)
}

func TestSubscriptionService_Unsubscribe_FromArticle(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	svc, subscriptions, articles, _ := newTestSubscriptionSvc(t, ctrl)

	gomock.InOrder(
		articles.EXPECT().FindArticleBySlug(ctx, "some-slug").Return(models.Article{ID: 9}, nil),
		subscriptions.EXPECT().FindSubscription(ctx, models.TargetArticle, int64(9)).Return(models.Subscription{
			TargetKind:  models.TargetArticle,
			TargetID:    9,
			Subscribers: []int64{5, 7},
		}, nil),
		subscriptions.EXPECT().RemoveSubscriber(ctx, models.TargetArticle, int64(9), int64(5)).Return(nil),
		subscriptions.EXPECT().FindSubscription(ctx, models.TargetArticle, int64(9)).Return(models.Subscription{
			TargetKind:  models.TargetArticle,
			TargetID:    9,
			Subscribers: []int64{7},
		}, nil),
	)

	subscription, err := svc.Unsubscribe(ctx, 5, "some-slug")

	require.NoError(t, err)
	assert.False(t, subscription.HasSubscriber(5))
}

func TestSubscriptionService_Unsubscribe_NotASubscriber(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	svc, subscriptions, articles, _ := newTestSubscriptionSvc(t, ctrl)

	// the set exists but holds someone else; removal must be rejected
	// before the repository is asked to touch the row
	gomock.InOrder(
		articles.EXPECT().FindArticleBySlug(ctx, "some-slug").Return(models.Article{ID: 9}, nil),
		subscriptions.EXPECT().FindSubscription(ctx, models.TargetArticle, int64(9)).Return(models.Subscription{
			TargetKind:  models.TargetArticle,
			TargetID:    9,
			Subscribers: []int64{7},
		}, nil),
	)

	_, err := svc.Unsubscribe(ctx, 5, "some-slug")

	assert.ErrorIs(t, err, ErrNotSubscribed)
}

func TestSubscriptionService_Unsubscribe_NoSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	svc, subscriptions, articles, _ := newTestSubscriptionSvc(t, ctrl)

	gomock.InOrder(
		articles.EXPECT().FindArticleBySlug(ctx, "some-slug").Return(models.Article{ID: 9}, nil),
		subscriptions.EXPECT().FindSubscription(ctx, models.TargetArticle, int64(9)).Return(models.Subscription{}, store.ErrSubscriptionNotFound),
	)

	_, err := svc.Unsubscribe(ctx, 5, "some-slug")

	assert.ErrorIs(t, err, store.ErrSubscriptionNotFound)
}
