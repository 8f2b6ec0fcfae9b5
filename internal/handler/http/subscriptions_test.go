package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/author-haven/internal/service"
	"github.com/MKhiriev/author-haven/internal/store"
	"github.com/MKhiriev/author-haven/models"
)

// mockSubscriptionService implements service.SubscriptionService for unit tests.
type mockSubscriptionService struct {
	subscribeFn   func(ctx context.Context, userID int64, target string) (models.Subscription, error)
	unsubscribeFn func(ctx context.Context, userID int64, target string) (models.Subscription, error)
}

func (m *mockSubscriptionService) Subscribe(ctx context.Context, userID int64, target string) (models.Subscription, error) {
	return m.subscribeFn(ctx, userID, target)
}

func (m *mockSubscriptionService) Unsubscribe(ctx context.Context, userID int64, target string) (models.Subscription, error) {
	return m.unsubscribeFn(ctx, userID, target)
}

func newHandlerWithSubscriptions(t *testing.T, subs service.SubscriptionService) *Handler {
	t.Helper()
	return newTestHandler(t, &service.Services{SubscriptionService: subs})
}

// ─────────────────────────────────────────────
// subscribe
// ─────────────────────────────────────────────

func TestSubscribe_Success(t *testing.T) {
	subs := &mockSubscriptionService{
		subscribeFn: func(_ context.Context, userID int64, target string) (models.Subscription, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "alice", target)
			return models.Subscription{TargetKind: models.TargetAuthor, TargetID: 7, Subscribers: []int64{42}}, nil
		},
	}

	h := newHandlerWithSubscriptions(t, subs)
	req := httptest.NewRequest(http.MethodPost, "/api/subscribe/alice", nil)
	req = injectNopLogger(req)
	req = withUserID(req, 42)
	req = withRouteParam(req, "target", "alice")
	rec := httptest.NewRecorder()

	h.subscribe(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "subscribed", body.Message)
}

func TestSubscribe_UnknownTarget(t *testing.T) {
	subs := &mockSubscriptionService{
		subscribeFn: func(_ context.Context, _ int64, _ string) (models.Subscription, error) {
			return models.Subscription{}, service.ErrSubscriptionTargetNotFound
		},
	}

	h := newHandlerWithSubscriptions(t, subs)
	req := httptest.NewRequest(http.MethodPost, "/api/subscribe/nobody", nil)
	req = injectNopLogger(req)
	req = withUserID(req, 42)
	req = withRouteParam(req, "target", "nobody")
	rec := httptest.NewRecorder()

	h.subscribe(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// unsubscribe
// ─────────────────────────────────────────────

func TestUnsubscribe_Success(t *testing.T) {
	subs := &mockSubscriptionService{
		unsubscribeFn: func(_ context.Context, userID int64, target string) (models.Subscription, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, "notes-on-go-1a2b3c4d5e", target)
			return models.Subscription{TargetKind: models.TargetArticle, TargetID: 9}, nil
		},
	}

	h := newHandlerWithSubscriptions(t, subs)
	req := httptest.NewRequest(http.MethodPost, "/api/unsubscribe/notes-on-go-1a2b3c4d5e", nil)
	req = injectNopLogger(req)
	req = withUserID(req, 42)
	req = withRouteParam(req, "target", "notes-on-go-1a2b3c4d5e")
	rec := httptest.NewRecorder()

	h.unsubscribe(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "unsubscribed", body.Message)
}

func TestUnsubscribe_NotASubscriber(t *testing.T) {
	subs := &mockSubscriptionService{
		unsubscribeFn: func(_ context.Context, _ int64, _ string) (models.Subscription, error) {
			return models.Subscription{}, service.ErrNotSubscribed
		},
	}

	h := newHandlerWithSubscriptions(t, subs)
	req := httptest.NewRequest(http.MethodPost, "/api/unsubscribe/alice", nil)
	req = injectNopLogger(req)
	req = withUserID(req, 42)
	req = withRouteParam(req, "target", "alice")
	rec := httptest.NewRecorder()

	h.unsubscribe(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnsubscribe_NeverSubscribed(t *testing.T) {
	subs := &mockSubscriptionService{
		unsubscribeFn: func(_ context.Context, _ int64, _ string) (models.Subscription, error) {
			return models.Subscription{}, store.ErrSubscriptionNotFound
		},
	}

	h := newHandlerWithSubscriptions(t, subs)
	req := httptest.NewRequest(http.MethodPost, "/api/unsubscribe/alice", nil)
	req = injectNopLogger(req)
	req = withUserID(req, 42)
	req = withRouteParam(req, "target", "alice")
	rec := httptest.NewRecorder()

	h.unsubscribe(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
