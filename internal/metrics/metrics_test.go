package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPRequestsTotal_Increments(t *testing.T) {
	initial := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/feeds", "200"))

	HTTPRequestsTotal.WithLabelValues("GET", "/api/feeds", "200").Inc()

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/feeds", "200"))
	assert.Equal(t, initial+1, after)
}

func TestHTTPRequestsInFlight_Gauge(t *testing.T) {
	initial := testutil.ToFloat64(HTTPRequestsInFlight)

	HTTPRequestsInFlight.Inc()
	assert.Equal(t, initial+1, testutil.ToFloat64(HTTPRequestsInFlight))

	HTTPRequestsInFlight.Dec()
	assert.Equal(t, initial, testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestArticlesCreated_ByStatus(t *testing.T) {
	initial := testutil.ToFloat64(ArticlesCreated.WithLabelValues("draft"))

	ArticlesCreated.WithLabelValues("draft").Inc()

	assert.Equal(t, initial+1, testutil.ToFloat64(ArticlesCreated.WithLabelValues("draft")))
}

func TestHTTPRequestDuration_Observes(t *testing.T) {
	HTTPRequestDuration.WithLabelValues("POST", "/api/articles").Observe(0.042)

	count := testutil.CollectAndCount(HTTPRequestDuration)
	assert.GreaterOrEqual(t, count, 1)
}
