package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MinesBot_Go/internal/domain"
	"github.com/osse101/MinesBot_Go/internal/event"
)

func TestEventMetricsCollector_RecordsGameEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()
	now := time.Now()

	minesBefore := testutil.ToFloat64(MinesTotal.WithLabelValues("4"))
	cappedBefore := testutil.ToFloat64(DropsCapped.WithLabelValues("4"))
	soldBefore := testutil.ToFloat64(ResourcesSold.WithLabelValues("gold"))
	finishedBefore := testutil.ToFloat64(LadderFinished.WithLabelValues(string(domain.PickLost)))
	exhaustedBefore := testutil.ToFloat64(CollectibleExhausted.WithLabelValues("low_rider"))

	require.NoError(t, bus.Publish(ctx, event.New(event.MineCompleted, domain.MineCompletedPayload{Tier: 4, TotalValue: 900, Capped: true}, now)))
	require.NoError(t, bus.Publish(ctx, event.New(event.ResourceSold, domain.ResourceSoldPayload{Resource: domain.ResourceGold, Quantity: 6, SoftGained: 30}, now)))
	require.NoError(t, bus.Publish(ctx, event.New(event.LadderFinished, domain.LadderFinishedPayload{Outcome: domain.PickLost}, now)))
	require.NoError(t, bus.Publish(ctx, event.New(event.CollectibleExhausted, domain.CollectibleExhaustedPayload{Kind: "low_rider"}, now)))

	assert.Equal(t, minesBefore+1, testutil.ToFloat64(MinesTotal.WithLabelValues("4")))
	assert.Equal(t, cappedBefore+1, testutil.ToFloat64(DropsCapped.WithLabelValues("4")))
	assert.Equal(t, soldBefore+6, testutil.ToFloat64(ResourcesSold.WithLabelValues("gold")))
	assert.Equal(t, finishedBefore+1, testutil.ToFloat64(LadderFinished.WithLabelValues(string(domain.PickLost))))
	assert.Equal(t, exhaustedBefore+1, testutil.ToFloat64(CollectibleExhausted.WithLabelValues("low_rider")))
}

func TestEventMetricsCollector_BadPayloadCountsError(t *testing.T) {
	collector := NewEventMetricsCollector()
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.CaseOpened)))

	err := collector.HandleEvent(context.Background(), event.New(event.CaseOpened, "not a payload", time.Now()))

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.CaseOpened))))
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/v1/ladder/session", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/ladder/session", "404"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ladder/session", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/ladder/session", "404")))
}

func TestMiddleware_SilentHandlerCountsAsOK(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/version", func(http.ResponseWriter, *http.Request) {})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/version", "200"))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/version", "200")))
}
