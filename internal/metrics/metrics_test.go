package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestHandler_ExposesRelayCollectors(t *testing.T) {
	Connections.Set(3)
	Events.WithLabelValues("join_room").Inc()
	t.Cleanup(func() {
		Connections.Set(0)
		Events.Reset()
	})

	require.InDelta(t, 3, testutil.ToFloat64(Connections), 0)
	require.InDelta(t, 1, testutil.ToFloat64(Events.WithLabelValues("join_room")), 0)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "relay_connections 3")
	require.Contains(t, w.Body.String(), `relay_inbound_events_total{event="join_room"} 1`)
}
