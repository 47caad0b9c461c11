// Package metrics holds the relay's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Registry = prometheus.NewRegistry()

	Connections = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "relay",
		Name:      "connections",
		Help:      "Live websocket connections.",
	})
	Rooms = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "relay",
		Name:      "rooms",
		Help:      "Rooms with at least one member.",
	})
	Events = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relay",
		Name:      "inbound_events_total",
		Help:      "Inbound events handled, by event name.",
	}, []string{"event"})
	Delivered = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relay",
		Name:      "delivered_frames_total",
		Help:      "Outbound frames queued to a recipient, by event name.",
	}, []string{"event"})
	Dropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "relay",
		Name:      "dropped_frames_total",
		Help:      "Outbound frames dropped on a full send queue, by event name.",
	}, []string{"event"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		Connections, Rooms, Events, Delivered, Dropped,
	)
}

// Handler exposes Prometheus metrics at /metrics
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
