// Package metrics provides Prometheus metrics for the turf bot.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for handled actions.
const (
	OutcomeOK           = "ok"
	OutcomeNoop         = "noop"
	OutcomeDenied       = "denied"
	OutcomeEventMissing = "event_missing"
	OutcomeError        = "error"
)

// Manager owns every metric of the process. A nil *Manager records nothing.
type Manager struct {
	namespace string
	subsystem string
	registry  *prometheus.Registry

	eventsCreated    *prometheus.CounterVec
	eventsRemoved    *prometheus.CounterVec
	activeEvents     prometheus.Gauge
	actionsHandled   *prometheus.CounterVec
	platformFailures *prometheus.CounterVec
	viewPushDuration *prometheus.HistogramVec
	journalFailures  prometheus.Counter
}

// NewManager creates a manager on its own registry unless one is given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "turfbot",
		subsystem: "events",
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(collectors.NewGoCollector())
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.eventsCreated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "created_total",
		Help:      "Events created, by type",
	}, []string{"type"})

	m.eventsRemoved = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "removed_total",
		Help:      "Events removed, by reason (deleted, expired)",
	}, []string{"reason"})

	m.activeEvents = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "active",
		Help:      "Events currently held in memory",
	})

	m.actionsHandled = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "actions_total",
		Help:      "Interactive actions handled, by action and outcome",
	}, []string{"action", "outcome"})

	m.platformFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "platform_failures_total",
		Help:      "Swallowed messaging platform failures, by operation and kind",
	}, []string{"op", "kind"})

	m.viewPushDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "view_push_seconds",
		Help:      "Latency of pushing a rendered view",
		Buckets:   prometheus.DefBuckets,
	}, []string{"view"})

	m.journalFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "journal_failures_total",
		Help:      "Journal entries that could not be written",
	})
}

func (m *Manager) EventCreated(eventType string) {
	if m == nil {
		return
	}
	m.eventsCreated.WithLabelValues(eventType).Inc()
}

func (m *Manager) EventRemoved(reason string) {
	if m == nil {
		return
	}
	m.eventsRemoved.WithLabelValues(reason).Inc()
}

func (m *Manager) SetActiveEvents(n int) {
	if m == nil {
		return
	}
	m.activeEvents.Set(float64(n))
}

func (m *Manager) ActionHandled(action, outcome string) {
	if m == nil {
		return
	}
	m.actionsHandled.WithLabelValues(action, outcome).Inc()
}

func (m *Manager) PlatformFailure(op, kind string) {
	if m == nil {
		return
	}
	m.platformFailures.WithLabelValues(op, kind).Inc()
}

func (m *Manager) ObserveViewPush(view string, seconds float64) {
	if m == nil {
		return
	}
	m.viewPushDuration.WithLabelValues(view).Observe(seconds)
}

func (m *Manager) JournalFailure() {
	if m == nil {
		return
	}
	m.journalFailures.Inc()
}

// Handler serves the manager's registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}
