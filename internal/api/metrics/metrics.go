// Package metrics defines and registers all custom Prometheus metrics for
// the fitness API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry via promauto; expose
// them with the echoprometheus handler on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fitness"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// SessionsActive tracks sessions created minus sessions explicitly destroyed.
// Lazily expired sessions are not decremented here.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Number of sessions issued and not yet logged out.",
	},
)

// ── Assistant metrics ─────────────────────────────────────────────────────────

// AssistantRequestDuration measures end-to-end latency of assistant calls.
// Label:
//   - op: "plan" or "chat"
var AssistantRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "assistant_request_duration_seconds",
		Help:      "Duration of AI assistant requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// ── Reminder metrics ──────────────────────────────────────────────────────────

// RemindersQueueDepth tracks pending check-in jobs per dispatcher worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var RemindersQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reminders_queue_depth",
		Help:      "Current number of check-in jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// RemindersSentTotal counts check-in delivery attempts.
// Label:
//   - result: "ok" or "error"
var RemindersSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_sent_total",
		Help:      "Total number of check-in messages attempted, labelled by result.",
	},
	[]string{"result"},
)
