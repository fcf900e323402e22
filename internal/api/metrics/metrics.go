// Package metrics defines and registers all custom Prometheus metrics for the
// office API. It is the single source of truth for metric names, labels, and
// help strings. Request counts and latencies come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "office"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts requests rejected by the session verifier or the
// identity resolver.
// Label:
//   - reason: the taxonomy kind of the failure (e.g. "unauthenticated", "forbidden")
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected during authentication.",
	},
	[]string{"reason"},
)

// AuthzDeniedTotal counts requests stopped by the authorization gate.
// Label:
//   - role: the caller's role, or "anonymous"
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of requests denied by role checks.",
	},
	[]string{"role"},
)

// ValidationFailuresTotal counts requests rejected by the request validator.
// Label:
//   - route: the matched route pattern (e.g. "/api/patients/:id")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected by input validation.",
	},
	[]string{"route"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts audit events by outcome.
// Label:
//   - result: "queued" (handed to the recorder), "dropped" (queue full) or
//     "failed" (store rejected it)
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events, labelled by outcome.",
	},
	[]string{"result"},
)

// ── Error metrics ─────────────────────────────────────────────────────────────

// ErrorsTotal counts responses produced by the error normalizer.
// Label:
//   - kind: the taxonomy kind, or "http" for router errors
var ErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "errors_total",
		Help:      "Total number of error responses, by error kind.",
	},
	[]string{"kind"},
)
