// Package metrics defines and registers all custom Prometheus metrics for the
// hungry-den API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at package load; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hungryden"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokensIssuedTotal counts bearer tokens issued by GET /jwt.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of bearer tokens issued.",
	},
)

// TokenRejectionsTotal counts token requests refused because the email is not
// a recognised user.
var TokenRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of token requests rejected for unknown emails.",
	},
)

// AuthRejectionsTotal counts requests rejected by the access guard.
// Label:
//   - reason: "missing_header", "malformed_header", or "invalid_token"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// ── Role metrics ──────────────────────────────────────────────────────────────

// RoleChangesTotal counts applied role mutations (matched a user document).
// Label:
//   - role: the role written ("admin", "dman", "user")
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of user role changes applied, by new role.",
	},
	[]string{"role"},
)

// ── Order and payment metrics ─────────────────────────────────────────────────

// OrdersCreatedTotal counts placed orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed.",
	},
)

// PaymentIntentsTotal counts payment-intent creation attempts.
// Label:
//   - result: "ok" or "error"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intent creations, by result.",
	},
	[]string{"result"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// MenuCacheTotal counts menu cache lookups.
// Label:
//   - result: "hit" or "miss"
var MenuCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_cache_total",
		Help:      "Total number of menu cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
