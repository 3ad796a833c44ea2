// Package metrics defines and registers all custom Prometheus metrics for
// the POS booking API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pos"

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - service: the booked salon service (e.g. "manicure")
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by service.",
	},
	[]string{"service"},
)

// NotificationsTotal counts confirmation-email attempts.
// Label:
//   - result: "sent" or "error"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of confirmation email attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts rejected requests on protected routes.
// Label:
//   - reason: "missing_header", "malformed_header", "invalid_token", "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected requests on protected routes, by reason.",
	},
	[]string{"reason"},
)
