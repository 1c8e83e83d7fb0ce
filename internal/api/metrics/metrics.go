// Package metrics defines the custom Prometheus metrics for the auth
// service. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry when the
// package is imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth"

// SignupsTotal counts successful registrations.
// Label:
//   - role: "customer", "vendor", or "delivery"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful signups, by role.",
	},
	[]string{"role"},
)

// SignupFailuresTotal counts rejected registrations.
// Label:
//   - reason: "validation", "duplicate_email", or "internal"
var SignupFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signup_failures_total",
		Help:      "Total number of failed signups, by reason.",
	},
	[]string{"reason"},
)

// LoginsTotal counts successful logins.
// Label:
//   - role: "customer", "vendor", or "delivery"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)

// LoginFailuresTotal counts rejected logins.
// Label:
//   - reason: "validation", "credentials", "throttled", or "internal"
var LoginFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of failed logins, by reason.",
	},
	[]string{"reason"},
)

// RealtimeConnections tracks the number of currently open websocket
// connections on the realtime channel.
var RealtimeConnections = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "realtime_connections",
		Help:      "Number of currently connected realtime clients.",
	},
)
