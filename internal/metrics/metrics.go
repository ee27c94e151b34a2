package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// dispatchTotal counts whole-request notification dispatches by route and result.
	// Labels:
	// - route: the endpoint name, e.g. send-email or send-match-horoscope
	// - result: success | failure
	dispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astro",
			Subsystem: "notify",
			Name:      "dispatch_total",
			Help:      "Notification dispatch outcomes by route and result.",
		},
		[]string{"route", "result"},
	)

	// messagesTotal counts individual outbound messages by recipient kind and result.
	// Labels:
	// - recipient: admin | customer
	// - result: success | failure
	messagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astro",
			Subsystem: "notify",
			Name:      "messages_total",
			Help:      "Outbound email messages by recipient kind and result.",
		},
		[]string{"recipient", "result"},
	)

	// ordersTotal counts payment order creation outcomes.
	ordersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astro",
			Subsystem: "payments",
			Name:      "orders_total",
			Help:      "Payment gateway order creation outcomes.",
		},
		[]string{"result"},
	)

	// verifyTotal counts payment signature verification outcomes.
	verifyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "astro",
			Subsystem: "payments",
			Name:      "verify_total",
			Help:      "Payment signature verification outcomes.",
		},
		[]string{"result"},
	)
)

// IncDispatch increments the dispatch counter.
func IncDispatch(route, result string) {
	if route == "" {
		route = "unknown"
	}
	if result == "" {
		result = "unknown"
	}
	dispatchTotal.WithLabelValues(route, result).Inc()
}

// IncMessage increments the per-message counter.
func IncMessage(recipient, result string) {
	if recipient == "" {
		recipient = "unknown"
	}
	if result == "" {
		result = "unknown"
	}
	messagesTotal.WithLabelValues(recipient, result).Inc()
}

// IncOrder increments the order creation counter.
func IncOrder(result string) {
	if result == "" {
		result = "unknown"
	}
	ordersTotal.WithLabelValues(result).Inc()
}

// IncVerify increments the signature verification counter.
func IncVerify(result string) {
	if result == "" {
		result = "unknown"
	}
	verifyTotal.WithLabelValues(result).Inc()
}
