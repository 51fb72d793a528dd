package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signups",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of successful signups, per activity.",
	}, []string{"activity"})
	unregistrationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signups",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Number of successful unregistrations, per activity.",
	}, []string{"activity"})
	rejectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signups",
		Subsystem: "roster",
		Name:      "rejections_total",
		Help:      "Roster mutations rejected by a precondition, per operation and reason.",
	}, []string{"operation", "reason"})
	rosterSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "signups",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current roster size, per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupsTotal, unregistrationsTotal, rejectionsTotal, rosterSize)
}

// RecordSignup counts a successful signup and updates the roster gauge.
func RecordSignup(activity string, roster int) {
	signupsTotal.WithLabelValues(activity).Inc()
	rosterSize.WithLabelValues(activity).Set(float64(roster))
}

// RecordUnregister counts a successful unregistration and updates the roster gauge.
func RecordUnregister(activity string, roster int) {
	unregistrationsTotal.WithLabelValues(activity).Inc()
	rosterSize.WithLabelValues(activity).Set(float64(roster))
}

// RecordRejection counts a mutation refused by a precondition check.
func RecordRejection(operation, reason string) {
	rejectionsTotal.WithLabelValues(operation, reason).Inc()
}

// SetRosterSize primes the roster gauge, used once at startup for seed data.
func SetRosterSize(activity string, roster int) {
	rosterSize.WithLabelValues(activity).Set(float64(roster))
}
