// Package metrics registers Prometheus instrumentation for the contact book.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Commands counts processed commands by command name.
	Commands = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contactbook",
		Name:      "commands_total",
		Help:      "Number of processed commands.",
	}, []string{"command"})

	// ValidationFailures counts rejected field values by field kind.
	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "contactbook",
		Name:      "validation_failures_total",
		Help:      "Number of field values rejected by validation.",
	}, []string{"field"})
)
