package background

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// injections is a singleton for the counter vec.
	injections *prometheus.CounterVec //nolint:gochecknoglobals
)

// injectionCounter returns the counter tracking injection outcomes.
func injectionCounter() *prometheus.CounterVec {
	if injections == nil {
		injections = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "script_injections_total",
				Help: "Number of content-script injection attempts, differentiated by outcome.",
			},
			[]string{"result"},
		)
	}

	return injections
}
