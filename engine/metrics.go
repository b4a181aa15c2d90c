// SPDX-License-Identifier: MIT

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Specialization outcomes, used as the "result" label.
const (
	resultCompiled   = "compiled"
	resultCapability = "capability_error"
	resultCompile    = "compile_error"
)

// metrics counts bootstrap outcomes per (operation, element type).
type metrics struct {
	specializations *prometheus.CounterVec
}

func newMetrics() *metrics {
	return &metrics{
		specializations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "numerus",
			Name:      "specializations_total",
			Help:      "Bootstrap runs per operation and element type, by outcome.",
		}, []string{"operation", "element_type", "result"}),
	}
}

func (m *metrics) observe(op, elem, result string) {
	m.specializations.WithLabelValues(op, elem, result).Inc()
}
