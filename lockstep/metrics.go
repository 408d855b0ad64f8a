// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package lockstep

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	accepted  prometheus.Counter
	rejected  prometheus.Counter
	collected prometheus.Counter
	trimmed   prometheus.Counter
	buffered  prometheus.Gauge
}

func newMetrics(registry prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lockstep",
			Name:      "inputs_accepted",
			Help:      "number of inputs accepted into the buffer",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lockstep",
			Name:      "inputs_rejected",
			Help:      "number of inputs rejected for breaking tick continuity",
		}),
		collected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lockstep",
			Name:      "inputs_collected",
			Help:      "number of inputs handed to the simulation",
		}),
		trimmed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lockstep",
			Name:      "inputs_trimmed",
			Help:      "number of inputs dropped as confirmed",
		}),
		buffered: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lockstep",
			Name:      "buffered_inputs",
			Help:      "number of inputs currently buffered",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		registry.Register(m.accepted),
		registry.Register(m.rejected),
		registry.Register(m.collected),
		registry.Register(m.trimmed),
		registry.Register(m.buffered),
	)
	return m, errs.Err
}
