// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/assetregistry/fault"
)

// result labels for success and for errors outside the fault classes
const (
	resultSuccess = "success"
	resultError   = "error"
)

// Metrics - registry counters
type Metrics struct {
	Operations *prometheus.CounterVec
	Allocated  prometheus.Gauge
}

// NewMetrics - create the registry metrics and register them
//
// a nil registerer leaves them unregistered but usable
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "assetregistry_operations_total",
				Help: "registry operations by outcome",
			},
			[]string{"operation", "result"},
		),
		Allocated: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "assetregistry_assets_allocated",
				Help: "highest asset identifier allocated",
			},
		),
	}

	if nil == registerer {
		return m, nil
	}

	for _, c := range []prometheus.Collector{m.Operations, m.Allocated} {
		if err := registerer.Register(c); nil != err {
			return nil, err
		}
	}
	return m, nil
}

// registry errors keep their text as the result; anything else, such as
// a LevelDB I/O error, is counted as resultError
func (m *Metrics) observe(operation string, err error) {
	m.Operations.WithLabelValues(operation, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case nil == err:
		return resultSuccess
	case fault.IsErrExists(err),
		fault.IsErrInvalid(err),
		fault.IsErrNotFound(err),
		fault.IsErrPermission(err),
		fault.IsErrProcess(err):
		return err.Error()
	default:
		return resultError
	}
}
