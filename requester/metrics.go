// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "avalanche_sdk"

type metrics struct {
	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	requests, err := registerOrReuse(r, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "number of JSON-RPC requests sent",
		},
		[]string{"method"},
	))
	if err != nil {
		return nil, err
	}
	errs, err := registerOrReuse(r, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_errors_total",
			Help:      "number of JSON-RPC requests that failed",
		},
		[]string{"method"},
	))
	if err != nil {
		return nil, err
	}
	duration, err := registerOrReuse(r, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "time spent waiting for JSON-RPC responses",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	))
	if err != nil {
		return nil, err
	}
	return &metrics{
		requests: requests,
		errors:   errs,
		duration: duration,
	}, nil
}

// registerOrReuse registers [c], returning the collector that is already
// registered under the same name if there is one.
func registerOrReuse[T prometheus.Collector](r prometheus.Registerer, c T) (T, error) {
	err := r.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	return c, err
}

// observe is a no-op on a nil receiver so requesters without a registerer
// need no checks.
func (m *metrics) observe(method string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method).Inc()
	m.duration.WithLabelValues(method).Observe(d.Seconds())
	if err != nil {
		m.errors.WithLabelValues(method).Inc()
	}
}
