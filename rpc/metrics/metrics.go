// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/kycledger/fault"
)

// request outcome labels
const (
	StatusSuccess  = "success"
	StatusExists   = "exists"
	StatusInvalid  = "invalid"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

var (
	// RequestsTotal counts RPC calls per method and outcome
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kyc_rpc_requests_total",
			Help: "Total RPC requests",
		},
		[]string{"method", "status"},
	)

	// RequestDuration observes the time spent in each RPC method
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kyc_rpc_request_duration_seconds",
			Help:    "RPC request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// OpenConnections is the number of connected RPC clients
	OpenConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kyc_rpc_connections",
			Help: "Currently open RPC connections",
		},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(OpenConnections)
}

// Status - outcome label for an error
func Status(err error) string {
	switch {
	case nil == err:
		return StatusSuccess
	case fault.IsErrExists(err):
		return StatusExists
	case fault.IsErrInvalid(err):
		return StatusInvalid
	case fault.IsErrNotFound(err):
		return StatusNotFound
	default:
		return StatusError
	}
}

// Observe - record one finished request
func Observe(method string, start time.Time, err error) {
	RequestsTotal.WithLabelValues(method, Status(err)).Inc()
	RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// Handler - HTTP handler exposing the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
