// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// Counter - number of open client connections, mirrored to a gauge
type Counter struct {
	value uint64
	gauge prometheus.Gauge
}

// New - a counter starting at zero, gauge may be nil
func New(gauge prometheus.Gauge) *Counter {
	return &Counter{gauge: gauge}
}

// Acquire - count one more connection if below the maximum
//
// returns false without counting if the maximum is reached
func (c *Counter) Acquire(maximum uint64) bool {
	for {
		n := atomic.LoadUint64(&c.value)
		if n >= maximum {
			return false
		}
		if atomic.CompareAndSwapUint64(&c.value, n, n+1) {
			if nil != c.gauge {
				c.gauge.Inc()
			}
			return true
		}
	}
}

// Release - count one connection closed
func (c *Counter) Release() {
	for {
		n := atomic.LoadUint64(&c.value)
		if 0 == n {
			return
		}
		if atomic.CompareAndSwapUint64(&c.value, n, n-1) {
			if nil != c.gauge {
				c.gauge.Dec()
			}
			return
		}
	}
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64(&c.value)
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
