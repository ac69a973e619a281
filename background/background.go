// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background runs long lived goroutines that stop together
package background

import (
	"sync"
)

// Process - a long lived task, Run must return soon after shutdown is closed
type Process interface {
	Run(shutdown <-chan struct{})
}

// T - handle for a set of running processes
type T struct {
	shutdown chan struct{}
	finished sync.WaitGroup
	once     sync.Once
}

// Start - run each process in its own goroutine
func Start(processes ...Process) *T {
	t := &T{
		shutdown: make(chan struct{}),
	}

	t.finished.Add(len(processes))
	for _, p := range processes {
		go func(p Process) {
			defer t.finished.Done()
			p.Run(t.shutdown)
		}(p)
	}
	return t
}

// Stop - signal all processes and wait for them to return
//
// later calls only wait
func (t *T) Stop() {
	t.once.Do(func() {
		close(t.shutdown)
	})
	t.finished.Wait()
}
