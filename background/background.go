// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - start and stop long running goroutines
//
// each process runs until its shutdown channel is closed; Stop closes
// every channel and waits for all processes to return
package background

import (
	"sync"
)

// Process - a background task
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a started set of processes
type T struct {
	sync.Mutex
	shutdown []chan struct{}
	wg       sync.WaitGroup
	stopped  bool
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make([]chan struct{}, len(processes)),
	}

	for i, p := range processes {
		shutdown := make(chan struct{})
		register.shutdown[i] = shutdown
		register.wg.Add(1)
		go func(p Process) {
			defer register.wg.Done()
			p.Run(args, shutdown)
		}(p)
	}
	return register
}

// Stop - stop a set of background processes and wait for them
//
// calling Stop more than once is harmless
func (t *T) Stop() {
	t.Lock()
	if t.stopped {
		t.Unlock()
		return
	}
	t.stopped = true
	for _, shutdown := range t.shutdown {
		close(shutdown)
	}
	t.Unlock()

	t.wg.Wait()
}
