// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

// Process - a long running task
//
// Run must return soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// the shutdown and completed channels for one process
type handle struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for a set of running processes
type T struct {
	h []handle
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		h: make([]handle, len(processes)),
	}

	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.h[i].shutdown = shutdown
		register.h[i].finished = finished

		go func(p Process) {
			defer close(finished)
			p.Run(args, shutdown)
		}(p)
	}
	return register
}

// Stop - signal all processes to stop then wait for each to finish
func (t *T) Stop() {
	if nil == t {
		return
	}

	for _, h := range t.h {
		close(h.shutdown)
	}

	for _, h := range t.h {
		<-h.finished
	}
}
