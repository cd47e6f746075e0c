// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/dustin/go-humanize"

	"github.com/PepeCosmico/soldb/ledger"
)

const (
	statsDelay  = 60 * time.Second
	statusDelay = 5 * time.Minute
)

type memoryStats struct{}

// log memory usage until shutdown
func (memoryStats) Run(args interface{}, shutdown <-chan struct{}) {

	log := logger.New("memory")

loop:
	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		log.Infof("allocated: %s  cumulative: %s  OS virtual: %s  GC: %d",
			humanize.IBytes(m.Alloc), humanize.IBytes(m.TotalAlloc), humanize.IBytes(m.Sys), m.NumGC)

		select {
		case <-shutdown:
			break loop
		case <-time.After(statsDelay):
		}
	}
	log.Info("stopped")
	log.Flush()
}

type ledgerStatus struct {
	ledger *ledger.Ledger
}

// periodically report the committed slot
func (s ledgerStatus) Run(args interface{}, shutdown <-chan struct{}) {

	log := logger.New("status")

	previous := s.ledger.Slot()
	started := time.Now()
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(statusDelay):
		}

		slot := s.ledger.Slot()
		log.Infof("slot: %d  committed: %d since: %s", slot, slot-previous, humanize.Time(started))
		previous = slot
		started = time.Now()
	}
	log.Info("stopped")
}
