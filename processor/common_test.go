// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/cell"
	"github.com/PepeCosmico/soldb/cellrecord"
	"github.com/PepeCosmico/soldb/instruction"
	"github.com/PepeCosmico/soldb/processor"
	"github.com/PepeCosmico/soldb/rent"
)

const (
	testingDirName = "testing"
)

var (
	programID, _ = address.FromBase58("SDBPbpwuFzj8zjhf4LjQJwYoy2SAJETeBDGKb8keRpq")
	testRent     = rent.Default()
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func newTestProcessor() *processor.Processor {
	return processor.New(logger.New("processor"), programID)
}

// owner cell with funds
func newOwner(b byte) *cell.Cell {
	return &cell.Cell{
		Address:  address.Address{b, 0x5a, 0xa5},
		Owner:    address.SystemProgram,
		Balance:  1000000000,
		Signer:   true,
		Writable: true,
	}
}

func newAllocator() *cell.Cell {
	return cell.New(address.SystemProgram)
}

// a live table cell for (name, owner)
func newTable(t *testing.T, name string, owner address.Address) (*cell.Cell, byte) {
	a, bump, err := instruction.TableAddress(programID, name, owner)
	if nil != err {
		t.Fatalf("table address error: %s", err)
	}
	packed, err := (&cellrecord.Table{Name: name}).Pack()
	if nil != err {
		t.Fatalf("table pack error: %s", err)
	}
	return &cell.Cell{
		Address: a,
		Owner:   programID,
		Balance: testRent.MinimumBalance(len(packed)),
		Data:    packed,
	}, bump
}

// a live record cell for (key, table, owner)
func newRecord(t *testing.T, key []byte, payload []byte, table address.Address, owner address.Address) (*cell.Cell, byte) {
	a, bump, err := instruction.RecordAddress(programID, key, table, owner)
	if nil != err {
		t.Fatalf("record address error: %s", err)
	}
	packed, err := (&cellrecord.Value{Payload: payload}).Pack()
	if nil != err {
		t.Fatalf("record pack error: %s", err)
	}
	return &cell.Cell{
		Address:  a,
		Owner:    programID,
		Balance:  testRent.MinimumBalance(len(packed)),
		Data:     packed,
		Writable: true,
	}, bump
}

func pack(t *testing.T, op instruction.Instruction) []byte {
	data, err := op.Pack()
	if nil != err {
		t.Fatalf("instruction pack error: %s", err)
	}
	return data
}
