// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kvstore - generic ordered key-value storage
//
// a Storage keeps byte keys in order over an arbitrary backend.  Writes
// made with the Record mode are also appended to a journal that can be
// read back in the order the operations were made.
package kvstore

import (
	"sync"
)

// RecordMode - whether a write is appended to the journal
type RecordMode int

// record modes
const (
	NoRecord RecordMode = iota
	Record
)

// RecordModeFromBool - Record for true
func RecordModeFromBool(record bool) RecordMode {
	if record {
		return Record
	}
	return NoRecord
}

// Bool - true for Record
func (mode RecordMode) Bool() bool {
	return Record == mode
}

// String - for the fmt package
func (mode RecordMode) String() string {
	if Record == mode {
		return "Record"
	}
	return "NoRecord"
}

// Storage - ordered key-value capability
type Storage interface {
	// store value under key
	Put(key []byte, value []byte, mode RecordMode) error

	// read the value of key, false if it is not present
	Get(key []byte) ([]byte, bool)

	// remove key, false if it was not present
	Delete(key []byte, mode RecordMode) bool

	// visit keys >= from in ascending order until f returns false
	Ascend(from []byte, f func(key []byte, value []byte) bool) error

	// recorded operations, oldest first
	Journal() []Operation
}

// OperationKind - type of a journalled operation
type OperationKind int

// journalled operation types
const (
	PutOperation OperationKind = iota
	DeleteOperation
)

// Operation - one journalled write
type Operation struct {
	Kind  OperationKind `json:"kind"`
	Key   []byte        `json:"key"`
	Value []byte        `json:"value,omitempty"`
}

// journal shared by the backends
type journal struct {
	sync.Mutex
	operations []Operation
}

func (j *journal) record(kind OperationKind, key []byte, value []byte) {
	op := Operation{
		Kind: kind,
		Key:  copyBytes(key),
	}
	if PutOperation == kind {
		op.Value = copyBytes(value)
	}

	j.Lock()
	j.operations = append(j.operations, op)
	j.Unlock()
}

// Journal - recorded operations, oldest first
func (j *journal) Journal() []Operation {
	j.Lock()
	defer j.Unlock()

	operations := make([]Operation, len(j.operations))
	copy(operations, j.operations)
	return operations
}

func copyBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
