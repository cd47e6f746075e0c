// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"
)

// Transaction - batch of writes across pools committed atomically
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	InUse() bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
}

type transaction struct {
	sync.Mutex
	access Access
}

func newTransaction(access Access) Transaction {
	return &transaction{
		access: access,
	}
}

func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()
	return t.access.Begin()
}

func (t *transaction) Put(h Handle, key []byte, value []byte) {
	h.put(key, value)
}

func (t *transaction) PutN(h Handle, key []byte, value uint64) {
	h.putN(key, value)
}

func (t *transaction) Delete(h Handle, key []byte) {
	h.remove(key)
}

func (t *transaction) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

func (t *transaction) GetN(h Handle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

func (t *transaction) Has(h Handle, key []byte) bool {
	return h.Has(key)
}

func (t *transaction) InUse() bool {
	return t.access.InUse()
}

func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()
	return t.access.Commit()
}

func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()
	t.access.Abort()
}
