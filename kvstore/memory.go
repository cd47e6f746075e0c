// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kvstore

import (
	"bytes"
	"sync"

	"github.com/google/btree"

	"github.com/PepeCosmico/soldb/fault"
)

const btreeDegree = 2

// Memory - in memory btree backed Storage
type Memory struct {
	journal
	mu    sync.RWMutex
	btree *btree.BTree
}

type item struct {
	key   []byte
	value []byte
}

// Less - for btree.Item
func (i *item) Less(b btree.Item) bool {
	j, ok := b.(*item)
	if !ok {
		return false
	}
	return -1 == bytes.Compare(i.key, j.key)
}

// NewMemory - empty in memory storage
func NewMemory() *Memory {
	return &Memory{
		btree: btree.New(btreeDegree),
	}
}

// Put - store a copy of value under key
func (m *Memory) Put(key []byte, value []byte, mode RecordMode) error {
	if 0 == len(key) {
		return fault.ErrInvalidKeyLength
	}

	m.mu.Lock()
	_ = m.btree.ReplaceOrInsert(&item{key: copyBytes(key), value: copyBytes(value)})
	m.mu.Unlock()

	if mode.Bool() {
		m.record(PutOperation, key, value)
	}
	return nil
}

// Get - copy of the value for key
func (m *Memory) Get(key []byte) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.btree.Get(&item{key: key})
	if nil == i {
		return nil, false
	}
	return copyBytes(i.(*item).value), true
}

// Delete - remove key
func (m *Memory) Delete(key []byte, mode RecordMode) bool {
	m.mu.Lock()
	deleted := nil != m.btree.Delete(&item{key: key})
	m.mu.Unlock()

	if deleted && mode.Bool() {
		m.record(DeleteOperation, key, nil)
	}
	return deleted
}

// Ascend - visit keys >= from in order
//
// f must not modify the storage
func (m *Memory) Ascend(from []byte, f func(key []byte, value []byte) bool) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	m.btree.AscendGreaterOrEqual(&item{key: from}, func(i btree.Item) bool {
		j := i.(*item)
		return f(copyBytes(j.key), copyBytes(j.value))
	})
	return nil
}

// Len - number of keys
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.btree.Len()
}
