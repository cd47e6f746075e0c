// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/cell"
	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/kvstore"
	"github.com/PepeCosmico/soldb/storage"
)

// key of the slot counter
var slotKey = []byte("slot")

// Update - everything that changes when a transaction is committed
//
// unallocated cells are removed
type Update struct {
	Slot          uint64
	TransactionID *Digest
	Cells         []*cell.Cell
}

// Store - where the ledger keeps its state
type Store interface {
	Cell(a address.Address) (*cell.Cell, bool)
	HasTransaction(id Digest) bool
	Slot() uint64
	Commit(update *Update) error
}

// ---------------------------------------------------------------------
// LevelDB pools

type poolStore struct{}

// NewPoolStore - state in the storage pools
//
// storage.Initialise must have been called
func NewPoolStore() (Store, error) {
	if !storage.Pool.Cells.Ready() {
		return nil, fault.ErrDatabaseIsNotSet
	}
	return &poolStore{}, nil
}

func (s *poolStore) Cell(a address.Address) (*cell.Cell, bool) {
	packed := storage.Pool.Cells.Get(a[:])
	if nil == packed {
		return nil, false
	}
	c, err := cell.Unpack(a, packed)
	logger.PanicIfError("ledger.poolStore.Cell", err)
	return c, true
}

func (s *poolStore) HasTransaction(id Digest) bool {
	return storage.Pool.Transactions.Has(id[:])
}

func (s *poolStore) Slot() uint64 {
	slot, _ := storage.Pool.Meta.GetN(slotKey)
	return slot
}

func (s *poolStore) Commit(update *Update) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	for _, c := range update.Cells {
		if c.IsAllocated() {
			trx.Put(storage.Pool.Cells, c.Address[:], c.Pack())
		} else {
			trx.Delete(storage.Pool.Cells, c.Address[:])
		}
	}
	if nil != update.TransactionID {
		trx.PutN(storage.Pool.Transactions, update.TransactionID[:], update.Slot)
	}
	trx.PutN(storage.Pool.Meta, slotKey, update.Slot)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
	}
	return err
}

// ---------------------------------------------------------------------
// generic key-value storage

// key prefixes, the same as the storage pools
const (
	cellPrefix        = 'C'
	transactionPrefix = 'T'
	metaPrefix        = 'M'
)

type kvStore struct {
	kv kvstore.Storage
}

// NewKVStore - state in a key-value storage
//
// used for tests and ephemeral ledgers
func NewKVStore(kv kvstore.Storage) Store {
	return &kvStore{
		kv: kv,
	}
}

func prefixKey(prefix byte, key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = prefix
	return append(prefixedKey, key...)
}

func (s *kvStore) Cell(a address.Address) (*cell.Cell, bool) {
	packed, found := s.kv.Get(prefixKey(cellPrefix, a[:]))
	if !found {
		return nil, false
	}
	c, err := cell.Unpack(a, packed)
	logger.PanicIfError("ledger.kvStore.Cell", err)
	return c, true
}

func (s *kvStore) HasTransaction(id Digest) bool {
	_, found := s.kv.Get(prefixKey(transactionPrefix, id[:]))
	return found
}

func (s *kvStore) Slot() uint64 {
	buffer, found := s.kv.Get(prefixKey(metaPrefix, slotKey))
	if !found || 8 != len(buffer) {
		return 0
	}
	return binary.BigEndian.Uint64(buffer)
}

// one write of a commit, nil value deletes the key
type kvWrite struct {
	key   []byte
	value []byte
	mode  kvstore.RecordMode
}

// Commit - apply the whole update or none of it
//
// every write is packed before the first one is applied, and writes
// already applied are reverted if a later one fails
func (s *kvStore) Commit(update *Update) error {
	slot := make([]byte, 8)
	binary.BigEndian.PutUint64(slot, update.Slot)

	writes := make([]kvWrite, 0, len(update.Cells)+2)
	for _, c := range update.Cells {
		w := kvWrite{
			key:  prefixKey(cellPrefix, c.Address[:]),
			mode: kvstore.Record,
		}
		if c.IsAllocated() {
			w.value = c.Pack()
		}
		writes = append(writes, w)
	}
	if nil != update.TransactionID {
		writes = append(writes, kvWrite{
			key:   prefixKey(transactionPrefix, update.TransactionID[:]),
			value: slot,
			mode:  kvstore.NoRecord,
		})
	}
	writes = append(writes, kvWrite{
		key:   prefixKey(metaPrefix, slotKey),
		value: slot,
		mode:  kvstore.NoRecord,
	})

	previous := make([]kvWrite, len(writes))
	for i, w := range writes {
		value, found := s.kv.Get(w.key)
		previous[i] = kvWrite{key: w.key, mode: w.mode}
		if found {
			previous[i].value = value
		}
	}

	for i, w := range writes {
		err := s.apply(w)
		if nil != err {
			for j := i - 1; j >= 0; j -= 1 {
				_ = s.apply(previous[j])
			}
			return err
		}
	}
	return nil
}

func (s *kvStore) apply(w kvWrite) error {
	if nil == w.value {
		s.kv.Delete(w.key, w.mode)
		return nil
	}
	return s.kv.Put(w.key, w.value, w.mode)
}
