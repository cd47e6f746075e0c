// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kvstore

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"

	"github.com/PepeCosmico/soldb/fault"
)

// LevelDB - on disk Storage
type LevelDB struct {
	journal
	db *leveldb.DB
}

// NewLevelDB - open or create a database directory
func NewLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if nil != err {
		return nil, err
	}
	return &LevelDB{
		db: db,
	}, nil
}

// Close - release the database
func (l *LevelDB) Close() error {
	return l.db.Close()
}

// Put - store value under key
func (l *LevelDB) Put(key []byte, value []byte, mode RecordMode) error {
	if 0 == len(key) {
		return fault.ErrInvalidKeyLength
	}

	err := l.db.Put(key, value, nil)
	if nil != err {
		return err
	}

	if mode.Bool() {
		l.record(PutOperation, key, value)
	}
	return nil
}

// Get - value for key
func (l *LevelDB) Get(key []byte) ([]byte, bool) {
	value, err := l.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, false
	}
	logger.PanicIfError("kvstore.Get", err)
	return value, true
}

// Delete - remove key
//
// leveldb deletes are blind, so presence is checked first
func (l *LevelDB) Delete(key []byte, mode RecordMode) bool {
	found, err := l.db.Has(key, nil)
	logger.PanicIfError("kvstore.Has", err)
	if !found {
		return false
	}

	err = l.db.Delete(key, nil)
	logger.PanicIfError("kvstore.Delete", err)

	if mode.Bool() {
		l.record(DeleteOperation, key, nil)
	}
	return true
}

// Ascend - visit keys >= from in order
func (l *LevelDB) Ascend(from []byte, f func(key []byte, value []byte) bool) error {
	iter := l.db.NewIterator(&ldb_util.Range{Start: from}, nil)

	for iter.Next() {
		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		if !f(copyBytes(iter.Key()), copyBytes(iter.Value())) {
			break
		}
	}
	iter.Release()
	return iter.Error()
}
