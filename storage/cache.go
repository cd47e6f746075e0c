// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - pending writes of the current batch
type Cache interface {
	Get(string) ([]byte, bool)
	Lookup(string) (dbOperation, []byte, bool)
	Set(dbOperation, string, []byte)
	Clear()
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

const (
	defaultTimeout    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultTimeout, defaultExpiration),
	}
}

// Get - value of a pending put
func (c *dbCache) Get(key string) ([]byte, bool) {
	op, value, found := c.Lookup(key)

	// if key is deleted, then cache should return not found
	if !found || dbDelete == op {
		return []byte{}, false
	}
	return value, true
}

// Lookup - pending operation on a key
func (c *dbCache) Lookup(key string) (dbOperation, []byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return dbPut, nil, false
	}

	data := obj.(cacheData)
	return data.op, data.value, true
}

func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(key, cached, cache.NoExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
