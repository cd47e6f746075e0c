// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/cell"
	"github.com/PepeCosmico/soldb/storage"
)

// totals over every stored cell
type cellSummary struct {
	Cells     uint64
	Balance   uint64
	DataBytes uint64
	Owners    map[address.Address]uint64 // cell count per owner
}

// walk the whole cell pool
func summariseCells(pool *storage.PoolHandle) (*cellSummary, error) {
	s := &cellSummary{
		Owners: make(map[address.Address]uint64),
	}

	err := pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		a, err := address.FromBytes(key)
		if nil != err {
			return err
		}
		c, err := cell.Unpack(a, value)
		if nil != err {
			return err
		}
		s.Cells += 1
		s.Balance += c.Balance
		s.DataBytes += uint64(len(c.Data))
		s.Owners[c.Owner] += 1
		return nil
	})
	if nil != err {
		return nil, err
	}
	return s, nil
}
