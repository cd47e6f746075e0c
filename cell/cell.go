// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cell - the host's view of a storage cell
//
// a cell is addressed storage with an owner tag and a balance.  During
// a transaction programs receive working copies of cells together with
// the role flags of the transaction; only the host decides whether the
// changes are kept.
package cell

import (
	"bytes"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/util"
)

// MaxDataLength - largest data buffer a cell may hold
const MaxDataLength = 10 * 1024 * 1024

// MaxGrowth - largest increase of a cell's data within one instruction
const MaxGrowth = 10 * 1024

// Cell - a storage cell as seen by a program
type Cell struct {
	Address  address.Address `json:"address"`
	Owner    address.Address `json:"owner"`
	Balance  uint64          `json:"balance"`
	Data     []byte          `json:"data"`
	Signer   bool            `json:"-"`
	Writable bool            `json:"-"`
}

// New - an empty cell that is not yet allocated
func New(a address.Address) *Cell {
	return &Cell{
		Address: a,
		Owner:   address.SystemProgram,
	}
}

// IsAllocated - true if the cell holds a balance or data
//
// an unallocated cell is owned by the system program
func (c *Cell) IsAllocated() bool {
	return 0 != c.Balance || 0 != len(c.Data) || c.Owner != address.SystemProgram
}

// Clone - deep copy, including role flags
func (c *Cell) Clone() *Cell {
	clone := *c
	if nil != c.Data {
		clone.Data = make([]byte, len(c.Data))
		copy(clone.Data, c.Data)
	}
	return &clone
}

// Equal - compare the persistent state of two cells
func (c *Cell) Equal(other *Cell) bool {
	return c.Address == other.Address &&
		c.Owner == other.Owner &&
		c.Balance == other.Balance &&
		bytes.Equal(c.Data, other.Data)
}

// Pack - persistent form of a cell, the address is the storage key
//
//   owner ++ Varint64(balance) ++ Varint64(length) ++ data
func (c *Cell) Pack() []byte {
	buffer := make([]byte, 0, address.Length+20+len(c.Data))
	buffer = append(buffer, c.Owner[:]...)
	buffer = util.AppendVarint64(buffer, c.Balance)
	return util.AppendBytes(buffer, c.Data)
}

// Unpack - restore a cell from its persistent form
func Unpack(a address.Address, buffer []byte) (*Cell, error) {
	if len(buffer) < address.Length {
		return nil, fault.ErrInvalidDataSize
	}

	c := &Cell{
		Address: a,
	}
	copy(c.Owner[:], buffer[:address.Length])
	n := address.Length

	balance, balanceLength := util.FromVarint64(buffer[n:])
	if 0 == balanceLength {
		return nil, fault.ErrInvalidDataSize
	}
	c.Balance = balance
	n += balanceLength

	data, dataLength := util.FromBytes(buffer[n:], 0, MaxDataLength)
	if 0 == dataLength || n+dataLength != len(buffer) {
		return nil, fault.ErrInvalidDataSize
	}
	c.Data = data
	return c, nil
}
