// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cell

import (
	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/rent"
)

// Allocation - parameters of a cell creation
//
// Seeds and Bump prove that the executing program may sign for
// Target: the host derives the address from them under the executing
// program and requires it to match.
type Allocation struct {
	Funder    *Cell
	Target    *Cell
	Allocator *Cell
	Balance   uint64
	Size      int
	Owner     address.Address
	Seeds     [][]byte
	Bump      byte
}

// Host - the primitives a program may ask the host to perform
//
// every primitive either succeeds completely or returns an error
// having changed nothing
type Host interface {
	// allocate Size zero bytes for Target, funded with Balance
	// taken from Funder, and tag it with Owner
	CreateCell(allocation Allocation) error

	// change the data size of a cell owned by the executing program
	ResizeCell(target *Cell, size int) error

	// move the whole balance of target to recipient and release
	// target's address
	CloseCell(target *Cell, recipient *Cell) error

	// move amount from a signing system owned cell to another cell
	Transfer(from *Cell, to *Cell, amount uint64) error

	// parameters of the rent exempt minimum balance
	Rent() rent.Rent
}
