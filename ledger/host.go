// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/cell"
	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/rent"
)

// state of a cell that the program itself is accountable for
//
// host primitives update the expected state of the cells they touch,
// so after the program returns any remaining difference was made by
// the program directly
type expected struct {
	owner   address.Address
	balance uint64
	data    []byte
}

// one program invocation; implements cell.Host
type invocation struct {
	programID address.Address
	rent      rent.Rent
	cells     []*cell.Cell
	expected  map[*cell.Cell]*expected
	startSize map[*cell.Cell]int
	total     uint64
}

func newInvocation(programID address.Address, r rent.Rent, cells []*cell.Cell) *invocation {
	inv := &invocation{
		programID: programID,
		rent:      r,
		cells:     cells,
		expected:  make(map[*cell.Cell]*expected, len(cells)),
		startSize: make(map[*cell.Cell]int, len(cells)),
	}
	for _, c := range cells {
		inv.expected[c] = &expected{
			owner:   c.Owner,
			balance: c.Balance,
			data:    append([]byte{}, c.Data...),
		}
		inv.startSize[c] = len(c.Data)
		inv.total += c.Balance
	}
	return inv
}

// true if all cells were passed to this invocation
func (inv *invocation) known(cells ...*cell.Cell) bool {
	for _, c := range cells {
		if nil == c {
			return false
		}
		if _, ok := inv.expected[c]; !ok {
			return false
		}
	}
	return true
}

// CreateCell - allocate a cell at a program derived address
func (inv *invocation) CreateCell(a cell.Allocation) error {
	if !inv.known(a.Funder, a.Target, a.Allocator) {
		return fault.ErrCellNotFound
	}
	if a.Allocator.Address != address.SystemProgram {
		return fault.ErrInvalidAllocator
	}
	if a.Funder == a.Target {
		return fault.ErrAccountBorrowFailed
	}
	if a.Target.IsAllocated() {
		return fault.ErrCellAlreadyInUse
	}
	if !a.Funder.Signer {
		return fault.ErrMissingSignature
	}
	if !a.Funder.Writable || !a.Target.Writable {
		return fault.ErrCellNotWritable
	}
	if a.Funder.Owner != address.SystemProgram {
		return fault.ErrInvalidOwner
	}
	if a.Size < 0 || a.Size > cell.MaxDataLength {
		return fault.ErrInvalidDataSize
	}

	derived, err := address.Derive(inv.programID, a.Seeds, a.Bump)
	if nil != err || derived != a.Target.Address {
		return fault.ErrInvalidSeeds
	}

	if a.Funder.Balance < a.Balance {
		return fault.ErrInsufficientFunds
	}

	a.Funder.Balance -= a.Balance
	a.Target.Balance += a.Balance
	a.Target.Data = make([]byte, a.Size)
	a.Target.Owner = a.Owner

	inv.expected[a.Funder].balance = subtract(inv.expected[a.Funder].balance, a.Balance)
	inv.expected[a.Target] = &expected{
		owner:   a.Owner,
		balance: inv.expected[a.Target].balance + a.Balance,
		data:    make([]byte, a.Size),
	}
	inv.startSize[a.Target] = a.Size

	return nil
}

// ResizeCell - change the data size of a program owned cell
func (inv *invocation) ResizeCell(target *cell.Cell, size int) error {
	if !inv.known(target) {
		return fault.ErrCellNotFound
	}
	if target.Owner != inv.programID {
		return fault.ErrInvalidOwner
	}
	if !target.Writable {
		return fault.ErrCellNotWritable
	}
	if size < 0 || size > cell.MaxDataLength {
		return fault.ErrInvalidDataSize
	}
	if size-inv.startSize[target] > cell.MaxGrowth {
		return fault.ErrResizeTooLarge
	}

	target.Data = resize(target.Data, size)
	inv.expected[target].data = resize(inv.expected[target].data, size)
	return nil
}

// CloseCell - release a program owned cell, its balance goes to recipient
func (inv *invocation) CloseCell(target *cell.Cell, recipient *cell.Cell) error {
	if !inv.known(target, recipient) {
		return fault.ErrCellNotFound
	}
	if target == recipient {
		return fault.ErrAccountBorrowFailed
	}
	if target.Owner != inv.programID {
		return fault.ErrInvalidOwner
	}
	if !target.Writable || !recipient.Writable {
		return fault.ErrCellNotWritable
	}

	amount := target.Balance
	recipient.Balance += amount
	target.Balance = 0
	target.Data = nil
	target.Owner = address.SystemProgram

	inv.expected[recipient].balance += amount
	inv.expected[target] = &expected{
		owner: address.SystemProgram,
	}
	return nil
}

// Transfer - move balance out of a signing system owned cell
func (inv *invocation) Transfer(from *cell.Cell, to *cell.Cell, amount uint64) error {
	if !inv.known(from, to) {
		return fault.ErrCellNotFound
	}
	if from == to {
		return fault.ErrAccountBorrowFailed
	}
	if !from.Signer {
		return fault.ErrMissingSignature
	}
	if !from.Writable || !to.Writable {
		return fault.ErrCellNotWritable
	}
	if from.Owner != address.SystemProgram || 0 != len(from.Data) {
		return fault.ErrInvalidOwner
	}
	if from.Balance < amount {
		return fault.ErrInsufficientFunds
	}

	from.Balance -= amount
	to.Balance += amount

	inv.expected[from].balance = subtract(inv.expected[from].balance, amount)
	inv.expected[to].balance += amount
	return nil
}

// Rent - parameters of the rent exempt minimum
func (inv *invocation) Rent() rent.Rent {
	return inv.rent
}

// verify - check what the program did directly to its cells
func (inv *invocation) verify() error {
	total := uint64(0)
	for _, c := range inv.cells {
		e := inv.expected[c]
		changed := c.Owner != e.owner || c.Balance != e.balance || !bytes.Equal(c.Data, e.data)

		if changed && !c.Writable {
			return fault.ErrCellReadOnlyModified
		}
		if c.Owner != e.owner {
			return fault.ErrInvalidOwner
		}
		if len(c.Data) != len(e.data) {
			return fault.ErrInvalidDataSize
		}
		if c.Owner != inv.programID {
			if !bytes.Equal(c.Data, e.data) {
				return fault.ErrCellDataModified
			}
			if c.Balance < e.balance {
				return fault.ErrExternalDebit
			}
		}
		if 0 != len(c.Data) && !inv.rent.IsExempt(c.Balance, len(c.Data)) {
			return fault.ErrCellNotRentExempt
		}
		total += c.Balance
	}

	if total != inv.total {
		return fault.ErrBalanceNotConserved
	}
	return nil
}

// zero filled on growth
func resize(data []byte, size int) []byte {
	resized := make([]byte, size)
	copy(resized, data)
	return resized
}

// saturating subtraction
func subtract(a uint64, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
