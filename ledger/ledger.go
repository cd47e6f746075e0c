// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - a single node host for programs
//
// the ledger holds cells, verifies and executes transactions one at a
// time, and commits all of a transaction's effects or none of them.
// The fee is charged before execution and is kept even when the
// transaction fails.
package ledger

import (
	"bytes"
	"sort"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/cell"
	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/rent"
)

// DefaultFeePerSignature - fee charged for each signature of a transaction
const DefaultFeePerSignature = 5000

// Program - code that the ledger can invoke
type Program interface {
	Process(host cell.Host, cells []*cell.Cell, data []byte) error
}

// Configuration - ledger parameters
type Configuration struct {
	FeePerSignature uint64    `gluamapper:"fee_per_signature" json:"fee_per_signature"`
	Rent            rent.Rent `gluamapper:"rent" json:"rent"`
}

// Receipt - result of a processed transaction
type Receipt struct {
	ID   Digest `json:"id"`
	Slot uint64 `json:"slot"`
	Fee  uint64 `json:"fee"`
}

// Handle - ledger operations offered to clients
type Handle interface {
	Airdrop(a address.Address, amount uint64) (uint64, error)
	Cell(a address.Address) (*cell.Cell, bool)
	FeePerSignature() uint64
	HasTransaction(id Digest) bool
	Rent() rent.Rent
	Slot() uint64
	Submit(tx *Transaction) (*Receipt, error)
}

// Ledger - the host
type Ledger struct {
	sync.Mutex
	log      *logger.L
	conf     Configuration
	store    Store
	programs map[address.Address]Program
}

// New - create a ledger over a store
func New(log *logger.L, conf Configuration, store Store) *Ledger {
	return &Ledger{
		log:      log,
		conf:     conf,
		store:    store,
		programs: make(map[address.Address]Program),
	}
}

// Register - make a program callable under programID
func (l *Ledger) Register(programID address.Address, program Program) {
	l.Lock()
	defer l.Unlock()

	l.programs[programID] = program
	l.log.Infof("registered program: %s", programID)
}

// Rent - the rent parameters
func (l *Ledger) Rent() rent.Rent {
	return l.conf.Rent
}

// FeePerSignature - the transaction fee per signature
func (l *Ledger) FeePerSignature() uint64 {
	return l.conf.FeePerSignature
}

// Slot - number of the last committed transaction
func (l *Ledger) Slot() uint64 {
	l.Lock()
	defer l.Unlock()
	return l.store.Slot()
}

// Cell - committed state of a cell
func (l *Ledger) Cell(a address.Address) (*cell.Cell, bool) {
	l.Lock()
	defer l.Unlock()
	return l.store.Cell(a)
}

// HasTransaction - true if a transaction was already processed
func (l *Ledger) HasTransaction(id Digest) bool {
	l.Lock()
	defer l.Unlock()
	return l.store.HasTransaction(id)
}

// Airdrop - credit a system owned cell
func (l *Ledger) Airdrop(a address.Address, amount uint64) (uint64, error) {
	l.Lock()
	defer l.Unlock()

	c, found := l.store.Cell(a)
	if !found {
		c = cell.New(a)
	}
	if c.Owner != address.SystemProgram {
		return 0, fault.ErrInvalidOwner
	}
	if c.Balance+amount < c.Balance {
		return 0, fault.ErrInvalidCount
	}
	c.Balance += amount

	update := &Update{
		Slot:  l.store.Slot(),
		Cells: []*cell.Cell{c},
	}
	err := l.store.Commit(update)
	if nil != err {
		return 0, err
	}

	l.log.Infof("airdrop: %d to: %s  balance: %d", amount, a, c.Balance)
	return c.Balance, nil
}

// Submit - verify, execute and commit a transaction
//
// a transaction that fails verification changes nothing.  One that
// fails during execution is committed with only its fee charged and
// the execution error is returned together with the receipt.
func (l *Ledger) Submit(tx *Transaction) (*Receipt, error) {
	l.Lock()
	defer l.Unlock()

	err := tx.Verify()
	if nil != err {
		l.log.Warnf("transaction rejected: %s", err)
		return nil, err
	}

	id := tx.ID()
	if l.store.HasTransaction(id) {
		return nil, fault.ErrTransactionAlreadyInUse
	}

	fee := l.conf.FeePerSignature * uint64(len(tx.Signatures))
	feePayer, found := l.store.Cell(tx.Message.FeePayer)
	if !found || feePayer.Owner != address.SystemProgram || feePayer.Balance < fee {
		return nil, fault.ErrInsufficientFunds
	}
	feePayer.Balance -= fee

	receipt := &Receipt{
		ID:   id,
		Slot: l.store.Slot() + 1,
		Fee:  fee,
	}
	l.log.Debugf("transaction: %s  slot: %d  fee: %d", id, receipt.Slot, fee)

	working := map[address.Address]*cell.Cell{
		feePayer.Address: feePayer.Clone(),
	}

	for i, ix := range tx.Message.Instructions {
		err = l.execute(working, ix)
		if nil != err {
			l.log.Infof("transaction: %s  instruction: %d  failed: %s", id, i, err)

			// discard every effect except the fee
			commitErr := l.store.Commit(&Update{
				Slot:          receipt.Slot,
				TransactionID: &id,
				Cells:         []*cell.Cell{feePayer},
			})
			logger.PanicIfError("ledger.Submit", commitErr)
			return receipt, err
		}
	}

	err = l.store.Commit(&Update{
		Slot:          receipt.Slot,
		TransactionID: &id,
		Cells:         sortedCells(working),
	})
	if nil != err {
		l.log.Errorf("transaction: %s  commit error: %s", id, err)
		return nil, err
	}
	return receipt, nil
}

// run one instruction against the working copies
func (l *Ledger) execute(working map[address.Address]*cell.Cell, ix Instruction) error {
	program, ok := l.programs[ix.ProgramID]
	if !ok {
		return fault.ErrProgramNotFound
	}

	cells := make([]*cell.Cell, 0, len(ix.Accounts))
	seen := make(map[address.Address]struct{}, len(ix.Accounts))
	for _, meta := range ix.Accounts {
		if _, ok := seen[meta.Address]; ok {
			return fault.ErrAccountBorrowFailed
		}
		seen[meta.Address] = struct{}{}

		c, ok := working[meta.Address]
		if !ok {
			c, ok = l.store.Cell(meta.Address)
			if !ok {
				c = cell.New(meta.Address)
			}
			working[meta.Address] = c
		}
		c.Signer = meta.Signer
		c.Writable = meta.Writable
		cells = append(cells, c)
	}

	inv := newInvocation(ix.ProgramID, l.conf.Rent, cells)
	err := program.Process(inv, cells, ix.Data)
	if nil != err {
		return err
	}
	return inv.verify()
}

// deterministic commit order
func sortedCells(working map[address.Address]*cell.Cell) []*cell.Cell {
	cells := make([]*cell.Cell, 0, len(working))
	for _, c := range working {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		return -1 == bytes.Compare(cells[i].Address[:], cells[j].Address[:])
	})
	return cells
}
