// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/cell"
	"github.com/PepeCosmico/soldb/fault"
)

// role required of a positional account
type role struct {
	signer   bool
	writable bool
}

var (
	readOnly       = role{}
	writable       = role{writable: true}
	signer         = role{signer: true}
	writableSigner = role{signer: true, writable: true}

	// owner, table, allocator
	initTableRoles = []role{signer, writable, readOnly}

	// table, record, payer, allocator
	insertRoles = []role{readOnly, writable, signer, readOnly}

	// payer, table, record, allocator
	putRoles = []role{signer, readOnly, writable, readOnly}

	// record, recipient
	deleteRoles = []role{writable, writableSigner}
)

// check the account list against the roles of an instruction
//
// extra accounts are ignored, a read-only role accepts a writable cell
func requireAccounts(cells []*cell.Cell, roles []role) error {
	if len(cells) < len(roles) {
		return fault.ErrNotEnoughAccounts
	}
	for i, r := range roles {
		if r.signer && !cells[i].Signer {
			return fault.ErrMissingSignature
		}
		if r.writable && !cells[i].Writable {
			return fault.ErrCellNotWritable
		}
	}
	return nil
}

// the cell must belong to this program
func (p *Processor) checkOwner(c *cell.Cell) error {
	if c.Owner != p.programID {
		return fault.Unauthorized
	}
	return nil
}

// the cell must be at the address derived from seeds and bump
func (p *Processor) checkAddress(c *cell.Cell, seeds [][]byte, bump byte) error {
	derived, err := address.Derive(p.programID, seeds, bump)
	if nil != err || derived != c.Address {
		return fault.AddressMismatch
	}
	return nil
}

// seeds of a table cell
func tableSeeds(name string, owner address.Address) [][]byte {
	return [][]byte{[]byte(name), owner.Bytes()}
}

// seeds of a record cell
func recordSeeds(key []byte, table address.Address, owner address.Address) [][]byte {
	return [][]byte{key, table.Bytes(), owner.Bytes()}
}
