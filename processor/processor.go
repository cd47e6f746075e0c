// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - the key-value program
//
// tables and records live in cells at addresses derived from their
// identity.  Every handler runs all of its guards before it asks the
// host for any effect, so a failing instruction never leaves a partial
// change behind.
package processor

import (
	"github.com/bitmark-inc/logger"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/cell"
	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/instruction"
)

// Processor - the program bound to its own identity
type Processor struct {
	log       *logger.L
	programID address.Address
}

// New - create the program for programID
func New(log *logger.L, programID address.Address) *Processor {
	return &Processor{
		log:       log,
		programID: programID,
	}
}

// ProgramID - the namespace that owns the program's cells
func (p *Processor) ProgramID() address.Address {
	return p.programID
}

// Process - decode and execute one instruction
func (p *Processor) Process(host cell.Host, cells []*cell.Cell, data []byte) error {
	i, err := instruction.Unpack(data)
	if nil != err {
		p.log.Warnf("undecodable instruction: %x", data)
		return err
	}

	p.log.Debugf("instruction: %s", i.Opcode())

	switch op := i.(type) {

	case *instruction.InitTable:
		if err := requireAccounts(cells, initTableRoles); nil != err {
			return err
		}
		return p.initTable(host, cells[0], cells[1], cells[2], op)

	case *instruction.Insert:
		if err := requireAccounts(cells, insertRoles); nil != err {
			return err
		}
		return p.insert(host, cells[0], cells[1], cells[2], cells[3], op)

	case *instruction.Put:
		if err := requireAccounts(cells, putRoles); nil != err {
			return err
		}
		return p.put(host, cells[0], cells[1], cells[2], op)

	case *instruction.Delete:
		if err := requireAccounts(cells, deleteRoles); nil != err {
			return err
		}
		return p.delete(host, cells[0], cells[1], op)

	default:
		return fault.ErrMalformedInstruction
	}
}
