// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/cell"
	"github.com/PepeCosmico/soldb/cellrecord"
	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/instruction"
)

// create the record cell of (key, table, payer)
//
// creation never overwrites: the host refuses an allocated cell
func (p *Processor) insert(host cell.Host, table *cell.Cell, record *cell.Cell, payer *cell.Cell, allocator *cell.Cell, op *instruction.Insert) error {
	if _, err := cellrecord.UnpackTable(table.Data); nil != err {
		return fault.TypeMismatch
	}
	if err := p.checkOwner(table); nil != err {
		return err
	}

	seeds := recordSeeds(op.Key, table.Address, payer.Address)
	if err := p.checkAddress(record, seeds, op.Bump); nil != err {
		return err
	}

	packed, err := (&cellrecord.Value{Payload: op.Payload}).Pack()
	if nil != err {
		return err
	}

	err = host.CreateCell(cell.Allocation{
		Funder:    payer,
		Target:    record,
		Allocator: allocator,
		Balance:   host.Rent().MinimumBalance(len(packed)),
		Size:      len(packed),
		Owner:     p.programID,
		Seeds:     seeds,
		Bump:      op.Bump,
	})
	if nil != err {
		return err
	}

	copy(record.Data, packed)

	p.log.Debugf("insert: %x  record: %s  size: %d", op.Key, record.Address, len(packed))
	return nil
}

// replace the payload of a record
//
// the record balance ends at exactly the minimum for its new size:
// growth is topped up from the payer before the resize, shrink is
// resized first and the excess returned to the payer
func (p *Processor) put(host cell.Host, payer *cell.Cell, table *cell.Cell, record *cell.Cell, op *instruction.Put) error {
	if err := p.checkOwner(table); nil != err {
		return err
	}
	if err := p.checkOwner(record); nil != err {
		return err
	}
	if err := p.checkAddress(table, tableSeeds(op.Table, payer.Address), op.TableBump); nil != err {
		return err
	}
	if _, err := cellrecord.UnpackTable(table.Data); nil != err {
		return fault.TypeMismatch
	}
	if err := p.checkAddress(record, recordSeeds(op.Key, table.Address, payer.Address), op.KeyBump); nil != err {
		return err
	}

	packed, err := (&cellrecord.Value{Payload: op.Payload}).Pack()
	if nil != err {
		return err
	}
	newSize := len(packed)
	oldSize := len(record.Data)

	if newSize > oldSize {
		if newSize-oldSize > cell.MaxGrowth {
			return fault.CapacityExceeded
		}

		if topUp := host.Rent().TopUp(record.Balance, newSize); 0 != topUp {
			err := host.Transfer(payer, record, topUp)
			if nil != err {
				return err
			}
		}
		err := host.ResizeCell(record, newSize)
		if nil != err {
			return err
		}

	} else if newSize < oldSize {
		err := host.ResizeCell(record, newSize)
		if nil != err {
			return err
		}

		excess := host.Rent().Excess(record.Balance, newSize)
		record.Balance -= excess
		payer.Balance += excess
	}

	copy(record.Data, packed)

	p.log.Debugf("put: %x  record: %s  size: %d -> %d", op.Key, record.Address, oldSize, newSize)
	return nil
}

// close a record, its whole balance goes to the recipient
func (p *Processor) delete(host cell.Host, record *cell.Cell, recipient *cell.Cell, op *instruction.Delete) error {
	if err := p.checkOwner(record); nil != err {
		return err
	}

	tableAddress, err := address.Derive(p.programID, tableSeeds(op.Table, recipient.Address), op.TableBump)
	if nil != err {
		return fault.AddressMismatch
	}
	if err := p.checkAddress(record, recordSeeds(op.Key, tableAddress, recipient.Address), op.KeyBump); nil != err {
		return err
	}

	err = host.CloseCell(record, recipient)
	if nil != err {
		return err
	}

	p.log.Debugf("delete: %x  record: %s", op.Key, record.Address)
	return nil
}
