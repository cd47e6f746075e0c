// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/PepeCosmico/soldb/cell"
	"github.com/PepeCosmico/soldb/cellrecord"
	"github.com/PepeCosmico/soldb/instruction"
)

// create the table cell of (name, owner)
//
// a table has no update or delete
func (p *Processor) initTable(host cell.Host, owner *cell.Cell, table *cell.Cell, allocator *cell.Cell, op *instruction.InitTable) error {
	seeds := tableSeeds(op.Name, owner.Address)
	if err := p.checkAddress(table, seeds, op.Bump); nil != err {
		return err
	}

	packed, err := (&cellrecord.Table{Name: op.Name}).Pack()
	if nil != err {
		return err
	}

	err = host.CreateCell(cell.Allocation{
		Funder:    owner,
		Target:    table,
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

	copy(table.Data, packed)

	p.log.Infof("table: %q  owner: %s  address: %s", op.Name, owner.Address, table.Address)
	return nil
}
