// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/ledger"
)

// client side helpers: each finds the canonical bumps of its cells and
// lays out the account list in the order the program expects

// TableAddress - address and canonical bump of the table (name, owner)
func TableAddress(programID address.Address, name string, owner address.Address) (address.Address, byte, error) {
	return address.FindAddress(programID, [][]byte{[]byte(name), owner.Bytes()})
}

// RecordAddress - address and canonical bump of the record (key, table, owner)
func RecordAddress(programID address.Address, key []byte, table address.Address, owner address.Address) (address.Address, byte, error) {
	return address.FindAddress(programID, [][]byte{key, table.Bytes(), owner.Bytes()})
}

// NewInitTable - create table name owned by owner
func NewInitTable(programID address.Address, owner address.Address, name string) (ledger.Instruction, error) {
	table, bump, err := TableAddress(programID, name, owner)
	if nil != err {
		return ledger.Instruction{}, err
	}

	return build(programID, &InitTable{Name: name, Bump: bump},
		ledger.AccountMeta{Address: owner, Signer: true, Writable: true},
		ledger.AccountMeta{Address: table, Writable: true},
		ledger.AccountMeta{Address: address.SystemProgram},
	)
}

// NewInsert - create a record under the table at tableAddress
func NewInsert(programID address.Address, payer address.Address, tableAddress address.Address, key []byte, payload []byte) (ledger.Instruction, error) {
	record, bump, err := RecordAddress(programID, key, tableAddress, payer)
	if nil != err {
		return ledger.Instruction{}, err
	}

	return build(programID, &Insert{Key: key, Payload: payload, Bump: bump},
		ledger.AccountMeta{Address: tableAddress},
		ledger.AccountMeta{Address: record, Writable: true},
		ledger.AccountMeta{Address: payer, Signer: true, Writable: true},
		ledger.AccountMeta{Address: address.SystemProgram},
	)
}

// NewPut - replace the payload of a record in payer's table
func NewPut(programID address.Address, payer address.Address, tableName string, key []byte, payload []byte) (ledger.Instruction, error) {
	table, tableBump, err := TableAddress(programID, tableName, payer)
	if nil != err {
		return ledger.Instruction{}, err
	}
	record, keyBump, err := RecordAddress(programID, key, table, payer)
	if nil != err {
		return ledger.Instruction{}, err
	}

	op := &Put{
		Table:     tableName,
		TableBump: tableBump,
		Key:       key,
		KeyBump:   keyBump,
		Payload:   payload,
	}
	return build(programID, op,
		ledger.AccountMeta{Address: payer, Signer: true, Writable: true},
		ledger.AccountMeta{Address: table},
		ledger.AccountMeta{Address: record, Writable: true},
		ledger.AccountMeta{Address: address.SystemProgram},
	)
}

// NewDelete - close a record in recipient's table
func NewDelete(programID address.Address, recipient address.Address, tableName string, key []byte) (ledger.Instruction, error) {
	table, tableBump, err := TableAddress(programID, tableName, recipient)
	if nil != err {
		return ledger.Instruction{}, err
	}
	record, keyBump, err := RecordAddress(programID, key, table, recipient)
	if nil != err {
		return ledger.Instruction{}, err
	}

	op := &Delete{
		Table:     tableName,
		TableBump: tableBump,
		Key:       key,
		KeyBump:   keyBump,
	}
	return build(programID, op,
		ledger.AccountMeta{Address: record, Writable: true},
		ledger.AccountMeta{Address: recipient, Signer: true, Writable: true},
	)
}

func build(programID address.Address, op Instruction, accounts ...ledger.AccountMeta) (ledger.Instruction, error) {
	data, err := op.Pack()
	if nil != err {
		return ledger.Instruction{}, err
	}
	return ledger.Instruction{
		ProgramID: programID,
		Accounts:  accounts,
		Data:      data,
	}, nil
}
