// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cellrecord - the layouts stored in program owned cells
//
// every layout starts with Varint64(tag) followed by its fields, each
// field prefixed by Varint64(length).  The encoded size is exactly the
// size the host allocates for the cell.
package cellrecord

import (
	"encoding/hex"
	"unicode/utf8"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/util"
)

// TagType - type code for cell records
type TagType uint64

// enumerate the possible cell record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	TableTag  = TagType(iota) // table marker
	RecordTag = TagType(iota) // key-value payload

	// this item must be last
	InvalidTag = TagType(iota)
)

// field limits
const (
	minNameLength    = 1
	maxNameLength    = address.MaxSeedLength // the name is a derivation seed
	maxPayloadLength = 10 * 1024 * 1024      // host limit on cell size
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic cell record interface
type Record interface {
	Pack() (Packed, error)
}

// Table - marker stored in a table cell
type Table struct {
	Name string `json:"name"`
}

// Value - payload stored in a record cell
type Value struct {
	Payload []byte `json:"payload"`
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a cell record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *Table, Table:
		return "Table", true

	case *Value, Value:
		return "Value", true

	default:
		return "*unknown*", false
	}
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	b := make([]byte, size)
	_, err := hex.Decode(b, s)
	if nil != err {
		return err
	}
	*record = b
	return nil
}

// Pack - pack a table marker
func (table *Table) Pack() (Packed, error) {
	if utf8.RuneCountInString(table.Name) < minNameLength {
		return nil, fault.ErrNameTooShort
	}
	if len(table.Name) > maxNameLength {
		return nil, fault.ErrNameTooLong
	}

	message := util.AppendVarint64(nil, uint64(TableTag))
	message = util.AppendString(message, table.Name)
	return message, nil
}

// Pack - pack a value
func (value *Value) Pack() (Packed, error) {
	if len(value.Payload) > maxPayloadLength {
		return nil, fault.ErrPayloadTooLong
	}

	message := util.AppendVarint64(nil, uint64(RecordTag))
	message = util.AppendBytes(message, value.Payload)
	return message, nil
}

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//   switch r := result.(type) {
//   case *cellrecord.Table:
func (record Packed) Unpack() (Record, int, error) {

	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.ErrMalformedInstruction
	}

	switch TagType(recordType) {

	case TableTag:
		name, nameLength := util.FromBytes(record[n:], minNameLength, maxNameLength)
		if 0 == nameLength || !utf8.Valid(name) {
			return nil, 0, fault.ErrNotTableRecord
		}
		n += nameLength
		return &Table{Name: string(name)}, n, nil

	case RecordTag:
		payload, payloadLength := util.FromBytes(record[n:], 0, maxPayloadLength)
		if 0 == payloadLength {
			return nil, 0, fault.ErrNotValueRecord
		}
		n += payloadLength
		return &Value{Payload: payload}, n, nil

	default:
		return nil, 0, fault.ErrMalformedInstruction
	}
}

// UnpackTable - decode a cell that must hold exactly one table marker
func UnpackTable(data []byte) (*Table, error) {
	r, n, err := Packed(data).Unpack()
	if nil != err {
		return nil, fault.ErrNotTableRecord
	}
	table, ok := r.(*Table)
	if !ok || len(data) != n {
		return nil, fault.ErrNotTableRecord
	}
	return table, nil
}

// UnpackValue - decode a cell that must hold exactly one value
func UnpackValue(data []byte) (*Value, error) {
	r, n, err := Packed(data).Unpack()
	if nil != err {
		return nil, fault.ErrNotValueRecord
	}
	value, ok := r.(*Value)
	if !ok || len(data) != n {
		return nil, fault.ErrNotValueRecord
	}
	return value, nil
}
