// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - the operations understood by the key-value program
//
// an instruction is one opcode byte followed by the operands of that
// opcode.  Strings and byte fields are Varint64(length) ++ bytes and a
// bump is a single byte.  Every byte of the instruction must be
// consumed by the decode.
package instruction

import (
	"unicode/utf8"

	"github.com/PepeCosmico/soldb/cell"
	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/util"
)

// Opcode - first byte of an instruction
type Opcode byte

// the opcodes; values must never change
const (
	InitTableOpcode = Opcode(0)
	InsertOpcode    = Opcode(1)
	PutOpcode       = Opcode(2)
	DeleteOpcode    = Opcode(3)
)

// String - name of the opcode
func (op Opcode) String() string {
	switch op {
	case InitTableOpcode:
		return "InitTable"
	case InsertOpcode:
		return "Insert"
	case PutOpcode:
		return "Put"
	case DeleteOpcode:
		return "Delete"
	default:
		return "*unknown*"
	}
}

// Instruction - one of the operand records below
type Instruction interface {
	Opcode() Opcode
	Pack() ([]byte, error)
}

// InitTable - create a table cell for (name, owner)
type InitTable struct {
	Name string `json:"name"`
	Bump byte   `json:"bump"`
}

// Insert - create a record cell for (key, table, payer)
type Insert struct {
	Key     []byte `json:"key"`
	Payload []byte `json:"payload"`
	Bump    byte   `json:"bump"`
}

// Put - replace the payload of an existing record
type Put struct {
	Table     string `json:"table"`
	TableBump byte   `json:"table_bump"`
	Key       []byte `json:"key"`
	KeyBump   byte   `json:"key_bump"`
	Payload   []byte `json:"payload"`
}

// Delete - close a record cell
type Delete struct {
	Table     string `json:"table"`
	TableBump byte   `json:"table_bump"`
	Key       []byte `json:"key"`
	KeyBump   byte   `json:"key_bump"`
}

// Opcode - for the Instruction interface
func (i *InitTable) Opcode() Opcode { return InitTableOpcode }

// Opcode - for the Instruction interface
func (i *Insert) Opcode() Opcode { return InsertOpcode }

// Opcode - for the Instruction interface
func (i *Put) Opcode() Opcode { return PutOpcode }

// Opcode - for the Instruction interface
func (i *Delete) Opcode() Opcode { return DeleteOpcode }

// Pack - encode an InitTable
func (i *InitTable) Pack() ([]byte, error) {
	if !utf8.ValidString(i.Name) {
		return nil, fault.ErrMalformedInstruction
	}
	buffer := []byte{byte(InitTableOpcode)}
	buffer = util.AppendString(buffer, i.Name)
	return append(buffer, i.Bump), nil
}

// Pack - encode an Insert
func (i *Insert) Pack() ([]byte, error) {
	buffer := []byte{byte(InsertOpcode)}
	buffer = util.AppendBytes(buffer, i.Key)
	buffer = util.AppendBytes(buffer, i.Payload)
	return append(buffer, i.Bump), nil
}

// Pack - encode a Put
func (i *Put) Pack() ([]byte, error) {
	if !utf8.ValidString(i.Table) {
		return nil, fault.ErrMalformedInstruction
	}
	buffer := []byte{byte(PutOpcode)}
	buffer = util.AppendString(buffer, i.Table)
	buffer = append(buffer, i.TableBump)
	buffer = util.AppendBytes(buffer, i.Key)
	buffer = append(buffer, i.KeyBump)
	return util.AppendBytes(buffer, i.Payload), nil
}

// Pack - encode a Delete
func (i *Delete) Pack() ([]byte, error) {
	if !utf8.ValidString(i.Table) {
		return nil, fault.ErrMalformedInstruction
	}
	buffer := []byte{byte(DeleteOpcode)}
	buffer = util.AppendString(buffer, i.Table)
	buffer = append(buffer, i.TableBump)
	buffer = util.AppendBytes(buffer, i.Key)
	return append(buffer, i.KeyBump), nil
}

// sequential reader over the operand bytes
//
// the first failure sticks, so a decode can read all of its fields
// and check ok once at the end
type reader struct {
	buffer []byte
	n      int
	ok     bool
}

func (r *reader) readBytes() []byte {
	if !r.ok {
		return nil
	}
	data, length := util.FromBytes(r.buffer[r.n:], 0, cell.MaxDataLength)
	if 0 == length {
		r.ok = false
		return nil
	}
	r.n += length
	return data
}

func (r *reader) readString() string {
	data := r.readBytes()
	if r.ok && !utf8.Valid(data) {
		r.ok = false
	}
	return string(data)
}

func (r *reader) readByte() byte {
	if !r.ok || r.n >= len(r.buffer) {
		r.ok = false
		return 0
	}
	b := r.buffer[r.n]
	r.n += 1
	return b
}

// all bytes read and no failures
func (r *reader) done() bool {
	return r.ok && len(r.buffer) == r.n
}

// Unpack - decode an instruction
//
// must cast result to correct type
//
// e.g.
//   switch op := result.(type) {
//   case *instruction.Put:
func Unpack(data []byte) (Instruction, error) {
	if 0 == len(data) {
		return nil, fault.ErrMalformedInstruction
	}

	r := &reader{
		buffer: data,
		n:      1,
		ok:     true,
	}

	var i Instruction

	switch Opcode(data[0]) {

	case InitTableOpcode:
		i = &InitTable{
			Name: r.readString(),
			Bump: r.readByte(),
		}

	case InsertOpcode:
		i = &Insert{
			Key:     r.readBytes(),
			Payload: r.readBytes(),
			Bump:    r.readByte(),
		}

	case PutOpcode:
		i = &Put{
			Table:     r.readString(),
			TableBump: r.readByte(),
			Key:       r.readBytes(),
			KeyBump:   r.readByte(),
			Payload:   r.readBytes(),
		}

	case DeleteOpcode:
		i = &Delete{
			Table:     r.readString(),
			TableBump: r.readByte(),
			Key:       r.readBytes(),
			KeyBump:   r.readByte(),
		}

	default:
		return nil, fault.ErrMalformedInstruction
	}

	if !r.done() {
		return nil, fault.ErrMalformedInstruction
	}
	return i, nil
}
