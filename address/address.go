// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"

	"github.com/mr-tron/base58"

	"github.com/PepeCosmico/soldb/fault"
)

// Length - number of bytes in an address
const Length = 32

// Address - identity of a cell, an owner or a program
//
// printed and JSON encoded as base58 text
type Address [Length]byte

// SystemProgram - the host allocator; also the owner tag of every
// cell that has not been assigned to a program
var SystemProgram = Address{}

// FromBytes - convert and validate a byte slice to an address
func FromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if Length != len(buffer) {
		return a, fault.ErrInvalidAddress
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode base58 text to an address
func FromBase58(s string) (Address, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Address{}, fault.ErrInvalidAddress
	}
	return FromBytes(buffer)
}

// Bytes - byte slice copy of the address
func (a Address) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, a[:])
	return b
}

// IsZero - true for the all zero (system program) address
func (a Address) IsZero() bool {
	return a == Address{}
}

// String - base58 form for use by the fmt package (for %s)
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - for %#v
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert an address to its base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert base58 text into an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
