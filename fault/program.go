// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
)

// ProgramError - errors returned by the key-value program
//
// the numeric value is stable and is what crosses the RPC boundary
type ProgramError uint32

// program error codes - values must never change
const (
	Unauthorized     = ProgramError(0)
	AddressMismatch  = ProgramError(1)
	TypeMismatch     = ProgramError(2)
	CapacityExceeded = ProgramError(3)
	Unknown          = ProgramError(4)
)

var programErrorMessages = map[ProgramError]string{
	Unauthorized:     "account not owned by this program",
	AddressMismatch:  "derived address does not match",
	TypeMismatch:     "not a table account",
	CapacityExceeded: "growth exceeds the per-operation maximum of 10KiB",
	Unknown:          "unknown error",
}

// Error - the error interface
func (e ProgramError) Error() string {
	if s, ok := programErrorMessages[e]; ok {
		return s
	}
	return programErrorMessages[Unknown]
}

// Code - numeric code of the error
func (e ProgramError) Code() uint32 {
	if _, ok := programErrorMessages[e]; !ok {
		return uint32(Unknown)
	}
	return uint32(e)
}

// GoString - for %#v
func (e ProgramError) GoString() string {
	return fmt.Sprintf("<program error %d: %s>", e.Code(), e.Error())
}

// IsErrProgram - determine if error was raised by the program
func IsErrProgram(e error) bool { _, ok := e.(ProgramError); return ok }

// ProgramErrorCode - extract the code of a program error
//
// second value is false if e is not a program error
func ProgramErrorCode(e error) (uint32, bool) {
	pe, ok := e.(ProgramError)
	if !ok {
		return 0, false
	}
	return pe.Code(), true
}

// ProgramErrorFromCode - convert a code back to its error instance
//
// codes outside the known range become Unknown
func ProgramErrorFromCode(code uint32) ProgramError {
	e := ProgramError(code)
	if _, ok := programErrorMessages[e]; !ok {
		return Unknown
	}
	return e
}
