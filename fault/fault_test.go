// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/PepeCosmico/soldb/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrHostOne     = fault.HostError("host one")
	ErrHostTwo     = fault.HostError("host two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		host     bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		program  bool
	}{
		{ErrExistsOne, true, false, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false, false},
		{ErrHostOne, false, true, false, false, false, false, false},
		{ErrHostTwo, false, true, false, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false, false},
		{ErrLengthOne, false, false, false, true, false, false, false},
		{ErrLengthTwo, false, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, false, false, true, false},
		{fault.Unauthorized, false, false, false, false, false, false, true},
		{fault.CapacityExceeded, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrHost(err) != e.host {
			t.Errorf("%d: expected 'host' == %v for err = %v", i, e.host, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrProgram(err) != e.program {
			t.Errorf("%d: expected 'program' == %v for err = %v", i, e.program, err)
		}
	}
}

// codes and messages are part of the external interface
func TestProgramErrorCodes(t *testing.T) {
	codes := []struct {
		err     fault.ProgramError
		code    uint32
		message string
	}{
		{fault.Unauthorized, 0, "account not owned by this program"},
		{fault.AddressMismatch, 1, "derived address does not match"},
		{fault.TypeMismatch, 2, "not a table account"},
		{fault.CapacityExceeded, 3, "growth exceeds the per-operation maximum of 10KiB"},
		{fault.Unknown, 4, "unknown error"},
	}

	for i, c := range codes {
		code, ok := fault.ProgramErrorCode(c.err)
		if !ok {
			t.Errorf("%d: %v not detected as a program error", i, c.err)
		}
		if c.code != code {
			t.Errorf("%d: code: %d  expected: %d", i, code, c.code)
		}
		if c.message != c.err.Error() {
			t.Errorf("%d: message: %q  expected: %q", i, c.err.Error(), c.message)
		}
		if c.err != fault.ProgramErrorFromCode(c.code) {
			t.Errorf("%d: code %d did not map back to %v", i, c.code, c.err)
		}
	}

	if fault.Unknown != fault.ProgramErrorFromCode(99) {
		t.Error("out of range code must map to Unknown")
	}
	if _, ok := fault.ProgramErrorCode(ErrHostOne); ok {
		t.Error("host error must not produce a program code")
	}
}
