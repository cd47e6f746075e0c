// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type HostError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountBorrowFailed          = HostError("cell is passed more than once as writable")
	ErrAirdropDisabled              = ProcessError("airdrop is disabled")
	ErrAlreadyInitialised           = ProcessError("already initialised")
	ErrBalanceNotConserved          = HostError("sum of cell balances changed during instruction")
	ErrCellAlreadyInUse             = HostError("cell already in use")
	ErrCellDataModified             = HostError("data modified in a cell not owned by the program")
	ErrCellNotFound                 = NotFoundError("cell not found")
	ErrCellNotRentExempt            = HostError("cell balance is below the rent exempt minimum")
	ErrCellNotWritable              = InvalidError("cell is not writable")
	ErrCellReadOnlyModified         = HostError("read-only cell was modified")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrDatabaseIsNotSet             = ProcessError("database is not set")
	ErrExternalDebit                = HostError("balance debited from a cell not owned by the program")
	ErrInsufficientFunds            = HostError("insufficient funds")
	ErrInvalidAddress               = InvalidError("invalid address")
	ErrInvalidAllocator             = HostError("allocator is not the system program")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidCursor                = InvalidError("invalid cursor")
	ErrInvalidDataSize              = HostError("invalid cell data size")
	ErrInvalidIPAddress             = InvalidError("invalid IP address")
	ErrInvalidKeyLength             = InvalidError("invalid key length")
	ErrInvalidLoggerChannel         = ProcessError("invalid logger channel")
	ErrInvalidOwner                 = HostError("cell owner does not match executing program")
	ErrInvalidPortNumber            = InvalidError("invalid port number")
	ErrInvalidSeeds                 = HostError("signer seeds do not derive the cell address")
	ErrInvalidSignature             = InvalidError("invalid signature")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMalformedInstruction         = InvalidError("malformed instruction")
	ErrMaxSeedLength                = LengthError("seed exceeds maximum length")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrMissingSignature             = InvalidError("missing required signature")
	ErrNameTooLong                  = LengthError("name too long")
	ErrNameTooShort                 = LengthError("name too short")
	ErrNotEnoughAccounts            = InvalidError("not enough accounts for instruction")
	ErrNotInitialised               = ProcessError("not initialised")
	ErrNotTableRecord               = InvalidError("not a table record")
	ErrNotValueRecord               = InvalidError("not a value record")
	ErrOnCurve                      = InvalidError("derived address lies on the ed25519 curve")
	ErrPayloadTooLong               = LengthError("payload too long")
	ErrProgramNotFound              = NotFoundError("program not found")
	ErrRateLimiting                 = ProcessError("rate limiting")
	ErrReadOnlyMode                 = ProcessError("not available in read only mode")
	ErrResizeTooLarge               = HostError("cell data increase exceeds the per-instruction maximum")
	ErrSignatureCount               = InvalidError("signature count does not match signers")
	ErrTooManySeeds                 = LengthError("too many seeds")
	ErrTransactionAlreadyInUse      = ProcessError("transaction already in use")
	ErrTransactionHasNoFeePayer     = InvalidError("transaction has no fee payer")
	ErrWrongCellCount               = InvalidError("wrong cell count")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e HostError) Error() string     { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrHost(e error) bool     { _, ok := e.(HostError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
