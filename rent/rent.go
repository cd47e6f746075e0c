// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rent - minimum balance a cell must hold to persist
//
// a cell that holds at least the minimum balance for its data size is
// "rent exempt" and is never reclaimed by the host.  All arithmetic is
// integer so every node computes the same values.
package rent

// defaults match the reference host
const (
	DefaultBalancePerByteYear = 3480
	DefaultExemptionYears     = 2
	DefaultStorageOverhead    = 128 // bytes charged for every cell regardless of data size
)

// Rent - parameters for the minimum balance calculation
type Rent struct {
	BalancePerByteYear uint64 `gluamapper:"balance_per_byte_year" json:"balance_per_byte_year"`
	ExemptionYears     uint64 `gluamapper:"exemption_years" json:"exemption_years"`
	StorageOverhead    uint64 `gluamapper:"storage_overhead" json:"storage_overhead"`
}

// Default - the reference host parameters
func Default() Rent {
	return Rent{
		BalancePerByteYear: DefaultBalancePerByteYear,
		ExemptionYears:     DefaultExemptionYears,
		StorageOverhead:    DefaultStorageOverhead,
	}
}

// MinimumBalance - balance required to keep a cell of size bytes alive indefinitely
func (r Rent) MinimumBalance(size int) uint64 {
	if size < 0 {
		size = 0
	}
	return (r.StorageOverhead + uint64(size)) * r.BalancePerByteYear * r.ExemptionYears
}

// IsExempt - true if balance is enough for size bytes
func (r Rent) IsExempt(balance uint64, size int) bool {
	return balance >= r.MinimumBalance(size)
}

// TopUp - amount to add to balance to reach the minimum for size
//
// zero if balance already covers the size
func (r Rent) TopUp(balance uint64, size int) uint64 {
	minimum := r.MinimumBalance(size)
	if balance >= minimum {
		return 0
	}
	return minimum - balance
}

// Excess - amount of balance above the minimum for size
//
// zero if balance does not exceed the minimum
func (r Rent) Excess(balance uint64, size int) uint64 {
	minimum := r.MinimumBalance(size)
	if balance <= minimum {
		return 0
	}
	return balance - minimum
}
