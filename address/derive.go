// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/PepeCosmico/soldb/fault"
)

// limits on seeds, the bump counts as one seed
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

// appended to every derivation so a derived address can never
// collide with a hash computed for any other purpose
var derivationMarker = []byte("ProgramDerivedAddress")

// Derive - compute the program derived address for seeds and bump
//
// the result is a SHA3-256 over seeds, bump, program and marker.  A
// hash that is also a valid ed25519 point is rejected, since such an
// address could have a private key; this is what makes some bumps
// invalid for a given seed tuple.
func Derive(programID Address, seeds [][]byte, bump byte) (Address, error) {
	if len(seeds)+1 > MaxSeeds {
		return Address{}, fault.ErrTooManySeeds
	}

	h := sha3.New256()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return Address{}, fault.ErrMaxSeedLength
		}
		h.Write(seed)
	}
	h.Write([]byte{bump})
	h.Write(programID[:])
	h.Write(derivationMarker)

	derived := Address{}
	copy(derived[:], h.Sum(nil))

	if isOnCurve(derived[:]) {
		return Address{}, fault.ErrOnCurve
	}
	return derived, nil
}

// FindAddress - search for the canonical bump of a seed tuple
//
// the canonical bump is the highest bump that gives a valid address.
// Only clients call this; the program verifies a supplied bump with
// Derive and never searches.
func FindAddress(programID Address, seeds [][]byte) (Address, byte, error) {
	for bump := 255; bump >= 0; bump -= 1 {
		derived, err := Derive(programID, seeds, byte(bump))
		if fault.ErrOnCurve == err {
			continue
		}
		if nil != err {
			return Address{}, 0, err
		}
		return derived, byte(bump), nil
	}
	return Address{}, 0, fault.ErrOnCurve
}

// true if the bytes decode to a point on the curve
func isOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return nil == err
}
