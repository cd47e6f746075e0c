// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/fault"
)

const programBase58 = "SDBPbpwuFzj8zjhf4LjQJwYoy2SAJETeBDGKb8keRpq"

func programID(t *testing.T) address.Address {
	p, err := address.FromBase58(programBase58)
	if nil != err {
		t.Fatalf("program id decode error: %s", err)
	}
	return p
}

func owner(n byte) address.Address {
	a := address.Address{}
	for i := range a {
		a[i] = n + byte(i)
	}
	return a
}

func TestBase58RoundTrip(t *testing.T) {
	p := programID(t)
	assert.Equal(t, programBase58, p.String(), "wrong base58 text")

	b, err := json.Marshal(p)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `"`+programBase58+`"`, string(b), "wrong JSON")

	var recovered address.Address
	err = json.Unmarshal(b, &recovered)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, p, recovered, "JSON round trip changed address")

	_, err = address.FromBase58("0OIl")
	assert.Equal(t, fault.ErrInvalidAddress, err, "invalid base58 accepted")

	_, err = address.FromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidAddress, err, "short address accepted")
}

func TestDeriveIsDeterministic(t *testing.T) {
	p := programID(t)
	seeds := [][]byte{[]byte("T"), owner(1).Bytes()}

	a1, bump, err := address.FindAddress(p, seeds)
	assert.Nil(t, err, "find error")

	a2, err := address.Derive(p, seeds, bump)
	assert.Nil(t, err, "derive error")
	assert.Equal(t, a1, a2, "derive not deterministic")

	a3, err := address.Derive(p, seeds, bump)
	assert.Nil(t, err, "derive error")
	assert.Equal(t, a2, a3, "derive not deterministic")
}

func TestDeriveTableAddressesAreUnique(t *testing.T) {
	p := programID(t)
	seen := make(map[address.Address]string)

	for _, name := range []string{"T", "U", "table", "tablf"} {
		for _, n := range []byte{1, 2, 3} {
			seeds := [][]byte{[]byte(name), owner(n).Bytes()}
			a, _, err := address.FindAddress(p, seeds)
			if nil != err {
				t.Fatalf("find error: %s", err)
			}
			id := fmt.Sprintf("%s/%d", name, n)
			if previous, ok := seen[a]; ok {
				t.Errorf("address collision: %s and %s", previous, id)
			}
			seen[a] = id
		}
	}
}

func TestDeriveRecordAddressesAreUnique(t *testing.T) {
	p := programID(t)

	tableOne, _, _ := address.FindAddress(p, [][]byte{[]byte("T"), owner(1).Bytes()})
	tableTwo, _, _ := address.FindAddress(p, [][]byte{[]byte("T"), owner(2).Bytes()})

	items := []struct {
		key   string
		table address.Address
		owner address.Address
	}{
		{"k-0", tableOne, owner(1)},
		{"k-1", tableOne, owner(1)},
		{"k-0", tableTwo, owner(1)},
		{"k-0", tableOne, owner(2)},
		{"k-0", tableTwo, owner(2)},
	}

	seen := make(map[address.Address]int)
	for i, item := range items {
		seeds := [][]byte{[]byte(item.key), item.table.Bytes(), item.owner.Bytes()}
		a, _, err := address.FindAddress(p, seeds)
		if nil != err {
			t.Fatalf("%d: find error: %s", i, err)
		}
		if previous, ok := seen[a]; ok {
			t.Errorf("record %d collides with record %d", i, previous)
		}
		seen[a] = i
	}
}

func TestDeriveDependsOnProgram(t *testing.T) {
	seeds := [][]byte{[]byte("T"), owner(1).Bytes()}
	a1, _, err := address.FindAddress(programID(t), seeds)
	assert.Nil(t, err, "find error")
	a2, _, err := address.FindAddress(owner(9), seeds)
	assert.Nil(t, err, "find error")
	assert.NotEqual(t, a1, a2, "different programs derived the same address")
}

func TestCanonicalBumpIsHighestValid(t *testing.T) {
	p := programID(t)

	for n := byte(0); n < 20; n += 1 {
		seeds := [][]byte{[]byte{n}, owner(n).Bytes()}
		_, bump, err := address.FindAddress(p, seeds)
		if nil != err {
			t.Fatalf("find error: %s", err)
		}
		for higher := int(bump) + 1; higher <= 255; higher += 1 {
			_, err := address.Derive(p, seeds, byte(higher))
			if fault.ErrOnCurve != err {
				t.Errorf("seed %d: bump %d above canonical %d is valid", n, higher, bump)
			}
		}
	}
}

func TestWrongBumpGivesDifferentAddress(t *testing.T) {
	p := programID(t)
	seeds := [][]byte{[]byte("T"), owner(1).Bytes()}
	canonical, bump, err := address.FindAddress(p, seeds)
	assert.Nil(t, err, "find error")

	other, err := address.Derive(p, seeds, bump-1)
	if nil == err {
		assert.NotEqual(t, canonical, other, "wrong bump gave canonical address")
	} else {
		assert.Equal(t, fault.ErrOnCurve, err, "unexpected derive error")
	}
}

func TestSeedLimits(t *testing.T) {
	p := programID(t)

	_, err := address.Derive(p, [][]byte{make([]byte, address.MaxSeedLength+1)}, 255)
	assert.Equal(t, fault.ErrMaxSeedLength, err, "long seed accepted")

	seeds := make([][]byte, address.MaxSeeds)
	_, err = address.Derive(p, seeds, 255)
	assert.Equal(t, fault.ErrTooManySeeds, err, "too many seeds accepted")

	_, _, err = address.FindAddress(p, [][]byte{make([]byte, address.MaxSeedLength+1)})
	assert.Equal(t, fault.ErrMaxSeedLength, err, "find accepted long seed")
}
