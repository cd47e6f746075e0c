// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/PepeCosmico/soldb/util"
)

func TestVarint64(t *testing.T) {
	items := []struct {
		value   uint64
		encoded []byte
	}{
		{0x00, []byte{0x00}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
		{0x2800, []byte{0x80, 0x50}},
		{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}},
	}

	for i, item := range items {
		encoded := util.AppendVarint64(nil, item.value)
		if !bytes.Equal(item.encoded, encoded) {
			t.Errorf("%d: encoded: %x  expected: %x", i, encoded, item.encoded)
		}
		value, n := util.FromVarint64(encoded)
		if len(encoded) != n {
			t.Errorf("%d: used: %d bytes  expected: %d", i, n, len(encoded))
		}
		if item.value != value {
			t.Errorf("%d: value: %d  expected: %d", i, value, item.value)
		}
	}
}

func TestTruncatedVarint64(t *testing.T) {
	value, n := util.FromVarint64([]byte{0x80, 0x80})
	if 0 != value || 0 != n {
		t.Errorf("truncated varint decoded as: %d, %d", value, n)
	}
	value, n = util.FromVarint64(nil)
	if 0 != value || 0 != n {
		t.Errorf("empty buffer decoded as: %d, %d", value, n)
	}
}

func TestClippedVarint64(t *testing.T) {
	items := []struct {
		buffer   []byte
		minimum  int
		maximum  int
		value    int
		consumed int
	}{
		{[]byte{0x05}, 1, 10, 5, 1},
		{[]byte{0x00}, 0, 10, 0, 1},
		{[]byte{0x00}, 1, 10, 0, 0},
		{[]byte{0x0b}, 1, 10, 0, 0},
		{[]byte{0x80, 0x01}, 1, 200, 128, 2},
		{[]byte{0x05}, 10, 1, 0, 0},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, 0, 100, 0, 0},
	}

	for i, item := range items {
		value, n := util.ClippedVarint64(item.buffer, item.minimum, item.maximum)
		if item.value != value || item.consumed != n {
			t.Errorf("%d: got: %d, %d  expected: %d, %d", i, value, n, item.value, item.consumed)
		}
	}
}

func TestAppendAndReadBytes(t *testing.T) {
	buffer := util.AppendString(nil, "T")
	buffer = util.AppendBytes(buffer, []byte{1, 2, 3})
	buffer = util.AppendBytes(buffer, []byte{})

	expected := []byte{0x01, 'T', 0x03, 0x01, 0x02, 0x03, 0x00}
	if !bytes.Equal(expected, buffer) {
		t.Fatalf("packed: %x  expected: %x", buffer, expected)
	}

	name, n := util.FromBytes(buffer, 1, 32)
	if "T" != string(name) || 2 != n {
		t.Errorf("name: %q used: %d", name, n)
	}
	data, m := util.FromBytes(buffer[n:], 0, 32)
	if !bytes.Equal([]byte{1, 2, 3}, data) || 4 != m {
		t.Errorf("data: %x used: %d", data, m)
	}
	empty, k := util.FromBytes(buffer[n+m:], 0, 32)
	if 0 != len(empty) || 1 != k {
		t.Errorf("empty: %x used: %d", empty, k)
	}

	// length claims more than is present
	_, z := util.FromBytes([]byte{0x05, 0x01}, 0, 32)
	if 0 != z {
		t.Errorf("truncated field accepted, used: %d", z)
	}
}
