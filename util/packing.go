// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
)

// AppendVarint64 - append Varint64(value) to a buffer
func AppendVarint64(buffer []byte, value uint64) []byte {
	return binary.AppendUvarint(buffer, value)
}

// AppendBytes - append a field to a buffer
//
// the field is prefixed by Varint64(length)
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// AppendString - append a string field to a buffer
//
// the field is prefixed by Varint64(length)
func AppendString(buffer []byte, s string) []byte {
	buffer = AppendVarint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// FromVarint64 - decode a Varint64 from the start of a buffer
//
// also return the number of bytes used as second value
// returns 0, 0 if the buffer is truncated or the value overflows
func FromVarint64(buffer []byte) (uint64, int) {
	value, n := binary.Uvarint(buffer)
	if n <= 0 {
		return 0, 0
	}
	return value, n
}

// ClippedVarint64 - return a clipped value as an int
//
// any value outside the range minimum..maximum is an error and
// returns 0, 0
func ClippedVarint64(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum < 0 || minimum >= maximum {
		return 0, 0
	}

	value, count := FromVarint64(buffer)
	if 0 == count {
		return 0, 0
	}
	if value > uint64(maximum) || int(value) < minimum {
		return 0, 0
	}
	return int(value), count
}

// FromBytes - decode a length prefixed field
//
// returns a copy of the field and the total bytes used, or nil, 0 if
// the length is outside minimum..maximum or the buffer is truncated
func FromBytes(buffer []byte, minimum int, maximum int) ([]byte, int) {
	length, n := ClippedVarint64(buffer, minimum, maximum)
	if 0 == n {
		return nil, 0
	}
	if len(buffer)-n < length {
		return nil, 0
	}
	data := make([]byte, length)
	copy(data, buffer[n:n+length])
	return data, n + length
}
