// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte cell address
// 4. txId         = transaction digest as 32 byte SHA3-256(data)
// 5. slot         = successive transaction count as big endian uint64 (8 bytes)
// 6. *others*     = byte values of various length
//
// Cells:
//
//   C ++ address               - live cells
//                                data: owner ++ Varint64(balance) ++ Varint64(length) ++ data
//
// Transactions:
//
//   T ++ txId                  - processed transactions, used to reject replays
//                                data: slot
//
// Meta:
//
//   M ++ name                  - ledger counters
//                                data: big endian uint64
//
// Testing:
//   Z ++ key                   - testing data
package storage
