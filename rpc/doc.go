// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC access to the ledger
//
// services:
//
//   Cell.Get               committed cell with its decoded record
//   Cell.Airdrop           credit a cell, only when enabled in configuration
//   Cell.MinimumBalance    rent exempt minimum and fee parameters
//   Node.Info              version, program id, slot and counters
//   Transaction.Submit     verify, execute and commit a signed transaction
//   Transaction.Status     whether a transaction was processed
//
// a transaction that executed and failed is not an RPC error, its
// reply carries the error text and, for program errors, the code
//
// connections are TLS when a certificate is configured
package rpc
