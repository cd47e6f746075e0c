// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/PepeCosmico/soldb/fault"
)

// common errors - keep in alphabetic order
const (
	ErrRequiredAddressOrTable = fault.InvalidError("either address or table is required")
	ErrRequiredKey            = fault.InvalidError("key is required")
	ErrRequiredTable          = fault.InvalidError("table is required")
	ErrRequiredTransferTxId   = fault.InvalidError("transaction id is required")
	ErrTableAndAddress        = fault.InvalidError("only one of table and table address is allowed")
	ErrTransactionFailed      = fault.ProcessError("transaction failed")
)
