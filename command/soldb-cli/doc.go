// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// soldb-cli - command line client for a soldbd node
//
// the identity key file created by "generate" signs every transaction
// and pays its fees; with --password its seed is stored encrypted
package main
