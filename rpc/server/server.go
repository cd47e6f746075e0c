// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/counter"
	"github.com/PepeCosmico/soldb/ledger"
	"github.com/PepeCosmico/soldb/rpc/cells"
	"github.com/PepeCosmico/soldb/rpc/node"
	"github.com/PepeCosmico/soldb/rpc/transaction"
)

// Options - what the server exposes
type Options struct {
	Version   string
	ProgramID address.Address
	Airdrop   bool
}

// Create - an RPC server with all services registered
func Create(log *logger.L, l ledger.Handle, options Options, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.RegisterName("Cell", cells.New(log, l, options.Airdrop))
	_ = server.RegisterName("Node", node.New(log, l, options.ProgramID, start, options.Version, rpcCount))
	_ = server.RegisterName("Transaction", transaction.New(log, l))

	return server
}
