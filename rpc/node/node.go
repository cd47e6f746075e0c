// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/counter"
	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/ledger"
	"github.com/PepeCosmico/soldb/rent"
	"github.com/PepeCosmico/soldb/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	ProgramID address.Address
	Ledger    ledger.Handle
	counter   *counter.Counter
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version         string          `json:"version"`
	ProgramID       address.Address `json:"programId"`
	Slot            uint64          `json:"slot"`
	FeePerSignature uint64          `json:"feePerSignature"`
	Rent            rent.Rent       `json:"rent"`
	RPCs            uint64          `json:"rpcs"`
	Uptime          string          `json:"uptime"`
}

// New - create the node RPC entry
func New(log *logger.L, l ledger.Handle, programID address.Address, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		ProgramID: programID,
		Ledger:    l,
		counter:   counter,
	}
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Ledger {
		return fault.ErrDatabaseIsNotSet
	}

	reply.Version = node.Version
	reply.ProgramID = node.ProgramID
	reply.Slot = node.Ledger.Slot()
	reply.FeePerSignature = node.Ledger.FeePerSignature()
	reply.Rent = node.Ledger.Rent()
	reply.RPCs = node.counter.Uint64()
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
