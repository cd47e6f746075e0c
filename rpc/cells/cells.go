// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cells

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/cell"
	"github.com/PepeCosmico/soldb/cellrecord"
	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/ledger"
	"github.com/PepeCosmico/soldb/rpc/ratelimit"
)

const (
	rateLimitCell = 200
	rateBurstCell = 100
)

// Cell - an RPC entry for cell related functions
type Cell struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Handle
	airdrop bool
}

// GetArguments - arguments for Get
type GetArguments struct {
	Address address.Address `json:"address"`
}

// GetReply - committed state of a cell
//
// Record is the decoded layout when the data holds exactly one
type GetReply struct {
	Address    address.Address   `json:"address"`
	Owner      address.Address   `json:"owner"`
	Balance    uint64            `json:"balance"`
	Data       cellrecord.Packed `json:"data"`
	RecordType string            `json:"recordType,omitempty"`
	Record     interface{}       `json:"record,omitempty"`
}

// AirdropArguments - arguments for Airdrop
type AirdropArguments struct {
	Address address.Address `json:"address"`
	Amount  uint64          `json:"amount,string"`
}

// AirdropReply - balance after the airdrop
type AirdropReply struct {
	Balance uint64 `json:"balance,string"`
}

// MinimumBalanceArguments - arguments for MinimumBalance
type MinimumBalanceArguments struct {
	Size int `json:"size"`
}

// MinimumBalanceReply - rent exempt minimum
type MinimumBalanceReply struct {
	Size            int    `json:"size"`
	Balance         uint64 `json:"balance"`
	FeePerSignature uint64 `json:"feePerSignature"`
}

// New - create the cell RPC entry
//
// airdrop enables crediting of arbitrary cells, for local testing only
func New(log *logger.L, l ledger.Handle, airdrop bool) *Cell {
	return &Cell{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitCell, rateBurstCell),
		Ledger:  l,
		airdrop: airdrop,
	}
}

// Get - committed state of a cell
func (c *Cell) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	if nil == c.Ledger {
		return fault.ErrDatabaseIsNotSet
	}

	found, ok := c.Ledger.Cell(arguments.Address)
	if !ok {
		return fault.ErrCellNotFound
	}

	reply.Address = found.Address
	reply.Owner = found.Owner
	reply.Balance = found.Balance
	reply.Data = found.Data

	if 0 != len(found.Data) {
		reply.RecordType, reply.Record = decode(found)
	}
	return nil
}

func decode(c *cell.Cell) (string, interface{}) {
	record, n, err := cellrecord.Packed(c.Data).Unpack()
	if nil != err || len(c.Data) != n {
		return "", nil
	}
	name, _ := cellrecord.RecordName(record)
	return name, record
}

// Airdrop - credit a system owned cell
func (c *Cell) Airdrop(arguments *AirdropArguments, reply *AirdropReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	if !c.airdrop {
		return fault.ErrAirdropDisabled
	}

	if nil == c.Ledger {
		return fault.ErrDatabaseIsNotSet
	}

	if 0 == arguments.Amount {
		return fault.ErrInvalidCount
	}

	balance, err := c.Ledger.Airdrop(arguments.Address, arguments.Amount)
	if nil != err {
		return err
	}

	c.Log.Infof("airdrop: %d  to: %s", arguments.Amount, arguments.Address)

	reply.Balance = balance
	return nil
}

// MinimumBalance - rent exempt minimum for a data size
func (c *Cell) MinimumBalance(arguments *MinimumBalanceArguments, reply *MinimumBalanceReply) error {

	if err := ratelimit.Limit(c.Limiter); nil != err {
		return err
	}

	if nil == c.Ledger {
		return fault.ErrDatabaseIsNotSet
	}

	if arguments.Size < 0 || arguments.Size > cell.MaxDataLength {
		return fault.ErrInvalidDataSize
	}

	reply.Size = arguments.Size
	reply.Balance = c.Ledger.Rent().MinimumBalance(arguments.Size)
	reply.FeePerSignature = c.Ledger.FeePerSignature()
	return nil
}
