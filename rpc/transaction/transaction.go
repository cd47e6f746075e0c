// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/ledger"
	"github.com/PepeCosmico/soldb/rpc/ratelimit"
)

const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100
)

// Transaction - an RPC entry for transaction related functions
type Transaction struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Handle
}

// SubmitReply - result of a submitted transaction
//
// a transaction that executed and failed still has a slot and a fee,
// the failure is in Error and, for program errors, Code
type SubmitReply struct {
	ID    ledger.Digest `json:"id"`
	Slot  uint64        `json:"slot"`
	Fee   uint64        `json:"fee"`
	Error string        `json:"error,omitempty"`
	Code  *uint32       `json:"code,omitempty"`
}

// Arguments - arguments for status RPC request
type Arguments struct {
	TxId ledger.Digest `json:"txId"`
}

// StatusReply - results from status RPC
type StatusReply struct {
	Status string `json:"status"`
}

// transaction states
const (
	statusProcessed = "processed"
	statusUnknown   = "unknown"
)

// New - create the transaction RPC entry
func New(log *logger.L, l ledger.Handle) *Transaction {
	return &Transaction{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTransaction, rateBurstTransaction),
		Ledger:  l,
	}
}

// Submit - process a signed transaction
func (t *Transaction) Submit(arguments *ledger.Transaction, reply *SubmitReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == t.Ledger {
		return fault.ErrDatabaseIsNotSet
	}

	if nil == arguments || 0 == len(arguments.Message.Instructions) {
		return fault.ErrMissingParameters
	}

	receipt, err := t.Ledger.Submit(arguments)
	if nil == receipt {
		return err
	}

	reply.ID = receipt.ID
	reply.Slot = receipt.Slot
	reply.Fee = receipt.Fee

	if nil != err {
		t.Log.Infof("submit: %s  failed: %s", receipt.ID, err)
		reply.Error = err.Error()
		if code, ok := fault.ProgramErrorCode(err); ok {
			reply.Code = &code
		}
	}
	return nil
}

// Status - query transaction status
func (t *Transaction) Status(arguments *Arguments, reply *StatusReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if nil == t.Ledger {
		return fault.ErrDatabaseIsNotSet
	}

	if t.Ledger.HasTransaction(arguments.TxId) {
		reply.Status = statusProcessed
	} else {
		reply.Status = statusUnknown
	}
	return nil
}
