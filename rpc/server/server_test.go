// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"fmt"
	"math/rand"
	"net"
	"net/rpc"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/counter"
	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/kvstore"
	"github.com/PepeCosmico/soldb/ledger"
	"github.com/PepeCosmico/soldb/rent"
	"github.com/PepeCosmico/soldb/rpc/cells"
	"github.com/PepeCosmico/soldb/rpc/fixtures"
	"github.com/PepeCosmico/soldb/rpc/node"
	"github.com/PepeCosmico/soldb/rpc/server"
	"github.com/PepeCosmico/soldb/rpc/transaction"
)

var port string

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	l := ledger.New(logger.New(fixtures.LogCategory), ledger.Configuration{
		FeePerSignature: ledger.DefaultFeePerSignature,
		Rent:            rent.Default(),
	}, ledger.NewKVStore(kvstore.NewMemory()))

	port = fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000) // 30,000 - 60,000
	c := counter.Counter(0)
	options := server.Options{
		Version:   "1.0",
		ProgramID: address.Address{7},
		Airdrop:   false,
	}
	r := server.Create(logger.New(fixtures.LogCategory), l, options, &c)
	listener, err := net.Listen("tcp", port)
	if nil != err {
		fmt.Printf("listen error: %s\n", err)
		os.Exit(1)
	}

	go r.Accept(listener)

	rc := m.Run()

	_ = listener.Close()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func client(t *testing.T) *rpc.Client {
	conn, err := net.Dial("tcp", port)
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	return rpc.NewClient(conn)
}

// following tests make sure proper methods are registered to server

func TestNodeInfo(t *testing.T) {
	c := client(t)
	defer c.Close()

	var reply node.InfoReply
	err := c.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, address.Address{7}, reply.ProgramID, "wrong program id")
}

func TestCellGet(t *testing.T) {
	c := client(t)
	defer c.Close()

	var reply cells.GetReply
	err := c.Call("Cell.Get", &cells.GetArguments{Address: address.Address{1}}, &reply)
	assert.NotNil(t, err, "wrong Cell.Get")
	assert.Equal(t, fault.ErrCellNotFound.Error(), err.Error(), "wrong reply")
}

func TestCellAirdrop(t *testing.T) {
	c := client(t)
	defer c.Close()

	var reply cells.AirdropReply
	err := c.Call("Cell.Airdrop", &cells.AirdropArguments{Address: address.Address{1}, Amount: 1}, &reply)
	assert.NotNil(t, err, "wrong Cell.Airdrop")
	assert.Equal(t, fault.ErrAirdropDisabled.Error(), err.Error(), "wrong reply")
}

func TestCellMinimumBalance(t *testing.T) {
	c := client(t)
	defer c.Close()

	var reply cells.MinimumBalanceReply
	err := c.Call("Cell.MinimumBalance", &cells.MinimumBalanceArguments{Size: 3}, &reply)
	assert.Nil(t, err, "wrong Cell.MinimumBalance")
	assert.Equal(t, uint64(911760), reply.Balance, "wrong balance")
}

func TestTransactionSubmit(t *testing.T) {
	c := client(t)
	defer c.Close()

	arg := ledger.Transaction{
		Message: ledger.Message{
			FeePayer: address.Address{1},
			Instructions: []ledger.Instruction{
				{ProgramID: address.Address{7}},
			},
		},
	}
	var reply transaction.SubmitReply
	err := c.Call("Transaction.Submit", &arg, &reply)
	assert.NotNil(t, err, "wrong Transaction.Submit")
	assert.Equal(t, fault.ErrSignatureCount.Error(), err.Error(), "wrong reply")
}

func TestTransactionStatus(t *testing.T) {
	c := client(t)
	defer c.Close()

	var reply transaction.StatusReply
	err := c.Call("Transaction.Status", &transaction.Arguments{}, &reply)
	assert.Nil(t, err, "wrong Transaction.Status")
	assert.Equal(t, "unknown", reply.Status, "wrong status")
}
