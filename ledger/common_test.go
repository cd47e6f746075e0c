// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/cell"
	"github.com/PepeCosmico/soldb/kvstore"
	"github.com/PepeCosmico/soldb/rent"
)

const (
	testingDirName = "testing"
	testFee        = 5000
	testAirdrop    = 1000000000
)

var testProgramID = address.Address{0x70, 0x72, 0x6f, 0x67}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// a program made from a function
type programFunc func(host cell.Host, cells []*cell.Cell, data []byte) error

func (f programFunc) Process(host cell.Host, cells []*cell.Cell, data []byte) error {
	return f(host, cells, data)
}

type testKey struct {
	address address.Address
	private ed25519.PrivateKey
}

func newTestKey(t *testing.T) testKey {
	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	if nil != err {
		t.Fatalf("generate key error: %s", err)
	}
	a, _ := address.FromBytes(publicKey)
	return testKey{
		address: a,
		private: privateKey,
	}
}

func newTestLedger(t *testing.T, program Program) (*Ledger, *kvstore.Memory) {
	kv := kvstore.NewMemory()
	l := New(testLogger(), Configuration{
		FeePerSignature: testFee,
		Rent:            testRent(),
	}, NewKVStore(kv))
	if nil != program {
		l.Register(testProgramID, program)
	}
	return l, kv
}

func testLogger() *logger.L {
	return logger.New("ledger")
}

func testRent() rent.Rent {
	return rent.Default()
}

func fund(t *testing.T, l *Ledger, a address.Address) {
	_, err := l.Airdrop(a, testAirdrop)
	if nil != err {
		t.Fatalf("airdrop error: %s", err)
	}
}

func balanceOf(l *Ledger, a address.Address) uint64 {
	c, found := l.Cell(a)
	if !found {
		return 0
	}
	return c.Balance
}

func signed(t *testing.T, m *Message, keys ...testKey) *Transaction {
	privateKeys := make([]ed25519.PrivateKey, 0, len(keys))
	for _, k := range keys {
		privateKeys = append(privateKeys, k.private)
	}
	tx, err := m.Sign(privateKeys...)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return tx
}
