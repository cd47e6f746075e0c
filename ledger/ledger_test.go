// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/cell"
	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/kvstore"
	"github.com/PepeCosmico/soldb/storage"
)

var noop = programFunc(func(host cell.Host, cells []*cell.Cell, data []byte) error {
	return nil
})

// move data[0] units from the first cell to the second via the host
var transfer = programFunc(func(host cell.Host, cells []*cell.Cell, data []byte) error {
	return host.Transfer(cells[0], cells[1], uint64(data[0]))
})

func message(payer address.Address, nonce uint64, instructions ...Instruction) *Message {
	return &Message{
		FeePayer:     payer,
		Nonce:        nonce,
		Instructions: instructions,
	}
}

func transferInstruction(from address.Address, to address.Address, amount byte) Instruction {
	return Instruction{
		ProgramID: testProgramID,
		Accounts: []AccountMeta{
			{Address: from, Signer: true, Writable: true},
			{Address: to, Writable: true},
		},
		Data: []byte{amount},
	}
}

func TestAirdrop(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	l, _ := newTestLedger(t, nil)
	a := address.Address{0x01}

	balance, err := l.Airdrop(a, 100)
	assert.Nil(t, err, "airdrop error")
	assert.Equal(t, uint64(100), balance, "wrong balance")

	balance, err = l.Airdrop(a, 50)
	assert.Nil(t, err, "airdrop error")
	assert.Equal(t, uint64(150), balance, "airdrop did not accumulate")
	assert.Equal(t, uint64(150), balanceOf(l, a), "wrong committed balance")
	assert.Equal(t, uint64(0), l.Slot(), "airdrop advanced slot")
}

func TestSubmitChargesFee(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	l, _ := newTestLedger(t, noop)
	payer := newTestKey(t)
	fund(t, l, payer.address)

	tx := signed(t, message(payer.address, 1, Instruction{ProgramID: testProgramID}), payer)
	receipt, err := l.Submit(tx)
	assert.Nil(t, err, "submit error")
	assert.Equal(t, uint64(1), receipt.Slot, "wrong slot")
	assert.Equal(t, uint64(testFee), receipt.Fee, "wrong fee")
	assert.Equal(t, tx.ID(), receipt.ID, "wrong id")
	assert.Equal(t, uint64(testAirdrop-testFee), balanceOf(l, payer.address), "fee not charged")
	assert.Equal(t, uint64(1), l.Slot(), "slot not committed")
}

func TestFeeIsPerSignature(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	l, _ := newTestLedger(t, transfer)
	payer := newTestKey(t)
	other := newTestKey(t)
	fund(t, l, payer.address)
	fund(t, l, other.address)

	tx := signed(t, message(payer.address, 1, transferInstruction(other.address, payer.address, 10)), payer, other)
	receipt, err := l.Submit(tx)
	assert.Nil(t, err, "submit error")
	assert.Equal(t, uint64(2*testFee), receipt.Fee, "wrong fee")
	assert.Equal(t, uint64(testAirdrop-2*testFee+10), balanceOf(l, payer.address), "wrong payer balance")
	assert.Equal(t, uint64(testAirdrop-10), balanceOf(l, other.address), "wrong other balance")
}

func TestReplayIsRejected(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	l, _ := newTestLedger(t, noop)
	payer := newTestKey(t)
	fund(t, l, payer.address)

	tx := signed(t, message(payer.address, 1, Instruction{ProgramID: testProgramID}), payer)
	_, err := l.Submit(tx)
	assert.Nil(t, err, "first submit error")

	receipt, err := l.Submit(tx)
	assert.Equal(t, fault.ErrTransactionAlreadyInUse, err, "replay accepted")
	assert.Nil(t, receipt, "replay has receipt")
	assert.Equal(t, uint64(testAirdrop-testFee), balanceOf(l, payer.address), "replay charged")

	// a new nonce is a new transaction
	tx = signed(t, message(payer.address, 2, Instruction{ProgramID: testProgramID}), payer)
	_, err = l.Submit(tx)
	assert.Nil(t, err, "second nonce rejected")
	assert.Equal(t, uint64(2), l.Slot(), "wrong slot")
}

func TestSubmitRejectsBadSignature(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	l, _ := newTestLedger(t, noop)
	payer := newTestKey(t)
	fund(t, l, payer.address)

	tx := signed(t, message(payer.address, 1, Instruction{ProgramID: testProgramID}), payer)
	tx.Signatures[0][0] ^= 0xff

	receipt, err := l.Submit(tx)
	assert.Equal(t, fault.ErrInvalidSignature, err, "bad signature accepted")
	assert.Nil(t, receipt, "rejected transaction has receipt")
	assert.Equal(t, uint64(testAirdrop), balanceOf(l, payer.address), "rejected transaction charged")
	assert.Equal(t, uint64(0), l.Slot(), "rejected transaction advanced slot")
}

func TestSubmitWithoutFunds(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	l, _ := newTestLedger(t, noop)
	payer := newTestKey(t)

	tx := signed(t, message(payer.address, 1, Instruction{ProgramID: testProgramID}), payer)
	_, err := l.Submit(tx)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "unfunded payer accepted")

	_, err = l.Airdrop(payer.address, testFee-1)
	assert.Nil(t, err, "airdrop error")

	_, err = l.Submit(tx)
	assert.Equal(t, fault.ErrInsufficientFunds, err, "short payer accepted")
	assert.Equal(t, uint64(testFee-1), balanceOf(l, payer.address), "short payer charged")
}

func TestUnknownProgramKeepsFee(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	l, _ := newTestLedger(t, nil)
	payer := newTestKey(t)
	fund(t, l, payer.address)

	tx := signed(t, message(payer.address, 1, Instruction{ProgramID: testProgramID}), payer)
	receipt, err := l.Submit(tx)
	assert.Equal(t, fault.ErrProgramNotFound, err, "unknown program ran")
	assert.NotNil(t, receipt, "failed transaction has no receipt")
	assert.Equal(t, uint64(testAirdrop-testFee), balanceOf(l, payer.address), "fee not kept")

	// the failed transaction is recorded
	_, err = l.Submit(tx)
	assert.Equal(t, fault.ErrTransactionAlreadyInUse, err, "failed transaction replayed")
}

func TestDuplicateAccountFails(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	l, _ := newTestLedger(t, transfer)
	payer := newTestKey(t)
	fund(t, l, payer.address)

	tx := signed(t, message(payer.address, 1, transferInstruction(payer.address, payer.address, 1)), payer)
	_, err := l.Submit(tx)
	assert.Equal(t, fault.ErrAccountBorrowFailed, err, "duplicate account accepted")
}

func TestFailureDiscardsAllInstructions(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	fail := programFunc(func(host cell.Host, cells []*cell.Cell, data []byte) error {
		if 0 == data[0] {
			return fault.Unknown
		}
		return host.Transfer(cells[0], cells[1], uint64(data[0]))
	})

	l, _ := newTestLedger(t, fail)
	payer := newTestKey(t)
	recipient := address.Address{0x02}
	fund(t, l, payer.address)

	tx := signed(t, message(payer.address, 1,
		transferInstruction(payer.address, recipient, 100),
		transferInstruction(payer.address, recipient, 0),
	), payer)

	receipt, err := l.Submit(tx)
	assert.Equal(t, fault.Unknown, err, "wrong error")
	assert.Equal(t, uint64(1), receipt.Slot, "wrong slot")
	assert.Equal(t, uint64(0), balanceOf(l, recipient), "first instruction kept")
	assert.Equal(t, uint64(testAirdrop-testFee), balanceOf(l, payer.address), "wrong payer balance")
}

func TestLaterInstructionsSeeEarlierEffects(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	l, _ := newTestLedger(t, transfer)
	payer := newTestKey(t)
	other := newTestKey(t)
	fund(t, l, payer.address)

	// other has nothing until the first instruction credits it
	tx := signed(t, message(payer.address, 1,
		transferInstruction(payer.address, other.address, 200),
		transferInstruction(other.address, payer.address, 150),
	), payer, other)

	_, err := l.Submit(tx)
	assert.Nil(t, err, "submit error")
	assert.Equal(t, uint64(50), balanceOf(l, other.address), "wrong other balance")
}

func TestViolationKeepsFee(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	// credits a cell from nothing
	mint := programFunc(func(host cell.Host, cells []*cell.Cell, data []byte) error {
		cells[1].Balance += 1000
		return nil
	})

	l, _ := newTestLedger(t, mint)
	payer := newTestKey(t)
	recipient := address.Address{0x02}
	fund(t, l, payer.address)

	tx := signed(t, message(payer.address, 1, transferInstruction(payer.address, recipient, 0)), payer)
	_, err := l.Submit(tx)
	assert.Equal(t, fault.ErrBalanceNotConserved, err, "minted balance accepted")
	assert.Equal(t, uint64(0), balanceOf(l, recipient), "minted balance committed")
	assert.Equal(t, uint64(testAirdrop-testFee), balanceOf(l, payer.address), "fee not kept")
}

func TestPoolStore(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	_, err := NewPoolStore()
	assert.Equal(t, fault.ErrDatabaseIsNotSet, err, "store without database")

	err = storage.Initialise(filepath.Join(testingDirName, "pool"), false)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	store, err := NewPoolStore()
	if nil != err {
		t.Fatalf("pool store error: %s", err)
	}

	l := New(testLogger(), Configuration{FeePerSignature: testFee, Rent: testRent()}, store)
	l.Register(testProgramID, transfer)

	payer := newTestKey(t)
	recipient := address.Address{0x02}
	fund(t, l, payer.address)

	tx := signed(t, message(payer.address, 1, transferInstruction(payer.address, recipient, 100)), payer)
	_, err = l.Submit(tx)
	assert.Nil(t, err, "submit error")

	assert.Equal(t, uint64(1), store.Slot(), "wrong slot")
	assert.True(t, store.HasTransaction(tx.ID()), "transaction not recorded")
	assert.Equal(t, uint64(100), balanceOf(l, recipient), "wrong recipient balance")
	assert.Equal(t, uint64(testAirdrop-testFee-100), balanceOf(l, payer.address), "wrong payer balance")

	_, err = l.Submit(tx)
	assert.Equal(t, fault.ErrTransactionAlreadyInUse, err, "replay accepted")
}

func TestAirdropOverflow(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	l, _ := newTestLedger(t, nil)
	a := address.Address{0x01}

	_, err := l.Airdrop(a, math.MaxUint64-10)
	assert.Nil(t, err, "airdrop error")

	_, err = l.Airdrop(a, 11)
	assert.Equal(t, fault.ErrInvalidCount, err, "overflowing airdrop accepted")
	assert.Equal(t, uint64(math.MaxUint64-10), balanceOf(l, a), "balance changed")

	balance, err := l.Airdrop(a, 10)
	assert.Nil(t, err, "airdrop to the limit rejected")
	assert.Equal(t, uint64(math.MaxUint64), balance, "wrong balance")
}

// memory storage whose puts fail for one key prefix
type failingKV struct {
	*kvstore.Memory
	failPrefix byte
}

var errPutFailed = errors.New("put failed")

func (f *failingKV) Put(key []byte, value []byte, mode kvstore.RecordMode) error {
	if 0 != f.failPrefix && f.failPrefix == key[0] {
		return errPutFailed
	}
	return f.Memory.Put(key, value, mode)
}

func TestKVStoreCommitIsAllOrNothing(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	kv := &failingKV{Memory: kvstore.NewMemory()}
	l := New(testLogger(), Configuration{FeePerSignature: testFee, Rent: testRent()}, NewKVStore(kv))
	l.Register(testProgramID, transfer)

	payer := newTestKey(t)
	recipient := address.Address{0x02}
	fund(t, l, payer.address)
	_, err := l.Airdrop(recipient, 7)
	assert.Nil(t, err, "airdrop error")

	kv.failPrefix = transactionPrefix

	tx := signed(t, message(payer.address, 1, transferInstruction(payer.address, recipient, 100)), payer)
	_, err = l.Submit(tx)
	assert.Equal(t, errPutFailed, err, "commit error not returned")

	assert.Equal(t, uint64(testAirdrop), balanceOf(l, payer.address), "payer cell left written")
	assert.Equal(t, uint64(7), balanceOf(l, recipient), "recipient cell left written")
	assert.False(t, l.HasTransaction(tx.ID()), "transaction recorded")
	assert.Equal(t, uint64(0), l.Slot(), "slot advanced")

	kv.failPrefix = 0

	_, err = l.Submit(tx)
	assert.Nil(t, err, "retry after failure rejected")
	assert.Equal(t, uint64(107), balanceOf(l, recipient), "wrong recipient balance")
}
