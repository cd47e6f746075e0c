// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/command/soldb-cli/rpccalls"
	"github.com/PepeCosmico/soldb/keypair"
	"github.com/PepeCosmico/soldb/ledger"
)

// value as typed, or hex when prefixed with 0x
func parseBytes(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return hex.DecodeString(s[2:])
	}
	return []byte(s), nil
}

func checkTable(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredTable
	}
	return name, nil
}

func checkKey(key string) ([]byte, error) {
	if "" == key {
		return nil, ErrRequiredKey
	}
	return parseBytes(key)
}

func checkTransferTxId(txId string) (string, error) {
	if "" == txId {
		return "", ErrRequiredTransferTxId
	}
	return txId, nil
}

// the address argument, or the identity's address if blank
func addressOrIdentity(m *metadata, s string) (address.Address, error) {
	if "" != s {
		return address.FromBase58(s)
	}
	k, err := loadIdentity(m)
	if nil != err {
		return address.Address{}, err
	}
	return k.Address(), nil
}

// the identity key, decrypted when a password is given
func loadIdentity(m *metadata) (*keypair.KeyPair, error) {
	return keypair.LoadWithPassword(m.keyFile, m.password)
}

// the configured program, otherwise the one the node reports
func programID(m *metadata, client *rpccalls.Client) (address.Address, error) {
	if "" != m.programID {
		return address.FromBase58(m.programID)
	}
	info, err := client.GetNodeInfo()
	if nil != err {
		return address.Address{}, err
	}
	return info.ProgramID, nil
}

// sign a single instruction with the identity key and submit it
//
// the identity pays the fee
func submit(m *metadata, client *rpccalls.Client, k *keypair.KeyPair, instruction ledger.Instruction) error {

	message := &ledger.Message{
		FeePayer:     k.Address(),
		Nonce:        uint64(time.Now().UnixNano()),
		Instructions: []ledger.Instruction{instruction},
	}

	tx, err := message.Sign(k.PrivateKey)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "transaction: %#v\n", tx)
	}

	reply, err := client.Submit(tx)
	if nil != err {
		return err
	}

	printJson(m.w, reply)

	if "" != reply.Error {
		return ErrTransactionFailed
	}
	return nil
}

// balance with separators for display
func formatBalance(balance uint64) string {
	return humanize.Comma(int64(balance))
}
