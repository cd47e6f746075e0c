// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/fault"
	"github.com/PepeCosmico/soldb/util"
)

// account flag bits in a packed message
const (
	signerFlag   = 0x01
	writableFlag = 0x02
)

// AccountMeta - a cell passed to an instruction and its roles
type AccountMeta struct {
	Address  address.Address `json:"address"`
	Signer   bool            `json:"signer"`
	Writable bool            `json:"writable"`
}

// Instruction - a program invocation inside a message
type Instruction struct {
	ProgramID address.Address `json:"program_id"`
	Accounts  []AccountMeta   `json:"accounts"`
	Data      []byte          `json:"data"`
}

// Message - the signed part of a transaction
//
// Nonce distinguishes otherwise identical messages, since a
// transaction may only be processed once
type Message struct {
	FeePayer     address.Address `json:"fee_payer"`
	Nonce        uint64          `json:"nonce"`
	Instructions []Instruction   `json:"instructions"`
}

// Signature - ed25519 signature, hex in JSON
type Signature []byte

// Transaction - a message with one signature per signer
type Transaction struct {
	Message    Message     `json:"message"`
	Signatures []Signature `json:"signatures"`
}

// Digest - transaction identifier
type Digest [32]byte

// String - hex for the fmt package
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// GoString - for %#v
func (d Digest) GoString() string {
	return "<digest:" + d.String() + ">"
}

// MarshalText - hex JSON form
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText - from hex JSON form
func (d *Digest) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != len(d) {
		return fault.ErrInvalidCount
	}
	_, err := hex.Decode(d[:], s)
	return err
}

// MarshalText - hex JSON form
func (signature Signature) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(signature))
	buffer := make([]byte, size)
	hex.Encode(buffer, signature)
	return buffer, nil
}

// UnmarshalText - from hex JSON form
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	*signature = sig[:byteCount]
	return nil
}

// Pack - the bytes covered by the signatures
//
//   fee payer ++ Varint64(nonce) ++ Varint64(count) ++ instructions
//   instruction = program ++ Varint64(count) ++ (address ++ flags)... ++ Varint64(length) ++ data
func (m *Message) Pack() []byte {
	buffer := append([]byte{}, m.FeePayer[:]...)
	buffer = util.AppendVarint64(buffer, m.Nonce)
	buffer = util.AppendVarint64(buffer, uint64(len(m.Instructions)))
	for _, ix := range m.Instructions {
		buffer = append(buffer, ix.ProgramID[:]...)
		buffer = util.AppendVarint64(buffer, uint64(len(ix.Accounts)))
		for _, meta := range ix.Accounts {
			flags := byte(0)
			if meta.Signer {
				flags |= signerFlag
			}
			if meta.Writable {
				flags |= writableFlag
			}
			buffer = append(buffer, meta.Address[:]...)
			buffer = append(buffer, flags)
		}
		buffer = util.AppendBytes(buffer, ix.Data)
	}
	return buffer
}

// Signers - addresses that must sign, fee payer first
//
// each address appears once, in order of first use
func (m *Message) Signers() []address.Address {
	signers := []address.Address{m.FeePayer}
	seen := map[address.Address]struct{}{
		m.FeePayer: {},
	}
	for _, ix := range m.Instructions {
		for _, meta := range ix.Accounts {
			if !meta.Signer {
				continue
			}
			if _, ok := seen[meta.Address]; ok {
				continue
			}
			seen[meta.Address] = struct{}{}
			signers = append(signers, meta.Address)
		}
	}
	return signers
}

// Sign - sign a message with the keys of all its signers
//
// keys may be given in any order, extra keys are ignored
func (m *Message) Sign(keys ...ed25519.PrivateKey) (*Transaction, error) {
	packed := m.Pack()

	tx := &Transaction{
		Message: *m,
	}

signers:
	for _, signer := range m.Signers() {
		for _, key := range keys {
			publicKey, ok := key.Public().(ed25519.PublicKey)
			if !ok || !bytes.Equal(publicKey, signer[:]) {
				continue
			}
			tx.Signatures = append(tx.Signatures, ed25519.Sign(key, packed))
			continue signers
		}
		return nil, fault.ErrMissingSignature
	}
	return tx, nil
}

// ID - digest of the message and its signatures
func (tx *Transaction) ID() Digest {
	h := sha3.New256()
	h.Write(tx.Message.Pack())
	for _, signature := range tx.Signatures {
		h.Write(signature)
	}
	d := Digest{}
	copy(d[:], h.Sum(nil))
	return d
}

// Verify - check there is a valid signature for every signer
func (tx *Transaction) Verify() error {
	if tx.Message.FeePayer.IsZero() {
		return fault.ErrTransactionHasNoFeePayer
	}

	signers := tx.Message.Signers()
	if len(signers) != len(tx.Signatures) {
		return fault.ErrSignatureCount
	}

	packed := tx.Message.Pack()
	for i, signer := range signers {
		if ed25519.SignatureSize != len(tx.Signatures[i]) {
			return fault.ErrInvalidSignature
		}
		if !ed25519.Verify(signer[:], packed, tx.Signatures[i]) {
			return fault.ErrInvalidSignature
		}
	}
	return nil
}

// GoString - for %#v
func (tx *Transaction) GoString() string {
	return fmt.Sprintf("<transaction fee payer: %s  instructions: %d  signatures: %d>",
		tx.Message.FeePayer, len(tx.Message.Instructions), len(tx.Signatures))
}
