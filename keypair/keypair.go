// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - ed25519 identities derived from a checksummed seed
//
// a seed is base58(magic ++ 32 random bytes ++ SHA3-256 checksum[:4])
// and the key pair is the ed25519 key generated from the random bytes
package keypair

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/fault"
)

// errors
var (
	ErrChecksumMismatch = fault.InvalidError("seed checksum mismatch")
	ErrInvalidSeed      = fault.InvalidError("seed is invalid")
	ErrKeyLength        = fault.InvalidError("key length is invalid")
	ErrPasswordRequired = fault.InvalidError("key file is password protected")
	ErrWrongPassword    = fault.InvalidError("wrong password")
)

const (
	seedMagicLength = 3
	seedCoreLength  = ed25519.SeedSize
	checksumLength  = 4
	packedSeedBytes = seedMagicLength + seedCoreLength + checksumLength
)

var seedMagic = [seedMagicLength]byte{0x5a, 0xfe, 0x5d}

// KeyPair - structure to hold public and private keys and the seed
// that was used to generate them
type KeyPair struct {
	Seed       string
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
}

// RawKeyPair - text version of seed and keys, the key file format
type RawKeyPair struct {
	Seed       string `json:"seed,omitempty"`
	Address    string `json:"address"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key,omitempty"`
	Salt       string `json:"salt,omitempty"`
	Data       string `json:"data,omitempty"`
}

// NewSeed - create a new seed from secure random data
func NewSeed() (string, error) {
	seedCore := make([]byte, seedCoreLength)
	n, err := rand.Read(seedCore)
	if nil != err {
		return "", err
	}
	if seedCoreLength != n {
		panic("too few random bytes")
	}
	return packSeed(seedCore), nil
}

func packSeed(seedCore []byte) string {
	packedSeed := append([]byte{}, seedMagic[:]...)
	packedSeed = append(packedSeed, seedCore...)
	checksum := sha3.Sum256(packedSeed)
	packedSeed = append(packedSeed, checksum[:checksumLength]...)
	return base58.Encode(packedSeed)
}

// New - create a new seed and generate its key pair
func New() (*KeyPair, error) {
	seed, err := NewSeed()
	if nil != err {
		return nil, err
	}
	return FromSeed(seed)
}

// FromSeed - generate public/private keys from an existing seed
func FromSeed(seed string) (*KeyPair, error) {
	packedSeed, err := base58.Decode(seed)
	if nil != err || packedSeedBytes != len(packedSeed) {
		return nil, ErrInvalidSeed
	}
	if !bytes.Equal(seedMagic[:], packedSeed[:seedMagicLength]) {
		return nil, ErrInvalidSeed
	}

	n := len(packedSeed) - checksumLength
	checksum := sha3.Sum256(packedSeed[:n])
	if !bytes.Equal(checksum[:checksumLength], packedSeed[n:]) {
		return nil, ErrChecksumMismatch
	}

	privateKey := ed25519.NewKeyFromSeed(packedSeed[seedMagicLength:n])
	return &KeyPair{
		Seed:       seed,
		PublicKey:  privateKey.Public().(ed25519.PublicKey),
		PrivateKey: privateKey,
	}, nil
}

// Address - the address owned by this key pair
func (k *KeyPair) Address() address.Address {
	a, _ := address.FromBytes(k.PublicKey)
	return a
}

// Raw - text form
func (k *KeyPair) Raw() *RawKeyPair {
	return &RawKeyPair{
		Seed:       k.Seed,
		Address:    k.Address().String(),
		PublicKey:  hex.EncodeToString(k.PublicKey),
		PrivateKey: hex.EncodeToString(k.PrivateKey),
	}
}

// Save - write a new key file, never overwrites an existing one
func (k *KeyPair) Save(fileName string) error {
	return writeKeyFile(fileName, k.Raw())
}

func writeKeyFile(fileName string, raw *RawKeyPair) error {
	data, err := json.MarshalIndent(raw, "", "  ")
	if nil != err {
		return err
	}
	data = append(data, '\n')

	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if nil != err {
		return err
	}
	_, err = f.Write(data)
	if nil != err {
		f.Close()
		os.Remove(fileName)
		return err
	}
	return f.Close()
}

// Load - read an unencrypted key file
//
// the keys are regenerated from the seed and must match any keys
// present in the file
func Load(fileName string) (*KeyPair, error) {
	return LoadWithPassword(fileName, "")
}

// LoadWithPassword - read a key file, decrypting the seed if the
// file was written by SaveWithPassword
func LoadWithPassword(fileName string, password string) (*KeyPair, error) {
	raw, err := readKeyFile(fileName)
	if nil != err {
		return nil, err
	}

	seed := raw.Seed
	if "" != raw.Data {
		if "" == password {
			return nil, ErrPasswordRequired
		}
		seed, err = decryptSeed(raw.Salt, raw.Data, password)
		if nil != err {
			return nil, err
		}
	}

	k, err := FromSeed(seed)
	if nil != err {
		return nil, err
	}

	if "" != raw.PrivateKey {
		privateKey, err := hex.DecodeString(raw.PrivateKey)
		if nil != err || ed25519.PrivateKeySize != len(privateKey) {
			return nil, ErrKeyLength
		}
		if !bytes.Equal(privateKey, k.PrivateKey) {
			return nil, ErrInvalidSeed
		}
	}
	if "" != raw.Address && raw.Address != k.Address().String() {
		return nil, ErrInvalidSeed
	}
	return k, nil
}

func readKeyFile(fileName string) (*RawKeyPair, error) {
	data, err := os.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	var raw RawKeyPair
	err = json.Unmarshal(data, &raw)
	if nil != err {
		return nil, err
	}
	return &raw, nil
}
