// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	saltSize  = 16
	nonceSize = 24
)

// SaveWithPassword - write a new key file with the seed encrypted
// under a key derived from the password
//
// only the address and public key are stored in clear
func (k *KeyPair) SaveWithPassword(fileName string, password string) error {
	if "" == password {
		return ErrPasswordRequired
	}

	var salt [saltSize]byte
	if _, err := rand.Read(salt[:]); nil != err {
		return err
	}

	secretKey, err := generateKey(password, salt[:])
	if nil != err {
		return err
	}

	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); nil != err {
		return err
	}
	ciphertext := secretbox.Seal(nonce[:], []byte(k.Seed), &nonce, secretKey)

	raw := &RawKeyPair{
		Address:   k.Address().String(),
		PublicKey: hex.EncodeToString(k.PublicKey),
		Salt:      hex.EncodeToString(salt[:]),
		Data:      hex.EncodeToString(ciphertext),
	}
	return writeKeyFile(fileName, raw)
}

func generateKey(password string, salt []byte) (*[32]byte, error) {
	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), salt)
	if nil != err {
		return nil, err
	}

	var secretKey [32]byte
	copy(secretKey[:], hash)

	return &secretKey, nil
}

// recover the seed from the hex salt and hex nonce ++ ciphertext
func decryptSeed(saltHex string, dataHex string, password string) (string, error) {
	salt, err := hex.DecodeString(saltHex)
	if nil != err || saltSize != len(salt) {
		return "", ErrInvalidSeed
	}

	encrypted, err := hex.DecodeString(dataHex)
	if nil != err || len(encrypted) <= nonceSize {
		return "", ErrInvalidSeed
	}

	secretKey, err := generateKey(password, salt)
	if nil != err {
		return "", err
	}

	var nonce [nonceSize]byte
	copy(nonce[:], encrypted[:nonceSize])

	seed, ok := secretbox.Open(nil, encrypted[nonceSize:], &nonce, secretKey)
	if !ok {
		return "", ErrWrongPassword
	}
	return string(seed), nil
}
