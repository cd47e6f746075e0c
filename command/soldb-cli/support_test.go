// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/keypair"
)

func TestParseBytes(t *testing.T) {
	items := []struct {
		text     string
		expected []byte
	}{
		{"", []byte{}},
		{"abc", []byte("abc")},
		{"0x0102ff", []byte{0x01, 0x02, 0xff}},
		{"0X0a", []byte{0x0a}},
	}

	for i, item := range items {
		b, err := parseBytes(item.text)
		assert.Nil(t, err, "%d: wrong parseBytes", i)
		assert.Equal(t, item.expected, b, "%d: wrong bytes", i)
	}

	_, err := parseBytes("0xzz")
	assert.NotNil(t, err, "invalid hex accepted")
}

func TestChecks(t *testing.T) {
	_, err := checkTable("")
	assert.Equal(t, ErrRequiredTable, err, "empty table accepted")

	_, err = checkKey("")
	assert.Equal(t, ErrRequiredKey, err, "empty key accepted")

	key, err := checkKey("0x00")
	assert.Nil(t, err, "wrong checkKey")
	assert.Equal(t, []byte{0x00}, key, "wrong key")

	_, err = checkTransferTxId("")
	assert.Equal(t, ErrRequiredTransferTxId, err, "empty txid accepted")
}

func TestAddressOrIdentity(t *testing.T) {
	dir, err := ioutil.TempDir("", "soldb-cli")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	k, err := keypair.New()
	assert.Nil(t, err, "wrong keypair.New")
	keyFile := filepath.Join(dir, defaultKeyFile)
	assert.Nil(t, k.Save(keyFile), "wrong Save")

	m := &metadata{keyFile: keyFile}

	a, err := addressOrIdentity(m, "")
	assert.Nil(t, err, "wrong identity address")
	assert.Equal(t, k.Address(), a, "wrong identity address")

	other := address.Address{9}
	a, err = addressOrIdentity(m, other.String())
	assert.Nil(t, err, "wrong explicit address")
	assert.Equal(t, other, a, "explicit address ignored")

	m.keyFile = filepath.Join(dir, "missing.json")
	_, err = addressOrIdentity(m, "")
	assert.NotNil(t, err, "missing key file accepted")
}

func TestFormatBalance(t *testing.T) {
	assert.Equal(t, "1,000,000,000", formatBalance(1000000000), "wrong format")
	assert.Equal(t, "0", formatBalance(0), "wrong zero format")
}

func TestLoadProtectedIdentity(t *testing.T) {
	dir, err := ioutil.TempDir("", "soldb-cli")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	k, err := keypair.New()
	assert.Nil(t, err, "wrong keypair.New")
	keyFile := filepath.Join(dir, defaultKeyFile)
	assert.Nil(t, k.SaveWithPassword(keyFile, "pass phrase"), "wrong SaveWithPassword")

	m := &metadata{keyFile: keyFile}
	_, err = loadIdentity(m)
	assert.Equal(t, keypair.ErrPasswordRequired, err, "protected key loaded without password")

	m.password = "pass phrase"
	loaded, err := loadIdentity(m)
	assert.Nil(t, err, "wrong loadIdentity")
	assert.Equal(t, k.Address(), loaded.Address(), "wrong identity address")

	a, err := addressOrIdentity(m, "")
	assert.Nil(t, err, "wrong identity address")
	assert.Equal(t, k.Address(), a, "wrong identity address")
}
