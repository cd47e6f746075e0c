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
	"github.com/PepeCosmico/soldb/ledger"
	"github.com/PepeCosmico/soldb/rent"
)

func writeConfiguration(t *testing.T, text string) string {
	dir, err := ioutil.TempDir("", "soldbd")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "soldbd.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.client_rpc = {
    listen = { "127.0.0.1:2130" },
}
return M
`)
	dir := filepath.Dir(fileName)
	defer os.RemoveAll(dir)

	conf, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(conf.DataDirectory), "wrong data directory")
	assert.Equal(t, filepath.Join(dir, "data", "soldb"), conf.Database.Name, "wrong database name")
	assert.Equal(t, filepath.Join(dir, "program.json"), conf.ProgramKey, "wrong program key")
	assert.Equal(t, uint64(ledger.DefaultFeePerSignature), conf.Ledger.FeePerSignature, "wrong fee")
	assert.Equal(t, rent.Default(), conf.Ledger.Rent, "wrong rent")
	assert.Equal(t, uint64(defaultRPCClients), conf.ClientRPC.MaximumConnections, "wrong rpc clients")
	assert.Equal(t, []string{"127.0.0.1:2130"}, conf.ClientRPC.Listen, "wrong listen")
	assert.False(t, conf.ClientRPC.Airdrop, "airdrop enabled by default")

	_, err = os.Stat(filepath.Join(dir, "data"))
	assert.Nil(t, err, "database directory not created")
}

func TestGetConfigurationOverrides(t *testing.T) {
	fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.pidfile = "soldbd.pid"
M.ledger = {
    fee_per_signature = 10,
    rent = {
        balance_per_byte_year = 1,
        exemption_years = 1,
        storage_overhead = 0,
    },
}
M.client_rpc = {
    maximum_connections = 3,
    airdrop = true,
}
return M
`)
	dir := filepath.Dir(fileName)
	defer os.RemoveAll(dir)

	conf, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong getConfiguration")

	assert.Equal(t, filepath.Join(dir, "soldbd.pid"), conf.PidFile, "wrong pid file")
	assert.Equal(t, uint64(10), conf.Ledger.FeePerSignature, "wrong fee")
	assert.Equal(t, rent.Rent{BalancePerByteYear: 1, ExemptionYears: 1}, conf.Ledger.Rent, "wrong rent")
	assert.Equal(t, uint64(3), conf.ClientRPC.MaximumConnections, "wrong rpc clients")
	assert.True(t, conf.ClientRPC.Airdrop, "airdrop not enabled")
}

func TestGetConfigurationRejects(t *testing.T) {
	items := []string{
		`return { data_directory = "" }`,
		`return { data_directory = "/no/such/directory/exists" }`,
		`return { data_directory = ".", database = { name = "a/b" } }`,
		`return { data_directory = ".", ledger = { rent = { exemption_years = 0 } } }`,
	}

	for i, text := range items {
		fileName := writeConfiguration(t, text)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, "%d: configuration accepted: %s", i, text)
		os.RemoveAll(filepath.Dir(fileName))
	}
}

func TestProgramID(t *testing.T) {
	dir, err := ioutil.TempDir("", "soldbd")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	k, err := keypair.New()
	assert.Nil(t, err, "wrong keypair.New")
	keyFile := filepath.Join(dir, programKeyFilename)
	assert.Nil(t, k.Save(keyFile), "wrong Save")

	conf := &Configuration{ProgramKey: keyFile}
	id, err := conf.programID()
	assert.Nil(t, err, "wrong programID from key")
	assert.Equal(t, k.Address(), id, "wrong program id from key")

	other := address.Address{0x01, 0x02}
	conf.ProgramID = other.String()
	id, err = conf.programID()
	assert.Nil(t, err, "wrong programID from id")
	assert.Equal(t, other, id, "program_id does not take precedence")

	conf.ProgramID = "0OIl"
	_, err = conf.programID()
	assert.NotNil(t, err, "invalid base58 accepted")
}

func TestFilenameWithDirectory(t *testing.T) {
	assert.Equal(t, "program.json", getFilenameWithDirectory(nil, "program.json"), "wrong default")
	assert.Equal(t, filepath.Join("keys", "program.json"), getFilenameWithDirectory([]string{"keys"}, "program.json"), "wrong directory")
}
