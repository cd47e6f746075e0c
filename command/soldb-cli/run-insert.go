// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/command/soldb-cli/rpccalls"
	"github.com/PepeCosmico/soldb/instruction"
)

func runInsert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("table")
	tableAddress := c.String("table-address")
	if "" == name && "" == tableAddress {
		return ErrRequiredTable
	}
	if "" != name && "" != tableAddress {
		return ErrTableAndAddress
	}

	key, err := checkKey(c.String("key"))
	if nil != err {
		return err
	}
	payload, err := parseBytes(c.String("value"))
	if nil != err {
		return err
	}

	k, err := loadIdentity(m)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.tls, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	program, err := programID(m, client)
	if nil != err {
		return err
	}

	var table address.Address
	if "" != name {
		table, _, err = instruction.TableAddress(program, name, k.Address())
	} else {
		table, err = address.FromBase58(tableAddress)
	}
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "table: %s  key: %x  payload: %d bytes\n", table, key, len(payload))
	}

	i, err := instruction.NewInsert(program, k.Address(), table, key, payload)
	if nil != err {
		return err
	}

	return submit(m, client, k, i)
}
