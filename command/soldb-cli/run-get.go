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

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	cellAddress := c.String("address")
	name := c.String("table")
	if "" == cellAddress && "" == name {
		return ErrRequiredAddressOrTable
	}

	client, err := rpccalls.NewClient(m.connect, m.tls, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	var a address.Address
	if "" != cellAddress {
		a, err = address.FromBase58(cellAddress)
		if nil != err {
			return err
		}
	} else {
		a, err = lookupAddress(c, m, client, name)
		if nil != err {
			return err
		}
	}

	if m.verbose {
		fmt.Fprintf(m.e, "address: %s\n", a)
	}

	reply, err := client.GetCell(a)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

// table address, or record address when a key is given
func lookupAddress(c *cli.Context, m *metadata, client *rpccalls.Client, name string) (address.Address, error) {

	owner, err := addressOrIdentity(m, c.String("owner"))
	if nil != err {
		return address.Address{}, err
	}

	program, err := programID(m, client)
	if nil != err {
		return address.Address{}, err
	}

	table, _, err := instruction.TableAddress(program, name, owner)
	if nil != err {
		return address.Address{}, err
	}
	if "" == c.String("key") {
		return table, nil
	}

	key, err := parseBytes(c.String("key"))
	if nil != err {
		return address.Address{}, err
	}
	record, _, err := instruction.RecordAddress(program, key, table, owner)
	return record, err
}
