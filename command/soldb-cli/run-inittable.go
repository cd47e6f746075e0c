// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/PepeCosmico/soldb/command/soldb-cli/rpccalls"
	"github.com/PepeCosmico/soldb/instruction"
)

func runInitTable(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkTable(c.String("table"))
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

	i, err := instruction.NewInitTable(program, k.Address(), name)
	if nil != err {
		return err
	}

	if m.verbose {
		table, _, _ := instruction.TableAddress(program, name, k.Address())
		fmt.Fprintf(m.e, "table: %q  address: %s\n", name, table)
	}

	return submit(m, client, k, i)
}
