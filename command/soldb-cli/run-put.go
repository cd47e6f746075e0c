// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/PepeCosmico/soldb/command/soldb-cli/rpccalls"
	"github.com/PepeCosmico/soldb/instruction"
)

func runPut(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkTable(c.String("table"))
	if nil != err {
		return err
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

	i, err := instruction.NewPut(program, k.Address(), name, key, payload)
	if nil != err {
		return err
	}

	return submit(m, client, k, i)
}
