// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/PepeCosmico/soldb/command/soldb-cli/rpccalls"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := addressOrIdentity(m, c.String("address"))
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.tls, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetCell(a)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%s: %s\n", reply.Address, formatBalance(reply.Balance))
	return nil
}
