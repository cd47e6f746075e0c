// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli"

	"github.com/PepeCosmico/soldb/command/soldb-cli/rpccalls"
)

func runRent(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	size := c.Int("size")

	client, err := rpccalls.NewClient(m.connect, m.tls, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.MinimumBalance(size)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "data: %s  minimum balance: %s  fee per signature: %s\n",
		humanize.Bytes(uint64(reply.Size)), formatBalance(reply.Balance), formatBalance(reply.FeePerSignature))
	return nil
}
