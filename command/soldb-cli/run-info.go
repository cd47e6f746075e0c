// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/PepeCosmico/soldb/command/soldb-cli/rpccalls"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.tls, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	printJson(m.w, info)
	return nil
}
