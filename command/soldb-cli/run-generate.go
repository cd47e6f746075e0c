// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/PepeCosmico/soldb/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var k *keypair.KeyPair
	var err error
	if seed := c.String("seed"); "" != seed {
		k, err = keypair.FromSeed(seed)
	} else {
		k, err = keypair.New()
	}
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "key file: %q\n", m.keyFile)
	}

	if "" != m.password {
		err = k.SaveWithPassword(m.keyFile, m.password)
	} else {
		err = k.Save(m.keyFile)
	}
	if nil != err {
		return err
	}

	printJson(m.w, k.Raw())
	return nil
}
