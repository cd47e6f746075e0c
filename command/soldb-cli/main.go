// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect   string
	tls       bool
	keyFile   string
	password  string
	programID string
	verbose   bool
	e         io.Writer
	w         io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultConnect = "127.0.0.1:2130"
	defaultKeyFile = "soldb-key.json"
)

func main() {

	app := cli.NewApp()
	app.Name = "soldb-cli"
	app.Usage = "key-value tables on a soldbd ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " soldbd `HOST:PORT`",
			EnvVar: "SOLDB_CONNECT",
		},
		cli.BoolFlag{
			Name:   "tls, T",
			Usage:  " connect using TLS",
			EnvVar: "SOLDB_TLS",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  defaultKeyFile,
			Usage:  " identity key `FILE`",
			EnvVar: "SOLDB_KEY",
		},
		cli.StringFlag{
			Name:   "password, P",
			Value:  "",
			Usage:  " identity key file `PASSWORD`",
			EnvVar: "SOLDB_PASSWORD",
		},
		cli.StringFlag{
			Name:  "program, p",
			Value: "",
			Usage: " program `ID` [default: from soldbd]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an identity key file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " recreate the identity from `SEED`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "init-table",
			Usage:     "create a table owned by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "table, t",
					Value: "",
					Usage: "*table `NAME`",
				},
			},
			Action: runInitTable,
		},
		{
			Name:      "insert",
			Usage:     "insert a new record into a table",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "table, t",
					Value: "",
					Usage: "+table `NAME` owned by the identity",
				},
				cli.StringFlag{
					Name:  "table-address, a",
					Value: "",
					Usage: "+table `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "key, K",
					Value: "",
					Usage: "*record `KEY`",
				},
				cli.StringFlag{
					Name:  "value, V",
					Value: "",
					Usage: " record `VALUE` (prefix with 0x for hex)",
				},
			},
			Action: runInsert,
		},
		{
			Name:      "put",
			Usage:     "replace the value of a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "table, t",
					Value: "",
					Usage: "*table `NAME`",
				},
				cli.StringFlag{
					Name:  "key, K",
					Value: "",
					Usage: "*record `KEY`",
				},
				cli.StringFlag{
					Name:  "value, V",
					Value: "",
					Usage: " record `VALUE` (prefix with 0x for hex)",
				},
			},
			Action: runPut,
		},
		{
			Name:      "delete",
			Usage:     "delete a record and recover its balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "table, t",
					Value: "",
					Usage: "*table `NAME`",
				},
				cli.StringFlag{
					Name:  "key, K",
					Value: "",
					Usage: "*record `KEY`",
				},
			},
			Action: runDelete,
		},
		{
			Name:      "get",
			Usage:     "display a cell, table or record",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "+cell `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "table, t",
					Value: "",
					Usage: "+table `NAME`",
				},
				cli.StringFlag{
					Name:  "key, K",
					Value: "",
					Usage: " record `KEY` in the table",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " table owner `ADDRESS` [default: identity]",
				},
			},
			Action: runGet,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " `ADDRESS` [default: identity]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "airdrop",
			Usage:     "credit an address on a test soldbd",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: " `ADDRESS` [default: identity]",
				},
				cli.Uint64Flag{
					Name:  "amount, n",
					Value: 1000000000,
					Usage: " `AMOUNT` to credit",
				},
			},
			Action: runAirdrop,
		},
		{
			Name:      "rent",
			Usage:     "display the rent exempt balance for a data size",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "size, s",
					Value: 0,
					Usage: " data size in `BYTES`",
				},
			},
			Action: runRent,
		},
		{
			Name:      "status",
			Usage:     "display the status of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction id to check status `TXID`",
				},
			},
			Action: runTransactionStatus,
		},
		{
			Name:   "info",
			Usage:  "display soldbd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display soldb-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect:   c.GlobalString("connect"),
			tls:       c.GlobalBool("tls"),
			keyFile:   c.GlobalString("key"),
			password:  c.GlobalString("password"),
			programID: c.GlobalString("program"),
			verbose:   c.GlobalBool("verbose"),
			e:         c.App.ErrWriter,
			w:         c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
