// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/dustin/go-humanize"

	"github.com/PepeCosmico/soldb/address"
	"github.com/PepeCosmico/soldb/cell"
	"github.com/PepeCosmico/soldb/keypair"
	"github.com/PepeCosmico/soldb/rpc/certificate"
	"github.com/PepeCosmico/soldb/storage"
	"github.com/PepeCosmico/soldb/util"
)

const (
	programKeyFilename        = "program.json"
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
	defaultCellCount          = 100
)

// setup command handler
//
// commands that run to create key files these commands cannot access
// any internal database or states or the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-program-key", "key":
		keyFilename := getFilenameWithDirectory(arguments, programKeyFilename)

		if util.EnsureFileExists(keyFilename) {
			fmt.Printf("generate program key: %q error: file already exists\n", keyFilename)
			exitwithstatus.Exit(1)
		}

		k, err := keypair.New()
		if nil != err {
			fmt.Printf("generate program key: %q error: %s\n", keyFilename, err)
			exitwithstatus.Exit(1)
		}
		if err := k.Save(keyFilename); nil != err {
			fmt.Printf("generate program key: %q error: %s\n", keyFilename, err)
			exitwithstatus.Exit(1)
		}

		fmt.Printf("generated program key: %q\n", keyFilename)
		fmt.Printf("program id: %s\n", k.Address())

	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "cells", "c", "summary", "s":
		return false // defer processing until database is loaded

	case "config-test", "cfg", "program-id", "id":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-program-key [DIR]      (key)    - create the program key in: %q\n", "DIR/"+programKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  program-id                 (id)     - display the program id from the configuration\n")
		fmt.Printf("\n")

		fmt.Printf("  cells [START [COUNT]]      (c)      - list stored cells from a base58 address\n")
		fmt.Printf("\n")

		fmt.Printf("  summary                    (s)      - totals over all stored cells\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	case "program-id", "id":
		programID, err := options.programID()
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		fmt.Printf("%s\n", programID)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage pools are open so these commands can read the ledger
func processDataCommand(log *logger.L, arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "cells", "c":
		cursor := storage.Pool.Cells.NewFetchCursor()
		if len(arguments) > 0 {
			start, err := address.FromBase58(arguments[0])
			if nil != err {
				exitwithstatus.Message("error: start: %q  error: %s", arguments[0], err)
			}
			cursor.Seek(start[:])
		}

		count := defaultCellCount
		if len(arguments) > 1 {
			n, err := strconv.Atoi(arguments[1])
			if nil != err {
				exitwithstatus.Message("error: count: %q  error: %s", arguments[1], err)
			}
			count = n
		}

		elements, err := cursor.Fetch(count)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		log.Infof("listing: %d cells", len(elements))

		for _, e := range elements {
			a, err := address.FromBytes(e.Key)
			if nil != err {
				exitwithstatus.Message("error: key: %x  error: %s", e.Key, err)
			}
			c, err := cell.Unpack(a, e.Value)
			if nil != err {
				exitwithstatus.Message("error: cell: %s  error: %s", a, err)
			}
			fmt.Printf("%s  owner: %s  balance: %s  data: %s\n",
				c.Address, c.Owner, humanize.Comma(int64(c.Balance)), humanize.Bytes(uint64(len(c.Data))))
		}

	case "summary", "s":
		summary, err := summariseCells(storage.Pool.Cells)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		log.Infof("summary: %d cells", summary.Cells)

		fmt.Printf("cells: %s  balance: %s  data: %s\n",
			humanize.Comma(int64(summary.Cells)), humanize.Comma(int64(summary.Balance)), humanize.Bytes(summary.DataBytes))
		for owner, n := range summary.Owners {
			fmt.Printf("owner: %s  cells: %s\n", owner, humanize.Comma(int64(n)))
		}

	default:
		exitwithstatus.Message("error: no such command: %q", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
