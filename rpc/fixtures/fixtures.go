// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc tests
package fixtures

import (
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	dir = "testing"

	// LogCategory - logger channel used by tests
	LogCategory = "testing"
)

// SetupTestLogger - critical level file logger in a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	os.RemoveAll(dir)
}

// Certificate - a short lived self-signed certificate and key in PEM form
func Certificate() (string, string) {
	cert, key, err := certgen.NewTLSCertPair("soldb testing", time.Now().Add(time.Hour), true, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	return string(cert), string(key)
}
