// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PepeCosmico/soldb/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "log"), "relative path not joined")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log"), "absolute path changed")
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "./x/../log"), "path not cleaned")
}

func TestEnsureDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	assert.Nil(t, err, "wrong TempDir")
	defer os.RemoveAll(dir)

	path, err := util.EnsureDirectory(dir, filepath.Join("a", "b"))
	assert.Nil(t, err, "wrong EnsureDirectory")
	assert.Equal(t, filepath.Join(dir, "a", "b"), path, "wrong path")

	info, err := os.Stat(path)
	assert.Nil(t, err, "directory not created")
	assert.True(t, info.IsDir(), "not a directory")

	assert.True(t, util.EnsureFileExists(path), "existing path not found")
	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "missing")), "missing path found")
}
