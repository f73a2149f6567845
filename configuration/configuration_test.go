// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetledger/chain"
	"github.com/bitmark-inc/assetledger/configuration"
	"github.com/bitmark-inc/assetledger/executor"
	"github.com/bitmark-inc/assetledger/fault"
)

const fullConfiguration = `
local M = {}

M.data_directory = "."
M.chain = "Testing"

M.database = {
    directory = "db",
}

M.inbox = {
    directory = "incoming",
}

M.ledger = {
    initial_balance = 250,
    fees = {
        transfer = 5,
        mint = 2,
    },
}

M.logging = {
    size = 4096,
    count = 3,
    levels = {
        DEFAULT = "info",
        executor = "debug",
    },
}

return M
`

func writeFile(t *testing.T, directory string, name string, content string) string {
	fileName := filepath.Join(directory, name)
	err := ioutil.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write file: %q error: %s", fileName, err)
	}
	return fileName
}

func tempDirectory(t *testing.T) string {
	dir, err := ioutil.TempDir("", "configuration-test")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	return dir
}

func TestGetConfiguration(t *testing.T) {
	dir := tempDirectory(t)
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "ledgerd.conf", fullConfiguration)

	c, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err, "get configuration") {
		return
	}

	dir, _ = filepath.Abs(dir)
	assert.Equal(t, dir, c.DataDirectory, "data directory")
	assert.Equal(t, chain.Testing, c.Chain, "chain")
	assert.True(t, c.IsTesting(), "testing")
	assert.Equal(t, filepath.Join(dir, "db"), c.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "db", chain.Testing+".leveldb"), c.Database.Name, "database name")
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, 4096, c.Logging.Size, "log size")
	assert.Equal(t, 3, c.Logging.Count, "log count")
	assert.Equal(t, "debug", c.Logging.Levels["executor"], "executor log level")
	assert.Equal(t, "", c.PidFile, "pid file")
	assert.Equal(t, filepath.Join(dir, "incoming"), c.Inbox.Directory, "inbox directory")
	assert.Equal(t, filepath.Join(dir, "done"), c.Inbox.Done, "inbox done directory")

	defaults := executor.DefaultParameters()
	assert.Equal(t, uint64(250), c.Ledger.InitialBalance, "initial balance")
	assert.Equal(t, defaults.Issuance, c.Ledger.Issuance, "issuance")
	assert.Equal(t, uint64(5), c.Ledger.Fees.Transfer, "transfer fee")
	assert.Equal(t, uint64(2), c.Ledger.Fees.Mint, "mint fee")
	assert.Equal(t, defaults.Fees.Exchange, c.Ledger.Fees.Exchange, "exchange fee")

	info, err := os.Stat(c.Database.Directory)
	assert.Nil(t, err, "database directory created")
	assert.True(t, info.IsDir(), "database directory is a directory")
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir := tempDirectory(t)
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "ledgerd.conf", `return { data_directory = "." }`)

	c, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err, "get configuration") {
		return
	}

	dir, _ = filepath.Abs(dir)
	assert.Equal(t, chain.Ledger, c.Chain, "chain")
	assert.False(t, c.IsTesting(), "testing")
	assert.Equal(t, filepath.Join(dir, "data", chain.Ledger+".leveldb"), c.Database.Name, "database name")
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "ledgerd.log", c.Logging.File, "log file")
	assert.Equal(t, executor.DefaultParameters(), c.Ledger, "ledger parameters")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir := tempDirectory(t)
	defer os.RemoveAll(dir)

	tests := []struct {
		name    string
		content string
	}{
		{"no data directory", `return { chain = "local" }`},
		{"missing data directory", `return { data_directory = "/no/such/directory/exists" }`},
		{"unknown chain", `return { data_directory = ".", chain = "elsewhere" }`},
		{"database name is a path", `return { data_directory = ".", database = { name = "x/y.leveldb" } }`},
		{"log file is a path", `return { data_directory = ".", logging = { file = "a/b.log" } }`},
		{"inbox is done", `return { data_directory = ".", inbox = { directory = "in", done = "in" } }`},
		{"lua syntax", `return {`},
		{"not a table", `return 42`},
	}

	for i, test := range tests {
		fileName := writeFile(t, dir, "test.conf", test.content)
		_, err := configuration.GetConfiguration(fileName)
		assert.NotNil(t, err, "%d: %s", i, test.name)
	}

	_, err := configuration.GetConfiguration(filepath.Join(dir, "absent.conf"))
	assert.NotNil(t, err, "absent file")
}

func TestParseConfigurationFile(t *testing.T) {
	dir := tempDirectory(t)
	defer os.RemoveAll(dir)

	type settings struct {
		Name  string   `gluamapper:"name"`
		Count int      `gluamapper:"count"`
		List  []string `gluamapper:"list"`
	}

	os.Setenv("CONFIGURATION_TEST_NAME", "from-environment")
	defer os.Unsetenv("CONFIGURATION_TEST_NAME")

	fileName := writeFile(t, dir, "settings.conf", `
return {
    name = os.getenv("CONFIGURATION_TEST_NAME"),
    count = 2 + 3,
    list = { "one", "two" },
}
`)

	s := settings{}
	err := configuration.ParseConfigurationFile(fileName, &s)
	assert.Nil(t, err, "parse")
	assert.Equal(t, "from-environment", s.Name, "name")
	assert.Equal(t, 5, s.Count, "count")
	assert.Equal(t, []string{"one", "two"}, s.List, "list")

	err = configuration.ParseConfigurationFile(fileName, s)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	n := 0
	err = configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")

	fileName = writeFile(t, dir, "string.conf", `return "text"`)
	err = configuration.ParseConfigurationFile(fileName, &s)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "not a table")
}
