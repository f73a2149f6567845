// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for package tests
package fixtures

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
)

// directory holding the log and any database created by a test
var testingDirName string

// SetupTestLogger - start a critical level logger in a scratch directory
//
// returns the scratch directory
func SetupTestLogger() string {
	removeFiles()

	dir, err := ioutil.TempDir("", "assetledger-testing")
	if nil != err {
		panic(err)
	}
	testingDirName = dir

	logging := logger.Configuration{
		Directory: testingDirName,
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

	return testingDirName
}

// TeardownTestLogger - remove the scratch directory
//
// the logger stays initialised for the rest of the test binary
func TeardownTestLogger() {
	removeFiles()
}

// DatabaseName - a database path inside the scratch directory
func DatabaseName(name string) string {
	return filepath.Join(testingDirName, name)
}

func removeFiles() {
	if "" != testingDirName {
		os.RemoveAll(testingDirName)
		testingDirName = ""
	}
}
