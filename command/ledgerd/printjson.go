// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
)

// print an indented JSON structure to stdout
func printJson(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: printjson marshall error: %s", err)
	}

	if "" == title {
		fmt.Printf("%s\n", b)
	} else {
		fmt.Printf("%s:\n%s\n", title, b)
	}
}

// output a JSON structure to a file
func printJsonToFile(filename string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: printjson marshall error: %s", err)
	}

	fd, err := os.Create(filename)
	if nil != err {
		exitwithstatus.Message("error: creating: %q error: %s", filename, err)
	}
	defer fd.Close()

	fmt.Fprintf(fd, "%s\n", b)
}
