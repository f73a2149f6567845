// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/fault"
	"github.com/bitmark-inc/assetledger/util"
)

type generateReply struct {
	Account    *account.Account    `json:"account"`
	PrivateKey *account.PrivateKey `json:"private_key"`
	Testnet    bool                `json:"testnet"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var key *account.PrivateKey
	var err error

	if seed := c.String("seed"); "" != seed {
		b, err := hex.DecodeString(seed)
		if nil != err {
			return err
		}
		key, err = account.PrivateKeyFromSeed(m.testnet, b)
		if nil != err {
			return err
		}
	} else {
		key, err = account.NewPrivateKey(m.testnet)
		if nil != err {
			return err
		}
	}

	if fileName := c.String("output"); "" != fileName {
		if util.EnsureFileExists(fileName) {
			return fault.ErrKeyFileAlreadyExists
		}
		err = ioutil.WriteFile(fileName, []byte(key.String()+"\n"), 0600)
		if nil != err {
			return err
		}
		if m.verbose {
			fmt.Fprintf(m.e, "wrote private key to: %q\n", fileName)
		}
	}

	return printJson(m.w, generateReply{
		Account:    key.Account(),
		PrivateKey: key,
		Testnet:    key.IsTesting(),
	})
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := getKey(c, m)
	if nil != err {
		return err
	}

	fmt.Fprintf(m.w, "%s\n", key.Account())
	return nil
}
