// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/asset"
	"github.com/bitmark-inc/assetledger/fault"
	"github.com/bitmark-inc/assetledger/transactionrecord"
)

// read the signer's private key from the global key file
func getKey(c *cli.Context, m *metadata) (*account.PrivateKey, error) {
	fileName := c.GlobalString("key-file")
	if "" == fileName {
		return nil, fmt.Errorf("missing --key-file")
	}
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	key, err := account.PrivateKeyFromBase58(strings.TrimSpace(string(data)))
	if nil != err {
		return nil, err
	}
	if key.IsTesting() != m.testnet {
		return nil, fault.ErrWrongNetworkForPublicKey
	}
	if m.verbose {
		fmt.Fprintf(m.e, "signer: %s\n", key.Account())
	}
	return key, nil
}

// decode an account argument and check its network
func getAccount(name string, s string, m *metadata) (*account.Account, error) {
	if "" == s {
		return nil, fmt.Errorf("missing %s account", name)
	}
	a, err := account.AccountFromBase58(s)
	if nil != err {
		return nil, fmt.Errorf("%s account: %q  error: %s", name, s, err)
	}
	if a.IsTesting() != m.testnet {
		return nil, fault.ErrWrongNetworkForPublicKey
	}
	return a, nil
}

// decode a list of ID:QUANTITY arguments
func getAssets(list []string, required bool) ([]asset.Asset, error) {
	if required && 0 == len(list) {
		return nil, fmt.Errorf("at least one --asset is required")
	}
	assets := make([]asset.Asset, 0, len(list))
	for _, s := range list {
		a, err := asset.Parse(s)
		if nil != err {
			return nil, fmt.Errorf("asset: %q  error: %s", s, err)
		}
		assets = append(assets, a)
	}
	if len(assets) > transactionrecord.MaximumAssets {
		return nil, fault.ErrAssetListTooLong
	}
	return assets, nil
}

// the seed flag or a random value
func getSeed(c *cli.Context) (uint64, error) {
	if c.IsSet("seed") {
		return c.Uint64("seed"), nil
	}
	buffer := make([]byte, 8)
	_, err := rand.Read(buffer)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buffer), nil
}

// read a JSON record from the file argument
func getRecord(c *cli.Context, m *metadata) (transactionrecord.Transaction, error) {
	fileName := c.Args().First()
	if "" == fileName {
		return nil, fmt.Errorf("missing FILE argument")
	}
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	return transactionrecord.FromJSON(data, m.testnet)
}

// print the JSON form of a record and optionally its packed form
//
// packed output needs every signature present
func output(c *cli.Context, m *metadata, tx transactionrecord.Transaction) error {
	envelope, err := transactionrecord.MakeEnvelope(tx)
	if nil != err {
		return err
	}

	fileName := c.String("output")
	showHex := c.Bool("hex")

	if "" != fileName || showHex {
		packed, err := transactionrecord.Pack(tx)
		if nil != err {
			return fmt.Errorf("record is not completely signed: %s", err)
		}
		if showHex {
			fmt.Fprintf(m.w, "%s\n", hex.EncodeToString(packed))
		}
		if "" != fileName {
			err = ioutil.WriteFile(fileName, packed, 0600)
			if nil != err {
				return err
			}
			if m.verbose {
				fmt.Fprintf(m.e, "wrote: %d bytes to: %q\n", len(packed), fileName)
			}
		}
		if m.verbose {
			fmt.Fprintf(m.e, "txId: %s\n", packed.MakeLink())
		}
	}

	return printJson(m.w, envelope)
}
