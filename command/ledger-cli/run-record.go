// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetledger/transactionrecord"
)

func runCreateWallet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := getKey(c, m)
	if nil != err {
		return err
	}
	seed, err := getSeed(c)
	if nil != err {
		return err
	}

	tx := &transactionrecord.CreateWallet{
		Owner: key.Account(),
		Seed:  seed,
	}
	_, err = transactionrecord.Sign(tx, key)
	if nil != err {
		return err
	}
	return output(c, m, tx)
}

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := getKey(c, m)
	if nil != err {
		return err
	}
	seed, err := getSeed(c)
	if nil != err {
		return err
	}

	tx := &transactionrecord.Mint{
		Owner: key.Account(),
		Seed:  seed,
	}
	_, err = transactionrecord.Sign(tx, key)
	if nil != err {
		return err
	}
	return output(c, m, tx)
}

func runAddAssets(c *cli.Context) error {
	return ownerAssets(c, transactionrecord.AddAssetsTag)
}

func runDelAssets(c *cli.Context) error {
	return ownerAssets(c, transactionrecord.DelAssetsTag)
}

func ownerAssets(c *cli.Context, tag transactionrecord.TagType) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := getKey(c, m)
	if nil != err {
		return err
	}
	assets, err := getAssets(c.StringSlice("asset"), true)
	if nil != err {
		return err
	}
	seed, err := getSeed(c)
	if nil != err {
		return err
	}

	var tx transactionrecord.Transaction
	if transactionrecord.AddAssetsTag == tag {
		tx = &transactionrecord.AddAssets{
			Owner:  key.Account(),
			Assets: assets,
			Seed:   seed,
		}
	} else {
		tx = &transactionrecord.DelAssets{
			Owner:  key.Account(),
			Assets: assets,
			Seed:   seed,
		}
	}
	_, err = transactionrecord.Sign(tx, key)
	if nil != err {
		return err
	}
	return output(c, m, tx)
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := getKey(c, m)
	if nil != err {
		return err
	}
	to, err := getAccount("receiving", c.String("to"), m)
	if nil != err {
		return err
	}
	assets, err := getAssets(c.StringSlice("asset"), false)
	if nil != err {
		return err
	}
	seed, err := getSeed(c)
	if nil != err {
		return err
	}

	tx := &transactionrecord.Transfer{
		From:   key.Account(),
		To:     to,
		Amount: c.Uint64("amount"),
		Assets: assets,
		Seed:   seed,
	}
	_, err = transactionrecord.Sign(tx, key)
	if nil != err {
		return err
	}
	return output(c, m, tx)
}
