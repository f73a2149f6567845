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

	"github.com/bitmark-inc/assetledger/fault"
	"github.com/bitmark-inc/assetledger/transactionrecord"
)

// trade and exchange are built unsigned by the sender, countersigned
// by the other party and finally signed by the sender

func runTrade(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := getKey(c, m)
	if nil != err {
		return err
	}
	seller, err := getAccount("seller", c.String("seller"), m)
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

	tx := &transactionrecord.TradeAssets{
		Buyer:  key.Account(),
		Seller: seller,
		Assets: assets,
		Price:  c.Uint64("price"),
		Seed:   seed,
	}
	return printJsonOffer(m, tx)
}

func runExchange(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := getKey(c, m)
	if nil != err {
		return err
	}
	recipient, err := getAccount("recipient", c.String("recipient"), m)
	if nil != err {
		return err
	}
	give, err := getAssets(c.StringSlice("asset"), false)
	if nil != err {
		return err
	}
	want, err := getAssets(c.StringSlice("want-asset"), false)
	if nil != err {
		return err
	}
	seed, err := getSeed(c)
	if nil != err {
		return err
	}

	tx := &transactionrecord.Exchange{
		Sender:          key.Account(),
		Recipient:       recipient,
		SenderAssets:    give,
		SenderValue:     c.Uint64("value"),
		RecipientAssets: want,
		RecipientValue:  c.Uint64("want-value"),
		Seed:            seed,
	}
	return printJsonOffer(m, tx)
}

// an unsigned offer is only printed as JSON
func printJsonOffer(m *metadata, tx transactionrecord.Transaction) error {
	envelope, err := transactionrecord.MakeEnvelope(tx)
	if nil != err {
		return err
	}
	return printJson(m.w, envelope)
}

func runCountersign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := getKey(c, m)
	if nil != err {
		return err
	}
	tx, err := getRecord(c, m)
	if nil != err {
		return err
	}

	offer, ok := tx.(transactionrecord.Countersigned)
	if !ok {
		return fmt.Errorf("%s records are not countersigned", tx.Type())
	}
	err = transactionrecord.Countersign(offer, key)
	if nil != err {
		return err
	}

	// the sender has not signed yet so only JSON is possible
	return printJsonOffer(m, tx)
}

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := getKey(c, m)
	if nil != err {
		return err
	}
	tx, err := getRecord(c, m)
	if nil != err {
		return err
	}

	_, err = transactionrecord.Sign(tx, key)
	if nil != err {
		return err
	}
	if !tx.Verify() {
		return fault.ErrInvalidSignature
	}
	return output(c, m, tx)
}

type decodeReply struct {
	TxId   string                      `json:"txId"`
	Record *transactionrecord.Envelope `json:"record"`
	Length int                         `json:"length"`
	Type   transactionrecord.TagType   `json:"type"`
	Valid  bool                        `json:"valid"`
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var packed transactionrecord.Packed

	if s := c.String("hex"); "" != s {
		b, err := hex.DecodeString(s)
		if nil != err {
			return err
		}
		packed = b
	} else if fileName := c.String("file"); "" != fileName {
		b, err := ioutil.ReadFile(fileName)
		if nil != err {
			return err
		}
		packed = b
	} else {
		return fmt.Errorf("one of --hex or --file is required")
	}

	tx, n, err := packed.Unpack(m.testnet)
	if nil != err {
		return err
	}
	envelope, err := transactionrecord.MakeEnvelope(tx)
	if nil != err {
		return err
	}

	return printJson(m.w, decodeReply{
		TxId:   packed[:n].MakeLink().String(),
		Record: envelope,
		Length: n,
		Type:   tx.Type(),
		Valid:  tx.Verify(),
	})
}
