// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"testing"

	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/asset"
	"github.com/bitmark-inc/assetledger/transactionrecord"
)

// deterministic keys for the tests
var (
	ownerOne = makeKey(1)
	ownerTwo = makeKey(2)
	ownerSix = makeKey(6)
)

func makeKey(n byte) *account.PrivateKey {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = n + byte(i)
	}
	key, err := account.PrivateKeyFromSeed(true, seed)
	if nil != err {
		panic(err)
	}
	return key
}

// one signed record of each type
func makeRecords(t *testing.T) []transactionrecord.Transaction {
	assets := []asset.Asset{
		asset.New("a8d5c97d-9978-4b0b-9947-7a95dcb31d0f", 3),
		asset.New("asset_2", 17),
	}

	trade := &transactionrecord.TradeAssets{
		Buyer:  ownerOne.Account(),
		Seller: ownerTwo.Account(),
		Assets: assets,
		Price:  25,
		Seed:   7,
	}
	exchange := &transactionrecord.Exchange{
		Sender:          ownerOne.Account(),
		Recipient:       ownerTwo.Account(),
		SenderAssets:    assets[:1],
		SenderValue:     9,
		RecipientAssets: assets[1:],
		RecipientValue:  0,
		Seed:            8,
	}
	err := transactionrecord.Countersign(trade, ownerTwo)
	if nil != err {
		t.Fatalf("countersign trade error: %s", err)
	}
	err = transactionrecord.Countersign(exchange, ownerTwo)
	if nil != err {
		t.Fatalf("countersign exchange error: %s", err)
	}

	records := []transactionrecord.Transaction{
		&transactionrecord.CreateWallet{
			Owner: ownerOne.Account(),
			Seed:  1,
		},
		&transactionrecord.Transfer{
			From:   ownerOne.Account(),
			To:     ownerTwo.Account(),
			Amount: 3,
			Assets: assets,
			Seed:   123,
		},
		&transactionrecord.Transfer{
			From:   ownerOne.Account(),
			To:     ownerTwo.Account(),
			Amount: 0,
			Seed:   124,
		},
		&transactionrecord.AddAssets{
			Owner:  ownerOne.Account(),
			Assets: assets,
			Seed:   3,
		},
		&transactionrecord.DelAssets{
			Owner:  ownerOne.Account(),
			Assets: assets[1:],
			Seed:   113,
		},
		trade,
		exchange,
		&transactionrecord.Mint{
			Owner: ownerOne.Account(),
			Seed:  4,
		},
	}

	for i, tx := range records {
		_, err := transactionrecord.Sign(tx, ownerOne)
		if nil != err {
			t.Fatalf("%d: sign error: %s", i, err)
		}
	}
	return records
}
