// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetledger/asset"
	"github.com/bitmark-inc/assetledger/transactionrecord"
)

func TestVerifyValid(t *testing.T) {
	for i, tx := range makeRecords(t) {
		assert.True(t, tx.Verify(), "%d: %s did not verify", i, tx.Type())
		assert.True(t, tx.Verify(), "%d: %s second verify differs", i, tx.Type())
	}
}

func TestVerifySameAccount(t *testing.T) {
	transfer := &transactionrecord.Transfer{
		From:   ownerOne.Account(),
		To:     ownerOne.Account(),
		Amount: 1,
	}
	_, err := transactionrecord.Sign(transfer, ownerOne)
	assert.Nil(t, err, "sign")
	assert.False(t, transfer.Verify(), "transfer to self verified")
	assert.False(t, transfer.Verify(), "second verify differs")

	exchange := &transactionrecord.Exchange{
		Sender:    ownerOne.Account(),
		Recipient: ownerOne.Account(),
	}
	_ = transactionrecord.Countersign(exchange, ownerOne)
	_, err = transactionrecord.Sign(exchange, ownerOne)
	assert.Nil(t, err, "sign")
	assert.False(t, exchange.Verify(), "exchange with self verified")
}

func TestVerifyAltered(t *testing.T) {
	records := makeRecords(t)

	transfer := records[1].(*transactionrecord.Transfer)
	transfer.Amount += 1
	assert.False(t, transfer.Verify(), "altered amount verified")

	addAssets := records[3].(*transactionrecord.AddAssets)
	addAssets.Seed += 1
	assert.False(t, addAssets.Verify(), "altered seed verified")

	exchange := records[6].(*transactionrecord.Exchange)
	exchange.RecipientValue = 1000
	assert.False(t, exchange.Verify(), "altered recipient value verified")

	mint := records[7].(*transactionrecord.Mint)
	mint.Owner = ownerSix.Account()
	assert.False(t, mint.Verify(), "changed owner verified")
}

func TestVerifyEmptyIdentifier(t *testing.T) {
	tx := &transactionrecord.DelAssets{
		Owner:  ownerOne.Account(),
		Assets: []asset.Asset{asset.New("", 1)},
	}
	_, err := transactionrecord.Sign(tx, ownerOne)
	assert.Nil(t, err, "sign")
	assert.False(t, tx.Verify(), "empty identifier verified")
}

func TestVerifyIncomplete(t *testing.T) {
	assert.False(t, (&transactionrecord.Mint{}).Verify(), "missing owner verified")
	assert.False(t, (&transactionrecord.Transfer{From: ownerOne.Account()}).Verify(), "missing receiver verified")
}
