// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/asset"
)

// Verify - signature of the owner
func (tx *CreateWallet) Verify() bool {
	return verifySender(tx)
}

// Verify - distinct accounts, valid assets and signature of the sender
func (tx *Transfer) Verify() bool {
	return distinct(tx.From, tx.To) &&
		nil == asset.Validate(tx.Assets) &&
		verifySender(tx)
}

// Verify - valid assets and signature of the owner
func (tx *AddAssets) Verify() bool {
	return nil == asset.Validate(tx.Assets) && verifySender(tx)
}

// Verify - valid assets and signature of the owner
func (tx *DelAssets) Verify() bool {
	return nil == asset.Validate(tx.Assets) && verifySender(tx)
}

// Verify - distinct accounts, valid assets, seller's countersignature
// and buyer's signature
func (tx *TradeAssets) Verify() bool {
	return distinct(tx.Buyer, tx.Seller) &&
		nil == asset.Validate(tx.Assets) &&
		verifyCounterparty(tx) &&
		verifySender(tx)
}

// Verify - distinct accounts, valid assets, recipient's
// countersignature and sender's signature
func (tx *Exchange) Verify() bool {
	return distinct(tx.Sender, tx.Recipient) &&
		nil == asset.Validate(tx.SenderAssets) &&
		nil == asset.Validate(tx.RecipientAssets) &&
		verifyCounterparty(tx) &&
		verifySender(tx)
}

// Verify - signature of the owner
func (tx *Mint) Verify() bool {
	return verifySender(tx)
}

func distinct(a *account.Account, b *account.Account) bool {
	return nil != a && nil != b && !a.SameKey(b)
}

func verifySender(tx Transaction) bool {
	message, err := Message(tx)
	if nil != err {
		return false
	}
	return nil == checkSignature(tx.GetSender(), message, tx.GetSignature())
}

func verifyCounterparty(tx Countersigned) bool {
	offer, err := Offer(tx)
	if nil != err {
		return false
	}
	return nil == checkSignature(tx.GetCounterparty(), offer, tx.GetCountersignature())
}
