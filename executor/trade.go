// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/bitmark-inc/assetledger/merkle"
	"github.com/bitmark-inc/assetledger/transactionrecord"
)

// buyer pays price and fee, seller delivers the assets
//
// both wallets must already exist
func (e *Executor) tradeAssets(store Store, txId merkle.Digest, tx *transactionrecord.TradeAssets) Outcome {
	fee := e.parameters.Fees.TradeAssets
	status := transactionrecord.StatusFail
	outcome := OutcomeSkipped

	buyer, buyerFound := store.Wallet(tx.Buyer)
	seller, sellerFound := store.Wallet(tx.Seller)

	if buyerFound && sellerFound && buyer.CanPay(tx.Price, fee) && seller.HasAssets(tx.Assets) {
		b := buyer.Clone()
		s := seller.Clone()

		err := firstError(
			b.Decrease(tx.Price+fee),
			s.DelAssets(tx.Assets),
			s.Increase(tx.Price),
			b.AddAssets(tx.Assets),
		)
		if nil == err {
			store.PutWallet(b)
			store.PutWallet(s)
			status = transactionrecord.StatusSuccess
			outcome = OutcomeApplied
		} else {
			e.log.Debugf("trade: %s  error: %s", txId, err)
		}
	}

	store.SetStatus(txId, status)
	return outcome
}

// swap value and assets in both directions, sender pays the fee
//
// both wallets must already exist
func (e *Executor) exchange(store Store, txId merkle.Digest, tx *transactionrecord.Exchange) Outcome {
	fee := e.parameters.Fees.Exchange
	status := transactionrecord.StatusFail
	outcome := OutcomeSkipped

	sender, senderFound := store.Wallet(tx.Sender)
	recipient, recipientFound := store.Wallet(tx.Recipient)

	if senderFound && recipientFound &&
		sender.CanPay(tx.SenderValue, fee) && sender.HasAssets(tx.SenderAssets) &&
		recipient.CanPay(tx.RecipientValue, 0) && recipient.HasAssets(tx.RecipientAssets) {

		s := sender.Clone()
		r := recipient.Clone()

		// debits before credits
		err := firstError(
			s.Decrease(tx.SenderValue+fee),
			s.DelAssets(tx.SenderAssets),
			r.Decrease(tx.RecipientValue),
			r.DelAssets(tx.RecipientAssets),
			s.Increase(tx.RecipientValue),
			s.AddAssets(tx.RecipientAssets),
			r.Increase(tx.SenderValue),
			r.AddAssets(tx.SenderAssets),
		)
		if nil == err {
			store.PutWallet(s)
			store.PutWallet(r)
			status = transactionrecord.StatusSuccess
			outcome = OutcomeApplied
		} else {
			e.log.Debugf("exchange: %s  error: %s", txId, err)
		}
	}

	store.SetStatus(txId, status)
	return outcome
}
