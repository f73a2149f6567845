// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/bitmark-inc/assetledger/transactionrecord"
	"github.com/bitmark-inc/assetledger/wallet"
)

// open a new wallet with the initial balance less the fee
//
// an existing wallet is left unchanged
func (e *Executor) createWallet(store Store, tx *transactionrecord.CreateWallet) Outcome {
	fee := e.parameters.Fees.CreateWallet

	if _, found := store.Wallet(tx.Owner); found {
		return OutcomeSkipped
	}
	if e.parameters.InitialBalance < fee {
		return OutcomeSkipped
	}

	store.PutWallet(wallet.New(tx.Owner, e.parameters.InitialBalance-fee))
	return OutcomeApplied
}

// credit the issuance less the fee to an existing wallet
func (e *Executor) mint(store Store, tx *transactionrecord.Mint) Outcome {
	fee := e.parameters.Fees.Mint

	w, found := store.Wallet(tx.Owner)
	if !found || e.parameters.Issuance < fee {
		return OutcomeSkipped
	}

	w = w.Clone()
	if err := w.Increase(e.parameters.Issuance - fee); nil != err {
		e.log.Debugf("mint: %s  error: %s", tx.Owner, err)
		return OutcomeSkipped
	}

	store.PutWallet(w)
	return OutcomeApplied
}

// pay the fee and add assets to the owner's holdings
func (e *Executor) addAssets(store Store, tx *transactionrecord.AddAssets) Outcome {
	fee := e.parameters.Fees.AddAssets

	w, found := store.Wallet(tx.Owner)
	if !found || !w.CanPay(0, fee) {
		return OutcomeSkipped
	}

	w = w.Clone()
	err := firstError(
		w.Decrease(fee),
		w.AddAssets(tx.Assets),
	)
	if nil != err {
		e.log.Debugf("add assets: %s  error: %s", tx.Owner, err)
		return OutcomeSkipped
	}

	store.PutWallet(w)
	return OutcomeApplied
}

// pay the fee and remove assets from the owner's holdings
//
// removing more than is held applies nothing
func (e *Executor) delAssets(store Store, tx *transactionrecord.DelAssets) Outcome {
	fee := e.parameters.Fees.DelAssets

	w, found := store.Wallet(tx.Owner)
	if !found || !w.CanPay(0, fee) {
		return OutcomeSkipped
	}

	w = w.Clone()
	err := firstError(
		w.Decrease(fee),
		w.DelAssets(tx.Assets),
	)
	if nil != err {
		e.log.Debugf("del assets: %s  error: %s", tx.Owner, err)
		return OutcomeSkipped
	}

	store.PutWallet(w)
	return OutcomeApplied
}
