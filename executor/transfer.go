// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/bitmark-inc/assetledger/merkle"
	"github.com/bitmark-inc/assetledger/transactionrecord"
)

// move value and assets from one wallet to another
//
// the receiving wallet is created when absent; a Success or Fail
// status is always recorded
func (e *Executor) transfer(store Store, txId merkle.Digest, tx *transactionrecord.Transfer) Outcome {
	fee := e.parameters.Fees.Transfer
	status := transactionrecord.StatusFail
	outcome := OutcomeSkipped

	sender, found := store.Wallet(tx.From)
	if found {
		updateAmount := sender.CanPay(tx.Amount, fee)
		updateAssets := 0 == len(tx.Assets) || sender.HasAssets(tx.Assets)

		if updateAmount && updateAssets {
			from := sender.Clone()
			to := store.CreateWallet(tx.To).Clone()

			err := firstError(
				from.Decrease(tx.Amount+fee),
				from.DelAssets(tx.Assets),
				to.Increase(tx.Amount),
				to.AddAssets(tx.Assets),
			)
			if nil == err {
				store.PutWallet(from)
				store.PutWallet(to)
				status = transactionrecord.StatusSuccess
				outcome = OutcomeApplied
			} else {
				e.log.Debugf("transfer: %s  error: %s", txId, err)
			}
		}
	}

	store.SetStatus(txId, status)
	return outcome
}
