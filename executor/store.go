// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/merkle"
	"github.com/bitmark-inc/assetledger/transactionrecord"
	"github.com/bitmark-inc/assetledger/wallet"
)

// Store - the wallet and status access needed to apply a transaction
//
// reads must see the writes already made through the same Store
type Store interface {
	Wallet(*account.Account) (*wallet.Wallet, bool)
	CreateWallet(*account.Account) *wallet.Wallet
	PutWallet(*wallet.Wallet)
	SetStatus(merkle.Digest, transactionrecord.Status)
}
