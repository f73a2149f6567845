// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/fault"
	"github.com/bitmark-inc/assetledger/merkle"
	"github.com/bitmark-inc/assetledger/storage"
	"github.com/bitmark-inc/assetledger/transactionrecord"
	"github.com/bitmark-inc/assetledger/wallet"
)

// GetWallet - committed state of a wallet
func GetWallet(owner *account.Account) (*wallet.Wallet, error) {
	packed := storage.Pool.Wallets.Get(owner.PublicKeyBytes())
	if nil == packed {
		return nil, fault.ErrWalletNotFound
	}
	return unpackWallet(packed), nil
}

// GetStatus - committed outcome of a transaction
func GetStatus(txId merkle.Digest) (transactionrecord.Status, error) {
	status, found := decodeStatus(storage.Pool.TxStatus.Get(txId[:]))
	if !found {
		return transactionrecord.StatusNone, fault.ErrStatusNotFound
	}
	return status, nil
}

// GetTransaction - a committed transaction in packed form
func GetTransaction(txId merkle.Digest) (transactionrecord.Packed, error) {
	packed := storage.Pool.Transactions.Get(txId[:])
	if nil == packed {
		return nil, fault.ErrTransactionNotFound
	}
	return packed, nil
}

// ListWallets - up to count committed wallets in public key order
//
// start is the public key to begin from, nil for the first wallet
func ListWallets(start []byte, count int) ([]*wallet.Wallet, error) {
	cursor := storage.Pool.Wallets.NewFetchCursor()
	if nil != start {
		cursor.Seek(start)
	}
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}
	wallets := make([]*wallet.Wallet, 0, len(elements))
	for _, e := range elements {
		wallets = append(wallets, unpackWallet(e.Value))
	}
	return wallets, nil
}
