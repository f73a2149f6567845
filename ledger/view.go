// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/merkle"
	"github.com/bitmark-inc/assetledger/storage"
	"github.com/bitmark-inc/assetledger/transactionrecord"
	"github.com/bitmark-inc/assetledger/wallet"
	"github.com/bitmark-inc/logger"
)

// View - exclusive read/write access for applying transactions
type View struct {
	trx storage.Transaction
}

// NewView - open the store view
//
// fails if another view is still open
func NewView() (*View, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	return &View{
		trx: trx,
	}, nil
}

// Wallet - fetch a wallet, including writes made through this view
func (v *View) Wallet(owner *account.Account) (*wallet.Wallet, bool) {
	packed := v.trx.Get(storage.Pool.Wallets, owner.PublicKeyBytes())
	if nil == packed {
		return nil, false
	}
	return unpackWallet(packed), true
}

// CreateWallet - fetch a wallet or a new empty one
//
// a new wallet is not stored until PutWallet
func (v *View) CreateWallet(owner *account.Account) *wallet.Wallet {
	w, found := v.Wallet(owner)
	if found {
		return w
	}
	return wallet.New(owner, 0)
}

// PutWallet - store a wallet under its owner's public key
func (v *View) PutWallet(w *wallet.Wallet) {
	v.trx.Put(storage.Pool.Wallets, w.Owner.PublicKeyBytes(), w.Pack())
}

// SetStatus - record the outcome of a transaction
func (v *View) SetStatus(txId merkle.Digest, status transactionrecord.Status) {
	v.trx.Put(storage.Pool.TxStatus, txId[:], []byte{byte(status)})
}

// Status - outcome of a transaction, including writes made through this view
func (v *View) Status(txId merkle.Digest) (transactionrecord.Status, bool) {
	return decodeStatus(v.trx.Get(storage.Pool.TxStatus, txId[:]))
}

// PutTransaction - store a processed transaction under its hash
func (v *View) PutTransaction(txId merkle.Digest, packed transactionrecord.Packed) {
	v.trx.Put(storage.Pool.Transactions, txId[:], packed)
}

// HasTransaction - true if a transaction with this hash was processed
func (v *View) HasTransaction(txId merkle.Digest) bool {
	return v.trx.Has(storage.Pool.Transactions, txId[:])
}

// Commit - make all writes of this view visible and close it
func (v *View) Commit() error {
	return v.trx.Commit()
}

// Abort - discard all writes of this view and close it
func (v *View) Abort() {
	v.trx.Abort()
}

// stored records are only written by this package, so a bad one
// means the database is corrupt
func unpackWallet(packed []byte) *wallet.Wallet {
	w, err := wallet.Packed(packed).Unpack()
	logger.PanicIfError("ledger: unpack wallet", err)
	return w
}

func decodeStatus(packed []byte) (transactionrecord.Status, bool) {
	if 1 != len(packed) {
		return transactionrecord.StatusNone, false
	}
	status, err := transactionrecord.StatusFromByte(packed[0])
	if nil != err {
		logger.Panicf("ledger: status: %x error: %s", packed, err)
	}
	return status, true
}
