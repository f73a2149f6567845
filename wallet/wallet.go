// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/asset"
	"github.com/bitmark-inc/assetledger/fault"
)

// Wallet - balance and asset holdings of one account
type Wallet struct {
	Owner    *account.Account `json:"owner"`
	Balance  uint64           `json:"balance"`
	Holdings asset.Holdings   `json:"holdings"`
}

// New - an empty wallet for an owner
func New(owner *account.Account, balance uint64) *Wallet {
	return &Wallet{
		Owner:    owner,
		Balance:  balance,
		Holdings: make(asset.Holdings),
	}
}

// Clone - an independent copy
func (w *Wallet) Clone() *Wallet {
	owner := *w.Owner
	return &Wallet{
		Owner:    &owner,
		Balance:  w.Balance,
		Holdings: w.Holdings.Clone(),
	}
}

// CanPay - true if the balance covers amount plus fee
func (w *Wallet) CanPay(amount uint64, fee uint64) bool {
	total := amount + fee
	if total < amount {
		return false
	}
	return w.Balance >= total
}

// Increase - credit the balance
func (w *Wallet) Increase(amount uint64) error {
	if w.Balance+amount < w.Balance {
		return fault.ErrValueOverflow
	}
	w.Balance += amount
	return nil
}

// Decrease - debit the balance
func (w *Wallet) Decrease(amount uint64) error {
	if w.Balance < amount {
		return fault.ErrInsufficientBalance
	}
	w.Balance -= amount
	return nil
}

// HasAssets - true if at least the listed quantities are held
func (w *Wallet) HasAssets(list []asset.Asset) bool {
	return w.Holdings.HasAssets(list)
}

// AddAssets - credit the listed quantities
func (w *Wallet) AddAssets(list []asset.Asset) error {
	if nil == w.Holdings {
		w.Holdings = make(asset.Holdings)
	}
	return w.Holdings.Add(list)
}

// DelAssets - debit the listed quantities
func (w *Wallet) DelAssets(list []asset.Asset) error {
	return w.Holdings.Remove(list)
}

// Assets - sorted list of the holdings
func (w *Wallet) Assets() []asset.Asset {
	return w.Holdings.List()
}
