// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/fault"
	"github.com/bitmark-inc/assetledger/util"
)

// limits for decoding
const (
	maximumOwnerLength      = 64
	maximumIdentifierLength = 1024
	maximumHoldings         = 1 << 20
)

// Packed - wallet as stored in the database
type Packed []byte

// Pack - convert a wallet to its stored form
func (w *Wallet) Pack() Packed {
	owner := w.Owner.Bytes()

	buffer := util.ToVarint64(uint64(len(owner)))
	buffer = append(buffer, owner...)
	buffer = util.AppendVarint64(buffer, w.Balance)

	list := w.Holdings.List()
	buffer = util.AppendVarint64(buffer, uint64(len(list)))
	for _, a := range list {
		buffer = util.AppendVarint64(buffer, uint64(len(a.Id)))
		buffer = append(buffer, a.Id...)
		buffer = util.AppendVarint64(buffer, a.Amount)
	}
	return buffer
}

// Unpack - convert the stored form back to a wallet
func (record Packed) Unpack() (*Wallet, error) {
	n := 0

	ownerLength, count := util.ClippedVarint64(record[n:], 1, maximumOwnerLength)
	if 0 == count {
		return nil, fault.ErrNotWalletPack
	}
	n += count
	if n+ownerLength > len(record) {
		return nil, fault.ErrNotWalletPack
	}
	owner, err := account.AccountFromBytes(record[n : n+ownerLength])
	if nil != err {
		return nil, err
	}
	n += ownerLength

	balance, count := util.FromVarint64(record[n:])
	if 0 == count {
		return nil, fault.ErrNotWalletPack
	}
	n += count

	holdingCount, count := util.FromVarint64(record[n:])
	if 0 == count || holdingCount > maximumHoldings {
		return nil, fault.ErrNotWalletPack
	}
	n += count

	w := New(owner, balance)
	for i := uint64(0); i < holdingCount; i += 1 {
		idLength, count := util.ClippedVarint64(record[n:], 1, maximumIdentifierLength)
		if 0 == count {
			return nil, fault.ErrNotWalletPack
		}
		n += count
		if n+idLength > len(record) {
			return nil, fault.ErrNotWalletPack
		}
		id := string(record[n : n+idLength])
		n += idLength

		amount, count := util.FromVarint64(record[n:])
		if 0 == count {
			return nil, fault.ErrNotWalletPack
		}
		n += count

		if _, ok := w.Holdings[id]; ok {
			return nil, fault.ErrNotWalletPack
		}
		w.Holdings[id] = amount
	}

	if n != len(record) {
		return nil, fault.ErrNotWalletPack
	}
	return w, nil
}
