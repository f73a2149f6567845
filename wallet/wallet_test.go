// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/asset"
	"github.com/bitmark-inc/assetledger/fault"
	"github.com/bitmark-inc/assetledger/wallet"
)

func makeOwner(t *testing.T, b byte) *account.Account {
	key := make([]byte, account.PublicKeySize)
	for i := range key {
		key[i] = b
	}
	owner, err := account.AccountFromPublicKey(true, key)
	if nil != err {
		t.Fatalf("create owner error: %s", err)
	}
	return owner
}

func TestBalance(t *testing.T) {
	w := wallet.New(makeOwner(t, 1), 100)

	assert.True(t, w.CanPay(99, 1), "exact")
	assert.False(t, w.CanPay(100, 1), "one short")
	assert.False(t, w.CanPay(math.MaxUint64, 1), "overflowing total")

	assert.Equal(t, fault.ErrInsufficientBalance, w.Decrease(101), "over debit")
	assert.Equal(t, uint64(100), w.Balance, "over debit modified balance")
	assert.Nil(t, w.Decrease(4), "debit")
	assert.Equal(t, uint64(96), w.Balance, "debit")

	assert.Equal(t, fault.ErrValueOverflow, w.Increase(math.MaxUint64), "overflow")
	assert.Equal(t, uint64(96), w.Balance, "overflow modified balance")
	assert.Nil(t, w.Increase(3), "credit")
	assert.Equal(t, uint64(99), w.Balance, "credit")
}

func TestClone(t *testing.T) {
	w := wallet.New(makeOwner(t, 2), 10)
	_ = w.AddAssets([]asset.Asset{asset.New("a", 1)})

	c := w.Clone()
	_ = c.Increase(5)
	_ = c.AddAssets([]asset.Asset{asset.New("a", 1)})

	assert.Equal(t, uint64(10), w.Balance, "original balance changed")
	assert.Equal(t, uint64(1), w.Holdings.Get("a"), "original holdings changed")
	assert.True(t, c.Owner.SameKey(w.Owner), "owner differs")
}

func TestPackUnpack(t *testing.T) {
	w := wallet.New(makeOwner(t, 3), 123456789)
	err := w.AddAssets([]asset.Asset{
		asset.New("asset_2", 5),
		asset.New("asset_1", math.MaxUint64),
	})
	assert.Nil(t, err, "add assets")

	packed := w.Pack()
	unpacked, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, w, unpacked, "round trip")

	empty := wallet.New(makeOwner(t, 4), 0)
	unpacked, err = empty.Pack().Unpack()
	assert.Nil(t, err, "unpack empty")
	assert.Equal(t, empty, unpacked, "round trip empty")
}

func TestUnpackTruncated(t *testing.T) {
	w := wallet.New(makeOwner(t, 5), 300)
	_ = w.AddAssets([]asset.Asset{asset.New("asset_1", 400)})
	packed := w.Pack()

	for i := 0; i < len(packed); i += 1 {
		_, err := packed[:i].Unpack()
		assert.NotNil(t, err, "truncated at: %d", i)
	}

	extended := append(wallet.Packed{}, packed...)
	extended = append(extended, 0)
	_, err := extended.Unpack()
	assert.Equal(t, fault.ErrNotWalletPack, err, "trailing data")
}
