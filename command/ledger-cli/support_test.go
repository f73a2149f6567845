// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/asset"
	"github.com/bitmark-inc/assetledger/fault"
	"github.com/bitmark-inc/assetledger/transactionrecord"
)

func TestGetAssets(t *testing.T) {
	assets, err := getAssets([]string{"asset_1:3", "urn:x:9"}, true)
	assert.Nil(t, err, "valid")
	assert.Equal(t, []asset.Asset{asset.New("asset_1", 3), asset.New("urn:x", 9)}, assets, "assets")

	assets, err = getAssets(nil, false)
	assert.Nil(t, err, "optional")
	assert.Equal(t, 0, len(assets), "optional assets")

	_, err = getAssets(nil, true)
	assert.NotNil(t, err, "required")

	_, err = getAssets([]string{"asset_1"}, false)
	assert.NotNil(t, err, "no quantity")

	long := make([]string, transactionrecord.MaximumAssets+1)
	for i := range long {
		long[i] = "a:1"
	}
	_, err = getAssets(long, false)
	assert.Equal(t, fault.ErrAssetListTooLong, err, "too many")
}

func TestGetAccount(t *testing.T) {
	key, err := account.PrivateKeyFromSeed(true, []byte(strings.Repeat("k", 32)))
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}

	testnet := &metadata{testnet: true}
	livenet := &metadata{testnet: false}

	a, err := getAccount("receiving", key.Account().String(), testnet)
	assert.Nil(t, err, "testing account")
	assert.True(t, key.Account().SameKey(a), "same key")

	_, err = getAccount("receiving", key.Account().String(), livenet)
	assert.Equal(t, fault.ErrWrongNetworkForPublicKey, err, "live network")

	_, err = getAccount("receiving", "", testnet)
	assert.NotNil(t, err, "empty")

	_, err = getAccount("receiving", "not-base58-0OIl", testnet)
	assert.NotNil(t, err, "garbage")
}
