// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/fault"
)

var testSeed = decodeHex("0f0e0d0c0b0a09080706050403020100f0e0d0c0b0a090807060504030201000")

func TestPrivateKeyBase58RoundTrip(t *testing.T) {
	for _, testnet := range []bool{false, true} {
		privateKey, err := account.PrivateKeyFromSeed(testnet, testSeed)
		assert.Nil(t, err, "from seed")

		recovered, err := account.PrivateKeyFromBase58(privateKey.String())
		assert.Nil(t, err, "from base58")
		assert.Equal(t, testnet, recovered.IsTesting(), "wrong network")
		assert.True(t, bytes.Equal(privateKey.PrivateKey, recovered.PrivateKey), "wrong private key")
		assert.Equal(t, *privateKey.Account(), *recovered.Account(), "wrong account")
	}
}

func TestPrivateKeySignature(t *testing.T) {
	privateKey, err := account.NewPrivateKey(true)
	assert.Nil(t, err, "new private key")

	message := []byte("transfer 3 to someone")
	signature := privateKey.Sign(message)
	assert.Equal(t, account.SignatureSize, len(signature), "wrong signature size")

	acc := privateKey.Account()
	assert.Nil(t, acc.CheckSignature(message, signature), "valid signature rejected")
	assert.Equal(t, fault.ErrInvalidSignature, acc.CheckSignature([]byte("transfer 4 to someone"), signature), "altered message accepted")
	assert.Equal(t, fault.ErrInvalidSignature, acc.CheckSignature(message, signature[1:]), "short signature accepted")

	other, _ := account.PrivateKeyFromSeed(true, testSeed)
	assert.Equal(t, fault.ErrInvalidSignature, other.Account().CheckSignature(message, signature), "wrong signer accepted")
}

func TestPrivateKeyIsNotAccount(t *testing.T) {
	privateKey, _ := account.PrivateKeyFromSeed(false, testSeed)

	_, err := account.AccountFromBase58(privateKey.String())
	assert.Equal(t, fault.ErrNotAPublicKey, err, "private key accepted as account")

	_, err = account.PrivateKeyFromBase58(privateKey.Account().String())
	assert.Equal(t, fault.ErrNotAPrivateKey, err, "account accepted as private key")

	_, err = account.PrivateKeyFromSeed(false, testSeed[1:])
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short seed accepted")
}
