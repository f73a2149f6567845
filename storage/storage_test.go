// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetledger/fault"
	"github.com/bitmark-inc/assetledger/fixtures"
	"github.com/bitmark-inc/assetledger/storage"
)

var (
	testKey   = []byte("key-two")
	testData  = []byte("data-two")
	otherData = []byte("data-two(NEW)")
)

func TestViewSeesOwnWrites(t *testing.T) {
	setup(t)
	defer teardown()

	trx := begin(t)
	trx.Put(storage.Pool.Wallets, testKey, testData)

	assert.Equal(t, testData, trx.Get(storage.Pool.Wallets, testKey), "write not visible in view")
	assert.True(t, trx.Has(storage.Pool.Wallets, testKey), "write not visible in view")
	assert.Nil(t, trx.Get(storage.Pool.TxStatus, testKey), "write visible in other pool")

	err := trx.Commit()
	assert.Nil(t, err, "commit")
	assert.False(t, trx.InUse(), "still in use after commit")

	assert.Equal(t, testData, storage.Pool.Wallets.Get(testKey), "committed value")
}

func TestAbortDiscards(t *testing.T) {
	setup(t)
	defer teardown()

	trx := begin(t)
	trx.Put(storage.Pool.Wallets, testKey, testData)
	trx.Abort()
	assert.False(t, trx.InUse(), "still in use after abort")

	assert.Nil(t, storage.Pool.Wallets.Get(testKey), "aborted value visible")
	assert.False(t, storage.Pool.Wallets.Has(testKey), "aborted key exists")

	// a committed value survives a later aborted overwrite
	trx = begin(t)
	trx.Put(storage.Pool.Wallets, testKey, testData)
	assert.Nil(t, trx.Commit(), "commit")

	trx = begin(t)
	trx.Put(storage.Pool.Wallets, testKey, otherData)
	assert.Equal(t, otherData, trx.Get(storage.Pool.Wallets, testKey), "overwrite not visible in view")
	trx.Abort()

	assert.Equal(t, testData, storage.Pool.Wallets.Get(testKey), "aborted overwrite visible")
}

func TestDeleteInView(t *testing.T) {
	setup(t)
	defer teardown()

	trx := begin(t)
	trx.Put(storage.Pool.Transactions, testKey, testData)
	assert.Nil(t, trx.Commit(), "commit")

	trx = begin(t)
	trx.Delete(storage.Pool.Transactions, testKey)
	assert.Nil(t, trx.Get(storage.Pool.Transactions, testKey), "deleted value visible in view")
	assert.False(t, trx.Has(storage.Pool.Transactions, testKey), "deleted key exists in view")
	assert.Equal(t, testData, storage.Pool.Transactions.Get(testKey), "delete visible before commit")
	assert.Nil(t, trx.Commit(), "commit")

	assert.Nil(t, storage.Pool.Transactions.Get(testKey), "deleted value still present")
}

func TestSingleView(t *testing.T) {
	setup(t)
	defer teardown()

	trx := begin(t)

	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.ErrTransactionAlreadyInUse, err, "second view allowed")

	assert.Nil(t, trx.Commit(), "commit")
	assert.Equal(t, fault.ErrTransactionIsNotInUse, trx.Commit(), "commit twice")

	trx = begin(t)
	trx.Abort()
}

func TestPutN(t *testing.T) {
	setup(t)
	defer teardown()

	trx := begin(t)
	trx.PutN(storage.Pool.TxStatus, testKey, 0x0102030405060708)
	n, found := trx.GetN(storage.Pool.TxStatus, testKey)
	assert.True(t, found, "not found in view")
	assert.Equal(t, uint64(0x0102030405060708), n, "value in view")
	assert.Nil(t, trx.Commit(), "commit")

	n, found = storage.Pool.TxStatus.GetN(testKey)
	assert.True(t, found, "not found")
	assert.Equal(t, uint64(0x0102030405060708), n, "value")

	_, found = storage.Pool.TxStatus.GetN([]byte("/nonexistent"))
	assert.False(t, found, "nonexistent key found")
}

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown()

	trx := begin(t)
	for i := 0; i < 5; i += 1 {
		trx.Put(storage.Pool.Wallets, []byte(fmt.Sprintf("key-%d", i)), []byte(fmt.Sprintf("data-%d", i)))
	}
	trx.Put(storage.Pool.TxStatus, []byte("key-9"), []byte("other pool"))
	assert.Nil(t, trx.Commit(), "commit")

	cursor := storage.Pool.Wallets.NewFetchCursor()

	expected := [][]int{{0, 1}, {2, 3}, {4}, {}}
	for page, indices := range expected {
		elements, err := cursor.Fetch(2)
		assert.Nil(t, err, "page: %d fetch", page)
		if !assert.Equal(t, len(indices), len(elements), "page: %d length", page) {
			continue
		}
		for j, i := range indices {
			assert.Equal(t, fmt.Sprintf("key-%d", i), string(elements[j].Key), "page: %d key", page)
			assert.Equal(t, fmt.Sprintf("data-%d", i), string(elements[j].Value), "page: %d value", page)
		}
	}

	_, err := cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

	count := 0
	err = storage.Pool.Wallets.NewFetchCursor().Seek([]byte("key-3")).Map(func(key []byte, value []byte) error {
		count += 1
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, 2, count, "map from key-3")
}

func TestReopen(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(fixtures.DatabaseName(databaseFileName), storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "initialise twice")

	trx := begin(t)
	trx.Put(storage.Pool.Wallets, testKey, testData)
	assert.Nil(t, trx.Commit(), "commit")

	storage.Finalise()

	err = storage.Initialise(fixtures.DatabaseName(databaseFileName), storage.ReadOnly)
	assert.Nil(t, err, "reopen read only")
	assert.Equal(t, testData, storage.Pool.Wallets.Get(testKey), "value after reopen")
}
