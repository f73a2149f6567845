// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor_test

import (
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/executor"
	"github.com/bitmark-inc/assetledger/fixtures"
	"github.com/bitmark-inc/assetledger/merkle"
	"github.com/bitmark-inc/assetledger/transactionrecord"
	"github.com/bitmark-inc/assetledger/wallet"
)

// deterministic keys for the tests
var (
	alice = makeKey(1)
	bob   = makeKey(2)
	carol = makeKey(3)
)

func makeKey(n byte) *account.PrivateKey {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = n*7 + byte(i)
	}
	key, err := account.PrivateKeyFromSeed(true, seed)
	if nil != err {
		panic(err)
	}
	return key
}

func setup() *executor.Executor {
	fixtures.SetupTestLogger()
	return executor.New(executor.DefaultParameters(), logger.New("executor"))
}

func teardown() {
	fixtures.TeardownTestLogger()
}

// sign with the sender key, countersigning first where needed
func sign(t *testing.T, tx transactionrecord.Transaction, sender *account.PrivateKey, counterparty *account.PrivateKey) transactionrecord.Packed {
	if c, ok := tx.(transactionrecord.Countersigned); ok {
		err := transactionrecord.Countersign(c, counterparty)
		if nil != err {
			t.Fatalf("countersign error: %s", err)
		}
	}
	packed, err := transactionrecord.Sign(tx, sender)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return packed
}

func txId(t *testing.T, tx transactionrecord.Transaction) merkle.Digest {
	id, err := transactionrecord.TxId(tx)
	if nil != err {
		t.Fatalf("tx id error: %s", err)
	}
	return id
}

// memoryStore - map backed store returning copies like the ledger view
type memoryStore struct {
	wallets map[string]*wallet.Wallet
	status  map[merkle.Digest]transactionrecord.Status
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		wallets: make(map[string]*wallet.Wallet),
		status:  make(map[merkle.Digest]transactionrecord.Status),
	}
}

func (s *memoryStore) Wallet(owner *account.Account) (*wallet.Wallet, bool) {
	w, ok := s.wallets[string(owner.Bytes())]
	if !ok {
		return nil, false
	}
	return w.Clone(), true
}

func (s *memoryStore) CreateWallet(owner *account.Account) *wallet.Wallet {
	if w, ok := s.Wallet(owner); ok {
		return w
	}
	return wallet.New(owner, 0)
}

func (s *memoryStore) PutWallet(w *wallet.Wallet) {
	s.wallets[string(w.Owner.Bytes())] = w.Clone()
}

func (s *memoryStore) SetStatus(txId merkle.Digest, status transactionrecord.Status) {
	s.status[txId] = status
}

// put a wallet directly
func (s *memoryStore) seed(owner *account.PrivateKey, balance uint64, holdings map[string]uint64) {
	w := wallet.New(owner.Account(), balance)
	for id, amount := range holdings {
		w.Holdings[id] = amount
	}
	s.PutWallet(w)
}

func (s *memoryStore) get(t *testing.T, owner *account.PrivateKey) *wallet.Wallet {
	w, ok := s.Wallet(owner.Account())
	if !ok {
		t.Fatalf("wallet: %s not found", owner.Account())
	}
	return w
}
