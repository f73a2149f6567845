// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - the store view: a group of writes made visible together
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	InUse() bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
}

// TransactionData - the batch behind a Transaction
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - start a view, only one may be in use at a time
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - queue a key/value pair
func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	h.put(key, value)
}

// PutN - queue a key/uint64 pair
func (t *TransactionData) PutN(h Handle, key []byte, value uint64) {
	h.putN(key, value)
}

// Delete - queue a removal
func (t *TransactionData) Delete(h Handle, key []byte) {
	h.remove(key)
}

// Get - read, seeing the writes already queued in this view
func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.get(key)
}

// GetN - read a uint64, seeing the writes already queued in this view
func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool) {
	return h.getN(key)
}

// Has - check a key, seeing the writes already queued in this view
func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.has(key)
}

// Commit - write all queued changes atomically
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - discard all queued changes
func (t *TransactionData) Abort() {
	t.access.Abort()
}

// InUse - true between Begin and Commit/Abort
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}
