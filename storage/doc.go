// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. txId         = transaction digest as 32 byte SHA3-256(data)
// 4. owner        = 32 byte ed25519 public key
//
// Wallets:
//
//   W ++ owner                 - balance and holdings
//                                data: packed wallet
//
// Status:
//
//   S ++ txId                  - outcome of an executed transaction
//                                data: one byte status
//
// Transactions:
//
//   T ++ txId                  - executed transactions
//                                data: packed transaction data
//
// all writes are made through a Transaction: they are collected in a
// batch, are visible to reads through the same Transaction, and reach
// the database together on Commit
package storage
