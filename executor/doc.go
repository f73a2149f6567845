// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package executor - apply verified transactions to wallets
//
// transactions arrive already ordered and are applied one at a time
// against a Store; each application either makes every one of its
// wallet writes or none of them
//
// fees are paid by the sender and leave the system; Mint is the only
// transaction that creates value
//
// Transfer, TradeAssets and Exchange record a Success or Fail status
// under the transaction hash; the single wallet transactions record
// nothing when their preconditions fail
package executor
