// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet - the ledger record kept for each account
//
// a wallet is created explicitly by a create wallet transaction or
// implicitly when first credited, and is never deleted
//
// stored form:
//
//   varint  length of owner
//   []byte  owner (key variant + public key)
//   varint  balance
//   varint  number of holdings
//   repeated for each holding in identifier order:
//     varint  length of identifier
//     []byte  identifier
//     varint  quantity
package wallet
