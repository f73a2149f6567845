// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - named quantities held by a wallet
//
// an Asset is an immutable (identifier, amount) pair; Holdings is
// the per-wallet mapping from identifier to quantity
//
// all arithmetic is checked: an operation that would overflow or
// go negative fails without changing the holdings
package asset
