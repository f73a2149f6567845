// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - wallet and status access on top of storage
//
// a View wraps the single storage transaction and is what the
// executor reads and writes through; the package level functions
// read committed data only
package ledger
