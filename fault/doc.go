// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances shared by all ledger packages
//
// each error belongs to one class which can be tested with the
// corresponding IsErr function
package fault
