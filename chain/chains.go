// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the ledgers a node can run
//
// every chain other than the live ledger uses test network accounts
package chain

// names of all chains
const (
	Ledger  = "ledger"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Ledger, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - true if the chain uses test network accounts
func IsTesting(name string) bool {
	return Ledger != name
}
