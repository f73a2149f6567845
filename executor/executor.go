// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetledger/counter"
	"github.com/bitmark-inc/assetledger/fault"
	"github.com/bitmark-inc/assetledger/transactionrecord"
)

// default amounts
const (
	InitialBalance = 100                 // balance of a newly created wallet
	MintIssuance   = 100_000_000_000_000 // value created by one mint
)

// Parameters - the amounts used when applying transactions
type Parameters struct {
	Fees           transactionrecord.FeeSchedule `gluamapper:"fees" json:"fees"`
	InitialBalance uint64                        `gluamapper:"initial_balance" json:"initial_balance"`
	Issuance       uint64                        `gluamapper:"issuance" json:"issuance"`
}

// DefaultParameters - the standard amounts
func DefaultParameters() Parameters {
	return Parameters{
		Fees:           transactionrecord.DefaultFees(),
		InitialBalance: InitialBalance,
		Issuance:       MintIssuance,
	}
}

// Outcome - result of applying one transaction
type Outcome int

// possible outcomes
const (
	OutcomeRejected = Outcome(iota) // did not verify, store not touched
	OutcomeApplied  = Outcome(iota) // all effects written
	OutcomeSkipped  = Outcome(iota) // a precondition failed, no wallet written
)

// String - outcome as text
func (outcome Outcome) String() string {
	switch outcome {
	case OutcomeRejected:
		return "rejected"
	case OutcomeApplied:
		return "applied"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// MarshalText - outcome as JSON text
func (outcome Outcome) MarshalText() ([]byte, error) {
	return []byte(outcome.String()), nil
}

// UnmarshalText - convert text to outcome
func (outcome *Outcome) UnmarshalText(s []byte) error {
	switch string(s) {
	case "rejected":
		*outcome = OutcomeRejected
	case "applied":
		*outcome = OutcomeApplied
	case "skipped":
		*outcome = OutcomeSkipped
	default:
		return fault.ErrInvalidOutcome
	}
	return nil
}

// Statistics - counts of outcomes since start
type Statistics struct {
	Applied  uint64 `json:"applied"`
	Skipped  uint64 `json:"skipped"`
	Rejected uint64 `json:"rejected"`
}

// Executor - applies transactions to a Store
type Executor struct {
	log        *logger.L
	parameters Parameters

	applied  counter.Counter
	skipped  counter.Counter
	rejected counter.Counter
}

// New - create an executor
func New(parameters Parameters, log *logger.L) *Executor {
	if nil == log {
		logger.Panic("executor: nil logger")
	}
	return &Executor{
		log:        log,
		parameters: parameters,
	}
}

// Parameters - the amounts in use
func (e *Executor) Parameters() Parameters {
	return e.parameters
}

// Apply - verify a transaction and, if valid, apply it to the store
//
// a transaction that does not verify leaves the store untouched
func (e *Executor) Apply(store Store, tx transactionrecord.Transaction) Outcome {
	if nil == tx || !tx.Verify() {
		e.rejected.Increment()
		e.log.Debugf("rejected: %#v", tx)
		return OutcomeRejected
	}

	// cannot fail for a verified transaction
	txId, err := transactionrecord.TxId(tx)
	if nil != err {
		e.rejected.Increment()
		e.log.Warnf("rejected: %#v  error: %s", tx, err)
		return OutcomeRejected
	}

	var outcome Outcome

	switch tx := tx.(type) {
	case *transactionrecord.CreateWallet:
		outcome = e.createWallet(store, tx)
	case *transactionrecord.Transfer:
		outcome = e.transfer(store, txId, tx)
	case *transactionrecord.AddAssets:
		outcome = e.addAssets(store, tx)
	case *transactionrecord.DelAssets:
		outcome = e.delAssets(store, tx)
	case *transactionrecord.TradeAssets:
		outcome = e.tradeAssets(store, txId, tx)
	case *transactionrecord.Exchange:
		outcome = e.exchange(store, txId, tx)
	case *transactionrecord.Mint:
		outcome = e.mint(store, tx)
	default:
		e.rejected.Increment()
		e.log.Errorf("unhandled transaction type: %T", tx)
		return OutcomeRejected
	}

	if OutcomeApplied == outcome {
		e.applied.Increment()
	} else {
		e.skipped.Increment()
	}
	e.log.Debugf("%s: %s  outcome: %s", tx.Type(), txId, outcome)

	return outcome
}

// Statistics - counts of outcomes
func (e *Executor) Statistics() Statistics {
	return Statistics{
		Applied:  e.applied.Uint64(),
		Skipped:  e.skipped.Uint64(),
		Rejected: e.rejected.Uint64(),
	}
}

// the first error of a sequence of wallet updates
//
// updates are made on copies, so a failure part way through only
// discards the copies
func firstError(errs ...error) error {
	for _, err := range errs {
		if nil != err {
			return err
		}
	}
	return nil
}
