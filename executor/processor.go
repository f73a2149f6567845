// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/bitmark-inc/assetledger/fault"
	"github.com/bitmark-inc/assetledger/ledger"
	"github.com/bitmark-inc/assetledger/merkle"
	"github.com/bitmark-inc/assetledger/transactionrecord"
	"github.com/bitmark-inc/logger"
)

// Result - the effect of one packed transaction
type Result struct {
	TxId    merkle.Digest `json:"txId"`
	Outcome Outcome       `json:"outcome"`
	Error   string        `json:"error,omitempty"`
}

// Processor - decode, apply and persist transactions in order
type Processor struct {
	log      *logger.L
	executor *Executor
	testnet  bool
}

// NewProcessor - create a processor over the ledger database
func NewProcessor(executor *Executor, testnet bool, log *logger.L) *Processor {
	if nil == log {
		logger.Panic("processor: nil logger")
	}
	return &Processor{
		log:      log,
		executor: executor,
		testnet:  testnet,
	}
}

// Process - apply one packed transaction and commit its effects
//
// the record is stored under its hash unless it was rejected; a hash
// already present is refused so that replaying a record has no effect
func (p *Processor) Process(packed transactionrecord.Packed) (merkle.Digest, Outcome, error) {
	tx, n, err := packed.Unpack(p.testnet)
	if nil != err {
		return merkle.Digest{}, OutcomeRejected, err
	}
	if n != len(packed) {
		return merkle.Digest{}, OutcomeRejected, fault.ErrWrongTransactionLength
	}

	txId := packed.MakeLink()

	view, err := ledger.NewView()
	if nil != err {
		return txId, OutcomeRejected, err
	}

	if view.HasTransaction(txId) {
		view.Abort()
		p.log.Debugf("duplicate: %s", txId)
		return txId, OutcomeRejected, fault.ErrDuplicateTransactionInput
	}

	outcome := p.executor.Apply(view, tx)
	if OutcomeRejected == outcome {
		view.Abort()
		return txId, outcome, nil
	}

	view.PutTransaction(txId, packed)
	err = view.Commit()
	if nil != err {
		p.log.Errorf("commit: %s  error: %s", txId, err)
		return txId, OutcomeRejected, err
	}

	p.log.Infof("%s: %s  outcome: %s", tx.Type(), txId, outcome)
	return txId, outcome, nil
}

// ProcessTransaction - pack a signed transaction then process it
func (p *Processor) ProcessTransaction(tx transactionrecord.Transaction) (merkle.Digest, Outcome, error) {
	packed, err := transactionrecord.Pack(tx)
	if nil != err {
		return merkle.Digest{}, OutcomeRejected, err
	}
	return p.Process(packed)
}

// ProcessBatch - process records in the given order
//
// an error on one record is reported in its result and does not stop
// the remainder
func (p *Processor) ProcessBatch(list []transactionrecord.Packed) []Result {
	results := make([]Result, len(list))
	for i, packed := range list {
		txId, outcome, err := p.Process(packed)
		results[i] = Result{
			TxId:    txId,
			Outcome: outcome,
		}
		if nil != err {
			results[i].Error = err.Error()
		}
	}
	return results
}

// Statistics - counts of outcomes of the underlying executor
func (p *Processor) Statistics() Statistics {
	return p.executor.Statistics()
}

// Split - separate a concatenation of packed records
func Split(buffer []byte, testnet bool) ([]transactionrecord.Packed, error) {
	list := make([]transactionrecord.Packed, 0, 16)
	for 0 != len(buffer) {
		_, n, err := transactionrecord.Packed(buffer).Unpack(testnet)
		if nil != err {
			return nil, err
		}
		list = append(list, transactionrecord.Packed(buffer[:n]))
		buffer = buffer[n:]
	}
	return list, nil
}
