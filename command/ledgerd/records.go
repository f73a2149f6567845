// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"

	"github.com/bitmark-inc/assetledger/executor"
	"github.com/bitmark-inc/assetledger/transactionrecord"
)

// read signed records from a file
//
// the file holds either packed binary records back to back, a single
// JSON envelope or a JSON array of envelopes
func readRecords(fileName string, testnet bool) ([]transactionrecord.Packed, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if 0 == len(trimmed) {
		return nil, nil
	}

	switch trimmed[0] {
	case '{':
		packed, err := packJSON(trimmed, testnet)
		if nil != err {
			return nil, err
		}
		return []transactionrecord.Packed{packed}, nil

	case '[':
		var list []json.RawMessage
		err := json.Unmarshal(trimmed, &list)
		if nil != err {
			return nil, err
		}
		records := make([]transactionrecord.Packed, 0, len(list))
		for _, item := range list {
			packed, err := packJSON(item, testnet)
			if nil != err {
				return nil, err
			}
			records = append(records, packed)
		}
		return records, nil

	default:
		return executor.Split(data, testnet)
	}
}

// decode one envelope and pack it; the signatures must be present
func packJSON(data []byte, testnet bool) (transactionrecord.Packed, error) {
	tx, err := transactionrecord.FromJSON(data, testnet)
	if nil != err {
		return nil, err
	}
	return transactionrecord.Pack(tx)
}
