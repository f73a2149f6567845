// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/assetledger/merkle"
)

// MakeLink - the transaction hash of a packed record
//
// this is the key for the status and transaction pools
func (record Packed) MakeLink() merkle.Digest {
	return merkle.NewDigest(record)
}

// TxId - the transaction hash of a signed record
func TxId(tx Transaction) (merkle.Digest, error) {
	packed, err := Pack(tx)
	if nil != err {
		return merkle.Digest{}, err
	}
	return packed.MakeLink(), nil
}
