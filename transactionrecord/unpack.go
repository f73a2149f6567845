// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/fault"
)

// Unpack - turn a byte slice into a record
//
// the message id selects the record type, the header's payload
// length gives the number of bytes consumed
//
// only the canonical encoding is accepted: re-packing the result
// must reproduce the input bytes exactly, so every record has a
// single hash
//
// must cast result to correct type
//
// e.g.
//   switch tx := result.(type) {
//   case *transactionrecord.Transfer:
func (record Packed) Unpack(testnet bool) (t Transaction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			t = nil
			n = 0
			e = fault.ErrNotTransactionPack
		}
	}()

	if len(record) < headerLength+account.SignatureSize {
		return nil, 0, fault.ErrWrongTransactionLength
	}
	if NetworkId != record[networkIdOffset] {
		return nil, 0, fault.ErrWrongNetworkId
	}
	if ProtocolVersion != record[protocolVersionOffset] {
		return nil, 0, fault.ErrWrongProtocolVersion
	}
	if ServiceId != binary.LittleEndian.Uint16(record[serviceIdOffset:]) {
		return nil, 0, fault.ErrServiceIdMismatch
	}

	tag := TagType(binary.LittleEndian.Uint16(record[messageIdOffset:]))
	body, ok := bodyLength(tag)
	if !ok {
		return nil, 0, fault.ErrUnknownTransactionType
	}

	length := int(binary.LittleEndian.Uint32(record[payloadLengthOffset:]))
	if length > len(record) || length < headerLength+body+account.SignatureSize {
		return nil, 0, fault.ErrWrongTransactionLength
	}

	r := &reader{
		record:    record[:length],
		testnet:   testnet,
		heapStart: headerLength + body,
		heapEnd:   length - account.SignatureSize,
	}
	signature := r.trailer()

	switch tag {

	case CreateWalletTag:
		t = &CreateWallet{
			Owner:     r.account(0),
			Seed:      r.uint64(32),
			Signature: signature,
		}

	case TransferTag:
		assets, err := r.assets(72)
		if nil != err {
			return nil, 0, err
		}
		t = &Transfer{
			From:      r.account(0),
			To:        r.account(32),
			Amount:    r.uint64(64),
			Assets:    assets,
			Seed:      r.uint64(80),
			Signature: signature,
		}

	case AddAssetsTag:
		assets, err := r.assets(32)
		if nil != err {
			return nil, 0, err
		}
		t = &AddAssets{
			Owner:     r.account(0),
			Assets:    assets,
			Seed:      r.uint64(40),
			Signature: signature,
		}

	case DelAssetsTag:
		assets, err := r.assets(32)
		if nil != err {
			return nil, 0, err
		}
		t = &DelAssets{
			Owner:     r.account(0),
			Assets:    assets,
			Seed:      r.uint64(40),
			Signature: signature,
		}

	case TradeAssetsTag:
		assets, err := r.assets(64)
		if nil != err {
			return nil, 0, err
		}
		t = &TradeAssets{
			Buyer:           r.account(0),
			Seller:          r.account(32),
			Assets:          assets,
			Price:           r.uint64(72),
			Seed:            r.uint64(80),
			SellerSignature: r.signature(88),
			Signature:       signature,
		}

	case ExchangeTag:
		senderAssets, err := r.assets(64)
		if nil != err {
			return nil, 0, err
		}
		recipientAssets, err := r.assets(80)
		if nil != err {
			return nil, 0, err
		}
		t = &Exchange{
			Sender:             r.account(0),
			Recipient:          r.account(32),
			SenderAssets:       senderAssets,
			SenderValue:        r.uint64(72),
			RecipientAssets:    recipientAssets,
			RecipientValue:     r.uint64(88),
			Seed:               r.uint64(96),
			RecipientSignature: r.signature(104),
			Signature:          signature,
		}

	case MintTag:
		t = &Mint{
			Owner:     r.account(0),
			Seed:      r.uint64(32),
			Signature: signature,
		}

	default:
		return nil, 0, fault.ErrUnknownTransactionType
	}

	message, err := Message(t)
	if nil != err {
		return nil, 0, err
	}
	if !bytes.Equal(message, record[:r.heapEnd]) {
		return nil, 0, fault.ErrNotTransactionPack
	}

	return t, length, nil
}
