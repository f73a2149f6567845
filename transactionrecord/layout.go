// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/asset"
	"github.com/bitmark-inc/assetledger/fault"
)

// byte sizes for the fixed parts of a message
const (
	headerLength       = 10
	segmentLength      = 8
	assetElementLength = 16
)

// header field offsets
const (
	networkIdOffset       = 0
	protocolVersionOffset = 1
	messageIdOffset       = 2
	serviceIdOffset       = 4
	payloadLengthOffset   = 6
)

// fixed body size of each record type
func bodyLength(tag TagType) (int, bool) {
	switch tag {
	case CreateWalletTag:
		return 40, true
	case TransferTag:
		return 88, true
	case AddAssetsTag, DelAssetsTag:
		return 48, true
	case TradeAssetsTag:
		return 152, true
	case ExchangeTag:
		return 168, true
	case MintTag:
		return 40, true
	default:
		return 0, false
	}
}

// message - builds the unsigned bytes of a record
//
// body offsets are relative to the end of the header, the heap
// grows after the body
type message struct {
	buffer []byte
}

func newMessage(tag TagType) (*message, error) {
	length, ok := bodyLength(tag)
	if !ok {
		return nil, fault.ErrUnknownTransactionType
	}
	buffer := make([]byte, headerLength+length)
	buffer[networkIdOffset] = NetworkId
	buffer[protocolVersionOffset] = ProtocolVersion
	binary.LittleEndian.PutUint16(buffer[messageIdOffset:], uint16(tag))
	binary.LittleEndian.PutUint16(buffer[serviceIdOffset:], ServiceId)
	return &message{
		buffer: buffer,
	}, nil
}

func (m *message) putAccount(offset int, a *account.Account) error {
	if nil == a {
		return fault.ErrInvalidOwner
	}
	copy(m.buffer[headerLength+offset:], a.PublicKey[:])
	return nil
}

func (m *message) putUint64(offset int, value uint64) {
	binary.LittleEndian.PutUint64(m.buffer[headerLength+offset:], value)
}

// an absent signature is left as zero bytes
func (m *message) putSignature(offset int, signature account.Signature) error {
	switch len(signature) {
	case 0:
		return nil
	case account.SignatureSize:
		copy(m.buffer[headerLength+offset:], signature)
		return nil
	default:
		return fault.ErrInvalidSignature
	}
}

func (m *message) putSegment(offset int, position int, count int) {
	binary.LittleEndian.PutUint32(m.buffer[headerLength+offset:], uint32(position))
	binary.LittleEndian.PutUint32(m.buffer[headerLength+offset+4:], uint32(count))
}

// the element array goes on the heap first, then each identifier
func (m *message) putAssets(offset int, list []asset.Asset) error {
	if len(list) > MaximumAssets {
		return fault.ErrAssetListTooLong
	}

	start := len(m.buffer)
	m.buffer = append(m.buffer, make([]byte, len(list)*assetElementLength)...)

	for i, a := range list {
		if len(a.Id) > asset.MaximumIdentifierLength {
			return fault.ErrIdentifierTooLong
		}
		element := start + i*assetElementLength
		position := len(m.buffer)
		m.buffer = append(m.buffer, a.Id...)
		binary.LittleEndian.PutUint32(m.buffer[element:], uint32(position))
		binary.LittleEndian.PutUint32(m.buffer[element+4:], uint32(len(a.Id)))
		binary.LittleEndian.PutUint64(m.buffer[element+8:], a.Amount)
	}

	m.putSegment(offset, start, len(list))
	return nil
}

// finish the header, the length includes the signature that will follow
func (m *message) packed() Packed {
	binary.LittleEndian.PutUint32(m.buffer[payloadLengthOffset:], uint32(len(m.buffer)+account.SignatureSize))
	return m.buffer
}

// reader - field access for a record whose header has been checked
//
// the heap is the region between the end of the body and the signature
type reader struct {
	record    Packed
	testnet   bool
	heapStart int
	heapEnd   int
}

func (r *reader) account(offset int) *account.Account {
	start := headerLength + offset
	// cannot fail: the slice is always PublicKeySize bytes
	a, _ := account.AccountFromPublicKey(r.testnet, r.record[start:start+account.PublicKeySize])
	return a
}

func (r *reader) uint64(offset int) uint64 {
	return binary.LittleEndian.Uint64(r.record[headerLength+offset:])
}

// an all zero signature field is returned as nil
func (r *reader) signature(offset int) account.Signature {
	start := headerLength + offset
	field := r.record[start : start+account.SignatureSize]
	for _, b := range field {
		if 0 != b {
			signature := make(account.Signature, account.SignatureSize)
			copy(signature, field)
			return signature
		}
	}
	return nil
}

// the trailing signature
func (r *reader) trailer() account.Signature {
	signature := make(account.Signature, account.SignatureSize)
	copy(signature, r.record[r.heapEnd:])
	return signature
}

// check a segment lies within the heap
func (r *reader) segment(position int, count int, elementLength int) error {
	if position < r.heapStart || position > r.heapEnd {
		return fault.ErrWrongSegment
	}
	if count > (r.heapEnd-position)/elementLength {
		return fault.ErrWrongSegment
	}
	return nil
}

func (r *reader) assets(offset int) ([]asset.Asset, error) {
	start := headerLength + offset
	position := int(binary.LittleEndian.Uint32(r.record[start:]))
	count := int(binary.LittleEndian.Uint32(r.record[start+4:]))

	if count > MaximumAssets {
		return nil, fault.ErrAssetListTooLong
	}
	err := r.segment(position, count, assetElementLength)
	if nil != err {
		return nil, err
	}
	if 0 == count {
		return nil, nil
	}

	list := make([]asset.Asset, count)
	for i := 0; i < count; i += 1 {
		element := position + i*assetElementLength
		idPosition := int(binary.LittleEndian.Uint32(r.record[element:]))
		idLength := int(binary.LittleEndian.Uint32(r.record[element+4:]))

		if idLength > asset.MaximumIdentifierLength {
			return nil, fault.ErrIdentifierTooLong
		}
		err := r.segment(idPosition, idLength, 1)
		if nil != err {
			return nil, err
		}
		id := r.record[idPosition : idPosition+idLength]
		if !utf8.Valid(id) {
			return nil, fault.ErrInvalidIdentifier
		}

		list[i] = asset.Asset{
			Id:     string(id),
			Amount: binary.LittleEndian.Uint64(r.record[element+8:]),
		}
	}
	return list, nil
}
