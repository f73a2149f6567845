// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/asset"
	"github.com/bitmark-inc/assetledger/fault"
)

// Message - the unsigned bytes of a record, as signed by the sender
//
// for countersigned records this includes the countersignature
func Message(tx Transaction) (Packed, error) {
	if nil == tx {
		return nil, fault.ErrUnknownTransactionType
	}
	m, err := newMessage(tx.Type())
	if nil != err {
		return nil, err
	}
	err = tx.write(m)
	if nil != err {
		return nil, err
	}
	return m.packed(), nil
}

// Offer - the bytes signed by the counterparty
//
// this is the message with the countersignature field all zero
func Offer(tx Countersigned) (Packed, error) {
	switch tx := tx.(type) {
	case *TradeAssets:
		offer := *tx
		offer.SellerSignature = nil
		return Message(&offer)
	case *Exchange:
		offer := *tx
		offer.RecipientSignature = nil
		return Message(&offer)
	default:
		return nil, fault.ErrUnknownTransactionType
	}
}

// Pack - the complete signed record
//
// NOTE: returns the "unsigned" message on signature failure - for
//       debugging/testing
func Pack(tx Transaction) (Packed, error) {
	message, err := Message(tx)
	if nil != err {
		return nil, err
	}

	if c, ok := tx.(Countersigned); ok {
		offer, err := Offer(c)
		if nil != err {
			return nil, err
		}
		err = checkSignature(c.GetCounterparty(), offer, c.GetCountersignature())
		if nil != err {
			return message, err
		}
	}

	err = checkSignature(tx.GetSender(), message, tx.GetSignature())
	if nil != err {
		return message, err
	}

	// Signature Last
	return append(message, tx.GetSignature()...), nil
}

// Sign - set the sender's signature and return the packed record
//
// a countersigned record must already carry its countersignature
func Sign(tx Transaction, privateKey *account.PrivateKey) (Packed, error) {
	if !privateKey.Account().SameKey(tx.GetSender()) {
		return nil, fault.ErrInvalidOwner
	}
	message, err := Message(tx)
	if nil != err {
		return nil, err
	}
	tx.setSignature(privateKey.Sign(message))
	return Pack(tx)
}

// Countersign - set the counterparty's signature over the offer
func Countersign(tx Countersigned, privateKey *account.PrivateKey) error {
	if !privateKey.Account().SameKey(tx.GetCounterparty()) {
		return fault.ErrInvalidOwner
	}
	offer, err := Offer(tx)
	if nil != err {
		return err
	}
	tx.setCountersignature(privateKey.Sign(offer))
	return nil
}

func checkSignature(signer *account.Account, message []byte, signature account.Signature) error {
	if nil == signer {
		return fault.ErrInvalidOwner
	}
	return signer.CheckSignature(message, signature)
}

// body writers, offsets as listed in the package documentation

func (tx *CreateWallet) write(m *message) error {
	err := m.putAccount(0, tx.Owner)
	if nil != err {
		return err
	}
	m.putUint64(32, tx.Seed)
	return nil
}

func (tx *Transfer) write(m *message) error {
	err := m.putAccount(0, tx.From)
	if nil != err {
		return err
	}
	err = m.putAccount(32, tx.To)
	if nil != err {
		return err
	}
	m.putUint64(64, tx.Amount)
	err = m.putAssets(72, tx.Assets)
	if nil != err {
		return err
	}
	m.putUint64(80, tx.Seed)
	return nil
}

func (tx *AddAssets) write(m *message) error {
	return writeOwnerAssets(m, tx.Owner, tx.Assets, tx.Seed)
}

func (tx *DelAssets) write(m *message) error {
	return writeOwnerAssets(m, tx.Owner, tx.Assets, tx.Seed)
}

// add and delete share a layout
func writeOwnerAssets(m *message, owner *account.Account, assets []asset.Asset, seed uint64) error {
	err := m.putAccount(0, owner)
	if nil != err {
		return err
	}
	err = m.putAssets(32, assets)
	if nil != err {
		return err
	}
	m.putUint64(40, seed)
	return nil
}

func (tx *TradeAssets) write(m *message) error {
	err := m.putAccount(0, tx.Buyer)
	if nil != err {
		return err
	}
	err = m.putAccount(32, tx.Seller)
	if nil != err {
		return err
	}
	err = m.putAssets(64, tx.Assets)
	if nil != err {
		return err
	}
	m.putUint64(72, tx.Price)
	m.putUint64(80, tx.Seed)
	return m.putSignature(88, tx.SellerSignature)
}

func (tx *Exchange) write(m *message) error {
	err := m.putAccount(0, tx.Sender)
	if nil != err {
		return err
	}
	err = m.putAccount(32, tx.Recipient)
	if nil != err {
		return err
	}
	err = m.putAssets(64, tx.SenderAssets)
	if nil != err {
		return err
	}
	m.putUint64(72, tx.SenderValue)
	err = m.putAssets(80, tx.RecipientAssets)
	if nil != err {
		return err
	}
	m.putUint64(88, tx.RecipientValue)
	m.putUint64(96, tx.Seed)
	return m.putSignature(104, tx.RecipientSignature)
}

func (tx *Mint) write(m *message) error {
	err := m.putAccount(0, tx.Owner)
	if nil != err {
		return err
	}
	m.putUint64(32, tx.Seed)
	return nil
}

// signature setters

func (tx *CreateWallet) setSignature(s account.Signature) { tx.Signature = s }
func (tx *Transfer) setSignature(s account.Signature)     { tx.Signature = s }
func (tx *AddAssets) setSignature(s account.Signature)    { tx.Signature = s }
func (tx *DelAssets) setSignature(s account.Signature)    { tx.Signature = s }
func (tx *TradeAssets) setSignature(s account.Signature)  { tx.Signature = s }
func (tx *Exchange) setSignature(s account.Signature)     { tx.Signature = s }
func (tx *Mint) setSignature(s account.Signature)         { tx.Signature = s }

func (tx *TradeAssets) setCountersignature(s account.Signature) { tx.SellerSignature = s }
func (tx *Exchange) setCountersignature(s account.Signature)    { tx.RecipientSignature = s }
