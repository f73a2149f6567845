// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"
	"encoding/json"

	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/asset"
	"github.com/bitmark-inc/assetledger/fault"
)

// Envelope - the JSON form of a signed record
//
// u64 fields of the body are decimal strings, public keys are hex
type Envelope struct {
	Body            json.RawMessage   `json:"body"`
	NetworkId       uint8             `json:"network_id"`
	ProtocolVersion uint8             `json:"protocol_version"`
	ServiceId       uint16            `json:"service_id"`
	MessageId       TagType           `json:"message_id"`
	Signature       account.Signature `json:"signature"`
}

// PublicKey - raw public key as hex text
type PublicKey [account.PublicKeySize]byte

// MarshalText - convert a public key to hex
func (key PublicKey) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(key)))
	hex.Encode(b, key[:])
	return b, nil
}

// UnmarshalText - convert hex to a public key
func (key *PublicKey) UnmarshalText(s []byte) error {
	if account.PublicKeySize != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidKeyLength
	}
	_, err := hex.Decode(key[:], s)
	return err
}

func publicKey(a *account.Account) PublicKey {
	if nil == a {
		return PublicKey{}
	}
	return PublicKey(a.PublicKey)
}

func (key PublicKey) account(testnet bool) *account.Account {
	return &account.Account{
		Test:      testnet,
		PublicKey: key,
	}
}

// the JSON list is never null
func assetList(list []asset.Asset) []asset.Asset {
	if nil == list {
		return []asset.Asset{}
	}
	return list
}

// empty JSON lists decode as nil to match the binary form
func nilIfEmpty(list []asset.Asset) []asset.Asset {
	if 0 == len(list) {
		return nil
	}
	return list
}

type ownerBody struct {
	PubKey PublicKey `json:"pub_key"`
	Seed   uint64    `json:"seed,string"`
}

type transferBody struct {
	From   PublicKey     `json:"from"`
	To     PublicKey     `json:"to"`
	Amount uint64        `json:"amount,string"`
	Assets []asset.Asset `json:"assets"`
	Seed   uint64        `json:"seed,string"`
}

type ownerAssetsBody struct {
	PubKey PublicKey     `json:"pub_key"`
	Assets []asset.Asset `json:"assets"`
	Seed   uint64        `json:"seed,string"`
}

type tradeBody struct {
	Buyer           PublicKey         `json:"buyer"`
	Seller          PublicKey         `json:"seller"`
	Assets          []asset.Asset     `json:"assets"`
	Price           uint64            `json:"price,string"`
	Seed            uint64            `json:"seed,string"`
	SellerSignature account.Signature `json:"seller_signature"`
}

type exchangeBody struct {
	Sender             PublicKey         `json:"sender"`
	Recipient          PublicKey         `json:"recipient"`
	SenderAssets       []asset.Asset     `json:"sender_assets"`
	SenderValue        uint64            `json:"sender_value,string"`
	RecipientAssets    []asset.Asset     `json:"recipient_assets"`
	RecipientValue     uint64            `json:"recipient_value,string"`
	Seed               uint64            `json:"seed,string"`
	RecipientSignature account.Signature `json:"recipient_signature"`
}

// MakeEnvelope - the JSON form of a record
func MakeEnvelope(tx Transaction) (*Envelope, error) {
	var body interface{}

	switch tx := tx.(type) {
	case *CreateWallet:
		body = ownerBody{
			PubKey: publicKey(tx.Owner),
			Seed:   tx.Seed,
		}
	case *Transfer:
		body = transferBody{
			From:   publicKey(tx.From),
			To:     publicKey(tx.To),
			Amount: tx.Amount,
			Assets: assetList(tx.Assets),
			Seed:   tx.Seed,
		}
	case *AddAssets:
		body = ownerAssetsBody{
			PubKey: publicKey(tx.Owner),
			Assets: assetList(tx.Assets),
			Seed:   tx.Seed,
		}
	case *DelAssets:
		body = ownerAssetsBody{
			PubKey: publicKey(tx.Owner),
			Assets: assetList(tx.Assets),
			Seed:   tx.Seed,
		}
	case *TradeAssets:
		body = tradeBody{
			Buyer:           publicKey(tx.Buyer),
			Seller:          publicKey(tx.Seller),
			Assets:          assetList(tx.Assets),
			Price:           tx.Price,
			Seed:            tx.Seed,
			SellerSignature: tx.SellerSignature,
		}
	case *Exchange:
		body = exchangeBody{
			Sender:             publicKey(tx.Sender),
			Recipient:          publicKey(tx.Recipient),
			SenderAssets:       assetList(tx.SenderAssets),
			SenderValue:        tx.SenderValue,
			RecipientAssets:    assetList(tx.RecipientAssets),
			RecipientValue:     tx.RecipientValue,
			Seed:               tx.Seed,
			RecipientSignature: tx.RecipientSignature,
		}
	case *Mint:
		body = ownerBody{
			PubKey: publicKey(tx.Owner),
			Seed:   tx.Seed,
		}
	default:
		return nil, fault.ErrUnknownTransactionType
	}

	b, err := json.Marshal(body)
	if nil != err {
		return nil, err
	}

	return &Envelope{
		Body:            b,
		NetworkId:       NetworkId,
		ProtocolVersion: ProtocolVersion,
		ServiceId:       ServiceId,
		MessageId:       tx.Type(),
		Signature:       tx.GetSignature(),
	}, nil
}

// FromJSON - decode a JSON envelope to a record
func FromJSON(data []byte, testnet bool) (Transaction, error) {
	envelope := &Envelope{}
	err := json.Unmarshal(data, envelope)
	if nil != err {
		return nil, err
	}
	return envelope.Transaction(testnet)
}

// Transaction - decode the body of an envelope
func (envelope *Envelope) Transaction(testnet bool) (Transaction, error) {
	if NetworkId != envelope.NetworkId {
		return nil, fault.ErrWrongNetworkId
	}
	if ProtocolVersion != envelope.ProtocolVersion {
		return nil, fault.ErrWrongProtocolVersion
	}
	if ServiceId != envelope.ServiceId {
		return nil, fault.ErrServiceIdMismatch
	}

	signature := nilIfEmptySignature(envelope.Signature)

	switch envelope.MessageId {

	case CreateWalletTag, MintTag:
		var body ownerBody
		err := json.Unmarshal(envelope.Body, &body)
		if nil != err {
			return nil, err
		}
		if MintTag == envelope.MessageId {
			return &Mint{
				Owner:     body.PubKey.account(testnet),
				Seed:      body.Seed,
				Signature: signature,
			}, nil
		}
		return &CreateWallet{
			Owner:     body.PubKey.account(testnet),
			Seed:      body.Seed,
			Signature: signature,
		}, nil

	case TransferTag:
		var body transferBody
		err := json.Unmarshal(envelope.Body, &body)
		if nil != err {
			return nil, err
		}
		return &Transfer{
			From:      body.From.account(testnet),
			To:        body.To.account(testnet),
			Amount:    body.Amount,
			Assets:    nilIfEmpty(body.Assets),
			Seed:      body.Seed,
			Signature: signature,
		}, nil

	case AddAssetsTag, DelAssetsTag:
		var body ownerAssetsBody
		err := json.Unmarshal(envelope.Body, &body)
		if nil != err {
			return nil, err
		}
		if AddAssetsTag == envelope.MessageId {
			return &AddAssets{
				Owner:     body.PubKey.account(testnet),
				Assets:    nilIfEmpty(body.Assets),
				Seed:      body.Seed,
				Signature: signature,
			}, nil
		}
		return &DelAssets{
			Owner:     body.PubKey.account(testnet),
			Assets:    nilIfEmpty(body.Assets),
			Seed:      body.Seed,
			Signature: signature,
		}, nil

	case TradeAssetsTag:
		var body tradeBody
		err := json.Unmarshal(envelope.Body, &body)
		if nil != err {
			return nil, err
		}
		return &TradeAssets{
			Buyer:           body.Buyer.account(testnet),
			Seller:          body.Seller.account(testnet),
			Assets:          nilIfEmpty(body.Assets),
			Price:           body.Price,
			Seed:            body.Seed,
			SellerSignature: nilIfEmptySignature(body.SellerSignature),
			Signature:       signature,
		}, nil

	case ExchangeTag:
		var body exchangeBody
		err := json.Unmarshal(envelope.Body, &body)
		if nil != err {
			return nil, err
		}
		return &Exchange{
			Sender:             body.Sender.account(testnet),
			Recipient:          body.Recipient.account(testnet),
			SenderAssets:       nilIfEmpty(body.SenderAssets),
			SenderValue:        body.SenderValue,
			RecipientAssets:    nilIfEmpty(body.RecipientAssets),
			RecipientValue:     body.RecipientValue,
			Seed:               body.Seed,
			RecipientSignature: nilIfEmptySignature(body.RecipientSignature),
			Signature:          signature,
		}, nil

	default:
		return nil, fault.ErrUnknownTransactionType
	}
}

func nilIfEmptySignature(signature account.Signature) account.Signature {
	if 0 == len(signature) {
		return nil
	}
	return signature
}

// InfoReply - read only view of a record and its fee
type InfoReply struct {
	TransactionData *Envelope `json:"transaction_data"`
	TxFee           uint64    `json:"tx_fee"`
}

// Info - the envelope of a record with the fee it is charged
func Info(tx Transaction, fees FeeSchedule) (*InfoReply, error) {
	envelope, err := MakeEnvelope(tx)
	if nil != err {
		return nil, err
	}
	return &InfoReply{
		TransactionData: envelope,
		TxFee:           fees.Fee(tx.Type()),
	}, nil
}
