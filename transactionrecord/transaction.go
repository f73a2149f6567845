// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/assetledger/account"
	"github.com/bitmark-inc/assetledger/asset"
)

// TagType - type code for transactions, carried as the message id
type TagType uint16

// enumerate the possible transaction record types
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	CreateWalletTag = TagType(iota) // new wallet with the initial balance
	TransferTag     = TagType(iota) // move value and assets to another wallet
	AddAssetsTag    = TagType(iota) // credit assets to own wallet
	DelAssetsTag    = TagType(iota) // remove assets from own wallet
	TradeAssetsTag  = TagType(iota) // buy assets from a seller for a price
	ExchangeTag     = TagType(iota) // swap assets and value between two wallets
	MintTag         = TagType(iota) // issue new value

	// this item must be last
	InvalidTag = TagType(iota)
)

// header constants
const (
	NetworkId       = 0
	ProtocolVersion = 0
	ServiceId       = 2
)

// MaximumAssets - limit on the length of any asset list
const MaximumAssets = 256

// Packed - packed records are just a byte slice
type Packed []byte

// Transaction - generic transaction interface
//
// the set of implementations is closed, see the record types below
type Transaction interface {
	Type() TagType
	GetSender() *account.Account
	GetSeed() uint64
	GetSignature() account.Signature
	Verify() bool

	// fill the body of the message
	write(m *message) error
	setSignature(signature account.Signature)
}

// Countersigned - transactions that also need the counterparty's signature
type Countersigned interface {
	Transaction
	GetCounterparty() *account.Account
	GetCountersignature() account.Signature
	setCountersignature(signature account.Signature)
}

// CreateWallet - open a wallet with the initial balance
type CreateWallet struct {
	Owner     *account.Account
	Seed      uint64
	Signature account.Signature
}

// Transfer - move value and assets from one wallet to another
type Transfer struct {
	From      *account.Account
	To        *account.Account
	Amount    uint64
	Assets    []asset.Asset
	Seed      uint64
	Signature account.Signature
}

// AddAssets - credit assets to the owner's wallet
type AddAssets struct {
	Owner     *account.Account
	Assets    []asset.Asset
	Seed      uint64
	Signature account.Signature
}

// DelAssets - remove assets from the owner's wallet
type DelAssets struct {
	Owner     *account.Account
	Assets    []asset.Asset
	Seed      uint64
	Signature account.Signature
}

// TradeAssets - the buyer pays the price, the seller delivers the assets
//
// signed by the buyer, countersigned by the seller
type TradeAssets struct {
	Buyer           *account.Account
	Seller          *account.Account
	Assets          []asset.Asset
	Price           uint64
	Seed            uint64
	SellerSignature account.Signature
	Signature       account.Signature
}

// Exchange - two wallets swap assets and value
//
// signed by the sender, countersigned by the recipient
type Exchange struct {
	Sender             *account.Account
	Recipient          *account.Account
	SenderAssets       []asset.Asset
	SenderValue        uint64
	RecipientAssets    []asset.Asset
	RecipientValue     uint64
	Seed               uint64
	RecipientSignature account.Signature
	Signature          account.Signature
}

// Mint - issue new value to the owner's wallet
type Mint struct {
	Owner     *account.Account
	Seed      uint64
	Signature account.Signature
}

// Type - record type codes
func (tx *CreateWallet) Type() TagType { return CreateWalletTag }
func (tx *Transfer) Type() TagType     { return TransferTag }
func (tx *AddAssets) Type() TagType    { return AddAssetsTag }
func (tx *DelAssets) Type() TagType    { return DelAssetsTag }
func (tx *TradeAssets) Type() TagType  { return TradeAssetsTag }
func (tx *Exchange) Type() TagType     { return ExchangeTag }
func (tx *Mint) Type() TagType         { return MintTag }

// GetSender - the account that signs and pays the fee
func (tx *CreateWallet) GetSender() *account.Account { return tx.Owner }
func (tx *Transfer) GetSender() *account.Account     { return tx.From }
func (tx *AddAssets) GetSender() *account.Account    { return tx.Owner }
func (tx *DelAssets) GetSender() *account.Account    { return tx.Owner }
func (tx *TradeAssets) GetSender() *account.Account  { return tx.Buyer }
func (tx *Exchange) GetSender() *account.Account     { return tx.Sender }
func (tx *Mint) GetSender() *account.Account         { return tx.Owner }

// GetSeed - uniqueness value
func (tx *CreateWallet) GetSeed() uint64 { return tx.Seed }
func (tx *Transfer) GetSeed() uint64     { return tx.Seed }
func (tx *AddAssets) GetSeed() uint64    { return tx.Seed }
func (tx *DelAssets) GetSeed() uint64    { return tx.Seed }
func (tx *TradeAssets) GetSeed() uint64  { return tx.Seed }
func (tx *Exchange) GetSeed() uint64     { return tx.Seed }
func (tx *Mint) GetSeed() uint64         { return tx.Seed }

// GetSignature - the sender's signature
func (tx *CreateWallet) GetSignature() account.Signature { return tx.Signature }
func (tx *Transfer) GetSignature() account.Signature     { return tx.Signature }
func (tx *AddAssets) GetSignature() account.Signature    { return tx.Signature }
func (tx *DelAssets) GetSignature() account.Signature    { return tx.Signature }
func (tx *TradeAssets) GetSignature() account.Signature  { return tx.Signature }
func (tx *Exchange) GetSignature() account.Signature     { return tx.Signature }
func (tx *Mint) GetSignature() account.Signature         { return tx.Signature }

// GetCounterparty - the account that countersigns
func (tx *TradeAssets) GetCounterparty() *account.Account { return tx.Seller }
func (tx *Exchange) GetCounterparty() *account.Account    { return tx.Recipient }

// GetCountersignature - the counterparty's signature over the offer
func (tx *TradeAssets) GetCountersignature() account.Signature { return tx.SellerSignature }
func (tx *Exchange) GetCountersignature() account.Signature    { return tx.RecipientSignature }

// String - name of a record type
func (tag TagType) String() string {
	switch tag {
	case CreateWalletTag:
		return "CreateWallet"
	case TransferTag:
		return "Transfer"
	case AddAssetsTag:
		return "AddAssets"
	case DelAssetsTag:
		return "DelAssets"
	case TradeAssetsTag:
		return "TradeAssets"
	case ExchangeTag:
		return "Exchange"
	case MintTag:
		return "Mint"
	default:
		return "Invalid"
	}
}
