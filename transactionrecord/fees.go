// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

// default fees
const (
	FeeForTransfer = 1
	FeeForMining   = 1
)

// FeeSchedule - the fee charged to the sender of each record type
type FeeSchedule struct {
	CreateWallet uint64 `gluamapper:"create_wallet" json:"create_wallet"`
	Transfer     uint64 `gluamapper:"transfer" json:"transfer"`
	AddAssets    uint64 `gluamapper:"add_assets" json:"add_assets"`
	DelAssets    uint64 `gluamapper:"del_assets" json:"del_assets"`
	TradeAssets  uint64 `gluamapper:"trade_assets" json:"trade_assets"`
	Exchange     uint64 `gluamapper:"exchange" json:"exchange"`
	Mint         uint64 `gluamapper:"mint" json:"mint"`
}

// DefaultFees - the standard schedule
func DefaultFees() FeeSchedule {
	return FeeSchedule{
		CreateWallet: 0,
		Transfer:     FeeForTransfer,
		AddAssets:    FeeForMining,
		DelAssets:    FeeForMining,
		TradeAssets:  FeeForTransfer,
		Exchange:     FeeForTransfer,
		Mint:         0,
	}
}

// Fee - the fee for a record type
func (fees FeeSchedule) Fee(tag TagType) uint64 {
	switch tag {
	case CreateWalletTag:
		return fees.CreateWallet
	case TransferTag:
		return fees.Transfer
	case AddAssetsTag:
		return fees.AddAssets
	case DelAssetsTag:
		return fees.DelAssets
	case TradeAssetsTag:
		return fees.TradeAssets
	case ExchangeTag:
		return fees.Exchange
	case MintTag:
		return fees.Mint
	default:
		return 0
	}
}
