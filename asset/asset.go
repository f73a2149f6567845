// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bitmark-inc/assetledger/fault"
)

// MaximumIdentifierLength - maximum bytes in an asset identifier
const MaximumIdentifierLength = 1024

// Asset - an identifier plus a quantity
type Asset struct {
	Id     string `json:"hash_id"`
	Amount uint64 `json:"amount"`
}

// New - create an asset value
func New(id string, amount uint64) Asset {
	return Asset{
		Id:     id,
		Amount: amount,
	}
}

// String - for the fmt package
func (a Asset) String() string {
	return fmt.Sprintf("%s:%d", a.Id, a.Amount)
}

// Parse - convert the String form "ID:QUANTITY" to an asset
//
// the identifier may itself contain ':', the quantity follows the last one
func Parse(s string) (Asset, error) {
	n := strings.LastIndex(s, ":")
	if n <= 0 {
		return Asset{}, fault.ErrInvalidAssetFormat
	}
	amount, err := strconv.ParseUint(s[n+1:], 10, 64)
	if nil != err {
		return Asset{}, fault.ErrInvalidAssetFormat
	}
	return New(s[:n], amount), nil
}

// UnmarshalJSON - convert JSON to an asset
//
// the amount may be given either as a bare number or as a string
func (a *Asset) UnmarshalJSON(data []byte) error {
	var raw struct {
		Id     string          `json:"hash_id"`
		Amount json.RawMessage `json:"amount"`
	}
	err := json.Unmarshal(data, &raw)
	if nil != err {
		return err
	}
	amount, err := ParseAmount(raw.Amount)
	if nil != err {
		return err
	}
	a.Id = raw.Id
	a.Amount = amount
	return nil
}

// ParseAmount - decode a u64 from a JSON string or number
func ParseAmount(raw json.RawMessage) (uint64, error) {
	if 0 == len(raw) {
		return 0, nil
	}
	s := string(raw)
	if '"' == raw[0] {
		err := json.Unmarshal(raw, &s)
		if nil != err {
			return 0, err
		}
	}
	value, err := strconv.ParseUint(s, 10, 64)
	if e, ok := err.(*strconv.NumError); ok && strconv.ErrRange == e.Err {
		return 0, fault.ErrValueOverflow
	} else if nil != err {
		return 0, fault.ErrInvalidAmount
	}
	return value, nil
}

// Validate - every identifier must be non-empty utf-8 within MaximumIdentifierLength bytes
func Validate(list []Asset) error {
	for _, a := range list {
		switch {
		case "" == a.Id:
			return fault.ErrEmptyAssetIdentifier
		case len(a.Id) > MaximumIdentifierLength:
			return fault.ErrIdentifierTooLong
		case !utf8.ValidString(a.Id):
			return fault.ErrInvalidIdentifier
		}
	}
	return nil
}

// Merge - combine duplicate identifiers of a list
//
// the result is sorted by identifier and omits zero quantities
func Merge(list []Asset) ([]Asset, error) {
	h := make(Holdings, len(list))
	err := h.Add(list)
	if nil != err {
		return nil, err
	}
	return h.List(), nil
}
