// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/assetledger/fault"
)

// Status - terminal outcome recorded for a transaction hash
type Status byte

// possible outcomes
const (
	StatusNone    = Status(iota)
	StatusSuccess = Status(iota)
	StatusFail    = Status(iota)
)

// StatusFromByte - decode a stored status
func StatusFromByte(b byte) (Status, error) {
	status := Status(b)
	switch status {
	case StatusSuccess, StatusFail:
		return status, nil
	default:
		return StatusNone, fault.ErrStatusNotFound
	}
}

// String - status as text
func (status Status) String() string {
	switch status {
	case StatusSuccess:
		return "Success"
	case StatusFail:
		return "Fail"
	default:
		return "None"
	}
}

// MarshalText - convert status to text
func (status Status) MarshalText() ([]byte, error) {
	return []byte(status.String()), nil
}

// UnmarshalText - convert text to status
func (status *Status) UnmarshalText(s []byte) error {
	switch string(s) {
	case "Success":
		*status = StatusSuccess
	case "Fail":
		*status = StatusFail
	case "None":
		*status = StatusNone
	default:
		return fault.ErrStatusNotFound
	}
	return nil
}
