// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - ledger transaction records
//
// every record is a fixed layout message:
//
//   header    10 bytes
//     [0]      network id
//     [1]      protocol version
//     [2:4]    message id     (little endian u16, selects the record type)
//     [4:6]    service id     (little endian u16)
//     [6:10]   payload length (little endian u32, whole message with signature)
//   body      fixed offsets per record type
//   heap      variable length data referenced from the body
//   signature 64 bytes, ed25519 over all preceding bytes
//
// variable length fields (asset lists and their identifiers) are
// stored in the body as a segment: u32 absolute offset followed by
// u32 element count
//
// an asset list element is 16 bytes: identifier segment [0:8],
// amount [8:16]
package transactionrecord
