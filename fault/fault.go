// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrAssetListTooLong          = LengthError("asset list too long")
	ErrCannotDecodeAccount       = RecordError("cannot decode account")
	ErrCannotDecodePrivateKey    = RecordError("cannot decode private key")
	ErrChecksumMismatch          = ProcessError("checksum mismatch")
	ErrConfigurationNotTable     = InvalidError("configuration must return a table")
	ErrDatabaseIsNotSet          = ProcessError("database is not set")
	ErrDuplicateTransactionInput = ExistsError("duplicate transaction input")
	ErrEmptyAssetIdentifier      = InvalidError("empty asset identifier")
	ErrIdentifierTooLong         = LengthError("asset identifier too long")
	ErrInboxIsDoneDirectory      = InvalidError("inbox and done directories must differ")
	ErrIncompatibleDatabase      = ProcessError("incompatible database version")
	ErrInsufficientAssets        = InvalidError("insufficient assets")
	ErrInsufficientBalance       = InvalidError("insufficient balance")
	ErrInvalidAmount             = InvalidError("invalid amount")
	ErrInvalidAssetFormat        = InvalidError("asset must be ID:QUANTITY")
	ErrInvalidCount              = InvalidError("invalid count")
	ErrInvalidCursor             = InvalidError("invalid cursor")
	ErrInvalidIdentifier         = InvalidError("asset identifier is not valid utf-8")
	ErrInvalidKeyLength          = LengthError("invalid key length")
	ErrInvalidKeyType            = InvalidError("invalid key type")
	ErrInvalidOutcome            = InvalidError("invalid outcome")
	ErrInvalidOwner              = InvalidError("invalid owner")
	ErrInvalidSignature          = InvalidError("invalid signature")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists      = ExistsError("key file already exists")
	ErrNotAPrivateKey            = InvalidError("not a private key")
	ErrNotAPublicKey             = InvalidError("not a public key")
	ErrNotADirectory             = InvalidError("not a directory")
	ErrNotLink                   = RecordError("not a link")
	ErrNotTransactionPack        = RecordError("not transaction pack")
	ErrNotWalletPack             = RecordError("not wallet pack")
	ErrServiceIdMismatch         = InvalidError("service id mismatch")
	ErrStatusNotFound            = NotFoundError("status not found")
	ErrTransactionAlreadyInUse   = ExistsError("transaction already in use")
	ErrTransactionIsNotInUse     = NotFoundError("transaction is not in use")
	ErrTransactionNotFound       = NotFoundError("transaction not found")
	ErrUnknownTransactionType    = InvalidError("unknown transaction type")
	ErrValueOverflow             = InvalidError("value overflow")
	ErrWalletNotFound            = NotFoundError("wallet not found")
	ErrWrongNetworkForPublicKey  = InvalidError("wrong network for public key")
	ErrWrongNetworkId            = InvalidError("wrong network id")
	ErrWrongProtocolVersion      = InvalidError("wrong protocol version")
	ErrWrongSegment              = RecordError("segment outside message")
	ErrWrongTransactionLength    = LengthError("wrong transaction length")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
