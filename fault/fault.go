// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrAssetAlreadyExists      = ExistsError("asset already exists")
	ErrAssetNotFound           = NotFoundError("asset does not exist")
	ErrCertificateFileExists   = ExistsError("certificate file already exists")
	ErrCertificateMismatch     = InvalidError("certificate fingerprint mismatch")
	ErrDecodeFailed            = RecordError("failed to decode asset")
	ErrIncompatibleDatabase    = InvalidError("incompatible database version")
	ErrInvalidAsset            = InvalidError("invalid asset")
	ErrInvalidAssetID          = InvalidError("invalid asset id")
	ErrInvalidBookmark         = InvalidError("invalid bookmark")
	ErrInvalidCompositeKey     = InvalidError("invalid composite key")
	ErrInvalidConfiguration    = InvalidError("invalid configuration")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidFingerprint      = InvalidError("invalid fingerprint")
	ErrInvalidIPAddress        = InvalidError("invalid IP address")
	ErrInvalidKey              = InvalidError("invalid key")
	ErrInvalidQuery            = InvalidError("invalid query")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrKeyFileExists           = ExistsError("key file already exists")
	ErrLedgerUnavailable       = ProcessError("ledger unavailable")
	ErrMissingParameters       = InvalidError("missing parameters")
	ErrNoMoreResults           = NotFoundError("no more results")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrNotPlainName            = InvalidError("not a plain file name")
	ErrRateLimiting            = InvalidError("rate limiting")
	ErrTransactionAlreadyEnded = ProcessError("transaction already ended")
	ErrTruncatedData           = RecordError("truncated data")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
func IsErrRecord(e error) bool   { var x RecordError; return errors.As(e, &x) }
