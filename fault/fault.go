// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError
type StateError GenericError

// common errors - keep in alphabetic order within each class
var (
	ErrForbiddenAddress = AuthorisationError("connection address is not allowed")
	ErrNotOwner         = AuthorisationError("user is not owner of this property")
	ErrNotParticipant   = AuthorisationError("operation requires participant role")
	ErrNotRegistrar     = AuthorisationError("operation requires registrar role")

	ErrAlreadyInitialised           = ExistsError("already initialised")
	ErrAlreadyRequested             = ExistsError("request already exists")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrPropertyAlreadyApproved      = ExistsError("property is already approved")
	ErrUserAlreadyExists            = ExistsError("user already exists")

	ErrInvalidChain         = InvalidError("invalid chain")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidIpAddress     = InvalidError("invalid IP address")
	ErrInvalidKey           = InvalidError("invalid composite key")
	ErrInvalidKeyComponent  = InvalidError("invalid composite key component")
	ErrInvalidNamespace     = InvalidError("invalid composite key namespace")
	ErrInvalidPoolPrefix    = InvalidError("invalid pool prefix")
	ErrInvalidPrice         = InvalidError("price cannot be negative")
	ErrInvalidStatus        = InvalidError("invalid property status")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidTransactionId = InvalidError("invalid bank transaction id")
	ErrMissingParameters    = InvalidError("missing parameters")

	ErrPropertyNotFound = NotFoundError("property not found")
	ErrRequestNotFound  = NotFoundError("request not found")
	ErrUserNotFound     = NotFoundError("user not found")

	ErrDatabaseIsNotSet    = ProcessError("database is not set")
	ErrNotAvailable        = ProcessError("not available in current mode")
	ErrNotInitialised      = ProcessError("not initialised")
	ErrRateLimiting        = ProcessError("rate limiting")
	ErrTransactionNotInUse = ProcessError("transaction is not in use")

	ErrCorruptRecord        = RecordError("corrupt record")
	ErrDanglingOwner        = RecordError("property owner record does not exist")
	ErrIncompatibleDatabase = RecordError("incompatible database version")

	ErrBalanceOverflow     = StateError("balance overflow")
	ErrInsufficientBalance = StateError("buyer does not have enough upgradCoins")
	ErrNotForSale          = StateError("property is not on sale")
	ErrSelfPurchase        = StateError("property cannot be bought by its owner")
)

// the error interface methods
func (e GenericError) Error() string       { return string(e) }
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }
func (e StateError) Error() string         { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
func IsErrState(e error) bool         { _, ok := e.(StateError); return ok }

// IsLedgerError - true for the errors the workflows raise for a
// failed precondition, as opposed to a store or process fault
func IsLedgerError(e error) bool {
	return IsErrAuthorisation(e) || IsErrExists(e) || IsErrInvalid(e) || IsErrNotFound(e) || IsErrState(e)
}
