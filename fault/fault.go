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
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// registry errors - keep in alphabetic order
var (
	AssetMissing             = NotFoundError("asset does not exist")
	DuplicateEntry           = ExistsError("duplicate entry")
	ForbiddenAction          = PermissionError("forbidden action")
	InsufficientPermissions  = PermissionError("insufficient permissions")
	InvalidMetadataStructure = InvalidError("invalid metadata structure")
	NameInvalid              = InvalidError("name is invalid")
	OwnershipMismatch        = PermissionError("caller is not the owner")
	SizeConstraintViolation  = InvalidError("size constraint violation")
	UnauthorizedOperation    = PermissionError("unauthorized operation")
)

// infrastructure errors - keep in alphabetic order
var (
	AlreadyInitialised    = ExistsError("already initialised")
	DatabaseIsReadOnly    = ProcessError("database is read only")
	DatabaseVersionTooNew = InvalidError("database version is newer than supported")
	InvalidCount          = InvalidError("invalid count")
	InvalidCursor         = InvalidError("invalid cursor")
	InvalidDataDirectory  = InvalidError("invalid data directory")
	InvalidPrefix         = InvalidError("invalid pool prefix")
	InvalidStructPointer  = InvalidError("invalid struct pointer")
	MissingAdministrator  = InvalidError("administrator identity is required")
	NotInitialised        = NotFoundError("not initialised")
	RecordCorrupt         = ProcessError("stored record is corrupt")
	TransactionInUse      = ProcessError("transaction already in use")
	TransactionNotInUse   = ProcessError("transaction not in use")
	UnversionedDatabase   = InvalidError("database has no version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
