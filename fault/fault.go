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
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrBalanceFactor           = InvalidError("balance factor out of range")
	ErrConfigFileExists        = ExistsError("configuration file already exists")
	ErrConfigurationNotTable   = InvalidError("configuration did not return a table")
	ErrCountMismatch           = InvalidError("element count does not match tree")
	ErrHeightMismatch          = InvalidError("stored height does not match subtree")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrInvalidValue            = InvalidError("invalid value")
	ErrMissingConfigFile       = NotFoundError("configuration file is required")
	ErrModifiedDuringIteration = ProcessError("set modified during iteration")
	ErrNoSuchInput             = NotFoundError("input file not found")
	ErrOrderViolation          = InvalidError("values out of order")
	ErrParityMismatch          = ProcessError("set differs from reference")
	ErrRotationMissingChild    = ProcessError("rotation without required child")
	ErrUnbalanced              = InvalidError("subtree heights differ by more than one")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
