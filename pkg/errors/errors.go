/*
 * Copyright 2026 The Verse Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package errors

import (
	"errors"
)

// StatusError is an error with a Kind and an optional machine readable code
// such as "ErrPoemNotFound".
type StatusError interface {
	error
	Kind() Kind
	Code() string
	WithCode(code string) StatusError
}

type statusError struct {
	err  error
	kind Kind
	code string
}

func (e statusError) Error() string {
	return e.err.Error()
}

func (e statusError) Kind() Kind {
	return e.kind
}

func (e statusError) Code() string {
	return e.code
}

func (e statusError) Unwrap() error {
	return e.err
}

// WithCode returns a copy of the error carrying the given code.
func (e statusError) WithCode(code string) StatusError {
	e.code = code
	return e
}

func newStatusError(message string, kind Kind) StatusError {
	return statusError{err: errors.New(message), kind: kind}
}

// InvalidArgument creates an error for a bad value supplied by the caller.
func InvalidArgument(message string) StatusError {
	return newStatusError(message, KindInvalidArgument)
}

// NotFound creates an error for a missing entity.
func NotFound(message string) StatusError {
	return newStatusError(message, KindNotFound)
}

// AlreadyExists creates an error for an entity that already exists.
func AlreadyExists(message string) StatusError {
	return newStatusError(message, KindAlreadyExists)
}

// PermissionDenied creates an error for a caller lacking permission.
func PermissionDenied(message string) StatusError {
	return newStatusError(message, KindPermissionDenied)
}

// FailedPrecond creates an error for an operation rejected in the current
// state.
func FailedPrecond(message string) StatusError {
	return newStatusError(message, KindFailedPrecondition)
}

// Unauthenticated creates an error for a missing caller identity.
func Unauthenticated(message string) StatusError {
	return newStatusError(message, KindUnauthenticated)
}

// Internal creates an error for an unexpected failure.
func Internal(message string) StatusError {
	return newStatusError(message, KindInternal)
}

// Unavailable creates an error for a temporarily unreachable dependency.
func Unavailable(message string) StatusError {
	return newStatusError(message, KindUnavailable)
}

// KindOf returns the kind of the first StatusError in the chain of err, or
// zero if there is none.
func KindOf(err error) Kind {
	var statusErr StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Kind()
	}
	return 0
}

// CodeOf returns the code of the first StatusError in the chain of err.
func CodeOf(err error) string {
	var statusErr StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code()
	}
	return ""
}

// IsKind returns whether err is of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error without a kind.
func New(message string) error {
	return errors.New(message)
}
