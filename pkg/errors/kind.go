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

// Package errors provides errors that carry a status kind, so callers at the
// edge (CLI, page handlers) can tell client mistakes from server failures
// without matching on messages.
package errors

import "fmt"

// Kind classifies an error by who is responsible for it.
type Kind int

const (
	// KindInvalidArgument means the caller supplied a bad value.
	KindInvalidArgument Kind = iota + 1

	// KindNotFound means the requested entity does not exist.
	KindNotFound

	// KindAlreadyExists means the entity to create already exists.
	KindAlreadyExists

	// KindPermissionDenied means the caller is known but not allowed.
	KindPermissionDenied

	// KindFailedPrecondition means the system is not in the state the
	// operation requires.
	KindFailedPrecondition

	// KindUnauthenticated means there is no caller identity.
	KindUnauthenticated

	// KindInternal means an invariant of the system was broken.
	KindInternal

	// KindUnavailable means a dependency is temporarily unreachable and the
	// operation can be retried.
	KindUnavailable
)

// String returns the snake case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindPermissionDenied:
		return "permission_denied"
	case KindFailedPrecondition:
		return "failed_precondition"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindInternal:
		return "internal"
	case KindUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("kind_%d", int(k))
	}
}

// IsClientError returns whether the kind is caused by the caller.
func (k Kind) IsClientError() bool {
	switch k {
	case KindInvalidArgument, KindNotFound, KindAlreadyExists,
		KindPermissionDenied, KindFailedPrecondition, KindUnauthenticated:
		return true
	default:
		return false
	}
}

// IsServerError returns whether the kind is caused by the system.
func (k Kind) IsServerError() bool {
	return k == KindInternal || k == KindUnavailable
}
