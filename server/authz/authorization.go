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

// Package authz provides the authorization related business logic.
package authz

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/pkg/errors"
	"github.com/verse-press/verse/server/backend"
	"github.com/verse-press/verse/server/logging"
)

var (
	// ErrUnauthenticated is returned when no user is signed in.
	ErrUnauthenticated = errors.Unauthenticated("sign in required").WithCode("ErrUnauthenticated")

	// ErrNotAdmin is returned when the user is not on the admin allow-list.
	ErrNotAdmin = errors.PermissionDenied("admin permission required").WithCode("ErrNotAdmin")
)

// IsAdmin returns whether the user is on the admin allow-list. E-mail
// addresses are compared case-insensitively.
func IsAdmin(be *backend.Backend, user *types.User) bool {
	if user == nil || user.Email == "" {
		return false
	}

	return slices.ContainsFunc(be.Config.AdminEmails, func(email string) bool {
		return strings.EqualFold(email, user.Email)
	})
}

// CheckAdmin returns an error unless the user is an administrator.
func CheckAdmin(ctx context.Context, be *backend.Backend, user *types.User) error {
	if user == nil || user.Email == "" {
		return ErrUnauthenticated
	}

	if !IsAdmin(be, user) {
		logging.From(ctx).Warnf("admin permission denied: %s", user.Email)
		return fmt.Errorf("%s: %w", user.Email, ErrNotAdmin)
	}

	return nil
}
