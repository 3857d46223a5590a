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

package authz_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/pkg/errors"
	"github.com/verse-press/verse/server/authz"
	"github.com/verse-press/verse/server/backend"
)

func TestCheckAdmin(t *testing.T) {
	be := &backend.Backend{Config: &backend.Config{
		AdminEmails: []string{"poet@example.com", "editor@example.com"},
	}}
	ctx := context.Background()

	t.Run("admin test", func(t *testing.T) {
		user := types.NewUser("poet@example.com")
		assert.True(t, authz.IsAdmin(be, user))
		assert.NoError(t, authz.CheckAdmin(ctx, be, user))

		assert.True(t, authz.IsAdmin(be, types.NewUser("Editor@Example.com")))
	})

	t.Run("missing user test", func(t *testing.T) {
		assert.False(t, authz.IsAdmin(be, nil))

		err := authz.CheckAdmin(ctx, be, nil)
		assert.ErrorIs(t, err, authz.ErrUnauthenticated)
		assert.True(t, errors.IsKind(err, errors.KindUnauthenticated))
	})

	t.Run("user not on the list test", func(t *testing.T) {
		user := types.NewUser("reader@example.com")
		assert.False(t, authz.IsAdmin(be, user))

		err := authz.CheckAdmin(ctx, be, user)
		assert.ErrorIs(t, err, authz.ErrNotAdmin)
		assert.True(t, errors.IsKind(err, errors.KindPermissionDenied))
	})
}
