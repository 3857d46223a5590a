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

package poems

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/pkg/errors"
	"github.com/verse-press/verse/server/backend"
	"github.com/verse-press/verse/server/backend/database"
)

// fallbackSlug is the slug of a poem whose title has no usable character.
const fallbackSlug = "poem"

// Slugify derives the slug of a title: lowercase ASCII letters and digits
// with runs of whitespace and hyphens collapsed into single hyphens.
func Slugify(title string) string {
	var sb strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingHyphen = true
		}
	}

	if sb.Len() == 0 {
		return fallbackSlug
	}
	return sb.String()
}

// uniqueSlug returns base, or base suffixed with -1, -2, ... when another
// poem already uses it. The poem of except never conflicts.
func uniqueSlug(
	ctx context.Context,
	be *backend.Backend,
	base string,
	except types.ID,
) (string, error) {
	slug := base
	for counter := 1; ; counter++ {
		var err error
		if except == "" {
			_, err = be.DB.FindPoemInfoBySlug(ctx, slug)
		} else {
			_, err = be.DB.FindPoemInfoBySlugExcept(ctx, slug, except)
		}
		if errors.Is(err, database.ErrPoemNotFound) {
			return slug, nil
		}
		if err != nil {
			return "", err
		}

		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}
