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
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/verse-press/verse/api/types"
	"github.com/verse-press/verse/internal/validation"
	"github.com/verse-press/verse/pkg/document/convert"
	"github.com/verse-press/verse/pkg/errors"
	"github.com/verse-press/verse/server/authz"
	"github.com/verse-press/verse/server/backend"
	"github.com/verse-press/verse/server/backend/database"
	"github.com/verse-press/verse/server/logging"
	"github.com/verse-press/verse/server/users"
)

var (
	// markupTag matches the block and line break tags of exported markup.
	markupTag = regexp.MustCompile(`(?i)<(p|h[1-6]|br)\b`)
)

var (
	// ErrInvalidExport is returned when an export cannot be decoded.
	ErrInvalidExport = errors.InvalidArgument("invalid export").WithCode("ErrInvalidExport")
)

// DecodeExport decodes an exported poem, or a list of them.
func DecodeExport(data []byte) ([]*types.Poem, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var poems []*types.Poem
		if err := json.Unmarshal(data, &poems); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidExport, err)
		}
		return poems, nil
	}

	poem := &types.Poem{}
	if err := json.Unmarshal(data, poem); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExport, err)
	}
	return []*types.Poem{poem}, nil
}

// Import stores exported poems, oldest first, keeping their timestamps.
// Content exported as markup is converted to plain text. Exported slugs are
// kept when valid and free; otherwise a slug is generated from the title.
func Import(
	ctx context.Context,
	be *backend.Backend,
	exports []*types.Poem,
) (imported []*types.Poem, err error) {
	defer func() { be.Metrics.AddImportedPoems(len(imported)) }()

	if err := authz.CheckAdmin(ctx, be, users.From(ctx)); err != nil {
		return nil, err
	}

	sorted := make([]*types.Poem, len(exports))
	copy(sorted, exports)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	for _, export := range sorted {
		poem, err := importPoem(ctx, be, export)
		if err != nil {
			return imported, errors.WithMetadata(err, map[string]string{
				"title": export.Title,
				"slug":  export.Slug,
			})
		}
		imported = append(imported, poem)
	}

	logging.From(ctx).Infof("poems imported: %d", len(imported))
	return imported, nil
}

func importPoem(
	ctx context.Context,
	be *backend.Backend,
	export *types.Poem,
) (*types.Poem, error) {
	fields := &types.PoemFields{
		Title:     export.Title,
		Content:   normalizeContent(be, export.Content),
		HasTitle:  export.HasTitle,
		IsDraft:   export.IsDraft,
		ImageLink: export.ImageLink,
	}
	if err := fields.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPoem, err)
	}

	base := export.Slug
	if validation.ValidateValue(base, "slug") != nil {
		base = Slugify(export.Title)
	}
	slug, err := uniqueSlug(ctx, be, base, "")
	if err != nil {
		return nil, err
	}

	info := database.NewPoemInfo(slug, fields)
	if !export.CreatedAt.IsZero() {
		info.CreatedAt = export.CreatedAt
		info.UpdatedAt = export.CreatedAt
	}
	if export.UpdatedAt.After(info.CreatedAt) {
		info.UpdatedAt = export.UpdatedAt
	}

	info, err = be.DB.ImportPoemInfo(ctx, info)
	if err != nil {
		return nil, err
	}
	return info.ToPoem(), nil
}

// normalizeContent converts content exported as markup to plain text.
func normalizeContent(be *backend.Backend, content string) string {
	if !looksLikeMarkup(content) {
		return content
	}

	doc, err := convert.ParseHTML(content)
	if err != nil {
		be.Metrics.AddMarkupFallback()
		return convert.MarkupToPlainText(content)
	}
	return convert.SaveToPlainText(doc)
}

func looksLikeMarkup(content string) bool {
	return strings.Contains(content, "</") || markupTag.MatchString(content)
}
