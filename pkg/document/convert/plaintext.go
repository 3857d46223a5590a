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

// Package convert converts documents to and from the plain text poems are
// stored as, and to and from the markup the editing surface exchanges.
package convert

import (
	"strings"

	"github.com/verse-press/verse/pkg/document/model"
)

// LoadFromPlainText builds a document with one unmarked paragraph per line
// of text. Lines that are blank after trimming are dropped. A text without
// any line gives a document with one empty paragraph.
func LoadFromPlainText(text string) *model.Document {
	var blocks []*model.Block
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		blocks = append(blocks, model.NewParagraph(model.Run{Text: line}))
	}
	return model.New(blocks...)
}

// SaveToPlainText returns the text of every paragraph of the document, one
// per line. Marks are discarded and blank lines dropped. When no paragraph
// has text, the rendered markup of the document is stripped instead.
func SaveToPlainText(doc *model.Document) string {
	var lines []string
	for _, b := range doc.Blocks {
		if b.Type == model.Paragraph {
			lines = append(lines, b.Text())
		}
	}
	if text := joinLines(lines); text != "" {
		return text
	}
	return StripMarkup(RenderHTML(doc))
}
