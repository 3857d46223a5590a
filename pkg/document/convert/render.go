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

package convert

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/verse-press/verse/pkg/document/model"
)

// linkRel is the rel attribute of every rendered link.
const linkRel = "noopener noreferrer nofollow"

// RenderHTML renders the document as the markup of the editing surface.
// Marks shared by adjacent runs are kept open across them.
func RenderHTML(doc *model.Document) string {
	var sb strings.Builder
	for _, b := range doc.Blocks {
		tag := blockTag(b)
		sb.WriteString("<" + tag)
		if b.Align != model.AlignLeft && b.Align.Valid() {
			sb.WriteString(fmt.Sprintf(` style="text-align: %s"`, b.Align))
		}
		sb.WriteString(">")
		renderRuns(&sb, b.Runs)
		sb.WriteString("</" + tag + ">")
	}
	return sb.String()
}

func blockTag(b *model.Block) string {
	if b.Type == model.Heading {
		return fmt.Sprintf("h%d", min(max(b.Level, 1), 6))
	}
	return "p"
}

func renderRuns(sb *strings.Builder, runs []model.Run) {
	var open model.Marks
	for _, r := range runs {
		common := 0
		for common < len(open) && common < len(r.Marks) && open[common] == r.Marks[common] {
			common++
		}
		for i := len(open) - 1; i >= common; i-- {
			sb.WriteString(closeTag(open[i]))
		}
		for i := common; i < len(r.Marks); i++ {
			sb.WriteString(openTag(r.Marks[i]))
		}
		open = r.Marks
		sb.WriteString(html.EscapeString(r.Text))
	}
	for i := len(open) - 1; i >= 0; i-- {
		sb.WriteString(closeTag(open[i]))
	}
}

func openTag(m model.Mark) string {
	switch m.Type {
	case model.Bold:
		return "<strong>"
	case model.Italic:
		return "<em>"
	case model.Underline:
		return "<u>"
	case model.Link:
		var sb strings.Builder
		sb.WriteString("<a")
		if m.Target != "" {
			sb.WriteString(` target="` + html.EscapeString(m.Target) + `"`)
		}
		sb.WriteString(` rel="` + linkRel + `"`)
		sb.WriteString(` href="` + html.EscapeString(m.Href) + `">`)
		return sb.String()
	default:
		return ""
	}
}

func closeTag(m model.Mark) string {
	switch m.Type {
	case model.Bold:
		return "</strong>"
	case model.Italic:
		return "</em>"
	case model.Underline:
		return "</u>"
	case model.Link:
		return "</a>"
	default:
		return ""
	}
}
