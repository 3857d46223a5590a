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
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	blockBoundary   = regexp.MustCompile(`(?i)</(p|h[1-6])>\s*<(p|h[1-6])(\s[^>]*)?>`)
	blockTagPattern = regexp.MustCompile(`(?i)</?(p|h[1-6])(\s[^>]*)?>`)
	lineBreakTag    = regexp.MustCompile(`(?i)<br\s*/?>`)
	anyTag          = regexp.MustCompile(`<[^>]*>`)
)

// StripMarkup turns markup into plain text by pattern: block boundaries and
// line breaks become newlines, remaining tags are removed and entities are
// decoded. Blank lines are dropped.
func StripMarkup(markup string) string {
	text := blockBoundary.ReplaceAllString(markup, "\n")
	text = blockTagPattern.ReplaceAllString(text, "")
	text = lineBreakTag.ReplaceAllString(text, "\n")
	text = anyTag.ReplaceAllString(text, "")
	return joinLines(strings.Split(html.UnescapeString(text), "\n"))
}

// MarkupToPlainText returns the text content of every paragraph element of
// the markup, one per line, dropping blank ones. Markup without such text is
// stripped by pattern instead.
func MarkupToPlainText(markup string) string {
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return StripMarkup(markup)
	}

	var lines []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.P {
			lines = append(lines, textContent(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if text := joinLines(lines); text != "" {
		return text
	}
	return StripMarkup(markup)
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}

// joinLines joins the lines that are not blank after trimming.
func joinLines(lines []string) string {
	var kept []string
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
