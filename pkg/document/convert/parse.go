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
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/verse-press/verse/pkg/document/model"
	"github.com/verse-press/verse/pkg/errors"
)

var (
	// ErrMalformedMarkup is returned when markup can not be read into a
	// document.
	ErrMalformedMarkup = errors.InvalidArgument("malformed markup").WithCode("ErrMalformedMarkup")
)

// lineBreaks turns line breaks into spaces; text inside a block has none.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// inline is an inline element open while parsing. mark is nil for elements
// without formatting, such as span.
type inline struct {
	tag  string
	mark *model.Mark
}

// pending is the block being parsed. Implicit blocks are opened by inline
// content found outside of any block.
type pending struct {
	tag      string
	heading  bool
	align    model.Alignment
	runs     []model.Run
	implicit bool
}

type parser struct {
	blocks []*model.Block
	block  *pending
	stack  []inline
}

// ParseHTML reads markup produced by RenderHTML, or written by hand in the
// same vocabulary, into a document. b and i are read as strong and em, and
// every heading level is read as a level 1 heading. Unknown elements are
// skipped but their text is kept. Markup with unclosed, mismatched or nested
// blocks is rejected with ErrMalformedMarkup.
func ParseHTML(markup string) (*model.Document, error) {
	p := &parser{}
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		var err error
		switch tt {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				return nil, fmt.Errorf("tokenize markup: %w", z.Err())
			}
			if err := p.finish(); err != nil {
				return nil, err
			}
			return model.New(p.blocks...), nil
		case html.TextToken:
			err = p.text(string(z.Text()))
		case html.StartTagToken, html.SelfClosingTagToken:
			tag, hasAttr := z.TagName()
			attrs := make(map[string]string)
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				attrs[string(key)] = string(val)
			}
			err = p.start(string(tag), attrs, tt == html.SelfClosingTagToken)
		case html.EndTagToken:
			tag, _ := z.TagName()
			err = p.end(string(tag))
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) start(tag string, attrs map[string]string, selfClosing bool) error {
	switch {
	case isContainer(tag):
		return nil
	case isBlock(tag):
		if p.block != nil {
			if !p.block.implicit {
				return fmt.Errorf("<%s> inside <%s>: %w", tag, p.block.tag, ErrMalformedMarkup)
			}
			if err := p.closeBlock(); err != nil {
				return err
			}
		}
		p.block = &pending{
			tag:     tag,
			heading: tag != "p",
			align:   alignOf(attrs["style"]),
		}
		return nil
	case tag == "br":
		if p.block == nil {
			return nil
		}
		p.flushLine()
		return nil
	case selfClosing || isVoid(tag):
		return nil
	}

	if p.block == nil {
		p.block = &pending{tag: "p", align: model.AlignLeft, implicit: true}
	}
	p.stack = append(p.stack, inline{tag: tag, mark: markOf(tag, attrs)})
	return nil
}

func (p *parser) end(tag string) error {
	switch {
	case isContainer(tag), isVoid(tag):
		return nil
	case isBlock(tag):
		if p.block == nil || p.block.implicit || p.block.tag != tag {
			return fmt.Errorf("unexpected </%s>: %w", tag, ErrMalformedMarkup)
		}
		return p.closeBlock()
	}

	if len(p.stack) == 0 || p.stack[len(p.stack)-1].tag != tag {
		return fmt.Errorf("unexpected </%s>: %w", tag, ErrMalformedMarkup)
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

func (p *parser) text(text string) error {
	if p.block == nil {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		p.block = &pending{tag: "p", align: model.AlignLeft, implicit: true}
	}

	text = lineBreaks.Replace(text)
	var marks []model.Mark
	for _, in := range p.stack {
		if in.mark != nil {
			marks = append(marks, *in.mark)
		}
	}
	p.block.runs = append(p.block.runs, model.Run{Text: text, Marks: model.NewMarks(marks...)})
	return nil
}

// flushLine ends the current block at a line break and continues with a
// block of the same kind.
func (p *parser) flushLine() {
	p.blocks = append(p.blocks, p.block.build())
	p.block = &pending{
		tag:      p.block.tag,
		heading:  p.block.heading,
		align:    p.block.align,
		implicit: p.block.implicit,
	}
}

func (p *parser) closeBlock() error {
	if len(p.stack) > 0 {
		return fmt.Errorf("unclosed <%s> in <%s>: %w", p.stack[len(p.stack)-1].tag, p.block.tag, ErrMalformedMarkup)
	}
	p.blocks = append(p.blocks, p.block.build())
	p.block = nil
	return nil
}

func (p *parser) finish() error {
	if p.block == nil {
		if len(p.stack) > 0 {
			return fmt.Errorf("unclosed <%s>: %w", p.stack[len(p.stack)-1].tag, ErrMalformedMarkup)
		}
		return nil
	}
	if !p.block.implicit {
		return fmt.Errorf("unclosed <%s>: %w", p.block.tag, ErrMalformedMarkup)
	}
	return p.closeBlock()
}

func (b *pending) build() *model.Block {
	var block *model.Block
	if b.heading {
		block = model.NewHeading(1, b.runs...)
	} else {
		block = model.NewParagraph(b.runs...)
	}
	block.Align = b.align
	return block
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

func isContainer(tag string) bool {
	switch tag {
	case "html", "head", "body", "div":
		return true
	}
	return false
}

func isVoid(tag string) bool {
	switch tag {
	case "img", "hr", "input", "meta", "link", "wbr":
		return true
	}
	return false
}

func markOf(tag string, attrs map[string]string) *model.Mark {
	var m model.Mark
	switch tag {
	case "strong", "b":
		m = model.Mark{Type: model.Bold}
	case "em", "i":
		m = model.Mark{Type: model.Italic}
	case "u":
		m = model.Mark{Type: model.Underline}
	case "a":
		m = model.Mark{Type: model.Link, Href: attrs["href"], Target: attrs["target"]}
	default:
		return nil
	}
	if !m.Valid() {
		return nil
	}
	return &m
}

// alignOf reads the text-align declaration of a style attribute.
func alignOf(style string) model.Alignment {
	for _, decl := range strings.Split(style, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok || strings.TrimSpace(strings.ToLower(key)) != "text-align" {
			continue
		}
		if align := model.Alignment(strings.TrimSpace(strings.ToLower(val))); align.Valid() {
			return align
		}
	}
	return model.AlignLeft
}

// LoadMarkup reads markup into a document. It never fails: markup that can
// not be parsed is loaded as a single unmarked paragraph holding the whole
// input.
func LoadMarkup(markup string) *model.Document {
	doc, err := ParseHTML(markup)
	if err == nil {
		return doc
	}

	return model.New(model.NewParagraph(model.Run{Text: lineBreaks.Replace(markup)}))
}
