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

// Package model provides the structured representation of rich text used by
// the editor. A Document is an ordered sequence of blocks, each holding runs
// of text that share an identical set of marks.
package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Alignment is the text alignment of a block.
type Alignment string

// Below are the alignments a block can have.
const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// Valid returns whether the alignment is one of the known values.
func (a Alignment) Valid() bool {
	switch a {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return true
	}
	return false
}

// BlockType is the type of a top-level document unit.
type BlockType int

// Below are the block types.
const (
	Paragraph BlockType = iota
	Heading
)

// String returns the string representation of the block type.
func (t BlockType) String() string {
	if t == Heading {
		return "heading"
	}
	return "paragraph"
}

// Run is a contiguous span of text sharing an identical mark set. Runs
// stored in a block never have empty text.
type Run struct {
	Text  string
	Marks Marks
}

// Len returns the length of the run in code points.
func (r Run) Len() int {
	return utf8.RuneCountInString(r.Text)
}

// Block is a paragraph or a heading.
type Block struct {
	Type  BlockType
	Level int
	Align Alignment
	Runs  []Run
}

// NewParagraph creates a left aligned paragraph with the given runs.
func NewParagraph(runs ...Run) *Block {
	b := &Block{Type: Paragraph, Align: AlignLeft, Runs: runs}
	b.normalize()
	return b
}

// NewHeading creates a left aligned heading of the given level.
func NewHeading(level int, runs ...Run) *Block {
	b := &Block{Type: Heading, Level: level, Align: AlignLeft, Runs: runs}
	b.normalize()
	return b
}

// IsHeading returns whether this block is a heading of the given level.
func (b *Block) IsHeading(level int) bool {
	return b.Type == Heading && b.Level == level
}

// Len returns the length of the block text in code points.
func (b *Block) Len() int {
	length := 0
	for _, r := range b.Runs {
		length += r.Len()
	}
	return length
}

// Text returns the concatenated text of every run.
func (b *Block) Text() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Clone returns a deep copy of this block.
func (b *Block) Clone() *Block {
	runs := make([]Run, len(b.Runs))
	for i, r := range b.Runs {
		runs[i] = Run{Text: r.Text, Marks: r.Marks.Copy()}
	}
	return &Block{Type: b.Type, Level: b.Level, Align: b.Align, Runs: runs}
}

// Equal returns whether both blocks have the same type, attributes and runs.
func (b *Block) Equal(other *Block) bool {
	if b.Type != other.Type || b.Level != other.Level || b.Align != other.Align {
		return false
	}
	if len(b.Runs) != len(other.Runs) {
		return false
	}
	for i := range b.Runs {
		if b.Runs[i].Text != other.Runs[i].Text || !b.Runs[i].Marks.Equal(other.Runs[i].Marks) {
			return false
		}
	}
	return true
}

// runIndexAt returns the index of the run containing the code point at the
// given offset and the offset where that run starts. It returns len(Runs)
// when the offset is at or past the end of the block.
func (b *Block) runIndexAt(offset int) (int, int) {
	start := 0
	for i, r := range b.Runs {
		l := r.Len()
		if offset < start+l {
			return i, start
		}
		start += l
	}
	return len(b.Runs), start
}

// split ensures a run boundary at the given offset and returns the index of
// the first run starting at or after the offset.
func (b *Block) split(offset int) int {
	i, start := b.runIndexAt(offset)
	if i == len(b.Runs) || start == offset {
		return i
	}

	r := b.Runs[i]
	head, tail := splitString(r.Text, offset-start)
	b.Runs[i] = Run{Text: head, Marks: r.Marks}
	b.Runs = append(b.Runs, Run{})
	copy(b.Runs[i+2:], b.Runs[i+1:])
	b.Runs[i+1] = Run{Text: tail, Marks: r.Marks.Copy()}
	return i + 1
}

// normalize drops empty runs and merges adjacent runs with equal marks.
func (b *Block) normalize() {
	var runs []Run
	for _, r := range b.Runs {
		if r.Text == "" {
			continue
		}
		if len(runs) > 0 && runs[len(runs)-1].Marks.Equal(r.Marks) {
			runs[len(runs)-1].Text += r.Text
			continue
		}
		runs = append(runs, r)
	}
	b.Runs = runs
}

// structureAsString returns a compact description of this block.
func (b *Block) structureAsString() string {
	var sb strings.Builder
	if b.Type == Heading {
		sb.WriteString(fmt.Sprintf("h%d", b.Level))
	} else {
		sb.WriteString("p")
	}
	if b.Align != AlignLeft {
		sb.WriteString("(" + string(b.Align) + ")")
	}
	sb.WriteString("[")
	for i, r := range b.Runs {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%q", r.Text))
		if len(r.Marks) > 0 {
			sb.WriteString(r.Marks.String())
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Document is an ordered sequence of blocks. A document always has at least
// one block.
type Document struct {
	Blocks []*Block
}

// New creates a document with the given blocks. A document without blocks
// gets a single empty paragraph.
func New(blocks ...*Block) *Document {
	doc := &Document{Blocks: blocks}
	doc.ensureBlock()
	return doc
}

// Clone returns a deep copy of this document.
func (d *Document) Clone() *Document {
	blocks := make([]*Block, len(d.Blocks))
	for i, b := range d.Blocks {
		blocks[i] = b.Clone()
	}
	return &Document{Blocks: blocks}
}

// Equal returns whether both documents hold equal blocks.
func (d *Document) Equal(other *Document) bool {
	if len(d.Blocks) != len(other.Blocks) {
		return false
	}
	for i := range d.Blocks {
		if !d.Blocks[i].Equal(other.Blocks[i]) {
			return false
		}
	}
	return true
}

// StructureAsString returns a compact description of the document for
// debugging and tests.
func (d *Document) StructureAsString() string {
	parts := make([]string, len(d.Blocks))
	for i, b := range d.Blocks {
		parts[i] = b.structureAsString()
	}
	return strings.Join(parts, "\n")
}

// Block returns the block at the given index, or nil.
func (d *Document) Block(index int) *Block {
	if index < 0 || index >= len(d.Blocks) {
		return nil
	}
	return d.Blocks[index]
}

func (d *Document) ensureBlock() {
	if len(d.Blocks) == 0 {
		d.Blocks = []*Block{NewParagraph()}
	}
}

func splitString(s string, offset int) (string, string) {
	i := 0
	for byteIndex := range s {
		if i == offset {
			return s[:byteIndex], s[byteIndex:]
		}
		i++
	}
	return s, ""
}
