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

// Package caret computes where the selection anchor of an editing session
// is drawn, so floating UI such as the link popover can be placed next to it.
package caret

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/verse-press/verse/pkg/document/model"
)

// Point is a coordinate in pixels.
type Point struct {
	X int
	Y int
}

// Add returns the sum of the two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p minus q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Layout maps a document position to the top-left corner of the caret in
// document space.
type Layout interface {
	CoordsAtPos(doc *model.Document, pos model.Pos) Point
}

// GridLayout lays text out on a grid of fixed size cells, wrapping lines at
// Columns cells. Wide characters take two cells and a grapheme cluster is
// never split across lines.
type GridLayout struct {
	CellWidth  int
	CellHeight int

	// Columns is the wrap width in cells. Zero or less disables wrapping.
	Columns int

	// HeadingScale multiplies the cell size inside headings.
	HeadingScale int

	// BlockMargin is the vertical space between two blocks.
	BlockMargin int
}

// NewGridLayout creates a GridLayout with the defaults of the editing
// surface.
func NewGridLayout() *GridLayout {
	return &GridLayout{
		CellWidth:    8,
		CellHeight:   16,
		Columns:      80,
		HeadingScale: 2,
		BlockMargin:  8,
	}
}

// SetWidth updates the wrap width from a viewport width in pixels.
func (l *GridLayout) SetWidth(width int) {
	if l.CellWidth <= 0 {
		return
	}
	l.Columns = width / l.CellWidth
}

// line is a visual line of a block. start and end are code point offsets.
type line struct {
	start int
	end   int
	width int
}

// cluster is a grapheme cluster of a block's text.
type cluster struct {
	start int
	end   int
	width int
}

// CoordsAtPos returns the caret coordinate of pos. Out of range positions
// are clamped to the document.
func (l *GridLayout) CoordsAtPos(doc *model.Document, pos model.Pos) Point {
	pos = doc.Clamp(pos)

	y := 0
	for i := 0; i < pos.Block; i++ {
		y += l.blockHeight(doc.Blocks[i]) + l.BlockMargin
	}

	b := doc.Blocks[pos.Block]
	scale := l.scale(b)
	clusters := clustersOf(b.Text())
	lines := l.wrap(clusters, l.columns(b))

	idx := len(lines) - 1
	for i, ln := range lines {
		if pos.Offset < ln.end {
			idx = i
			break
		}
	}
	ln := lines[idx]

	cells := 0
	for _, c := range clusters {
		if c.start >= ln.start && c.end <= pos.Offset {
			cells += c.width
		}
	}

	x := l.indent(b, ln.width) + cells*l.CellWidth*scale
	return Point{X: x, Y: y + idx*l.CellHeight*scale}
}

func (l *GridLayout) scale(b *model.Block) int {
	if b.Type == model.Heading && l.HeadingScale > 1 {
		return l.HeadingScale
	}
	return 1
}

func (l *GridLayout) columns(b *model.Block) int {
	if l.Columns <= 0 {
		return 0
	}
	return max(l.Columns/l.scale(b), 1)
}

func (l *GridLayout) blockHeight(b *model.Block) int {
	lines := l.wrap(clustersOf(b.Text()), l.columns(b))
	return len(lines) * l.CellHeight * l.scale(b)
}

// indent returns the horizontal offset of a line of the given width in
// cells. Justified lines are stretched to both edges, so their caret
// positions start at the left edge like left aligned lines.
func (l *GridLayout) indent(b *model.Block, width int) int {
	columns := l.columns(b)
	if columns == 0 {
		return 0
	}

	free := (columns - width) * l.CellWidth * l.scale(b)
	switch b.Align {
	case model.AlignCenter:
		return free / 2
	case model.AlignRight:
		return free
	default:
		return 0
	}
}

// wrap breaks clusters into lines of at most columns cells. An empty block
// still has one line.
func (l *GridLayout) wrap(clusters []cluster, columns int) []line {
	cur := line{}
	var lines []line
	for _, c := range clusters {
		if columns > 0 && cur.width > 0 && cur.width+c.width > columns {
			lines = append(lines, cur)
			cur = line{start: c.start, end: c.start}
		}
		cur.end = c.end
		cur.width += c.width
	}
	return append(lines, cur)
}

func clustersOf(text string) []cluster {
	var clusters []cluster
	offset := 0
	state := -1
	var c string
	for text != "" {
		c, text, _, state = uniseg.StepString(text, state)
		n := len([]rune(c))
		clusters = append(clusters, cluster{
			start: offset,
			end:   offset + n,
			width: runewidth.StringWidth(c),
		})
		offset += n
	}
	return clusters
}
