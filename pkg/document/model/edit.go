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

package model

import (
	"strings"
	"unicode/utf8"
)

// eachBlockRange calls fn with every block touched by the range and the
// offsets of the range inside that block. from must not be after to.
func (d *Document) eachBlockRange(from, to Pos, fn func(b *Block, start, end int)) {
	for i := from.Block; i <= to.Block && i < len(d.Blocks); i++ {
		b := d.Blocks[i]
		start, end := 0, b.Len()
		if i == from.Block {
			start = from.Offset
		}
		if i == to.Block {
			end = to.Offset
		}
		fn(b, start, end)
	}
}

// AddMark adds the mark to every run between from and to. Runs are split at
// the range boundaries.
func (d *Document) AddMark(from, to Pos, mark Mark) {
	if !mark.Valid() {
		return
	}
	d.eachBlockRange(from, to, func(b *Block, start, end int) {
		if start >= end {
			return
		}
		i := b.split(start)
		j := b.split(end)
		for k := i; k < j; k++ {
			b.Runs[k].Marks = b.Runs[k].Marks.Add(mark)
		}
		b.normalize()
	})
}

// RemoveMark removes marks of the given type between from and to. It
// returns whether anything was removed.
func (d *Document) RemoveMark(from, to Pos, t MarkType) bool {
	removed := false
	d.eachBlockRange(from, to, func(b *Block, start, end int) {
		if start >= end {
			return
		}
		i := b.split(start)
		j := b.split(end)
		for k := i; k < j; k++ {
			if b.Runs[k].Marks.Has(t) {
				b.Runs[k].Marks = b.Runs[k].Marks.Remove(t)
				removed = true
			}
		}
		b.normalize()
	})
	return removed
}

// RangeHasMark returns whether every code point between from and to carries
// a mark of the given type. An empty range has no marks.
func (d *Document) RangeHasMark(from, to Pos, t MarkType) bool {
	covered, total := 0, 0
	d.eachBlockRange(from, to, func(b *Block, start, end int) {
		runStart := 0
		for _, r := range b.Runs {
			runEnd := runStart + r.Len()
			lo, hi := max(start, runStart), min(end, runEnd)
			if lo < hi {
				total += hi - lo
				if r.Marks.Has(t) {
					covered += hi - lo
				}
			}
			runStart = runEnd
		}
	})
	return total > 0 && covered == total
}

// MarksInRange returns the marks of type t found between from and to, in
// document order.
func (d *Document) MarksInRange(from, to Pos, t MarkType) []Mark {
	var marks []Mark
	d.eachBlockRange(from, to, func(b *Block, start, end int) {
		runStart := 0
		for _, r := range b.Runs {
			runEnd := runStart + r.Len()
			if max(start, runStart) < min(end, runEnd) {
				if m, ok := r.Marks.Find(t); ok {
					marks = append(marks, m)
				}
			}
			runStart = runEnd
		}
	})
	return marks
}

// MarksAt returns the marks a caret at the given position sits in: the marks
// of the text before it, or of the text after it at the start of a block.
func (d *Document) MarksAt(pos Pos) Marks {
	b := d.Block(pos.Block)
	if b == nil || len(b.Runs) == 0 {
		return nil
	}
	if pos.Offset <= 0 {
		return b.Runs[0].Marks.Copy()
	}
	i, _ := b.runIndexAt(pos.Offset - 1)
	if i == len(b.Runs) {
		return b.Runs[len(b.Runs)-1].Marks.Copy()
	}
	return b.Runs[i].Marks.Copy()
}

// RunBefore returns the run holding the code point just before the given
// position.
func (d *Document) RunBefore(pos Pos) (Run, bool) {
	b := d.Block(pos.Block)
	if b == nil || pos.Offset <= 0 || pos.Offset > b.Len() {
		return Run{}, false
	}
	i, _ := b.runIndexAt(pos.Offset - 1)
	return b.Runs[i], true
}

// MarkExtent returns the full contiguous range covered by the mark of the
// given type around the position. The run after the position is preferred
// and the run before is used when the run after does not carry the mark.
func (d *Document) MarkExtent(pos Pos, t MarkType) (Pos, Pos, bool) {
	b := d.Block(pos.Block)
	if b == nil || len(b.Runs) == 0 {
		return Pos{}, Pos{}, false
	}

	idx := -1
	if after, _ := b.runIndexAt(pos.Offset); after < len(b.Runs) && b.Runs[after].Marks.Has(t) {
		idx = after
	} else if pos.Offset > 0 {
		if before, _ := b.runIndexAt(pos.Offset - 1); before < len(b.Runs) && b.Runs[before].Marks.Has(t) {
			idx = before
		}
	}
	if idx < 0 {
		return Pos{}, Pos{}, false
	}

	mark, _ := b.Runs[idx].Marks.Find(t)
	first, last := idx, idx
	for first > 0 {
		m, ok := b.Runs[first-1].Marks.Find(t)
		if !ok || m != mark {
			break
		}
		first--
	}
	for last < len(b.Runs)-1 {
		m, ok := b.Runs[last+1].Marks.Find(t)
		if !ok || m != mark {
			break
		}
		last++
	}

	start := 0
	for i := 0; i < first; i++ {
		start += b.Runs[i].Len()
	}
	end := start
	for i := first; i <= last; i++ {
		end += b.Runs[i].Len()
	}
	return Pos{Block: pos.Block, Offset: start}, Pos{Block: pos.Block, Offset: end}, true
}

// InsertText inserts text carrying the given marks at the position and
// returns the position right after the inserted text. The text must not
// contain line breaks; use SplitBlock for those.
func (d *Document) InsertText(pos Pos, text string, marks Marks) Pos {
	b := d.Block(pos.Block)
	if b == nil || text == "" {
		return pos
	}
	text = strings.ReplaceAll(text, "\n", " ")

	i := b.split(pos.Offset)
	b.Runs = append(b.Runs, Run{})
	copy(b.Runs[i+1:], b.Runs[i:])
	b.Runs[i] = Run{Text: text, Marks: NewMarks(marks...)}
	b.normalize()

	return Pos{Block: pos.Block, Offset: pos.Offset + utf8.RuneCountInString(text)}
}

// DeleteRange removes the content between from and to. When the range spans
// several blocks, the first and the last block are joined and the joined
// block keeps the type of the first one.
func (d *Document) DeleteRange(from, to Pos) {
	if from.Compare(to) >= 0 {
		return
	}

	first := d.Blocks[from.Block]
	if from.Block == to.Block {
		i := first.split(from.Offset)
		j := first.split(to.Offset)
		first.Runs = append(first.Runs[:i], first.Runs[j:]...)
		first.normalize()
		return
	}

	last := d.Blocks[to.Block]
	i := first.split(from.Offset)
	j := last.split(to.Offset)
	first.Runs = append(first.Runs[:i], last.Runs[j:]...)
	first.normalize()

	d.Blocks = append(d.Blocks[:from.Block+1], d.Blocks[to.Block+1:]...)
}

// SplitBlock splits the block at the position into two blocks and returns
// the start of the second one. Splitting a heading at its end starts a
// paragraph.
func (d *Document) SplitBlock(pos Pos) Pos {
	b := d.Block(pos.Block)
	if b == nil {
		return pos
	}

	i := b.split(pos.Offset)
	next := &Block{Type: b.Type, Level: b.Level, Align: b.Align}
	next.Runs = append(next.Runs, b.Runs[i:]...)
	b.Runs = b.Runs[:i]
	if b.Type == Heading && len(next.Runs) == 0 {
		next.Type = Paragraph
		next.Level = 0
	}

	d.Blocks = append(d.Blocks, nil)
	copy(d.Blocks[pos.Block+2:], d.Blocks[pos.Block+1:])
	d.Blocks[pos.Block+1] = next

	return Pos{Block: pos.Block + 1, Offset: 0}
}

// TextBetween returns the literal text between from and to, with blocks
// separated by a newline.
func (d *Document) TextBetween(from, to Pos) string {
	var parts []string
	d.eachBlockRange(from, to, func(b *Block, start, end int) {
		runes := []rune(b.Text())
		start = min(max(start, 0), len(runes))
		end = min(max(end, start), len(runes))
		parts = append(parts, string(runes[start:end]))
	})
	return strings.Join(parts, "\n")
}

// BlocksBetween returns the indexes of the blocks touched by the range.
func (d *Document) BlocksBetween(from, to Pos) []int {
	var indexes []int
	for i := from.Block; i <= to.Block && i < len(d.Blocks); i++ {
		indexes = append(indexes, i)
	}
	return indexes
}
