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

import "fmt"

// Pos is a caret position: the index of a block and an offset in code
// points inside the text of that block.
type Pos struct {
	Block  int
	Offset int
}

// Compare returns -1, 0 or 1 when p is before, equal to or after other.
func (p Pos) Compare(other Pos) int {
	switch {
	case p.Block < other.Block:
		return -1
	case p.Block > other.Block:
		return 1
	case p.Offset < other.Offset:
		return -1
	case p.Offset > other.Offset:
		return 1
	}
	return 0
}

// String returns the string representation of this position.
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Block, p.Offset)
}

// Selection is a range between an anchor and a head. The head is the side
// that moves when the selection is extended.
type Selection struct {
	Anchor Pos
	Head   Pos
}

// Caret returns a collapsed selection at the given position.
func Caret(pos Pos) Selection {
	return Selection{Anchor: pos, Head: pos}
}

// Range returns a selection from anchor to head.
func Range(anchor, head Pos) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// Collapsed returns whether the selection is a caret.
func (s Selection) Collapsed() bool {
	return s.Anchor == s.Head
}

// From returns the start of the selection.
func (s Selection) From() Pos {
	if s.Anchor.Compare(s.Head) <= 0 {
		return s.Anchor
	}
	return s.Head
}

// To returns the end of the selection.
func (s Selection) To() Pos {
	if s.Anchor.Compare(s.Head) <= 0 {
		return s.Head
	}
	return s.Anchor
}

// String returns the string representation of this selection.
func (s Selection) String() string {
	if s.Collapsed() {
		return s.Anchor.String()
	}
	return s.Anchor.String() + "-" + s.Head.String()
}

// Start returns the first position of the document.
func (d *Document) Start() Pos {
	return Pos{}
}

// End returns the last position of the document.
func (d *Document) End() Pos {
	last := len(d.Blocks) - 1
	return Pos{Block: last, Offset: d.Blocks[last].Len()}
}

// Clamp returns the closest valid position to the given one.
func (d *Document) Clamp(pos Pos) Pos {
	if pos.Block < 0 {
		return d.Start()
	}
	if pos.Block >= len(d.Blocks) {
		return d.End()
	}
	if pos.Offset < 0 {
		pos.Offset = 0
	}
	if l := d.Blocks[pos.Block].Len(); pos.Offset > l {
		pos.Offset = l
	}
	return pos
}

// ClampSelection clamps both ends of the given selection.
func (d *Document) ClampSelection(sel Selection) Selection {
	return Selection{Anchor: d.Clamp(sel.Anchor), Head: d.Clamp(sel.Head)}
}
