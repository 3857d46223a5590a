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
	"fmt"
	"strings"
)

// MarkType is the type of a character-level formatting attribute.
type MarkType string

// Below are the mark types supported by the editor.
const (
	Bold      MarkType = "bold"
	Italic    MarkType = "italic"
	Underline MarkType = "underline"
	Link      MarkType = "link"
)

// markOrder is the canonical order of marks inside a set. It is also the
// nesting order used when marks are rendered as markup.
var markOrder = map[MarkType]int{
	Link:      0,
	Bold:      1,
	Italic:    2,
	Underline: 3,
}

// DefaultLinkTarget is the target attribute given to links created by the
// editor.
const DefaultLinkTarget = "_blank"

// Mark is a formatting attribute applied to a run of text. Href and Target
// are only meaningful for Link marks.
type Mark struct {
	Type   MarkType
	Href   string
	Target string
}

// NewLink creates a Link mark with the default target.
func NewLink(href string) Mark {
	return Mark{Type: Link, Href: href, Target: DefaultLinkTarget}
}

// Valid returns whether this mark may be stored in a document. A link
// without href is treated as no link at all.
func (m Mark) Valid() bool {
	if _, ok := markOrder[m.Type]; !ok {
		return false
	}
	if m.Type == Link && m.Href == "" {
		return false
	}
	return true
}

// String returns the string representation of this mark.
func (m Mark) String() string {
	if m.Type == Link {
		return fmt.Sprintf("link(%s)", m.Href)
	}
	return string(m.Type)
}

// Marks is a set of marks ordered canonically. It holds at most one mark
// per type.
type Marks []Mark

// NewMarks creates a set from the given marks. Invalid marks are dropped
// and later marks of the same type replace earlier ones.
func NewMarks(marks ...Mark) Marks {
	var set Marks
	for _, m := range marks {
		set = set.Add(m)
	}
	return set
}

// Has returns whether a mark of the given type is in the set.
func (ms Marks) Has(t MarkType) bool {
	_, ok := ms.Find(t)
	return ok
}

// Find returns the mark of the given type.
func (ms Marks) Find(t MarkType) (Mark, bool) {
	for _, m := range ms {
		if m.Type == t {
			return m, true
		}
	}
	return Mark{}, false
}

// Add returns a new set containing the given mark. A mark of the same type
// is replaced.
func (ms Marks) Add(mark Mark) Marks {
	if !mark.Valid() {
		return ms.Copy()
	}

	result := make(Marks, 0, len(ms)+1)
	inserted := false
	for _, m := range ms {
		if m.Type == mark.Type {
			continue
		}
		if !inserted && markOrder[mark.Type] < markOrder[m.Type] {
			result = append(result, mark)
			inserted = true
		}
		result = append(result, m)
	}
	if !inserted {
		result = append(result, mark)
	}
	return result
}

// Remove returns a new set without marks of the given type.
func (ms Marks) Remove(t MarkType) Marks {
	var result Marks
	for _, m := range ms {
		if m.Type != t {
			result = append(result, m)
		}
	}
	return result
}

// Equal returns whether both sets hold the same marks.
func (ms Marks) Equal(other Marks) bool {
	if len(ms) != len(other) {
		return false
	}
	for i := range ms {
		if ms[i] != other[i] {
			return false
		}
	}
	return true
}

// Copy returns a copy of this set.
func (ms Marks) Copy() Marks {
	if ms == nil {
		return nil
	}
	result := make(Marks, len(ms))
	copy(result, ms)
	return result
}

// String returns the string representation of this set.
func (ms Marks) String() string {
	var parts []string
	for _, m := range ms {
		parts = append(parts, m.String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}
