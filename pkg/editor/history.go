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

package editor

// history keeps the undo and redo stacks of a session. Entries are whole
// snapshots; states are never mutated once committed so they can be shared.
type history struct {
	undoStack []*state
	redoStack []*state
}

func newHistory() *history {
	return &history{}
}

// record pushes the state that is about to be replaced. A new change
// invalidates everything that was undone before it.
func (h *history) record(prev *state) {
	h.undoStack = append(h.undoStack, prev)
	h.redoStack = nil
}

func (h *history) canUndo() bool {
	return len(h.undoStack) > 0
}

func (h *history) canRedo() bool {
	return len(h.redoStack) > 0
}

// undo pops the last recorded state and pushes current on the redo stack.
func (h *history) undo(current *state) *state {
	last := len(h.undoStack) - 1
	prev := h.undoStack[last]
	h.undoStack = h.undoStack[:last]
	h.redoStack = append(h.redoStack, current)
	return prev
}

// redo pops the last undone state and pushes current on the undo stack.
func (h *history) redo(current *state) *state {
	last := len(h.redoStack) - 1
	next := h.redoStack[last]
	h.redoStack = h.redoStack[:last]
	h.undoStack = append(h.undoStack, current)
	return next
}
