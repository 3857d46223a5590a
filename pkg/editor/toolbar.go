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

import (
	"github.com/verse-press/verse/pkg/document/model"
)

// Below are the names of the toolbar commands.
const (
	CmdBold         = "bold"
	CmdItalic       = "italic"
	CmdUnderline    = "underline"
	CmdHeading      = "heading-1"
	CmdAlignLeft    = "align-left"
	CmdAlignCenter  = "align-center"
	CmdAlignRight   = "align-right"
	CmdAlignJustify = "align-justify"
	CmdLink         = "link"
	CmdUnlink       = "unlink"
	CmdUndo         = "undo"
	CmdRedo         = "redo"
)

// Command is an edit operation exposed to a toolbar. CanApply drives the
// enabled state of a button and IsActive its pressed state.
type Command struct {
	Name  string
	Label string
	Icon  string

	can    func(s *Session) bool
	active func(s *Session) bool
	run    func(s *Session) bool
}

// CanApply returns whether the command can run against the session.
func (c *Command) CanApply(s *Session) bool {
	if !s.Editable() {
		return false
	}
	if c.can == nil {
		return true
	}
	return c.can(s)
}

// IsActive returns whether the target state of the command is in effect.
func (c *Command) IsActive(s *Session) bool {
	if c.active == nil {
		return false
	}
	return c.active(s)
}

// Invoke runs the command. Invoking an inapplicable command is ignored.
func (c *Command) Invoke(s *Session) bool {
	if !c.CanApply(s) {
		return false
	}
	return c.run(s)
}

// ToggleMarkCommand returns the command toggling a formatting mark.
func ToggleMarkCommand(t model.MarkType, label, icon string) *Command {
	return &Command{
		Name:  string(t),
		Label: label,
		Icon:  icon,
		can: func(s *Session) bool {
			return isFormatMark(t)
		},
		active: func(s *Session) bool {
			return s.IsMarkActive(t)
		},
		run: func(s *Session) bool {
			return s.ToggleMark(t)
		},
	}
}

// ToggleHeadingCommand returns the command toggling a heading.
func ToggleHeadingCommand(level int) *Command {
	return &Command{
		Name:  CmdHeading,
		Label: "Heading",
		Icon:  "TextHOne",
		active: func(s *Session) bool {
			return s.IsHeadingActive(level)
		},
		run: func(s *Session) bool {
			return s.ToggleHeading(level)
		},
	}
}

// SetAlignmentCommand returns the command aligning the selected blocks.
func SetAlignmentCommand(name string, align model.Alignment, label, icon string) *Command {
	return &Command{
		Name:  name,
		Label: label,
		Icon:  icon,
		active: func(s *Session) bool {
			return s.IsAlignmentActive(align)
		},
		run: func(s *Session) bool {
			return s.SetAlignment(align)
		},
	}
}

// SetLinkCommand returns the command applying a fixed link. The toolbar uses
// OpenLinkCommand instead, which lets the user edit the link first.
func SetLinkCommand(href, target string) *Command {
	return &Command{
		Name:  "set-link",
		Label: "Set link",
		Icon:  "Link",
		can: func(s *Session) bool {
			return href != ""
		},
		active: func(s *Session) bool {
			return s.IsLinkActive()
		},
		run: func(s *Session) bool {
			return s.SetLink(href, target)
		},
	}
}

// OpenLinkCommand returns the command opening the link editor.
func OpenLinkCommand(open func()) *Command {
	return &Command{
		Name:  CmdLink,
		Label: "Insert link",
		Icon:  "Link",
		can: func(s *Session) bool {
			return open != nil
		},
		active: func(s *Session) bool {
			return s.IsLinkActive()
		},
		run: func(s *Session) bool {
			open()
			return true
		},
	}
}

// UnsetLinkCommand returns the command removing the link at the selection.
func UnsetLinkCommand() *Command {
	return &Command{
		Name:  CmdUnlink,
		Label: "Remove link",
		Icon:  "LinkBreak",
		can: func(s *Session) bool {
			return s.IsLinkActive()
		},
		run: func(s *Session) bool {
			return s.UnsetLink()
		},
	}
}

// UndoCommand returns the command reverting the last change.
func UndoCommand() *Command {
	return &Command{
		Name:  CmdUndo,
		Label: "Undo",
		Icon:  "ArrowCounterClockwise",
		can: func(s *Session) bool {
			return s.CanUndo()
		},
		run: func(s *Session) bool {
			return s.Undo()
		},
	}
}

// RedoCommand returns the command re-applying the last undone change.
func RedoCommand() *Command {
	return &Command{
		Name:  CmdRedo,
		Label: "Redo",
		Icon:  "ArrowClockwise",
		can: func(s *Session) bool {
			return s.CanRedo()
		},
		run: func(s *Session) bool {
			return s.Redo()
		},
	}
}

// ButtonState is the rendering state of a toolbar button.
type ButtonState struct {
	Name    string
	Label   string
	Icon    string
	Enabled bool
	Active  bool
}

// Toolbar is the ordered set of commands shown above an editing surface.
type Toolbar struct {
	session  *Session
	commands []*Command
}

// NewToolbar creates the toolbar of the given session. openLink is called
// by the link button; without it the button is disabled.
func NewToolbar(s *Session, openLink func()) *Toolbar {
	return &Toolbar{
		session: s,
		commands: []*Command{
			ToggleMarkCommand(model.Bold, "Bold", "TextBolder"),
			ToggleMarkCommand(model.Italic, "Italic", "TextItalic"),
			ToggleMarkCommand(model.Underline, "Underline", "TextUnderline"),
			ToggleHeadingCommand(1),
			SetAlignmentCommand(CmdAlignLeft, model.AlignLeft, "Align left", "TextAlignLeft"),
			SetAlignmentCommand(CmdAlignCenter, model.AlignCenter, "Align center", "TextAlignCenter"),
			SetAlignmentCommand(CmdAlignRight, model.AlignRight, "Align right", "TextAlignRight"),
			SetAlignmentCommand(CmdAlignJustify, model.AlignJustify, "Justify", "TextAlignJustify"),
			OpenLinkCommand(openLink),
			UnsetLinkCommand(),
			UndoCommand(),
			RedoCommand(),
		},
	}
}

// Commands returns the commands in display order.
func (t *Toolbar) Commands() []*Command {
	return t.commands
}

// Command returns the command of the given name.
func (t *Toolbar) Command(name string) (*Command, bool) {
	for _, c := range t.commands {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Invoke runs the command of the given name against the session.
func (t *Toolbar) Invoke(name string) bool {
	c, ok := t.Command(name)
	if !ok {
		return false
	}
	return c.Invoke(t.session)
}

// State returns the state of every button.
func (t *Toolbar) State() []ButtonState {
	states := make([]ButtonState, len(t.commands))
	for i, c := range t.commands {
		states[i] = ButtonState{
			Name:    c.Name,
			Label:   c.Label,
			Icon:    c.Icon,
			Enabled: c.CanApply(t.session),
			Active:  c.IsActive(t.session),
		}
	}
	return states
}
