//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package editor is the top-level object tying the buffer registry,
// tab, input parser and both command queues together into one
// byte-in, command-out main loop.
package editor

import (
	"github.com/arnvald/vige/internal/buffer"
	"github.com/arnvald/vige/internal/config"
	"github.com/arnvald/vige/internal/dispatch"
	"github.com/arnvald/vige/internal/editorcmd"
	"github.com/arnvald/vige/internal/input"
	"github.com/arnvald/vige/internal/tab"
	"github.com/arnvald/vige/internal/usercmd"
	"github.com/arnvald/vige/internal/window"
)

// Editor is the process-wide singleton the main loop drives: the
// buffer registry, the active tab, the input parser and both bounded
// command queues. It is the sole owner of all of these; nothing else
// in the program holds a second reference to them.
type Editor struct {
	Registry *buffer.Registry
	Tab      *tab.Tab
	Parser   input.Parser
	Config   *config.Config

	userCmds   usercmd.Queue
	editorCmds editorcmd.Queue

	Message       string
	ExitRequested bool
}

// New builds an Editor with one window open on cfg.InitialFile (or a
// fresh empty buffer if that's empty), sized to fit a cols x rows
// screen.
func New(cfg *config.Config, cols, rows int) (*Editor, error) {
	reg := buffer.NewRegistry()
	buf, err := reg.Open(cfg.InitialFile)
	if err != nil {
		return nil, err
	}
	if cfg.InitialFile != "" {
		reg.Register(buf)
	}

	w := window.New(buf, 0, 0, cols, rows, 0)
	e := &Editor{
		Registry: reg,
		Tab:      tab.NewTab(w),
		Config:   cfg,
	}
	return e, nil
}

// HandleByte runs one input byte through the parser, drains both
// queues, and returns whether the editor should exit.
func (e *Editor) HandleByte(b byte) bool {
	e.Parser.Feed(b, &e.userCmds)
	e.drainUserCommands()
	e.drainEditorCommands()
	return e.ExitRequested
}

func (e *Editor) drainUserCommands() {
	w := e.Tab.Focus.Window
	for {
		cmd, ok := e.userCmds.Pop()
		if !ok {
			return
		}
		editorcmd.Translate(cmd, w.AbsoluteY(), w.Buffer.LineCount(), &e.editorCmds)
	}
}

func (e *Editor) drainEditorCommands() {
	target := &dispatch.Target{Tab: e.Tab, Mode: e.Parser.Mode, ScrollCount: e.Config.ScrollAmount}
	dispatch.Run(&e.editorCmds, target, e.runCommand)
	e.Parser.Mode = target.Mode
	e.Config.ScrollAmount = target.ScrollCount
	if target.Message != "" {
		e.Message = target.Message
	}
	e.ExitRequested = e.ExitRequested || target.ExitRequested
}

// runCommand executes one submitted colon-command line and reports a
// status-line message (possibly empty) and whether it requested exit.
func (e *Editor) runCommand(text string) (string, bool) {
	switch text {
	case "q", "quit":
		return "", true
	case "wq":
		if msg, _ := e.writeFocused(""); msg != "" {
			return msg, false
		}
		return "", true
	case "w":
		if msg, _ := e.writeFocused(""); msg != "" {
			return msg, false
		}
		return "", false
	case "yank!":
		return e.yankToClipboard()
	case "put!":
		return e.putFromClipboard()
	default:
		if name, ok := stripPrefix(text, "w "); ok {
			if msg, _ := e.writeFocused(name); msg != "" {
				return msg, false
			}
			return "", false
		}
		if name, ok := stripPrefix(text, "r "); ok {
			return e.readIntoFocused(name)
		}
		return "Not an editor command: " + text, false
	}
}

func stripPrefix(s, prefix string) (string, bool) {
	if len(s) > len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):], true
	}
	return "", false
}

func (e *Editor) writeFocused(name string) (string, error) {
	w := e.Tab.Focus.Window
	if err := w.Buffer.Write(name); err != nil {
		return err.Error(), err
	}
	if name != "" && w.Buffer.FileName == "" {
		w.Buffer.FileName = name
		e.Registry.Register(w.Buffer)
	}
	return "", nil
}

func (e *Editor) readIntoFocused(name string) (string, bool) {
	buf, err := e.Registry.Open(name)
	if err != nil {
		return err.Error(), false
	}
	w := window.New(buf, e.Tab.Focus.Window.Source.Origin.X, e.Tab.Focus.Window.Source.Origin.Y,
		e.Tab.Focus.Window.Source.End.X, e.Tab.Focus.Window.Source.End.Y, 0)
	e.Tab.Focus.Window = w
	return "", false
}
