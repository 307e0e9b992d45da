// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
)

// defaultHeight is used when the terminal size is unknown.
const defaultHeight = 24

// Terminal is the screen the render loop draws on.
type Terminal interface {
	// Enter switches to the alternate screen, enables mouse capture and
	// puts the input in raw mode.
	Enter() error
	// Restore disables raw mode, leaves the alternate screen, disables
	// mouse capture and shows the cursor, in that order.
	Restore() error
	// Draw replaces the screen contents with frame. A prompt set with
	// DrawPrompt stays on top of it.
	Draw(frame string) error
	// DrawPrompt shows view on the bottom rows of the screen until it is
	// replaced. An empty view removes the prompt.
	DrawPrompt(view string) error
	// Size returns the screen size in cells.
	Size() (width, height int, err error)
}

// ansiTerminal drives a real terminal with ANSI control sequences.
type ansiTerminal struct {
	inFd  uintptr
	outFd uintptr
	out   io.Writer

	makeRaw func(fd uintptr) (*term.State, error)
	restore func(fd uintptr, state *term.State) error
	getSize func(fd uintptr) (int, int, error)

	mu     sync.Mutex
	state  *term.State
	prompt string
	// promptRows is the height of the last prompt drawn
	promptRows int
}

// NewTerminal returns the terminal attached to in and out.
func NewTerminal(in, out *os.File) (Terminal, error) {
	if !term.IsTerminal(in.Fd()) {
		return nil, fmt.Errorf("%w: %s", ErrNotTerminal, in.Name())
	}

	return &ansiTerminal{
		inFd:    in.Fd(),
		outFd:   out.Fd(),
		out:     out,
		makeRaw: term.MakeRaw,
		restore: term.Restore,
		getSize: term.GetSize,
	}, nil
}

func (t *ansiTerminal) Enter() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := io.WriteString(t.out,
		ansi.SetAltScreenSaveCursorMode+
			ansi.SetButtonEventMouseMode+
			ansi.SetSgrExtMouseMode+
			ansi.HideCursor); err != nil {
		return fmt.Errorf("enter alternate screen: %w", err)
	}

	state, err := t.makeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.state = state
	return nil
}

func (t *ansiTerminal) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var errs []error
	if t.state != nil {
		if err := t.restore(t.inFd, t.state); err != nil {
			errs = append(errs, fmt.Errorf("disable raw mode: %w", err))
		}
		t.state = nil
	}

	for _, seq := range []string{
		ansi.ResetAltScreenSaveCursorMode,
		ansi.ResetButtonEventMouseMode + ansi.ResetSgrExtMouseMode,
		ansi.ShowCursor,
	} {
		if _, err := io.WriteString(t.out, seq); err != nil {
			errs = append(errs, fmt.Errorf("restore screen: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (t *ansiTerminal) Draw(frame string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	// raw mode does not translate "\n"
	frame = strings.ReplaceAll(frame, "\n", "\r\n")
	t.promptRows = 0
	_, err := io.WriteString(t.out, ansi.EraseEntireScreen+ansi.CursorHomePosition+frame+t.promptOverlay())
	return err
}

func (t *ansiTerminal) DrawPrompt(view string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.prompt = view
	_, err := io.WriteString(t.out, t.promptOverlay())
	return err
}

// promptOverlay returns the sequence painting the current prompt over the
// bottom rows, erasing the rows of the previous one. Callers hold t.mu.
func (t *ansiTerminal) promptOverlay() string {
	var lines []string
	if t.prompt != "" {
		lines = strings.Split(t.prompt, "\n")
	}

	rows := max(len(lines), t.promptRows)
	if rows == 0 {
		return ""
	}

	_, height, err := t.getSize(t.outFd)
	if err != nil || height <= 0 {
		height = defaultHeight
	}
	top := max(height-rows+1, 1)

	var b strings.Builder
	for i := range rows {
		b.WriteString(ansi.CursorPosition(1, top+i))
		b.WriteString(ansi.EraseEntireLine)
		// the prompt sits on the last rows
		if j := i - (rows - len(lines)); j >= 0 {
			b.WriteString(lines[j])
		}
	}
	t.promptRows = len(lines)
	return b.String()
}

func (t *ansiTerminal) Size() (int, int, error) {
	return t.getSize(t.outFd)
}
