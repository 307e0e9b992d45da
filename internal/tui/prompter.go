// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptScreen is where an [InputPrompter] shows its question.
// [Terminal] implements it.
type PromptScreen interface {
	DrawPrompt(view string) error
}

// InputPrompter asks questions with a one-line bubbletea text input. It
// implements auth.Prompter.
//
// The program runs without its own renderer: the question is drawn through
// the [PromptScreen], so terminal modes stay with whoever acquired the
// terminal and prompt output never interleaves with frames.
type InputPrompter struct {
	mu     sync.Mutex
	in     io.Reader
	screen PromptScreen
}

// NewInputPrompter returns a prompter reading keys from in and drawing on
// screen.
func NewInputPrompter(in io.Reader, screen PromptScreen) *InputPrompter {
	return &InputPrompter{in: in, screen: screen}
}

// Prompt shows question and waits for enter. Secret answers are masked.
// esc and ctrl+c return [ErrUserQuit].
func (p *InputPrompter) Prompt(ctx context.Context, question string, secret bool) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	final, err := tea.NewProgram(
		screenModel{prompt: newPromptModel(question, secret), screen: p.screen},
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	).Run()

	if clearErr := p.screen.DrawPrompt(""); clearErr != nil && err == nil {
		err = clearErr
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return "", ctxErr
		}
		return "", fmt.Errorf("run prompt: %w", err)
	}

	result, ok := final.(screenModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.err != nil {
		return "", fmt.Errorf("draw prompt: %w", result.err)
	}
	if result.prompt.quit {
		return "", ErrUserQuit
	}
	return result.prompt.answer(), nil
}

// showPromptMsg triggers the first draw.
type showPromptMsg struct{}

// screenModel draws the wrapped prompt on its screen after every update.
type screenModel struct {
	prompt promptModel
	screen PromptScreen
	err    error
}

func (m screenModel) Init() tea.Cmd {
	return func() tea.Msg { return showPromptMsg{} }
}

func (m screenModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.prompt.Update(msg)
	m.prompt = next.(promptModel)

	if err := m.screen.DrawPrompt(m.prompt.View()); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, cmd
}

// View is empty: nothing is rendered by the program itself.
func (m screenModel) View() string {
	return ""
}

// promptModel is the Bubble Tea model of a single question.
type promptModel struct {
	question string
	input    textinput.Model
	done     bool
	quit     bool
}

func newPromptModel(question string, secret bool) promptModel {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 64
	input.Width = 40
	// the terminal cursor is hidden while the render loop owns the screen
	input.Cursor.SetMode(cursor.CursorStatic)
	if secret {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '*'
	}
	input.Focus()

	return promptModel{question: question, input: input}
}

// Init implements [tea.Model]. The cursor is static, so there is nothing
// to start.
func (m promptModel) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model]. enter submits, esc and ctrl+c quit, every
// other message goes to the input.
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Nothing is left on screen once answered.
func (m promptModel) View() string {
	if m.done || m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(promptStyle.Render(m.question))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: submit │ esc: quit"))
	return b.String()
}

func (m promptModel) answer() string {
	return strings.TrimSpace(m.input.Value())
}
