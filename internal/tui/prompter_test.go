// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeRunes(m promptModel, s string) promptModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(promptModel)
}

func TestPromptModel_Submit(t *testing.T) {
	m := newPromptModel("Enter the verification code:", false)
	m = typeRunes(m, " 12345 ")

	assert.Contains(t, m.View(), "Enter the verification code:")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(promptModel)

	assert.True(t, m.done)
	assert.False(t, m.quit)
	assert.Equal(t, "12345", m.answer())
	assert.Empty(t, m.View())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPromptModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newPromptModel("q", false)

		next, cmd := m.Update(tea.KeyMsg{Type: key})
		m = next.(promptModel)

		assert.True(t, m.quit, key.String())
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestPromptModel_SecretIsMasked(t *testing.T) {
	m := newPromptModel("code", true)
	assert.Equal(t, textinput.EchoPassword, m.input.EchoMode)

	m = typeRunes(m, "98765")
	assert.NotContains(t, m.View(), "98765")
	assert.Equal(t, "98765", m.answer())
}

func TestPromptModel_StaticCursor(t *testing.T) {
	m := newPromptModel("code", true)

	assert.Equal(t, cursor.CursorStatic, m.input.Cursor.Mode())
	assert.Nil(t, m.Init())
}

func TestInputPrompter_Prompt(t *testing.T) {
	screen := &fakeTerminal{}
	p := NewInputPrompter(strings.NewReader("+31600000000\r"), screen)

	answer, err := p.Prompt(context.Background(), "Enter your phone number (include the country calling code):", false)
	require.NoError(t, err)
	assert.Equal(t, "+31600000000", answer)

	events := screen.snapshot()
	require.NotEmpty(t, events)
	assert.GreaterOrEqual(t, screen.index("Enter your phone number"), 0)
	assert.Equal(t, "prompt:", events[len(events)-1], "the prompt is removed once answered")
}

func TestInputPrompter_UserQuit(t *testing.T) {
	screen := &fakeTerminal{}
	p := NewInputPrompter(strings.NewReader("\x03"), screen)

	_, err := p.Prompt(context.Background(), "code", true)
	assert.ErrorIs(t, err, ErrUserQuit)

	events := screen.snapshot()
	require.NotEmpty(t, events)
	assert.Equal(t, "prompt:", events[len(events)-1])
}

func TestInputPrompter_KeepsAcquiredTerminalModes(t *testing.T) {
	w := &recordingWriter{}
	at := newTestANSITerminal(w)
	require.NoError(t, at.Enter())

	p := NewInputPrompter(strings.NewReader("+31600000000\r"), at)
	answer, err := p.Prompt(context.Background(), "Enter your phone number (include the country calling code):", false)
	require.NoError(t, err)
	assert.Equal(t, "+31600000000", answer)

	w.mu.Lock()
	written := strings.Join(w.events, "")
	w.mu.Unlock()

	assert.Contains(t, written, "Enter your phone number")
	assert.NotContains(t, written, "raw off")
	for _, seq := range []string{
		ansi.ResetButtonEventMouseMode,
		ansi.ResetSgrExtMouseMode,
		ansi.ShowCursor,
		ansi.ResetAltScreenSaveCursorMode,
		ansi.SetBracketedPasteMode,
	} {
		assert.NotContains(t, written, seq)
	}

	// the frame drawn after the prompt is not followed by prompt rows
	require.NoError(t, at.Draw("frame"))
	w.mu.Lock()
	last := w.events[len(w.events)-1]
	w.mu.Unlock()
	assert.Equal(t, ansi.EraseEntireScreen+ansi.CursorHomePosition+"frame", last)
}
