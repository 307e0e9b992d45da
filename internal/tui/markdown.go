// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownStyle is fixed: auto detection queries the terminal, which is
// already in raw mode while the loop runs.
const markdownStyle = "dark"

// markdownRenderer renders message text as markdown, re-creating the
// glamour renderer when the wrap width changes.
type markdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

// render returns text as styled ANSI output, or text unchanged when it
// cannot be rendered.
func (m *markdownRenderer) render(text string, width int) string {
	if strings.TrimSpace(text) == "" || width <= 0 {
		return text
	}

	if m.renderer == nil || m.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStylePath(markdownStyle),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return text
		}
		m.renderer, m.width = r, width
	}

	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	// glamour pads with blank lines; trim for inline display.
	return strings.Trim(out, "\n")
}
