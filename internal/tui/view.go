// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tdterm/models"
	"github.com/charmbracelet/x/ansi"
)

const (
	defaultViewCapacity = 200
	defaultWrap         = 78
	uiDivider           = "──────────────────────────────────────────────────────"
)

// ViewOptions configures a [View].
type ViewOptions struct {
	// Title is shown above the messages.
	Title string
	// Capacity is the number of messages kept; older ones are dropped.
	Capacity int
	// Markdown renders message text as markdown.
	Markdown bool
}

// View is the list of received messages. It is not safe for concurrent
// use; the render loop owns it once started.
type View struct {
	title    string
	capacity int
	messages []models.Message

	width, height int

	markdown *markdownRenderer
}

// NewView returns an empty view.
func NewView(opts ViewOptions) *View {
	if opts.Capacity <= 0 {
		opts.Capacity = defaultViewCapacity
	}

	v := &View{
		title:    opts.Title,
		capacity: opts.Capacity,
	}
	if opts.Markdown {
		v.markdown = &markdownRenderer{}
	}
	return v
}

// Append adds messages at the bottom of the list.
func (v *View) Append(msgs ...models.Message) {
	v.messages = append(v.messages, msgs...)
	if extra := len(v.messages) - v.capacity; extra > 0 {
		v.messages = append(v.messages[:0], v.messages[extra:]...)
	}
}

// Len returns the number of messages kept.
func (v *View) Len() int {
	return len(v.messages)
}

// Resize sets the screen size. Zero values mean unknown.
func (v *View) Resize(width, height int) {
	v.width, v.height = width, height
}

// Render returns the frame: a title, the newest messages that fit the
// height, and a status line.
func (v *View) Render() string {
	var body []string
	if len(v.messages) == 0 {
		body = []string{helpStyle.Render("No messages yet.")}
	}
	for _, msg := range v.messages {
		body = append(body, v.messageLines(msg)...)
	}

	const chrome = 4 // title, divider, divider, status
	if v.height > chrome && len(body) > v.height-chrome {
		body = body[len(body)-(v.height-chrome):]
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(v.title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	for _, line := range body {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d messages", len(v.messages))))

	return b.String()
}

func (v *View) messageLines(msg models.Message) []string {
	header := timeStyle.Render(msg.Date.Local().Format("15:04")) + " " +
		senderStyle.Render(fmt.Sprintf("[%d] %d", msg.ChatID, msg.SenderID))

	text := msg.Text
	if v.markdown != nil {
		wrap := v.width - 2
		if wrap <= 0 {
			wrap = defaultWrap
		}
		text = v.markdown.render(text, wrap)
	}

	lines := []string{header}
	for _, line := range strings.Split(text, "\n") {
		if v.width > 2 {
			line = ansi.Truncate(line, v.width-2, "…")
		}
		lines = append(lines, "  "+line)
	}
	return lines
}
