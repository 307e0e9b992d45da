// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// LinePrompter prints the question on its own line and reads one line of
// input. A line ends at "\n", "\r" or "\r\n", so it also works on a terminal
// in raw mode. Input is never echoed by the prompter itself.
type LinePrompter struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter returns a prompter reading from in and writing to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Prompt implements [Prompter]. The read itself cannot be interrupted, ctx
// is checked before it starts.
func (p *LinePrompter) Prompt(ctx context.Context, question string, _ bool) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprint(p.out, question, "\r\n"); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := p.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *LinePrompter) readLine() (string, error) {
	var b strings.Builder

	for {
		c, err := p.in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}

		switch c {
		case '\n':
			return b.String(), nil
		case '\r':
			// swallow the "\n" of a "\r\n" pair if it is already here
			if p.in.Buffered() > 0 {
				if next, _ := p.in.Peek(1); len(next) == 1 && next[0] == '\n' {
					_, _ = p.in.ReadByte()
				}
			}
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
}
