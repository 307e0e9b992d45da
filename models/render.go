// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RenderCommand is an instruction for the terminal render loop.
type RenderCommand interface {
	isRenderCommand()
}

// RenderNewMessage tells the render loop a message has arrived.
type RenderNewMessage struct {
	Update UpdateNewMessage
}

// RenderExit tells the render loop to restore the terminal and stop.
type RenderExit struct{}

func (RenderNewMessage) isRenderCommand() {}
func (RenderExit) isRenderCommand()       {}
