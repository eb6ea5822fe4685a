// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

// Entry is a single message received by a CaptureSink
type Entry struct {
	Tag     string
	Message string
}

// CaptureSink is a Sink which dispatches each message to a channel
// for test assertions and verifications.  Primarily useful for test code.
//
// Emit blocks once the channel's buffer is full, so tests must drain Output.
type CaptureSink interface {
	Sink

	// Output returns the channel on which each message is recorded
	Output() <-chan Entry
}

type captureSink struct {
	output chan Entry
}

func (cs *captureSink) Output() <-chan Entry {
	return cs.output
}

func (cs *captureSink) Emit(tag, message string) {
	cs.output <- Entry{Tag: tag, Message: message}
}

func NewCaptureSink() CaptureSink {
	return &captureSink{
		output: make(chan Entry, 100),
	}
}
