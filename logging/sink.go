// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

const (
	categoryKey = "category"
	messageKey  = "msg"
)

// CategoryKey returns the logging key under which the tag passed to a Sink is written
func CategoryKey() string {
	return categoryKey
}

// MessageKey returns the logging key to be used for the textual message of the log entry
func MessageKey() string {
	return messageKey
}

// Sink is the destination for the informational messages produced by timing code.
// The tag is a fixed category label chosen by the emitter, not a timer tag.
type Sink interface {
	Emit(tag, message string)
}

// SinkFunc is a function type that implements Sink
type SinkFunc func(tag, message string)

func (sf SinkFunc) Emit(tag, message string) {
	sf(tag, message)
}

type nopSink struct{}

func (nopSink) Emit(string, string) {}

// Nop returns a Sink that discards everything
func Nop() Sink {
	return nopSink{}
}
