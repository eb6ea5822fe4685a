// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timetracker

import (
	"github.com/xmidt-org/timetracker/clock"
	"github.com/xmidt-org/timetracker/logging"
)

// Option represents a configuration option for a Tracker
type Option func(*Tracker)

// WithClock sets the time source.  If nil, clock.System() is used.
func WithClock(c clock.Interface) Option {
	return func(t *Tracker) {
		if c == nil {
			t.clock = clock.System()
		} else {
			t.clock = c
		}
	}
}

// WithSink sets the destination for informational messages.  A nil sink silences the Tracker.
func WithSink(s logging.Sink) Option {
	return func(t *Tracker) {
		t.sink = s
	}
}

// WithRecorder sets a Recorder notified of each completed, unmatched, and cleared timer.
// If nil, nothing is recorded.
func WithRecorder(r Recorder) Option {
	return func(t *Tracker) {
		if r == nil {
			t.recorder = nopRecorder{}
		} else {
			t.recorder = r
		}
	}
}

// WithEnabled sets the initial state of the enabled flag
func WithEnabled(enabled bool) Option {
	return func(t *Tracker) {
		t.enabled = enabled
	}
}
