// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timetracker

import (
	"sync"
	"time"

	"github.com/xmidt-org/timetracker/logging"
)

var (
	defaultOnce    sync.Once
	defaultTracker *Tracker
)

// Default returns the process-wide Tracker, creating it with New() on first use.
// Prefer passing an explicit *Tracker where the caller controls construction.
func Default() *Tracker {
	defaultOnce.Do(func() {
		defaultTracker = New()
	})

	return defaultTracker
}

// Start calls Default().Start
func Start(tag string) {
	Default().Start(tag)
}

// Stop calls Default().Stop
func Stop(tag string) {
	Default().Stop(tag)
}

// GetDuration calls Default().Duration
func GetDuration(tag string) (time.Duration, bool) {
	return Default().Duration(tag)
}

// PrintAllDurations calls Default().PrintAllDurations
func PrintAllDurations() {
	Default().PrintAllDurations()
}

// Reset calls Default().Reset
func Reset() {
	Default().Reset()
}

// IsEnabled reports whether the Default Tracker is recording
func IsEnabled() bool {
	return Default().Enabled()
}

// SetEnabled turns recording on or off for the Default Tracker
func SetEnabled(enabled bool) {
	Default().SetEnabled(enabled)
}

// SetSink replaces the Default Tracker's Sink.  A nil Sink silences it.
func SetSink(s logging.Sink) {
	Default().SetSink(s)
}
