// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timetracker

import "time"

// Recorder receives the outcome of Tracker operations, typically to expose them as metrics.
//
// A Tracker never calls its Recorder concurrently, and a Completed for a duration that a
// Reset has already discarded is dropped, so Cleared is never followed by a stale value.
type Recorder interface {
	// Completed is called after Stop stores a duration for tag
	Completed(tag string, d time.Duration)

	// Unmatched is called when Stop finds no start time for tag
	Unmatched(tag string)

	// Cleared is called after Reset
	Cleared()
}

type nopRecorder struct{}

func (nopRecorder) Completed(string, time.Duration) {}
func (nopRecorder) Unmatched(string)                {}
func (nopRecorder) Cleared()                        {}
