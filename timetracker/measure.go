// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timetracker

// Measure times block under tag and returns its result.  If t is nil, Default() is used.
//
// Stop is not called if block panics, which leaves tag pending.  Use MeasureDeferred
// when the timer must be stopped regardless.
func Measure[T any](t *Tracker, tag string, block func() T) T {
	if t == nil {
		t = Default()
	}

	t.Start(tag)
	result := block()
	t.Stop(tag)
	return result
}

// MeasureDeferred is like Measure, except that Stop is deferred and therefore also runs
// when block panics.  The panic still propagates to the caller.
func MeasureDeferred[T any](t *Tracker, tag string, block func() T) T {
	if t == nil {
		t = Default()
	}

	t.Start(tag)
	defer t.Stop(tag)
	return block()
}
