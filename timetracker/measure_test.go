// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timetracker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	t.Run("ReturnsValue", func(t *testing.T) {
		var (
			assert               = assert.New(t)
			require              = require.New(t)
			tracker, clock, sink = newTestTracker()
		)

		result := Measure(tracker, "x", func() int {
			clock.Add(250 * time.Millisecond)
			return 42
		})

		assert.Equal(42, result)
		d, ok := tracker.Duration("x")
		require.True(ok)
		assert.Equal(250*time.Millisecond, d)
		assert.Equal(
			[]string{"Started timer for [x]", "Stopped timer for [x], duration: 250ms"},
			messages(sink),
		)
	})

	t.Run("ReturnedError", func(t *testing.T) {
		var (
			assert        = assert.New(t)
			tracker, _, _ = newTestTracker()
			expectedErr   = errors.New("expected")
		)

		err := Measure(tracker, "failing", func() error { return expectedErr })
		assert.Equal(expectedErr, err)

		_, ok := tracker.Duration("failing")
		assert.True(ok)
	})

	t.Run("PanicSkipsStop", func(t *testing.T) {
		var (
			assert               = assert.New(t)
			tracker, clock, sink = newTestTracker()
		)

		assert.PanicsWithValue("block failure", func() {
			Measure(tracker, "x", func() int {
				panic("block failure")
			})
		})

		_, ok := tracker.Duration("x")
		assert.False(ok)
		assert.Equal([]string{"Started timer for [x]"}, messages(sink))

		// the start is still pending
		clock.Add(time.Second)
		tracker.Stop("x")
		d, ok := tracker.Duration("x")
		assert.True(ok)
		assert.Equal(time.Second, d)
	})

	t.Run("Disabled", func(t *testing.T) {
		var (
			assert           = assert.New(t)
			tracker, _, sink = newTestTracker(WithEnabled(false))
		)

		assert.Equal("value", Measure(tracker, "x", func() string { return "value" }))
		assert.Empty(messages(sink))
	})

	t.Run("Default", func(t *testing.T) {
		assert := assert.New(t)
		defer Reset()

		assert.Equal(7, Measure(nil, "measure-default", func() int { return 7 }))
		d, ok := GetDuration("measure-default")
		assert.True(ok)
		assert.GreaterOrEqual(d, time.Duration(0))
	})
}

func TestMeasureDeferred(t *testing.T) {
	t.Run("ReturnsValue", func(t *testing.T) {
		var (
			assert            = assert.New(t)
			tracker, clock, _ = newTestTracker()
		)

		result := MeasureDeferred(tracker, "x", func() int {
			clock.Add(time.Second)
			return 42
		})

		assert.Equal(42, result)
		d, ok := tracker.Duration("x")
		assert.True(ok)
		assert.Equal(time.Second, d)
	})

	t.Run("PanicStillStops", func(t *testing.T) {
		var (
			assert               = assert.New(t)
			require              = require.New(t)
			tracker, clock, sink = newTestTracker()
		)

		assert.PanicsWithValue("block failure", func() {
			MeasureDeferred(tracker, "x", func() int {
				clock.Add(300 * time.Millisecond)
				panic("block failure")
			})
		})

		d, ok := tracker.Duration("x")
		require.True(ok)
		assert.Equal(300*time.Millisecond, d)
		assert.Equal(
			[]string{"Started timer for [x]", "Stopped timer for [x], duration: 300ms"},
			messages(sink),
		)
	})
}
