// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timetracker

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/timetracker/clock"
)

func TestSub(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		v       = viper.New()
	)

	assert.Nil(Sub(nil))
	assert.Nil(Sub(v))

	v.SetConfigType("json")
	require.NoError(v.ReadConfig(strings.NewReader(`
		{"timetracker": {
			"enabled": false,
			"clock": "wall"
		}}
	`)))

	child := Sub(v)
	require.NotNil(child)
	assert.False(child.GetBool("enabled"))
	assert.Equal("wall", child.GetString("clock"))
}

func TestFromViper(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert := assert.New(t)
		o, err := FromViper(nil)
		assert.NoError(err)
		assert.Equal(&Options{Enabled: true}, o)
	})

	t.Run("Missing", func(t *testing.T) {
		assert := assert.New(t)
		o, err := FromViper(viper.New())
		assert.NoError(err)
		assert.Equal(&Options{Enabled: true}, o)
	})

	t.Run("Unmarshal", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
			v       = viper.New()
		)

		v.SetConfigType("json")
		require.NoError(v.ReadConfig(strings.NewReader(`{"enabled": false, "clock": "wall"}`)))

		o, err := FromViper(v)
		require.NoError(err)
		assert.Equal(&Options{Enabled: false, Clock: "wall"}, o)
	})

	t.Run("Error", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
			v       = viper.New()
		)

		v.SetConfigType("json")
		require.NoError(v.ReadConfig(strings.NewReader(`{"enabled": "not a boolean"}`)))

		o, err := FromViper(v)
		assert.Nil(o)
		assert.Error(err)
	})
}

func TestOptionsNewTracker(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
			o       *Options
		)

		tracker, err := o.NewTracker()
		require.NoError(err)
		assert.True(tracker.Enabled())
		assert.Equal(clock.System(), tracker.clock)
	})

	t.Run("Configured", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
			o       = &Options{Enabled: false, Clock: "wall"}
		)

		tracker, err := o.NewTracker(WithSink(nil))
		require.NoError(err)
		assert.False(tracker.Enabled())
		assert.Equal(clock.Wall(), tracker.Clock())
		assert.Nil(tracker.Sink())
	})

	t.Run("ExtraOverrides", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			require = require.New(t)
			o       = &Options{Enabled: false}
		)

		tracker, err := o.NewTracker(WithEnabled(true))
		require.NoError(err)
		assert.True(tracker.Enabled())
	})

	t.Run("UnknownClock", func(t *testing.T) {
		var (
			assert = assert.New(t)
			o      = &Options{Enabled: true, Clock: "sundial"}
		)

		tracker, err := o.NewTracker()
		assert.Nil(tracker)
		assert.True(errors.Is(err, clock.ErrUnknownSource))
	})
}
