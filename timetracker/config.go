// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timetracker

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/xmidt-org/timetracker/clock"
)

const (
	// TrackerKey is the Viper subkey under which tracker configuration is stored
	TrackerKey = "timetracker"
)

// Options is the externally configurable part of a Tracker
type Options struct {
	// Enabled is the initial state of the enabled flag.  Defaults to true.
	Enabled bool `json:"enabled"`

	// Clock names the time source, as understood by clock.ParseSource
	Clock string `json:"clock"`
}

// Sub returns the child Viper under TrackerKey.  If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(TrackerKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance.  Keys missing
// from v keep their defaults.
func FromViper(v *viper.Viper) (*Options, error) {
	o := &Options{Enabled: true}
	if v != nil {
		if err := v.Unmarshal(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// NewTracker creates a Tracker from these options.  The extra options are applied
// afterwards and may override the configured values.  A nil Options is the same as
// the defaults.
func (o *Options) NewTracker(extra ...Option) (*Tracker, error) {
	var (
		enabled = true
		source  string
	)

	if o != nil {
		enabled = o.Enabled
		source = o.Clock
	}

	c, err := clock.ParseSource(source)
	if err != nil {
		return nil, fmt.Errorf("timetracker configuration: %w", err)
	}

	return New(
		append([]Option{WithEnabled(enabled), WithClock(c)}, extra...)...,
	), nil
}
