// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"github.com/spf13/viper"
)

const (
	// LoggingKey is the Viper subkey under which logging should be stored.
	// FromViper *does not* assume this key.
	LoggingKey = "log"
)

// Sub returns the child Viper under LoggingKey, or nil if v is nil or has no such key.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(LoggingKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance.
// Callers should use FromViper(Sub(v)) if the standard subkey is desired.
func FromViper(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v != nil {
		if err := v.Unmarshal(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}
