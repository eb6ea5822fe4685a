// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xviper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultFileFlag = "file"
)

// Option is a configuration step applied to a Viper instance
type Option func(*viper.Viper) error

func AddConfigPaths(paths ...string) Option {
	return func(v *viper.Viper) error {
		for _, p := range paths {
			v.AddConfigPath(p)
		}

		return nil
	}
}

func SetEnvPrefix(prefix string) Option {
	return func(v *viper.Viper) error {
		v.SetEnvPrefix(prefix)
		return nil
	}
}

func SetConfigName(name string) Option {
	return func(v *viper.Viper) error {
		v.SetConfigName(name)
		return nil
	}
}

// AutomaticEnv enables environment overrides.  Nested keys map to variables with
// underscores, e.g. timetracker.clock is read from <PREFIX>_TIMETRACKER_CLOCK.
func AutomaticEnv(v *viper.Viper) error {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return nil
}

func BindPFlags(fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		return v.BindPFlags(fs)
	}
}

// BindConfigFile uses the value of the given flag, if set, as the exact configuration file
func BindConfigFile(fs *pflag.FlagSet, flag string) Option {
	return func(v *viper.Viper) error {
		if f := fs.Lookup(flag); f != nil {
			configFile := f.Value.String()
			if len(configFile) > 0 {
				v.SetConfigFile(configFile)
			}
		}

		return nil
	}
}

// Defaults maps configuration keys onto their default values
type Defaults map[string]interface{}

// ApplyDefaults returns an Option that sets each of the given defaults
func ApplyDefaults(d Defaults) Option {
	return func(v *viper.Viper) error {
		for key, value := range d {
			v.SetDefault(key, value)
		}

		return nil
	}
}

// StdOptions is the usual configuration for an application: the standard *nix-style
// configuration paths, environment variables prefixed with the application name, and
// the bound flags, with the flag named DefaultFileFlag selecting an exact file.
func StdOptions(applicationName string, fs *pflag.FlagSet) Option {
	return func(v *viper.Viper) error {
		return Configure(v,
			AddConfigPaths(
				fmt.Sprintf("/etc/%s", applicationName),
				fmt.Sprintf("$HOME/.%s", applicationName),
				".",
			),
			SetEnvPrefix(applicationName),
			AutomaticEnv,
			SetConfigName(applicationName),
			BindPFlags(fs),
			BindConfigFile(fs, DefaultFileFlag),
		)
	}
}

func New(o ...Option) (*viper.Viper, error) {
	v := viper.New()
	if err := Configure(v, o...); err != nil {
		return nil, err
	}

	return v, nil
}

// Configure applies each option in order, stopping at the first error
func Configure(v *viper.Viper, o ...Option) error {
	for _, f := range o {
		if err := f(v); err != nil {
			return err
		}
	}

	return nil
}

// ReadInConfig reads the configuration file.  Not finding a file in any of the
// configuration paths is not an error, since every key has a default.  An explicitly
// set file must exist.
func ReadInConfig(v *viper.Viper) error {
	err := v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}

	return err
}
