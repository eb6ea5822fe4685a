// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
)

const (
	DefaultNamespace = "timetracker"
	DefaultSubsystem = "timers"

	// MetricsKey is the Viper subkey under which metrics configuration is stored
	MetricsKey = "metrics"
)

// Options is the configurable options for creating a Prometheus registry
type Options struct {
	// Namespace is the namespace for all metrics.  If not supplied, DefaultNamespace is used.
	Namespace string `json:"namespace"`

	// Subsystem is the subsystem for all metrics.  If not supplied, DefaultSubsystem is used.
	Subsystem string `json:"subsystem"`

	// Pedantic indicates whether the registry is created via NewPedanticRegistry().  By default, this is false.  Set
	// to true for testing or development.
	Pedantic bool `json:"pedantic"`

	// DisableGoCollector controls whether the Go Collector is registered with the Registry.  By default this is false,
	// meaning that a GoCollector is registered.
	DisableGoCollector bool `json:"disableGoCollector"`

	// DisableProcessCollector controls whether the Process Collector is registered with the Registry.  By default this is false,
	// meaning that a ProcessCollector is registered.
	DisableProcessCollector bool `json:"disableProcessCollector"`
}

func (o *Options) namespace() string {
	if o != nil && len(o.Namespace) > 0 {
		return o.Namespace
	}

	return DefaultNamespace
}

func (o *Options) subsystem() string {
	if o != nil && len(o.Subsystem) > 0 {
		return o.Subsystem
	}

	return DefaultSubsystem
}

func (o *Options) registry() *prometheus.Registry {
	var pr *prometheus.Registry
	if o != nil && o.Pedantic {
		pr = prometheus.NewPedanticRegistry()
	} else {
		pr = prometheus.NewRegistry()
	}

	if o == nil || !o.DisableGoCollector {
		pr.MustRegister(prometheus.NewGoCollector())
	}

	if o == nil || !o.DisableProcessCollector {
		pr.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	}

	return pr
}

// Sub returns the child Viper under MetricsKey.  If passed nil, this function returns nil.
func Sub(v *viper.Viper) *viper.Viper {
	if v != nil {
		return v.Sub(MetricsKey)
	}

	return nil
}

// FromViper produces an Options from a (possibly nil) Viper instance
func FromViper(v *viper.Viper) (*Options, error) {
	o := new(Options)
	if v != nil {
		if err := v.Unmarshal(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}
