// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry is a Prometheus registry that also creates and caches the vectors used by this package.
type Registry interface {
	prometheus.Gatherer
	prometheus.Registerer

	// NewCounterVec returns the counter vector with the given name, creating and registering it
	// on first use.  It panics if name is already used by a different type of metric.
	NewCounterVec(name, help string, labelNames ...string) *prometheus.CounterVec

	// NewGaugeVec is the gauge analog of NewCounterVec
	NewGaugeVec(name, help string, labelNames ...string) *prometheus.GaugeVec
}

// registry is the internal Registry implementation
type registry struct {
	*prometheus.Registry

	namespace string
	subsystem string

	lock  sync.Mutex
	cache map[string]prometheus.Collector
}

// register adds c under name, or returns the collector already registered for the same descriptor
func (r *registry) register(name string, c prometheus.Collector) prometheus.Collector {
	if err := r.Registry.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			c = already.ExistingCollector
		} else {
			panic(err)
		}
	}

	r.cache[name] = c
	return c
}

func (r *registry) NewCounterVec(name, help string, labelNames ...string) *prometheus.CounterVec {
	r.lock.Lock()
	defer r.lock.Unlock()

	existing, ok := r.cache[name]
	if !ok {
		existing = r.register(name, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      help,
		}, labelNames))
	}

	counterVec, ok := existing.(*prometheus.CounterVec)
	if !ok {
		panic(fmt.Errorf("The metric %s is not a counter", name))
	}

	return counterVec
}

func (r *registry) NewGaugeVec(name, help string, labelNames ...string) *prometheus.GaugeVec {
	r.lock.Lock()
	defer r.lock.Unlock()

	existing, ok := r.cache[name]
	if !ok {
		existing = r.register(name, prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: r.namespace,
			Subsystem: r.subsystem,
			Name:      name,
			Help:      help,
		}, labelNames))
	}

	gaugeVec, ok := existing.(*prometheus.GaugeVec)
	if !ok {
		panic(fmt.Errorf("The metric %s is not a gauge", name))
	}

	return gaugeVec
}

// NewRegistry creates a Registry from a (possibly nil) Options
func NewRegistry(o *Options) Registry {
	return &registry{
		Registry:  o.registry(),
		namespace: o.namespace(),
		subsystem: o.subsystem(),
		cache:     make(map[string]prometheus.Collector),
	}
}
