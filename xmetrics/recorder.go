// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"errors"
	"time"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/timetracker/timetracker"
)

const (
	LastDurationName   = "last_duration_seconds"
	StopsName          = "stops_total"
	UnmatchedStopsName = "unmatched_stops_total"
	ResetsName         = "resets_total"

	// TagLabel is the label carrying the timer tag
	TagLabel = "tag"
)

// ErrNilRegistry is returned by NewRecorder when no Registry is supplied
var ErrNilRegistry = errors.New("a Registry is required")

// Recorder is a timetracker.Recorder that maintains Prometheus metrics.  Only the most
// recent duration per tag is kept, as a gauge.
type Recorder struct {
	lastDurationVec *prometheus.GaugeVec

	lastDuration metrics.Gauge
	stops        metrics.Counter
	unmatched    metrics.Counter
	resets       metrics.Counter
}

var _ timetracker.Recorder = (*Recorder)(nil)

// NewRecorder creates the timer metrics in r
func NewRecorder(r Registry) (*Recorder, error) {
	if r == nil {
		return nil, ErrNilRegistry
	}

	lastDurationVec := r.NewGaugeVec(LastDurationName, "The duration measured by the most recent stop of a timer", TagLabel)
	return &Recorder{
		lastDurationVec: lastDurationVec,
		lastDuration:    gokitprometheus.NewGauge(lastDurationVec),
		stops:           gokitprometheus.NewCounter(r.NewCounterVec(StopsName, "The number of completed timers", TagLabel)),
		unmatched:       gokitprometheus.NewCounter(r.NewCounterVec(UnmatchedStopsName, "The number of stops without a start", TagLabel)),
		resets:          gokitprometheus.NewCounter(r.NewCounterVec(ResetsName, "The number of times all timers were cleared")),
	}, nil
}

func (r *Recorder) Completed(tag string, d time.Duration) {
	r.lastDuration.With(TagLabel, tag).Set(d.Seconds())
	r.stops.With(TagLabel, tag).Add(1.0)
}

func (r *Recorder) Unmatched(tag string) {
	r.unmatched.With(TagLabel, tag).Add(1.0)
}

// Cleared drops every last-duration series, since the tracker no longer holds them
func (r *Recorder) Cleared() {
	r.lastDurationVec.Reset()
	r.resets.Add(1.0)
}
