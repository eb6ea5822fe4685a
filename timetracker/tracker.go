// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timetracker

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/xmidt-org/timetracker/clock"
	"github.com/xmidt-org/timetracker/logging"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Name is the category label passed to the Sink with every message
const Name = "TimeTracker"

// Tracker is a registry of named timers.  Each tag independently moves from absent to
// pending (Start) to completed (Stop); Start re-enters pending from any state and Reset
// returns every tag to absent.
//
// A Tracker is safe for concurrent use.  The Sink is invoked without holding the
// Tracker's lock, so it may call back into the Tracker.  Recorder calls are serialized
// with each other, and a Recorder must not call back into the Tracker.
type Tracker struct {
	lock       sync.Mutex
	recordLock sync.Mutex

	// generation counts Resets, so a Stop can tell its duration was cleared before
	// the Recorder heard about it
	generation atomic.Uint64

	enabled   bool
	sink      logging.Sink
	recorder  Recorder
	clock     clock.Interface
	starts    map[string]time.Time
	durations map[string]time.Duration
}

// New creates an enabled Tracker that uses clock.System() and logging.DefaultSink(),
// modified by the given options.
func New(o ...Option) *Tracker {
	t := &Tracker{
		enabled:   true,
		sink:      logging.DefaultSink(),
		recorder:  nopRecorder{},
		clock:     clock.System(),
		starts:    make(map[string]time.Time),
		durations: make(map[string]time.Duration),
	}

	for _, f := range o {
		f(t)
	}

	return t
}

func emit(s logging.Sink, message string) {
	if s != nil {
		s.Emit(Name, message)
	}
}

// Enabled reports whether this Tracker is recording
func (t *Tracker) Enabled() bool {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.enabled
}

// SetEnabled turns recording on or off.  Recorded state is kept while disabled.
func (t *Tracker) SetEnabled(enabled bool) {
	t.lock.Lock()
	t.enabled = enabled
	t.lock.Unlock()
}

// Sink returns the current Sink, which may be nil
func (t *Tracker) Sink() logging.Sink {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.sink
}

// SetSink replaces the Sink.  A nil Sink silences this Tracker.
func (t *Tracker) SetSink(s logging.Sink) {
	t.lock.Lock()
	t.sink = s
	t.lock.Unlock()
}

// Clock returns the time source this Tracker measures with
func (t *Tracker) Clock() clock.Interface {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.clock
}

// Start records the current time for tag, replacing any pending start
func (t *Tracker) Start(tag string) {
	t.lock.Lock()
	if !t.enabled {
		t.lock.Unlock()
		return
	}

	t.starts[tag] = t.clock.Now()
	sink := t.sink
	t.lock.Unlock()

	emit(sink, fmt.Sprintf("Started timer for [%s]", tag))
}

// Stop stores the time elapsed since the pending start of tag.  The start time is
// left in place, so a second Stop measures from the same start.  A Stop with no start
// only emits a message.
func (t *Tracker) Stop(tag string) {
	t.lock.Lock()
	if !t.enabled {
		t.lock.Unlock()
		return
	}

	sink, recorder := t.sink, t.recorder
	start, ok := t.starts[tag]
	if !ok {
		t.lock.Unlock()
		emit(sink, fmt.Sprintf("No start time found for tag: %s", tag))

		t.recordLock.Lock()
		defer t.recordLock.Unlock()
		recorder.Unmatched(tag)
		return
	}

	// no clamping: a wall clock moved backwards yields a negative duration
	d := t.clock.Now().Sub(start)
	t.durations[tag] = d
	generation := t.generation.Load()
	t.lock.Unlock()

	emit(sink, fmt.Sprintf("Stopped timer for [%s], duration: %dms", tag, d.Milliseconds()))

	t.recordLock.Lock()
	defer t.recordLock.Unlock()
	if t.generation.Load() == generation {
		recorder.Completed(tag, d)
	}
}

// Duration returns the duration measured by the last Stop for tag.  The second return
// is false when disabled or when no duration has been recorded.
func (t *Tracker) Duration(tag string) (time.Duration, bool) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if !t.enabled {
		return 0, false
	}

	d, ok := t.durations[tag]
	return d, ok
}

// Durations returns a copy of every recorded duration, or nil when disabled
func (t *Tracker) Durations() map[string]time.Duration {
	t.lock.Lock()
	defer t.lock.Unlock()

	if !t.enabled {
		return nil
	}

	return maps.Clone(t.durations)
}

// PrintAllDurations emits one message per recorded duration, ordered by tag
func (t *Tracker) PrintAllDurations() {
	t.lock.Lock()
	if !t.enabled {
		t.lock.Unlock()
		return
	}

	var (
		sink      = t.sink
		durations = maps.Clone(t.durations)
	)

	t.lock.Unlock()

	tags := maps.Keys(durations)
	slices.Sort(tags)
	for _, tag := range tags {
		emit(sink, fmt.Sprintf("[%s] took %dms", tag, durations[tag].Milliseconds()))
	}
}

// Reset discards all start times and durations.  Unlike the other operations, it
// acts and emits its message even when the Tracker is disabled.
func (t *Tracker) Reset() {
	t.lock.Lock()
	t.starts = make(map[string]time.Time)
	t.durations = make(map[string]time.Duration)
	t.generation.Add(1)
	sink, recorder := t.sink, t.recorder
	t.lock.Unlock()

	emit(sink, "All timers cleared")

	t.recordLock.Lock()
	defer t.recordLock.Unlock()
	recorder.Cleared()
}
