// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// SourceMonotonic selects System, which keeps the monotonic clock reading.
	SourceMonotonic = "monotonic"

	// SourceWall selects Wall, which reports wall-clock time only.
	SourceWall = "wall"
)

// ErrUnknownSource is returned by ParseSource for unrecognized clock source names.
var ErrUnknownSource = errors.New("unknown clock source")

// Interface represents a clock with the subset of the stdlib time package that timing code needs
type Interface interface {
	Now() time.Time
	Sleep(time.Duration)
}

type systemClock struct{}

func (sc systemClock) Now() time.Time {
	return time.Now()
}

func (sc systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// wallClock strips the monotonic reading, so differences between two readings
// follow adjustments of the system clock and may be negative.
type wallClock struct {
	systemClock
}

func (wc wallClock) Now() time.Time {
	return time.Now().Round(0)
}

// System returns a clock backed by the time package.  Times returned by this clock
// carry a monotonic reading.
func System() Interface {
	return systemClock{}
}

// Wall returns a clock backed by the time package that only reports wall-clock time,
// the equivalent of reading milliseconds since the epoch.
func Wall() Interface {
	return wallClock{}
}

// ParseSource returns the clock for a configured source name.  The empty string,
// "system", and SourceMonotonic all yield System.
func ParseSource(name string) (Interface, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "system", SourceMonotonic:
		return System(), nil

	case SourceWall:
		return Wall(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
}
