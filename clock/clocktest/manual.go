// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package clocktest

import (
	"sync"
	"time"

	"github.com/xmidt-org/timetracker/clock"
)

// Manual is a clock.Interface whose time only moves when told to.  Sleep advances
// the clock by the requested duration without blocking.
type Manual struct {
	lock sync.Mutex
	now  time.Time
}

var _ clock.Interface = (*Manual)(nil)

// NewManual creates a Manual clock that starts at the given time
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.now
}

// Add moves the clock by d, which may be negative to simulate a backward adjustment
func (m *Manual) Add(d time.Duration) {
	m.lock.Lock()
	m.now = m.now.Add(d)
	m.lock.Unlock()
}

func (m *Manual) Sleep(d time.Duration) {
	m.Add(d)
}
