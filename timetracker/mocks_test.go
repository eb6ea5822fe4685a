// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package timetracker

import (
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/timetracker/logging"
)

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Completed(tag string, d time.Duration) {
	m.Called(tag, d)
}

func (m *mockRecorder) Unmatched(tag string) {
	m.Called(tag)
}

func (m *mockRecorder) Cleared() {
	m.Called()
}

// gaugeRecorder keeps the last completed duration per tag, the way a gauge vector does.
// It has no lock of its own.
type gaugeRecorder struct {
	values map[string]time.Duration
}

func newGaugeRecorder() *gaugeRecorder {
	return &gaugeRecorder{values: make(map[string]time.Duration)}
}

func (g *gaugeRecorder) Completed(tag string, d time.Duration) {
	g.values[tag] = d
}

func (g *gaugeRecorder) Unmatched(string) {}

func (g *gaugeRecorder) Cleared() {
	g.values = make(map[string]time.Duration)
}

// messages drains everything currently buffered in a capture sink
func messages(sink logging.CaptureSink) []string {
	var result []string
	for {
		select {
		case e := <-sink.Output():
			result = append(result, e.Message)
		default:
			return result
		}
	}
}
