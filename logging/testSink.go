// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

// testLogger is implemented by testing.T and testing.B
type testLogger interface {
	Log(...interface{})
}

type testSink struct {
	testLogger
}

func (ts testSink) Emit(tag, message string) {
	ts.testLogger.Log(tag + ": " + message)
}

// NewTestSink produces a Sink which delegates to the supplied testing log
func NewTestSink(t testLogger) Sink {
	return testSink{t}
}
