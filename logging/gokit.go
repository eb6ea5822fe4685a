// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type goKitSink struct {
	logger log.Logger
}

func (gs goKitSink) Emit(tag, message string) {
	level.Debug(gs.logger).Log(categoryKey, tag, messageKey, message)
}

// NewGoKitSink adapts a go-kit Logger.  Entries are logged at debug level, so a
// level filter on l decides whether they are output.  A nil logger yields a NOP sink.
func NewGoKitSink(l log.Logger) Sink {
	if l == nil {
		return Nop()
	}

	return goKitSink{logger: l}
}
