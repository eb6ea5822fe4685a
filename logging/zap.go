// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"os"
	"sync"

	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// defaultLogger is the stdout debug logger behind DefaultSink, created on first use
var defaultLogger = sync.OnceValue(func() *zap.Logger {
	return newDebugLogger(zapcore.Lock(os.Stdout))
})

// newDebugLogger writes console-encoded entries at every level to output
func newDebugLogger(output zapcore.WriteSyncer) *zap.Logger {
	o := &Options{Level: "DEBUG"}
	return zap.New(
		zapcore.NewCore(o.encoder(), output, o.level()),
	)
}

type zapSink struct {
	logger *zap.Logger
}

func (zs zapSink) Emit(tag, message string) {
	zs.logger.Debug(message, zap.String(categoryKey, tag))
}

// NewZapSink produces a Sink that writes each message at debug level, with the tag
// under CategoryKey.  If l is nil, sallust.Default() is used, which discards everything
// unless the application has replaced it.
func NewZapSink(l *zap.Logger) Sink {
	if l == nil {
		l = sallust.Default()
	}

	return zapSink{logger: l}
}

// DefaultSink returns the Sink used when none is configured.  It writes debug entries
// to os.Stdout.
func DefaultSink() Sink {
	return NewZapSink(defaultLogger())
}
