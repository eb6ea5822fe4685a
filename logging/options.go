// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	StdoutFile = "stdout"
)

// Options stores the configuration of a Logger.  Lumberjack is used for rolling files.
type Options struct {
	// File is the system file path for the log file.  If set to "stdout", this will log to os.Stdout.
	// Otherwise, a lumberjack.Logger is created
	File string `json:"file"`

	// MaxSize is the lumberjack MaxSize
	MaxSize int `json:"maxsize"`

	// MaxAge is the lumberjack MaxAge
	MaxAge int `json:"maxage"`

	// MaxBackups is the lumberjack MaxBackups
	MaxBackups int `json:"maxbackups"`

	// JSON is a flag indicating whether JSON logging output is used.  The default is false,
	// meaning that console output is used.
	JSON bool `json:"json"`

	// Level is the error level to output: ERROR, INFO, WARN, or DEBUG.  Any unrecognized string,
	// including the empty string, is equivalent to passing ERROR.
	Level string `json:"level"`
}

func (o *Options) output() zapcore.WriteSyncer {
	if o != nil && len(o.File) > 0 && o.File != StdoutFile {
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   o.File,
			MaxSize:    o.MaxSize,
			MaxAge:     o.MaxAge,
			MaxBackups: o.MaxBackups,
		})
	}

	return zapcore.Lock(os.Stdout)
}

func (o *Options) encoder() zapcore.Encoder {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.MessageKey = messageKey

	if o != nil && o.JSON {
		return zapcore.NewJSONEncoder(config)
	}

	return zapcore.NewConsoleEncoder(config)
}

func (o *Options) level() zapcore.Level {
	if o != nil {
		switch strings.ToUpper(o.Level) {
		case "DEBUG":
			return zapcore.DebugLevel

		case "INFO":
			return zapcore.InfoLevel

		case "WARN":
			return zapcore.WarnLevel
		}
	}

	return zapcore.ErrorLevel
}

// New creates a zap Logger from a set of options.  The options object can be nil,
// in which case a logger that writes errors to os.Stdout is returned.
func New(o *Options) *zap.Logger {
	return zap.New(
		zapcore.NewCore(o.encoder(), o.output(), o.level()),
	)
}
