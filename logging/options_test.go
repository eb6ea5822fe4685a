// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func testOptionsOutput(t *testing.T) {
	assert := assert.New(t)

	for _, o := range []*Options{nil, &Options{File: StdoutFile}} {
		output := o.output()
		assert.NotNil(output)
		assert.NotPanics(func() {
			_, err := output.Write([]byte("expected output: this shouldn't panic\n"))
			assert.NoError(err)
		})
	}
}

func testOptionsRollingFile(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		file    = filepath.Join(t.TempDir(), "timetracker.log")
		rolling = &Options{
			File:       file,
			MaxSize:    1,
			MaxAge:     9,
			MaxBackups: 2,
			JSON:       true,
			Level:      "debug",
		}
	)

	logger := New(rolling)
	require.NotNil(logger)
	logger.Debug("rolled message")

	contents, err := os.ReadFile(file)
	require.NoError(err)
	assert.Contains(string(contents), `"msg":"rolled message"`)
}

func testOptionsLevel(t *testing.T) {
	testData := []struct {
		options  *Options
		expected zapcore.Level
	}{
		{nil, zapcore.ErrorLevel},
		{new(Options), zapcore.ErrorLevel},
		{&Options{Level: "unrecognized"}, zapcore.ErrorLevel},
		{&Options{Level: "debug"}, zapcore.DebugLevel},
		{&Options{Level: "Info"}, zapcore.InfoLevel},
		{&Options{Level: "WARN"}, zapcore.WarnLevel},
		{&Options{Level: "error"}, zapcore.ErrorLevel},
	}

	for _, record := range testData {
		assert.Equal(t, record.expected, record.options.level())
	}
}

func testOptionsNew(t *testing.T) {
	assert := assert.New(t)

	for _, o := range []*Options{nil, new(Options), &Options{JSON: true}, &Options{Level: "info"}} {
		logger := New(o)
		if assert.NotNil(logger) {
			assert.False(logger.Core().Enabled(zapcore.DebugLevel))
		}
	}

	assert.True(New(&Options{Level: "debug"}).Core().Enabled(zapcore.DebugLevel))
}

func TestOptions(t *testing.T) {
	t.Run("Output", testOptionsOutput)
	t.Run("RollingFile", testOptionsRollingFile)
	t.Run("Level", testOptionsLevel)
	t.Run("New", testOptionsNew)
}
