/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a leveled logger that can be silenced for the MCP server.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

var (
	// Default logs to stderr. Set to io.Discard for silent mode (MCP).
	output io.Writer = os.Stderr
	level            = zerolog.InfoLevel
	logger           = newLogger(output, level)
)

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}
	return zerolog.New(console).Level(lvl)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	output = w
	logger = newLogger(output, level)
}

// SetVerbose enables or disables debug messages.
func SetVerbose(verbose bool) {
	level = zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)
}

// Error logs an error message.
func Error(format string, args ...any) {
	logger.Error().Msg(fmt.Sprintf(format, args...))
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Warn().Msg(fmt.Sprintf(format, args...))
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Info().Msg(fmt.Sprintf(format, args...))
}

// Debug logs a debug message, shown only in verbose mode.
func Debug(format string, args ...any) {
	logger.Debug().Msg(fmt.Sprintf(format, args...))
}
