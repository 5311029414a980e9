/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package logger_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"bennypowers.dev/tokenwind/internal/logger"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})

	logger.Debug("hidden %d", 1)
	logger.Info("wrote %s", "presets/themes.css")
	logger.Warn("theme %q is missing %d token(s)", "web-dark", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged without verbose mode: %q", out)
	}
	if !strings.Contains(out, "wrote presets/themes.css") {
		t.Errorf("expected info message, got %q", out)
	}
	if !strings.Contains(out, `theme "web-dark" is missing 2 token(s)`) {
		t.Errorf("expected warning message, got %q", out)
	}

	buf.Reset()
	logger.SetVerbose(true)
	logger.Debug("shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("expected debug message in verbose mode, got %q", buf.String())
	}
}

func TestSilenced(t *testing.T) {
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	// must not panic or write anywhere
	logger.Error("boom")
}
