/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := write(&buf, "text"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(buf.String(), "tokenwind ") {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := write(&buf, "json"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var info map[string]string
		if err := json.Unmarshal(buf.Bytes(), &info); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if info["version"] == "" {
			t.Error("expected version key")
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := write(&bytes.Buffer{}, "xml"); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}
