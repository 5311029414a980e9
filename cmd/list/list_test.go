/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"bennypowers.dev/tokenwind/cmd/render"
	"bennypowers.dev/tokenwind/internal/logger"
	"bennypowers.dev/tokenwind/testutil"
)

func TestFilterRows(t *testing.T) {
	rows := []render.Row{
		{ID: "fontSizeBase300", Category: "text"},
		{ID: "lineHeightBase300", Category: "leading"},
		{ID: "fontSizeBase400", Category: "text"},
		{ID: "colorBrand"},
	}

	t.Run("no filter", func(t *testing.T) {
		if result := filterRows(rows, ""); len(result) != 4 {
			t.Errorf("expected 4 rows, got %d", len(result))
		}
	})

	t.Run("by category", func(t *testing.T) {
		result := filterRows(rows, "text")
		if len(result) != 2 {
			t.Fatalf("expected 2 text rows, got %d", len(result))
		}
		for _, r := range result {
			if r.Category != "text" {
				t.Errorf("expected category text, got %s", r.Category)
			}
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		if result := filterRows(rows, "shadow"); len(result) != 0 {
			t.Errorf("expected no rows, got %d", len(result))
		}
	})
}

func TestList_ProjectJSON(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/cli/basic", "/project")

	var buf bytes.Buffer
	err := execute(context.Background(), mfs, &buf, options{
		RootDir: "/project",
		Format:  render.FormatJSON,
		Theme:   "dark",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rows []render.Row
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[0].ID != "colorBrand" || rows[0].Value != "#115ea3" {
		t.Errorf("expected dark colorBrand first, got %+v", rows[0])
	}
	if rows[3].PublicName != "--radius-medium" || rows[3].Category != "radius" {
		t.Errorf("unexpected radius row %+v", rows[3])
	}
}

func TestList_ProjectTableCategory(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/cli/basic", "/project")

	var buf bytes.Buffer
	err := execute(context.Background(), mfs, &buf, options{
		RootDir:  "/project",
		Format:   render.FormatTable,
		Category: "text",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := strings.Join([]string{
		"Public          Raw                Category  Value",
		"--text-base300  --fontSizeBase300  Text      14px",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Errorf("table mismatch\ngot:\n%q\nwant:\n%q", buf.String(), expected)
	}
}

func TestList_UnknownTheme(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/cli/basic", "/project")

	err := execute(context.Background(), mfs, &bytes.Buffer{}, options{RootDir: "/project", Theme: "sepia"})
	if err == nil || !strings.Contains(err.Error(), `theme "sepia" not found`) {
		t.Errorf("expected theme not found error, got %v", err)
	}
}

func TestList_Files(t *testing.T) {
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	mfs := testutil.NewFixtureFS(t, "fixtures/cli/divergent", "/project")

	var buf bytes.Buffer
	err := execute(context.Background(), mfs, &buf, options{
		RootDir: "/project",
		Files:   []string{"/project/dark.json", "/project/missing.json"},
		Format:  render.FormatJSON,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rows []render.Row
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(rows) != 2 || rows[0].Source != "/project/dark.json" {
		t.Errorf("unexpected rows %+v", rows)
	}

	err = execute(context.Background(), mfs, &bytes.Buffer{}, options{
		RootDir: "/project",
		Files:   []string{"/project/missing.json"},
	})
	if err == nil {
		t.Error("expected error when no file could be read")
	}
}
