/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package testutil loads tokenwind project fixtures into an in-memory
// filesystem and compares rendered stylesheets with golden files.
package testutil

import (
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"bennypowers.dev/tokenwind/internal/mapfs"
)

var updateGolden = flag.Bool("update", false, "update golden files with actual output")

// testdataPath returns the first testdata/rel found from the package
// directory or one of its two parents, or "" if none exists.
func testdataPath(rel string) string {
	for _, dir := range []string{".", "..", filepath.Join("..", "..")} {
		p := filepath.Join(dir, "testdata", rel)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// NewFixtureFS copies a testdata fixture project into a MapFileSystem,
// rooted at rootPath.
func NewFixtureFS(t *testing.T, fixtureDir string, rootPath string) *mapfs.MapFileSystem {
	t.Helper()

	dir := testdataPath(fixtureDir)
	if dir == "" {
		t.Fatalf("fixture %s not found", fixtureDir)
	}

	mfs := mapfs.New()
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		mfs.AddFile(filepath.Join(rootPath, rel), string(content), 0644)
		return nil
	})
	if err != nil {
		t.Fatalf("loading fixture %s: %v", fixtureDir, err)
	}
	return mfs
}

// LoadFixtureFile reads a single testdata file.
func LoadFixtureFile(t *testing.T, fixturePath string) []byte {
	t.Helper()

	p := testdataPath(fixturePath)
	if p == "" {
		t.Fatalf("fixture %s not found", fixturePath)
	}
	content, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("reading fixture %s: %v", fixturePath, err)
	}
	return content
}

// UpdateGoldenFile overwrites a golden stylesheet with actual when tests
// run with -update. New golden files go under the package's testdata.
func UpdateGoldenFile(t *testing.T, goldenPath string, actual []byte) {
	t.Helper()
	if !*updateGolden {
		return
	}

	target := testdataPath(goldenPath)
	if target == "" {
		target = filepath.Join("testdata", goldenPath)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		t.Fatalf("creating directory for %s: %v", goldenPath, err)
	}
	if err := os.WriteFile(target, actual, 0644); err != nil {
		t.Fatalf("writing golden file %s: %v", goldenPath, err)
	}
	t.Logf("updated golden file %s", target)
}
