/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier

import (
	"fmt"
	"path/filepath"
	"strings"

	twfs "bennypowers.dev/tokenwind/fs"
)

// Resolve maps a package specifier to a file under the nearest node_modules,
// walking up from rootDir. rootDir must be absolute.
func Resolve(filesystem twfs.FileSystem, rootDir, spec string) (string, error) {
	parsed := Parse(spec)
	if parsed.Kind == KindLocal {
		return "", fmt.Errorf("invalid package specifier %q: expected npm:<package>/<file> or jsr:@<scope>/<package>/<file>", spec)
	}
	if !filepath.IsAbs(rootDir) {
		return "", fmt.Errorf("rootDir must be an absolute path, got: %s", rootDir)
	}

	dir := rootDir
	for {
		base := filepath.Join(dir, "node_modules")
		candidate := filepath.Clean(filepath.Join(base, parsed.installedName(), parsed.File))

		if !isInsideDir(candidate, base) {
			return "", fmt.Errorf("path traversal detected in specifier: %s", spec)
		}
		if filesystem.Exists(candidate) {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("package not found: %s (looked in node_modules starting from %s)", parsed.Package, rootDir)
}

func isInsideDir(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
