/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	twfs "bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/specifier"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "tokenwind"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json", ".toml"}

// Load searches for .config/tokenwind.{yaml,yml,json,toml} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem twfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := &Config{}
		switch ext {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, cfg)
		case ".json":
			err = json.Unmarshal(data, cfg)
		case ".toml":
			err = toml.Unmarshal(data, cfg)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}

		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found or invalid.
func LoadOrDefault(filesystem twfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ThemeSource is a theme file resolved from a ThemeSpec.
type ThemeSource struct {
	// Name is the theme name.
	Name string

	// Path is an absolute file path or an http(s) URL.
	Path string
}

// ResolveThemes expands globs and package specifiers in Themes and assigns
// theme names. Glob matches are named after their file base names.
// Duplicate names are an error.
func (c *Config) ResolveThemes(filesystem twfs.FileSystem, rootDir string) ([]ThemeSource, error) {
	var result []ThemeSource
	seen := make(map[string]string)

	add := func(src ThemeSource) error {
		if src.Name == "" {
			return fmt.Errorf("cannot derive a theme name from %q", src.Path)
		}
		if prev, dup := seen[src.Name]; dup {
			return fmt.Errorf("duplicate theme name %q (%s and %s)", src.Name, prev, src.Path)
		}
		seen[src.Name] = src.Path
		result = append(result, src)
		return nil
	}

	for _, spec := range c.Themes {
		if specifier.IsPackageSpecifier(spec.Path) {
			resolved, err := resolvePackage(filesystem, rootDir, spec.Path)
			if err != nil {
				return nil, err
			}
			if err := add(ThemeSource{Name: nameOr(spec.Name, resolved), Path: resolved}); err != nil {
				return nil, err
			}
			continue
		}

		if IsURL(spec.Path) {
			if err := add(ThemeSource{Name: nameOr(spec.Name, spec.Path), Path: spec.Path}); err != nil {
				return nil, err
			}
			continue
		}

		pattern := spec.Path
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(rootDir, pattern)
		}

		if !containsGlob(pattern) {
			if err := add(ThemeSource{Name: nameOr(spec.Name, pattern), Path: pattern}); err != nil {
				return nil, err
			}
			continue
		}

		if spec.Name != "" {
			return nil, fmt.Errorf("theme %q: name cannot be combined with glob %q", spec.Name, spec.Path)
		}

		matches, err := expandGlob(filesystem, pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no theme files match %q", spec.Path)
		}
		for _, m := range matches {
			if err := add(ThemeSource{Name: baseName(m), Path: m}); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// DefaultThemeName returns the configured default theme, or the first source's name.
func (c *Config) DefaultThemeName(sources []ThemeSource) string {
	if c.DefaultTheme != "" || len(sources) == 0 {
		return c.DefaultTheme
	}
	return sources[0].Name
}

// ResolveTypography returns the typography file resolved against rootDir,
// or "" when none is configured.
func (c *Config) ResolveTypography(filesystem twfs.FileSystem, rootDir string) (string, error) {
	switch {
	case specifier.IsPackageSpecifier(c.Typography):
		return resolvePackage(filesystem, rootDir, c.Typography)
	case c.Typography == "" || IsURL(c.Typography) || filepath.IsAbs(c.Typography):
		return c.Typography, nil
	default:
		return filepath.Join(rootDir, c.Typography), nil
	}
}

// resolvePackage finds an npm: or jsr: file under node_modules.
func resolvePackage(filesystem twfs.FileSystem, rootDir, spec string) (string, error) {
	if !filepath.IsAbs(rootDir) {
		abs, err := filepath.Abs(rootDir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve path %s: %w", rootDir, err)
		}
		rootDir = abs
	}
	return specifier.Resolve(filesystem, rootDir, spec)
}

// IsURL reports whether p is an http or https URL.
func IsURL(p string) bool {
	return strings.HasPrefix(p, "https://") || strings.HasPrefix(p, "http://")
}

func nameOr(name, p string) string {
	if name != "" {
		return name
	}
	return baseName(p)
}

// baseName returns the file name without directories or extension.
// URLs use their path component.
func baseName(p string) string {
	if IsURL(p) {
		p = strings.SplitN(p, "?", 2)[0]
		p = path.Base(p)
	} else {
		p = filepath.Base(p)
	}
	return strings.TrimSuffix(p, path.Ext(p))
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob expands a glob pattern against the filesystem.
// Matches are returned in lexical order.
func expandGlob(filesystem twfs.FileSystem, pattern string) ([]string, error) {
	// Find the base directory (non-glob prefix)
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't read
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(p, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, p)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
