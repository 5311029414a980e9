/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package project loads a tokenwind project and renders its stylesheets.
package project

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"bennypowers.dev/tokenwind/config"
	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/internal/logger"
	"bennypowers.dev/tokenwind/load"
	"bennypowers.dev/tokenwind/preset"
	"bennypowers.dev/tokenwind/token"
	"bennypowers.dev/tokenwind/typography"
)

// ErrNoTypography is returned when rendering typography for a project
// without a typography file.
var ErrNoTypography = errors.New("no typography file configured")

// Options configures Open.
type Options struct {
	// FS is the filesystem to read from. Defaults to the OS filesystem.
	FS fs.FileSystem

	// RootDir is the project root holding .config/tokenwind.*.
	RootDir string

	// Config overrides the discovered config file when non-nil.
	Config *config.Config

	// DefaultTheme overrides the configured default theme when non-empty.
	DefaultTheme string

	// Load configures network fetches.
	Load load.Options
}

// Project is a fully loaded set of themes and typography styles.
type Project struct {
	Config  *config.Config
	RootDir string

	// Sources are the resolved theme files, in order.
	Sources []config.ThemeSource

	// Themes holds the loaded token sets, in Sources order.
	Themes token.ThemeSet

	// DefaultTheme names the theme rendered into the @theme block.
	DefaultTheme string

	// Styles are the typography styles, nil without a typography file.
	Styles []token.Style
}

// Open loads the config, themes and typography styles of a project.
func Open(ctx context.Context, opts Options) (*Project, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}
	rootDir := opts.RootDir
	if rootDir == "" {
		rootDir = "."
	}

	cfg := opts.Config
	if cfg == nil {
		loaded, err := config.Load(filesystem, rootDir)
		if err != nil {
			return nil, err
		}
		if loaded == nil {
			return nil, fmt.Errorf("no config found in %s", filepath.Join(rootDir, config.ConfigDir))
		}
		cfg = loaded
	}

	sources, err := cfg.ResolveThemes(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, &preset.ConfigurationError{Message: "at least one theme must be provided"}
	}

	loadOpts := opts.Load
	loadOpts.FS = filesystem

	themes, err := load.Themes(ctx, sources, loadOpts)
	if err != nil {
		return nil, err
	}

	p := &Project{
		Config:       cfg,
		RootDir:      rootDir,
		Sources:      sources,
		Themes:       themes,
		DefaultTheme: cfg.DefaultThemeName(sources),
	}
	if opts.DefaultTheme != "" {
		p.DefaultTheme = opts.DefaultTheme
	}

	typoPath, err := cfg.ResolveTypography(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	if typoPath != "" {
		styles, err := load.Styles(ctx, typoPath, loadOpts)
		if err != nil {
			return nil, err
		}
		p.Styles = styles
	}

	logger.Debug("opened project %s: %d themes, default %q", rootDir, len(themes), p.DefaultTheme)
	return p, nil
}

// HasTypography reports whether a typography file was loaded.
func (p *Project) HasTypography() bool {
	return p.Styles != nil
}

// Default returns the default theme.
func (p *Project) Default() (token.Theme, error) {
	i := p.Themes.Index(p.DefaultTheme)
	if i < 0 {
		return token.Theme{}, &preset.ConfigurationError{
			Message: fmt.Sprintf("default theme %q not found in themes", p.DefaultTheme),
		}
	}
	return p.Themes[i], nil
}

// Render produces the text of a single part.
func (p *Project) Render(part config.Part) (string, error) {
	switch part {
	case config.PartTheme:
		theme, err := p.Default()
		if err != nil {
			return "", err
		}
		return preset.Theme(theme.Tokens, preset.ThemeOptions{
			Exclude: p.Config.Exclude,
			Mapper:  p.Config.Mapper(),
		}), nil
	case config.PartThemes:
		return preset.Themes(p.Themes, p.DefaultTheme)
	case config.PartTypography:
		if !p.HasTypography() {
			return "", ErrNoTypography
		}
		return typography.Utilities(p.Styles), nil
	default:
		return "", fmt.Errorf("unknown part %q", part)
	}
}

// Output renders every part of out, joined by newlines.
// The typography part is left out when no typography file is configured;
// ErrNoTypography is returned only when nothing else remains.
// The result always ends with a newline.
func (p *Project) Output(out config.OutputSpec) (string, error) {
	parts := make([]string, 0, len(out.Include))
	for _, part := range out.Include {
		text, err := p.Render(part)
		if errors.Is(err, ErrNoTypography) {
			logger.Debug("%s: omitting %s: %v", out.Path, part, err)
			continue
		}
		if err != nil {
			return "", fmt.Errorf("%s: %w", part, err)
		}
		parts = append(parts, text)
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("%s: %w", config.PartTypography, ErrNoTypography)
	}

	text := strings.Join(parts, "\n")
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, nil
}
