/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load reads theme token files and typography styles.
package load

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bennypowers.dev/tokenwind/config"
	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/internal/logger"
	"bennypowers.dev/tokenwind/token"
)

// Options configures how token files are read.
type Options struct {
	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Fetcher reads http(s) sources. Defaults to an HTTPFetcher limited to
	// DefaultMaxSize.
	Fetcher Fetcher

	// FetchTimeout is the maximum time to wait for each network fetch.
	// Defaults to DefaultTimeout when zero.
	FetchTimeout time.Duration
}

func (o Options) filesystem() fs.FileSystem {
	if o.FS == nil {
		return fs.NewOSFileSystem()
	}
	return o.FS
}

// Themes reads every theme source in order.
func Themes(ctx context.Context, sources []config.ThemeSource, opts Options) (token.ThemeSet, error) {
	themes := make(token.ThemeSet, 0, len(sources))
	for _, src := range sources {
		data, err := Read(ctx, src.Path, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to read theme %q: %w", src.Name, err)
		}

		tokens, err := ParseSet(data)
		if err != nil {
			return nil, annotate(src.Path, err)
		}

		logger.Debug("loaded theme %s: %d tokens from %s", src.Name, tokens.Len(), src.Path)
		themes = append(themes, token.Theme{Name: src.Name, Tokens: tokens})
	}
	return themes, nil
}

// Styles reads the typography styles file at path.
func Styles(ctx context.Context, path string, opts Options) ([]token.Style, error) {
	data, err := Read(ctx, path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read typography styles: %w", err)
	}

	styles, err := ParseStyles(data)
	if err != nil {
		return nil, annotate(path, err)
	}

	logger.Debug("loaded %d typography styles from %s", len(styles), path)
	return styles, nil
}

// Set reads a single flat token file.
func Set(ctx context.Context, path string, opts Options) (*token.Set, error) {
	data, err := Read(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	tokens, err := ParseSet(data)
	if err != nil {
		return nil, annotate(path, err)
	}
	return tokens, nil
}

// Read returns the content of a file path or http(s) URL.
func Read(ctx context.Context, path string, opts Options) ([]byte, error) {
	if !config.IsURL(path) {
		return opts.filesystem().ReadFile(path)
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = NewHTTPFetcher(DefaultMaxSize)
	}
	timeout := opts.FetchTimeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return fetcher.Fetch(fetchCtx, path)
}

// annotate attaches the source path to parse errors.
func annotate(path string, err error) error {
	var unsupported *UnsupportedValueError
	if errors.As(err, &unsupported) {
		unsupported.Path = path
		return unsupported
	}
	return fmt.Errorf("%s: %w", path, err)
}
