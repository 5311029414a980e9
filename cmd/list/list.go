/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package list provides the list command for tokenwind.
package list

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenwind/cmd/render"
	"bennypowers.dev/tokenwind/config"
	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/internal/logger"
	"bennypowers.dev/tokenwind/load"
	"bennypowers.dev/tokenwind/preset"
	"bennypowers.dev/tokenwind/project"
)

// Cmd is the list cobra command.
var Cmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List tokens with their Tailwind names",
	Long: `List each token's identifier, raw variable, public Tailwind variable, category and value.

Without file arguments, lists the default theme of the configured project.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json")
	Cmd.Flags().String("category", "", "Only list tokens in this category (e.g. text, radius)")
	Cmd.Flags().String("theme", "", "Theme to list (default: the default theme)")
	Cmd.Flags().Bool("swatches", false, "Prefix color values with an ANSI color swatch")
}

type options struct {
	RootDir      string
	DefaultTheme string
	Files        []string
	Format       render.Format
	Category     string
	Theme        string
	Swatches     bool
}

func run(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	category, _ := cmd.Flags().GetString("category")
	theme, _ := cmd.Flags().GetString("theme")
	swatches, _ := cmd.Flags().GetBool("swatches")

	format, err := render.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	return execute(cmd.Context(), fs.NewOSFileSystem(), cmd.OutOrStdout(), options{
		RootDir:      viper.GetString("dir"),
		DefaultTheme: viper.GetString("default-theme"),
		Files:        args,
		Format:       format,
		Category:     category,
		Theme:        theme,
		Swatches:     swatches,
	})
}

func execute(ctx context.Context, filesystem fs.FileSystem, w io.Writer, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var rows []render.Row
	var err error
	if len(opts.Files) > 0 {
		rows, err = fileRows(ctx, filesystem, opts)
	} else {
		rows, err = projectRows(ctx, filesystem, opts)
	}
	if err != nil {
		return err
	}

	rows = filterRows(rows, opts.Category)

	switch opts.Format {
	case render.FormatJSON:
		return render.JSON(w, rows)
	default:
		return render.Tokens(w, rows, opts.Swatches)
	}
}

// fileRows lists each file argument, named with the project's naming rules.
func fileRows(ctx context.Context, filesystem fs.FileSystem, opts options) ([]render.Row, error) {
	mapper := config.LoadOrDefault(filesystem, opts.RootDir).Mapper()

	var rows []render.Row
	var failures int
	for _, file := range opts.Files {
		tokens, err := load.Set(ctx, file, load.Options{FS: filesystem})
		if err != nil {
			logger.Error("Error reading %s: %v", file, err)
			failures++
			continue
		}
		rows = append(rows, render.ComputeRows(tokens, mapper, file)...)
	}

	if failures == len(opts.Files) {
		return nil, fmt.Errorf("failed to read %d file(s)", failures)
	}
	return rows, nil
}

func projectRows(ctx context.Context, filesystem fs.FileSystem, opts options) ([]render.Row, error) {
	p, err := project.Open(ctx, project.Options{
		FS:           filesystem,
		RootDir:      opts.RootDir,
		DefaultTheme: opts.DefaultTheme,
	})
	if err != nil {
		return nil, err
	}

	name := opts.Theme
	if name == "" {
		name = p.DefaultTheme
	}
	i := p.Themes.Index(name)
	if i < 0 {
		return nil, &preset.ConfigurationError{Message: fmt.Sprintf("theme %q not found in themes", name)}
	}

	return render.ComputeRows(p.Themes[i].Tokens, p.Config.Mapper(), ""), nil
}

func filterRows(rows []render.Row, category string) []render.Row {
	if category == "" {
		return rows
	}
	filtered := make([]render.Row, 0, len(rows))
	for _, r := range rows {
		if r.Category == category {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
