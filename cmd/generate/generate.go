/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for tokenwind.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/internal/logger"
	"bennypowers.dev/tokenwind/project"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Write Tailwind preset stylesheets",
	Long: `Load the configured themes and typography styles and write every output.

Without configured outputs, two files are written under the project root:
  presets/preset.css   @theme block for the default theme, then typography utilities
  presets/themes.css   shared :root block, then one [data-theme] block per theme

Examples:
  # Generate from .config/tokenwind.yaml in the current directory
  tokenwind generate

  # Use the dark theme for the @theme block
  tokenwind generate --default-theme web-dark

  # Print to stdout instead of writing files
  tokenwind generate --dry-run

  # Fail when committed outputs are out of date, e.g. in CI
  tokenwind generate --check`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("out-dir", "o", "", "Directory output paths are relative to (default: project root)")
	Cmd.Flags().Bool("dry-run", false, "Print outputs to stdout instead of writing files")
	Cmd.Flags().Bool("check", false, "Report outputs that differ from the files on disk without writing")
}

// options are the resolved flags for a generate run.
type options struct {
	RootDir      string
	OutDir       string
	DefaultTheme string
	DryRun       bool
	Check        bool
}

func run(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("out-dir")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	check, _ := cmd.Flags().GetBool("check")

	return execute(cmd.Context(), fs.NewOSFileSystem(), cmd.OutOrStdout(), options{
		RootDir:      viper.GetString("dir"),
		OutDir:       outDir,
		DefaultTheme: viper.GetString("default-theme"),
		DryRun:       dryRun,
		Check:        check,
	})
}

func execute(ctx context.Context, filesystem fs.FileSystem, stdout io.Writer, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := project.Open(ctx, project.Options{
		FS:           filesystem,
		RootDir:      opts.RootDir,
		DefaultTheme: opts.DefaultTheme,
	})
	if err != nil {
		return err
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = p.RootDir
	}

	var failures, stale int
	for _, out := range p.Config.EffectiveOutputs() {
		path := out.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(outDir, path)
		}

		text, err := p.Output(out)
		if errors.Is(err, project.ErrNoTypography) {
			logger.Warn("Skipping %s: %v", path, err)
			continue
		}
		if err != nil {
			logger.Error("Error rendering %s: %v", path, err)
			failures++
			continue
		}

		if opts.DryRun {
			if _, err := fmt.Fprintf(stdout, "/* %s */\n%s", path, text); err != nil {
				return err
			}
			continue
		}

		if opts.Check {
			existing, err := filesystem.ReadFile(path)
			if err != nil && !errors.Is(err, iofs.ErrNotExist) {
				logger.Error("Error reading %s: %v", path, err)
				failures++
				continue
			}
			if string(existing) != text {
				logger.Warn("Stale %s", path)
				if err := writeDiff(stdout, path, string(existing), text); err != nil {
					return err
				}
				stale++
			}
			continue
		}

		if err := fs.WriteFileAll(filesystem, path, []byte(text)); err != nil {
			logger.Error("Error writing to %s: %v", path, err)
			failures++
			continue
		}

		logger.Info("Wrote %s", path)
	}

	if failures > 0 {
		return fmt.Errorf("failed to generate %d output(s)", failures)
	}
	if stale > 0 {
		return fmt.Errorf("%d output(s) out of date", stale)
	}
	return nil
}

// writeDiff prints the lines that differ between the file on disk and the
// generated text.
func writeDiff(w io.Writer, path, existing, generated string) error {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(existing, generated)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s (generated)\n", path, path)
	for _, d := range diffs {
		var marker string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			marker = "-"
		case diffmatchpatch.DiffInsert:
			marker = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(marker + strings.TrimSuffix(line, "\n") + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
