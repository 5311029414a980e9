/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for tokenwind.
package validate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/internal/logger"
	"bennypowers.dev/tokenwind/naming"
	"bennypowers.dev/tokenwind/preset"
	"bennypowers.dev/tokenwind/project"
	"bennypowers.dev/tokenwind/token"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the project's themes and typography",
	Long: `Load every configured input and render every output without writing it.

Warnings are reported for themes whose token keys diverge from the reference
(first) theme, for color tokens whose values are not CSS colors, for var()
reference cycles, and for typography properties reading undefined variables.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

type options struct {
	RootDir      string
	DefaultTheme string
	Strict       bool
	Quiet        bool
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	return execute(cmd.Context(), fs.NewOSFileSystem(), cmd.OutOrStdout(), options{
		RootDir:      viper.GetString("dir"),
		DefaultTheme: viper.GetString("default-theme"),
		Strict:       strict,
		Quiet:        quiet,
	})
}

func execute(ctx context.Context, filesystem fs.FileSystem, w io.Writer, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if !opts.Quiet {
		fmt.Fprintf(w, "Validating %s...\n", opts.RootDir)
	}

	p, err := project.Open(ctx, project.Options{
		FS:           filesystem,
		RootDir:      opts.RootDir,
		DefaultTheme: opts.DefaultTheme,
	})
	if err != nil {
		logger.Error("%v", err)
		return fmt.Errorf("validation failed")
	}

	var errs int
	for _, out := range p.Config.EffectiveOutputs() {
		if _, err := p.Output(out); err != nil && !errors.Is(err, project.ErrNoTypography) {
			logger.Error("%s: %v", out.Path, err)
			errs++
		}
	}

	warnings := Check(p.Themes)
	warnings = append(warnings, CheckTypography(p.Themes, p.Styles, preset.ThemeOptions{
		Exclude: p.Config.Exclude,
		Mapper:  p.Config.Mapper(),
	})...)
	for _, warning := range warnings {
		logger.Warn("%s", warning)
	}

	if !opts.Quiet {
		var tokens int
		for _, t := range p.Themes {
			tokens += t.Tokens.Len()
		}
		fmt.Fprintf(w, "  %d themes, %d tokens, %d typography styles\n", len(p.Themes), tokens, len(p.Styles))
	}

	if errs > 0 {
		return fmt.Errorf("validation failed")
	}
	if opts.Strict && len(warnings) > 0 {
		return fmt.Errorf("validation failed: %d warning(s)", len(warnings))
	}

	if !opts.Quiet {
		fmt.Fprintln(w, "All files valid.")
	}
	return nil
}

// Check returns warnings for key divergence between themes, for color
// tokens whose values do not parse as CSS colors, and for var() cycles.
func Check(themes token.ThemeSet) []string {
	if len(themes) == 0 {
		return nil
	}

	var warnings []string
	reference := themes[0]

	for _, t := range themes[1:] {
		var missing, extra []string
		for id := range reference.Tokens.All() {
			if !t.Tokens.Has(id) {
				missing = append(missing, id)
			}
		}
		for id := range t.Tokens.All() {
			if !reference.Tokens.Has(id) {
				extra = append(extra, id)
			}
		}
		if len(missing) > 0 {
			warnings = append(warnings, fmt.Sprintf("theme %q lacks %d token(s) defined by %q: %s",
				t.Name, len(missing), reference.Name, strings.Join(missing, ", ")))
		}
		if len(extra) > 0 {
			warnings = append(warnings, fmt.Sprintf("theme %q defines %d token(s) absent from %q, which are never emitted: %s",
				t.Name, len(extra), reference.Name, strings.Join(extra, ", ")))
		}
	}

	for _, t := range themes {
		for id, value := range t.Tokens.All() {
			if !isColorToken(id) || value.Kind() != token.String {
				continue
			}
			v := value.String()
			if strings.HasPrefix(v, "var(") {
				continue
			}
			if _, err := csscolorparser.Parse(v); err != nil {
				warnings = append(warnings, fmt.Sprintf("theme %q: %s value %q is not a CSS color", t.Name, id, v))
			}
		}
	}

	return append(warnings, checkReferences(themes)...)
}

func isColorToken(id string) bool {
	return strings.HasPrefix(naming.Kebab(id), "color-")
}
