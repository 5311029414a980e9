/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokenwind.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenwind/cmd/diff"
	"bennypowers.dev/tokenwind/cmd/generate"
	"bennypowers.dev/tokenwind/cmd/list"
	"bennypowers.dev/tokenwind/cmd/mcp"
	"bennypowers.dev/tokenwind/cmd/validate"
	"bennypowers.dev/tokenwind/cmd/version"
	"bennypowers.dev/tokenwind/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokenwind",
	Short: "Generate Tailwind CSS v4 presets from design tokens",
	Long: `tokenwind turns flat design-token themes into Tailwind CSS v4 stylesheets:
an @theme block aliasing Tailwind namespaces to the default theme's variables,
per-theme [data-theme] blocks, and @utility rules for typography styles.

Projects are configured in .config/tokenwind.{yaml,yml,json,toml}.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringP("dir", "C", ".", "Project root containing .config/tokenwind.*")
	flags.StringP("default-theme", "t", "", "Theme rendered into the @theme block (default: first theme)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	for _, name := range []string{"dir", "default-theme", "verbose"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(generate.Cmd)
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(diff.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

// initConfig lets TOKENWIND_* environment variables stand in for flags,
// e.g. TOKENWIND_DEFAULT_THEME=web-dark.
func initConfig() {
	viper.SetEnvPrefix("TOKENWIND")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
