/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command, serving tokenwind's generators as
// Model Context Protocol tools over stdio.
package mcp

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"bennypowers.dev/tokenwind/internal/logger"
	"bennypowers.dev/tokenwind/internal/version"
	"bennypowers.dev/tokenwind/load"
	"bennypowers.dev/tokenwind/naming"
	"bennypowers.dev/tokenwind/preset"
	"bennypowers.dev/tokenwind/token"
	"bennypowers.dev/tokenwind/typography"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the generators as MCP tools over stdio",
	Long: `Start a Model Context Protocol server on stdin/stdout.

Tools:
  public_name           map a token identifier to its raw and Tailwind variables
  theme_preset          render the @theme block for one token set
  themes_preset         render :root and [data-theme] blocks for several themes
  typography_utilities  render @utility rules for typography styles

Token documents are passed as JSON or YAML text. Logging is disabled while serving.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	logger.SetOutput(io.Discard)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewServer().Run(ctx, &sdk.StdioTransport{})
}

// NewServer creates an MCP server with every tool registered.
func NewServer() *sdk.Server {
	server := sdk.NewServer(&sdk.Implementation{Name: "tokenwind", Version: version.Get()}, nil)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "public_name",
		Description: "Map a camelCase token identifier to its raw CSS variable and its Tailwind namespace variable.",
	}, publicName)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "theme_preset",
		Description: "Render a Tailwind v4 @theme block aliasing public variables to one theme's raw variables.",
	}, themePreset)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "themes_preset",
		Description: "Render a :root block of tokens shared by all themes and one [data-theme] block per theme.",
	}, themesPreset)

	sdk.AddTool(server, &sdk.Tool{
		Name:        "typography_utilities",
		Description: "Render one @utility typography-<name> rule per typography style.",
	}, typographyUtilities)

	return server
}

type publicNameInput struct {
	Identifier string        `json:"identifier" jsonschema:"camelCase token identifier, e.g. fontSizeBase300"`
	Namespaces []naming.Rule `json:"namespaces,omitempty" jsonschema:"extra naming rules evaluated before the built-in ones"`
}

type publicNameOutput struct {
	RawName    string `json:"rawName"`
	PublicName string `json:"publicName"`
	Category   string `json:"category,omitempty"`
}

type themePresetInput struct {
	Tokens     string        `json:"tokens" jsonschema:"flat JSON or YAML object of identifier to string or number"`
	Exclude    []string      `json:"exclude,omitempty" jsonschema:"identifier prefixes to skip; omit for spacing and duration"`
	Namespaces []naming.Rule `json:"namespaces,omitempty" jsonschema:"extra naming rules evaluated before the built-in ones"`
}

type themeInput struct {
	Name   string `json:"name" jsonschema:"theme name used in the data-theme selector"`
	Tokens string `json:"tokens" jsonschema:"flat JSON or YAML object of identifier to string or number"`
}

type themesPresetInput struct {
	Themes       []themeInput `json:"themes" jsonschema:"themes in order; the first is the reference theme"`
	DefaultTheme string       `json:"defaultTheme,omitempty" jsonschema:"default theme name; omit for the first theme"`
}

type typographyInput struct {
	Styles string `json:"styles" jsonschema:"JSON or YAML object of style name to an object of CSS properties"`
}

type cssOutput struct {
	CSS string `json:"css"`
}

func publicName(ctx context.Context, req *sdk.CallToolRequest, in publicNameInput) (*sdk.CallToolResult, publicNameOutput, error) {
	if in.Identifier == "" {
		return nil, publicNameOutput{}, fmt.Errorf("identifier is required")
	}
	mapper := naming.NewMapper(in.Namespaces...)
	return nil, publicNameOutput{
		RawName:    naming.RawName(in.Identifier),
		PublicName: mapper.PublicName(in.Identifier),
		Category:   mapper.Category(in.Identifier),
	}, nil
}

func themePreset(ctx context.Context, req *sdk.CallToolRequest, in themePresetInput) (*sdk.CallToolResult, cssOutput, error) {
	tokens, err := load.ParseSet([]byte(in.Tokens))
	if err != nil {
		return nil, cssOutput{}, fmt.Errorf("tokens: %w", err)
	}
	css := preset.Theme(tokens, preset.ThemeOptions{
		Exclude: in.Exclude,
		Mapper:  naming.NewMapper(in.Namespaces...),
	})
	return nil, cssOutput{CSS: css}, nil
}

func themesPreset(ctx context.Context, req *sdk.CallToolRequest, in themesPresetInput) (*sdk.CallToolResult, cssOutput, error) {
	themes := make(token.ThemeSet, 0, len(in.Themes))
	for _, t := range in.Themes {
		if themes.Index(t.Name) >= 0 {
			return nil, cssOutput{}, fmt.Errorf("duplicate theme name %q", t.Name)
		}
		tokens, err := load.ParseSet([]byte(t.Tokens))
		if err != nil {
			return nil, cssOutput{}, fmt.Errorf("theme %q: %w", t.Name, err)
		}
		themes = append(themes, token.Theme{Name: t.Name, Tokens: tokens})
	}

	defaultTheme := in.DefaultTheme
	if defaultTheme == "" && len(themes) > 0 {
		defaultTheme = themes[0].Name
	}

	css, err := preset.Themes(themes, defaultTheme)
	if err != nil {
		return nil, cssOutput{}, err
	}
	return nil, cssOutput{CSS: css}, nil
}

func typographyUtilities(ctx context.Context, req *sdk.CallToolRequest, in typographyInput) (*sdk.CallToolResult, cssOutput, error) {
	styles, err := load.ParseStyles([]byte(in.Styles))
	if err != nil {
		return nil, cssOutput{}, fmt.Errorf("styles: %w", err)
	}
	return nil, cssOutput{CSS: typography.Utilities(styles)}, nil
}
