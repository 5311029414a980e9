/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for tokenwind.
package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenwind/naming"
)

// Part names a generated stylesheet section an output can include.
type Part string

const (
	// PartTheme is the single-theme @theme block of the default theme.
	PartTheme Part = "theme"

	// PartThemes is the :root block plus one [data-theme] block per theme.
	PartThemes Part = "themes"

	// PartTypography is the typography @utility rules.
	PartTypography Part = "typography"
)

// ValidParts returns all valid output parts.
func ValidParts() []Part {
	return []Part{PartTheme, PartThemes, PartTypography}
}

// Config represents the tokenwind configuration.
type Config struct {
	// Themes lists theme token files in order. The first is the reference theme.
	Themes []ThemeSpec `yaml:"themes" json:"themes" toml:"themes"`

	// DefaultTheme names the theme used for the @theme block.
	// Defaults to the first theme.
	DefaultTheme string `yaml:"defaultTheme" json:"defaultTheme" toml:"defaultTheme"`

	// Typography is the typography styles file (optional).
	Typography string `yaml:"typography" json:"typography" toml:"typography"`

	// Exclude lists identifier prefixes left out of the @theme block.
	// Nil means the built-in defaults; an empty list excludes nothing.
	Exclude []string `yaml:"exclude" json:"exclude" toml:"exclude"`

	// Namespaces are extra naming rules, evaluated before the built-in ones.
	Namespaces []naming.Rule `yaml:"namespaces" json:"namespaces" toml:"namespaces"`

	// Outputs lists the stylesheets to write. Defaults to DefaultOutputs.
	Outputs []OutputSpec `yaml:"outputs" json:"outputs" toml:"outputs"`
}

// ThemeSpec represents a theme file specification.
// It can be specified as a simple string path or as an object with a name.
type ThemeSpec struct {
	// Name is the theme name used in [data-theme] selectors.
	// Defaults to the file's base name without extension.
	Name string `yaml:"name" json:"name" toml:"name"`

	// Path is a file path, glob, or http(s) URL.
	Path string `yaml:"path" json:"path" toml:"path"`
}

// UnmarshalYAML handles both string and object forms for ThemeSpec.
func (t *ThemeSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		t.Path = node.Value
		return nil
	}

	type rawThemeSpec ThemeSpec
	return node.Decode((*rawThemeSpec)(t))
}

// UnmarshalJSON handles both string and object forms for ThemeSpec.
func (t *ThemeSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Path = s
		return nil
	}

	type rawThemeSpec ThemeSpec
	return json.Unmarshal(data, (*rawThemeSpec)(t))
}

// OutputSpec describes one generated stylesheet.
type OutputSpec struct {
	// Path is the output file, relative to the project root.
	Path string `yaml:"path" json:"path" toml:"path"`

	// Include lists the parts written to the file, in order.
	Include []Part `yaml:"include" json:"include" toml:"include"`
}

// DefaultOutputs returns the outputs used when none are configured:
// presets/preset.css with the @theme block and typography utilities, and
// presets/themes.css with the per-theme blocks.
func DefaultOutputs() []OutputSpec {
	return []OutputSpec{
		{Path: "presets/preset.css", Include: []Part{PartTheme, PartTypography}},
		{Path: "presets/themes.css", Include: []Part{PartThemes}},
	}
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Themes:       nil,
		DefaultTheme: "",
		Typography:   "",
		Exclude:      nil,
		Namespaces:   nil,
		Outputs:      nil,
	}
}

// EffectiveOutputs returns the configured outputs, or DefaultOutputs.
func (c *Config) EffectiveOutputs() []OutputSpec {
	if len(c.Outputs) == 0 {
		return DefaultOutputs()
	}
	return c.Outputs
}

// Mapper returns a naming.Mapper with the configured namespaces applied.
func (c *Config) Mapper() *naming.Mapper {
	return naming.NewMapper(c.Namespaces...)
}

// Validate checks outputs and naming rules for obvious mistakes.
func (c *Config) Validate() error {
	for i, rule := range c.Namespaces {
		if rule.Prefix == "" {
			return fmt.Errorf("namespaces[%d]: prefix is required", i)
		}
		if rule.Replacement == "" {
			return fmt.Errorf("namespaces[%d]: replacement is required", i)
		}
	}

	seen := make(map[string]bool)
	for i, out := range c.Outputs {
		if out.Path == "" {
			return fmt.Errorf("outputs[%d]: path is required", i)
		}
		if seen[out.Path] {
			return fmt.Errorf("outputs[%d]: duplicate path %q", i, out.Path)
		}
		seen[out.Path] = true
		if len(out.Include) == 0 {
			return fmt.Errorf("outputs[%d]: include must list at least one of %v", i, ValidParts())
		}
		for _, part := range out.Include {
			if !isValidPart(part) {
				return fmt.Errorf("outputs[%d]: unknown part %q (valid: %v)", i, part, ValidParts())
			}
		}
	}

	return nil
}

func isValidPart(p Part) bool {
	for _, valid := range ValidParts() {
		if p == valid {
			return true
		}
	}
	return false
}
