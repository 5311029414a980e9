/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/tokenwind/config"
	"bennypowers.dev/tokenwind/preset"
	"bennypowers.dev/tokenwind/testutil"
)

func openBasic(t *testing.T, opts Options) *Project {
	t.Helper()
	opts.FS = testutil.NewFixtureFS(t, "fixtures/project/basic", "/project")
	opts.RootDir = "/project"

	p, err := Open(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func TestOpen(t *testing.T) {
	p := openBasic(t, Options{})

	if got := p.Themes.Names(); len(got) != 2 || got[0] != "web-light" || got[1] != "web-dark" {
		t.Errorf("unexpected themes %v", got)
	}
	if p.DefaultTheme != "web-light" {
		t.Errorf("expected first theme as default, got %q", p.DefaultTheme)
	}
	if !p.HasTypography() || len(p.Styles) != 1 {
		t.Errorf("expected one typography style, got %d", len(p.Styles))
	}
}

func TestOutput_Golden(t *testing.T) {
	p := openBasic(t, Options{})

	for _, out := range config.DefaultOutputs() {
		name := out.Path[strings.LastIndex(out.Path, "/")+1:]
		t.Run(name, func(t *testing.T) {
			got, err := p.Output(out)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.UpdateGoldenFile(t, "golden/"+name, []byte(got))
			want := string(testutil.LoadFixtureFile(t, "golden/"+name))
			if got != want {
				t.Errorf("output mismatch for %s\ngot:\n%s\nwant:\n%s", name, got, want)
			}
		})
	}
}

func TestRender_DefaultThemeOverride(t *testing.T) {
	p := openBasic(t, Options{DefaultTheme: "web-dark"})

	got, err := p.Render(config.PartTheme)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "--color-brand-background: var(--colorBrandBackground);") {
		t.Errorf("expected alias line, got:\n%s", got)
	}
}

func TestRender_UnknownDefaultTheme(t *testing.T) {
	p := openBasic(t, Options{DefaultTheme: "sepia"})

	for _, part := range []config.Part{config.PartTheme, config.PartThemes} {
		_, err := p.Render(part)
		var cfgErr *preset.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: expected ConfigurationError, got %v", part, err)
		}
	}
}

func TestOutput_NoTypography(t *testing.T) {
	p := openBasic(t, Options{})
	p.Styles = nil

	_, err := p.Output(config.OutputSpec{Path: "x.css", Include: []config.Part{config.PartTypography}})
	if !errors.Is(err, ErrNoTypography) {
		t.Errorf("expected ErrNoTypography, got %v", err)
	}
}

func TestOutput_OmitsMissingTypography(t *testing.T) {
	p := openBasic(t, Options{})
	p.Styles = nil

	got, err := p.Output(config.OutputSpec{Path: "x.css", Include: []config.Part{config.PartTheme, config.PartTypography}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "@theme {\n") || !strings.HasSuffix(got, "}\n") {
		t.Errorf("expected only the @theme block, got:\n%s", got)
	}
	if strings.Contains(got, "@utility") {
		t.Errorf("unexpected typography output:\n%s", got)
	}
}

func TestOpen_ConfigOverride(t *testing.T) {
	cfg := &config.Config{
		Themes:  []config.ThemeSpec{{Name: "only", Path: "tokens/web-dark.yaml"}},
		Exclude: []string{},
	}
	p := openBasic(t, Options{Config: cfg})

	if p.HasTypography() {
		t.Error("expected no typography without a configured file")
	}

	got, err := p.Render(config.PartTheme)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "--spacing-m: var(--spacingM);") {
		t.Errorf("expected empty exclude list to keep spacing, got:\n%s", got)
	}
}

func TestOpen_Errors(t *testing.T) {
	t.Run("no config", func(t *testing.T) {
		_, err := Open(context.Background(), Options{FS: testutil.NewFixtureFS(t, "fixtures/project/basic", "/project"), RootDir: "/elsewhere"})
		if err == nil || !strings.Contains(err.Error(), "no config found") {
			t.Errorf("expected missing config error, got %v", err)
		}
	})

	t.Run("no themes", func(t *testing.T) {
		_, err := Open(context.Background(), Options{
			FS:      testutil.NewFixtureFS(t, "fixtures/project/basic", "/project"),
			RootDir: "/project",
			Config:  &config.Config{},
		})
		var cfgErr *preset.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("expected ConfigurationError, got %v", err)
		}
	})

	t.Run("missing theme file", func(t *testing.T) {
		_, err := Open(context.Background(), Options{
			FS:      testutil.NewFixtureFS(t, "fixtures/project/basic", "/project"),
			RootDir: "/project",
			Config:  &config.Config{Themes: []config.ThemeSpec{{Path: "tokens/missing.json"}}},
		})
		if err == nil || !strings.Contains(err.Error(), `failed to read theme "missing"`) {
			t.Errorf("expected read error, got %v", err)
		}
	})
}
