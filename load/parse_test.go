/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load_test

import (
	"errors"
	"slices"
	"testing"

	"bennypowers.dev/tokenwind/load"
	"bennypowers.dev/tokenwind/token"
)

func TestParseSet_JSONKeepsOrder(t *testing.T) {
	data := []byte(`{
  // brand colors first
  "colorBrandBackground": "#0f6cbd",
  "fontSizeBase300": "14px",
  "fontWeightSemibold": 600,
  /* unitless ratio */
  "lineHeightRatio": 1.50,
  "borderRadiusNone": "0",
}`)

	set, err := load.ParseSet(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"colorBrandBackground", "fontSizeBase300", "fontWeightSemibold", "lineHeightRatio", "borderRadiusNone"}
	if got := set.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	if v := set.Value("fontWeightSemibold"); v.Kind() != token.Number || v.String() != "600" {
		t.Errorf("expected number 600, got %s %q", v.Kind(), v.String())
	}
	if v := set.Value("lineHeightRatio"); v.String() != "1.5" {
		t.Errorf("expected 1.5, got %q", v.String())
	}
	if v := set.Value("borderRadiusNone"); v.Kind() != token.String {
		t.Errorf("expected quoted 0 to stay a string, got %s", v.Kind())
	}
}

func TestParseSet_YAMLKeepsOrder(t *testing.T) {
	data := []byte(`# web dark
colorNeutralForeground1: "#ffffff"
fontWeightBold: 700
durationFast: 150ms
lineHeightBase200: 16px
`)

	set, err := load.ParseSet(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"colorNeutralForeground1", "fontWeightBold", "durationFast", "lineHeightBase200"}
	if got := set.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if v := set.Value("fontWeightBold"); v.Kind() != token.Number {
		t.Errorf("expected number kind, got %s", v.Kind())
	}
	if v := set.Value("durationFast"); v.String() != "150ms" {
		t.Errorf("expected 150ms, got %q", v.String())
	}
}

func TestParseSet_Empty(t *testing.T) {
	for _, input := range []string{"", "{}", "  \n"} {
		set, err := load.ParseSet([]byte(input))
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if set.Len() != 0 {
			t.Errorf("expected empty set for %q, got %d entries", input, set.Len())
		}
	}
}

func TestParseSet_UnsupportedValues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		token string
		kind  string
	}{
		{"json object", `{"color": {"$value": "#fff"}}`, "color", "object"},
		{"json array", `{"fontFamilies": ["a", "b"]}`, "fontFamilies", "array"},
		{"json boolean", `{"enabled": true}`, "enabled", "boolean"},
		{"json null", `{"missing": null}`, "missing", "null"},
		{"yaml mapping", "color:\n  brand: red\n", "color", "object"},
		{"yaml sequence", "sizes:\n  - 1\n  - 2\n", "sizes", "array"},
		{"yaml boolean", "dark: yes\n", "", ""},
		{"yaml null", "missing: ~\n", "missing", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load.ParseSet([]byte(tt.input))
			if tt.kind == "" {
				// YAML 1.2 reads "yes" as a string
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var unsupported *load.UnsupportedValueError
			if !errors.As(err, &unsupported) {
				t.Fatalf("expected UnsupportedValueError, got %v", err)
			}
			if unsupported.Token != tt.token {
				t.Errorf("expected token %q, got %q", tt.token, unsupported.Token)
			}
			if unsupported.Kind != tt.kind {
				t.Errorf("expected kind %q, got %q", tt.kind, unsupported.Kind)
			}
		})
	}
}

func TestParseSet_Malformed(t *testing.T) {
	for _, input := range []string{`{"a": `, `{"a": 1} trailing`, "- just\n- a list\n", `{"a" 1}`} {
		if _, err := load.ParseSet([]byte(input)); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestParseStyles(t *testing.T) {
	data := []byte(`{
  "body1": {
    "fontFamily": "var(--fontFamilyBase)",
    "fontSize": "var(--fontSizeBase300)",
    "fontWeight": "var(--fontWeightRegular)",
    "lineHeight": "var(--lineHeightBase300)"
  },
  "Title1": {"fontSize": "20px", "fontWeight": 600}
}`)

	styles, err := load.ParseStyles(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(styles) != 2 {
		t.Fatalf("expected 2 styles, got %d", len(styles))
	}
	if styles[0].Name != "body1" || styles[1].Name != "Title1" {
		t.Errorf("unexpected style order: %s, %s", styles[0].Name, styles[1].Name)
	}
	want := []string{"fontFamily", "fontSize", "fontWeight", "lineHeight"}
	if got := styles[0].Properties.Keys(); !slices.Equal(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestParseStyles_Errors(t *testing.T) {
	if _, err := load.ParseStyles([]byte(`{"body1": "14px"}`)); err == nil {
		t.Error("expected error for scalar style")
	}

	_, err := load.ParseStyles([]byte(`{"body1": {"fontSize": {"min": 1}}}`))
	var unsupported *load.UnsupportedValueError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedValueError, got %v", err)
	}
	if unsupported.Token != "body1.fontSize" {
		t.Errorf("expected token body1.fontSize, got %q", unsupported.Token)
	}
}
