/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package naming maps token identifiers to CSS custom property names.
//
// Every token has two names: the raw name, which references the token's own
// declaration (--colorBrandBackground), and the public name, which follows
// the Tailwind CSS v4 theme namespaces (--color-brand-background,
// --text-base300, --shadow-4, ...).
package naming

import (
	"regexp"
	"strings"
)

var (
	lowerUpper      = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	upperUpperLower = regexp.MustCompile(`([A-Z])([A-Z][a-z])`)
)

// Kebab converts a camelCase or PascalCase identifier to kebab-case.
// It is idempotent: already kebab-cased input is returned unchanged.
//
//	Kebab("fontSizeBase300") == "font-size-base300"
//	Kebab("HTMLElement")     == "html-element"
func Kebab(id string) string {
	s := lowerUpper.ReplaceAllString(id, "${1}-${2}")
	s = upperUpperLower.ReplaceAllString(s, "${1}-${2}")
	return strings.ToLower(s)
}

// RawName returns the unconverted variable name for a token.
func RawName(id string) string {
	return "--" + id
}

// Rule rewrites the leading category segment of a kebab-cased identifier.
type Rule struct {
	// Category labels the Tailwind namespace, e.g. "text" or "shadow".
	Category string `yaml:"category" json:"category" toml:"category"`

	// Prefix is matched against the start of the kebab-cased identifier.
	Prefix string `yaml:"prefix" json:"prefix" toml:"prefix"`

	// Replacement takes the place of Prefix, sigil included.
	Replacement string `yaml:"replacement" json:"replacement" toml:"replacement"`
}

// Match reports whether the rule applies to a kebab-cased identifier.
func (r Rule) Match(kebab string) bool {
	return strings.HasPrefix(kebab, r.Prefix)
}

// Rewrite replaces the rule's prefix in a matching kebab-cased identifier.
func (r Rule) Rewrite(kebab string) string {
	return r.Replacement + strings.TrimPrefix(kebab, r.Prefix)
}

// defaultRules are evaluated in order; the first match wins.
var defaultRules = []Rule{
	{Category: "text", Prefix: "font-size", Replacement: "--text"},
	{Category: "leading", Prefix: "line-height", Replacement: "--leading"},
	{Category: "font", Prefix: "font-family", Replacement: "--font"},
	{Category: "font-weight", Prefix: "font-weight", Replacement: "--font-weight"},
	{Category: "radius", Prefix: "border-radius", Replacement: "--radius"},
	{Category: "border", Prefix: "stroke", Replacement: "--border"},
	// shadow tokens carry a bare index (shadow4), so a separator is inserted
	{Category: "shadow", Prefix: "shadow", Replacement: "--shadow-"},
	{Category: "ease", Prefix: "curve", Replacement: "--ease"},
}

// DefaultRules returns a copy of the built-in rule table in priority order.
func DefaultRules() []Rule {
	rules := make([]Rule, len(defaultRules))
	copy(rules, defaultRules)
	return rules
}

// Mapper converts identifiers to public names using an immutable rule table.
type Mapper struct {
	rules []Rule
}

// Default uses the built-in rules only.
var Default = &Mapper{rules: defaultRules}

// NewMapper creates a Mapper that evaluates extra before the built-in rules.
func NewMapper(extra ...Rule) *Mapper {
	if len(extra) == 0 {
		return Default
	}
	rules := make([]Rule, 0, len(extra)+len(defaultRules))
	rules = append(rules, extra...)
	rules = append(rules, defaultRules...)
	return &Mapper{rules: rules}
}

// Rules returns a copy of the mapper's rule table.
func (m *Mapper) Rules() []Rule {
	rules := make([]Rule, len(m.rules))
	copy(rules, m.rules)
	return rules
}

// PublicName returns the namespaced variable name for id.
// Identifiers matching no rule fall back to --<kebab>.
func (m *Mapper) PublicName(id string) string {
	kebab := Kebab(id)
	if r, ok := m.match(kebab); ok {
		return r.Rewrite(kebab)
	}
	return "--" + kebab
}

// Category returns the category of the rule matching id, or "" if none does.
func (m *Mapper) Category(id string) string {
	if r, ok := m.match(Kebab(id)); ok {
		return r.Category
	}
	return ""
}

func (m *Mapper) match(kebab string) (Rule, bool) {
	for _, r := range m.rules {
		if r.Match(kebab) {
			return r, true
		}
	}
	return Rule{}, false
}

// PublicName maps id with the built-in rules.
func PublicName(id string) string {
	return Default.PublicName(id)
}

// Category returns the built-in category for id.
func Category(id string) string {
	return Default.Category(id)
}
