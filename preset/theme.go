/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package preset generates Tailwind CSS v4 theme presets from token sets.
package preset

import (
	"strings"

	"bennypowers.dev/tokenwind/naming"
	"bennypowers.dev/tokenwind/token"
)

// ResetDeclaration clears Tailwind's built-in theme variables.
const ResetDeclaration = "--*: initial;"

// DefaultExclude lists the identifier prefixes left out of the @theme block.
var DefaultExclude = []string{"spacing", "duration"}

// ThemeOptions configures Theme.
type ThemeOptions struct {
	// Exclude lists raw identifier prefixes to skip.
	// Nil means DefaultExclude; an empty non-nil slice excludes nothing.
	Exclude []string

	// Mapper converts identifiers to public names. Nil means naming.Default.
	Mapper *naming.Mapper
}

// Excludes reports whether id is left out of the @theme block.
func (o ThemeOptions) Excludes(id string) bool {
	exclude := o.Exclude
	if exclude == nil {
		exclude = DefaultExclude
	}
	return hasAnyPrefix(id, exclude)
}

// Theme renders an @theme block aliasing each token's public name to its
// raw variable, in the set's order.
func Theme(tokens *token.Set, opts ThemeOptions) string {
	mapper := opts.Mapper
	if mapper == nil {
		mapper = naming.Default
	}

	lines := []string{"@theme {", "  " + ResetDeclaration}
	for id := range tokens.All() {
		if opts.Excludes(id) {
			continue
		}
		lines = append(lines, "  "+mapper.PublicName(id)+": var("+naming.RawName(id)+");")
	}
	lines = append(lines, "}")

	return strings.Join(lines, "\n")
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
