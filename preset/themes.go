/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package preset

import (
	"fmt"
	"strings"

	"bennypowers.dev/tokenwind/naming"
	"bennypowers.dev/tokenwind/token"
)

// SharedComment precedes the :root block of theme-independent tokens.
const SharedComment = "/* Shared tokens - theme-independent */"

// ConfigurationError reports an unusable theme set or default theme.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entry is one declaration: a raw variable name and its value.
type Entry struct {
	ID    string
	Name  string
	Value token.Value
}

// ThemeEntries holds the declarations one theme overrides.
type ThemeEntries struct {
	Theme   string
	Entries []Entry
}

// Partition splits tokens into those shared by every theme and those that vary.
type Partition struct {
	// Reference is the theme whose keys were enumerated.
	Reference string

	// Common holds tokens strictly equal across all themes, in reference order.
	Common []Entry

	// PerTheme holds one group per theme, in theme order. Each group lists the
	// varying tokens the theme defines, in reference order.
	PerTheme []ThemeEntries
}

// Varying returns the identifiers classified as per-theme, in reference order.
func (p Partition) Varying() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, group := range p.PerTheme {
		for _, e := range group.Entries {
			if !seen[e.ID] {
				seen[e.ID] = true
				ids = append(ids, e.ID)
			}
		}
	}
	return ids
}

// PartitionThemes classifies every token of the first theme. Tokens that only
// later themes define are not enumerated. A token missing from any theme is
// per-theme; themes lacking it contribute no entry.
func PartitionThemes(themes token.ThemeSet) Partition {
	if len(themes) == 0 {
		return Partition{}
	}

	reference := themes[0]
	p := Partition{
		Reference: reference.Name,
		PerTheme:  make([]ThemeEntries, len(themes)),
	}
	for i, t := range themes {
		p.PerTheme[i].Theme = t.Name
	}

	for id, value := range reference.Tokens.All() {
		name := naming.RawName(id)
		if sharedByAll(themes, id, value) {
			p.Common = append(p.Common, Entry{ID: id, Name: name, Value: value})
			continue
		}
		for i, t := range themes {
			v, ok := t.Tokens.Get(id)
			if !ok {
				continue
			}
			p.PerTheme[i].Entries = append(p.PerTheme[i].Entries, Entry{ID: id, Name: name, Value: v})
		}
	}

	return p
}

func sharedByAll(themes token.ThemeSet, id string, value token.Value) bool {
	for _, t := range themes[1:] {
		if !t.Tokens.Value(id).Equal(value) {
			return false
		}
	}
	return value.IsDefined()
}

// Themes renders a :root block of shared tokens followed by one
// [data-theme="<name>"] block per theme holding the tokens that vary.
//
// defaultTheme must name one of the themes. It does not affect which keys are
// enumerated: that is always the first theme.
func Themes(themes token.ThemeSet, defaultTheme string) (string, error) {
	if len(themes) == 0 {
		return "", &ConfigurationError{Message: "at least one theme must be provided"}
	}
	if themes.Index(defaultTheme) < 0 {
		return "", &ConfigurationError{Message: fmt.Sprintf("default theme %q not found in themes", defaultTheme)}
	}

	p := PartitionThemes(themes)

	lines := []string{SharedComment, ":root {"}
	for _, e := range p.Common {
		lines = append(lines, declaration(e))
	}
	lines = append(lines, "}", "")

	for _, group := range p.PerTheme {
		lines = append(lines,
			fmt.Sprintf("/* Theme: %s */", group.Theme),
			`[data-theme="`+group.Theme+`"] {`,
		)
		for _, e := range group.Entries {
			lines = append(lines, declaration(e))
		}
		lines = append(lines, "}", "")
	}

	return strings.Join(lines, "\n"), nil
}

func declaration(e Entry) string {
	return "  " + e.Name + ": " + e.Value.String() + ";"
}
