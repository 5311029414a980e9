/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Theme is a complete named set of token values.
type Theme struct {
	Name   string
	Tokens *Set
}

// ThemeSet is an ordered list of themes. Order is significant:
// the first theme is the reference theme for multi-theme generation.
type ThemeSet []Theme

// Names returns the theme names in order.
func (ts ThemeSet) Names() []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name
	}
	return names
}

// Index returns the position of the named theme, or -1.
func (ts ThemeSet) Index(name string) int {
	for i, t := range ts {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// Style is a named group of CSS property values, such as a typography style.
type Style struct {
	Name       string
	Properties *Set
}
