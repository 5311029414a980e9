/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package typography generates Tailwind CSS v4 utilities from typography styles.
package typography

import (
	"strings"

	"bennypowers.dev/tokenwind/naming"
	"bennypowers.dev/tokenwind/token"
)

// HeaderComment opens the generated utilities.
const HeaderComment = "/* Custom Typography Utilities */"

// UtilityPrefix precedes the kebab-cased style name in each utility.
const UtilityPrefix = "typography-"

// UtilityName returns the utility class name for a style, e.g. typography-title1.
func UtilityName(style string) string {
	return UtilityPrefix + naming.Kebab(style)
}

// Utilities renders one @utility rule per style, in order.
// Property names are kebab-cased; values are written as-is.
func Utilities(styles []token.Style) string {
	lines := []string{HeaderComment, ""}

	for _, style := range styles {
		lines = append(lines, "@utility "+UtilityName(style.Name)+" {")
		for prop, value := range style.Properties.All() {
			lines = append(lines, "  "+naming.Kebab(prop)+": "+value.String()+";")
		}
		lines = append(lines, "}", "")
	}

	return strings.Join(lines, "\n")
}
