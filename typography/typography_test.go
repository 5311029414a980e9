/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package typography_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bennypowers.dev/tokenwind/token"
	"bennypowers.dev/tokenwind/typography"
)

var utilityHeader = regexp.MustCompile(`@utility typography-[\w-]+ \{`)

func fluentStyles() []token.Style {
	return []token.Style{
		{Name: "body1", Properties: token.SetOf(
			"fontFamily", "var(--fontFamilyBase)",
			"fontSize", "var(--fontSizeBase300)",
			"fontWeight", "var(--fontWeightRegular)",
			"lineHeight", "var(--lineHeightBase300)",
		)},
		{Name: "Title1", Properties: token.SetOf("fontSize", "20px", "fontWeight", 600)},
		{Name: "BodyLarge", Properties: token.SetOf("fontSize", "16px", "letterSpacing", "-0.01em")},
	}
}

func TestUtilities_Output(t *testing.T) {
	styles := []token.Style{
		{Name: "Title1", Properties: token.SetOf("fontSize", "20px", "fontWeight", 600)},
	}

	expected := strings.Join([]string{
		"/* Custom Typography Utilities */",
		"",
		"@utility typography-title1 {",
		"  font-size: 20px;",
		"  font-weight: 600;",
		"}",
		"",
	}, "\n")

	assert.Equal(t, expected, typography.Utilities(styles))
}

func TestUtilities_OneRulePerStyleInOrder(t *testing.T) {
	result := typography.Utilities(fluentStyles())

	matches := utilityHeader.FindAllString(result, -1)
	assert.Equal(t, []string{
		"@utility typography-body1 {",
		"@utility typography-title1 {",
		"@utility typography-body-large {",
	}, matches)
}

func TestUtilities_KebabCasesProperties(t *testing.T) {
	result := typography.Utilities(fluentStyles())

	assert.Contains(t, result, "  font-family: var(--fontFamilyBase);")
	assert.Contains(t, result, "  line-height: var(--lineHeightBase300);")
	assert.Contains(t, result, "  letter-spacing: -0.01em;")
	assert.Regexp(t, `font-weight:\s*\d+;`, result)
}

func TestUtilities_Empty(t *testing.T) {
	result := typography.Utilities(nil)

	assert.Equal(t, "/* Custom Typography Utilities */\n", result)
	assert.NotContains(t, result, "@utility")
}

func TestUtilityName(t *testing.T) {
	assert.Equal(t, "typography-subtitle2-stronger", typography.UtilityName("subtitle2Stronger"))
	assert.Equal(t, "typography-large-title", typography.UtilityName("LargeTitle"))
}
