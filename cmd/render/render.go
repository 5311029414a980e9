/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/tokenwind/naming"
	"bennypowers.dev/tokenwind/token"
)

// Format is a CLI output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, "":
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: table, json)", s)
	}
}

// Row holds computed display values for a single token.
type Row struct {
	ID         string `json:"id"`
	RawName    string `json:"rawName"`
	PublicName string `json:"publicName"`
	Category   string `json:"category,omitempty"`
	Value      string `json:"value"`
	Source     string `json:"source,omitempty"`
	IsColor    bool   `json:"-"`
}

// ComputeRows transforms a token set into display rows, in set order.
func ComputeRows(tokens *token.Set, mapper *naming.Mapper, source string) []Row {
	rows := make([]Row, 0, tokens.Len())
	for id, value := range tokens.All() {
		rows = append(rows, Row{
			ID:         id,
			RawName:    naming.RawName(id),
			PublicName: mapper.PublicName(id),
			Category:   mapper.Category(id),
			Value:      value.String(),
			Source:     source,
			IsColor:    value.Kind() == token.String && IsColor(value.String()),
		})
	}
	return rows
}

// IsColor reports whether value parses as a CSS color.
func IsColor(value string) bool {
	_, err := csscolorparser.Parse(value)
	return err == nil
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// CategoryLabel converts a naming category to a column label,
// e.g. "font-weight" → "Font-Weight". Uncategorized tokens get "-".
func CategoryLabel(category string) string {
	if category == "" {
		return "-"
	}
	return cases.Title(language.English).String(category)
}

// Tokens renders rows as a table. Swatches prefix color values when enabled.
func Tokens(w io.Writer, rows []Row, swatches bool) error {
	if len(rows) == 0 {
		return nil
	}

	withSource := rows[0].Source != ""
	header := []string{"Public", "Raw", "Category", "Value"}
	if withSource {
		header = append([]string{"Source"}, header...)
	}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		value := r.Value
		if swatches && r.IsColor {
			value = ColorSwatch(r.Value) + value
		}
		line := []string{r.PublicName, r.RawName, CategoryLabel(r.Category), value}
		if withSource {
			line = append([]string{r.Source}, line...)
		}
		cells = append(cells, line)
	}
	return Table(w, header, cells)
}

// Table renders a header and rows as space-aligned columns.
// The last column is never padded.
func Table(w io.Writer, header []string, rows [][]string) error {
	widths := ColumnWidths(header, rows)

	writeLine := func(cells []string) error {
		var sb strings.Builder
		for i, cell := range cells {
			if i == len(cells)-1 {
				sb.WriteString(cell)
				break
			}
			fmt.Fprintf(&sb, "%-*s  ", widths[i], cell)
		}
		sb.WriteByte('\n')
		_, err := io.WriteString(w, sb.String())
		return err
	}

	if err := writeLine(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := writeLine(r); err != nil {
			return err
		}
	}
	return nil
}

// ColumnWidths calculates the max width needed for each column, in runes,
// which is how fmt pads.
func ColumnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, r := range rows {
		for i, cell := range r {
			if n := utf8.RuneCountInString(cell); i < len(widths) && n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
