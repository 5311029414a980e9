/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package diff provides the diff command for tokenwind.
package diff

import (
	"context"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenwind/cmd/render"
	"bennypowers.dev/tokenwind/fs"
	"bennypowers.dev/tokenwind/naming"
	"bennypowers.dev/tokenwind/preset"
	"bennypowers.dev/tokenwind/project"
	"bennypowers.dev/tokenwind/token"
)

// Cmd is the diff cobra command.
var Cmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare token values across themes",
	Long: `Show every token whose value differs between themes, i.e. the tokens that
land in [data-theme] blocks rather than :root.

Color values are compared with the reference (first) theme using the
CIEDE2000 color difference. Tokens that a later theme defines but the
reference theme lacks are listed separately: they are never emitted.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

// ThemeValue is one theme's value for a varying token.
type ThemeValue struct {
	Theme   string `json:"theme"`
	Value   string `json:"value,omitempty"`
	Missing bool   `json:"missing,omitempty"`

	// DeltaE is the CIEDE2000 distance from the reference theme's color.
	DeltaE *float64 `json:"deltaE,omitempty"`
}

// Row is a token whose value varies between themes.
type Row struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Values []ThemeValue `json:"values"`
}

// Unlisted names tokens a theme defines that the reference theme lacks.
type Unlisted struct {
	Theme string   `json:"theme"`
	IDs   []string `json:"ids"`
}

// Report is the result of comparing a project's themes.
type Report struct {
	Reference string     `json:"reference"`
	Shared    int        `json:"shared"`
	Varying   []Row      `json:"varying"`
	Unlisted  []Unlisted `json:"unlisted,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := render.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	p, err := project.Open(ctx, project.Options{
		FS:           fs.NewOSFileSystem(),
		RootDir:      viper.GetString("dir"),
		DefaultTheme: viper.GetString("default-theme"),
	})
	if err != nil {
		return err
	}

	report := Compare(p.Themes)
	if format == render.FormatJSON {
		return render.JSON(cmd.OutOrStdout(), report)
	}
	return writeTable(cmd.OutOrStdout(), report)
}

// Compare reports how themes differ, relative to the first theme.
func Compare(themes token.ThemeSet) Report {
	partition := preset.PartitionThemes(themes)
	report := Report{
		Reference: partition.Reference,
		Shared:    len(partition.Common),
		Varying:   []Row{},
	}
	if len(themes) == 0 {
		return report
	}

	reference := themes[0]
	for _, id := range partition.Varying() {
		row := Row{ID: id, Name: naming.RawName(id)}
		refColor, refIsColor := parseColor(reference.Tokens.Value(id))

		for i, t := range themes {
			v, ok := t.Tokens.Get(id)
			if !ok {
				row.Values = append(row.Values, ThemeValue{Theme: t.Name, Missing: true})
				continue
			}
			tv := ThemeValue{Theme: t.Name, Value: v.String()}
			if i > 0 && refIsColor {
				if c, isColor := parseColor(v); isColor {
					d := round(refColor.DistanceCIEDE2000(c))
					tv.DeltaE = &d
				}
			}
			row.Values = append(row.Values, tv)
		}
		report.Varying = append(report.Varying, row)
	}

	for _, t := range themes[1:] {
		var ids []string
		for id := range t.Tokens.All() {
			if !reference.Tokens.Has(id) {
				ids = append(ids, id)
			}
		}
		if len(ids) > 0 {
			report.Unlisted = append(report.Unlisted, Unlisted{Theme: t.Name, IDs: ids})
		}
	}

	return report
}

func parseColor(v token.Value) (colorful.Color, bool) {
	if v.Kind() != token.String {
		return colorful.Color{}, false
	}
	c, err := csscolorparser.Parse(v.String())
	if err != nil {
		return colorful.Color{}, false
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}, true
}

func round(f float64) float64 {
	return math.Round(f*100) / 100
}

func writeTable(w io.Writer, report Report) error {
	if len(report.Varying) > 0 {
		header := []string{"Token"}
		for _, v := range report.Varying[0].Values {
			header = append(header, v.Theme)
		}

		rows := make([][]string, 0, len(report.Varying))
		for _, r := range report.Varying {
			line := []string{r.ID}
			for _, v := range r.Values {
				line = append(line, cell(v))
			}
			rows = append(rows, line)
		}
		if err := render.Table(w, header, rows); err != nil {
			return err
		}
	}

	summary := strconv.Itoa(len(report.Varying)) + " varying, " +
		strconv.Itoa(report.Shared) + " shared (reference: " + report.Reference + ")\n"
	if _, err := io.WriteString(w, summary); err != nil {
		return err
	}

	for _, u := range report.Unlisted {
		line := "Not in " + report.Reference + ", never emitted from " + u.Theme + ": " + strings.Join(u.IDs, ", ") + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func cell(v ThemeValue) string {
	if v.Missing {
		return "-"
	}
	if v.DeltaE != nil {
		return v.Value + " (ΔE " + strconv.FormatFloat(*v.DeltaE, 'f', 2, 64) + ")"
	}
	return v.Value
}
