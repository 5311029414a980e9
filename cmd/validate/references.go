/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"fmt"
	"regexp"
	"strings"

	"bennypowers.dev/tokenwind/naming"
	"bennypowers.dev/tokenwind/preset"
	"bennypowers.dev/tokenwind/token"
)

// varRefPattern captures the custom property named by each var() in a value.
var varRefPattern = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)`)

// References returns the custom properties a CSS value reads through var().
func References(value string) []string {
	var refs []string
	for _, m := range varRefPattern.FindAllStringSubmatch(value, -1) {
		refs = append(refs, m[1])
	}
	return refs
}

// referenceGraph is the directed graph of var() references between the raw
// variables of one theme.
type referenceGraph struct {
	dependencies map[string][]string
	nodes        []string
}

func buildReferenceGraph(tokens *token.Set) *referenceGraph {
	g := &referenceGraph{dependencies: make(map[string][]string)}
	for id, value := range tokens.All() {
		name := naming.RawName(id)
		g.nodes = append(g.nodes, name)
		if value.Kind() != token.String {
			continue
		}
		if refs := References(value.String()); len(refs) > 0 {
			g.dependencies[name] = refs
		}
	}
	return g
}

// FindCycle returns the first cycle found, in token order, or nil.
func (g *referenceGraph) FindCycle() []string {
	visited := make(map[string]bool)
	onPath := make(map[string]bool)

	var path []string
	var visit func(node string) []string
	visit = func(node string) []string {
		if onPath[node] {
			for i, n := range path {
				if n == node {
					return append(append([]string{}, path[i:]...), node)
				}
			}
		}
		if visited[node] {
			return nil
		}

		visited[node] = true
		onPath[node] = true
		path = append(path, node)

		for _, dep := range g.dependencies[node] {
			if cycle := visit(dep); cycle != nil {
				return cycle
			}
		}

		onPath[node] = false
		path = path[:len(path)-1]
		return nil
	}

	for _, node := range g.nodes {
		if cycle := visit(node); cycle != nil {
			return cycle
		}
	}
	return nil
}

// checkReferences warns about var() cycles within a theme. Every variable on
// a cycle computes to its guaranteed-invalid value.
func checkReferences(themes token.ThemeSet) []string {
	var warnings []string
	for _, t := range themes {
		if cycle := buildReferenceGraph(t.Tokens).FindCycle(); cycle != nil {
			warnings = append(warnings, fmt.Sprintf("theme %q: circular var() reference: %s",
				t.Name, strings.Join(cycle, " → ")))
		}
	}
	return warnings
}

// CheckTypography warns about typography properties reading variables that no
// theme defines, under either their raw name or a public name the @theme
// block declares.
func CheckTypography(themes token.ThemeSet, styles []token.Style, opts preset.ThemeOptions) []string {
	mapper := opts.Mapper
	if mapper == nil {
		mapper = naming.Default
	}

	defined := make(map[string]bool)
	for _, t := range themes {
		for id := range t.Tokens.All() {
			defined[naming.RawName(id)] = true
			if !opts.Excludes(id) {
				defined[mapper.PublicName(id)] = true
			}
		}
	}

	var warnings []string
	for _, style := range styles {
		for prop, value := range style.Properties.All() {
			if value.Kind() != token.String {
				continue
			}
			for _, ref := range References(value.String()) {
				if !defined[ref] {
					warnings = append(warnings, fmt.Sprintf("typography %q: %s reads %s, which no theme defines",
						style.Name, prop, ref))
				}
			}
		}
	}
	return warnings
}
