/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier resolves npm: and jsr: package specifiers for token files
// installed under node_modules.
package specifier

import (
	"regexp"
	"strings"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a local file path or URL.
	KindLocal Kind = iota
	// KindNPM is an npm package specifier.
	KindNPM
	// KindJSR is a jsr package specifier, installed through the npm compatibility layer.
	KindJSR
)

// Specifier represents a parsed package specifier.
type Specifier struct {
	Kind Kind

	// Package is the package name, e.g. "@fluentui/tokens" or "tokens".
	Package string

	// File is the file path within the package.
	File string

	// Raw is the original specifier string.
	Raw string
}

var (
	// npmPattern matches npm:@scope/pkg/path and npm:pkg/path
	npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^@/][^/]*)/(.+)$`)

	// jsrPattern matches jsr:@scope/pkg/path; jsr packages are always scoped
	jsrPattern = regexp.MustCompile(`^jsr:(@[^/]+/[^/]+)/(.+)$`)
)

// Parse parses a specifier string. Anything that is not a well-formed npm: or
// jsr: specifier with a file component is KindLocal.
func Parse(spec string) Specifier {
	if m := npmPattern.FindStringSubmatch(spec); m != nil {
		return Specifier{Kind: KindNPM, Package: m[1], File: m[2], Raw: spec}
	}
	if m := jsrPattern.FindStringSubmatch(spec); m != nil {
		return Specifier{Kind: KindJSR, Package: m[1], File: m[2], Raw: spec}
	}
	return Specifier{Kind: KindLocal, File: spec, Raw: spec}
}

// IsPackageSpecifier reports whether spec starts with npm: or jsr:.
// Malformed package specifiers still count, so they fail resolution instead
// of being read as local files.
func IsPackageSpecifier(spec string) bool {
	return strings.HasPrefix(spec, "npm:") || strings.HasPrefix(spec, "jsr:")
}

// installedName is the directory name under node_modules.
// JSR packages appear under the @jsr scope: jsr:@scope/pkg → @jsr/scope__pkg.
func (s Specifier) installedName() string {
	if s.Kind != KindJSR {
		return s.Package
	}
	return "@jsr/" + strings.Replace(strings.TrimPrefix(s.Package, "@"), "/", "__", 1)
}
