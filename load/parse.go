/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/tokenwind/token"
)

// UnsupportedValueError reports a token whose value is not a string or number.
type UnsupportedValueError struct {
	// Path is the file the token was read from, if known.
	Path string

	// Token is the dotted key path of the offending value.
	Token string

	// Kind describes the value found: "object", "array", "boolean", or "null".
	Kind string
}

func (e *UnsupportedValueError) Error() string {
	msg := fmt.Sprintf("unsupported %s value for %q: only strings and numbers are allowed", e.Kind, e.Token)
	if e.Path != "" {
		return e.Path + ": " + msg
	}
	return msg
}

// field is one key of a decoded document. value holds a token.Value,
// a []field for nested objects, or an unsupported kind.
type field struct {
	key   string
	value any
}

type unsupported string

// ParseSet parses a flat token document, mapping identifiers to scalar values.
// JSON (comments and trailing commas allowed) and YAML are accepted; key order is kept.
func ParseSet(data []byte) (*token.Set, error) {
	fields, err := decode(data)
	if err != nil {
		return nil, err
	}
	return toSet(fields, "")
}

// ParseStyles parses a typography document: style names mapped to objects of
// CSS property values. Style and property order is kept.
func ParseStyles(data []byte) ([]token.Style, error) {
	fields, err := decode(data)
	if err != nil {
		return nil, err
	}

	styles := make([]token.Style, 0, len(fields))
	for _, f := range fields {
		children, ok := f.value.([]field)
		if !ok {
			return nil, fmt.Errorf("style %q must be an object of CSS properties", f.key)
		}
		props, err := toSet(children, f.key+".")
		if err != nil {
			return nil, err
		}
		styles = append(styles, token.Style{Name: f.key, Properties: props})
	}
	return styles, nil
}

func toSet(fields []field, keyPrefix string) (*token.Set, error) {
	set := token.NewSet()
	for _, f := range fields {
		switch v := f.value.(type) {
		case token.Value:
			set.Set(f.key, v)
		case []field:
			return nil, &UnsupportedValueError{Token: keyPrefix + f.key, Kind: "object"}
		case unsupported:
			return nil, &UnsupportedValueError{Token: keyPrefix + f.key, Kind: string(v)}
		}
	}
	return set, nil
}

func decode(data []byte) ([]field, error) {
	if isLikelyJSON(data) {
		return decodeJSON(data)
	}
	return decodeYAML(data)
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

func decodeJSON(data []byte) ([]field, error) {
	clean := bytes.TrimPrefix(jsonc.ToJSON(data), []byte("\xEF\xBB\xBF"))
	dec := json.NewDecoder(bytes.NewReader(clean))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("failed to parse JSON: root must be an object")
	}

	fields, err := decodeJSONObject(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("failed to parse JSON: unexpected data after root object")
	}
	return fields, nil
}

// decodeJSONObject reads members up to and including the closing brace.
func decodeJSONObject(dec *json.Decoder) ([]field, error) {
	var fields []field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		value, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field{key: key, value: value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return fields, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case string:
		return token.StringValue(v), nil
	case json.Number:
		return token.ParseNumber(v.String())
	case bool:
		return unsupported("boolean"), nil
	case nil:
		return unsupported("null"), nil
	case json.Delim:
		if v == '{' {
			return decodeJSONObject(dec)
		}
		// array: consume the elements, then the closing bracket
		for dec.More() {
			if _, err := decodeJSONValue(dec); err != nil {
				return nil, err
			}
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return unsupported("array"), nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %v", tok)
	}
}

func decodeYAML(data []byte) ([]field, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// empty document
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("failed to parse YAML: root must be an object")
	}
	return decodeYAMLMapping(root)
}

func decodeYAMLMapping(node *yaml.Node) ([]field, error) {
	fields := make([]field, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value, err := decodeYAMLValue(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML key %q: %w", key, err)
		}
		fields = append(fields, field{key: key, value: value})
	}
	return fields, nil
}

func decodeYAMLValue(node *yaml.Node) (any, error) {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.MappingNode:
		return decodeYAMLMapping(node)
	case yaml.SequenceNode:
		return unsupported("array"), nil
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!int", "!!float":
			var f float64
			if err := node.Decode(&f); err != nil {
				return nil, err
			}
			return token.NumberValue(f), nil
		case "!!bool":
			return unsupported("boolean"), nil
		case "!!null":
			return unsupported("null"), nil
		default:
			return token.StringValue(node.Value), nil
		}
	default:
		return nil, fmt.Errorf("unexpected YAML node at line %d", node.Line)
	}
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
