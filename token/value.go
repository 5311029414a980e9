/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the ordered token sets that tokenwind transforms.
package token

import (
	"fmt"
	"strconv"
)

// Kind identifies the scalar type of a Value.
type Kind int

const (
	// Undefined is the zero Kind, held by values missing from a set.
	Undefined Kind = iota
	// String is a verbatim string value.
	String
	// Number is a numeric value held in canonical decimal form.
	Number
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	default:
		return "undefined"
	}
}

// Value is a scalar token value. The zero Value is undefined.
type Value struct {
	kind Kind
	text string
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{kind: String, text: s}
}

// NumberValue returns a number Value.
func NumberValue(f float64) Value {
	return Value{kind: Number, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// ParseNumber parses a numeric literal into a number Value.
// Literals that differ only in notation ("1.50", "1.5", "15e-1") yield equal values.
func ParseNumber(literal string) (Value, error) {
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return Value{}, fmt.Errorf("invalid number %q: %w", literal, err)
	}
	return NumberValue(f), nil
}

// Kind returns the scalar type of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsDefined reports whether v holds a value.
func (v Value) IsDefined() bool {
	return v.kind != Undefined
}

// String renders v in its natural text form: strings verbatim and unquoted,
// numbers in shortest decimal form.
func (v Value) String() string {
	if v.kind == Undefined {
		return "undefined"
	}
	return v.text
}

// Equal reports strict equality: both values are defined and share kind and text.
// The string "10" never equals the number 10, and undefined equals nothing.
func (v Value) Equal(other Value) bool {
	return v.kind != Undefined && v.kind == other.kind && v.text == other.text
}
