/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"iter"
	"slices"
)

// Set is an ordered mapping from identifier to Value.
// Iteration follows insertion order. A nil *Set behaves as an empty set.
type Set struct {
	keys   []string
	values map[string]Value
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{values: make(map[string]Value)}
}

// SetOf builds a Set from alternating key, value pairs.
// Values may be string, int, or float64; anything else panics.
func SetOf(pairs ...any) *Set {
	if len(pairs)%2 != 0 {
		panic("token.SetOf: odd number of arguments")
	}
	s := NewSet()
	for i := 0; i < len(pairs); i += 2 {
		key := pairs[i].(string)
		switch v := pairs[i+1].(type) {
		case string:
			s.Set(key, StringValue(v))
		case int:
			s.Set(key, NumberValue(float64(v)))
		case float64:
			s.Set(key, NumberValue(v))
		case Value:
			s.Set(key, v)
		default:
			panic("token.SetOf: unsupported value type for " + key)
		}
	}
	return s
}

// Set stores v under key. Replacing an existing key keeps its position.
func (s *Set) Set(key string, v Value) {
	if s.values == nil {
		s.values = make(map[string]Value)
	}
	if _, exists := s.values[key]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[key] = v
}

// Get returns the value for key and whether it is present.
func (s *Set) Get(key string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	v, ok := s.values[key]
	return v, ok
}

// Value returns the value for key, or the undefined Value if absent.
func (s *Set) Value(key string) Value {
	v, _ := s.Get(key)
	return v
}

// Has reports whether key is present.
func (s *Set) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Len returns the number of entries.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Keys returns a copy of the keys in insertion order.
func (s *Set) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.keys)
}

// All iterates over entries in insertion order.
func (s *Set) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if s == nil {
			return
		}
		for _, k := range s.keys {
			if !yield(k, s.values[k]) {
				return
			}
		}
	}
}
