// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avroschema

import (
	"fmt"
	"math"

	"github.com/avrokit/avroschema/internal/json"
)

// workingSet is the scratch attribute map for decoding one schema or field
// definition. Helpers consume keys destructively so every key is interpreted
// at most once; it is built as a copy, the caller's map is never mutated.
// The set lives for a single decode call and is dropped at its end.
type workingSet map[string]any

func newWorkingSet(m map[string]any) workingSet {
	ws := make(workingSet, len(m))
	for k, v := range m {
		ws[k] = v
	}
	return ws
}

// takeType removes and returns the "type" discriminator, which must be
// present and string-valued.
func (ws workingSet) takeType() (string, error) {
	v, ok := ws["type"]
	if !ok {
		return "", fmt.Errorf("%w: type", ErrMissingField)
	}
	delete(ws, "type")
	return asString(v, "type")
}

func asString(v any, key string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrTypeMismatch, key, v)
	}
	return s, nil
}

// takeString removes an optional string attribute. ok reports whether the
// key was present at all.
func (ws workingSet) takeString(key string) (s string, ok bool, err error) {
	v, present := ws[key]
	if !present {
		return "", false, nil
	}
	delete(ws, key)
	s, err = asString(v, key)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// takeName removes the required "name" attribute of a named schema kind.
// context names the kind for the error message.
func (ws workingSet) takeName(context string) (string, error) {
	s, ok, err := ws.takeString("name")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: name is required in %s", ErrMissingField, context)
	}
	if s == "" {
		return "", fmt.Errorf("%w: name must not be empty in %s", ErrInvalidValue, context)
	}
	return s, nil
}

// takeStringList removes a list-of-strings attribute. An absent key yields
// an empty, non-nil slice.
func (ws workingSet) takeStringList(key string) ([]string, error) {
	v, present := ws[key]
	if !present {
		return []string{}, nil
	}
	delete(ws, key)
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a list of strings, got %T", ErrTypeMismatch, key, v)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, err := asString(item, key)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// takeSchema removes an attribute and decodes it as a full nested schema.
// ok reports whether the key was present.
func (ws workingSet) takeSchema(key string, depth int) (s Schema, ok bool, err error) {
	v, present := ws[key]
	if !present {
		return nil, false, nil
	}
	delete(ws, key)
	s, err = parseValue(v, depth+1)
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

// takeOrder removes a sort order attribute, one of the literals
// "ascending", "descending" or "ignore".
func (ws workingSet) takeOrder(key string) (Order, error) {
	s, ok, err := ws.takeString(key)
	if err != nil || !ok {
		return OrderNone, err
	}
	switch s {
	case "ascending":
		return OrderAscending, nil
	case "descending":
		return OrderDescending, nil
	case "ignore":
		return OrderIgnore, nil
	}
	return OrderNone, fmt.Errorf("%w: %s must be one of {ascending, descending, ignore}, got %q",
		ErrInvalidValue, key, s)
}

// takeSize removes a required non-negative integer attribute. context names
// the schema kind for the error message.
func (ws workingSet) takeSize(key, context string) (int, error) {
	v, present := ws[key]
	if !present {
		return 0, fmt.Errorf("%w: %s is required in %s", ErrMissingField, key, context)
	}
	delete(ws, key)
	return asSize(v, key)
}

// asSize coerces the integer representations the JSON and YAML front ends
// produce (json.Number, float64, int) plus int64 for hand-built values.
func asSize(v any, key string) (int, error) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil || i < 0 {
			return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %s", ErrTypeMismatch, key, n)
		}
		return int(i), nil
	case float64:
		if n < 0 || n != math.Trunc(n) || n > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %v", ErrTypeMismatch, key, n)
		}
		return int(n), nil
	case int:
		if n < 0 {
			return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %d", ErrTypeMismatch, key, n)
		}
		return n, nil
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %d", ErrTypeMismatch, key, n)
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %T", ErrTypeMismatch, key, v)
}
