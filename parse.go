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
	"bytes"
	"fmt"

	"github.com/avrokit/avroschema/internal/json"
)

// maxNestingDepth bounds schema recursion so pathologically deep input
// fails with an error instead of exhausting the stack.
const maxNestingDepth = 1000

// Parse decodes a JSON document describing an Avro schema.
func Parse(schema string) (Schema, error) {
	return ParseBytes([]byte(schema))
}

// ParseBytes decodes a JSON document describing an Avro schema.
func ParseBytes(schema []byte) (Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(schema))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding schema JSON: %w", err)
	}
	return ParseValue(v)
}

// ParseValue decodes one generic JSON value as an Avro schema. The value
// may be a bare primitive name, a list describing a union, or a mapping
// whose "type" attribute selects the schema kind. The input is never
// mutated. The first error encountered aborts the decode.
func ParseValue(v any) (Schema, error) {
	return parseValue(v, 0)
}

// ParseFieldValue decodes one generic JSON value as a record field
// definition. The value must be a mapping with at least "name" and "type".
func ParseFieldValue(v any) (*Field, error) {
	return parseField(v, 0)
}

func parseValue(v any, depth int) (Schema, error) {
	if depth > maxNestingDepth {
		return nil, fmt.Errorf("%w: schema nesting exceeds %d levels", ErrInvalidValue, maxNestingDepth)
	}
	switch val := v.(type) {
	case string:
		if p := primitiveOf(val); p != nil {
			return p, nil
		}
		return nil, fmt.Errorf("%w: %q is not a primitive type name", ErrInvalidValue, val)
	case []any:
		types := make([]Schema, 0, len(val))
		for _, item := range val {
			s, err := parseValue(item, depth+1)
			if err != nil {
				return nil, err
			}
			types = append(types, s)
		}
		return &UnionSchema{Types: types}, nil
	case map[string]any:
		return parseComplex(newWorkingSet(val), depth)
	}
	return nil, fmt.Errorf("%w: expecting a string, sequence, or mapping, got %T", ErrTypeMismatch, v)
}

func parseComplex(ws workingSet, depth int) (Schema, error) {
	typ, err := ws.takeType()
	if err != nil {
		return nil, err
	}
	// A mapping whose discriminator names a primitive reduces to that
	// primitive; the remaining attributes are dropped.
	if p := primitiveOf(typ); p != nil {
		return p, nil
	}
	switch typ {
	case "enum":
		return parseEnum(ws)
	case "map":
		return parseMap(ws, depth)
	case "array":
		return parseArray(ws, depth)
	case "record":
		return parseRecord(ws, depth)
	case "fixed":
		return parseFixed(ws)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, typ)
}

func parseEnum(ws workingSet) (Schema, error) {
	name, err := ws.takeName("enum")
	if err != nil {
		return nil, err
	}
	namespace, _, err := ws.takeString("namespace")
	if err != nil {
		return nil, err
	}
	aliases, err := ws.takeStringList("aliases")
	if err != nil {
		return nil, err
	}
	doc, _, err := ws.takeString("doc")
	if err != nil {
		return nil, err
	}
	symbols, err := ws.takeStringList("symbols")
	if err != nil {
		return nil, err
	}
	def, _, err := ws.takeString("default")
	if err != nil {
		return nil, err
	}
	return &EnumSchema{
		Name:      name,
		Namespace: namespace,
		Doc:       doc,
		Aliases:   aliases,
		Symbols:   symbols,
		Default:   def,
	}, nil
}

func parseMap(ws workingSet, depth int) (Schema, error) {
	values, ok, err := ws.takeSchema("values", depth)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: values is required in a map", ErrMissingField)
	}
	return &MapSchema{Values: values}, nil
}

func parseArray(ws workingSet, depth int) (Schema, error) {
	items, ok, err := ws.takeSchema("items", depth)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: items is required in an array", ErrMissingField)
	}
	return &ArraySchema{Items: items}, nil
}

func parseRecord(ws workingSet, depth int) (Schema, error) {
	name, err := ws.takeName("record")
	if err != nil {
		return nil, err
	}
	namespace, _, err := ws.takeString("namespace")
	if err != nil {
		return nil, err
	}
	aliases, err := ws.takeStringList("aliases")
	if err != nil {
		return nil, err
	}
	doc, _, err := ws.takeString("doc")
	if err != nil {
		return nil, err
	}
	fields, err := takeFieldList(ws, depth)
	if err != nil {
		return nil, err
	}
	return &RecordSchema{
		Name:      name,
		Namespace: namespace,
		Doc:       doc,
		Aliases:   aliases,
		Fields:    fields,
	}, nil
}

func parseFixed(ws workingSet) (Schema, error) {
	size, err := ws.takeSize("size", "fixed")
	if err != nil {
		return nil, err
	}
	name, err := ws.takeName("fixed")
	if err != nil {
		return nil, err
	}
	namespace, _, err := ws.takeString("namespace")
	if err != nil {
		return nil, err
	}
	aliases, err := ws.takeStringList("aliases")
	if err != nil {
		return nil, err
	}
	doc, _, err := ws.takeString("doc")
	if err != nil {
		return nil, err
	}
	return &FixedSchema{
		Name:      name,
		Namespace: namespace,
		Doc:       doc,
		Aliases:   aliases,
		Size:      size,
	}, nil
}

// takeFieldList removes the "fields" attribute of a record and decodes each
// entry as a field definition. An absent key yields an empty field list.
func takeFieldList(ws workingSet, depth int) ([]*Field, error) {
	v, present := ws["fields"]
	if !present {
		return []*Field{}, nil
	}
	delete(ws, "fields")
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: fields must be a list, got %T", ErrTypeMismatch, v)
	}
	fields := make([]*Field, 0, len(items))
	for _, item := range items {
		f, err := parseField(item, depth+1)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func parseField(v any, depth int) (*Field, error) {
	if depth > maxNestingDepth {
		return nil, fmt.Errorf("%w: schema nesting exceeds %d levels", ErrInvalidValue, maxNestingDepth)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expecting a mapping describing a field, got %T", ErrTypeMismatch, v)
	}
	ws := newWorkingSet(m)
	name, err := ws.takeName("field")
	if err != nil {
		return nil, err
	}
	doc, _, err := ws.takeString("doc")
	if err != nil {
		return nil, err
	}
	schema, ok, err := ws.takeSchema("type", depth)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: type is required in field %q", ErrMissingField, name)
	}
	def, _, err := ws.takeSchema("default", depth)
	if err != nil {
		return nil, err
	}
	order, err := ws.takeOrder("order")
	if err != nil {
		return nil, err
	}
	aliases, err := ws.takeStringList("aliases")
	if err != nil {
		return nil, err
	}
	return &Field{
		Name:    name,
		Doc:     doc,
		Schema:  schema,
		Default: def,
		Order:   order,
		Aliases: aliases,
	}, nil
}
