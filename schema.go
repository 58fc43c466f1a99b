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
	"strconv"
	"strings"
)

// Type is the identifier for an Avro schema kind.
type Type int

const (
	NULL Type = iota
	BOOLEAN
	INT
	LONG
	FLOAT
	DOUBLE
	BYTES
	STRING
	RECORD
	ENUM
	ARRAY
	MAP
	UNION
	FIXED
)

// String returns the Avro type name for the kind, e.g. "long" or "record".
func (t Type) String() string {
	switch t {
	case NULL:
		return "null"
	case BOOLEAN:
		return "boolean"
	case INT:
		return "int"
	case LONG:
		return "long"
	case FLOAT:
		return "float"
	case DOUBLE:
		return "double"
	case BYTES:
		return "bytes"
	case STRING:
		return "string"
	case RECORD:
		return "record"
	case ENUM:
		return "enum"
	case ARRAY:
		return "array"
	case MAP:
		return "map"
	case UNION:
		return "union"
	case FIXED:
		return "fixed"
	}
	return "unknown"
}

// Schema is a node in a parsed Avro schema tree. Nodes are immutable once
// constructed and form a tree: composite schemas own their nested schemas
// exclusively, there is no sharing and no cycles.
type Schema interface {
	// Type returns the kind identifier for this schema node.
	Type() Type
	// String returns a readable representation of the schema for debugging
	// and error messages. It is not the canonical JSON form.
	String() string
}

// PrimitiveSchema is one of the eight scalar Avro types. Use the prepared
// instances in PrimitiveTypes rather than constructing values directly.
type PrimitiveSchema struct {
	typ Type
}

func (s *PrimitiveSchema) Type() Type     { return s.typ }
func (s *PrimitiveSchema) String() string { return s.typ.String() }

// PrimitiveTypes holds a prepared instance of every primitive schema.
var PrimitiveTypes = struct {
	Null    Schema
	Boolean Schema
	Int     Schema
	Long    Schema
	Float   Schema
	Double  Schema
	Bytes   Schema
	String  Schema
}{
	Null:    &PrimitiveSchema{typ: NULL},
	Boolean: &PrimitiveSchema{typ: BOOLEAN},
	Int:     &PrimitiveSchema{typ: INT},
	Long:    &PrimitiveSchema{typ: LONG},
	Float:   &PrimitiveSchema{typ: FLOAT},
	Double:  &PrimitiveSchema{typ: DOUBLE},
	Bytes:   &PrimitiveSchema{typ: BYTES},
	String:  &PrimitiveSchema{typ: STRING},
}

// primitiveOf maps a bare type name to its primitive schema, or nil if the
// name does not denote a primitive. Bare strings never resolve to named
// types here, only to the eight built-in scalars.
func primitiveOf(name string) Schema {
	switch name {
	case "null":
		return PrimitiveTypes.Null
	case "boolean":
		return PrimitiveTypes.Boolean
	case "string":
		return PrimitiveTypes.String
	case "bytes":
		return PrimitiveTypes.Bytes
	case "int":
		return PrimitiveTypes.Int
	case "long":
		return PrimitiveTypes.Long
	case "float":
		return PrimitiveTypes.Float
	case "double":
		return PrimitiveTypes.Double
	}
	return nil
}

// Field is one named slot within a record schema.
//
// Default, when present, holds a schema decoded from the field's "default"
// attribute: defaults are expressed in schema form rather than as literal
// values, so a bare literal such as 42 cannot appear as a default.
type Field struct {
	Name    string
	Doc     string
	Schema  Schema
	Default Schema
	Order   Order
	Aliases []string
}

// NewField returns a field with the given name and type and all optional
// attributes at their defaults.
func NewField(name string, schema Schema) *Field {
	return &Field{Name: name, Schema: schema, Aliases: []string{}}
}

func (f *Field) String() string { return f.Name + ": " + f.Schema.String() }

// RecordSchema is a named composite type with an ordered field list. Field
// order is significant, it defines the positional wire order.
type RecordSchema struct {
	Name      string
	Namespace string
	Doc       string
	Aliases   []string
	Fields    []*Field
}

// NewRecordSchema returns a record with the given name and fields and all
// optional attributes at their defaults.
func NewRecordSchema(name string, fields []*Field) *RecordSchema {
	return &RecordSchema{Name: name, Aliases: []string{}, Fields: fields}
}

func (s *RecordSchema) Type() Type { return RECORD }

// FullName returns the namespace-qualified name of the record.
func (s *RecordSchema) FullName() string { return fullName(s.Name, s.Namespace) }

func (s *RecordSchema) String() string {
	var b strings.Builder
	b.WriteString("record<")
	b.WriteString(s.FullName())
	for i, f := range s.Fields {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(f.String())
	}
	b.WriteString(">")
	return b.String()
}

// EnumSchema is a named type over a fixed, ordered symbol set.
type EnumSchema struct {
	Name      string
	Namespace string
	Doc       string
	Aliases   []string
	Symbols   []string
	Default   string
}

// NewEnumSchema returns an enum with the given name and symbols and all
// optional attributes at their defaults.
func NewEnumSchema(name string, symbols []string) *EnumSchema {
	return &EnumSchema{Name: name, Symbols: symbols, Aliases: []string{}}
}

func (s *EnumSchema) Type() Type { return ENUM }

// FullName returns the namespace-qualified name of the enum.
func (s *EnumSchema) FullName() string { return fullName(s.Name, s.Namespace) }

func (s *EnumSchema) String() string {
	return "enum<" + s.FullName() + ": " + strings.Join(s.Symbols, ", ") + ">"
}

// ArraySchema describes a sequence of items of one nested schema.
type ArraySchema struct {
	Items Schema
}

func (s *ArraySchema) Type() Type     { return ARRAY }
func (s *ArraySchema) String() string { return "array<" + s.Items.String() + ">" }

// MapSchema describes a mapping from string keys to values of one nested
// schema. Keys are implicitly strings and carry no schema of their own.
type MapSchema struct {
	Values Schema
}

func (s *MapSchema) Type() Type     { return MAP }
func (s *MapSchema) String() string { return "map<" + s.Values.String() + ">" }

// UnionSchema is an ordered sequence of alternative schemas. The sequence
// may be heterogeneous and may contain nested unions; no flattening or
// uniqueness is enforced.
type UnionSchema struct {
	Types []Schema
}

func (s *UnionSchema) Type() Type { return UNION }

func (s *UnionSchema) String() string {
	var b strings.Builder
	b.WriteString("union<")
	for i, t := range s.Types {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteString(">")
	return b.String()
}

// FixedSchema is a named type for byte sequences of a fixed length.
type FixedSchema struct {
	Name      string
	Namespace string
	Doc       string
	Aliases   []string
	Size      int
}

// NewFixedSchema returns a fixed with the given name and byte size and all
// optional attributes at their defaults.
func NewFixedSchema(name string, size int) *FixedSchema {
	return &FixedSchema{Name: name, Size: size, Aliases: []string{}}
}

func (s *FixedSchema) Type() Type { return FIXED }

// FullName returns the namespace-qualified name of the fixed.
func (s *FixedSchema) FullName() string { return fullName(s.Name, s.Namespace) }

func (s *FixedSchema) String() string {
	return "fixed<" + s.FullName() + ": " + strconv.Itoa(s.Size) + ">"
}

func fullName(name, namespace string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}
