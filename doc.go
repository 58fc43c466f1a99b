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

// Package avroschema parses Avro schema definitions into a typed,
// validated schema tree.
//
// A schema definition is polymorphic: it may be a bare primitive name, a
// list describing a union, or a mapping whose "type" attribute selects a
// primitive or one of the composite kinds (record, enum, array, map,
// fixed). Parse, ParseBytes and ParseYAML accept schema text; ParseValue
// accepts an already decoded generic value. The resulting Schema tree is
// immutable and needs no further structural validation by consumers.
//
// Bare name strings resolve only to the eight primitive types; references
// to previously defined named types are not resolved, every nested schema
// must be written inline.
package avroschema
