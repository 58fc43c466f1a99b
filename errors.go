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

import "errors"

// Decoding failures wrap exactly one of these sentinels, so callers can
// classify a failure with errors.Is while the message carries the offending
// key or value. Every error is fatal to the decode that produced it; there
// are no partial results.
var (
	// ErrMissingField reports a required attribute absent from a schema or
	// field definition.
	ErrMissingField = errors.New("missing required field")
	// ErrTypeMismatch reports an attribute or input of the wrong shape,
	// e.g. a number where a string was expected.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrInvalidValue reports a well-shaped value outside its closed set,
	// e.g. an unrecognized primitive name or order directive.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnsupportedType reports a "type" discriminator naming no known
	// schema kind.
	ErrUnsupportedType = errors.New("unsupported schema type")
)
