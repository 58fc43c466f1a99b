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

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML document describing an Avro schema. The YAML
// node tree is normalized to the generic JSON value model first, so the
// result is identical to parsing the equivalent JSON document.
func ParseYAML(schema []byte) (Schema, error) {
	var node any
	if err := yaml.Unmarshal(schema, &node); err != nil {
		return nil, fmt.Errorf("decoding schema YAML: %w", err)
	}
	return ParseValue(normalizeYAML(node))
}

// normalizeYAML rewrites yaml.v3 output into string-keyed maps all the way
// down. yaml.v3 already produces map[string]any for string keys, but
// non-string keys surface as map[any]any.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				key = fmt.Sprint(k)
			}
			out[key] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	}
	return v
}
