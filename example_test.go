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

package avroschema_test

import (
	"fmt"
	"log"

	"github.com/avrokit/avroschema"
)

func ExampleParse() {
	schema, err := avroschema.Parse(`{
		"type": "record",
		"name": "LongList",
		"fields": [
			{"name": "value", "type": "long"},
			{"name": "next", "type": ["null", "long"]}
		]
	}`)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(schema)
	// Output:
	// record<LongList: value: long, next: union<null, long>>
}

func ExampleParseValue() {
	schema, err := avroschema.ParseValue(map[string]any{
		"type":  "array",
		"items": "string",
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(schema)
	// Output:
	// array<string>
}
