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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/avrokit/avroschema"
	"github.com/docopt/docopt-go"
	"github.com/pterm/pterm"
)

const usage = `avsc inspects Avro schema definitions.

It parses a schema file and prints the resulting schema tree, or the
parse error if the definition is invalid.

Usage:
  avsc [--yaml] <file>
  avsc -h | --help

Options:
  -h --help  Show this screen.
  --yaml     Treat the input as a YAML document.`

func main() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// docopt already printed usage
		os.Exit(2)
	}
	file, _ := opts.String("<file>")
	asYAML, _ := opts.Bool("--yaml")

	data, err := os.ReadFile(file)
	if err != nil {
		pterm.Error.Printfln("reading %s: %v", file, err)
		os.Exit(1)
	}

	var schema avroschema.Schema
	if asYAML {
		schema, err = avroschema.ParseYAML(data)
	} else {
		schema, err = avroschema.ParseBytes(data)
	}
	if err != nil {
		pterm.Error.Printfln("parsing %s: %v", file, err)
		os.Exit(1)
	}

	if err := pterm.DefaultTree.WithRoot(schemaNode(schema)).Render(); err != nil {
		pterm.Error.Printfln("rendering tree: %v", err)
		os.Exit(1)
	}
}

// schemaNode builds the display tree for one schema node. Composite kinds
// get one child per nested schema, primitives render as leaves.
func schemaNode(s avroschema.Schema) pterm.TreeNode {
	switch v := s.(type) {
	case *avroschema.RecordSchema:
		node := pterm.TreeNode{Text: "record " + v.FullName()}
		for _, f := range v.Fields {
			node.Children = append(node.Children, pterm.TreeNode{
				Text:     fieldLabel(f),
				Children: []pterm.TreeNode{schemaNode(f.Schema)},
			})
		}
		return node
	case *avroschema.EnumSchema:
		return pterm.TreeNode{
			Text: fmt.Sprintf("enum %s [%s]", v.FullName(), strings.Join(v.Symbols, ", ")),
		}
	case *avroschema.ArraySchema:
		return pterm.TreeNode{Text: "array", Children: []pterm.TreeNode{schemaNode(v.Items)}}
	case *avroschema.MapSchema:
		return pterm.TreeNode{Text: "map", Children: []pterm.TreeNode{schemaNode(v.Values)}}
	case *avroschema.UnionSchema:
		node := pterm.TreeNode{Text: "union"}
		for _, t := range v.Types {
			node.Children = append(node.Children, schemaNode(t))
		}
		return node
	case *avroschema.FixedSchema:
		return pterm.TreeNode{Text: fmt.Sprintf("fixed %s (%d bytes)", v.FullName(), v.Size)}
	}
	return pterm.TreeNode{Text: s.String()}
}

func fieldLabel(f *avroschema.Field) string {
	label := f.Name
	if f.Order != avroschema.OrderNone {
		label += " (order: " + f.Order.String() + ")"
	}
	if len(f.Aliases) > 0 {
		label += " (aliases: " + strings.Join(f.Aliases, ", ") + ")"
	}
	return label
}
