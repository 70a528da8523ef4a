// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package calc

import (
	"bytes"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// yamlExpr is the YAML form of an [Expr]. Exactly one of Int, Op or Group
// is set.
type yamlExpr struct {
	ID    int       `yaml:"id"`
	Start int       `yaml:"start"`
	End   int       `yaml:"end"`
	Int   *uint64   `yaml:"int,omitempty"`
	Type  string    `yaml:"type,omitempty"`
	Op    string    `yaml:"op,omitempty"`
	Left  *yamlExpr `yaml:"left,omitempty"`
	Right *yamlExpr `yaml:"right,omitempty"`
	Group *yamlExpr `yaml:"group,omitempty"`
}

func newYAMLExpr(expr Expr) *yamlExpr {
	node := expr.node()
	out := &yamlExpr{ID: node.ID, Start: node.At.Start, End: node.At.End}
	switch e := expr.(type) {
	case *Int:
		out.Int = &e.Value
		out.Type = e.Lit.Type.Suffix()
	case *Binary:
		out.Op = e.Op.Name()
		out.Left = newYAMLExpr(e.Left)
		out.Right = newYAMLExpr(e.Right)
	case *Group:
		out.Group = newYAMLExpr(e.Inner)
	default:
		panic(fmt.Sprintf("descent/calc: unexpected expression type %T", expr))
	}
	return out
}

// ToYAML renders an expression tree as YAML.
func ToYAML(expr Expr) ([]byte, error) {
	var out bytes.Buffer
	enc := yaml.NewEncoder(&out)
	enc.SetIndent(2)
	if err := enc.Encode(newYAMLExpr(expr)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// ToProto converts an expression tree into a [structpb.Struct], with the same
// shape as [ToYAML] produces.
func ToProto(expr Expr) (*structpb.Struct, error) {
	return structpb.NewStruct(toMap(expr))
}

func toMap(expr Expr) map[string]any {
	node := expr.node()
	out := map[string]any{
		"id":    node.ID,
		"start": node.At.Start,
		"end":   node.At.End,
	}
	switch e := expr.(type) {
	case *Int:
		// Struct numbers are doubles; keep large values exact as strings.
		if e.Value > 1<<53 {
			out["int"] = fmt.Sprint(e.Value)
		} else {
			out["int"] = e.Value
		}
		if suffix := e.Lit.Type.Suffix(); suffix != "" {
			out["type"] = suffix
		}
	case *Binary:
		out["op"] = e.Op.Name()
		out["left"] = toMap(e.Left)
		out["right"] = toMap(e.Right)
	case *Group:
		out["group"] = toMap(e.Inner)
	}
	return out
}
