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


package calc_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufbuild/descent/calc"
	"github.com/bufbuild/descent/internal/corpora"
	"github.com/bufbuild/descent/report"
	"github.com/bufbuild/descent/source"
)

func TestCorpus(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:       "testdata",
		Refresh:    "DESCENT_REFRESH",
		Extensions: []string{"calc"},
		Outputs: []corpora.Output{
			{Extension: "yaml"},
			{Extension: "stderr.txt"},
			{Extension: "eval.txt"},
		},
	}

	corpus.Test = func(t *testing.T, path, text string) []string {
		r := new(report.Report)
		expr, err := calc.Parse(source.NewFile(path, text), r, calc.DefaultConfig)
		r.AddError(err)

		var tree, value string
		if expr != nil {
			if calc.Check(expr, r) && !r.HasErrors() {
				v, err := calc.Eval(expr)
				if err != nil {
					r.AddError(err)
				} else {
					value = fmt.Sprintln(v)
				}
			}

			yaml, err := calc.ToYAML(expr)
			require.NoError(t, err)
			tree = string(yaml)
		}

		r.Canonicalize()
		stderr, _, _ := report.Renderer{Compact: true}.RenderString(r)
		return []string{tree, stderr, value}
	}
	corpus.Run(t)
}
