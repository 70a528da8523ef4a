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


package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bufbuild/descent/calc"
	"github.com/bufbuild/descent/report"
)

func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <expr-or-file>",
		Short: "Print the token stream for an input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readInput(args[0])
			if err != nil {
				return err
			}

			r := new(report.Report)
			buf := calc.Lexer.Lex(file, r)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range buf.All() {
				value := ""
				if e.Lit != nil {
					value = e.Lit.String()
				}
				fmt.Fprintf(w, "%d:%d\t%v\t%s\t%s\n", e.At.Start, e.At.End, e.Kind, e.Text, value)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if failed, err := opts.render(r, cmd.ErrOrStderr()); err != nil {
				return err
			} else if failed {
				return errFailed
			}
			return nil
		},
	}
}
