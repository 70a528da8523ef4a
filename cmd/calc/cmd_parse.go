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

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/bufbuild/descent/calc"
	"github.com/bufbuild/descent/report"
)

func newParseCmd(opts *options) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <expr-or-file>",
		Short: "Parse an expression and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readInput(args[0])
			if err != nil {
				return err
			}

			r := new(report.Report)
			expr, err := calc.Parse(file, r, opts.config)
			r.AddError(err)
			if failed, err := opts.render(r, cmd.ErrOrStderr()); err != nil {
				return err
			} else if failed {
				return errFailed
			}

			out := cmd.OutOrStdout()
			switch outputFormat {
			case "yaml":
				data, err := calc.ToYAML(expr)
				if err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				_, err = out.Write(data)
				return err
			case "json":
				pb, err := calc.ToProto(expr)
				if err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(pb)
				if err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			case "text":
				_, err = fmt.Fprintln(out, expr)
				return err
			case "sexpr":
				_, err = fmt.Fprintln(out, calc.Sexpr(expr))
				return err
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "yaml", "output format (yaml, json, text, sexpr)")

	return cmd
}
