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
	"encoding/hex"

	"github.com/spf13/cobra"

	"github.com/bufbuild/descent/calc"
)

func newAsmCmd(opts *options) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "asm <expr-or-file>",
		Short: "Compile an expression to x86-64 machine code",
		Long: `Compile an expression to x86-64 machine code.

The code pushes every operand on the stack and finishes with an exit system
call, so the process status is the result truncated to 8 bits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readInput(args[0])
			if err != nil {
				return err
			}

			res := opts.analyze(file, false)
			if _, err := opts.render(res.report, cmd.ErrOrStderr()); err != nil {
				return err
			}
			if !res.ok {
				return errFailed
			}

			code := calc.Compile(res.expr)
			opts.logger.Debug("compiled expression", "path", file.Path(), "bytes", len(code))

			out := cmd.OutOrStdout()
			if raw {
				_, err = out.Write(code)
			} else {
				_, err = out.Write([]byte(hex.Dump(code)))
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "write raw bytes instead of a hex dump")

	return cmd
}
