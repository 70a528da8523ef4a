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
	"runtime"

	"github.com/spf13/cobra"
)

func newRunCmd(opts *options) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "run <expr-or-file>...",
		Short: "Evaluate expressions and print their values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := opts.analyzeAll(cmd.Context(), args, jobs, true)
			if err != nil {
				return err
			}

			var failed bool
			for _, res := range results {
				if _, err := opts.render(res.report, cmd.ErrOrStderr()); err != nil {
					return err
				}
				if !res.ok {
					failed = true
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.value)
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of inputs to evaluate in parallel")

	return cmd
}
