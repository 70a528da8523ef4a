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


// Command calc is a small integer calculator built on the descent parsing
// engine.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "calc:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := new(options)

	rootCmd := &cobra.Command{
		Use:           "calc",
		Short:         "Evaluate, inspect and compile integer arithmetic",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return opts.close()
		},
	}
	opts.register(rootCmd)

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newTokensCmd(opts))
	rootCmd.AddCommand(newAsmCmd(opts))

	return rootCmd
}
