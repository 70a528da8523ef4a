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
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"

	"github.com/bufbuild/descent/calc"
	"github.com/bufbuild/descent/report"
	"github.com/bufbuild/descent/source"
)

// errFailed is returned once diagnostics explaining a failure have already
// been rendered.
var errFailed = errors.New("aborting due to previous errors")

// options holds the flags shared by every subcommand.
type options struct {
	configPath string
	maxDepth   int
	strict     bool
	color      bool
	compact    bool
	logLevel   string
	logJSON    string

	config  calc.Config
	logger  *slog.Logger
	logFile *os.File
}

func (o *options) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "path to a YAML config file")
	flags.IntVar(&o.maxDepth, "max-depth", calc.DefaultConfig.MaxDepth, "maximum parenthesis nesting; 0 means unlimited")
	flags.BoolVar(&o.strict, "strict", false, "reject integer suffixes other than u64")
	flags.BoolVar(&o.color, "color", false, "colorize diagnostics")
	flags.BoolVar(&o.compact, "compact", false, "render one diagnostic per line")
	flags.StringVar(&o.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&o.logJSON, "log-json", "", "also write JSON logs to this file")
}

// setup resolves the configuration and builds the logger. Flags that were set
// explicitly override the config file.
func (o *options) setup(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}),
	}
	if o.logJSON != "" {
		f, err := os.Create(o.logJSON)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		o.logFile = f
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	o.logger = slog.New(slogmulti.Fanout(handlers...))

	o.config = calc.DefaultConfig
	if o.configPath != "" {
		config, err := calc.LoadConfig(o.configPath)
		if err != nil {
			return err
		}
		o.config = config
		o.logger.Debug("loaded config", "path", o.configPath, "max_depth", config.MaxDepth, "strict", config.Strict)
	}
	flags := cmd.Flags()
	if flags.Changed("max-depth") {
		if o.maxDepth < 0 {
			return errors.New("--max-depth must not be negative")
		}
		o.config.MaxDepth = o.maxDepth
	}
	if flags.Changed("strict") {
		o.config.Strict = o.strict
	}
	return nil
}

func (o *options) close() error {
	if o.logFile == nil {
		return nil
	}
	err := o.logFile.Close()
	o.logFile = nil
	return err
}

// render writes r's diagnostics to out and reports whether any were errors.
func (o *options) render(r *report.Report, out io.Writer) (bool, error) {
	r.Canonicalize()
	renderer := report.Renderer{Compact: o.compact, Colorize: o.color}
	errs, _, err := renderer.Render(r, out)
	return errs > 0, err
}

// readInput treats arg as a path if such a file exists, and as the text of an
// expression otherwise.
func readInput(arg string) (*source.File, error) {
	data, err := os.ReadFile(arg)
	switch {
	case err == nil:
		return source.NewFile(arg, string(data)), nil
	case errors.Is(err, fs.ErrNotExist):
		return source.NewFile("<input>", arg), nil
	default:
		return nil, fmt.Errorf("read input: %w", err)
	}
}
