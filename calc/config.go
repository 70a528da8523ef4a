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
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is configuration for parsing calc programs.
type Config struct {
	// The maximum number of nested parentheses. Zero means no limit.
	MaxDepth int `yaml:"max_depth"`

	// If set, integer literals may only carry the u64 suffix, since that is
	// the only type calc evaluates in.
	Strict bool `yaml:"strict"`

	// The current nesting depth. Only meaningful while parsing.
	depth int
}

// DefaultConfig is the configuration used when none is given.
var DefaultConfig = Config{MaxDepth: 64}

// LoadConfig reads a YAML configuration file, starting from [DefaultConfig].
//
// Unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	config := DefaultConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("calc: invalid config %q: %w", path, err)
	}
	if config.MaxDepth < 0 {
		return Config{}, fmt.Errorf("calc: invalid config %q: max_depth must not be negative", path)
	}
	return config, nil
}
