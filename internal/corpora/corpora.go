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


// Package corpora runs golden tests: table-driven tests whose table lives in
// the file system.
//
// Each test case is an input file under a root directory. Running the case
// produces one string per configured [Output], which is compared against a
// file next to the input named after it plus the output's extension.
package corpora

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a test data corpus.
type Corpus struct {
	// The root of the test data directory. This path is relative to the file
	// that calls [Corpus.Run].
	Root string

	// An environment variable to check with regards to whether to run in
	// "refresh" mode or not. Its value is a glob matched against test names;
	// matching tests overwrite their outputs instead of comparing them.
	Refresh string

	// File extensions (without a dot) of files which define a test case,
	// e.g. "calc".
	Extensions []string

	// Possible outputs of the test. If the file for a particular output is
	// missing, the output is expected to be empty.
	Outputs []Output

	// Test executes one test case from the corpus. Returns a slice of strings
	// corresponding to the elements of Outputs.
	Test func(t *testing.T, path, text string) []string
}

// Output represents the output of a test case.
type Output struct {
	// The extension of the output. For a test "foo.calc" and an output with
	// extension "stderr.txt", the runner looks for "foo.calc.stderr.txt".
	Extension string

	// The comparison function for this output. May be nil, in which case the
	// values are compared byte-for-byte.
	Compare Compare
}

// Compare is a comparison function between strings, used in [Output].
//
// Returns empty string if the strings match, otherwise returns an error
// message.
type Compare func(got, want string) string

// Run runs every test case in the corpus as a parallel subtest of t.
func (c Corpus) Run(t *testing.T) {
	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)
	t.Logf("corpora: searching for files in %q", root)

	var tests []string
	for _, ext := range c.Extensions {
		matches, err := doublestar.Glob(os.DirFS(root), "**/*."+ext)
		if err != nil {
			t.Fatal("corpora: error while searching testdata:", err)
		}
		tests = append(tests, matches...)
	}
	if len(tests) == 0 {
		t.Fatalf("corpora: no test cases found in %q", root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing test data because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, test := range tests {
		path := filepath.Join(root, filepath.FromSlash(test))
		name := filepath.ToSlash(filepath.Join(c.Root, test))
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", path, err)
			}

			results := c.Test(t, name, string(input))
			if len(results) != len(c.Outputs) {
				t.Fatalf("corpora: test returned %d outputs, want %d", len(results), len(c.Outputs))
			}

			refresh, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				path := fmt.Sprint(path, ".", output.Extension)
				if refresh {
					writeOutput(t, path, results[i])
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading output file %q: %v", path, err)
					continue
				}

				cmp := output.Compare
				if cmp == nil {
					cmp = defaultCompare
				}
				if diff := cmp(results[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", path, diff)
				}
			}
		})
	}
}

// writeOutput replaces a golden file. Empty outputs delete the file instead.
func writeOutput(t *testing.T, path, text string) {
	t.Helper()

	if text == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("corpora: error while deleting output file %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Errorf("corpora: error while writing output file %q: %v", path, err)
	}
}

func defaultCompare(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	// Colorize the diff so it's easier to read.
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
