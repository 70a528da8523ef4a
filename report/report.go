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


package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/btree"
)

// Report is a collection of diagnostics.
//
// A Report is not safe for concurrent use; give each goroutine its own.
type Report struct {
	Diagnostics []*Diagnostic
}

// Add pushes an existing diagnostic onto this report.
func (r *Report) Add(d *Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// AddError pushes err onto this report. If err is (or wraps) a [*Diagnostic],
// that diagnostic is added as-is; otherwise err becomes the message of a new
// spanless error.
func (r *Report) AddError(err error) {
	if err == nil {
		return
	}

	var d *Diagnostic
	if errors.As(err, &d) {
		r.Add(d)
		return
	}
	r.Add(Errorf("%v", err))
}

// Errorf creates a new error diagnostic in this report.
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(Error, format, args...)
}

// Warnf creates a new warning diagnostic in this report.
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(Warning, format, args...)
}

// Remarkf creates a new remark diagnostic in this report.
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(Remark, format, args...)
}

// HasErrors returns whether this report contains any error-level diagnostics.
func (r *Report) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Level == Error {
			return true
		}
	}
	return false
}

// Canonicalize sorts this report's diagnostics by the position of their
// primary annotation and removes exact duplicates.
//
// Spanless diagnostics sort first. Parsers that backtrack can produce the
// same diagnostic more than once; this makes the output stable regardless.
func (r *Report) Canonicalize() {
	set := btree.NewBTreeGOptions(diagnosticLess, btree.Options{NoLocks: true})
	for _, d := range r.Diagnostics {
		set.Set(d)
	}

	r.Diagnostics = r.Diagnostics[:0]
	set.Scan(func(d *Diagnostic) bool {
		r.Diagnostics = append(r.Diagnostics, d)
		return true
	})
}

func (r *Report) push(level Level, format string, args ...any) *Diagnostic {
	d := New(level, format, args...)
	r.Add(d)
	return d
}

// diagnosticLess is a total order on diagnostics; two diagnostics that are
// neither less than each other are duplicates.
func diagnosticLess(a, b *Diagnostic) bool {
	return compareDiagnostics(a, b) < 0
}

func compareDiagnostics(a, b *Diagnostic) int {
	pa, pb := a.Primary().Span, b.Primary().Span
	if c := strings.Compare(pa.Path(), pb.Path()); c != 0 {
		return c
	}
	if c := pa.Start - pb.Start; c != 0 {
		return c
	}
	if c := pa.End - pb.End; c != 0 {
		return c
	}
	if c := int(a.Level) - int(b.Level); c != 0 {
		return c
	}
	if c := int(a.Code) - int(b.Code); c != 0 {
		return c
	}
	if c := strings.Compare(a.Message, b.Message); c != 0 {
		return c
	}
	// Same headline; fall back to the full rendering so that diagnostics that
	// only differ in their secondary annotations are both kept.
	return strings.Compare(fingerprint(a), fingerprint(b))
}

func fingerprint(d *Diagnostic) string {
	var out strings.Builder
	for _, a := range d.Annotations {
		fmt.Fprintf(&out, "%d:%d:%d:%q;", a.Level, a.Span.Start, a.Span.End, a.Label)
	}
	for _, n := range d.Notes {
		fmt.Fprintf(&out, "n%q;", n)
	}
	for _, h := range d.Help {
		fmt.Fprintf(&out, "h%q;", h)
	}
	return out.String()
}
