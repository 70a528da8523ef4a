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
	"fmt"
	"strings"

	"github.com/bufbuild/descent/source"
)

const (
	// Red. Indicates a constraint violation; the input is rejected.
	Error Level = 1 + iota
	// Yellow. Indicates something that probably should not be ignored.
	Warning
	// Cyan. This is the diagnostics version of "info".
	Remark

	note // Used internally within the diagnostic renderer.
)

// Level represents the severity of a diagnostic message.
type Level int8

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	case note:
		return "note"
	default:
		return fmt.Sprintf("report.Level(%d)", int(l))
	}
}

// Diagnostic is a type of error that can be rendered as a rich diagnostic.
//
// Not all Diagnostics are "errors", even though Diagnostic implements error;
// some represent warnings, or perhaps remarks.
type Diagnostic struct {
	// The kind of diagnostic this is, which affects how and whether it is shown
	// to users.
	Level Level

	// A machine-readable code for this diagnostic. Zero means no code.
	Code uint16

	// The main diagnostic message. Should be lowercase and not end in a
	// period, like a Go error string.
	Message string

	// A list of annotated source code spans in the diagnostic. The first one
	// is the primary annotation.
	Annotations []Annotation

	// Notes and help messages to include at the end of the diagnostic, after
	// the Annotations.
	Notes, Help []string
}

// Annotation is an annotated source code snippet within a [Diagnostic].
type Annotation struct {
	// The severity to draw this snippet with. If zero, the primary
	// annotation takes on the level of its diagnostic, and the rest are
	// rendered as notes.
	Level Level

	Span source.Span

	// A message to show under this snippet. May be empty.
	Label string

	// Whether this is the "primary" snippet, which is used for deciding the
	// location the diagnostic is reported at.
	Primary bool
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// New creates a new diagnostic at the given level.
func New(level Level, format string, args ...any) *Diagnostic {
	return &Diagnostic{Level: level, Message: fmt.Sprintf(format, args...)}
}

// Errorf creates a new error diagnostic; analogous to [fmt.Errorf].
func Errorf(format string, args ...any) *Diagnostic {
	return New(Error, format, args...)
}

// Error implements [error].
//
// The result uses the same format as a compact [Renderer], minus the level.
func (d *Diagnostic) Error() string {
	var out strings.Builder
	if d.Code != 0 {
		fmt.Fprintf(&out, "[E%04d] ", d.Code)
	}
	if primary := d.Primary(); !primary.Span.IsZero() {
		loc := primary.Span.StartLoc()
		fmt.Fprintf(&out, "%s:%d:%d: ", primary.Span.Path(), loc.Line, loc.Column)
	}
	out.WriteString(d.Message)
	return out.String()
}

// Primary returns this diagnostic's primary annotation, if it has one.
//
// If it doesn't have one, it returns the zero annotation.
func (d *Diagnostic) Primary() Annotation {
	for _, annotation := range d.Annotations {
		if annotation.Primary {
			return annotation
		}
	}
	return Annotation{}
}

// With applies the given options to this diagnostic.
//
// Nil options are ignored.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option(d)
		}
	}
	return d
}

// Code returns a DiagnosticOption that sets the diagnostic's code.
func Code(code uint16) DiagnosticOption {
	return func(d *Diagnostic) { d.Code = code }
}

// Snippet returns a DiagnosticOption that adds a new unlabeled snippet to a
// diagnostic.
//
// The first annotation added is the "primary" annotation, and will be
// rendered differently from the others.
func Snippet(at source.Spanner) DiagnosticOption {
	return Snippetf(at, "")
}

// Snippetf returns a DiagnosticOption that adds a new snippet to a diagnostic
// with the given label.
//
// If at has a zero span, this returns nil.
func Snippetf(at source.Spanner, format string, args ...any) DiagnosticOption {
	return Label(0, at, fmt.Sprintf(format, args...))
}

// Label returns a DiagnosticOption that adds a snippet with an explicit level
// and label.
//
// If at has a zero span, this returns nil.
func Label(level Level, at source.Spanner, label string) DiagnosticOption {
	span := source.GetSpan(at)
	if span.IsZero() {
		return nil
	}

	annotation := Annotation{Level: level, Span: span, Label: label}
	return func(d *Diagnostic) {
		annotation.Primary = len(d.Annotations) == 0
		d.Annotations = append(d.Annotations, annotation)
	}
}

// Note returns a DiagnosticOption that provides the user with context about
// the diagnostic, after the annotations.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Notes = append(d.Notes, fmt.Sprintf(format, args...))
	}
}

// Help returns a DiagnosticOption that provides the user with a helpful prose
// suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Help = append(d.Help, fmt.Sprintf(format, args...))
	}
}
