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
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth = 4

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// Upgrades all warnings to errors.
	WarningsAreErrors bool

	// If set, remark diagnostics will be printed.
	ShowRemarks bool
}

// Render renders a diagnostic report.
//
// In addition to returning the rendering result, returns the number of errors
// and warnings rendered. The error return is an error when writing to out.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	for _, d := range report.Diagnostics {
		if !r.ShowRemarks && d.Level == Remark {
			continue
		}

		if _, err = fmt.Fprintln(out, r.Diagnostic(d)); err != nil {
			return
		}
		if !r.Compact {
			if _, err = fmt.Fprintln(out); err != nil {
				return
			}
		}

		switch r.level(d.Level) {
		case Error:
			errorCount++
		case Warning:
			warningCount++
		}
	}
	if r.Compact {
		return
	}

	c := r.colors()
	pluralize := func(count int, what string) string {
		if count == 1 {
			return "1 " + what
		}
		return fmt.Sprint(count, " ", what, "s")
	}

	switch {
	case errorCount > 0 && warningCount > 0:
		_, err = fmt.Fprint(out, c.bold(Error), "encountered ", pluralize(errorCount, "error"),
			" and ", pluralize(warningCount, "warning"), c.reset, "\n")
	case errorCount > 0:
		_, err = fmt.Fprint(out, c.bold(Error), "encountered ", pluralize(errorCount, "error"), c.reset, "\n")
	case warningCount > 0:
		_, err = fmt.Fprint(out, c.bold(Warning), "encountered ", pluralize(warningCount, "warning"), c.reset, "\n")
	}
	return
}

// RenderString is a helper for calling [Renderer.Render] with a [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	e, w, _ := r.Render(report, &buf)
	return buf.String(), e, w
}

// Diagnostic renders a single diagnostic to a string.
func (r Renderer) Diagnostic(d *Diagnostic) string {
	c := r.colors()
	level := r.level(d.Level)

	headline := level.String()
	if d.Code != 0 {
		headline += fmt.Sprintf("[E%04d]", d.Code)
	}

	primary := d.Primary()

	// For the compact style, we imitate the Go compiler.
	if r.Compact {
		if primary.Span.IsZero() {
			return fmt.Sprintf("%s%s: %s%s", c.normal(level), headline, d.Message, c.reset)
		}
		loc := primary.Span.StartLoc()
		return fmt.Sprintf(
			"%s%s: %s:%d:%d: %s%s",
			c.normal(level), headline,
			primary.Span.Path(), loc.Line, loc.Column,
			d.Message, c.reset,
		)
	}

	// For the other style, we imitate the Rust compiler.
	var out strings.Builder
	fmt.Fprint(&out, c.bold(level), headline, ": ", d.Message, c.reset)

	// Annotations are drawn in source order, one source line at a time.
	annotations := slices.Clone(d.Annotations)
	slices.SortStableFunc(annotations, func(a, b Annotation) int {
		if a.Span.Path() != b.Span.Path() {
			return strings.Compare(a.Span.Path(), b.Span.Path())
		}
		return a.Span.Start - b.Span.Start
	})

	var greatestLine int
	for _, a := range annotations {
		greatestLine = max(greatestLine, a.Span.EndLoc().Line)
	}
	barWidth := max(2, len(strconv.Itoa(greatestLine)))

	if !primary.Span.IsZero() {
		loc := primary.Span.StartLoc()
		out.WriteByte('\n')
		out.WriteString(c.accent)
		padBy(&out, barWidth-1)
		fmt.Fprintf(&out, "--> %s:%d:%d", primary.Span.Path(), loc.Line, loc.Column)
		out.WriteByte('\n')
		padBy(&out, barWidth)
		out.WriteString(" |")
	}

	lastLine, lastPath := -1, ""
	for _, a := range annotations {
		start := a.Span.StartLoc()
		path := a.Span.Path()
		if start.Line != lastLine || path != lastPath {
			if lastPath != "" && path != lastPath {
				out.WriteByte('\n')
				padBy(&out, barWidth-1)
				fmt.Fprintf(&out, "::: %s:%d:%d", path, start.Line, start.Column)
			}
			lastLine, lastPath = start.Line, path

			text := a.Span.File.Line(start.Line)
			out.WriteByte('\n')
			fmt.Fprintf(&out, "%*d | %s", barWidth, start.Line, c.reset)
			out.WriteString(expandTabs(text))
			out.WriteString(c.accent)
		}

		annotationLevel := a.Level
		if annotationLevel == 0 {
			annotationLevel = note
			if a.Primary {
				annotationLevel = level
			}
		}
		underline := "-"
		if a.Primary {
			underline = "^"
		}

		line := a.Span.File.Line(start.Line)
		lineStart, _ := a.Span.File.LineOffsets(start.Line)
		lineEnd := lineStart + len(line)
		prefix := expandTabs(line[:a.Span.Start-lineStart])
		under := expandTabs(line[a.Span.Start-lineStart : min(a.Span.End, lineEnd)-lineStart])

		out.WriteByte('\n')
		padBy(&out, barWidth)
		out.WriteString(" | ")
		padBy(&out, uniseg.StringWidth(prefix))
		out.WriteString(c.bold(annotationLevel))
		out.WriteString(strings.Repeat(underline, max(1, uniseg.StringWidth(under))))
		if a.Label != "" {
			out.WriteByte(' ')
			out.WriteString(a.Label)
		}
		out.WriteString(c.accent)
	}

	footers := make([][2]string, 0, len(d.Notes)+len(d.Help))
	for _, n := range d.Notes {
		footers = append(footers, [2]string{"note", n})
	}
	for _, h := range d.Help {
		footers = append(footers, [2]string{"help", h})
	}
	for _, footer := range footers {
		out.WriteByte('\n')
		out.WriteString(c.accent)
		padBy(&out, barWidth)
		out.WriteString(" = ")
		fmt.Fprint(&out, c.bold(Remark), footer[0], ": ", c.reset)
		out.WriteString(footer[1])
	}

	out.WriteString(c.reset)
	return out.String()
}

func (r Renderer) level(l Level) Level {
	if l == Warning && r.WarningsAreErrors {
		return Error
	}
	return l
}

func (r Renderer) colors() stylesheet {
	if !r.Colorize {
		return stylesheet{}
	}

	return stylesheet{
		reset: "\033[0m",
		// Red.
		nError: "\033[0;31m",
		bError: "\033[1;31m",
		// Yellow.
		nWarning: "\033[0;33m",
		bWarning: "\033[1;33m",
		// Cyan.
		nRemark: "\033[0;36m",
		bRemark: "\033[1;36m",
		// Blue. Used for "accents" such as line numbers and non-primary
		// underlines.
		accent: "\033[0;34m",
	}
}

// stylesheet is the colors used for pretty-rendering diagnostics.
type stylesheet struct {
	reset                     string
	nError, nWarning, nRemark string
	bError, bWarning, bRemark string
	accent                    string
}

func (c stylesheet) normal(l Level) string {
	switch l {
	case Error:
		return c.nError
	case Warning:
		return c.nWarning
	case Remark:
		return c.nRemark
	default:
		return c.accent
	}
}

func (c stylesheet) bold(l Level) string {
	switch l {
	case Error:
		return c.bError
	case Warning:
		return c.bWarning
	case Remark:
		return c.bRemark
	default:
		return c.accent
	}
}

func padBy(out *strings.Builder, spaces int) {
	for range spaces {
		out.WriteByte(' ')
	}
}

// expandTabs replaces tabstops with spaces, so that underlines computed with
// [uniseg.StringWidth] line up with the source text above them.
func expandTabs(text string) string {
	if !strings.Contains(text, "\t") {
		return text
	}

	var out strings.Builder
	var column int
	for _, g := range text {
		if g == '\t' {
			tab := TabstopWidth - column%TabstopWidth
			padBy(&out, tab)
			column += tab
			continue
		}
		out.WriteRune(g)
		column += uniseg.StringWidth(string(g))
	}
	return out.String()
}
