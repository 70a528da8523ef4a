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


package source

import (
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// File is a source code file involved in a parse.
//
// It contains additional book-keeping information for resolving span
// locations. Files are immutable once created.
//
// A nil *File behaves like an empty file with the path name "".
type File struct {
	path, text string

	once sync.Once
	// A prefix sum of the line lengths of text. Given a byte offset, it is
	// possible to recover which line that offset is on by performing a binary
	// search on this list.
	lineIndex []int
}

// Location is a user-displayable location within a source code file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed. Columns are measured
	// in terminal cells.
	Line, Column int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's filesystem path.
//
// It doesn't need to be a real path; "<input>" is used for inline sources.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Span is a shorthand for creating a new Span.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}
	return Span{f, start, end}
}

// EOF returns a Span pointing to the end-of-file.
//
// The span is moored immediately after the last non-space rune, so that
// "unexpected end of input" diagnostics point at the code rather than at a
// trailing newline.
func (f *File) EOF() Span {
	if f == nil {
		return Span{}
	}

	eof := strings.LastIndexFunc(f.Text(), func(r rune) bool {
		return !unicode.In(r, unicode.Pattern_White_Space)
	})
	if eof == -1 {
		return f.Span(0, 0)
	}
	_, size := utf8.DecodeRuneInString(f.Text()[eof:])
	return f.Span(eof+size, eof+size)
}

// LineByOffset returns the 0-indexed line containing the given byte offset.
//
// This operation is O(log n).
func (f *File) LineByOffset(offset int) int {
	line, exact := slices.BinarySearch(f.lines(), offset)
	if !exact {
		line--
	}
	return line
}

// Line returns the given 1-indexed line, without its trailing newline.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return strings.TrimSuffix(f.Text()[start:end], "\n")
}

// LineOffsets returns the offsets for the given 1-indexed line, including its
// trailing newline.
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lines()
	if len(lines) == line {
		return lines[line-1], len(f.Text())
	}
	return lines[line-1], lines[line]
}

// Location builds full Location information for the given byte offset.
func (f *File) Location(offset int) Location {
	if f == nil || offset == 0 {
		return Location{Offset: 0, Line: 1, Column: 1}
	}

	line := f.LineByOffset(offset)
	chunk := f.Text()[f.lines()[line]:offset]
	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: uniseg.StringWidth(chunk) + 1,
	}
}

func (f *File) lines() []int {
	if f == nil {
		return []int{0}
	}

	f.once.Do(func() {
		var next int
		text := f.text
		for {
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}
			text = text[newline:]
			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}
		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}
