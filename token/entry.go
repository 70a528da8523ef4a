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


package token

import "github.com/bufbuild/descent/source"

// Entry is one lexed unit: an identifier, a piece of punctuation, or a
// literal.
type Entry struct {
	Kind Kind
	At   source.Span

	// The text of this entry as it appears in the source. For synthesized
	// literals, this is the literal's canonical rendering.
	Text string

	// Non-nil if and only if Kind == Lit.
	Lit Literal
}

// NewPunct returns a synthetic punctuation entry.
func NewPunct(text string, at source.Span) Entry {
	return Entry{Kind: Punct, At: at, Text: text}
}

// NewIdent returns a synthetic identifier entry.
func NewIdent(text string, at source.Span) Entry {
	return Entry{Kind: Ident, At: at, Text: text}
}

// NewLit returns a literal entry for lit.
func NewLit(lit Literal) Entry {
	return Entry{Kind: Lit, At: lit.Span(), Text: lit.String(), Lit: lit}
}

// Span implements [source.Spanner].
func (e Entry) Span() source.Span {
	return e.At
}

// String implements [fmt.Stringer].
func (e Entry) String() string {
	if e.Lit != nil {
		return e.Lit.String()
	}
	return e.Text
}

// Peek returns whether c is positioned at any entry at all.
func (Entry) Peek(c Cursor) bool {
	return !c.EOF()
}

// Display returns the name of this construct for "expected" diagnostics.
func (Entry) Display() string {
	return "any token"
}

// Scan consumes any single entry. It fails only at the end of input.
func (e *Entry) Scan(c Cursor) (Cursor, bool) {
	entry, rest, ok := c.Any()
	if ok {
		*e = entry
	}
	return rest, ok
}

// Unparse returns a single-entry buffer containing e.
func (e Entry) Unparse() *Buffer {
	return NewBuffer(e)
}
