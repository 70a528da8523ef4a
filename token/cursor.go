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

import (
	"cmp"
	"fmt"

	"github.com/bufbuild/descent/source"
)

// Cursor is a position within a [Buffer].
//
// Cursors are plain values: copying one is O(1), and advancing a copy does
// not affect the original.
//
// The zero Cursor is positioned at the end of an empty buffer.
type Cursor struct {
	buf *Buffer
	idx int
}

// Buffer returns the buffer this cursor walks over.
func (c Cursor) Buffer() *Buffer {
	return c.buf
}

// Index returns the index of the next entry this cursor would yield.
func (c Cursor) Index() int {
	return c.idx
}

// EOF returns whether this cursor is exhausted.
func (c Cursor) EOF() bool {
	return c.idx >= c.buf.Len()
}

// Peek returns the next entry without advancing. Returns false at EOF.
func (c Cursor) Peek() (Entry, bool) {
	if c.EOF() {
		return Entry{}, false
	}
	return c.buf.At(c.idx), true
}

// Bump returns a cursor advanced past the next entry.
//
// Bumping a cursor at EOF returns it unchanged.
func (c Cursor) Bump() Cursor {
	if !c.EOF() {
		c.idx++
	}
	return c
}

// Any consumes any single entry.
func (c Cursor) Any() (Entry, Cursor, bool) {
	e, ok := c.Peek()
	if !ok {
		return Entry{}, c, false
	}
	return e, c.Bump(), true
}

// Literal consumes a literal entry.
func (c Cursor) Literal() (Literal, Cursor, bool) {
	e, ok := c.Peek()
	if !ok || e.Kind != Lit {
		return nil, c, false
	}
	return e.Lit, c.Bump(), true
}

// Ident consumes an identifier entry.
func (c Cursor) Ident() (string, Cursor, bool) {
	e, ok := c.Peek()
	if !ok || e.Kind != Ident {
		return "", c, false
	}
	return e.Text, c.Bump(), true
}

// Punct consumes a punctuation entry with exactly the given text.
func (c Cursor) Punct(text string) (Cursor, bool) {
	e, ok := c.Peek()
	if !ok || e.Kind != Punct || e.Text != text {
		return c, false
	}
	return c.Bump(), true
}

// Span returns the span of the next entry.
//
// At EOF, this is the buffer's EOF span, which is empty and points just past
// the last entry.
func (c Cursor) Span() source.Span {
	if e, ok := c.Peek(); ok {
		return e.At
	}
	return c.buf.EOF()
}

// Offset returns the number of entries between c and other, which must be at
// or after c in the same buffer.
func (c Cursor) Offset(other Cursor) int {
	if c.buf != other.buf {
		panic("descent/token: cursors from different buffers passed to Offset")
	}
	if other.idx < c.idx {
		panic(fmt.Sprintf("descent/token: cursor at %d is behind cursor at %d", other.idx, c.idx))
	}
	return other.idx - c.idx
}

// Compare orders two cursors over the same buffer by position.
func (c Cursor) Compare(other Cursor) int {
	if c.buf != other.buf {
		panic("descent/token: cursors from different buffers passed to Compare")
	}
	return cmp.Compare(c.idx, other.idx)
}

// Rest returns the entries this cursor has not yet consumed.
func (c Cursor) Rest() []Entry {
	if c.EOF() {
		return nil
	}
	return c.buf.Entries()[c.idx:]
}

// String implements [fmt.Stringer].
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d/%d)", c.idx, c.buf.Len())
}
