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
	"iter"
	"strings"

	"github.com/bufbuild/descent/source"
)

// Buffer is an append-only sequence of entries.
//
// Buffers may be "frozen", meaning that whatever lexing operation it was
// meant for is complete, and new entries cannot be pushed to it. A frozen
// buffer is immutable, and is safe to share between any number of cursors
// and goroutines.
//
// A nil *Buffer behaves like an empty, frozen buffer.
type Buffer struct {
	entries []Entry
	eof     source.Span
	frozen  bool
}

// NewBuffer returns a new, unfrozen buffer containing the given entries.
func NewBuffer(entries ...Entry) *Buffer {
	return &Buffer{entries: entries}
}

// Push appends an entry to this buffer.
//
// Panics if the buffer is frozen.
func (b *Buffer) Push(e Entry) {
	b.checkFrozen()
	b.entries = append(b.entries, e)
}

// Extend appends every entry of other to this buffer, and returns b.
//
// Panics if b is frozen.
func (b *Buffer) Extend(other *Buffer) *Buffer {
	b.checkFrozen()
	b.entries = append(b.entries, other.Entries()...)
	return b
}

// SetEOF sets the span that cursors at the end of this buffer report.
//
// Panics if the buffer is frozen.
func (b *Buffer) SetEOF(span source.Span) {
	b.checkFrozen()
	b.eof = span
}

// Freeze marks this buffer as complete. Further mutation panics.
func (b *Buffer) Freeze() {
	b.frozen = true
}

// Frozen returns whether this buffer has been frozen.
func (b *Buffer) Frozen() bool {
	return b == nil || b.frozen
}

// Len returns the number of entries in this buffer.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.entries)
}

// At returns the ith entry of this buffer.
func (b *Buffer) At(i int) Entry {
	return b.entries[i]
}

// Entries returns the entries of this buffer. The returned slice must not be
// modified.
func (b *Buffer) Entries() []Entry {
	if b == nil {
		return nil
	}
	return b.entries
}

// All returns an iterator over the entries in this buffer.
func (b *Buffer) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		for i, e := range b.Entries() {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Begin returns a cursor at the first entry of this buffer.
func (b *Buffer) Begin() Cursor {
	return Cursor{buf: b}
}

// End returns a cursor just past the last entry of this buffer.
func (b *Buffer) End() Cursor {
	return Cursor{buf: b, idx: b.Len()}
}

// EOF returns the span that points to the end of this buffer.
//
// If no EOF span was set, this is the empty span immediately after the last
// entry, or the zero span for an empty buffer.
func (b *Buffer) EOF() source.Span {
	if b == nil {
		return source.Span{}
	}
	if !b.eof.IsZero() || len(b.entries) == 0 {
		return b.eof
	}
	last := b.entries[len(b.entries)-1].At
	return last.File.Span(last.End, last.End)
}

// String implements [fmt.Stringer], rendering the entries separated by
// spaces.
func (b *Buffer) String() string {
	var out strings.Builder
	for i, e := range b.Entries() {
		if i > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(e.String())
	}
	return out.String()
}

func (b *Buffer) checkFrozen() {
	if b.Frozen() {
		panic("descent/token: attempted to mutate frozen buffer")
	}
}
