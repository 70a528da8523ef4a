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


package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/descent/source"
	"github.com/bufbuild/descent/token"
)

// build makes a frozen buffer for "x + 42", with spans into a real file.
func build() (*source.File, *token.Buffer) {
	file := source.NewFile("test", "x + 42\n")
	buf := token.NewBuffer(
		token.NewIdent("x", file.Span(0, 1)),
		token.NewPunct("+", file.Span(2, 3)),
		token.NewLit(token.NewInt(file.Span(4, 6), 42, token.UnknownInt)),
	)
	buf.SetEOF(file.EOF())
	buf.Freeze()
	return file, buf
}

func TestCursor(t *testing.T) {
	t.Parallel()

	file, buf := build()
	c := buf.Begin()

	name, c2, ok := c.Ident()
	require.True(t, ok)
	assert.Equal(t, "x", name)
	assert.Equal(t, 0, c.Index()) // Cursors are values.
	assert.Equal(t, 1, c.Offset(c2))

	_, ok = c2.Punct("-")
	assert.False(t, ok)
	c3, ok := c2.Punct("+")
	require.True(t, ok)

	_, _, ok = c3.Ident()
	assert.False(t, ok)
	lit, end, ok := c3.Literal()
	require.True(t, ok)
	assert.Equal(t, "42", lit.String())
	assert.True(t, end.EOF())
	assert.Equal(t, 3, c.Offset(end))
	assert.Equal(t, end, buf.End())

	assert.Equal(t, end, end.Bump())
	_, _, ok = end.Any()
	assert.False(t, ok)
	assert.Equal(t, file.Span(6, 6), end.Span())

	assert.Negative(t, c.Compare(end))
	assert.Zero(t, end.Compare(buf.End()))
}

func TestCursorOffsetPanics(t *testing.T) {
	t.Parallel()

	_, buf := build()
	_, other := build()

	assert.Panics(t, func() { buf.End().Offset(buf.Begin()) })
	assert.Panics(t, func() { buf.Begin().Offset(other.Begin()) })
}

func TestBuffer(t *testing.T) {
	t.Parallel()

	file, buf := build()
	assert.True(t, buf.Frozen())
	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, "x + 42", buf.String())
	assert.Panics(t, func() { buf.Push(token.NewIdent("y", file.Span(0, 1))) })

	var kinds []token.Kind
	for _, e := range buf.All() {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []token.Kind{token.Ident, token.Punct, token.Lit}, kinds)

	// Without an explicit EOF span, the end is right after the last entry.
	open := token.NewBuffer(token.NewIdent("x", file.Span(0, 1)))
	assert.Equal(t, file.Span(1, 1), open.End().Span())
	open.Extend(buf)
	assert.Equal(t, 4, open.Len())

	var empty *token.Buffer
	assert.Zero(t, empty.Len())
	assert.True(t, empty.Begin().EOF())
	assert.True(t, empty.End().Span().IsZero())
}
