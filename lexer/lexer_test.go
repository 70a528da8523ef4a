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


package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/bufbuild/descent/lexer"
	"github.com/bufbuild/descent/report"
	"github.com/bufbuild/descent/source"
	"github.com/bufbuild/descent/token"
)

var testLexer = lexer.Lexer{
	Punct:       []string{"+", "-", "*", "/", "(", ")", "->", "=="},
	LineComment: "//",
}

func lex(t *testing.T, text string) (*token.Buffer, *report.Report) {
	t.Helper()
	r := new(report.Report)
	buf := testLexer.Lex(source.NewFile("test", text), r)
	require.True(t, buf.Frozen())
	return buf, r
}

func messages(r *report.Report) []string {
	var out []string
	for _, d := range r.Diagnostics {
		out = append(out, d.Message)
	}
	return out
}

func TestLexEntries(t *testing.T) {
	t.Parallel()

	buf, r := lex(t, "foo_1 -> a==b - // comment\n(x)")
	assert.Empty(t, r.Diagnostics)

	var texts []string
	var kinds []token.Kind
	for _, e := range buf.All() {
		texts = append(texts, e.Text)
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []string{"foo_1", "->", "a", "==", "b", "-", "(", "x", ")"}, texts)
	assert.Equal(t, []token.Kind{
		token.Ident, token.Punct, token.Ident, token.Punct, token.Ident,
		token.Punct, token.Punct, token.Ident, token.Punct,
	}, kinds)

	file := buf.At(0).At.File
	assert.Equal(t, file.Span(0, 5), buf.At(0).At)
	assert.Equal(t, file.EOF(), buf.End().Span())
}

func TestLexNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want token.Literal
	}{
		{text: "42", want: token.NewInt(source.Span{}, 42, token.UnknownInt)},
		{text: "42u8", want: token.NewInt(source.Span{}, 42, token.U8)},
		{text: "1_000i64", want: token.NewInt(source.Span{}, 1000, token.I64)},
		{text: "0xff", want: token.NewInt(source.Span{}, 255, token.UnknownInt)},
		{text: "0o17", want: token.NewInt(source.Span{}, 15, token.UnknownInt)},
		{text: "0b101u16", want: token.NewInt(source.Span{}, 5, token.U16)},
		{text: "3.5", want: token.NewFloat(source.Span{}, 3.5, token.UnknownFloat)},
		{text: "1e3", want: token.NewFloat(source.Span{}, 1000, token.UnknownFloat)},
		{text: "2.5e-1f64", want: token.NewFloat(source.Span{}, 0.25, token.F64)},
		{text: "3.14f32", want: token.NewFloat(source.Span{}, float64(float32(3.14)), token.F32)},
		{text: "7f32", want: token.NewFloat(source.Span{}, 7, token.F32)},
		{
			text: "340282366920938463463374607431768211455u128",
			want: token.IntLiteral{Int: uint128.Max, Type: token.U128},
		},
	}

	for _, tt := range tests {
		buf, r := lex(t, tt.text)
		assert.Empty(t, r.Diagnostics, tt.text)
		require.Equal(t, 1, buf.Len(), tt.text)

		e := buf.At(0)
		assert.Equal(t, token.Lit, e.Kind)
		assert.Equal(t, tt.text, e.Text)
		assert.Equal(t, e.At, e.Lit.Span())
		assert.Zero(t, token.CompareLiterals(tt.want, withSpan(e.Lit, source.Span{})), tt.text)
	}
}

func TestLexQuoted(t *testing.T) {
	t.Parallel()

	buf, r := lex(t, `"a\tbé\x41" 'x' '\n' "" '\''`)
	assert.Empty(t, r.Diagnostics)
	require.Equal(t, 5, buf.Len())

	assert.Equal(t, "a\tbéA", buf.At(0).Lit.(token.StringLiteral).Text)
	assert.Equal(t, 'x', buf.At(1).Lit.(token.CharLiteral).Char)
	assert.Equal(t, '\n', buf.At(2).Lit.(token.CharLiteral).Char)
	assert.Empty(t, buf.At(3).Lit.(token.StringLiteral).Text)
	assert.Equal(t, '\'', buf.At(4).Lit.(token.CharLiteral).Char)
}

func TestLexErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		entries int
		want    []string
	}{
		{text: "1 $$ 2", entries: 2, want: []string{"unrecognized token"}},
		{text: `"abc`, entries: 0, want: []string{"unterminated string literal"}},
		{text: `'ab'`, entries: 1, want: []string{"character literal must contain exactly one character"}},
		{text: `"\q"`, entries: 1, want: []string{"invalid escape sequence in string literal"}},
		{text: "5u7", entries: 1, want: []string{"unrecognized suffix `u7` on integer literal"}},
		{text: "1.5u8", entries: 1, want: []string{"unrecognized suffix `u8` on float literal"}},
		{text: "0b102", entries: 1, want: []string{"invalid digit in base-2 literal"}},
		{text: "0x", entries: 1, want: []string{"missing digits in integer literal"}},
		{text: "1__0", entries: 1, want: []string{"misplaced `_` separator in numeric literal"}},
		{
			text:    "999999999999999999999999999999999999999999",
			entries: 1,
			want:    []string{"integer literal does not fit in 128 bits"},
		},
	}

	for _, tt := range tests {
		buf, r := lex(t, tt.text)
		assert.Equal(t, tt.entries, buf.Len(), tt.text)
		assert.Equal(t, tt.want, messages(r), tt.text)
	}
}

func TestLexBadBytesSpan(t *testing.T) {
	t.Parallel()

	buf, r := lex(t, "1 $$ 2")
	require.Len(t, r.Diagnostics, 1)
	assert.Equal(t, buf.At(0).At.File.Span(2, 4), r.Diagnostics[0].Primary().Span)
}

func withSpan(lit token.Literal, span source.Span) token.Literal {
	switch lit := lit.(type) {
	case token.IntLiteral:
		lit.At = span
		return lit
	case token.FloatLiteral:
		lit.At = span
		return lit
	case token.StringLiteral:
		lit.At = span
		return lit
	case token.CharLiteral:
		lit.At = span
		return lit
	}
	return lit
}
