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
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"lukechampine.com/uint128"

	"github.com/bufbuild/descent/source"
	"github.com/bufbuild/descent/token"
)

func TestLiteralString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lit  token.Literal
		want string
	}{
		{lit: token.StringLiteral{Text: "abc"}, want: `"abc"`},
		{lit: token.StringLiteral{Text: "a\"b\n"}, want: `"a\"b\n"`},
		{lit: token.CharLiteral{Char: 'x'}, want: `'x'`},
		{lit: token.CharLiteral{Char: '\''}, want: `'\''`},
		{lit: token.NewInt(source.Span{}, 42, token.U8), want: "42u8"},
		{lit: token.NewInt(source.Span{}, 7, token.UnknownInt), want: "7"},
		{lit: token.IntLiteral{Int: uint128.Max, Type: token.U128}, want: "340282366920938463463374607431768211455u128"},
		{lit: token.NewFloat(source.Span{}, float64(float32(3.14)), token.F32), want: "3.14f32"},
		{lit: token.NewFloat(source.Span{}, 2.5, token.UnknownFloat), want: "2.5"},
		{lit: token.NewFloat(source.Span{}, 2, token.F64), want: "2.0f64"},
		{lit: token.NewFloat(source.Span{}, 1e21, token.UnknownFloat), want: "1e+21"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.lit.String())
	}
}

func TestLiteralPeekScan(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", `"s" 1`)
	buf := token.NewBuffer(
		token.NewLit(token.StringLiteral{At: file.Span(0, 3), Text: "s"}),
		token.NewLit(token.NewInt(file.Span(4, 5), 1, token.UnknownInt)),
	)
	buf.Freeze()
	c := buf.Begin()

	assert.True(t, token.StringLiteral{}.Peek(c))
	assert.False(t, token.IntLiteral{}.Peek(c))
	assert.True(t, token.PeekLiteral(c))

	var i token.IntLiteral
	next, ok := i.Scan(c)
	assert.False(t, ok)
	assert.Equal(t, c, next)

	var s token.StringLiteral
	next, ok = s.Scan(c)
	assert.True(t, ok)
	assert.Equal(t, "s", s.Text)
	assert.Equal(t, file.Span(0, 3), s.Span())

	next, ok = i.Scan(next)
	assert.True(t, ok)
	assert.True(t, next.EOF())
	assert.False(t, token.IntLiteral{}.Peek(next))
	assert.False(t, token.PeekLiteral(next))
}

func TestFits(t *testing.T) {
	t.Parallel()

	assert.True(t, token.NewInt(source.Span{}, 255, token.U8).Fits())
	assert.False(t, token.NewInt(source.Span{}, 256, token.U8).Fits())
	assert.True(t, token.NewInt(source.Span{}, 127, token.I8).Fits())
	assert.False(t, token.NewInt(source.Span{}, 128, token.I8).Fits())
	assert.True(t, token.NewInt(source.Span{}, math.MaxUint64, token.U64).Fits())
	assert.False(t, token.IntLiteral{Int: uint128.New(0, 1), Type: token.U64}.Fits())
	assert.True(t, token.IntLiteral{Int: uint128.Max, Type: token.UnknownInt}.Fits())
	assert.False(t, token.IntLiteral{Int: uint128.Max, Type: token.I128}.Fits())

	ty, ok := token.IntTypeBySuffix("i32")
	assert.True(t, ok)
	assert.Equal(t, token.I32, ty)
	_, ok = token.IntTypeBySuffix("")
	assert.False(t, ok)
	fty, ok := token.FloatTypeBySuffix("f32")
	assert.True(t, ok)
	assert.Equal(t, token.F32, fty)
}

func TestCompareLiterals(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "0123456789")
	lits := []token.Literal{
		token.NewFloat(source.Span{}, 1, token.UnknownFloat),
		token.NewInt(file.Span(1, 2), 5, token.UnknownInt),
		token.CharLiteral{Char: 'a'},
		token.NewInt(file.Span(0, 1), 5, token.UnknownInt),
		token.StringLiteral{Text: "b"},
		token.NewInt(source.Span{}, 5, token.U8),
		token.StringLiteral{Text: "a"},
		token.NewFloat(source.Span{}, math.Copysign(0, -1), token.UnknownFloat),
		token.NewFloat(source.Span{}, 0, token.UnknownFloat),
	}
	slices.SortFunc(lits, token.CompareLiterals)

	var got []string
	for _, l := range lits {
		got = append(got, l.String())
	}
	assert.Equal(t, []string{`"a"`, `"b"`, `'a'`, "5", "5", "5u8", "0.0", "-0.0", "1.0"}, got)
	assert.Equal(t, file.Span(0, 1), lits[3].Span())

	// Literals are comparable and usable as map keys.
	seen := map[token.Literal]bool{token.StringLiteral{Text: "a"}: true}
	assert.True(t, seen[token.StringLiteral{Text: "a"}])
	assert.Zero(t, token.CompareLiterals(nil, nil))
	assert.Negative(t, token.CompareLiterals(nil, token.CharLiteral{}))
}
