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
	"math"
	"strconv"
	"strings"

	"lukechampine.com/uint128"

	"github.com/bufbuild/descent/source"
)

// Literal is a lexed literal value.
//
// The set of literal types is closed: it is exactly [StringLiteral],
// [CharLiteral], [IntLiteral] and [FloatLiteral]. All of them are comparable,
// so literals may be compared with == and used as map keys.
type Literal interface {
	source.Spanner
	fmt.Stringer

	isLiteral()
}

// StringLiteral is a double-quoted string, such as "abc".
type StringLiteral struct {
	At   source.Span
	Text string // The unescaped value.
}

// CharLiteral is a single-quoted character, such as 'x'.
type CharLiteral struct {
	At   source.Span
	Char rune
}

// IntLiteral is an integer, such as 42 or 42u8.
type IntLiteral struct {
	At   source.Span
	Int  uint128.Uint128
	Type IntType
}

// FloatLiteral is a floating-point number, such as 3.14 or 3.14f32.
//
// The value is stored as the bit pattern of a float64, which keeps the type
// comparable and gives NaN a well-defined identity.
type FloatLiteral struct {
	At   source.Span
	Bits uint64
	Type FloatType
}

// NewFloat returns a float literal with the given value.
func NewFloat(at source.Span, v float64, ty FloatType) FloatLiteral {
	return FloatLiteral{At: at, Bits: math.Float64bits(v), Type: ty}
}

// NewInt returns an integer literal with the given value.
func NewInt(at source.Span, v uint64, ty IntType) IntLiteral {
	return IntLiteral{At: at, Int: uint128.From64(v), Type: ty}
}

func (StringLiteral) isLiteral() {}
func (CharLiteral) isLiteral()   {}
func (IntLiteral) isLiteral()    {}
func (FloatLiteral) isLiteral()  {}

// Span implements [source.Spanner].
func (l StringLiteral) Span() source.Span { return l.At }

// Span implements [source.Spanner].
func (l CharLiteral) Span() source.Span { return l.At }

// Span implements [source.Spanner].
func (l IntLiteral) Span() source.Span { return l.At }

// Span implements [source.Spanner].
func (l FloatLiteral) Span() source.Span { return l.At }

// String implements [fmt.Stringer]. The result is a valid literal that lexes
// back to l.
func (l StringLiteral) String() string {
	return strconv.Quote(l.Text)
}

// String implements [fmt.Stringer].
func (l CharLiteral) String() string {
	return strconv.QuoteRune(l.Char)
}

// String implements [fmt.Stringer].
func (l IntLiteral) String() string {
	return l.Int.String() + l.Type.Suffix()
}

// String implements [fmt.Stringer].
func (l FloatLiteral) String() string {
	text := strconv.FormatFloat(l.Float(), 'g', -1, l.Type.BitSize())
	if !strings.ContainsAny(text, ".eEIN") {
		// Keep integral values from lexing as integers.
		text += ".0"
	}
	return text + l.Type.Suffix()
}

// Float returns the value of this literal.
func (l FloatLiteral) Float() float64 {
	return math.Float64frombits(l.Bits)
}

// Uint64 returns the value of this literal, if it fits in a uint64.
func (l IntLiteral) Uint64() (uint64, bool) {
	return l.Int.Lo, l.Int.Hi == 0
}

// Fits returns whether the value of this literal is in range for its type
// suffix.
func (l IntLiteral) Fits() bool {
	return l.Int.Cmp(l.Type.Max()) <= 0
}

// Peek returns whether c is positioned at a string literal.
func (StringLiteral) Peek(c Cursor) bool { return peekLit[StringLiteral](c) }

// Peek returns whether c is positioned at a character literal.
func (CharLiteral) Peek(c Cursor) bool { return peekLit[CharLiteral](c) }

// Peek returns whether c is positioned at an integer literal.
func (IntLiteral) Peek(c Cursor) bool { return peekLit[IntLiteral](c) }

// Peek returns whether c is positioned at a float literal.
func (FloatLiteral) Peek(c Cursor) bool { return peekLit[FloatLiteral](c) }

// Display returns the name of this construct for "expected" diagnostics.
func (StringLiteral) Display() string { return "a string" }

// Display returns the name of this construct for "expected" diagnostics.
func (CharLiteral) Display() string { return "a character" }

// Display returns the name of this construct for "expected" diagnostics.
func (IntLiteral) Display() string { return "an integer" }

// Display returns the name of this construct for "expected" diagnostics.
func (FloatLiteral) Display() string { return "a float" }

// Scan consumes a string literal.
func (l *StringLiteral) Scan(c Cursor) (Cursor, bool) { return scanLit(c, l) }

// Scan consumes a character literal.
func (l *CharLiteral) Scan(c Cursor) (Cursor, bool) { return scanLit(c, l) }

// Scan consumes an integer literal.
func (l *IntLiteral) Scan(c Cursor) (Cursor, bool) { return scanLit(c, l) }

// Scan consumes a float literal.
func (l *FloatLiteral) Scan(c Cursor) (Cursor, bool) { return scanLit(c, l) }

// Unparse returns a single-entry buffer containing l.
func (l StringLiteral) Unparse() *Buffer { return NewBuffer(NewLit(l)) }

// Unparse returns a single-entry buffer containing l.
func (l CharLiteral) Unparse() *Buffer { return NewBuffer(NewLit(l)) }

// Unparse returns a single-entry buffer containing l.
func (l IntLiteral) Unparse() *Buffer { return NewBuffer(NewLit(l)) }

// Unparse returns a single-entry buffer containing l.
func (l FloatLiteral) Unparse() *Buffer { return NewBuffer(NewLit(l)) }

// DisplayLiteral is the name of an arbitrary literal in "expected"
// diagnostics.
const DisplayLiteral = "a string, character, integer or float"

// PeekLiteral returns whether c is positioned at any literal.
func PeekLiteral(c Cursor) bool {
	e, ok := c.Peek()
	return ok && e.Kind == Lit
}

// CompareLiterals is a total order on literals.
//
// Literals are ordered first by variant (strings, then characters, then
// integers, then floats), then by value, then by type suffix, and finally by
// span. A nil Literal sorts before everything else.
func CompareLiterals(a, b Literal) int {
	if n := cmp.Compare(literalRank(a), literalRank(b)); n != 0 {
		return n
	}

	var n int
	switch a := a.(type) {
	case StringLiteral:
		n = strings.Compare(a.Text, b.(StringLiteral).Text)
	case CharLiteral:
		n = cmp.Compare(a.Char, b.(CharLiteral).Char)
	case IntLiteral:
		b := b.(IntLiteral)
		n = a.Int.Cmp(b.Int)
		if n == 0 {
			n = cmp.Compare(a.Type, b.Type)
		}
	case FloatLiteral:
		b := b.(FloatLiteral)
		n = cmp.Compare(a.Float(), b.Float())
		if n == 0 {
			// Distinguishes -0 from +0, and NaNs from each other.
			n = cmp.Compare(a.Bits, b.Bits)
		}
		if n == 0 {
			n = cmp.Compare(a.Type, b.Type)
		}
	case nil:
		return 0
	}
	if n != 0 {
		return n
	}
	return compareSpans(a.Span(), b.Span())
}

func literalRank(l Literal) int {
	switch l.(type) {
	case nil:
		return 0
	case StringLiteral:
		return 1
	case CharLiteral:
		return 2
	case IntLiteral:
		return 3
	case FloatLiteral:
		return 4
	default:
		panic(fmt.Sprintf("descent/token: unexpected literal type %T", l))
	}
}

func compareSpans(a, b source.Span) int {
	return cmp.Or(
		strings.Compare(a.Path(), b.Path()),
		cmp.Compare(a.Start, b.Start),
		cmp.Compare(a.End, b.End),
	)
}

func peekLit[L Literal](c Cursor) bool {
	lit, _, ok := c.Literal()
	if !ok {
		return false
	}
	_, ok = lit.(L)
	return ok
}

func scanLit[L Literal](c Cursor, out *L) (Cursor, bool) {
	lit, next, ok := c.Literal()
	if !ok {
		return c, false
	}
	l, ok := lit.(L)
	if !ok {
		return c, false
	}
	*out = l
	return next, true
}
