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


package calc

import (
	"github.com/bufbuild/descent/lexer"
	"github.com/bufbuild/descent/source"
	"github.com/bufbuild/descent/token"
)

// Lexer is the lexer for calc programs. Comments start with #.
var Lexer = lexer.Lexer{
	Punct:       []string{"+", "-", "*", "/", "(", ")"},
	LineComment: "#",
}

// Plus is the `+` token.
type Plus struct{ At source.Span }

// Minus is the `-` token.
type Minus struct{ At source.Span }

// Star is the `*` token.
type Star struct{ At source.Span }

// Slash is the `/` token.
type Slash struct{ At source.Span }

// LParen is the `(` token.
type LParen struct{ At source.Span }

// RParen is the `)` token.
type RParen struct{ At source.Span }

func (Plus) Peek(c token.Cursor) bool   { return peekPunct(c, "+") }
func (Minus) Peek(c token.Cursor) bool  { return peekPunct(c, "-") }
func (Star) Peek(c token.Cursor) bool   { return peekPunct(c, "*") }
func (Slash) Peek(c token.Cursor) bool  { return peekPunct(c, "/") }
func (LParen) Peek(c token.Cursor) bool { return peekPunct(c, "(") }
func (RParen) Peek(c token.Cursor) bool { return peekPunct(c, ")") }

func (Plus) Display() string   { return "`+`" }
func (Minus) Display() string  { return "`-`" }
func (Star) Display() string   { return "`*`" }
func (Slash) Display() string  { return "`/`" }
func (LParen) Display() string { return "`(`" }
func (RParen) Display() string { return "`)`" }

func (t *Plus) Scan(c token.Cursor) (token.Cursor, bool)   { return scanPunct(c, "+", &t.At) }
func (t *Minus) Scan(c token.Cursor) (token.Cursor, bool)  { return scanPunct(c, "-", &t.At) }
func (t *Star) Scan(c token.Cursor) (token.Cursor, bool)   { return scanPunct(c, "*", &t.At) }
func (t *Slash) Scan(c token.Cursor) (token.Cursor, bool)  { return scanPunct(c, "/", &t.At) }
func (t *LParen) Scan(c token.Cursor) (token.Cursor, bool) { return scanPunct(c, "(", &t.At) }
func (t *RParen) Scan(c token.Cursor) (token.Cursor, bool) { return scanPunct(c, ")", &t.At) }

func (t Plus) Unparse() *token.Buffer   { return unparsePunct("+", t.At) }
func (t Minus) Unparse() *token.Buffer  { return unparsePunct("-", t.At) }
func (t Star) Unparse() *token.Buffer   { return unparsePunct("*", t.At) }
func (t Slash) Unparse() *token.Buffer  { return unparsePunct("/", t.At) }
func (t LParen) Unparse() *token.Buffer { return unparsePunct("(", t.At) }
func (t RParen) Unparse() *token.Buffer { return unparsePunct(")", t.At) }

func (t Plus) Span() source.Span   { return t.At }
func (t Minus) Span() source.Span  { return t.At }
func (t Star) Span() source.Span   { return t.At }
func (t Slash) Span() source.Span  { return t.At }
func (t LParen) Span() source.Span { return t.At }
func (t RParen) Span() source.Span { return t.At }

func peekPunct(c token.Cursor, text string) bool {
	_, ok := c.Punct(text)
	return ok
}

func scanPunct(c token.Cursor, text string, at *source.Span) (token.Cursor, bool) {
	span := c.Span()
	next, ok := c.Punct(text)
	if ok {
		*at = span
	}
	return next, ok
}

func unparsePunct(text string, at source.Span) *token.Buffer {
	return token.NewBuffer(token.NewPunct(text, at))
}
