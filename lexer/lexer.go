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


// Package lexer turns source text into a [token.Buffer].
//
// The lexer is configurable enough to serve small expression languages: the
// set of punctuation and the line comment marker are supplied by the caller.
// Literals follow Go's syntax, plus Rust-style type suffixes such as 42u8
// and 1.5f32.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/descent/report"
	"github.com/bufbuild/descent/source"
	"github.com/bufbuild/descent/token"
)

// Lexer is a configurable lexer.
type Lexer struct {
	// Punctuation that the lexer recognizes. When more than one matches, the
	// longest wins.
	Punct []string

	// If not empty, starts a comment that runs to the end of the line.
	LineComment string
}

// Lex runs lexical analysis on file and returns a frozen buffer.
//
// Diagnostics for malformed input go into r; the offending text is skipped,
// so the buffer always contains whatever could be lexed.
func (l *Lexer) Lex(file *source.File, r *report.Report) *token.Buffer {
	if r == nil {
		r = new(report.Report)
	}

	lex := &lexer{Lexer: l, Report: r, file: file, buf: token.NewBuffer()}
	loop(lex)

	lex.buf.SetEOF(file.EOF())
	lex.buf.Freeze()
	return lex.buf
}

// lexer is the book-keeping for a single call to [Lexer.Lex].
type lexer struct {
	*Lexer
	*report.Report

	file   *source.File
	buf    *token.Buffer
	cursor int

	// Used for determining longest runs of unrecognized bytes.
	badStart, badBytes int
}

// push pushes a new entry spanning from start to the cursor.
func (l *lexer) push(start int, kind token.Kind, lit token.Literal) {
	l.flushBad()
	span := l.spanFrom(start)
	l.buf.Push(token.Entry{Kind: kind, At: span, Text: span.Text(), Lit: lit})
}

// bad records that the rune at start, which is size bytes long, was not
// recognized.
func (l *lexer) bad(start, size int) {
	if l.badBytes == 0 {
		l.badStart = start
	}
	l.badBytes += size
}

// flushBad reports a pending run of unrecognized bytes, if there is one.
func (l *lexer) flushBad() {
	if l.badBytes == 0 {
		return
	}
	span := l.file.Span(l.badStart, l.badStart+l.badBytes)
	l.badBytes = 0

	l.Errorf("unrecognized token").With(report.Snippet(span))
}

// rest returns the remaining unlexed text.
func (l *lexer) rest() string {
	return l.file.Text()[l.cursor:]
}

// done returns whether or not we're done lexing runes.
func (l *lexer) done() bool {
	return l.rest() == ""
}

// peek peeks the next character.
//
// Returns -1 if l.done().
func (l *lexer) peek() rune {
	if l.done() {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.rest())
	return r
}

// peekAt peeks the character n bytes past the cursor.
func (l *lexer) peekAt(n int) rune {
	if n >= len(l.rest()) {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.rest()[n:])
	return r
}

// pop consumes the next character.
//
// Returns -1 if l.done().
func (l *lexer) pop() rune {
	if l.done() {
		return -1
	}
	r, size := utf8.DecodeRuneInString(l.rest())
	l.cursor += size
	return r
}

// takeWhile consumes the characters while they match the given function.
// Returns consumed characters.
func (l *lexer) takeWhile(f func(rune) bool) string {
	start := l.cursor
	for !l.done() && f(l.peek()) {
		_ = l.pop()
	}
	return l.file.Text()[start:l.cursor]
}

// seekLine seeks to just before the next newline, or to the end of the file.
func (l *lexer) seekLine() {
	if idx := strings.IndexByte(l.rest(), '\n'); idx != -1 {
		l.cursor += idx
		return
	}
	l.cursor = len(l.file.Text())
}

func (l *lexer) spanFrom(start int) source.Span {
	return l.file.Span(start, l.cursor)
}
