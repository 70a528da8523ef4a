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


package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/bufbuild/descent/report"
	"github.com/bufbuild/descent/token"
)

// lexQuoted lexes a string or character literal starting at the current
// cursor, which must be at the opening quote.
//
// Escapes are Go's. Literals may not span lines.
func lexQuoted(l *lexer) {
	start := l.cursor
	quote := l.pop()

	var terminated bool
	for !l.done() {
		r := l.peek()
		if r == '\n' {
			break
		}
		_ = l.pop()
		if r == quote {
			terminated = true
			break
		}
		if r == '\\' && l.peek() != '\n' {
			_ = l.pop()
		}
	}

	span := l.spanFrom(start)
	what := "string"
	if quote == '\'' {
		what = "character"
	}
	if !terminated {
		l.flushBad()
		l.Errorf("unterminated %s literal", what).With(
			report.Snippetf(l.file.Span(start, start+1), "literal starts here"),
		)
		return
	}

	raw := span.Text()
	body := raw[1 : len(raw)-1]

	var lit token.Literal
	if quote == '"' {
		text, err := unescape(body)
		if err != nil {
			l.Errorf("invalid escape sequence in string literal").With(report.Snippet(span))
		}
		lit = token.StringLiteral{At: span, Text: text}
	} else {
		r, _, tail, err := strconv.UnquoteChar(body, '\'')
		switch {
		case body == "" || (err == nil && tail != ""):
			l.Errorf("character literal must contain exactly one character").With(report.Snippet(span))
		case err != nil:
			l.Errorf("invalid escape sequence in character literal").With(report.Snippet(span))
		}
		lit = token.CharLiteral{At: span, Char: r}
	}
	l.push(start, token.Lit, lit)
}

// unescape interprets the escapes in the body of a string literal.
func unescape(body string) (string, error) {
	var buf []byte
	for body != "" {
		r, multibyte, tail, err := strconv.UnquoteChar(body, '"')
		if err != nil {
			return "", err
		}
		if r < utf8.RuneSelf || !multibyte {
			buf = append(buf, byte(r))
		} else {
			buf = utf8.AppendRune(buf, r)
		}
		body = tail
	}
	return string(buf), nil
}
