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
	"strings"
	"unicode"

	"github.com/bufbuild/descent/token"
)

// loop is the main loop of the lexer.
func loop(l *lexer) {
	// Each iteration examines the next rune in the file to decide what to
	// do with it.
	mp := l.mustProgress()
	for !l.done() {
		mp.check()
		start := l.cursor

		if unicode.In(l.peek(), unicode.Pattern_White_Space) {
			l.flushBad()
			l.takeWhile(func(r rune) bool {
				return unicode.In(r, unicode.Pattern_White_Space)
			})
			continue
		}

		if l.LineComment != "" && strings.HasPrefix(l.rest(), l.LineComment) {
			l.flushBad()
			l.seekLine()
			continue
		}

		if punct := l.longestPunct(); punct != "" {
			l.cursor += len(punct)
			l.push(start, token.Punct, nil)
			continue
		}

		r := l.peek()
		switch {
		case r == '"' || r == '\'':
			lexQuoted(l)

		case isDigit(r):
			lexNumber(l)

		case isIdentStart(r):
			l.takeWhile(isIdentContinue)
			l.push(start, token.Ident, nil)

		default:
			_ = l.pop()
			l.bad(start, l.cursor-start)
		}
	}
	l.flushBad()
}

// longestPunct returns the longest configured punctuation that the remaining
// text starts with.
func (l *lexer) longestPunct() string {
	var best string
	for _, p := range l.Punct {
		if len(p) > len(best) && strings.HasPrefix(l.rest(), p) {
			best = p
		}
	}
	return best
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
