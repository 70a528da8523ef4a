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
	"errors"
	"math/big"
	"strconv"
	"strings"

	"lukechampine.com/uint128"

	"github.com/bufbuild/descent/report"
	"github.com/bufbuild/descent/source"
	"github.com/bufbuild/descent/token"
)

// lexNumber lexes a number starting at the current cursor.
func lexNumber(l *lexer) {
	start := l.cursor

	base := 10
	if l.peek() == '0' {
		switch l.peekAt(1) {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 10 {
			l.cursor += 2
		}
	}

	digitsStart := l.cursor
	if base == 16 {
		l.takeWhile(isHexDigit)
	} else {
		l.takeWhile(isDecDigit)
	}
	digits := l.file.Text()[digitsStart:l.cursor]

	var isFloat bool
	if base == 10 {
		if l.peek() == '.' && isDigit(l.peekAt(1)) {
			l.cursor++
			l.takeWhile(isDecDigit)
			isFloat = true
		}
		if r := l.peek(); r == 'e' || r == 'E' {
			n := 1
			if sign := l.peekAt(1); sign == '+' || sign == '-' {
				n++
			}
			if isDigit(l.peekAt(n)) {
				l.cursor += n
				l.takeWhile(isDecDigit)
				isFloat = true
			}
		}
	}
	body := l.file.Text()[digitsStart:l.cursor]

	suffixStart := l.cursor
	suffix := l.takeWhile(isIdentContinue)
	suffixSpan := l.spanFrom(suffixStart)

	intType, isIntSuffix := token.IntTypeBySuffix(suffix)
	floatType, isFloatSuffix := token.FloatTypeBySuffix(suffix)
	switch {
	case suffix == "":
	case isFloatSuffix && base == 10:
		isFloat = true
	case isIntSuffix && !isFloat:
	default:
		what := "integer"
		if isFloat {
			what = "float"
		}
		l.Errorf("unrecognized suffix `%s` on %s literal", suffix, what).With(
			report.Snippet(suffixSpan),
		)
		intType, floatType = token.UnknownInt, token.UnknownFloat
	}

	span := l.spanFrom(start)
	switch {
	case digits == "":
		l.Errorf("missing digits in integer literal").With(report.Snippet(span))
	case strings.Contains(body, "__") || strings.HasSuffix(digits, "_"):
		l.Errorf("misplaced `_` separator in numeric literal").With(report.Snippet(span))
	}

	var lit token.Literal
	if isFloat {
		lit = lexFloat(l, span, strings.ReplaceAll(body, "_", ""), floatType)
	} else {
		lit = lexInt(l, span, strings.ReplaceAll(digits, "_", ""), base, intType)
	}
	l.push(start, token.Lit, lit)
}

func lexInt(l *lexer, span source.Span, digits string, base int, ty token.IntType) token.IntLiteral {
	lit := token.IntLiteral{At: span, Type: ty}
	if digits == "" {
		return lit
	}

	v, ok := new(big.Int).SetString(digits, base)
	switch {
	case !ok:
		l.Errorf("invalid digit in base-%d literal", base).With(report.Snippet(span))
	case v.BitLen() > 128:
		l.Errorf("integer literal does not fit in 128 bits").With(report.Snippet(span))
		lit.Int = uint128.Max
	default:
		lit.Int = uint128.FromBig(v)
	}
	return lit
}

func lexFloat(l *lexer, span source.Span, text string, ty token.FloatType) token.FloatLiteral {
	v, err := strconv.ParseFloat(text, ty.BitSize())
	if errors.Is(err, strconv.ErrRange) {
		l.Errorf("float literal is out of range").With(report.Snippet(span))
	}
	return token.NewFloat(span, v, ty)
}

func isDecDigit(r rune) bool {
	return r == '_' || isDigit(r)
}

func isHexDigit(r rune) bool {
	return isDecDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
