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
	"errors"
	"fmt"

	"github.com/bufbuild/descent/parse"
	"github.com/bufbuild/descent/report"
	"github.com/bufbuild/descent/source"
	"github.com/bufbuild/descent/token"
)

type stream = parse.Stream[Config]

// Parse parses a calc program.
//
// Lexical errors go into r; parsing continues past them, over whatever could
// be lexed. A syntax error is returned as a [*report.Diagnostic] and is not
// added to r.
//
// Parse only checks syntax. An expression like 5 / 0 parses successfully;
// use [Check] to find semantic errors.
func Parse(file *source.File, r *report.Report, config Config) (Expr, error) {
	buf := Lexer.Lex(file, r)
	s := parse.New(buf, config, r)

	expr, err := parse.Call[Expr](s, parseAddSub)
	if err != nil {
		return nil, err
	}
	if !s.IsEmpty() {
		return nil, s.Errorf("unexpected %s after expression", describe(s.Cursor())).With(
			report.Snippetf(expr, "expected an operator after this"),
		)
	}
	return expr, nil
}

// parseAddSub parses add_sub := mul_div (("+" | "-") mul_div)*.
func parseAddSub(s *stream) (Expr, error) {
	return parseBinary(s, parseMulDiv, Add, Sub)
}

// parseMulDiv parses mul_div := atom (("*" | "/") atom)*.
func parseMulDiv(s *stream) (Expr, error) {
	return parseBinary(s, parseAtom, Mul, Div)
}

// parseBinary parses a left-associative chain of operands separated by any of
// the given operators.
func parseBinary(s *stream, operand parse.Rule[Config, Expr], ops ...Op) (Expr, error) {
	left, err := parse.Call(s, operand)
	if err != nil {
		return nil, err
	}

	for !s.IsEmpty() {
		op, opSpan, ok := parseOp(s, ops)
		if !ok {
			break
		}
		right, err := parse.Call(s, operand)
		if err != nil {
			return nil, err
		}

		left = &Binary{
			Node:   Node{At: left.Span().To(s.PrevSpan()), ID: s.NextID()},
			Op:     op,
			OpSpan: opSpan,
			Left:   left,
			Right:  right,
		}
	}
	return left, nil
}

// parseOp consumes the first of ops that is next in the stream.
func parseOp(s *stream, ops []Op) (Op, source.Span, bool) {
	for _, op := range ops {
		var (
			span source.Span
			ok   bool
		)
		switch op {
		case Add:
			span, ok = parseToken[Plus](s)
		case Sub:
			span, ok = parseToken[Minus](s)
		case Mul:
			span, ok = parseToken[Star](s)
		case Div:
			span, ok = parseToken[Slash](s)
		}
		if ok {
			return op, span, true
		}
	}
	return 0, source.Span{}, false
}

// parseToken consumes a T if one is next in the stream.
func parseToken[T interface {
	parse.Token
	source.Spanner
}](s *stream) (source.Span, bool) {
	tok, err := parse.Optional[T](s)
	if err != nil || tok == nil {
		return source.Span{}, false
	}
	return (*tok).Span(), true
}

// parseAtom parses atom := int | "(" add_sub ")".
func parseAtom(s *stream) (Expr, error) {
	open, err := parse.Optional[LParen](s)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return parseGroup(s, *open)
	}

	if !parse.Peek[token.IntLiteral](s) {
		return nil, s.Errorf("expected an integer or `(`, found %s", describe(s.Cursor()))
	}
	lit, err := parse.Parse[token.IntLiteral](s)
	if err != nil {
		return nil, err
	}

	if s.Data.Strict && lit.Type != token.UnknownInt && lit.Type != token.U64 {
		return nil, s.ErrorAt(lit, "`%s` literals are not allowed in strict mode", lit.Type).With(
			report.Help("calc evaluates everything as u64; remove the suffix or use `u64`"),
		)
	}
	return &Int{
		Node:  Node{At: lit.Span(), ID: s.NextID()},
		Lit:   lit,
		Value: lit.Int.Lo,
	}, nil
}

// parseGroup parses the rest of a parenthesized expression after its `(`.
func parseGroup(s *stream, open LParen) (Expr, error) {
	if limit := s.Data.MaxDepth; limit > 0 && s.Data.depth >= limit {
		return nil, s.ErrorAt(open, "expression nested too deeply").With(
			report.Note("at most %d levels of parentheses are allowed", limit),
		)
	}

	s.Data.depth++
	inner, err := parse.Call[Expr](s, parseAddSub)
	s.Data.depth--
	if err != nil {
		return nil, err
	}

	closeParen, err := parse.Parse[RParen](s)
	if err != nil {
		var d *report.Diagnostic
		if errors.As(err, &d) {
			d.With(report.Snippetf(open, "unclosed `(` here"))
		}
		return nil, err
	}

	return &Group{
		Node:  Node{At: open.At.To(closeParen.At), ID: s.NextID()},
		Open:  open.At,
		Close: closeParen.At,
		Inner: inner,
	}, nil
}

// describe describes the entry at c for use in diagnostics.
func describe(c token.Cursor) string {
	e, ok := c.Peek()
	if !ok {
		return "end of input"
	}
	switch e.Kind {
	case token.Lit:
		return fmt.Sprintf("literal `%s`", e.Text)
	case token.Ident:
		return fmt.Sprintf("identifier `%s`", e.Text)
	default:
		return fmt.Sprintf("`%s`", e.Text)
	}
}
