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


package parse

import "github.com/bufbuild/descent/token"

// Box parses a T and returns a pointer to it.
//
// This is how recursive node types, which must refer to themselves through a
// pointer, get parsed.
func Box[T, D any](s *Stream[D]) (*T, error) {
	v, err := Parse[T](s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Optional parses a T if one starts at the current position.
//
// If [Token.Peek] says there is no T here, this returns nil without consuming
// anything and without an error. It only fails if there appears to be a T,
// but parsing it fails.
func Optional[T Token, D any](s *Stream[D]) (*T, error) {
	if !Peek[T](s) {
		return nil, nil
	}
	return Box[T](s)
}

// Many parses as many T as possible, one after another.
//
// Each element is parsed on a fork, which is committed only if it succeeds.
// The first failure, or the end of input, ends the repetition; whatever that
// failed attempt consumed is discarded. Many never fails.
func Many[T, D any](s *Stream[D]) []T {
	return ManyFunc[T, D](s, Parse[T, D])
}

// ManyFunc is like [Many], but calls rule to parse each element.
//
// An element that parses without consuming anything also ends the
// repetition, since repeating it would never terminate.
func ManyFunc[T, D any](s *Stream[D], rule Rule[D, T]) []T {
	var items []T
	for !s.IsEmpty() {
		fork := s.Fork()
		item, err := rule(fork)
		if err != nil || s.Steps(fork) == 0 {
			break
		}
		s.Commit(fork)
		items = append(items, item)
	}
	return items
}

// String parses a string literal and returns its unescaped text.
func String[D any](s *Stream[D]) (string, error) {
	lit, err := Parse[token.StringLiteral](s)
	return lit.Text, err
}

// Literal parses a literal of any kind.
func Literal[D any](s *Stream[D]) (token.Literal, error) {
	return Step(s, func(c StepCursor) (token.Literal, token.Cursor, error) {
		lit, next, ok := c.Literal()
		if !ok {
			return nil, c.Cursor, c.Errorf("expected %s", token.DisplayLiteral)
		}
		return lit, next, nil
	})
}

// UnparseOptional unparses v, or returns an empty buffer if v is nil.
func UnparseOptional[T Unparser](v *T) *token.Buffer {
	if v == nil {
		return token.NewBuffer()
	}
	return (*v).Unparse()
}

// UnparseAll concatenates the unparsed forms of items, in order.
//
// The result is not frozen, so callers may keep appending to it.
func UnparseAll[T Unparser](items []T) *token.Buffer {
	buf := token.NewBuffer()
	for _, item := range items {
		buf.Extend(item.Unparse())
	}
	return buf
}
