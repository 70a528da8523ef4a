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

import (
	"fmt"

	"github.com/bufbuild/descent/report"
	"github.com/bufbuild/descent/token"
)

// Token is a construct that can be detected without consuming anything.
//
// Implementations should use value receivers, so that the zero value of the
// type can be asked about the input.
type Token interface {
	// Peek returns whether the entry at c starts this construct.
	Peek(c token.Cursor) bool
	// Display returns a name for this construct, such as "an integer", for
	// use in "expected ..." diagnostics.
	Display() string
}

// Parser is a grammar node that is constructed from a stream.
//
// Implementations use pointer receivers and fill in the receiver.
type Parser[D any] interface {
	Parse(s *Stream[D]) error
}

// Scanner is a grammar node that can be read directly off a cursor, without
// needing the stream or its context.
//
// On success, Scan fills in the receiver and returns the advanced cursor.
// On failure, it must not modify the receiver.
type Scanner interface {
	Scan(c token.Cursor) (token.Cursor, bool)
}

// Unparser is a grammar node that can be turned back into entries.
type Unparser interface {
	Unparse() *token.Buffer
}

// Rule is a function that parses a T.
type Rule[D, T any] func(*Stream[D]) (T, error)

var (
	_ error   = (*report.Diagnostic)(nil)
	_ Token   = token.Entry{}
	_ Scanner = (*token.Entry)(nil)
)

// Parse parses a T off of s.
//
// If *T implements [Parser], its Parse method is called. Otherwise, if *T
// implements [Scanner], it is run inside of a single [Stream.Step]; on
// mismatch the error reads "expected " followed by T's [Token.Display], if
// it has one.
//
// Panics if *T implements neither.
func Parse[T, D any](s *Stream[D]) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case Parser[D]:
		if err := p.Parse(s); err != nil {
			var zero T
			return zero, err
		}
		return v, nil

	case Scanner:
		err := s.Step(func(c StepCursor) (token.Cursor, error) {
			next, ok := p.Scan(c.Cursor)
			if !ok {
				return c.Cursor, c.Errorf("expected %s", display[T]())
			}
			return next, nil
		})
		return v, err

	default:
		panic(fmt.Sprintf("descent/parse: %T implements neither Parser nor Scanner", &v))
	}
}

// Call runs a rule on s. It exists so that rules and node types can be
// invoked the same way.
func Call[T, D any](s *Stream[D], rule Rule[D, T]) (T, error) {
	return rule(s)
}

// Peek returns whether T starts at the current position of s.
func Peek[T Token, D any](s *Stream[D]) bool {
	var zero T
	return zero.Peek(s.cursor)
}

// PeekN returns whether T starts n entries ahead of s; PeekN(s, 1) is the same
// as [Peek].
//
// s never moves. If fewer than n entries remain, this returns false.
func PeekN[T Token, D any](s *Stream[D], n int) bool {
	ahead := s.Fork()
	for range n - 1 {
		if !skip(ahead) {
			return false
		}
	}
	return Peek[T](ahead)
}

// Peek2 returns whether T starts one entry past the current position.
func Peek2[T Token, D any](s *Stream[D]) bool { return PeekN[T](s, 2) }

// Peek3 returns whether T starts two entries past the current position.
func Peek3[T Token, D any](s *Stream[D]) bool { return PeekN[T](s, 3) }

// Peek4 returns whether T starts three entries past the current position.
func Peek4[T Token, D any](s *Stream[D]) bool { return PeekN[T](s, 4) }

// display returns the display name of T, falling back to its Go type.
func display[T any]() string {
	var zero T
	if t, ok := any(zero).(Token); ok {
		return t.Display()
	}
	return fmt.Sprintf("%T", zero)
}
