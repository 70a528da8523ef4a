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
	"github.com/bufbuild/descent/report"
	"github.com/bufbuild/descent/source"
	"github.com/bufbuild/descent/token"
)

// StepCursor is the view of a stream that a step function gets.
//
// It is a plain [token.Cursor] positioned where the step began, plus a way to
// build diagnostics that point at that position.
type StepCursor struct {
	token.Cursor

	span source.Span
}

// Errorf returns an error diagnostic pointing at the span where this step
// began.
func (c StepCursor) Errorf(format string, args ...any) *report.Diagnostic {
	return report.Errorf(format, args...).With(report.Snippet(c.span))
}

// Step advances s by running f on its current position.
//
// f returns the cursor s should move to. If f returns an error instead, s is
// left untouched and the error is returned.
//
// The returned cursor must be over the same buffer as s and must not be
// behind it; anything else is a bug in the caller, and panics.
func (s *Stream[D]) Step(f func(StepCursor) (token.Cursor, error)) error {
	_, err := Step(s, func(c StepCursor) (struct{}, token.Cursor, error) {
		next, err := f(c)
		return struct{}{}, next, err
	})
	return err
}

// Step is like [Stream.Step], but f also produces a value.
func Step[R, D any](s *Stream[D], f func(StepCursor) (R, token.Cursor, error)) (R, error) {
	s.checkOwner()

	start := s.Span()
	value, next, err := f(StepCursor{Cursor: s.cursor, span: start})
	if err != nil {
		var zero R
		return zero, err
	}

	_ = s.cursor.Offset(next) // Panics if next moved backwards.
	s.prevSpan = start
	s.cursor = next
	return value, nil
}

// skip steps past one entry of any kind. Returns false at the end of input.
func skip[D any](s *Stream[D]) bool {
	return s.Step(func(c StepCursor) (token.Cursor, error) {
		_, next, ok := c.Any()
		if !ok {
			return c.Cursor, c.Errorf("unexpected end of input")
		}
		return next, nil
	}) == nil
}
