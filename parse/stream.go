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
	"github.com/bufbuild/descent/source"
	"github.com/bufbuild/descent/token"
)

// Stream is the state of a single parse attempt over a token buffer.
//
// D is a context payload threaded unchanged through every nested parse. It
// is shared between a stream and its forks, so it should be a value type or
// something the grammar treats as read-only.
//
// A Stream must only be used from one goroutine at a time. Independent
// streams over the same frozen buffer may run concurrently.
type Stream[D any] struct {
	// Context for grammar rules.
	Data D
	// Where diagnostics that are not returned as errors go. Shared by forks.
	Report *report.Report

	cursor   token.Cursor
	prevSpan source.Span
	nodeID   int

	owner int64 // See checkOwner.
}

// New creates a stream at the start of buf.
//
// buf should be frozen; the stream does not modify it, but the grammar
// cannot make progress over a buffer someone else is still appending to.
func New[D any](buf *token.Buffer, data D, r *report.Report) *Stream[D] {
	return &Stream[D]{
		Data:   data,
		Report: r,
		cursor: buf.Begin(),
		owner:  currentOwner(),
	}
}

// Cursor returns the current position.
func (s *Stream[D]) Cursor() token.Cursor {
	return s.cursor
}

// IsEmpty returns whether the stream has no input left.
func (s *Stream[D]) IsEmpty() bool {
	return s.cursor.EOF()
}

// Span returns the span of the next entry.
//
// At the end of input, this is the buffer's end-of-file span; if the buffer
// does not have one, it is the most recently consumed span.
func (s *Stream[D]) Span() source.Span {
	span := s.cursor.Span()
	if span.IsZero() {
		return s.prevSpan
	}
	return span
}

// PrevSpan returns the span at which the most recent successful step began.
//
// This is what a rule should point at when complaining about something it
// just consumed.
func (s *Stream[D]) PrevSpan() source.Span {
	return s.prevSpan
}

// Steps returns the number of entries between this stream and other, which
// must be a fork of s that has not moved backwards.
func (s *Stream[D]) Steps(other *Stream[D]) int {
	return s.cursor.Offset(other.cursor)
}

// NextID allocates a new node identity.
//
// Identities increase monotonically along a stream. A fork continues from its
// parent's counter, and committing the fork carries its counter back.
func (s *Stream[D]) NextID() int {
	s.nodeID++
	return s.nodeID
}

// Fork returns an independent copy of this stream.
//
// The fork shares the buffer, the report and the context payload, but has its
// own position, previous span and id counter. Nothing done to the fork is
// visible in s unless it is passed to [Stream.Commit].
func (s *Stream[D]) Fork() *Stream[D] {
	s.checkOwner()
	fork := *s
	fork.owner = currentOwner()
	return &fork
}

// Commit moves this stream to where fork is.
//
// fork must have been created from s (or from a fork of s) and must not be
// behind s.
func (s *Stream[D]) Commit(fork *Stream[D]) {
	s.checkOwner()
	if s.cursor.Buffer() != fork.cursor.Buffer() {
		panic("descent/parse: committed a fork of a different stream")
	}
	if fork.cursor.Compare(s.cursor) < 0 {
		panic(fmt.Sprintf("descent/parse: committed a fork that is behind its parent (%d < %d)",
			fork.cursor.Index(), s.cursor.Index()))
	}

	s.cursor = fork.cursor
	s.prevSpan = fork.prevSpan
	s.nodeID = max(s.nodeID, fork.nodeID)
}

// Attempt runs f on a fork of s, and commits it if f succeeds.
//
// Whatever f does, if it fails, s is unchanged.
func (s *Stream[D]) Attempt(f func(*Stream[D]) error) error {
	fork := s.Fork()
	if err := f(fork); err != nil {
		return err
	}
	s.Commit(fork)
	return nil
}

// Errorf returns an error diagnostic pointing at the current span.
func (s *Stream[D]) Errorf(format string, args ...any) *report.Diagnostic {
	return s.ErrorAt(s.Span(), format, args...)
}

// ErrorAt returns an error diagnostic pointing at the given span.
func (s *Stream[D]) ErrorAt(at source.Spanner, format string, args ...any) *report.Diagnostic {
	return report.Errorf(format, args...).With(report.Snippet(at))
}
