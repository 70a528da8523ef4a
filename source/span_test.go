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


package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/descent/source"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "1 +\n  (2)\n")
	assert.Equal(t, source.Location{Offset: 0, Line: 1, Column: 1}, file.Location(0))
	assert.Equal(t, source.Location{Offset: 2, Line: 1, Column: 3}, file.Location(2))
	assert.Equal(t, source.Location{Offset: 6, Line: 2, Column: 3}, file.Location(6))
	assert.Equal(t, "  (2)", file.Line(2))
	assert.Equal(t, 1, file.LineByOffset(4))
}

func TestJoin(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test", "2 + 3 * 4")
	a := file.Span(0, 1)
	b := file.Span(8, 9)

	assert.Equal(t, file.Span(0, 9), a.To(b))
	assert.Equal(t, file.Span(0, 9), b.To(a))
	assert.Equal(t, a, a.To(source.Span{}))
	assert.Equal(t, source.Span{}, source.Join())
	assert.Equal(t, "2 + 3 * 4", a.To(b).Text())

	other := source.NewFile("other", "x")
	assert.Panics(t, func() { a.To(other.Span(0, 1)) })
}

func TestEOF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, source.NewFile("test", "1 + 2\n\n").EOF().Start)
	assert.Equal(t, 0, source.NewFile("test", "  \n").EOF().Start)
	assert.True(t, (*source.File)(nil).EOF().IsZero())
}
