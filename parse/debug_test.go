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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/descent/source"
	"github.com/bufbuild/descent/token"
)

func TestOwnerCheck(t *testing.T) {
	// Not parallel: this flips a package-level switch.
	prev := debugOwners
	debugOwners = true
	defer func() { debugOwners = prev }()

	file := source.NewFile("test", "a b")
	buf := token.NewBuffer(
		token.NewIdent("a", file.Span(0, 1)),
		token.NewIdent("b", file.Span(2, 3)),
	)
	buf.Freeze()

	s := New(buf, 0, nil)
	assert.NotPanics(t, func() { _ = skip(s) })

	panicked := make(chan any)
	go func() {
		defer func() { panicked <- recover() }()
		_ = skip(s)
	}()
	assert.NotNil(t, <-panicked)
	assert.Equal(t, 1, s.Cursor().Index())
}
