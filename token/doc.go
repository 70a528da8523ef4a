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


// Package token provides the immutable token buffer that parsers traverse.
//
// A lexer produces a [Buffer] of [Entry] values once per source file and then
// freezes it. Everything downstream only moves a [Cursor], which is a plain
// position within the buffer: copying a Cursor is free, comparing two
// Cursors is positional, and nothing a Cursor does can mutate the buffer.
//
// # Literals
//
// Entries of kind [Lit] carry a [Literal] value: a closed sum over
// [StringLiteral], [CharLiteral], [IntLiteral] and [FloatLiteral]. Floats are
// stored as their IEEE-754 bit pattern rather than as a float64, so that all
// literals are comparable with ==, usable as map keys, and totally ordered by
// [CompareLiterals], NaNs included.
package token
