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


// Package calc is a small arithmetic language built on package parse.
//
// Programs are a single expression over unsigned 64-bit integers, with the
// four binary operators and parentheses:
//
//	2 + 3 * (4 - 1)
//
// Besides parsing, the package can check an expression for semantic errors,
// evaluate it, compile it to x86-64 machine code, and export its tree as
// YAML or as a protobuf Struct.
package calc
