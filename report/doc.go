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


// Package report provides a robust diagnostics framework.
//
// A [Diagnostic] is a value: it carries a severity, an optional numeric code,
// a message, and any number of annotated [source.Span]s. Diagnostics are
// errors, so code that fails can simply return one; code that wants to keep
// going collects them in a [Report] instead.
//
// A [Renderer] turns a [Report] into text suitable for a terminal, in the
// style of the Rust compiler, or in a compact one-line-per-diagnostic style
// that imitates the Go compiler.
package report
