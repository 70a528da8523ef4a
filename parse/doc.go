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


// Package parse is a speculative recursive-descent parsing engine.
//
// A [Stream] walks a frozen [token.Buffer]. Grammar nodes are ordinary Go
// types that implement one of two contracts: [Parser], for nodes that need
// the stream and its context payload, or [Scanner], for context-free nodes
// that consume entries directly off a cursor. [Parse] dispatches between
// them.
//
// The only way a stream advances is [Stream.Step], which is all-or-nothing:
// a failed step leaves the stream exactly as it found it. Lookahead of any
// depth is done by forking the stream, which is O(1), and either discarding
// the fork or committing it back with [Stream.Commit].
//
// Failures are [*report.Diagnostic] values, returned as errors. Nothing in
// this package panics on malformed input; panics indicate a bug in the
// grammar, such as a step that moves backwards.
package parse

