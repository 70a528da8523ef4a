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


package token

import "fmt"

const (
	Ident Kind = 1 + iota // An identifier.
	Punct                 // Some punctuation.
	Lit                   // A literal; see [Literal].
)

// Kind identifies what kind of entry a particular [Entry] is.
type Kind byte

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Ident:
		return "Ident"
	case Punct:
		return "Punct"
	case Lit:
		return "Lit"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}
