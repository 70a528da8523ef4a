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
	"os"
	"strings"

	"github.com/petermattis/goid"
)

// debugOwners is the status of the DESCENT_DEBUG environment variable at
// startup. When set, every stream remembers the goroutine that created it and
// panics if any other goroutine advances it.
var debugOwners = func() bool {
	switch strings.ToLower(os.Getenv("DESCENT_DEBUG")) {
	case "", "0", "off", "false":
		return false
	default:
		return true
	}
}()

func currentOwner() int64 {
	if !debugOwners {
		return 0
	}
	return goid.Get()
}

// checkOwner panics if s is being used from a goroutine other than the one
// that created it. It is a no-op unless DESCENT_DEBUG is set.
func (s *Stream[D]) checkOwner() {
	if !debugOwners || s.owner == 0 {
		return
	}
	if id := goid.Get(); id != s.owner {
		panic(fmt.Sprintf("descent/parse: stream owned by goroutine %d used from goroutine %d", s.owner, id))
	}
}
