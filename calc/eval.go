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


package calc

import (
	"fmt"
	"math/bits"

	"github.com/bufbuild/descent/report"
)

// Eval evaluates an expression using unsigned 64-bit arithmetic.
//
// Overflow and division by zero are errors rather than wrapping or
// panicking. Errors are [*report.Diagnostic]s pointing at the offending
// operation.
func Eval(expr Expr) (uint64, error) {
	switch e := expr.(type) {
	case *Int:
		return e.Value, nil
	case *Group:
		return Eval(e.Inner)
	case *Binary:
		left, err := Eval(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := Eval(e.Right)
		if err != nil {
			return 0, err
		}
		return apply(e, left, right)
	default:
		panic(fmt.Sprintf("descent/calc: unexpected expression type %T", expr))
	}
}

func apply(e *Binary, left, right uint64) (uint64, error) {
	var (
		v        uint64
		overflow bool
	)
	switch e.Op {
	case Add:
		var carry uint64
		v, carry = bits.Add64(left, right, 0)
		overflow = carry != 0
	case Sub:
		var borrow uint64
		v, borrow = bits.Sub64(left, right, 0)
		overflow = borrow != 0
	case Mul:
		var hi uint64
		hi, v = bits.Mul64(left, right)
		overflow = hi != 0
	case Div:
		if right == 0 {
			return 0, report.Errorf("cannot divide by 0").With(
				report.Code(CodeDivideByZero),
				report.Snippetf(e.Right, "this evaluates to 0"),
				report.Snippet(e.OpSpan),
			)
		}
		v = left / right
	}

	if overflow {
		return 0, report.Errorf("arithmetic overflow: %d %s %d", left, e.Op, right).With(
			report.Snippet(e),
			report.Note("calc evaluates everything as u64"),
		)
	}
	return v, nil
}
