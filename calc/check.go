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
	"github.com/bufbuild/descent/report"
)

// Diagnostic codes for semantic errors.
const (
	CodeDivideByZero uint16 = 1 + iota
	CodeOutOfRange
)

// Check looks for semantic errors in a parsed expression, and reports them
// to r. Returns whether no errors were found.
func Check(expr Expr, r *report.Report) bool {
	ok := true
	Walk(expr, func(e Expr) bool {
		switch e := e.(type) {
		case *Int:
			ok = checkInt(e, r) && ok
		case *Binary:
			if e.Op != Div {
				break
			}
			zero, isInt := Unparen(e.Right).(*Int)
			if isInt && zero.Lit.Int.IsZero() {
				r.Errorf("cannot divide by 0").With(
					report.Code(CodeDivideByZero),
					report.Snippet(zero),
					report.Snippetf(e.OpSpan, "division happens here"),
				)
				ok = false
			}
		}
		return true
	})
	return ok
}

func checkInt(e *Int, r *report.Report) bool {
	lit := e.Lit
	if !lit.Fits() {
		r.Errorf("integer literal out of range for `%s`", lit.Type).With(
			report.Code(CodeOutOfRange),
			report.Snippet(e),
			report.Help("the largest `%s` is %s", lit.Type, lit.Type.Max()),
		)
		return false
	}
	if _, ok := lit.Uint64(); !ok {
		r.Errorf("integer literal does not fit in 64 bits").With(
			report.Code(CodeOutOfRange),
			report.Snippet(e),
			report.Help("calc evaluates everything as u64, whose largest value is 18446744073709551615"),
		)
		return false
	}
	return true
}
