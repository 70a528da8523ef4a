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


package calc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/bufbuild/descent/calc"
	"github.com/bufbuild/descent/report"
	"github.com/bufbuild/descent/source"
)

func parseString(t *testing.T, text string, config calc.Config) (calc.Expr, *report.Report, error) {
	t.Helper()
	r := new(report.Report)
	expr, err := calc.Parse(source.NewFile("<input>", text), r, config)
	return expr, r, err
}

func TestPrecedence(t *testing.T) {
	t.Parallel()

	expr, r, err := parseString(t, "2 + 3 * (4 - 1)", calc.DefaultConfig)
	require.NoError(t, err)
	assert.Empty(t, r.Diagnostics)
	assert.Equal(t, "Add(2, Mul(3, Group(Sub(4, 1))))", calc.Sexpr(expr))
	assert.Equal(t, "2 + 3 * (4 - 1)", expr.String())

	v, err := calc.Eval(expr)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), v)

	assert.True(t, calc.Check(expr, r))
	assert.Equal(t, "2 + 3 * ( 4 - 1 )", expr.Unparse().String())
}

func TestLeftAssociative(t *testing.T) {
	t.Parallel()

	expr, _, err := parseString(t, "8 / 4 / 2 - 1 - 0", calc.DefaultConfig)
	require.NoError(t, err)
	assert.Equal(t, "Sub(Sub(Div(Div(8, 4), 2), 1), 0)", calc.Sexpr(expr))

	v, err := calc.Eval(expr)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), v)
}

func TestDivideByZero(t *testing.T) {
	t.Parallel()

	expr, r, err := parseString(t, "5 / 0", calc.DefaultConfig)
	require.NoError(t, err)
	assert.Equal(t, "Div(5, 0)", calc.Sexpr(expr))

	assert.False(t, calc.Check(expr, r))
	require.Len(t, r.Diagnostics, 1)
	d := r.Diagnostics[0]
	assert.Equal(t, "cannot divide by 0", d.Message)
	assert.Equal(t, calc.CodeDivideByZero, d.Code)

	right := expr.(*calc.Binary).Right
	assert.Equal(t, right.Span(), d.Primary().Span)
	assert.Equal(t, "0", d.Primary().Span.Text())

	_, err = calc.Eval(expr)
	assert.EqualError(t, err, "[E0001] <input>:1:5: cannot divide by 0")

	// Only the evaluator catches a zero that has to be computed.
	expr, r, err = parseString(t, "5 / (1 - 1)", calc.DefaultConfig)
	require.NoError(t, err)
	assert.True(t, calc.Check(expr, r))
	_, err = calc.Eval(expr)
	assert.Error(t, err)

	// Parentheses around a literal zero do not hide it.
	expr, r, err = parseString(t, "5 / ((0))", calc.DefaultConfig)
	require.NoError(t, err)
	assert.False(t, calc.Check(expr, r))
}

func TestSyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want string
	}{
		{text: "", want: "expected an integer or `(`, found end of input"},
		{text: "1 +", want: "expected an integer or `(`, found end of input"},
		{text: "* 2", want: "expected an integer or `(`, found `*`"},
		{text: "(1", want: "expected `)`"},
		{text: "1 2", want: "unexpected literal `2` after expression"},
		{text: "1 foo", want: "unexpected identifier `foo` after expression"},
		{text: `"x"`, want: "expected an integer or `(`, found literal `\"x\"`"},
		{text: "1.5", want: "expected an integer or `(`, found literal `1.5`"},
	}

	for _, tt := range tests {
		expr, _, err := parseString(t, tt.text, calc.DefaultConfig)
		assert.Nil(t, expr, tt.text)
		var d *report.Diagnostic
		if assert.ErrorAs(t, err, &d, tt.text) {
			assert.Equal(t, tt.want, d.Message, tt.text)
		}
	}
}

func TestUnclosedParenNotes(t *testing.T) {
	t.Parallel()

	_, _, err := parseString(t, "(1 + 2", calc.DefaultConfig)
	var d *report.Diagnostic
	require.ErrorAs(t, err, &d)
	require.Len(t, d.Annotations, 2)
	assert.Equal(t, "unclosed `(` here", d.Annotations[1].Label)
	assert.Equal(t, "(", d.Annotations[1].Span.Text())
}

func TestMaxDepth(t *testing.T) {
	t.Parallel()

	config := calc.Config{MaxDepth: 2}
	_, _, err := parseString(t, "((1))", config)
	require.NoError(t, err)

	_, _, err = parseString(t, "(((1)))", config)
	var d *report.Diagnostic
	require.ErrorAs(t, err, &d)
	assert.Equal(t, "expression nested too deeply", d.Message)
	assert.Equal(t, 2, d.Primary().Span.Start)

	// Depth is about nesting, not the total number of groups.
	_, _, err = parseString(t, "(1) + (2) + ((3))", config)
	require.NoError(t, err)

	_, _, err = parseString(t, "((((((1))))))", calc.Config{})
	require.NoError(t, err)
}

func TestStrict(t *testing.T) {
	t.Parallel()

	_, _, err := parseString(t, "1u8 + 2", calc.Config{})
	require.NoError(t, err)
	_, _, err = parseString(t, "1u64 + 2", calc.Config{Strict: true})
	require.NoError(t, err)
	_, _, err = parseString(t, "1 + 2u8", calc.Config{Strict: true})
	assert.EqualError(t, err, "<input>:1:5: `u8` literals are not allowed in strict mode")
}

func TestCheckRanges(t *testing.T) {
	t.Parallel()

	expr, r, err := parseString(t, "256u8 + 99999999999999999999 + 255u8", calc.DefaultConfig)
	require.NoError(t, err)
	assert.False(t, calc.Check(expr, r))

	var msgs []string
	for _, d := range r.Diagnostics {
		msgs = append(msgs, d.Message)
	}
	assert.Equal(t, []string{
		"integer literal out of range for `u8`",
		"integer literal does not fit in 64 bits",
	}, msgs)
	assert.Equal(t, []string{"the largest `u8` is 255"}, r.Diagnostics[0].Help)
}

func TestEvalOverflow(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"18446744073709551615 + 1",
		"0 - 1",
		"4294967296 * 4294967296",
	} {
		expr, _, err := parseString(t, text, calc.DefaultConfig)
		require.NoError(t, err)
		_, err = calc.Eval(expr)
		assert.ErrorContains(t, err, "arithmetic overflow", text)
	}

	v, err := calc.Eval(calc.NewBinary(calc.Mul, calc.NewInt(4294967295), calc.NewInt(4294967297)))
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), v)
}

func TestCompile(t *testing.T) {
	t.Parallel()

	expr := calc.NewBinary(calc.Sub, calc.NewInt(7), calc.NewGroup(calc.NewInt(2)))
	assert.Equal(t, []byte{
		0x48, 0xb8, 7, 0, 0, 0, 0, 0, 0, 0, 0x50, // push 7
		0x48, 0xb8, 2, 0, 0, 0, 0, 0, 0, 0, 0x50, // push 2
		0x41, 0x58, 0x58, // pop r8; pop rax
		0x4c, 0x29, 0xc0, 0x50, // sub rax, r8; push rax
		0x48, 0xc7, 0xc0, 0x3c, 0x00, 0x00, 0x00, // mov rax, 60
		0x5f, 0x0f, 0x05, // pop rdi; syscall
	}, calc.Compile(expr))

	div := calc.Compile(calc.NewBinary(calc.Div, calc.NewInt(1), calc.NewInt(1)))
	assert.Equal(t, []byte{0x41, 0x58, 0x58, 0x48, 0x31, 0xd2, 0x49, 0xf7, 0xf0, 0x50}, div[22:32])
}

func TestToProto(t *testing.T) {
	t.Parallel()

	expr, _, err := parseString(t, "(1 + 2u16) * 3", calc.DefaultConfig)
	require.NoError(t, err)

	pb, err := calc.ToProto(expr)
	require.NoError(t, err)
	m := pb.AsMap()
	assert.Equal(t, "mul", m["op"])
	assert.Equal(t, 0.0, m["start"])
	assert.Equal(t, 14.0, m["end"])

	group := m["left"].(map[string]any)["group"].(map[string]any)
	assert.Equal(t, "u16", group["right"].(map[string]any)["type"])

	data, err := protojson.Marshal(pb)
	require.NoError(t, err)
	var back structpb.Struct
	require.NoError(t, protojson.Unmarshal(data, &back))
	assert.Equal(t, m, back.AsMap())
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, text string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
		return path
	}

	config, err := calc.LoadConfig(write("full.yaml", "max_depth: 3\nstrict: true\n"))
	require.NoError(t, err)
	assert.Equal(t, calc.Config{MaxDepth: 3, Strict: true}, config)

	config, err = calc.LoadConfig(write("empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, calc.DefaultConfig, config)

	_, err = calc.LoadConfig(write("unknown.yaml", "depth: 3\n"))
	assert.Error(t, err)
	_, err = calc.LoadConfig(write("negative.yaml", "max_depth: -1\n"))
	assert.Error(t, err)
	_, err = calc.LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWalkAndIDs(t *testing.T) {
	t.Parallel()

	expr, _, err := parseString(t, "1 + (2 * 3)", calc.DefaultConfig)
	require.NoError(t, err)

	seen := make(map[int]bool)
	var count int
	calc.Walk(expr, func(e calc.Expr) bool {
		id := calc.GetNode(e).ID
		assert.NotZero(t, id)
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
		count++
		return true
	})
	assert.Equal(t, 6, count)

	// Children complete before their parents.
	assert.Equal(t, 6, calc.GetNode(expr).ID)
	assert.Same(t, expr, calc.Unparen(expr))
}
