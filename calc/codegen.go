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
	"encoding/binary"
	"fmt"
)

// Machine code fragments for x86-64. The generated program is a stack
// machine: every expression pushes its value, and every operator pops two
// values and pushes one.
var opCode = [...][]byte{
	Add: {0x4c, 0x01, 0xc0}, // add rax, r8
	Sub: {0x4c, 0x29, 0xc0}, // sub rax, r8
	Mul: {0x49, 0xf7, 0xe0}, // mul r8
	Div: {
		0x48, 0x31, 0xd2, // xor rdx, rdx
		0x49, 0xf7, 0xf0, // div r8
	},
}

const (
	movabsRAX = 0x48b8 // movabs rax, imm64
	pushRAX   = 0x50   // push rax
	popRAX    = 0x58   // pop rax
	popR8     = 0x4158 // pop r8
	popRDI    = 0x5f   // pop rdi
	syscall   = 0x0f05 // syscall
)

// Compile compiles an expression into x86-64 machine code for Linux.
//
// The code evaluates the expression and then calls exit(2) with the result,
// so the process's exit status is the low byte of the value. It is position
// independent and suitable as the body of a _start symbol; producing an
// executable out of it is up to the caller.
func Compile(expr Expr) []byte {
	code := compile(nil, expr)

	// exit(pop())
	code = append(code, 0x48, 0xc7, 0xc0) // mov rax, imm32
	code = binary.LittleEndian.AppendUint32(code, 60)
	code = append(code, popRDI)
	code = binary.BigEndian.AppendUint16(code, syscall)
	return code
}

func compile(code []byte, expr Expr) []byte {
	switch e := expr.(type) {
	case *Int:
		code = binary.BigEndian.AppendUint16(code, movabsRAX)
		code = binary.LittleEndian.AppendUint64(code, e.Value)
		code = append(code, pushRAX)
	case *Group:
		code = compile(code, e.Inner)
	case *Binary:
		code = compile(code, e.Left)
		code = compile(code, e.Right)
		code = binary.BigEndian.AppendUint16(code, popR8)
		code = append(code, popRAX)
		code = append(code, opCode[e.Op]...)
		code = append(code, pushRAX)
	default:
		panic(fmt.Sprintf("descent/calc: unexpected expression type %T", expr))
	}
	return code
}
