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

import (
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// IntType is the type suffix of an integer literal, such as the u8 in 42u8.
type IntType int8

const (
	UnknownInt IntType = iota // No suffix.

	U8
	U16
	U32
	U64
	U128
	I8
	I16
	I32
	I64
	I128
)

// FloatType is the type suffix of a floating-point literal.
type FloatType int8

const (
	UnknownFloat FloatType = iota // No suffix.

	F32
	F64
)

var (
	intSuffixes = [...]string{
		UnknownInt: "",
		U8:         "u8",
		U16:        "u16",
		U32:        "u32",
		U64:        "u64",
		U128:       "u128",
		I8:         "i8",
		I16:        "i16",
		I32:        "i32",
		I64:        "i64",
		I128:       "i128",
	}
	floatSuffixes = [...]string{
		UnknownFloat: "",
		F32:          "f32",
		F64:          "f64",
	}
)

// IntTypeBySuffix looks up an integer type by its suffix, such as "u8".
func IntTypeBySuffix(suffix string) (IntType, bool) {
	for i, s := range intSuffixes {
		if i != int(UnknownInt) && s == suffix {
			return IntType(i), true
		}
	}
	return UnknownInt, false
}

// FloatTypeBySuffix looks up a float type by its suffix, such as "f32".
func FloatTypeBySuffix(suffix string) (FloatType, bool) {
	for i, s := range floatSuffixes {
		if i != int(UnknownFloat) && s == suffix {
			return FloatType(i), true
		}
	}
	return UnknownFloat, false
}

// Suffix returns the literal suffix for this type. UnknownInt has no suffix.
func (t IntType) Suffix() string {
	if t < 0 || int(t) >= len(intSuffixes) {
		return ""
	}
	return intSuffixes[t]
}

// String implements [fmt.Stringer].
func (t IntType) String() string {
	switch {
	case t == UnknownInt:
		return "unknown"
	case t > 0 && int(t) < len(intSuffixes):
		return intSuffixes[t]
	default:
		return fmt.Sprintf("IntType(%d)", int(t))
	}
}

// Signed returns whether this is a signed integer type.
func (t IntType) Signed() bool {
	return t >= I8 && t <= I128
}

// Max returns the largest magnitude a literal of this type may have.
//
// Literals carry no sign, so for signed types this is the positive limit.
// UnknownInt has no limit other than the literal representation itself.
func (t IntType) Max() uint128.Uint128 {
	switch t {
	case U8:
		return limit[uint8]()
	case U16:
		return limit[uint16]()
	case U32:
		return limit[uint32]()
	case U64:
		return limit[uint64]()
	case I8:
		return limit[int8]()
	case I16:
		return limit[int16]()
	case I32:
		return limit[int32]()
	case I64:
		return limit[int64]()
	case I128:
		return uint128.Max.Rsh(1)
	default:
		return uint128.Max
	}
}

// Suffix returns the literal suffix for this type. UnknownFloat has no
// suffix.
func (t FloatType) Suffix() string {
	if t < 0 || int(t) >= len(floatSuffixes) {
		return ""
	}
	return floatSuffixes[t]
}

// String implements [fmt.Stringer].
func (t FloatType) String() string {
	switch {
	case t == UnknownFloat:
		return "unknown"
	case t > 0 && int(t) < len(floatSuffixes):
		return floatSuffixes[t]
	default:
		return fmt.Sprintf("FloatType(%d)", int(t))
	}
}

// BitSize returns the width of this type, for use with [strconv.ParseFloat].
func (t FloatType) BitSize() int {
	if t == F32 {
		return 32
	}
	return 64
}

// limit returns the largest value of T, widened to 128 bits.
func limit[T constraints.Integer]() uint128.Uint128 {
	var zero T
	bits := uint(unsafe.Sizeof(zero)) * 8
	if ^zero < 0 {
		bits--
	}
	return uint128.Max.Rsh(128 - bits)
}
