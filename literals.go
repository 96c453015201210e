// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package parquetprune

import (
	"bytes"
	"cmp"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// LiteralType is a generic type constraint for the explicit Go types that we
// allow for literal values. Integer logical types of every width share int64,
// since statistics decoded from a wider physical slot are kept 64-bit and
// range-checked rather than narrowed.
type LiteralType interface {
	bool | int64 | float32 | float64 | string | []byte |
		Decimal | Timestamp | LongTimestamp | uuid.UUID
}

// Comparator is a comparison function for specific literal types:
//
//	returns 0 if v1 == v2
//	returns <0 if v1 < v2
//	returns >0 if v1 > v2
type Comparator[T LiteralType] func(v1, v2 T) int

// Literal is a non-null value of a column's logical type.
type Literal interface {
	fmt.Stringer

	Any() any
	Equals(Literal) bool
}

// TypedLiteral is a generic interface for Literals so that you can retrieve
// the value and the ordering for its representative type.
type TypedLiteral[T LiteralType] interface {
	Literal

	Value() T
	Comparator() Comparator[T]
}

// NewLiteral provides a literal based on the type of T.
func NewLiteral[T LiteralType](val T) Literal {
	switch v := any(val).(type) {
	case bool:
		return BoolLiteral(v)
	case int64:
		return Int64Literal(v)
	case float32:
		return Float32Literal(v)
	case float64:
		return Float64Literal(v)
	case string:
		return StringLiteral(v)
	case []byte:
		return BinaryLiteral(v)
	case Decimal:
		return DecimalLiteral(v)
	case Timestamp:
		return TimestampLiteral(v)
	case LongTimestamp:
		return LongTimestampLiteral(v)
	case uuid.UUID:
		return UUIDLiteral(v)
	}
	panic("can't happen due to literal type constraint")
}

// convenience to avoid repeating this pattern for primitive types
func literalEq[L interface {
	comparable
	LiteralType
}, T TypedLiteral[L]](lhs T, other Literal) bool {
	rhs, ok := other.(T)
	if !ok {
		return false
	}

	return lhs.Value() == rhs.Value()
}

type BoolLiteral bool

func (BoolLiteral) Comparator() Comparator[bool] {
	return func(v1, v2 bool) int {
		if v1 {
			if v2 {
				return 0
			}

			return 1
		}
		if v2 {
			return -1
		}

		return 0
	}
}

func (b BoolLiteral) Value() bool    { return bool(b) }
func (b BoolLiteral) Any() any       { return b.Value() }
func (b BoolLiteral) String() string { return strconv.FormatBool(bool(b)) }
func (b BoolLiteral) Equals(other Literal) bool {
	return literalEq(b, other)
}

type Int64Literal int64

func (Int64Literal) Comparator() Comparator[int64] { return cmp.Compare[int64] }
func (i Int64Literal) Value() int64                { return int64(i) }
func (i Int64Literal) Any() any                    { return i.Value() }
func (i Int64Literal) String() string              { return strconv.FormatInt(int64(i), 10) }
func (i Int64Literal) Equals(other Literal) bool {
	return literalEq(i, other)
}

type Float32Literal float32

func (Float32Literal) Comparator() Comparator[float32] { return cmp.Compare[float32] }
func (f Float32Literal) Value() float32                { return float32(f) }
func (f Float32Literal) Any() any                      { return f.Value() }
func (f Float32Literal) String() string                { return strconv.FormatFloat(float64(f), 'g', -1, 32) }
func (f Float32Literal) Equals(other Literal) bool {
	return literalEq(f, other)
}

type Float64Literal float64

func (Float64Literal) Comparator() Comparator[float64] { return cmp.Compare[float64] }
func (f Float64Literal) Value() float64                { return float64(f) }
func (f Float64Literal) Any() any                      { return f.Value() }
func (f Float64Literal) String() string                { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (f Float64Literal) Equals(other Literal) bool {
	return literalEq(f, other)
}

type StringLiteral string

func (StringLiteral) Comparator() Comparator[string] { return strings.Compare }
func (s StringLiteral) Value() string                { return string(s) }
func (s StringLiteral) Any() any                     { return s.Value() }
func (s StringLiteral) String() string               { return string(s) }
func (s StringLiteral) Equals(other Literal) bool {
	return literalEq(s, other)
}

type BinaryLiteral []byte

func (BinaryLiteral) Comparator() Comparator[[]byte] { return bytes.Compare }
func (b BinaryLiteral) Value() []byte                { return []byte(b) }
func (b BinaryLiteral) Any() any                     { return b.Value() }
func (b BinaryLiteral) String() string               { return fmt.Sprintf("0x%X", []byte(b)) }
func (b BinaryLiteral) Equals(other Literal) bool {
	rhs, ok := other.(BinaryLiteral)
	if !ok {
		return false
	}

	return bytes.Equal(b, rhs)
}

type DecimalLiteral Decimal

func (DecimalLiteral) Comparator() Comparator[Decimal] {
	return func(v1, v2 Decimal) int {
		if v1.Scale == v2.Scale {
			return v1.Val.Cmp(v2.Val)
		}

		rescaled, err := v2.Val.Rescale(int32(v2.Scale), int32(v1.Scale))
		if err != nil {
			return -1
		}

		return v1.Val.Cmp(rescaled)
	}
}

func (d DecimalLiteral) Value() Decimal { return Decimal(d) }
func (d DecimalLiteral) Any() any       { return d.Value() }
func (d DecimalLiteral) String() string {
	return d.Val.ToString(int32(d.Scale))
}

func (d DecimalLiteral) Equals(other Literal) bool {
	rhs, ok := other.(DecimalLiteral)
	if !ok {
		return false
	}

	rescaled, err := rhs.Val.Rescale(int32(rhs.Scale), int32(d.Scale))
	if err != nil {
		return false
	}

	return d.Val == rescaled
}

type TimestampLiteral Timestamp

func (TimestampLiteral) Comparator() Comparator[Timestamp] { return cmp.Compare[Timestamp] }
func (t TimestampLiteral) Value() Timestamp                { return Timestamp(t) }
func (t TimestampLiteral) Any() any                        { return t.Value() }
func (t TimestampLiteral) String() string {
	return Timestamp(t).ToTime().Format("2006-01-02 15:04:05.000000")
}

func (t TimestampLiteral) Equals(other Literal) bool {
	return literalEq(t, other)
}

type LongTimestampLiteral LongTimestamp

func (LongTimestampLiteral) Comparator() Comparator[LongTimestamp] {
	return func(v1, v2 LongTimestamp) int {
		if c := cmp.Compare(v1.Micros, v2.Micros); c != 0 {
			return c
		}

		return cmp.Compare(v1.PicosOfMicro, v2.PicosOfMicro)
	}
}

func (t LongTimestampLiteral) Value() LongTimestamp { return LongTimestamp(t) }
func (t LongTimestampLiteral) Any() any             { return t.Value() }
func (t LongTimestampLiteral) String() string {
	return fmt.Sprintf("%s +%dps", LongTimestamp(t).ToTime().Format("2006-01-02 15:04:05.000000"),
		t.PicosOfMicro)
}

func (t LongTimestampLiteral) Equals(other Literal) bool {
	return literalEq(t, other)
}

type UUIDLiteral uuid.UUID

func (UUIDLiteral) Comparator() Comparator[uuid.UUID] {
	return func(v1, v2 uuid.UUID) int { return bytes.Compare(v1[:], v2[:]) }
}

func (u UUIDLiteral) Value() uuid.UUID { return uuid.UUID(u) }
func (u UUIDLiteral) Any() any         { return u.Value() }
func (u UUIDLiteral) String() string   { return uuid.UUID(u).String() }
func (u UUIDLiteral) Equals(other Literal) bool {
	return literalEq(u, other)
}

func getCmp[T LiteralType](b TypedLiteral[T]) func(Literal, Literal) int {
	cmp := b.Comparator()

	return func(l1, l2 Literal) int {
		return cmp(l1.(TypedLiteral[T]).Value(), l2.(TypedLiteral[T]).Value())
	}
}

// getCmpLiteral returns an ordering over Literals of the same underlying
// representation as boundary.
func getCmpLiteral(boundary Literal) func(Literal, Literal) int {
	switch l := boundary.(type) {
	case TypedLiteral[bool]:
		return getCmp(l)
	case TypedLiteral[int64]:
		return getCmp(l)
	case TypedLiteral[float32]:
		return getCmp(l)
	case TypedLiteral[float64]:
		return getCmp(l)
	case TypedLiteral[string]:
		return getCmp(l)
	case TypedLiteral[[]byte]:
		return getCmp(l)
	case TypedLiteral[Decimal]:
		return getCmp(l)
	case TypedLiteral[Timestamp]:
		return getCmp(l)
	case TypedLiteral[LongTimestamp]:
		return getCmp(l)
	case TypedLiteral[uuid.UUID]:
		return getCmp(l)
	}
	panic(ErrType)
}

// isNaNLiteral reports whether a decoded floating point literal is NaN. NaN
// has no total order and must never leak into a range bound or be used to
// prove a dictionary mismatch.
func isNaNLiteral(v Literal) bool {
	switch v := v.(type) {
	case Float32Literal:
		return math.IsNaN(float64(v))
	case Float64Literal:
		return math.IsNaN(float64(v))
	default:
		return false
	}
}
