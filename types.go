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
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
)

// PhysicalType is the on-disk storage type of a parquet column, attached to
// the column's descriptor. It determines how raw statistics payloads and
// dictionary entries are decoded; the logical Type determines how the decoded
// values are interpreted.
type PhysicalType int

const (
	PhysicalBoolean PhysicalType = iota
	PhysicalInt32
	PhysicalInt64
	PhysicalInt96
	PhysicalFloat
	PhysicalDouble
	PhysicalByteArray
	PhysicalFixedLenByteArray
)

func (p PhysicalType) String() string {
	switch p {
	case PhysicalBoolean:
		return "boolean"
	case PhysicalInt32:
		return "int32"
	case PhysicalInt64:
		return "int64"
	case PhysicalInt96:
		return "int96"
	case PhysicalFloat:
		return "float"
	case PhysicalDouble:
		return "double"
	case PhysicalByteArray:
		return "binary"
	case PhysicalFixedLenByteArray:
		return "fixed_len_byte_array"
	}

	return "unknown"
}

// TimeUnit is the logical-type annotation carried by INT64 timestamp columns,
// giving the granularity of the stored integers.
type TimeUnit int

const (
	TimeUnitNone TimeUnit = iota
	TimeUnitMillis
	TimeUnitMicros
	TimeUnitNanos
)

func (u TimeUnit) String() string {
	switch u {
	case TimeUnitMillis:
		return "millis"
	case TimeUnitMicros:
		return "micros"
	case TimeUnitNanos:
		return "nanos"
	}

	return "none"
}

// precision returns the number of fractional-second decimal digits the unit
// encodes, e.g. 3 for milliseconds.
func (u TimeUnit) precision() int {
	switch u {
	case TimeUnitMillis:
		return 3
	case TimeUnitMicros:
		return 6
	case TimeUnitNanos:
		return 9
	}

	return 0
}

// ColumnDescriptor identifies a parquet column: its path in the file schema,
// leaf name, physical storage type and, where applicable, the declared byte
// length (fixed_len_byte_array) and timestamp granularity (INT64 timestamps).
// Descriptors are immutable once constructed and shared across all blocks of
// the column.
type ColumnDescriptor struct {
	Path         []string
	Name         string
	PhysicalType PhysicalType
	TypeLength   int
	Required     bool
	TimeUnit     TimeUnit
}

// ID returns the identity used to key a column in an effective predicate or a
// per-block statistics map: the dotted schema path, or the leaf name for
// top-level columns.
func (c *ColumnDescriptor) ID() string {
	if len(c.Path) > 0 {
		return strings.Join(c.Path, ".")
	}

	return c.Name
}

func (c *ColumnDescriptor) String() string {
	typ := c.PhysicalType.String()
	if c.PhysicalType == PhysicalFixedLenByteArray {
		typ = fmt.Sprintf("%s(%d)", typ, c.TypeLength)
	}

	return fmt.Sprintf("[%s] %s %s %s",
		strings.Join(c.Path, ", "), optOrReq(c.Required), typ, c.Name)
}

func optOrReq(required bool) string {
	if required {
		return "required"
	}

	return "optional"
}

// Type is an interface representing any of the logical column types the
// engine exposes, such as integers of various widths, decimals or timestamps.
type Type interface {
	fmt.Stringer
	Equals(Type) bool
}

type BooleanType struct{}

func (BooleanType) Equals(other Type) bool {
	_, ok := other.(BooleanType)

	return ok
}

func (BooleanType) String() string { return "boolean" }

// TinyintType is an 8-bit signed integer stored in a wider INT32 physical
// slot. Statistics outside its representable range are unreliable and degrade
// rather than clamp.
type TinyintType struct{}

func (TinyintType) Equals(other Type) bool {
	_, ok := other.(TinyintType)

	return ok
}

func (TinyintType) String() string { return "tinyint" }

type SmallintType struct{}

func (SmallintType) Equals(other Type) bool {
	_, ok := other.(SmallintType)

	return ok
}

func (SmallintType) String() string { return "smallint" }

type IntegerType struct{}

func (IntegerType) Equals(other Type) bool {
	_, ok := other.(IntegerType)

	return ok
}

func (IntegerType) String() string { return "integer" }

type BigintType struct{}

func (BigintType) Equals(other Type) bool {
	_, ok := other.(BigintType)

	return ok
}

func (BigintType) String() string { return "bigint" }

// RealType is a 32-bit IEEE-754 floating point type. NaN bounds are never
// trusted as range endpoints.
type RealType struct{}

func (RealType) Equals(other Type) bool {
	_, ok := other.(RealType)

	return ok
}

func (RealType) String() string { return "real" }

type DoubleType struct{}

func (DoubleType) Equals(other Type) bool {
	_, ok := other.(DoubleType)

	return ok
}

func (DoubleType) String() string { return "double" }

// VarcharType values are compared byte-wise, consistent with the format's
// sort order for binary columns.
type VarcharType struct{}

func (VarcharType) Equals(other Type) bool {
	_, ok := other.(VarcharType)

	return ok
}

func (VarcharType) String() string { return "varchar" }

type CharType struct{}

func (CharType) Equals(other Type) bool {
	_, ok := other.(CharType)

	return ok
}

func (CharType) String() string { return "char" }

type VarbinaryType struct{}

func (VarbinaryType) Equals(other Type) bool {
	_, ok := other.(VarbinaryType)

	return ok
}

func (VarbinaryType) String() string { return "varbinary" }

// DateType represents a calendar date as the number of days since the unix
// epoch, stored in an INT32 physical slot.
type DateType struct{}

func (DateType) Equals(other Type) bool {
	_, ok := other.(DateType)

	return ok
}

func (DateType) String() string { return "date" }

// UUIDType is stored as a 16-byte fixed_len_byte_array and ordered byte-wise.
type UUIDType struct{}

func (UUIDType) Equals(other Type) bool {
	_, ok := other.(UUIDType)

	return ok
}

func (UUIDType) String() string { return "uuid" }

func DecimalTypeOf(prec, scale int) DecimalType {
	return DecimalType{precision: prec, scale: scale}
}

type DecimalType struct {
	precision, scale int
}

func (d DecimalType) Equals(other Type) bool {
	rhs, ok := other.(DecimalType)
	if !ok {
		return false
	}

	return d.precision == rhs.precision &&
		d.scale == rhs.scale
}

func (d DecimalType) String() string { return fmt.Sprintf("decimal(%d, %d)", d.precision, d.scale) }
func (d DecimalType) Precision() int { return d.precision }
func (d DecimalType) Scale() int     { return d.scale }

// IsShort reports whether unscaled values of this type fit in 64 bits.
func (d DecimalType) IsShort() bool { return d.precision <= 18 }

// Decimal is an unscaled 128-bit integer with a decimal scale.
type Decimal struct {
	Val   decimal128.Num
	Scale int
}

func (d Decimal) String() string {
	return d.Val.ToString(int32(d.Scale))
}

func TimestampTypeOf(precision int) TimestampType {
	if precision < 0 || precision > MaxTimestampPrecision {
		panic(fmt.Sprintf("invalid timestamp precision %d", precision))
	}

	return TimestampType{precision: precision}
}

// MaxTimestampPrecision is the finest fractional-second precision the engine
// represents: picoseconds.
const MaxTimestampPrecision = 12

// maxShortTimestampPrecision is the finest precision representable by a bare
// 64-bit microsecond value; finer precisions carry a picosecond remainder.
const maxShortTimestampPrecision = 6

// TimestampType is a timestamp with a configured fractional-second precision.
// Values at precision <= 6 are a Timestamp (microseconds since the epoch);
// finer precisions use LongTimestamp.
type TimestampType struct {
	precision int
}

func (t TimestampType) Equals(other Type) bool {
	rhs, ok := other.(TimestampType)
	if !ok {
		return false
	}

	return t.precision == rhs.precision
}

func (t TimestampType) String() string { return fmt.Sprintf("timestamp(%d)", t.precision) }
func (t TimestampType) Precision() int { return t.precision }
func (t TimestampType) IsShort() bool  { return t.precision <= maxShortTimestampPrecision }

// Timestamp is a number of microseconds since the unix epoch, the value
// representation for timestamps of precision <= 6.
type Timestamp int64

func (t Timestamp) ToTime() time.Time {
	return time.UnixMicro(int64(t)).UTC()
}

// LongTimestamp is the value representation for timestamps finer than
// microseconds: epoch microseconds plus a picosecond-of-microsecond remainder
// in [0, 1e6).
type LongTimestamp struct {
	Micros       int64
	PicosOfMicro int32
}

func (t LongTimestamp) ToTime() time.Time {
	return time.Unix(0, t.Micros*1000+int64(t.PicosOfMicro)/1000).UTC()
}

var PrimitiveTypes = struct {
	Boolean   BooleanType
	Tinyint   TinyintType
	Smallint  SmallintType
	Integer   IntegerType
	Bigint    BigintType
	Real      RealType
	Double    DoubleType
	Varchar   VarcharType
	Char      CharType
	Varbinary VarbinaryType
	Date      DateType
	UUID      UUIDType
}{}

// integerBounds returns the representable value range for narrow integer
// logical types stored in a wider physical slot. ok is false for types that
// fill their physical slot (bigint, date).
func integerBounds(typ Type) (lo, hi int64, ok bool) {
	switch typ.(type) {
	case TinyintType:
		return math.MinInt8, math.MaxInt8, true
	case SmallintType:
		return math.MinInt16, math.MaxInt16, true
	case IntegerType:
		return math.MinInt32, math.MaxInt32, true
	}

	return 0, 0, false
}
