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

package parquetprune_test

import (
	"encoding/binary"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parquetprune/parquetprune-go"
)

const testFile = "testfile"

func newColumn(name string, phys parquetprune.PhysicalType) *parquetprune.ColumnDescriptor {
	return &parquetprune.ColumnDescriptor{Name: name, PhysicalType: phys, Required: true}
}

func newStats(minVal, maxVal []byte, nulls int64) *parquetprune.Statistics {
	return &parquetprune.Statistics{Min: minVal, Max: maxVal, NullCount: nulls}
}

func encBool(v bool) []byte {
	if v {
		return []byte{1}
	}

	return []byte{0}
}

func encInt32(v int32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(v))

	return buf
}

func encInt64(v int64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, uint64(v))

	return buf
}

func encFloat32(v float32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))

	return buf
}

func encFloat64(v float64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, math.Float64bits(v))

	return buf
}

// encInt96 produces the legacy 12-byte timestamp encoding: little-endian
// nanos of day followed by the little-endian Julian day number.
func encInt96(t time.Time) []byte {
	secs := t.Unix()
	days := secs / 86_400
	nanos := (secs-days*86_400)*1_000_000_000 + int64(t.Nanosecond())

	buf := make([]byte, 12)
	binary.LittleEndian.PutUint64(buf[:8], uint64(nanos))
	binary.LittleEndian.PutUint32(buf[8:], uint32(days+2440588))

	return buf
}

// encUnscaled renders an unscaled decimal as a minimal-length two's-complement
// big-endian payload.
func encUnscaled(v *big.Int) []byte {
	if v.Sign() >= 0 {
		b := v.Bytes()
		if len(b) == 0 || b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}

		return b
	}

	n := (v.BitLen() + 8) / 8
	shift := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	out := make([]byte, n)
	new(big.Int).Add(shift, v).FillBytes(out)

	return out
}

func getDomain(t *testing.T, col *parquetprune.ColumnDescriptor, typ parquetprune.Type,
	rowCount int64, stats *parquetprune.Statistics) parquetprune.Domain {
	t.Helper()

	d, err := parquetprune.GetDomain(col, typ, rowCount, stats, testFile, time.UTC)
	require.NoError(t, err)

	return d
}

func assertDomain(t *testing.T, expected, actual parquetprune.Domain) {
	t.Helper()
	assert.True(t, expected.Equals(actual), "expected %s, got %s", expected, actual)
}

func TestBooleanDomain(t *testing.T) {
	col := newColumn("BooleanColumn", parquetprune.PhysicalBoolean)
	typ := parquetprune.PrimitiveTypes.Boolean

	assertDomain(t, parquetprune.AllDomain(typ), getDomain(t, col, typ, 0, nil))

	assertDomain(t, parquetprune.SingleValueDomain(typ, parquetprune.BoolLiteral(true), false),
		getDomain(t, col, typ, 10, newStats(encBool(true), encBool(true), 0)))
	assertDomain(t, parquetprune.SingleValueDomain(typ, parquetprune.BoolLiteral(false), false),
		getDomain(t, col, typ, 10, newStats(encBool(false), encBool(false), 0)))

	// both values present, nothing to exclude
	assertDomain(t, parquetprune.AllDomain(typ),
		getDomain(t, col, typ, 10, newStats(encBool(false), encBool(true), 0)))
}

func TestBigintDomain(t *testing.T) {
	col := newColumn("BigintColumn", parquetprune.PhysicalInt64)
	typ := parquetprune.PrimitiveTypes.Bigint

	assertDomain(t, parquetprune.AllDomain(typ), getDomain(t, col, typ, 0, nil))

	assertDomain(t, parquetprune.SingleValueDomain(typ, parquetprune.Int64Literal(100), false),
		getDomain(t, col, typ, 10, newStats(encInt64(100), encInt64(100), 0)))

	assertDomain(t,
		parquetprune.RangeDomain(typ, parquetprune.Int64Literal(0), parquetprune.Int64Literal(100), false),
		getDomain(t, col, typ, 10, newStats(encInt64(0), encInt64(100), 0)))

	assertDomain(t,
		parquetprune.RangeDomain(typ, parquetprune.Int64Literal(0), parquetprune.Int64Literal(100), true),
		getDomain(t, col, typ, 10, newStats(encInt64(0), encInt64(100), 3)))

	// no bounds, only a null count
	assertDomain(t, parquetprune.OnlyNullDomain(typ),
		getDomain(t, col, typ, 10, newStats(nil, nil, 10)))
	assertDomain(t, parquetprune.AllDomain(typ),
		getDomain(t, col, typ, 10, newStats(nil, nil, 5)))

	// a negative null count means the writer did not record one
	assertDomain(t, parquetprune.AllDomain(typ),
		getDomain(t, col, typ, 10, newStats(nil, nil, -1)))
	assertDomain(t,
		parquetprune.RangeDomain(typ, parquetprune.Int64Literal(0), parquetprune.Int64Literal(100), true),
		getDomain(t, col, typ, 10, newStats(encInt64(0), encInt64(100), -1)))
}

func TestBigintCorruptedStatistics(t *testing.T) {
	col := newColumn("BigintColumn", parquetprune.PhysicalInt64)

	_, err := parquetprune.GetDomain(col, parquetprune.PrimitiveTypes.Bigint, 10,
		newStats(encInt64(100), encInt64(10), 0), testFile, time.UTC)
	require.ErrorIs(t, err, parquetprune.ErrCorruptedStatistics)

	var corrupted *parquetprune.CorruptedStatisticsError
	require.ErrorAs(t, err, &corrupted)
	assert.Equal(t, testFile, corrupted.File)
	assert.Equal(t,
		`corrupted statistics for column "[] required int64 BigintColumn" in parquet file "testfile": [min: 100, max: 10, num_nulls: 0]`,
		err.Error())
}

func TestNarrowIntegerDomains(t *testing.T) {
	tests := []struct {
		name     string
		typ      parquetprune.Type
		overflow int64
	}{
		{"tinyint", parquetprune.PrimitiveTypes.Tinyint, 500},
		{"smallint", parquetprune.PrimitiveTypes.Smallint, math.MaxInt16 + 1},
		{"integer", parquetprune.PrimitiveTypes.Integer, math.MaxInt32 + 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col := newColumn("IntColumn", parquetprune.PhysicalInt64)

			assertDomain(t, parquetprune.SingleValueDomain(tc.typ, parquetprune.Int64Literal(100), false),
				getDomain(t, col, tc.typ, 10, newStats(encInt64(100), encInt64(100), 0)))

			assertDomain(t,
				parquetprune.RangeDomain(tc.typ, parquetprune.Int64Literal(0), parquetprune.Int64Literal(100), false),
				getDomain(t, col, tc.typ, 10, newStats(encInt64(0), encInt64(100), 0)))

			// bounds wider than the logical type are discarded, never clamped
			assertDomain(t, parquetprune.NotNullDomain(tc.typ),
				getDomain(t, col, tc.typ, 10, newStats(encInt64(0), encInt64(tc.overflow), 0)))
			assertDomain(t, parquetprune.AllDomain(tc.typ),
				getDomain(t, col, tc.typ, 10, newStats(encInt64(0), encInt64(tc.overflow), 2)))
		})
	}
}

func TestIntegerDomainFromInt32(t *testing.T) {
	col := newColumn("IntegerColumn", parquetprune.PhysicalInt32)
	typ := parquetprune.PrimitiveTypes.Integer

	assertDomain(t,
		parquetprune.RangeDomain(typ, parquetprune.Int64Literal(-10), parquetprune.Int64Literal(100), false),
		getDomain(t, col, typ, 10, newStats(encInt32(-10), encInt32(100), 0)))

	_, err := parquetprune.GetDomain(col, typ, 10,
		newStats(encInt32(100), encInt32(10), 0), testFile, time.UTC)
	require.ErrorIs(t, err, parquetprune.ErrCorruptedStatistics)
}

func TestDateDomain(t *testing.T) {
	col := newColumn("DateColumn", parquetprune.PhysicalInt32)
	typ := parquetprune.PrimitiveTypes.Date

	assertDomain(t, parquetprune.SingleValueDomain(typ, parquetprune.Int64Literal(18737), false),
		getDomain(t, col, typ, 10, newStats(encInt32(18737), encInt32(18737), 0)))

	assertDomain(t,
		parquetprune.RangeDomain(typ, parquetprune.Int64Literal(0), parquetprune.Int64Literal(18737), true),
		getDomain(t, col, typ, 10, newStats(encInt32(0), encInt32(18737), 1)))
}

func TestRealDomain(t *testing.T) {
	col := newColumn("RealColumn", parquetprune.PhysicalFloat)
	typ := parquetprune.PrimitiveTypes.Real

	assertDomain(t, parquetprune.SingleValueDomain(typ, parquetprune.Float32Literal(42.24), false),
		getDomain(t, col, typ, 10, newStats(encFloat32(42.24), encFloat32(42.24), 0)))

	assertDomain(t,
		parquetprune.RangeDomain(typ, parquetprune.Float32Literal(3.14), parquetprune.Float32Literal(42.24), true),
		getDomain(t, col, typ, 10, newStats(encFloat32(3.14), encFloat32(42.24), 2)))

	nan := float32(math.NaN())
	assertDomain(t, parquetprune.NotNullDomain(typ),
		getDomain(t, col, typ, 10, newStats(encFloat32(nan), encFloat32(nan), 0)))
	assertDomain(t, parquetprune.AllDomain(typ),
		getDomain(t, col, typ, 10, newStats(encFloat32(nan), encFloat32(nan), 1)))
	assertDomain(t, parquetprune.NotNullDomain(typ),
		getDomain(t, col, typ, 10, newStats(encFloat32(3.14), encFloat32(nan), 0)))

	_, err := parquetprune.GetDomain(col, typ, 10,
		newStats(encFloat32(42.24), encFloat32(3.14), 0), testFile, time.UTC)
	require.ErrorIs(t, err, parquetprune.ErrCorruptedStatistics)
}

func TestDoubleDomain(t *testing.T) {
	col := newColumn("DoubleColumn", parquetprune.PhysicalDouble)
	typ := parquetprune.PrimitiveTypes.Double

	assertDomain(t, parquetprune.SingleValueDomain(typ, parquetprune.Float64Literal(42.24), false),
		getDomain(t, col, typ, 10, newStats(encFloat64(42.24), encFloat64(42.24), 0)))

	assertDomain(t,
		parquetprune.RangeDomain(typ, parquetprune.Float64Literal(3.14), parquetprune.Float64Literal(42.24), false),
		getDomain(t, col, typ, 10, newStats(encFloat64(3.14), encFloat64(42.24), 0)))

	nan := math.NaN()
	assertDomain(t, parquetprune.NotNullDomain(typ),
		getDomain(t, col, typ, 10, newStats(encFloat64(nan), encFloat64(nan), 0)))
	assertDomain(t, parquetprune.AllDomain(typ),
		getDomain(t, col, typ, 10, newStats(encFloat64(nan), encFloat64(nan), 1)))

	_, err := parquetprune.GetDomain(col, typ, 10,
		newStats(encFloat64(42.24), encFloat64(10.0245), 0), testFile, time.UTC)
	require.ErrorIs(t, err, parquetprune.ErrCorruptedStatistics)
}

func TestVarcharDomain(t *testing.T) {
	col := newColumn("StringColumn", parquetprune.PhysicalByteArray)
	typ := parquetprune.PrimitiveTypes.Varchar

	assertDomain(t, parquetprune.SingleValueDomain(typ, parquetprune.StringLiteral("taco"), false),
		getDomain(t, col, typ, 10, newStats([]byte("taco"), []byte("taco"), 0)))

	assertDomain(t,
		parquetprune.RangeDomain(typ, parquetprune.StringLiteral("apple"), parquetprune.StringLiteral("banana"), false),
		getDomain(t, col, typ, 10, newStats([]byte("apple"), []byte("banana"), 0)))

	// byte order, not collation: multi-byte UTF-8 sorts after ASCII
	assertDomain(t,
		parquetprune.RangeDomain(typ, parquetprune.StringLiteral("apple"), parquetprune.StringLiteral("あ"), false),
		getDomain(t, col, typ, 10, newStats([]byte("apple"), []byte("あ"), 0)))

	_, err := parquetprune.GetDomain(col, typ, 10,
		newStats([]byte("zzz"), []byte("aaa"), 0), testFile, time.UTC)
	require.ErrorIs(t, err, parquetprune.ErrCorruptedStatistics)

	var corrupted *parquetprune.CorruptedStatisticsError
	require.ErrorAs(t, err, &corrupted)
	assert.Equal(t, "0x7A7A7A", corrupted.Min)
	assert.Equal(t, "0x616161", corrupted.Max)
}

func TestVarbinaryDomain(t *testing.T) {
	col := newColumn("BinaryColumn", parquetprune.PhysicalByteArray)
	typ := parquetprune.PrimitiveTypes.Varbinary

	assertDomain(t,
		parquetprune.SingleValueDomain(typ, parquetprune.BinaryLiteral([]byte{0xCA, 0xFE}), true),
		getDomain(t, col, typ, 10, newStats([]byte{0xCA, 0xFE}, []byte{0xCA, 0xFE}, 1)))

	assertDomain(t,
		parquetprune.RangeDomain(typ,
			parquetprune.BinaryLiteral([]byte{0x01}), parquetprune.BinaryLiteral([]byte{0xFF}), false),
		getDomain(t, col, typ, 10, newStats([]byte{0x01}, []byte{0xFF}, 0)))
}

func TestUUIDDomain(t *testing.T) {
	col := newColumn("UUIDColumn", parquetprune.PhysicalFixedLenByteArray)
	col.TypeLength = 16
	typ := parquetprune.PrimitiveTypes.UUID

	lo := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	hi := uuid.MustParse("f0000000-0000-0000-0000-000000000000")

	assertDomain(t, parquetprune.SingleValueDomain(typ, parquetprune.UUIDLiteral(lo), false),
		getDomain(t, col, typ, 10, newStats(lo[:], lo[:], 0)))

	assertDomain(t,
		parquetprune.RangeDomain(typ, parquetprune.UUIDLiteral(lo), parquetprune.UUIDLiteral(hi), false),
		getDomain(t, col, typ, 10, newStats(lo[:], hi[:], 0)))

	_, err := parquetprune.GetDomain(col, typ, 10, newStats(hi[:], lo[:], 0), testFile, time.UTC)
	require.ErrorIs(t, err, parquetprune.ErrCorruptedStatistics)
}

func TestShortDecimalDomain(t *testing.T) {
	typ := parquetprune.DecimalTypeOf(5, 2)

	for _, tc := range []struct {
		name string
		col  *parquetprune.ColumnDescriptor
		enc  func(int64) []byte
	}{
		{"int32", newColumn("ShortDecimalColumn", parquetprune.PhysicalInt32),
			func(v int64) []byte { return encInt32(int32(v)) }},
		{"int64", newColumn("ShortDecimalColumn", parquetprune.PhysicalInt64), encInt64},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// unscaled 10012 at scale 2 is 100.12
			single := parquetprune.DecimalLiteral{Val: decimal128.FromI64(10012), Scale: 2}
			assertDomain(t, parquetprune.SingleValueDomain(typ, single, false),
				getDomain(t, tc.col, typ, 10, newStats(tc.enc(10012), tc.enc(10012), 0)))

			assertDomain(t,
				parquetprune.RangeDomain(typ,
					parquetprune.DecimalLiteral{Val: decimal128.FromI64(-5000), Scale: 2},
					parquetprune.DecimalLiteral{Val: decimal128.FromI64(10012), Scale: 2}, false),
				getDomain(t, tc.col, typ, 10, newStats(tc.enc(-5000), tc.enc(10012), 0)))

			// unscaled 100012 does not fit decimal(5, 2)
			assertDomain(t, parquetprune.NotNullDomain(typ),
				getDomain(t, tc.col, typ, 10, newStats(tc.enc(0), tc.enc(100012), 0)))
			assertDomain(t, parquetprune.AllDomain(typ),
				getDomain(t, tc.col, typ, 10, newStats(tc.enc(0), tc.enc(100012), 1)))

			_, err := parquetprune.GetDomain(tc.col, typ, 10,
				newStats(tc.enc(100), tc.enc(10), 0), testFile, time.UTC)
			require.ErrorIs(t, err, parquetprune.ErrCorruptedStatistics)
		})
	}
}

func TestLongDecimalDomain(t *testing.T) {
	col := newColumn("LongDecimalColumn", parquetprune.PhysicalByteArray)
	typ := parquetprune.DecimalTypeOf(38, 2)

	enc := func(v int64) []byte { return encUnscaled(big.NewInt(v)) }

	assertDomain(t,
		parquetprune.SingleValueDomain(typ,
			parquetprune.DecimalLiteral{Val: decimal128.FromI64(10012), Scale: 2}, false),
		getDomain(t, col, typ, 10, newStats(enc(10012), enc(10012), 0)))

	assertDomain(t,
		parquetprune.RangeDomain(typ,
			parquetprune.DecimalLiteral{Val: decimal128.FromI64(-10012), Scale: 2},
			parquetprune.DecimalLiteral{Val: decimal128.FromI64(10012), Scale: 2}, false),
		getDomain(t, col, typ, 10, newStats(enc(-10012), enc(10012), 0)))

	// bounds exceeding the declared precision are not used
	narrow := parquetprune.DecimalTypeOf(5, 2)
	assertDomain(t, parquetprune.NotNullDomain(narrow),
		getDomain(t, col, narrow, 10, newStats(enc(0), enc(100012), 0)))

	// min > max, rendered in hex
	_, err := parquetprune.GetDomain(col, typ, 10,
		newStats(enc(100), enc(10), 0), testFile, time.UTC)
	require.ErrorIs(t, err, parquetprune.ErrCorruptedStatistics)

	var corrupted *parquetprune.CorruptedStatisticsError
	require.ErrorAs(t, err, &corrupted)
	assert.Equal(t, "0x64", corrupted.Min)
	assert.Equal(t, "0x0A", corrupted.Max)
}

func TestTimestampInt96Domain(t *testing.T) {
	col := newColumn("TimestampColumn", parquetprune.PhysicalInt96)
	base := time.Date(2021, 4, 20, 7, 3, 33, 123456789, time.UTC)
	baseMicros := base.UnixMicro() - 123456 // second boundary in micros

	tests := []struct {
		precision int
		expected  parquetprune.Literal
	}{
		{3, parquetprune.TimestampLiteral(baseMicros + 123000)},
		{6, parquetprune.TimestampLiteral(baseMicros + 123457)},
		{9, parquetprune.LongTimestampLiteral{Micros: baseMicros + 123456, PicosOfMicro: 789000}},
	}

	for _, tc := range tests {
		typ := parquetprune.TimestampTypeOf(tc.precision)
		t.Run(typ.String(), func(t *testing.T) {
			assertDomain(t, parquetprune.SingleValueDomain(typ, tc.expected, false),
				getDomain(t, col, typ, 10, newStats(encInt96(base), encInt96(base), 0)))

			// distinct bounds are not chronologically ordered and are discarded
			later := encInt96(base.Add(time.Hour))
			assertDomain(t, parquetprune.NotNullDomain(typ),
				getDomain(t, col, typ, 10, newStats(encInt96(base), later, 0)))
			assertDomain(t, parquetprune.AllDomain(typ),
				getDomain(t, col, typ, 10, newStats(encInt96(base), later, 2)))
		})
	}
}

func TestTimestampInt64Domain(t *testing.T) {
	const (
		millis = int64(1618902213123)
		micros = int64(1618902213123456)
		nanos  = int64(1618902213123456789)
	)

	tests := []struct {
		name      string
		unit      parquetprune.TimeUnit
		stored    int64
		precision int
		expected  parquetprune.Literal
	}{
		{"millis to 3", parquetprune.TimeUnitMillis, millis, 3, parquetprune.TimestampLiteral(millis * 1000)},
		{"millis to 6", parquetprune.TimeUnitMillis, millis, 6, parquetprune.TimestampLiteral(millis * 1000)},
		{"millis to 9", parquetprune.TimeUnitMillis, millis, 9,
			parquetprune.LongTimestampLiteral{Micros: millis * 1000, PicosOfMicro: 0}},

		{"micros to 3", parquetprune.TimeUnitMicros, micros, 3, parquetprune.TimestampLiteral(millis * 1000)},
		{"micros to 6", parquetprune.TimeUnitMicros, micros, 6, parquetprune.TimestampLiteral(micros)},
		{"micros to 9", parquetprune.TimeUnitMicros, micros, 9,
			parquetprune.LongTimestampLiteral{Micros: micros, PicosOfMicro: 0}},

		{"nanos to 3", parquetprune.TimeUnitNanos, nanos, 3, parquetprune.TimestampLiteral(millis * 1000)},
		// 456789 nanos of the millisecond round up at microsecond precision
		{"nanos to 6", parquetprune.TimeUnitNanos, nanos, 6, parquetprune.TimestampLiteral(micros + 1)},
		{"nanos to 9", parquetprune.TimeUnitNanos, nanos, 9,
			parquetprune.LongTimestampLiteral{Micros: micros, PicosOfMicro: 789000}},

		// precisions finer than the physical unit keep the value exact
		{"millis to 12", parquetprune.TimeUnitMillis, millis, 12,
			parquetprune.LongTimestampLiteral{Micros: millis * 1000, PicosOfMicro: 0}},
		{"micros to 11", parquetprune.TimeUnitMicros, micros, 11,
			parquetprune.LongTimestampLiteral{Micros: micros, PicosOfMicro: 0}},
		{"nanos to 10", parquetprune.TimeUnitNanos, nanos, 10,
			parquetprune.LongTimestampLiteral{Micros: micros, PicosOfMicro: 789000}},
		{"nanos to 12", parquetprune.TimeUnitNanos, nanos, 12,
			parquetprune.LongTimestampLiteral{Micros: micros, PicosOfMicro: 789000}},
		// 999 nanos of the microsecond round up and carry into the micros
		{"nanos rounds up at 7", parquetprune.TimeUnitNanos, nanos + 210, 7,
			parquetprune.LongTimestampLiteral{Micros: micros + 1, PicosOfMicro: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col := newColumn("TimestampColumn", parquetprune.PhysicalInt64)
			col.TimeUnit = tc.unit
			typ := parquetprune.TimestampTypeOf(tc.precision)

			assertDomain(t, parquetprune.SingleValueDomain(typ, tc.expected, false),
				getDomain(t, col, typ, 10, newStats(encInt64(tc.stored), encInt64(tc.stored), 0)))
		})
	}

	t.Run("range preserves order", func(t *testing.T) {
		col := newColumn("TimestampColumn", parquetprune.PhysicalInt64)
		col.TimeUnit = parquetprune.TimeUnitNanos
		typ := parquetprune.TimestampTypeOf(6)

		d := getDomain(t, col, typ, 10, newStats(encInt64(nanos), encInt64(nanos+5_000_000), 0))
		assertDomain(t, parquetprune.RangeDomain(typ,
			parquetprune.TimestampLiteral(micros+1),
			parquetprune.TimestampLiteral(micros+5001), false), d)
	})

	t.Run("missing unit annotation", func(t *testing.T) {
		col := newColumn("TimestampColumn", parquetprune.PhysicalInt64)

		_, err := parquetprune.NewDomainBuilder(col, parquetprune.TimestampTypeOf(6), time.UTC)
		require.ErrorIs(t, err, parquetprune.ErrType)
	})
}

func TestPhysicalTypeMismatch(t *testing.T) {
	col := newColumn("StringColumn", parquetprune.PhysicalByteArray)

	_, err := parquetprune.NewDomainBuilder(col, parquetprune.PrimitiveTypes.Bigint, time.UTC)
	require.ErrorIs(t, err, parquetprune.ErrType)
}

func TestMalformedStatisticsPayload(t *testing.T) {
	col := newColumn("BigintColumn", parquetprune.PhysicalInt64)

	// a truncated bound decodes to nothing and is reported as corruption
	_, err := parquetprune.GetDomain(col, parquetprune.PrimitiveTypes.Bigint, 10,
		newStats([]byte{0x01, 0x02}, encInt64(10), 0), testFile, time.UTC)
	require.ErrorIs(t, err, parquetprune.ErrCorruptedStatistics)

	// a lone bound is structurally invalid
	_, err = parquetprune.GetDomain(col, parquetprune.PrimitiveTypes.Bigint, 10,
		&parquetprune.Statistics{Min: encInt64(10)}, testFile, time.UTC)
	require.ErrorIs(t, err, parquetprune.ErrCorruptedStatistics)
}
