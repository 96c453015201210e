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
	"encoding/binary"
	"fmt"
	"math"
	"math/big"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
)

// Statistics is the raw per-block column summary handed over by the file
// reader: optional min/max byte payloads in the column's physical encoding
// plus the number of null rows. It is consumed once per block and never
// mutated by the engine.
type Statistics struct {
	Min, Max  []byte
	NullCount int64
}

// IsEmpty reports whether the block carries no statistics at all, in which
// case no pruning is possible for the column.
func (s *Statistics) IsEmpty() bool {
	return s == nil || (s.Min == nil && s.Max == nil && s.NullCount == 0)
}

func (s *Statistics) hasMinMax() bool { return s.Min != nil && s.Max != nil }

func decodeBoolean(data []byte) (bool, error) {
	if len(data) != 1 {
		return false, fmt.Errorf("%w: expected 1 byte for boolean value, got %d",
			ErrInvalidBinSerialization, len(data))
	}

	return data[0] != 0, nil
}

// decodeInt32 sign-extends the 4-byte little-endian payload to 64 bits; the
// narrower logical types are range-checked downstream rather than truncated.
func decodeInt32(data []byte) (int64, error) {
	if len(data) != 4 {
		return 0, fmt.Errorf("%w: expected 4 bytes for int32 value, got %d",
			ErrInvalidBinSerialization, len(data))
	}

	return int64(int32(binary.LittleEndian.Uint32(data))), nil
}

func decodeInt64(data []byte) (int64, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("%w: expected 8 bytes for int64 value, got %d",
			ErrInvalidBinSerialization, len(data))
	}

	return int64(binary.LittleEndian.Uint64(data)), nil
}

func decodeFloat32(data []byte) (float32, error) {
	if len(data) != 4 {
		return 0, fmt.Errorf("%w: expected 4 bytes for float value, got %d",
			ErrInvalidBinSerialization, len(data))
	}

	return math.Float32frombits(binary.LittleEndian.Uint32(data)), nil
}

func decodeFloat64(data []byte) (float64, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("%w: expected 8 bytes for double value, got %d",
			ErrInvalidBinSerialization, len(data))
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(data)), nil
}

// julianEpochOffsetDays is the Julian day number of the unix epoch
// (1970-01-01), the fixed offset used by the INT96 timestamp encoding.
const julianEpochOffsetDays = 2440588

const (
	microsPerSecond = 1_000_000
	microsPerDay    = 86_400 * microsPerSecond
	picosPerMicro   = 1_000_000
)

// decodeInt96 unpacks the legacy 12-byte timestamp encoding: an 8-byte
// little-endian nanosecond-of-day followed by a 4-byte little-endian Julian
// day number. The result is epoch microseconds plus the sub-microsecond
// remainder in picoseconds.
func decodeInt96(data []byte) (days int64, nanosOfDay int64, err error) {
	if len(data) != 12 {
		return 0, 0, fmt.Errorf("%w: expected 12 bytes for int96 value, got %d",
			ErrInvalidBinSerialization, len(data))
	}
	nanosOfDay = int64(binary.LittleEndian.Uint64(data[:8]))
	days = int64(int32(binary.LittleEndian.Uint32(data[8:]))) - julianEpochOffsetDays

	return days, nanosOfDay, nil
}

// decodeUnscaledDecimal interprets the payload as a two's-complement
// big-endian unscaled integer using the minimum number of bytes. ok is false
// when the magnitude exceeds 128 bits and cannot be represented.
func decodeUnscaledDecimal(data []byte) (decimal128.Num, bool) {
	if len(data) > 16 {
		return decimal128.Num{}, false
	}
	if len(data) == 0 {
		return decimal128.Num{}, true
	}

	if int8(data[0]) >= 0 {
		// not negative
		return decimal128.FromBigInt((&big.Int{}).SetBytes(data)), true
	}

	// convert two's complement and remember it's negative
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = ^b
	}
	out[len(out)-1] += 1

	value := (&big.Int{}).SetBytes(out)

	return decimal128.FromBigInt(value.Neg(value)), true
}

// DictionaryPage is a decoded-but-unparsed PLAIN dictionary: the concatenated
// entry payloads and the number of distinct entries.
type DictionaryPage struct {
	Data      []byte
	NumValues int
}

// DictionaryDescriptor pairs a column with its dictionary page, when one
// exists for the block.
type DictionaryDescriptor struct {
	Column *ColumnDescriptor
	Page   *DictionaryPage
}

// splitDictionary slices a PLAIN-encoded dictionary page into the raw payload
// of each distinct entry, using the column's physical type to determine entry
// boundaries. The returned slices alias the page buffer.
func splitDictionary(col *ColumnDescriptor, page *DictionaryPage) ([][]byte, error) {
	if page.NumValues < 0 {
		return nil, fmt.Errorf("%w: negative dictionary entry count %d",
			ErrInvalidBinSerialization, page.NumValues)
	}

	stride := 0
	switch col.PhysicalType {
	case PhysicalInt32, PhysicalFloat:
		stride = 4
	case PhysicalInt64, PhysicalDouble:
		stride = 8
	case PhysicalInt96:
		stride = 12
	case PhysicalFixedLenByteArray:
		stride = col.TypeLength
	case PhysicalByteArray:
		return splitByteArrayDictionary(page)
	default:
		return nil, fmt.Errorf("%w: no dictionary encoding for physical type %s",
			ErrType, col.PhysicalType)
	}

	if stride <= 0 || len(page.Data) < stride*page.NumValues {
		return nil, fmt.Errorf("%w: dictionary page too short for %d %s entries",
			ErrInvalidBinSerialization, page.NumValues, col.PhysicalType)
	}

	out := make([][]byte, page.NumValues)
	for i := range out {
		out[i] = page.Data[i*stride : (i+1)*stride]
	}

	return out, nil
}

func splitByteArrayDictionary(page *DictionaryPage) ([][]byte, error) {
	out := make([][]byte, 0, page.NumValues)
	data := page.Data
	for len(out) < page.NumValues {
		if len(data) < 4 {
			return nil, fmt.Errorf("%w: truncated dictionary entry length prefix",
				ErrInvalidBinSerialization)
		}
		n := int(binary.LittleEndian.Uint32(data))
		data = data[4:]
		if n < 0 || n > len(data) {
			return nil, fmt.Errorf("%w: dictionary entry length %d exceeds page size",
				ErrInvalidBinSerialization, n)
		}
		out = append(out, data[:n])
		data = data[n:]
	}

	return out, nil
}

// divHalfUp divides n by d rounding halfway cases away from zero, the
// deterministic tie-break used when coarsening timestamp precision.
func divHalfUp(n, d int64) int64 {
	q, r := n/d, n%d
	if r < 0 {
		r = -r
	}
	if 2*r >= d {
		if n < 0 {
			return q - 1
		}

		return q + 1
	}

	return q
}

func floorDiv(n, d int64) int64 {
	q := n / d
	if n%d != 0 && (n < 0) != (d < 0) {
		q--
	}

	return q
}

func floorMod(n, d int64) int64 {
	return n - floorDiv(n, d)*d
}

func pow10(n int) int64 {
	out := int64(1)
	for ; n > 0; n-- {
		out *= 10
	}

	return out
}
