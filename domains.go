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
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/google/uuid"
)

// DomainBuilder turns a column's raw block statistics into a Domain under the
// column's logical type. The (physical, logical) type dispatch is resolved
// once at construction and reused for every block of the column.
//
// Builders hold no mutable state: a single builder may be used concurrently
// across blocks.
type DomainBuilder struct {
	col *ColumnDescriptor
	typ Type
	loc *time.Location

	bounds    func(file string, stats *Statistics, nullAllowed bool) (Domain, error)
	value     func(raw []byte) (Literal, error)
	decodeInt func(data []byte) (int64, error)
}

// NewDomainBuilder resolves the decode and conversion policy for the given
// column and logical type. The location is used only when decoding INT96
// legacy timestamps, whose encoding carries no zone of its own.
func NewDomainBuilder(col *ColumnDescriptor, typ Type, loc *time.Location) (*DomainBuilder, error) {
	b := &DomainBuilder{col: col, typ: typ, loc: loc}

	switch t := typ.(type) {
	case BooleanType:
		if col.PhysicalType != PhysicalBoolean {
			return nil, b.mismatch()
		}
		b.bounds, b.value = b.booleanBounds, b.booleanValue
	case TinyintType, SmallintType, IntegerType, BigintType, DateType:
		if err := b.resolveIntDecode(); err != nil {
			return nil, err
		}
		b.bounds, b.value = b.integerBounds, b.integerValue
	case RealType:
		if col.PhysicalType != PhysicalFloat {
			return nil, b.mismatch()
		}
		b.bounds, b.value = b.realBounds, b.realValue
	case DoubleType:
		if col.PhysicalType != PhysicalDouble {
			return nil, b.mismatch()
		}
		b.bounds, b.value = b.doubleBounds, b.doubleValue
	case DecimalType:
		switch col.PhysicalType {
		case PhysicalInt32, PhysicalInt64:
			if err := b.resolveIntDecode(); err != nil {
				return nil, err
			}
			b.bounds, b.value = b.shortDecimalBounds, b.shortDecimalValue
		case PhysicalByteArray, PhysicalFixedLenByteArray:
			b.bounds, b.value = b.longDecimalBounds, b.longDecimalValue
		default:
			return nil, b.mismatch()
		}
	case VarcharType, CharType:
		if col.PhysicalType != PhysicalByteArray && col.PhysicalType != PhysicalFixedLenByteArray {
			return nil, b.mismatch()
		}
		b.bounds, b.value = b.stringBounds, b.stringValue
	case VarbinaryType:
		if col.PhysicalType != PhysicalByteArray && col.PhysicalType != PhysicalFixedLenByteArray {
			return nil, b.mismatch()
		}
		b.bounds, b.value = b.binaryBounds, b.binaryValue
	case UUIDType:
		if col.PhysicalType != PhysicalFixedLenByteArray || col.TypeLength != 16 {
			return nil, b.mismatch()
		}
		b.bounds, b.value = b.uuidBounds, b.uuidValue
	case TimestampType:
		switch col.PhysicalType {
		case PhysicalInt96:
			b.bounds, b.value = b.int96TimestampBounds, b.int96Value
		case PhysicalInt64:
			if col.TimeUnit == TimeUnitNone {
				return nil, fmt.Errorf("%w: int64 timestamp column %s has no time unit annotation",
					ErrType, col.Name)
			}
			b.decodeInt = decodeInt64
			b.bounds, b.value = b.int64TimestampBounds, b.int64TimestampValue
		default:
			return nil, b.mismatch()
		}
	default:
		return nil, fmt.Errorf("%w: unsupported logical type %s", ErrType, t)
	}

	return b, nil
}

func (b *DomainBuilder) mismatch() error {
	return fmt.Errorf("%w: cannot read %s column from %s storage",
		ErrType, b.typ, b.col.PhysicalType)
}

func (b *DomainBuilder) resolveIntDecode() error {
	switch b.col.PhysicalType {
	case PhysicalInt32:
		b.decodeInt = decodeInt32
	case PhysicalInt64:
		b.decodeInt = decodeInt64
	default:
		return b.mismatch()
	}

	return nil
}

// Build produces the Domain of all values consistent with the observed block
// statistics. Missing statistics and expected precision loss degrade to a
// conservative domain; internally inconsistent statistics (min > max) return
// a CorruptedStatisticsError identifying the file and column.
func (b *DomainBuilder) Build(file string, rowCount int64, stats *Statistics) (Domain, error) {
	if stats.IsEmpty() {
		return AllDomain(b.typ), nil
	}

	if !stats.hasMinMax() {
		if stats.Min != nil || stats.Max != nil {
			// structurally invalid: a writer never emits just one bound
			return Domain{}, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
		}
		if rowCount > 0 && stats.NullCount == rowCount {
			return OnlyNullDomain(b.typ), nil
		}

		return allOrNotNull(b.typ, stats.NullCount != 0), nil
	}

	// a negative null count means the writer recorded none; assume nulls exist
	return b.bounds(file, stats, stats.NullCount != 0)
}

// DecodeValue decodes a single raw value payload (e.g. one dictionary entry)
// into a literal of the column's logical type.
func (b *DomainBuilder) DecodeValue(raw []byte) (Literal, error) {
	return b.value(raw)
}

func (b *DomainBuilder) corrupt(file string, stats *Statistics, minRepr, maxRepr string) error {
	return corruptStats(file, b.col, minRepr, maxRepr, stats.NullCount)
}

func rawRepr(data []byte) string {
	return BinaryLiteral(data).String()
}

func (b *DomainBuilder) booleanBounds(file string, stats *Statistics, nullAllowed bool) (Domain, error) {
	minV, err := decodeBoolean(stats.Min)
	if err != nil {
		return Domain{}, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	}
	maxV, err := decodeBoolean(stats.Max)
	if err != nil {
		return Domain{}, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	}

	hasTrue := minV || maxV
	hasFalse := !minV || !maxV
	if hasTrue && hasFalse {
		// both values possible, nothing to prune
		return AllDomain(b.typ), nil
	}

	return SingleValueDomain(b.typ, BoolLiteral(hasTrue), nullAllowed), nil
}

func (b *DomainBuilder) booleanValue(raw []byte) (Literal, error) {
	v, err := decodeBoolean(raw)
	if err != nil {
		return nil, err
	}

	return BoolLiteral(v), nil
}

func (b *DomainBuilder) integerBounds(file string, stats *Statistics, nullAllowed bool) (Domain, error) {
	lo, hi, err := b.decodeIntBounds(file, stats)
	if err != nil {
		return Domain{}, err
	}
	if lo > hi {
		return Domain{}, b.corrupt(file, stats,
			Int64Literal(lo).String(), Int64Literal(hi).String())
	}

	if typMin, typMax, bounded := integerBounds(b.typ); bounded && (lo < typMin || hi > typMax) {
		// the on-disk statistics were computed over the wider physical domain;
		// the bounds cannot be trusted for this logical type and must not be
		// clamped
		return allOrNotNull(b.typ, nullAllowed), nil
	}

	if lo == hi {
		return SingleValueDomain(b.typ, Int64Literal(lo), nullAllowed), nil
	}

	return RangeDomain(b.typ, Int64Literal(lo), Int64Literal(hi), nullAllowed), nil
}

func (b *DomainBuilder) decodeIntBounds(file string, stats *Statistics) (lo, hi int64, err error) {
	lo, err = b.decodeInt(stats.Min)
	if err != nil {
		return 0, 0, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	}
	hi, err = b.decodeInt(stats.Max)
	if err != nil {
		return 0, 0, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	}

	return lo, hi, nil
}

func (b *DomainBuilder) integerValue(raw []byte) (Literal, error) {
	v, err := b.decodeInt(raw)
	if err != nil {
		return nil, err
	}

	return Int64Literal(v), nil
}

func (b *DomainBuilder) realBounds(file string, stats *Statistics, nullAllowed bool) (Domain, error) {
	minV, err := decodeFloat32(stats.Min)
	if err != nil {
		return Domain{}, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	}
	maxV, err := decodeFloat32(stats.Max)
	if err != nil {
		return Domain{}, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	}

	if d, degraded := nanDegradedDomain(b.typ,
		isNaNLiteral(Float32Literal(minV)), isNaNLiteral(Float32Literal(maxV)), nullAllowed); degraded {
		return d, nil
	}

	if minV > maxV {
		return Domain{}, b.corrupt(file, stats,
			Float32Literal(minV).String(), Float32Literal(maxV).String())
	}

	if minV == maxV {
		return SingleValueDomain(b.typ, Float32Literal(minV), nullAllowed), nil
	}

	return RangeDomain(b.typ, Float32Literal(minV), Float32Literal(maxV), nullAllowed), nil
}

func (b *DomainBuilder) realValue(raw []byte) (Literal, error) {
	v, err := decodeFloat32(raw)
	if err != nil {
		return nil, err
	}

	return Float32Literal(v), nil
}

func (b *DomainBuilder) doubleBounds(file string, stats *Statistics, nullAllowed bool) (Domain, error) {
	minV, err := decodeFloat64(stats.Min)
	if err != nil {
		return Domain{}, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	}
	maxV, err := decodeFloat64(stats.Max)
	if err != nil {
		return Domain{}, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	}

	if d, degraded := nanDegradedDomain(b.typ,
		isNaNLiteral(Float64Literal(minV)), isNaNLiteral(Float64Literal(maxV)), nullAllowed); degraded {
		return d, nil
	}

	if minV > maxV {
		return Domain{}, b.corrupt(file, stats,
			Float64Literal(minV).String(), Float64Literal(maxV).String())
	}

	if minV == maxV {
		return SingleValueDomain(b.typ, Float64Literal(minV), nullAllowed), nil
	}

	return RangeDomain(b.typ, Float64Literal(minV), Float64Literal(maxV), nullAllowed), nil
}

func (b *DomainBuilder) doubleValue(raw []byte) (Literal, error) {
	v, err := decodeFloat64(raw)
	if err != nil {
		return nil, err
	}

	return Float64Literal(v), nil
}

// nanDegradedDomain applies the three-way NaN policy for floating point
// bounds. NaN comparisons are unordered, so a bound pair touched by NaN
// proves nothing about values; only the null count remains usable.
func nanDegradedDomain(typ Type, minNaN, maxNaN, nullAllowed bool) (Domain, bool) {
	switch {
	case minNaN && maxNaN && !nullAllowed:
		return NotNullDomain(typ), true
	case minNaN && maxNaN:
		return AllDomain(typ), true
	case minNaN || maxNaN:
		// a single NaN bound still invalidates the pair
		return allOrNotNull(typ, nullAllowed), true
	}

	return Domain{}, false
}

func (b *DomainBuilder) shortDecimalBounds(file string, stats *Statistics, nullAllowed bool) (Domain, error) {
	lo, hi, err := b.decodeIntBounds(file, stats)
	if err != nil {
		return Domain{}, err
	}
	if lo > hi {
		return Domain{}, b.corrupt(file, stats,
			Int64Literal(lo).String(), Int64Literal(hi).String())
	}

	dt := b.typ.(DecimalType)
	minNum, maxNum := decimal128.FromI64(lo), decimal128.FromI64(hi)
	if !minNum.FitsInPrecision(int32(dt.precision)) || !maxNum.FitsInPrecision(int32(dt.precision)) {
		// statistics overflowing the size of the type are not used
		return allOrNotNull(b.typ, nullAllowed), nil
	}

	minDec := DecimalLiteral{Val: minNum, Scale: dt.scale}
	if lo == hi {
		return SingleValueDomain(b.typ, minDec, nullAllowed), nil
	}

	return RangeDomain(b.typ, minDec, DecimalLiteral{Val: maxNum, Scale: dt.scale}, nullAllowed), nil
}

func (b *DomainBuilder) shortDecimalValue(raw []byte) (Literal, error) {
	v, err := b.decodeInt(raw)
	if err != nil {
		return nil, err
	}
	dt := b.typ.(DecimalType)

	return DecimalLiteral{Val: decimal128.FromI64(v), Scale: dt.scale}, nil
}

func (b *DomainBuilder) longDecimalBounds(file string, stats *Statistics, nullAllowed bool) (Domain, error) {
	dt := b.typ.(DecimalType)
	minNum, minOK := decodeUnscaledDecimal(stats.Min)
	maxNum, maxOK := decodeUnscaledDecimal(stats.Max)
	if !minOK || !maxOK {
		// magnitude exceeds 128 bits, necessarily wider than any precision we
		// can check against
		return allOrNotNull(b.typ, nullAllowed), nil
	}

	if minNum.Cmp(maxNum) > 0 {
		return Domain{}, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	}

	if !minNum.FitsInPrecision(int32(dt.precision)) || !maxNum.FitsInPrecision(int32(dt.precision)) {
		return allOrNotNull(b.typ, nullAllowed), nil
	}

	minDec := DecimalLiteral{Val: minNum, Scale: dt.scale}
	if minNum == maxNum {
		return SingleValueDomain(b.typ, minDec, nullAllowed), nil
	}

	return RangeDomain(b.typ, minDec, DecimalLiteral{Val: maxNum, Scale: dt.scale}, nullAllowed), nil
}

func (b *DomainBuilder) longDecimalValue(raw []byte) (Literal, error) {
	num, ok := decodeUnscaledDecimal(raw)
	if !ok {
		return nil, fmt.Errorf("%w: unscaled decimal exceeds 128 bits", ErrInvalidBinSerialization)
	}
	dt := b.typ.(DecimalType)

	return DecimalLiteral{Val: num, Scale: dt.scale}, nil
}

func (b *DomainBuilder) stringBounds(file string, stats *Statistics, nullAllowed bool) (Domain, error) {
	if c := bytes.Compare(stats.Min, stats.Max); c > 0 {
		return Domain{}, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	} else if c == 0 {
		return SingleValueDomain(b.typ, StringLiteral(stats.Min), nullAllowed), nil
	}

	return RangeDomain(b.typ, StringLiteral(stats.Min), StringLiteral(stats.Max), nullAllowed), nil
}

func (b *DomainBuilder) stringValue(raw []byte) (Literal, error) {
	return StringLiteral(raw), nil
}

func (b *DomainBuilder) binaryBounds(file string, stats *Statistics, nullAllowed bool) (Domain, error) {
	if c := bytes.Compare(stats.Min, stats.Max); c > 0 {
		return Domain{}, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	} else if c == 0 {
		return SingleValueDomain(b.typ, BinaryLiteral(stats.Min), nullAllowed), nil
	}

	return RangeDomain(b.typ, BinaryLiteral(stats.Min), BinaryLiteral(stats.Max), nullAllowed), nil
}

func (b *DomainBuilder) binaryValue(raw []byte) (Literal, error) {
	return BinaryLiteral(raw), nil
}

func (b *DomainBuilder) uuidBounds(file string, stats *Statistics, nullAllowed bool) (Domain, error) {
	minV, err := b.uuidValue(stats.Min)
	if err != nil {
		return Domain{}, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	}
	maxV, err := b.uuidValue(stats.Max)
	if err != nil {
		return Domain{}, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	}

	if c := bytes.Compare(stats.Min, stats.Max); c > 0 {
		return Domain{}, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	} else if c == 0 {
		return SingleValueDomain(b.typ, minV, nullAllowed), nil
	}

	return RangeDomain(b.typ, minV, maxV, nullAllowed), nil
}

func (b *DomainBuilder) uuidValue(raw []byte) (Literal, error) {
	v, err := uuid.FromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidBinSerialization, err)
	}

	return UUIDLiteral(v), nil
}

func (b *DomainBuilder) int96TimestampBounds(file string, stats *Statistics, nullAllowed bool) (Domain, error) {
	if !bytes.Equal(stats.Min, stats.Max) {
		// the binary order of INT96 encodings does not track chronological
		// order, so only an exact-match bound pair is usable
		return allOrNotNull(b.typ, nullAllowed), nil
	}

	lit, err := b.int96Value(stats.Min)
	if err != nil {
		return Domain{}, b.corrupt(file, stats, rawRepr(stats.Min), rawRepr(stats.Max))
	}

	return SingleValueDomain(b.typ, lit, nullAllowed), nil
}

func (b *DomainBuilder) int96Value(raw []byte) (Literal, error) {
	days, nanos, err := decodeInt96(raw)
	if err != nil {
		return nil, err
	}

	p := b.typ.(TimestampType).precision
	if p <= maxShortTimestampPrecision {
		scaled := divHalfUp(nanos, pow10(9-p))
		units := days*86_400*pow10(p) + scaled

		return TimestampLiteral(b.adjustZone(units * pow10(maxShortTimestampPrecision-p))), nil
	}

	micros := days*microsPerDay + floorDiv(nanos, 1000)
	picos := floorMod(nanos, 1000) * 1000
	if p < 9 {
		unit := pow10(12 - p)
		picos = divHalfUp(picos, unit) * unit
		if picos >= picosPerMicro {
			micros++
			picos -= picosPerMicro
		}
	}

	return LongTimestampLiteral{Micros: b.adjustZone(micros), PicosOfMicro: int32(picos)}, nil
}

// adjustZone reinterprets a wall-clock microsecond value decoded from the
// zoneless INT96 encoding as an instant in the caller's configured zone.
func (b *DomainBuilder) adjustZone(micros int64) int64 {
	if b.loc == nil || b.loc == time.UTC {
		return micros
	}

	t := time.UnixMicro(micros).UTC()
	wall := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		t.Nanosecond(), b.loc)

	return wall.UnixMicro()
}

func (b *DomainBuilder) int64TimestampBounds(file string, stats *Statistics, nullAllowed bool) (Domain, error) {
	lo, hi, err := b.decodeIntBounds(file, stats)
	if err != nil {
		return Domain{}, err
	}
	if lo > hi {
		return Domain{}, b.corrupt(file, stats,
			Int64Literal(lo).String(), Int64Literal(hi).String())
	}

	minLit := b.rescaleInt64Timestamp(lo)
	if lo == hi {
		return SingleValueDomain(b.typ, minLit, nullAllowed), nil
	}

	return RangeDomain(b.typ, minLit, b.rescaleInt64Timestamp(hi), nullAllowed), nil
}

func (b *DomainBuilder) int64TimestampValue(raw []byte) (Literal, error) {
	v, err := decodeInt64(raw)
	if err != nil {
		return nil, err
	}

	return b.rescaleInt64Timestamp(v), nil
}

// rescaleInt64Timestamp converts a stored integer in the column's physical
// time unit to the logical precision, rounding half up (ties away from zero)
// when the physical unit is finer than the logical precision. The epoch value
// is split into microseconds and a sub-microsecond remainder before any
// scaling; scaling the whole value into finer units would overflow int64 for
// precisions above nanoseconds.
func (b *DomainBuilder) rescaleInt64Timestamp(v int64) Literal {
	p := b.typ.(TimestampType).precision
	su := b.col.TimeUnit.precision()

	if p <= maxShortTimestampPrecision {
		if su > p {
			v = divHalfUp(v, pow10(su-p))
		} else {
			v *= pow10(p - su)
		}

		return TimestampLiteral(v * pow10(maxShortTimestampPrecision-p))
	}

	var micros, picos int64
	if su <= maxShortTimestampPrecision {
		micros = v * pow10(maxShortTimestampPrecision-su)
	} else {
		f := pow10(su - maxShortTimestampPrecision)
		micros = floorDiv(v, f)
		picos = floorMod(v, f) * pow10(MaxTimestampPrecision-su)
	}

	if p < MaxTimestampPrecision {
		unit := pow10(MaxTimestampPrecision - p)
		picos = divHalfUp(picos, unit) * unit
		if picos >= picosPerMicro {
			micros++
			picos -= picosPerMicro
		}
	}

	return LongTimestampLiteral{Micros: micros, PicosOfMicro: int32(picos)}
}

// GetDomain is a convenience wrapper resolving the dispatch and building a
// single block's Domain in one call. Callers evaluating many blocks of the
// same column should construct a DomainBuilder once instead.
func GetDomain(col *ColumnDescriptor, typ Type, rowCount int64, stats *Statistics, file string, loc *time.Location) (Domain, error) {
	b, err := NewDomainBuilder(col, typ, loc)
	if err != nil {
		return Domain{}, err
	}

	return b.Build(file, rowCount, stats)
}

// GetDictionaryDomain builds the exact value-set Domain of a dictionary page.
// Whenever the page cannot be decoded, or any entry is NaN (whose unordered
// comparisons make "no element matches" unprovable), the unconstrained domain
// is returned so that the block is never wrongly excluded.
func GetDictionaryDomain(typ Type, desc *DictionaryDescriptor, loc *time.Location) Domain {
	if desc == nil || desc.Page == nil {
		return AllDomain(typ)
	}

	b, err := NewDomainBuilder(desc.Column, typ, loc)
	if err != nil {
		return AllDomain(typ)
	}

	raws, err := splitDictionary(desc.Column, desc.Page)
	if err != nil {
		return AllDomain(typ)
	}

	vals := make([]Literal, 0, len(raws))
	for _, raw := range raws {
		lit, err := b.DecodeValue(raw)
		if err != nil {
			return AllDomain(typ)
		}
		if isNaNLiteral(lit) {
			return AllDomain(typ)
		}
		vals = append(vals, lit)
	}

	// dictionaries never encode nulls, but null rows may still reference no
	// entry at all, so null presence stays unknown
	return ValuesDomain(typ, vals, true)
}
