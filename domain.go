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
	"slices"
	"strings"
)

// Range is a closed or half-open interval of values under the logical type's
// native ordering. A nil bound is unbounded on that side.
type Range struct {
	low, high                   Literal
	lowInclusive, highInclusive bool
}

// SingleValueRange returns the degenerate inclusive range [val, val].
func SingleValueRange(val Literal) Range {
	return Range{low: val, high: val, lowInclusive: true, highInclusive: true}
}

// BoundedRange returns the inclusive range [low, high].
func BoundedRange(low, high Literal) Range {
	return Range{low: low, high: high, lowInclusive: true, highInclusive: true}
}

// NewRange returns a range with explicit bound inclusivity. A nil bound is
// unbounded on that side and its inclusivity flag is ignored.
func NewRange(low Literal, lowInclusive bool, high Literal, highInclusive bool) Range {
	return Range{
		low:           low,
		high:          high,
		lowInclusive:  low != nil && lowInclusive,
		highInclusive: high != nil && highInclusive,
	}
}

func (r Range) IsSingleValue(cmp func(Literal, Literal) int) bool {
	return r.low != nil && r.high != nil &&
		r.lowInclusive && r.highInclusive && cmp(r.low, r.high) == 0
}

// isBefore reports whether r lies entirely below other with no overlap.
func (r Range) isBefore(other Range, cmp func(Literal, Literal) int) bool {
	if r.high == nil || other.low == nil {
		return false
	}

	c := cmp(r.high, other.low)
	if c != 0 {
		return c < 0
	}

	return !(r.highInclusive && other.lowInclusive)
}

func (r Range) containsValue(val Literal, cmp func(Literal, Literal) int) bool {
	if r.low != nil {
		c := cmp(val, r.low)
		if c < 0 || (c == 0 && !r.lowInclusive) {
			return false
		}
	}
	if r.high != nil {
		c := cmp(val, r.high)
		if c > 0 || (c == 0 && !r.highInclusive) {
			return false
		}
	}

	return true
}

func (r Range) equals(other Range, cmp func(Literal, Literal) int) bool {
	if r.lowInclusive != other.lowInclusive || r.highInclusive != other.highInclusive {
		return false
	}
	if (r.low == nil) != (other.low == nil) || (r.high == nil) != (other.high == nil) {
		return false
	}
	if r.low != nil && cmp(r.low, other.low) != 0 {
		return false
	}
	if r.high != nil && cmp(r.high, other.high) != 0 {
		return false
	}

	return true
}

// Domain describes the complete set of values a column may take, plus an
// orthogonal flag for whether null is among them. It is used both for query
// predicates and for summaries built from block statistics. The zero value is
// NONE: no values and no null.
type Domain struct {
	typ         Type
	ranges      []Range
	allValues   bool
	nullAllowed bool
}

// AllDomain is the unconstrained domain: every value, null included.
func AllDomain(typ Type) Domain {
	return Domain{typ: typ, allValues: true, nullAllowed: true}
}

// NoneDomain matches nothing, not even null.
func NoneDomain(typ Type) Domain {
	return Domain{typ: typ}
}

// NotNullDomain matches every non-null value.
func NotNullDomain(typ Type) Domain {
	return Domain{typ: typ, allValues: true}
}

// OnlyNullDomain matches only rows that are null.
func OnlyNullDomain(typ Type) Domain {
	return Domain{typ: typ, nullAllowed: true}
}

// allOrNotNull is the degraded-statistics domain: every value, nullability
// taken from the observed null count.
func allOrNotNull(typ Type, nullAllowed bool) Domain {
	return Domain{typ: typ, allValues: true, nullAllowed: nullAllowed}
}

// SingleValueDomain matches exactly one value, plus null when nullAllowed.
func SingleValueDomain(typ Type, val Literal, nullAllowed bool) Domain {
	return Domain{typ: typ, ranges: []Range{SingleValueRange(val)}, nullAllowed: nullAllowed}
}

// RangeDomain matches the inclusive range [low, high], plus null when
// nullAllowed. The caller is responsible for low <= high.
func RangeDomain(typ Type, low, high Literal, nullAllowed bool) Domain {
	return Domain{typ: typ, ranges: []Range{BoundedRange(low, high)}, nullAllowed: nullAllowed}
}

// NewRangeDomain matches the values between low and high with the given bound
// inclusivity, plus null when nullAllowed. A nil bound leaves that side
// unbounded; both bounds nil yields every non-null value. The caller is
// responsible for a non-empty interval.
func NewRangeDomain(typ Type, low Literal, lowInclusive bool, high Literal, highInclusive bool, nullAllowed bool) Domain {
	if low == nil && high == nil {
		return allOrNotNull(typ, nullAllowed)
	}

	return Domain{
		typ:         typ,
		ranges:      []Range{NewRange(low, lowInclusive, high, highInclusive)},
		nullAllowed: nullAllowed,
	}
}

// ValuesDomain matches exactly the given set of values, plus null when
// nullAllowed. Values are sorted and de-duplicated.
func ValuesDomain(typ Type, vals []Literal, nullAllowed bool) Domain {
	if len(vals) == 0 {
		return Domain{typ: typ, nullAllowed: nullAllowed}
	}

	cmp := getCmpLiteral(vals[0])
	sorted := slices.Clone(vals)
	slices.SortFunc(sorted, cmp)
	ranges := make([]Range, 0, len(sorted))
	for i, v := range sorted {
		if i > 0 && cmp(sorted[i-1], v) == 0 {
			continue
		}
		ranges = append(ranges, SingleValueRange(v))
	}

	return Domain{typ: typ, ranges: ranges, nullAllowed: nullAllowed}
}

func (d Domain) Type() Type        { return d.typ }
func (d Domain) NullAllowed() bool { return d.nullAllowed }

// IsAll reports whether the domain is fully unconstrained.
func (d Domain) IsAll() bool { return d.allValues && d.nullAllowed }

// IsNone reports whether the domain matches no rows at all.
func (d Domain) IsNone() bool { return !d.allValues && len(d.ranges) == 0 && !d.nullAllowed }

// IsOnlyNull reports whether the domain matches only null rows.
func (d Domain) IsOnlyNull() bool { return !d.allValues && len(d.ranges) == 0 && d.nullAllowed }

// IsSingleValue reports whether the domain holds exactly one non-null value.
func (d Domain) IsSingleValue() bool {
	if d.allValues || len(d.ranges) != 1 {
		return false
	}

	r := d.ranges[0]
	if r.low == nil || r.high == nil {
		return false
	}

	return r.IsSingleValue(getCmpLiteral(r.low))
}

func (d Domain) hasAnyValue() bool { return d.allValues || len(d.ranges) > 0 }

// ContainsValue reports whether the given non-null value lies in the domain.
func (d Domain) ContainsValue(val Literal) bool {
	if d.allValues {
		return true
	}
	if len(d.ranges) == 0 {
		return false
	}

	cmp := getCmpLiteral(val)
	for _, r := range d.ranges {
		if r.containsValue(val, cmp) {
			return true
		}
	}

	return false
}

// Overlaps reports whether the intersection of two domains over the same type
// is non-empty. The predicate matcher excludes a block exactly when the
// predicate domain and the statistics domain of some column do not overlap.
func (d Domain) Overlaps(other Domain) bool {
	if d.nullAllowed && other.nullAllowed {
		return true
	}
	if d.allValues {
		return other.hasAnyValue()
	}
	if other.allValues {
		return d.hasAnyValue()
	}
	if len(d.ranges) == 0 || len(other.ranges) == 0 {
		return false
	}

	cmp := getCmpLiteral(firstBound(d.ranges))
	i, j := 0, 0
	for i < len(d.ranges) && j < len(other.ranges) {
		switch {
		case d.ranges[i].isBefore(other.ranges[j], cmp):
			i++
		case other.ranges[j].isBefore(d.ranges[i], cmp):
			j++
		default:
			return true
		}
	}

	return false
}

func firstBound(ranges []Range) Literal {
	for _, r := range ranges {
		if r.low != nil {
			return r.low
		}
		if r.high != nil {
			return r.high
		}
	}
	panic(ErrInvalidArgument)
}

// Equals reports whether two domains describe the same value set. Intended
// for tests and diagnostics.
func (d Domain) Equals(other Domain) bool {
	if !d.typ.Equals(other.typ) || d.nullAllowed != other.nullAllowed ||
		d.allValues != other.allValues || len(d.ranges) != len(other.ranges) {
		return false
	}
	if len(d.ranges) == 0 {
		return true
	}

	cmp := getCmpLiteral(firstBound(d.ranges))
	for i := range d.ranges {
		if !d.ranges[i].equals(other.ranges[i], cmp) {
			return false
		}
	}

	return true
}

func (d Domain) String() string {
	var b strings.Builder
	b.WriteString(d.typ.String())
	switch {
	case d.IsAll():
		b.WriteString(":all")
	case d.IsNone():
		b.WriteString(":none")
	case d.IsOnlyNull():
		b.WriteString(":only-null")
	case d.allValues:
		b.WriteString(":not-null")
	default:
		b.WriteString(":{")
		for i, r := range d.ranges {
			if i > 0 {
				b.WriteString(", ")
			}
			if r.low != nil && r.IsSingleValue(getCmpLiteral(r.low)) {
				b.WriteString(r.low.String())

				continue
			}
			if r.lowInclusive {
				b.WriteString("[")
			} else {
				b.WriteString("(")
			}
			if r.low != nil {
				b.WriteString(r.low.String())
			}
			b.WriteString("..")
			if r.high != nil {
				b.WriteString(r.high.String())
			}
			if r.highInclusive {
				b.WriteString("]")
			} else {
				b.WriteString(")")
			}
		}
		b.WriteString("}")
		if d.nullAllowed {
			b.WriteString("+null")
		}
	}

	return b.String()
}
