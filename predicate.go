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

import "time"

// Predicate decides whether a block of rows can possibly contain a row
// matching an effective predicate, judging only from the block's statistics
// or dictionary pages. A false answer is a proof of absence and allows the
// block to be skipped; true only means the block cannot be excluded.
//
// A Predicate is immutable after construction and safe for concurrent use.
type Predicate struct {
	columns []predicateColumn
	loc     *time.Location
	none    bool
}

type predicateColumn struct {
	col     *ColumnDescriptor
	domain  Domain
	builder *DomainBuilder
}

// NewPredicate builds a Predicate from the effective per-column domains,
// keyed by column ID. Columns without a constraining domain do not
// participate in matching. The location is applied when decoding INT96
// timestamp statistics.
func NewPredicate(domains map[string]Domain, columns []*ColumnDescriptor, loc *time.Location) (*Predicate, error) {
	p := &Predicate{loc: loc}
	for _, col := range columns {
		d, ok := domains[col.ID()]
		if !ok {
			continue
		}
		if d.IsNone() {
			// contradictory constraint, no block can ever match
			p.none = true

			continue
		}

		b, err := NewDomainBuilder(col, d.Type(), loc)
		if err != nil {
			return nil, err
		}
		p.columns = append(p.columns, predicateColumn{col: col, domain: d, builder: b})
	}

	return p, nil
}

// Matches reports whether the block described by the given statistics might
// contain a matching row. Statistics are keyed by column ID; a column with
// absent or empty statistics cannot be used to exclude the block. Corrupted
// statistics surface as a CorruptedStatisticsError naming the file.
func (p *Predicate) Matches(rowCount int64, statistics map[string]*Statistics, file string) (bool, error) {
	if rowCount == 0 || p.none {
		return false, nil
	}

	for _, pc := range p.columns {
		stats, ok := statistics[pc.col.ID()]
		if !ok || stats.IsEmpty() {
			continue
		}

		d, err := pc.builder.Build(file, rowCount, stats)
		if err != nil {
			return false, err
		}
		if !d.Overlaps(pc.domain) {
			return false, nil
		}
	}

	return true, nil
}

// MatchesDictionary reports whether a fully dictionary-encoded column chunk
// might contain a matching value. An absent or undecodable dictionary page
// never excludes the chunk.
func (p *Predicate) MatchesDictionary(desc *DictionaryDescriptor) bool {
	if p.none {
		return false
	}
	if desc == nil || desc.Column == nil {
		return true
	}

	for _, pc := range p.columns {
		if pc.col.ID() != desc.Column.ID() {
			continue
		}

		return GetDictionaryDomain(pc.domain.Type(), desc, p.loc).Overlaps(pc.domain)
	}

	return true
}
