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
	"errors"
	"fmt"
)

var (
	// ErrType is returned when a logical type cannot be paired with a column's
	// physical storage type.
	ErrType = errors.New("invalid type")
	// ErrInvalidArgument is returned for malformed caller input such as a
	// predicate column without a matching descriptor.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidBinSerialization is returned when a statistics payload has the
	// wrong byte length for its physical type.
	ErrInvalidBinSerialization = errors.New("invalid binary serialization")
	// ErrCorruptedStatistics is wrapped by CorruptedStatisticsError so callers
	// can test for corruption with errors.Is and abort the file scan.
	ErrCorruptedStatistics = errors.New("corrupted statistics")
)

// CorruptedStatisticsError reports column statistics whose decoded minimum is
// greater than the decoded maximum. It is the only fatal condition raised by
// the engine: the file cannot be read safely and the caller should fail the
// scan of that file rather than retry.
//
// Min and Max are rendered for diagnostics at the point of failure, textual
// for comparable scalars and 0x-hex for raw byte payloads.
type CorruptedStatisticsError struct {
	File      string
	Column    *ColumnDescriptor
	Min, Max  string
	NullCount int64
}

func (e *CorruptedStatisticsError) Error() string {
	return fmt.Sprintf("corrupted statistics for column %q in parquet file %q: [min: %s, max: %s, num_nulls: %d]",
		e.Column.String(), e.File, e.Min, e.Max, e.NullCount)
}

func (e *CorruptedStatisticsError) Unwrap() error { return ErrCorruptedStatistics }

func corruptStats(file string, col *ColumnDescriptor, minRepr, maxRepr string, nullCount int64) error {
	return &CorruptedStatisticsError{
		File:      file,
		Column:    col,
		Min:       minRepr,
		Max:       maxRepr,
		NullCount: nullCount,
	}
}
