// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bedpe projects an aggregated breakpoint pileup to the 10-column
// BEDPE row of §4.11: a pure, headerless columnar projection.
package bedpe

import (
	"io"
	"reflect"

	"github.com/grailbio/base/errors"

	"github.com/grailbio/svpileup/aggregate"
	"github.com/grailbio/svpileup/metrics"
)

func strandSymbol(positive bool) string {
	if positive {
		return "+"
	}
	return "-"
}

// Project converts one aggregated pileup to its BEDPE row, converting the
// 1-based inclusive aggregated positions to 0-based half-open intervals.
func Project(a aggregate.Aggregated) metrics.BedPERow {
	return metrics.BedPERow{
		Chrom1:  a.LeftContig,
		Start1:  a.LeftMinPos - 1,
		End1:    a.LeftMaxPos,
		Chrom2:  a.RightContig,
		Start2:  a.RightMinPos - 1,
		End2:    a.RightMaxPos,
		Name:    a.ID,
		Score:   a.Total,
		Strand1: strandSymbol(a.LeftStrand),
		Strand2: strandSymbol(a.RightStrand),
	}
}

// WriteTable emits rows as headerless, tab-delimited BEDPE.
func WriteTable(w io.Writer, rows []aggregate.Aggregated) error {
	tw := metrics.NewWriter(w)
	if err := tw.SuppressHeader(reflect.TypeOf(metrics.BedPERow{})); err != nil {
		return errors.E(err, "bedpe: preparing table")
	}
	for _, a := range rows {
		if err := tw.WriteRow(Project(a)); err != nil {
			return errors.E(err, "bedpe: writing row")
		}
	}
	return tw.Flush()
}
