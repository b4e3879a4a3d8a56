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

package aggregate

import (
	"io"

	"github.com/grailbio/base/errors"

	"github.com/grailbio/svpileup/metrics"
)

// WriteTable emits rows as the §6 tab-delimited aggregated table.
func WriteTable(w io.Writer, rows []Aggregated) error {
	tw := metrics.NewWriter(w)
	for _, a := range rows {
		row := metrics.AggregatedBreakpointPileupRow{
			ID:                  a.ID,
			Category:            a.Category,
			LeftContig:          a.LeftContig,
			LeftMinPos:          a.LeftMinPos,
			LeftMaxPos:          a.LeftMaxPos,
			LeftStrand:          strandSymbol(a.LeftStrand),
			RightContig:         a.RightContig,
			RightMinPos:         a.RightMinPos,
			RightMaxPos:         a.RightMaxPos,
			RightStrand:         strandSymbol(a.RightStrand),
			SplitReads:          a.SplitReads,
			ReadPairs:           a.ReadPairs,
			Total:               a.Total,
			LeftPileups:         JoinPositions(a.LeftPileups),
			RightPileups:        JoinPositions(a.RightPileups),
			LeftFrequency:       a.LeftFrequency,
			RightFrequency:      a.RightFrequency,
			LeftOverlapsTarget:  a.LeftOverlapsTarget,
			RightOverlapsTarget: a.RightOverlapsTarget,
			LeftTargets:         a.LeftTargets,
			RightTargets:        a.RightTargets,
		}
		if err := tw.WriteRow(row); err != nil {
			return errors.E(err, "aggregate: writing aggregated table")
		}
	}
	return tw.Flush()
}
