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
	"github.com/biogo/hts/sam"

	"github.com/grailbio/svpileup/bamio"
)

// recordSpan returns the 0-based half-open span a record contributes to
// an overlap test: for an FR-oriented pair (positive-strand read upstream
// of a reverse-strand mate on the same contig) with a usable TLEN, the
// full template span; otherwise the record's own aligned range.
func recordSpan(r *sam.Record) (int, int) {
	if r.Flags&sam.Paired != 0 && r.Flags&sam.MateUnmapped == 0 &&
		r.Ref != nil && r.MateRef != nil && r.MateRef.ID() == r.Ref.ID() &&
		r.Flags&sam.Reverse == 0 && r.Flags&sam.MateReverse != 0 &&
		r.Start() <= r.MatePos && r.TempLen > 0 {
		return r.Start(), r.Start() + r.TempLen
	}
	return r.Start(), r.End()
}

func anyPositionIn(positions []int, start, end int) bool {
	for _, p := range positions {
		p0 := p - 1 // positions are 1-based inclusive; span is 0-based half-open.
		if p0 >= start && p0 < end {
			return true
		}
	}
	return false
}

// alleleFrequency implements the §4.10 bounded allele-frequency scan for
// one side of an aggregated pileup. It returns nil when the scan is
// skipped (insufficient support), abandoned (overlapper count exceeds the
// minFrequency bound), or the contig is unrecognized.
func alleleFrequency(contig string, positions []int, total int, dict *bamio.Dictionary, source *bamio.RecordSource, opts Options) *float64 {
	if total < opts.MinBreakpointSupport || len(positions) == 0 {
		return nil
	}
	refIndex, ok := dict.RefIndex(contig)
	if !ok {
		return nil
	}

	minPos, maxPos := positions[0], positions[len(positions)-1]
	start := minPos - 1 - opts.Flank
	if start < 0 {
		start = 0
	}
	end := maxPos + opts.Flank

	recs, err := source.RecordsOverlapping(refIndex, start, end)
	if err != nil {
		return nil
	}

	limit := float64(total) / opts.MinFrequency
	overlappers := make(map[string]bool)
	for _, r := range recs {
		spanStart, spanEnd := recordSpan(r)
		if !anyPositionIn(positions, spanStart, spanEnd) {
			continue
		}
		if overlappers[r.Name] {
			continue
		}
		overlappers[r.Name] = true
		if float64(len(overlappers)) > limit {
			return nil
		}
	}
	if len(overlappers) == 0 {
		return nil
	}
	freq := float64(total) / float64(len(overlappers))
	return &freq
}
