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

// Package template turns the raw alignment records of one query-name group
// into an ordered chain of AlignedSegments (§4.2-§4.4), and applies the
// MAPQ-based template filter (§4.5).
package template

import (
	"sort"

	"github.com/grailbio/svpileup/segment"
)

// readPositions is a bit set over 1-based read positions, sized to a
// read's length.
type readPositions struct {
	covered []bool
}

func newReadPositions(readLength int) *readPositions {
	return &readPositions{covered: make([]bool, readLength+1)}
}

// uniqueCount returns how many positions in [start, end] are not yet
// covered.
func (p *readPositions) uniqueCount(start, end int) int {
	n := 0
	for i := start; i <= end && i < len(p.covered); i++ {
		if !p.covered[i] {
			n++
		}
	}
	return n
}

// mark sets every position in [start, end] as covered.
func (p *readPositions) mark(start, end int) {
	for i := start; i <= end && i < len(p.covered); i++ {
		p.covered[i] = true
	}
}

// perReadChain implements §4.2: given one read end's primary segment and
// its supplementaries, keep only the supplementaries that each add at
// least minUniqueBasesToAdd bases of read coverage not already claimed by
// an earlier-emitted segment, and return the kept segments ordered by
// (ReadStart, ReadEnd).
func perReadChain(primary segment.AlignedSegment, supplementaries []segment.AlignedSegment, readLength, minUniqueBasesToAdd int) []segment.AlignedSegment {
	covered := newReadPositions(readLength)
	covered.mark(primary.ReadStart, primary.ReadEnd)

	ordered := make([]segment.AlignedSegment, len(supplementaries))
	copy(ordered, supplementaries)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].ReadStart != ordered[j].ReadStart {
			return ordered[i].ReadStart < ordered[j].ReadStart
		}
		return ordered[i].ReadEnd < ordered[j].ReadEnd
	})

	kept := []segment.AlignedSegment{primary}
	for _, s := range ordered {
		if covered.uniqueCount(s.ReadStart, s.ReadEnd) >= minUniqueBasesToAdd {
			covered.mark(s.ReadStart, s.ReadEnd)
			kept = append(kept, s)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].ReadStart != kept[j].ReadStart {
			return kept[i].ReadStart < kept[j].ReadStart
		}
		return kept[i].ReadEnd < kept[j].ReadEnd
	})
	return kept
}
