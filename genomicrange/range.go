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

// Package genomicrange provides a minimal 1-based, inclusive genomic
// interval type shared by the segment and breakpoint packages.
package genomicrange

import "fmt"

// Range is a 1-based, inclusive interval on a single reference sequence.
type Range struct {
	RefIndex int
	Start    int
	End      int
}

// New returns a Range, panicking if start > end.
func New(refIndex, start, end int) Range {
	if start > end {
		panic(fmt.Sprintf("genomicrange: invalid range [%d,%d] on ref %d", start, end, refIndex))
	}
	return Range{RefIndex: refIndex, Start: start, End: end}
}

// Len returns the number of bases spanned by r.
func (r Range) Len() int { return r.End - r.Start + 1 }

// Overlaps returns true iff r and other share a reference and their
// inclusive intervals intersect.
func (r Range) Overlaps(other Range) bool {
	return r.RefIndex == other.RefIndex && r.Start <= other.End && other.Start <= r.End
}

// Union returns the smallest Range spanning both r and other. The two
// ranges must overlap.
func (r Range) Union(other Range) Range {
	if !r.Overlaps(other) {
		panic("genomicrange: Union of non-overlapping ranges")
	}
	start := r.Start
	if other.Start < start {
		start = other.Start
	}
	end := r.End
	if other.End > end {
		end = other.End
	}
	return Range{RefIndex: r.RefIndex, Start: start, End: end}
}

// Less orders ranges by RefIndex, then Start, then End.
func (r Range) Less(other Range) bool {
	if r.RefIndex != other.RefIndex {
		return r.RefIndex < other.RefIndex
	}
	if r.Start != other.Start {
		return r.Start < other.Start
	}
	return r.End < other.End
}

func (r Range) String() string {
	return fmt.Sprintf("%d:%d-%d", r.RefIndex, r.Start, r.End)
}
