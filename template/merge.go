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

package template

import "github.com/grailbio/svpileup/segment"

// mergeChains implements §4.4: find the smallest k such that the last k
// segments of r1 strand-overlap, pairwise, the first k segments of r2, and
// merge each overlapping pair. If no k up to min(len(r1),len(r2)) works,
// the chains are concatenated unmerged.
func mergeChains(r1, r2 []segment.AlignedSegment, slop int) []segment.AlignedSegment {
	maxK := len(r1)
	if len(r2) < maxK {
		maxK = len(r2)
	}

	for k := 1; k <= maxK; k++ {
		if allOverlap(r1, r2, k) {
			return mergeAtDepth(r1, r2, k, slop)
		}
	}
	return append(append([]segment.AlignedSegment{}, r1...), r2...)
}

// allOverlap reports whether the last k segments of r1 strand-overlap,
// pairwise in order, the first k segments of r2.
func allOverlap(r1, r2 []segment.AlignedSegment, k int) bool {
	for i := 0; i < k; i++ {
		a := r1[len(r1)-k+i]
		b := r2[i]
		if !a.StrandOverlaps(b) {
			return false
		}
	}
	return true
}

// mergeAtDepth builds the merged chain once a working depth k has been
// found: r1's non-overlapping prefix, the k merged pairs, then r2's
// non-overlapping suffix.
func mergeAtDepth(r1, r2 []segment.AlignedSegment, k, slop int) []segment.AlignedSegment {
	out := make([]segment.AlignedSegment, 0, len(r1)+len(r2)-k)
	out = append(out, r1[:len(r1)-k]...)
	for i := 0; i < k; i++ {
		out = append(out, mergePair(r1[len(r1)-k+i], r2[i], slop))
	}
	out = append(out, r2[k:]...)
	return out
}

// mergePair merges one overlapping (a, b) pair per §4.4: union of ranges,
// Both origin (unless shared), readStart/readEnd reset to (1,1), cigar
// cleared, and records partitioned into left/right by proximity (within
// slop bases) to the merged range's start/end.
func mergePair(a, b segment.AlignedSegment, slop int) segment.AlignedSegment {
	merged := segment.AlignedSegment{
		Origin:         segment.Merge(a.Origin, b.Origin),
		ReadStart:      1,
		ReadEnd:        1,
		PositiveStrand: a.PositiveStrand,
		Cigar:          nil,
		Range:          a.Range.Union(b.Range),
	}

	all := a.Recs.Union(b.Recs)
	var left, right segment.RecordSet
	for _, r := range all.Records() {
		start := r.Start() + 1
		if abs(start-merged.Range.Start) <= slop {
			left.Add(r)
		}
		if abs(start-merged.Range.End) <= slop {
			right.Add(r)
		}
	}
	merged.Recs = all
	merged.Left = left
	merged.Right = right
	return merged
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
