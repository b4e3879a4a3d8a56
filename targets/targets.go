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

// Package targets indexes a BED file of named target regions for
// breakpoint annotation, and defines the optional require-overlap
// policies of §4.11 (the pileup package applies them).
package targets

import (
	"sort"
	"strings"
)

// Requirement controls whether breakpoints lacking target overlap are
// dropped from the breakpoint table written by the pileup stage.
type Requirement int

const (
	// AnnotateOnly records target overlap without filtering anything.
	AnnotateOnly Requirement = iota
	// OverlapAny drops a pileup unless at least one side overlaps a target.
	OverlapAny
	// OverlapBoth drops a pileup unless both sides overlap a target.
	OverlapBoth
)

// ParseRequirement maps a CLI flag value to a Requirement.
func ParseRequirement(s string) (Requirement, bool) {
	switch s {
	case "AnnotateOnly":
		return AnnotateOnly, true
	case "OverlapAny":
		return OverlapAny, true
	case "OverlapBoth":
		return OverlapBoth, true
	default:
		return AnnotateOnly, false
	}
}

// Index answers target-overlap queries for 1-based inclusive intervals.
type Index struct {
	byRef map[int]*refIndex
}

// OverlapsAny reports whether any target on refIndex overlaps [start, end]
// (1-based inclusive).
func (idx *Index) OverlapsAny(refIndex, start, end int) bool {
	if idx == nil {
		return false
	}
	r, ok := idx.byRef[refIndex]
	if !ok {
		return false
	}
	return len(r.query(start, end)) > 0
}

// Names returns the sorted, deduplicated names of targets on refIndex that
// overlap [start, end].
func (idx *Index) Names(refIndex, start, end int) []string {
	if idx == nil {
		return nil
	}
	r, ok := idx.byRef[refIndex]
	if !ok {
		return nil
	}
	hits := r.query(start, end)
	if len(hits) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(hits))
	names := make([]string, 0, len(hits))
	for _, h := range hits {
		if !seen[h] {
			seen[h] = true
			names = append(names, h)
		}
	}
	sort.Strings(names)
	return names
}

// JoinedNames renders Names as a comma-joined string, or "" if empty.
func (idx *Index) JoinedNames(refIndex, start, end int) string {
	return strings.Join(idx.Names(refIndex, start, end), ",")
}
