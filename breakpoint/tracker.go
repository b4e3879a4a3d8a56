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

package breakpoint

import "sort"

// Info is the per-breakpoint evidence tally held by a Tracker.
type Info struct {
	ID        int
	SplitRead int
	ReadPair  int
}

// Total returns SplitRead + ReadPair.
func (i Info) Total() int { return i.SplitRead + i.ReadPair }

// Tracker is a process-lifetime mapping from canonical Breakpoint to its
// evidence tally. Ids are assigned in the order breakpoints are first
// observed, so they are stable within a run only if templates are
// processed in a deterministic order (see §5 of the design).
//
// Tracker is not safe for unsynchronized concurrent use; callers that
// shard work across goroutines must serialize access to Count (see the
// pileup package's driver, which does this with a mutex).
type Tracker struct {
	order []Breakpoint
	info  map[Breakpoint]*Info
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{info: make(map[Breakpoint]*Info)}
}

// Count records one observation of kind for bp (which must already be in
// canonical form) and returns the breakpoint's stable id.
func (t *Tracker) Count(bp Breakpoint, kind EvidenceType) int {
	info, ok := t.info[bp]
	if !ok {
		info = &Info{ID: len(t.order)}
		t.info[bp] = info
		t.order = append(t.order, bp)
	}
	switch kind {
	case SplitRead:
		info.SplitRead++
	case ReadPair:
		info.ReadPair++
	}
	return info.ID
}

// Len returns the number of distinct breakpoints observed so far.
func (t *Tracker) Len() int { return len(t.order) }

// Entry pairs a Breakpoint with its tallied Info, returned by iteration.
type Entry struct {
	Breakpoint Breakpoint
	Info       Info
}

// Entries returns every observed breakpoint and its tally, in ascending id
// order (i.e. first-observed order).
func (t *Tracker) Entries() []Entry {
	out := make([]Entry, len(t.order))
	for i, bp := range t.order {
		out[i] = Entry{Breakpoint: bp, Info: *t.info[bp]}
	}
	return out
}

// SortedByPairedOrdering returns Entries() sorted by PairedOrdering: left
// ref, right ref, left pos, right pos, then strands, so that paired events
// cluster together in emitted output.
func (t *Tracker) SortedByPairedOrdering() []Entry {
	entries := t.Entries()
	sort.Slice(entries, func(i, j int) bool {
		return PairedOrdering(entries[i].Breakpoint, entries[j].Breakpoint)
	})
	return entries
}

// PairedOrdering orders breakpoints by left-ref, right-ref, left-pos,
// right-pos, then strands.
func PairedOrdering(a, b Breakpoint) bool {
	if a.LeftRefIndex != b.LeftRefIndex {
		return a.LeftRefIndex < b.LeftRefIndex
	}
	if a.RightRefIndex != b.RightRefIndex {
		return a.RightRefIndex < b.RightRefIndex
	}
	if a.LeftPos != b.LeftPos {
		return a.LeftPos < b.LeftPos
	}
	if a.RightPos != b.RightPos {
		return a.RightPos < b.RightPos
	}
	if a.LeftPositive != b.LeftPositive {
		return a.LeftPositive
	}
	return a.RightPositive
}
