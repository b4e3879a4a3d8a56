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

package targets

import "github.com/biogo/store/interval"

// refIndex wraps one contig's interval.IntTree, since the tree itself
// carries no name-to-contig association.
type refIndex struct {
	tree *interval.IntTree
	next uintptr
}

// target is a single named BED feature stored in the tree. Coordinates are
// 0-based half-open, matching interval.IntRange's convention.
type target struct {
	id         uintptr
	start, end int
	name       string
}

func (t *target) Range() interval.IntRange { return interval.IntRange{Start: t.start, End: t.end} }
func (t *target) Overlap(b interval.IntRange) bool {
	return t.end > b.Start && t.start < b.End
}
func (t *target) ID() uintptr { return t.id }

// query is the overlap predicate used to search a contig's tree; it carries
// no name, only the boundaries being searched.
type query struct {
	start, end int
}

func (q query) Overlap(b interval.IntRange) bool {
	return q.end > b.Start && q.start < b.End
}

func newRefIndex() *refIndex {
	return &refIndex{tree: &interval.IntTree{}}
}

// insert adds a 1-based inclusive [start, end] target under name.
func (r *refIndex) insert(start, end int, name string) error {
	t := &target{id: r.next, start: start - 1, end: end, name: name}
	r.next++
	return r.tree.Insert(t, false)
}

// query returns the names of every target overlapping the 1-based
// inclusive [start, end].
func (r *refIndex) query(start, end int) []string {
	q := query{start: start - 1, end: end}
	var hits []string
	r.tree.DoMatching(func(hit interval.IntInterface) bool {
		hits = append(hits, hit.(*target).name)
		return false
	}, q)
	return hits
}
