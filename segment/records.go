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

package segment

import "github.com/biogo/hts/sam"

// RecordSet is a small ordered set of alignment records, keyed by pointer
// identity. Templates rarely contribute more than a handful of records to
// any one segment, so a flat slice with linear dedup beats a map here.
type RecordSet struct {
	recs []*sam.Record
}

// NewRecordSet returns a RecordSet containing recs, deduplicated.
func NewRecordSet(recs ...*sam.Record) RecordSet {
	var s RecordSet
	for _, r := range recs {
		s.Add(r)
	}
	return s
}

// Add inserts r if it is not already present.
func (s *RecordSet) Add(r *sam.Record) {
	if s.Contains(r) {
		return
	}
	s.recs = append(s.recs, r)
}

// Contains reports whether r is a member of s.
func (s *RecordSet) Contains(r *sam.Record) bool {
	for _, x := range s.recs {
		if x == r {
			return true
		}
	}
	return false
}

// Union returns a new RecordSet containing every record in s and other.
func (s RecordSet) Union(other RecordSet) RecordSet {
	out := NewRecordSet(s.recs...)
	for _, r := range other.recs {
		out.Add(r)
	}
	return out
}

// Records returns the members of s in insertion order.
func (s RecordSet) Records() []*sam.Record { return s.recs }

// Len returns the number of records in s.
func (s RecordSet) Len() int { return len(s.recs) }
