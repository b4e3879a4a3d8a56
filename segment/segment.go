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

// Package segment builds AlignedSegments, the ordered sub-ranges of a
// template's trajectory through the reference, from individual alignment
// records.
package segment

import (
	"github.com/biogo/hts/sam"
	"github.com/grailbio/base/errors"

	"github.com/grailbio/svpileup/genomicrange"
)

// AlignedSegment is one mapped portion of a template, expressed in
// read-sequencing order.
type AlignedSegment struct {
	Origin         Origin
	ReadStart      int // 1-based inclusive, read-sequencing order.
	ReadEnd        int // 1-based inclusive, read-sequencing order.
	PositiveStrand bool
	Cigar          sam.Cigar
	Range          genomicrange.Range
	Recs           RecordSet

	// Left and Right are the record sets consulted by the breakpoint
	// detector to decide which reads sit on which breakend of a
	// junction (§4.6). For a segment built directly from one alignment
	// record they both equal Recs; for a segment produced by merging
	// overlapping R1/R2 mappings (Origin == Both) they are the slop-based
	// partition computed by the template package's merge step (§4.4).
	Left  RecordSet
	Right RecordSet
}

// StrandOverlaps reports whether a and b have overlapping reference ranges
// and agree in strand.
func (a AlignedSegment) StrandOverlaps(b AlignedSegment) bool {
	return a.PositiveStrand == b.PositiveStrand && a.Range.Overlaps(b.Range)
}

func isClippingOp(t sam.CigarOpType) bool {
	return t == sam.CigarSoftClipped || t == sam.CigarHardClipped
}

// clipLengths returns the total leading and trailing clip lengths of c, and
// the number of read bases consumed by the non-clipping operators between
// them.
func clipLengths(c sam.Cigar) (leading, trailing, middle int) {
	first := 0
	for first < len(c) && isClippingOp(c[first].Type()) {
		leading += c[first].Len()
		first++
	}
	last := len(c) - 1
	for last >= first && isClippingOp(c[last].Type()) {
		trailing += c[last].Len()
		last--
	}
	for i := first; i <= last; i++ {
		middle += c[i].Len() * c[i].Type().Consumes().Query
	}
	return leading, trailing, middle
}

// refIndexOf returns the record's own reference ID, the index space New
// uses for every segment's range.
func refIndexOf(r *sam.Record) int { return r.RefID() }

// New builds an AlignedSegment from a single mapped alignment record, per
// §4.1. It fails with a MalformedAlignment error if the record is unmapped
// or its computed read coordinates are inverted.
func New(r *sam.Record) (AlignedSegment, error) {
	if r.Flags&sam.Unmapped != 0 || r.Ref == nil {
		return AlignedSegment{}, errors.E("segment: MalformedAlignment: record is unmapped", r.Name)
	}

	leading, trailing, middle := clipLengths(r.Cigar)
	positive := r.Flags&sam.Reverse == 0

	var readStart, readEnd int
	if positive {
		readStart = leading + 1
		readEnd = leading + middle
	} else {
		readStart = trailing + 1
		readEnd = trailing + middle
	}
	if readEnd < readStart {
		return AlignedSegment{}, errors.E("segment: MalformedAlignment: readEnd < readStart", r.Name)
	}

	origin := ReadOne
	if r.Flags&sam.Paired != 0 && r.Flags&sam.Read2 != 0 {
		origin = ReadTwo
	}

	recs := NewRecordSet(r)
	return AlignedSegment{
		Origin:         origin,
		ReadStart:      readStart,
		ReadEnd:        readEnd,
		PositiveStrand: positive,
		Cigar:          r.Cigar,
		Range:          genomicrange.New(refIndexOf(r), r.Start()+1, r.End()),
		Recs:           recs,
		Left:           recs,
		Right:          recs,
	}, nil
}
