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

// Package detector walks a template's segment chain pairwise, decides
// where a breakpoint exists, canonicalizes it, and classifies it as
// split-read or read-pair evidence (§4.6-§4.9).
package detector

import (
	"github.com/grailbio/svpileup/breakpoint"
	"github.com/grailbio/svpileup/segment"
)

// Options bundles the distance thresholds of §4.6.
type Options struct {
	MaxWithinReadDistance    int
	MaxReadPairInnerDistance int
}

// CircularLookup reports whether the contig at refIndex is circular.
type CircularLookup func(refIndex int) bool

// Detect walks chain with a sliding window of size 2 and returns one
// breakpoint.Evidence per adjacent pair that fires a predicate. The
// returned evidence carries a canonical Breakpoint but no tracker id;
// callers are expected to commit each to a breakpoint.Tracker.
func Detect(chain []segment.AlignedSegment, circular CircularLookup, opts Options) []breakpoint.Evidence {
	if len(chain) < 2 {
		return nil
	}

	var out []breakpoint.Evidence
	for i := 0; i+1 < len(chain); i++ {
		s1, s2 := chain[i], chain[i+1]
		if ev, ok := detectPair(s1, s2, circular, opts); ok {
			out = append(out, ev)
		}
	}
	return out
}

func detectPair(s1, s2 segment.AlignedSegment, circular CircularLookup, opts Options) (breakpoint.Evidence, bool) {
	interContig := s1.Range.RefIndex != s2.Range.RefIndex

	fires := interContig
	if !interContig {
		fires = intraContigFires(s1, s2, opts)
		if fires && circular(s1.Range.RefIndex) {
			fires = false
		}
	}
	if !fires {
		return breakpoint.Evidence{}, false
	}

	kind := breakpoint.SplitRead
	if s1.Origin.IsInterRead(s2.Origin) {
		kind = breakpoint.ReadPair
	}

	raw := buildBreakpoint(s1, s2)
	canonical, wasCanonical := breakpoint.Canonicalize(raw)

	fromSet := s1.Right
	if !s1.PositiveStrand {
		fromSet = s1.Left
	}
	intoSet := s2.Left
	if !s2.PositiveStrand {
		intoSet = s2.Right
	}

	return breakpoint.Evidence{
		Breakpoint: canonical,
		Kind:       kind,
		From:       fromSet,
		Into:       intoSet,
		FromIsLeft: wasCanonical,
	}, true
}

// buildBreakpoint constructs the (possibly non-canonical) Breakpoint for
// the ordered pair from -> into, per §4.6.
func buildBreakpoint(from, into segment.AlignedSegment) breakpoint.Breakpoint {
	leftPos := from.Range.Start
	if from.PositiveStrand {
		leftPos = from.Range.End
	}
	rightPos := into.Range.End
	if into.PositiveStrand {
		rightPos = into.Range.Start
	}
	return breakpoint.Breakpoint{
		LeftRefIndex:  from.Range.RefIndex,
		LeftPos:       leftPos,
		LeftPositive:  from.PositiveStrand,
		RightRefIndex: into.Range.RefIndex,
		RightPos:      rightPos,
		RightPositive: into.PositiveStrand,
	}
}

// innerDistance returns the reference-coordinate gap of §4.6 between s1
// and s2.
func innerDistance(s1, s2 segment.AlignedSegment) int {
	if s1.Range.Start <= s2.Range.Start {
		return s2.Range.Start - s1.Range.End
	}
	return s1.Range.Start - s2.Range.End
}

// intraContigFires implements the same-contig predicate of §4.6.
func intraContigFires(s1, s2 segment.AlignedSegment, opts Options) bool {
	if s1.PositiveStrand != s2.PositiveStrand {
		return true
	}
	if s1.PositiveStrand && s2.Range.Start < s1.Range.End {
		return true
	}
	if !s1.PositiveStrand && s1.Range.Start < s2.Range.Start {
		return true
	}

	maxDist := opts.MaxWithinReadDistance
	if s1.Origin.IsInterRead(s2.Origin) {
		maxDist = opts.MaxReadPairInnerDistance
	}
	return innerDistance(s1, s2) > maxDist
}
