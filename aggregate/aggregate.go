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
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/grailbio/svpileup/bamio"
	"github.com/grailbio/svpileup/targets"
)

// Aggregated is one clustered breakpoint, aggregating the constituent
// pileups of §4.10.
type Aggregated struct {
	ID          string
	Category    string
	LeftContig  string
	LeftMinPos  int
	LeftMaxPos  int
	LeftStrand  bool
	RightContig string
	RightMinPos int
	RightMaxPos int
	RightStrand bool
	SplitReads  int
	ReadPairs   int
	Total       int

	LeftPileups  []int
	RightPileups []int

	LeftFrequency  *float64
	RightFrequency *float64

	LeftOverlapsTarget  *bool
	RightOverlapsTarget *bool
	LeftTargets         string
	RightTargets        string
}

// Options bundles the §6 AggregateSvPileup tunables.
type Options struct {
	MaxDist              int
	Flank                int
	MinBreakpointSupport int
	MinFrequency         float64
}

// DefaultOptions returns the §6 CLI defaults.
func DefaultOptions() Options {
	return Options{
		MaxDist:              10,
		Flank:                1000,
		MinBreakpointSupport: 10,
		MinFrequency:         0.001,
	}
}

func strandSymbol(positive bool) string {
	if positive {
		return "+"
	}
	return "-"
}

func category(leftContig, rightContig string, leftStrand, rightStrand bool) string {
	switch {
	case leftContig != rightContig:
		return "Inter-contig rearrangement"
	case leftStrand != rightStrand:
		return "Intra-contig rearrangement"
	default:
		return "Possible deletion"
	}
}

func aggregateCluster(comp []Pileup, idCounter *int) Aggregated {
	sortPileupsByID(comp)

	first := comp[0]
	agg := Aggregated{
		LeftContig:  first.LeftContig,
		LeftStrand:  first.LeftStrand,
		RightContig: first.RightContig,
		RightStrand: first.RightStrand,
		LeftMinPos:  first.LeftPos,
		LeftMaxPos:  first.LeftPos,
		RightMinPos: first.RightPos,
		RightMaxPos: first.RightPos,
	}
	for _, p := range comp {
		if p.LeftPos < agg.LeftMinPos {
			agg.LeftMinPos = p.LeftPos
		}
		if p.LeftPos > agg.LeftMaxPos {
			agg.LeftMaxPos = p.LeftPos
		}
		if p.RightPos < agg.RightMinPos {
			agg.RightMinPos = p.RightPos
		}
		if p.RightPos > agg.RightMaxPos {
			agg.RightMaxPos = p.RightPos
		}
		agg.SplitReads += p.SplitReads
		agg.ReadPairs += p.ReadPairs
		agg.Total += p.Total
		agg.LeftPileups = append(agg.LeftPileups, p.LeftPos)
		agg.RightPileups = append(agg.RightPileups, p.RightPos)
	}
	sort.Ints(agg.LeftPileups)
	sort.Ints(agg.RightPileups)

	agg.Category = category(agg.LeftContig, agg.RightContig, agg.LeftStrand, agg.RightStrand)
	agg.ID = strconv.Itoa(*idCounter)
	*idCounter++
	return agg
}

// Aggregate clusters pileups per §4.10 and annotates each cluster with
// allele frequency (if source is non-nil) and target overlap (if
// targetIdx is non-nil).
func Aggregate(pileups []Pileup, dict *bamio.Dictionary, source *bamio.RecordSource, targetIdx *targets.Index, opts Options) []Aggregated {
	clusters := cluster(pileups, opts.MaxDist)

	out := make([]Aggregated, 0, len(clusters))
	idCounter := 0
	for _, comp := range clusters {
		agg := aggregateCluster(comp, &idCounter)

		if source != nil {
			agg.LeftFrequency = alleleFrequency(agg.LeftContig, agg.LeftPileups, agg.Total, dict, source, opts)
			agg.RightFrequency = alleleFrequency(agg.RightContig, agg.RightPileups, agg.Total, dict, source, opts)
		}

		if targetIdx != nil {
			if refIndex, ok := dict.RefIndex(agg.LeftContig); ok {
				overlap := targetIdx.OverlapsAny(refIndex, agg.LeftMinPos, agg.LeftMaxPos)
				agg.LeftOverlapsTarget = &overlap
				agg.LeftTargets = targetIdx.JoinedNames(refIndex, agg.LeftMinPos, agg.LeftMaxPos)
			}
			if refIndex, ok := dict.RefIndex(agg.RightContig); ok {
				overlap := targetIdx.OverlapsAny(refIndex, agg.RightMinPos, agg.RightMaxPos)
				agg.RightOverlapsTarget = &overlap
				agg.RightTargets = targetIdx.JoinedNames(refIndex, agg.RightMinPos, agg.RightMaxPos)
			}
		}

		out = append(out, agg)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.LeftContig != b.LeftContig {
			return a.LeftContig < b.LeftContig
		}
		if a.LeftMinPos != b.LeftMinPos {
			return a.LeftMinPos < b.LeftMinPos
		}
		if a.RightContig != b.RightContig {
			return a.RightContig < b.RightContig
		}
		return a.RightMinPos < b.RightMinPos
	})
	return out
}

// JoinPositions renders a position list as spec.md §6 requires: a
// comma-joined ascending list of integers.
func JoinPositions(positions []int) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

func (a Aggregated) String() string {
	return fmt.Sprintf("%s:%s %d-%d %s / %s %d-%d %s", a.ID, a.LeftContig, a.LeftMinPos, a.LeftMaxPos,
		strandSymbol(a.LeftStrand), a.RightContig, a.RightMinPos, a.RightMaxPos, strandSymbol(a.RightStrand))
}
