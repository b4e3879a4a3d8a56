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

package metrics

// BreakpointPileupRow is one row of the breakpoint table produced by the
// pileup stage. Field order is the table's column order.
type BreakpointPileupRow struct {
	ID           int    `tab:"id"`
	LeftContig   string `tab:"left_contig"`
	LeftPos      int    `tab:"left_pos"`
	LeftStrand   string `tab:"left_strand"`
	RightContig  string `tab:"right_contig"`
	RightPos     int    `tab:"right_pos"`
	RightStrand  string `tab:"right_strand"`
	SplitReads   int    `tab:"split_reads"`
	ReadPairs    int    `tab:"read_pairs"`
	Total        int    `tab:"total"`
	LeftTargets  string `tab:"left_targets"`
	RightTargets string `tab:"right_targets"`
}

// AggregatedBreakpointPileupRow is one row of the table produced by the
// aggregation stage.
type AggregatedBreakpointPileupRow struct {
	ID                  string   `tab:"id"`
	Category            string   `tab:"category"`
	LeftContig          string   `tab:"left_contig"`
	LeftMinPos          int      `tab:"left_min_pos"`
	LeftMaxPos          int      `tab:"left_max_pos"`
	LeftStrand          string   `tab:"left_strand"`
	RightContig         string   `tab:"right_contig"`
	RightMinPos         int      `tab:"right_min_pos"`
	RightMaxPos         int      `tab:"right_max_pos"`
	RightStrand         string   `tab:"right_strand"`
	SplitReads          int      `tab:"split_reads"`
	ReadPairs           int      `tab:"read_pairs"`
	Total               int      `tab:"total"`
	LeftPileups         string   `tab:"left_pileups"`
	RightPileups        string   `tab:"right_pileups"`
	LeftFrequency       *float64 `tab:"left_frequency"`
	RightFrequency      *float64 `tab:"right_frequency"`
	LeftOverlapsTarget  *bool    `tab:"left_overlaps_target"`
	RightOverlapsTarget *bool    `tab:"right_overlaps_target"`
	LeftTargets         string   `tab:"left_targets"`
	RightTargets        string   `tab:"right_targets"`
}

// BedPERow is one row of the headerless BEDPE projection.
type BedPERow struct {
	Chrom1  string `tab:"chrom1"`
	Start1  int    `tab:"start1"`
	End1    int    `tab:"end1"`
	Chrom2  string `tab:"chrom2"`
	Start2  int    `tab:"start2"`
	End2    int    `tab:"end2"`
	Name    string `tab:"name"`
	Score   int    `tab:"score"`
	Strand1 string `tab:"strand1"`
	Strand2 string `tab:"strand2"`
}
