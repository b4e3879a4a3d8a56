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
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// ParseAggregatedTable reads the tab-delimited aggregated table (§6) back
// into Aggregated rows, for tools (such as the BEDPE converter) that
// consume aggregate-sv-pileup's output rather than raw pileups.
func ParseAggregatedTable(r io.Reader) ([]Aggregated, error) {
	scanner := bufio.NewScanner(r)
	var out []Aggregated
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum == 1 {
			continue // header
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 21 {
			return nil, errors.E("aggregate: malformed aggregated table row", lineNum)
		}
		a, err := parseAggregatedRow(cols)
		if err != nil {
			return nil, errors.E(err, "aggregate: parsing aggregated table", lineNum)
		}
		out = append(out, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E(err, "aggregate: reading aggregated table")
	}
	return out, nil
}

func parsePositionList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.E(err, "unparseable position list", s)
		}
		out[i] = v
	}
	return out, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalBool(s string) (*bool, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseAggregatedRow(cols []string) (Aggregated, error) {
	leftMinPos, err := strconv.Atoi(cols[3])
	if err != nil {
		return Aggregated{}, errors.E(err, "left_min_pos")
	}
	leftMaxPos, err := strconv.Atoi(cols[4])
	if err != nil {
		return Aggregated{}, errors.E(err, "left_max_pos")
	}
	leftStrand, err := parseStrand(cols[5])
	if err != nil {
		return Aggregated{}, err
	}
	rightMinPos, err := strconv.Atoi(cols[7])
	if err != nil {
		return Aggregated{}, errors.E(err, "right_min_pos")
	}
	rightMaxPos, err := strconv.Atoi(cols[8])
	if err != nil {
		return Aggregated{}, errors.E(err, "right_max_pos")
	}
	rightStrand, err := parseStrand(cols[9])
	if err != nil {
		return Aggregated{}, err
	}
	splitReads, err := strconv.Atoi(cols[10])
	if err != nil {
		return Aggregated{}, errors.E(err, "split_reads")
	}
	readPairs, err := strconv.Atoi(cols[11])
	if err != nil {
		return Aggregated{}, errors.E(err, "read_pairs")
	}
	total, err := strconv.Atoi(cols[12])
	if err != nil {
		return Aggregated{}, errors.E(err, "total")
	}
	leftPileups, err := parsePositionList(cols[13])
	if err != nil {
		return Aggregated{}, err
	}
	rightPileups, err := parsePositionList(cols[14])
	if err != nil {
		return Aggregated{}, err
	}
	leftFrequency, err := parseOptionalFloat(cols[15])
	if err != nil {
		return Aggregated{}, errors.E(err, "left_frequency")
	}
	rightFrequency, err := parseOptionalFloat(cols[16])
	if err != nil {
		return Aggregated{}, errors.E(err, "right_frequency")
	}
	leftOverlaps, err := parseOptionalBool(cols[17])
	if err != nil {
		return Aggregated{}, errors.E(err, "left_overlaps_target")
	}
	rightOverlaps, err := parseOptionalBool(cols[18])
	if err != nil {
		return Aggregated{}, errors.E(err, "right_overlaps_target")
	}

	return Aggregated{
		ID:                  cols[0],
		Category:            cols[1],
		LeftContig:          cols[2],
		LeftMinPos:          leftMinPos,
		LeftMaxPos:          leftMaxPos,
		LeftStrand:          leftStrand,
		RightContig:         cols[6],
		RightMinPos:         rightMinPos,
		RightMaxPos:         rightMaxPos,
		RightStrand:         rightStrand,
		SplitReads:          splitReads,
		ReadPairs:           readPairs,
		Total:               total,
		LeftPileups:         leftPileups,
		RightPileups:        rightPileups,
		LeftFrequency:       leftFrequency,
		RightFrequency:      rightFrequency,
		LeftOverlapsTarget:  leftOverlaps,
		RightOverlapsTarget: rightOverlaps,
		LeftTargets:         cols[19],
		RightTargets:        cols[20],
	}, nil
}
