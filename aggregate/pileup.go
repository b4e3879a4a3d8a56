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

// Package aggregate clusters nearby breakpoint pileups that likely
// describe the same underlying event, and computes allele-frequency and
// target-overlap annotations for each cluster (§4.10).
package aggregate

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
)

// Pileup is one parsed row of the breakpoint table produced by the
// pileup stage.
type Pileup struct {
	ID           int
	LeftContig   string
	LeftPos      int
	LeftStrand   bool // true is '+'
	RightContig  string
	RightPos     int
	RightStrand  bool
	SplitReads   int
	ReadPairs    int
	Total        int
	LeftTargets  string
	RightTargets string
}

func parseStrand(s string) (bool, error) {
	switch s {
	case "+":
		return true, nil
	case "-":
		return false, nil
	default:
		return false, errors.E("aggregate: invalid strand", s)
	}
}

// ParsePileups reads the tab-delimited breakpoint table (including its
// header line) and returns the parsed rows, validating the
// total == split_reads + read_pairs invariant.
func ParsePileups(r io.Reader) ([]Pileup, error) {
	scanner := bufio.NewScanner(r)
	var out []Pileup
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
		if len(cols) != 12 {
			return nil, errors.E("aggregate: malformed breakpoint table row", lineNum)
		}
		p, err := parsePileupRow(cols)
		if err != nil {
			return nil, errors.E(err, "aggregate: parsing breakpoint table", lineNum)
		}
		if p.Total != p.SplitReads+p.ReadPairs {
			return nil, errors.E("aggregate: total does not equal split_reads + read_pairs", lineNum)
		}
		out = append(out, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E(err, "aggregate: reading breakpoint table")
	}
	return out, nil
}

func parsePileupRow(cols []string) (Pileup, error) {
	id, err := strconv.Atoi(cols[0])
	if err != nil {
		return Pileup{}, errors.E(err, "id")
	}
	leftPos, err := strconv.Atoi(cols[2])
	if err != nil {
		return Pileup{}, errors.E(err, "left_pos")
	}
	leftStrand, err := parseStrand(cols[3])
	if err != nil {
		return Pileup{}, err
	}
	rightPos, err := strconv.Atoi(cols[5])
	if err != nil {
		return Pileup{}, errors.E(err, "right_pos")
	}
	rightStrand, err := parseStrand(cols[6])
	if err != nil {
		return Pileup{}, err
	}
	splitReads, err := strconv.Atoi(cols[7])
	if err != nil {
		return Pileup{}, errors.E(err, "split_reads")
	}
	readPairs, err := strconv.Atoi(cols[8])
	if err != nil {
		return Pileup{}, errors.E(err, "read_pairs")
	}
	total, err := strconv.Atoi(cols[9])
	if err != nil {
		return Pileup{}, errors.E(err, "total")
	}
	return Pileup{
		ID:           id,
		LeftContig:   cols[1],
		LeftPos:      leftPos,
		LeftStrand:   leftStrand,
		RightContig:  cols[4],
		RightPos:     rightPos,
		RightStrand:  rightStrand,
		SplitReads:   splitReads,
		ReadPairs:    readPairs,
		Total:        total,
		LeftTargets:  cols[10],
		RightTargets: cols[11],
	}, nil
}
