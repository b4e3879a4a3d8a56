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

// Package breakpoint defines the canonical Breakpoint type and the
// process-lifetime tracker that assigns stable ids to distinct
// breakpoints.
package breakpoint

import "fmt"

// Breakpoint is a canonicalized pair of breakends.
type Breakpoint struct {
	LeftRefIndex  int
	LeftPos       int
	LeftPositive  bool
	RightRefIndex int
	RightPos      int
	RightPositive bool
}

// isCanonical reports whether (LeftRefIndex, LeftPos) <= (RightRefIndex,
// RightPos), ties broken in favor of LeftPositive == true.
func (b Breakpoint) isCanonical() bool {
	if b.LeftRefIndex != b.RightRefIndex {
		return b.LeftRefIndex < b.RightRefIndex
	}
	if b.LeftPos != b.RightPos {
		return b.LeftPos < b.RightPos
	}
	return b.LeftPositive
}

// Reversed swaps the left and right breakends and negates both strands.
func (b Breakpoint) Reversed() Breakpoint {
	return Breakpoint{
		LeftRefIndex:  b.RightRefIndex,
		LeftPos:       b.RightPos,
		LeftPositive:  !b.RightPositive,
		RightRefIndex: b.LeftRefIndex,
		RightPos:      b.LeftPos,
		RightPositive: !b.LeftPositive,
	}
}

// Canonicalize returns (b in canonical form, true) if b was already
// canonical, or (b.Reversed(), false) otherwise.
func Canonicalize(b Breakpoint) (Breakpoint, bool) {
	if b.isCanonical() {
		return b, true
	}
	return b.Reversed(), false
}

func (b Breakpoint) String() string {
	ls, rs := "+", "+"
	if !b.LeftPositive {
		ls = "-"
	}
	if !b.RightPositive {
		rs = "-"
	}
	return fmt.Sprintf("%d:%d%s-%d:%d%s", b.LeftRefIndex, b.LeftPos, ls, b.RightRefIndex, b.RightPos, rs)
}

// EvidenceType distinguishes split-read from read-pair supporting evidence.
type EvidenceType uint8

const (
	SplitRead EvidenceType = iota
	ReadPair
)

// SnakeName returns the snake_case name used in emitted tables.
func (e EvidenceType) SnakeName() string {
	switch e {
	case SplitRead:
		return "split_read"
	case ReadPair:
		return "read_pair"
	default:
		return "unknown"
	}
}

func (e EvidenceType) String() string { return e.SnakeName() }
