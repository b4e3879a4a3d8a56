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

package template

import (
	"github.com/biogo/hts/sam"
	"github.com/grailbio/base/errors"

	"github.com/grailbio/svpileup/segment"
)

// Options bundles the tunables that drive chain construction (§4.2-§4.4).
type Options struct {
	MinUniqueBasesToAdd int
	Slop                int
}

// buildReadEndChain builds the per-read-end chain (§4.2) for one end of
// the template. primary may be nil, in which case the returned chain is
// empty.
func buildReadEndChain(primary *sam.Record, supps []*sam.Record, minUniqueBasesToAdd int) ([]segment.AlignedSegment, error) {
	if primary == nil {
		return nil, nil
	}
	primarySeg, err := segment.New(primary)
	if err != nil {
		return nil, err
	}
	suppSegs := make([]segment.AlignedSegment, 0, len(supps))
	for _, s := range supps {
		seg, err := segment.New(s)
		if err != nil {
			return nil, err
		}
		suppSegs = append(suppSegs, seg)
	}
	readLength := primary.Seq.Length
	return perReadChain(primarySeg, suppSegs, readLength, minUniqueBasesToAdd), nil
}

// reverseAndNegate returns a new slice holding chain's segments in reverse
// order with each segment's strand negated, per step 4 of §4.3 (R2 is expressed in the
// template's forward sequencing direction after this transform).
func reverseAndNegate(chain []segment.AlignedSegment) []segment.AlignedSegment {
	out := make([]segment.AlignedSegment, len(chain))
	for i, s := range chain {
		s.PositiveStrand = !s.PositiveStrand
		out[len(chain)-1-i] = s
	}
	return out
}

// BuildChain turns a Raw template into the ordered chain of aligned
// segments described in §4.3. It fails with an EmptyTemplate error if
// neither R1 nor R2 has a primary alignment.
func BuildChain(t Raw, opts Options) ([]segment.AlignedSegment, error) {
	if t.R1Primary == nil && t.R2Primary == nil {
		return nil, errors.E("template: EmptyTemplate", t.Name)
	}

	r1Chain, err := buildReadEndChain(t.R1Primary, t.R1Supps, opts.MinUniqueBasesToAdd)
	if err != nil {
		return nil, err
	}
	r2Chain, err := buildReadEndChain(t.R2Primary, t.R2Supps, opts.MinUniqueBasesToAdd)
	if err != nil {
		return nil, err
	}

	if len(r1Chain) == 0 {
		return r2Chain, nil
	}
	if len(r2Chain) == 0 {
		return r1Chain, nil
	}

	r2Chain = reverseAndNegate(r2Chain)
	return mergeChains(r1Chain, r2Chain, opts.Slop), nil
}
