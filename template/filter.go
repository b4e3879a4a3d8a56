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

import "github.com/biogo/hts/sam"

// FilterOptions bundles the MAPQ thresholds of §4.5.
type FilterOptions struct {
	MinPrimaryMapq       int
	MinSupplementaryMapq int
}

func primaryOk(r *sam.Record, minMapq int) bool {
	return r != nil && r.Flags&sam.Unmapped == 0 && int(r.MapQ) >= minMapq
}

// Filter applies §4.5: drop a primary (and its supplementaries) if it is
// unmapped or below MinPrimaryMapq, then filter the surviving end's
// supplementaries to MinSupplementaryMapq. It returns (Raw{}, false) if
// neither primary survives.
func Filter(t Raw, opts FilterOptions) (Raw, bool) {
	r1Ok := primaryOk(t.R1Primary, opts.MinPrimaryMapq)
	r2Ok := primaryOk(t.R2Primary, opts.MinPrimaryMapq)
	if !r1Ok && !r2Ok {
		return Raw{}, false
	}

	out := Raw{Name: t.Name}
	if r1Ok {
		out.R1Primary = t.R1Primary
		out.R1Supps = filterSupps(t.R1Supps, opts.MinSupplementaryMapq)
	}
	if r2Ok {
		out.R2Primary = t.R2Primary
		out.R2Supps = filterSupps(t.R2Supps, opts.MinSupplementaryMapq)
	}
	return out, true
}

func filterSupps(supps []*sam.Record, minMapq int) []*sam.Record {
	out := make([]*sam.Record, 0, len(supps))
	for _, s := range supps {
		if int(s.MapQ) >= minMapq {
			out = append(out, s)
		}
	}
	return out
}
