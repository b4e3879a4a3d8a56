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

import "sort"

type partitionKey struct {
	leftContig, rightContig string
	leftStrand, rightStrand bool
}

// cluster partitions pileups by (left_contig, right_contig, left_strand,
// right_strand) and finds connected components within each partition
// under the §4.10 adjacency rule, returning one slice of pileups per
// component.
func cluster(pileups []Pileup, maxDist int) [][]Pileup {
	byKey := make(map[partitionKey][]Pileup)
	for _, p := range pileups {
		key := partitionKey{p.LeftContig, p.RightContig, p.LeftStrand, p.RightStrand}
		byKey[key] = append(byKey[key], p)
	}

	var out [][]Pileup
	for _, group := range byKey {
		out = append(out, connectedComponents(group, maxDist)...)
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func neighbors(a, b Pileup, maxDist int) bool {
	return a.ID != b.ID && abs(a.LeftPos-b.LeftPos) <= maxDist && abs(a.RightPos-b.RightPos) <= maxDist
}

func connectedComponents(group []Pileup, maxDist int) [][]Pileup {
	n := len(group)
	visited := make([]bool, n)
	var components [][]Pileup

	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true
		queue := []int{i}
		var comp []Pileup
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, group[cur])
			for j := 0; j < n; j++ {
				if visited[j] {
					continue
				}
				if neighbors(group[cur], group[j], maxDist) {
					visited[j] = true
					queue = append(queue, j)
				}
			}
		}
		components = append(components, comp)
	}
	return components
}

// sortPileupsByID orders a cluster's members by id, for deterministic
// aggregation regardless of map-iteration order upstream.
func sortPileupsByID(pileups []Pileup) {
	sort.Slice(pileups, func(i, j int) bool { return pileups[i].ID < pileups[j].ID })
}
