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

package detector

import (
	"fmt"

	"github.com/biogo/hts/sam"
	"github.com/grailbio/svpileup/breakpoint"
)

// TagElements computes the §4.9 breakpoint-tag elements contributed by one
// committed piece of evidence (id is the value returned by
// breakpoint.Tracker.Count for ev.Breakpoint). Each element is appended to
// the accumulator keyed by the record it applies to; a record that is a
// member of both From and Into receives one element per role.
func TagElements(id int, ev breakpoint.Evidence, accum map[*sam.Record][]string) {
	fromSide, intoSide := "left", "right"
	if !ev.FromIsLeft {
		fromSide, intoSide = "right", "left"
	}

	for _, r := range ev.From.Records() {
		accum[r] = append(accum[r], fmt.Sprintf("%d;%s;from;%s", id, fromSide, ev.Kind.SnakeName()))
	}
	for _, r := range ev.Into.Records() {
		accum[r] = append(accum[r], fmt.Sprintf("%d;%s;into;%s", id, intoSide, ev.Kind.SnakeName()))
	}
}
