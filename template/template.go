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

// Raw holds every alignment record sharing a query name, split by read end
// and primary/supplementary status.
type Raw struct {
	Name string

	R1Primary *sam.Record
	R1Supps   []*sam.Record

	R2Primary *sam.Record
	R2Supps   []*sam.Record
}

// AllRecords returns every record that is part of the template, in a
// stable order (R1 primary, R1 supplementaries, R2 primary, R2
// supplementaries).
func (t Raw) AllRecords() []*sam.Record {
	out := make([]*sam.Record, 0, 2+len(t.R1Supps)+len(t.R2Supps))
	if t.R1Primary != nil {
		out = append(out, t.R1Primary)
	}
	out = append(out, t.R1Supps...)
	if t.R2Primary != nil {
		out = append(out, t.R2Primary)
	}
	out = append(out, t.R2Supps...)
	return out
}
