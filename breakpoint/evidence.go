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

package breakpoint

import "github.com/grailbio/svpileup/segment"

// Evidence ties one detected breakpoint to the records that support it.
//
// Records in From are those whose sequencing-order-earlier side sat on the
// "from" breakend of the originating segment pair; Into is the symmetric
// set for the "into" breakend. FromIsLeft records whether, after
// canonicalization, the From records correspond to the left or right side
// of Breakpoint.
type Evidence struct {
	Breakpoint Breakpoint
	Kind       EvidenceType
	From       segment.RecordSet
	Into       segment.RecordSet
	FromIsLeft bool
}
