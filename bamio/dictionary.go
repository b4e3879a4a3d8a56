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

// Package bamio adapts github.com/biogo/hts/bam to the template-grouped
// aligned-record source and sink of §6, plus the sequence dictionary's
// circular-contig flag.
package bamio

import "github.com/biogo/hts/sam"

// circularTag is a non-standard @SQ tag this module recognizes to mark a
// contig as circular (e.g. mitochondrial DNA), following the same
// free-form-tag convention biogo/hts/sam uses for AssemblyID/Species.
var circularTag = sam.Tag{'T', 'P'}

// Dictionary maps contig name/refIndex to length and circularity, derived
// from one sam.Header's @SQ lines.
type Dictionary struct {
	header *sam.Header
}

// NewDictionary wraps header.
func NewDictionary(header *sam.Header) *Dictionary {
	return &Dictionary{header: header}
}

// Header returns the wrapped sam.Header.
func (d *Dictionary) Header() *sam.Header { return d.header }

// RefIndex returns the 0-based reference index for name, or (-1, false) if
// name is not present in the dictionary.
func (d *Dictionary) RefIndex(name string) (int, bool) {
	for _, r := range d.header.Refs() {
		if r.Name() == name {
			return r.ID(), true
		}
	}
	return -1, false
}

// Name returns the contig name at refIndex, or "" if out of range.
func (d *Dictionary) Name(refIndex int) string {
	refs := d.header.Refs()
	if refIndex < 0 || refIndex >= len(refs) {
		return ""
	}
	return refs[refIndex].Name()
}

// Length returns the length of the contig at refIndex.
func (d *Dictionary) Length(refIndex int) int {
	refs := d.header.Refs()
	if refIndex < 0 || refIndex >= len(refs) {
		return 0
	}
	return refs[refIndex].Len()
}

// Circular reports whether the contig at refIndex carries the circular
// marker tag, e.g. `@SQ ... TP:circular`.
func (d *Dictionary) Circular(refIndex int) bool {
	refs := d.header.Refs()
	if refIndex < 0 || refIndex >= len(refs) {
		return false
	}
	return refs[refIndex].Get(circularTag) == "circular"
}
