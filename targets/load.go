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

package targets

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/klauspost/compress/gzip"
)

// ContigLookup maps a BED chromosome name to the refIndex used elsewhere in
// this module (typically sam.Header's reference ID).
type ContigLookup func(name string) (refIndex int, ok bool)

// Load reads a 3+-column BED file (0-based half-open, per the BED spec)
// from r and builds an Index keyed by ContigLookup's refIndex space.
// Unrecognized chromosomes are silently skipped, matching the aligned-record
// source's own dictionary being the source of truth for valid contigs.
func Load(r io.Reader, lookup ContigLookup) (*Index, error) {
	idx := &Index{byRef: make(map[int]*refIndex)}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			fields = strings.Fields(line)
		}
		if len(fields) < 3 {
			return nil, errors.E("targets: malformed BED line", lineNo)
		}
		start0, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.E(err, "targets: invalid start", lineNo)
		}
		end, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, errors.E(err, "targets: invalid end", lineNo)
		}
		name := ""
		if len(fields) >= 4 {
			name = fields[3]
		}

		refID, ok := lookup(fields[0])
		if !ok {
			continue
		}
		ri, ok := idx.byRef[refID]
		if !ok {
			ri = newRefIndex()
			idx.byRef[refID] = ri
		}
		// start0 is 0-based half-open per BED; our insert takes 1-based
		// inclusive, so start0+1 is the 1-based start and end is unchanged.
		if err := ri.insert(start0+1, end, name); err != nil {
			return nil, errors.E(err, "targets: inserting BED interval", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.E(err, "targets: scanning BED file")
	}
	return idx, nil
}

// LoadAuto reads a BED file from r, transparently decompressing it first if
// gz indicates the source is gzip-compressed.
func LoadAuto(r io.Reader, gz bool, lookup ContigLookup) (*Index, error) {
	if gz {
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.E(err, "targets: opening gzip BED file")
		}
		defer gzr.Close()
		return Load(gzr, lookup)
	}
	return Load(r, lookup)
}
