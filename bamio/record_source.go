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

package bamio

import (
	"io"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/grailbio/base/errors"
)

// RecordSource provides indexed random access to a BAM file's records,
// for the aggregator's allele-frequency scan (§4.10).
type RecordSource struct {
	reader *bam.Reader
	index  *bam.Index
	dict   *Dictionary
}

// NewRecordSource opens a BAM file and its companion index for random
// access. Both readers must support io.ReaderAt-style reuse across queries;
// callers typically pass *os.File values.
func NewRecordSource(bamData io.Reader, indexData io.Reader) (*RecordSource, error) {
	r, err := bam.NewReader(bamData, 0)
	if err != nil {
		return nil, errors.E(err, "bamio: opening BAM file for random access")
	}
	idx, err := bam.ReadIndex(indexData)
	if err != nil {
		return nil, errors.E(err, "bamio: reading BAM index")
	}
	return &RecordSource{reader: r, index: idx, dict: NewDictionary(r.Header())}, nil
}

// Dictionary returns the sequence dictionary of the underlying BAM file.
func (s *RecordSource) Dictionary() *Dictionary { return s.dict }

// RecordsOverlapping returns every record overlapping the 0-based
// half-open [start, end) on refIndex.
func (s *RecordSource) RecordsOverlapping(refIndex, start, end int) ([]*sam.Record, error) {
	refs := s.reader.Header().Refs()
	if refIndex < 0 || refIndex >= len(refs) {
		return nil, errors.E("bamio: refIndex out of range", refIndex)
	}
	chunks, err := s.index.Chunks(refs[refIndex], start, end)
	if err != nil {
		return nil, errors.E(err, "bamio: computing index chunks")
	}
	if len(chunks) == 0 {
		return nil, nil
	}
	it, err := bam.NewIterator(s.reader, chunks)
	if err != nil {
		return nil, errors.E(err, "bamio: creating BAM iterator")
	}
	var out []*sam.Record
	for it.Next() {
		rec := it.Record()
		if rec.Ref != nil && rec.Ref.ID() == refIndex && rec.Start() < end && rec.End() > start {
			out = append(out, rec)
		}
	}
	if err := it.Error(); err != nil {
		return nil, errors.E(err, "bamio: iterating BAM records")
	}
	return out, nil
}
