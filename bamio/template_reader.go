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
	"github.com/grailbio/svpileup/template"
)

// TemplateReader groups a queryname-ordered BAM record stream into
// template.Raw values, one per distinct query name. The input is assumed to
// already be queryname-grouped (as produced by `samtools collate` or an
// unsorted-by-position alignment run): records of one template must be
// adjacent, and a query name that reappears later starts a new template.
type TemplateReader struct {
	r       *bam.Reader
	dict    *Dictionary
	pending *sam.Record
}

// NewTemplateReader wraps a BAM stream. readAhead is the bam.Reader
// read-ahead buffer count (0 picks the library default).
func NewTemplateReader(r io.Reader, readAhead int) (*TemplateReader, error) {
	br, err := bam.NewReader(r, readAhead)
	if err != nil {
		return nil, errors.E(err, "bamio: opening BAM stream")
	}
	return &TemplateReader{r: br, dict: NewDictionary(br.Header())}, nil
}

// Dictionary returns the sequence dictionary derived from the stream's
// header.
func (t *TemplateReader) Dictionary() *Dictionary { return t.dict }

// Next returns the next template, or (nil, io.EOF) at end of stream.
func (t *TemplateReader) Next() (template.Raw, error) {
	var raw template.Raw
	first := true

	for {
		var rec *sam.Record
		if t.pending != nil {
			rec = t.pending
			t.pending = nil
		} else {
			var err error
			rec, err = t.r.Read()
			if err == io.EOF {
				if first {
					return template.Raw{}, io.EOF
				}
				break
			}
			if err != nil {
				return template.Raw{}, errors.E(err, "bamio: reading BAM record")
			}
		}

		if first {
			raw.Name = rec.Name
			first = false
		} else if rec.Name != raw.Name {
			t.pending = rec
			break
		}

		addRecord(&raw, rec)
	}
	return raw, nil
}

func addRecord(raw *template.Raw, rec *sam.Record) {
	isRead2 := rec.Flags&sam.Paired != 0 && rec.Flags&sam.Read2 != 0
	isSupp := rec.Flags&sam.Supplementary != 0 || rec.Flags&sam.Secondary != 0
	switch {
	case !isSupp && !isRead2:
		raw.R1Primary = rec
	case !isSupp && isRead2:
		raw.R2Primary = rec
	case isSupp && !isRead2:
		raw.R1Supps = append(raw.R1Supps, rec)
	default:
		raw.R2Supps = append(raw.R2Supps, rec)
	}
}

// Close closes the underlying BAM reader.
func (t *TemplateReader) Close() error {
	return t.r.Close()
}
