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
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/svpileup/template"
)

// TemplateWriter writes annotated alignment records, tagging each with the
// breakpoint elements it contributed via tag (default "be").
type TemplateWriter struct {
	w   *bam.Writer
	tag sam.Tag
}

// NewTemplateWriter opens a BAM writer using header and the given breakpoint
// tag name (a two-character SAM aux tag, e.g. "be").
func NewTemplateWriter(w io.Writer, header *sam.Header, tagName string, writeConcurrency int) (*TemplateWriter, error) {
	if len(tagName) != 2 {
		return nil, errors.E("bamio: breakpoint tag name must be exactly two characters", tagName)
	}
	bw, err := bam.NewWriter(w, header, writeConcurrency)
	if err != nil {
		return nil, errors.E(err, "bamio: opening BAM writer")
	}
	return &TemplateWriter{w: bw, tag: sam.Tag{tagName[0], tagName[1]}}, nil
}

// WriteTemplate writes every record of raw, in stable input order, applying
// tagElements (keyed by record pointer) as the breakpoint tag value when
// present.
func (w *TemplateWriter) WriteTemplate(raw template.Raw, tagElements map[*sam.Record][]string) error {
	for _, rec := range raw.AllRecords() {
		if elems, ok := tagElements[rec]; ok && len(elems) > 0 {
			aux, err := sam.NewAux(w.tag, strings.Join(elems, ","))
			if err != nil {
				return errors.E(err, "bamio: building breakpoint tag")
			}
			rec.AuxFields = append(rec.AuxFields, aux)
		}
		if err := w.w.Write(rec); err != nil {
			return errors.E(err, "bamio: writing BAM record", rec.Name)
		}
	}
	return nil
}

// Close closes the underlying BAM writer.
func (w *TemplateWriter) Close() error {
	return w.w.Close()
}
