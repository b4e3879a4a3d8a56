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

package pileup

import (
	"context"
	"io"
	"sync"

	"github.com/biogo/hts/sam"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/syncqueue"
	"golang.org/x/sync/errgroup"
	"v.io/x/lib/vlog"

	"github.com/grailbio/svpileup/bamio"
	"github.com/grailbio/svpileup/breakpoint"
	"github.com/grailbio/svpileup/detector"
	"github.com/grailbio/svpileup/metrics"
	"github.com/grailbio/svpileup/targets"
	"github.com/grailbio/svpileup/template"
)

// job is one template assigned a position in the input order, for
// re-sequencing before the annotated-record sink writes it out.
type job struct {
	seq int
	raw template.Raw
}

// outcome is the result of processing one job: the (flag-filtered) raw
// template to emit and the breakpoint-tag elements each of its records
// earned. A nil *outcome marks a template skipped because of an error;
// nothing is written to the sink for it.
type outcome struct {
	raw         template.Raw
	tagElements map[*sam.Record][]string
}

// Run drives the full pileup stage: it reads templates from reader,
// detects breakpoints per §4.6-§4.9, writes annotated records to writer,
// and emits the sorted breakpoint table to tableOut. targetIdx may be nil.
func Run(ctx context.Context, reader *bamio.TemplateReader, writer *bamio.TemplateWriter, tableOut io.Writer, targetIdx *targets.Index, opts Options) error {
	if opts.TargetsRequirement != targets.AnnotateOnly && targetIdx == nil {
		return errors.E("pileup: targets BED required for the configured --targets-bed-requirement")
	}

	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	dict := reader.Dictionary()
	tracker := breakpoint.NewTracker()
	var trackerMu sync.Mutex

	jobs := make(chan job, parallelism*4)
	queue := syncqueue.NewOrderedQueue(parallelism * 4)

	procGroup, procCtx := errgroup.WithContext(ctx)

	procGroup.Go(func() error {
		defer close(jobs)
		seq := 0
		for {
			raw, err := reader.Next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return errors.E(err, "pileup: reading template")
			}
			select {
			case jobs <- job{seq: seq, raw: raw}:
			case <-procCtx.Done():
				return procCtx.Err()
			}
			seq++
		}
	})

	for i := 0; i < parallelism; i++ {
		procGroup.Go(func() error {
			for j := range jobs {
				res, err := processTemplate(j.raw, dict, tracker, &trackerMu, opts)
				if err != nil {
					vlog.Errorf("pileup: skipping template %s: %v", j.raw.Name, err)
					res = nil
				}
				if err := queue.Insert(j.seq, res); err != nil {
					return errors.E(err, "pileup: sequencing output")
				}
			}
			return nil
		})
	}

	writeErrCh := make(chan error, 1)
	go func() {
		writeErrCh <- drainQueue(queue, writer)
	}()

	procErr := procGroup.Wait()
	if closeErr := queue.Close(procErr); closeErr != nil && procErr == nil {
		procErr = closeErr
	}
	writeErr := <-writeErrCh
	if procErr != nil {
		return procErr
	}
	if writeErr != nil {
		return writeErr
	}

	return writeTable(tableOut, tracker, dict, targetIdx, opts.TargetsRequirement)
}

func drainQueue(queue *syncqueue.OrderedQueue, writer *bamio.TemplateWriter) error {
	for {
		entry, ok, err := queue.Next()
		if err != nil {
			return errors.E(err, "pileup: writing annotated records")
		}
		if !ok {
			return nil
		}
		res, _ := entry.(*outcome)
		if res == nil {
			continue
		}
		if err := writer.WriteTemplate(res.raw, res.tagElements); err != nil {
			return err
		}
	}
}

func applyFlagExclude(raw template.Raw, exclude sam.Flags) template.Raw {
	if exclude == 0 {
		return raw
	}
	out := raw
	if out.R1Primary != nil && out.R1Primary.Flags&exclude != 0 {
		out.R1Primary = nil
	}
	if out.R2Primary != nil && out.R2Primary.Flags&exclude != 0 {
		out.R2Primary = nil
	}
	out.R1Supps = filterFlags(out.R1Supps, exclude)
	out.R2Supps = filterFlags(out.R2Supps, exclude)
	return out
}

func filterFlags(recs []*sam.Record, exclude sam.Flags) []*sam.Record {
	out := make([]*sam.Record, 0, len(recs))
	for _, r := range recs {
		if r.Flags&exclude == 0 {
			out = append(out, r)
		}
	}
	return out
}

// processTemplate runs one template through the filter, chain builder,
// and detector, committing any evidence to tracker under trackerMu. The
// returned outcome's raw is the flag-excluded template (mirroring the
// input, per §6), independent of whether any breakpoint fired.
func processTemplate(raw template.Raw, dict *bamio.Dictionary, tracker *breakpoint.Tracker, trackerMu *sync.Mutex, opts Options) (*outcome, error) {
	excluded := applyFlagExclude(raw, opts.FlagExclude)
	if excluded.R1Primary == nil && excluded.R2Primary == nil {
		return &outcome{raw: excluded}, nil
	}

	filtered, ok := template.Filter(excluded, opts.Filter)
	if !ok {
		return &outcome{raw: excluded}, nil
	}

	chain, err := template.BuildChain(filtered, opts.Chain)
	if err != nil {
		return nil, err
	}

	evidences := detector.Detect(chain, dict.Circular, opts.Detect)
	if len(evidences) == 0 {
		return &outcome{raw: excluded}, nil
	}

	tagElements := make(map[*sam.Record][]string)
	trackerMu.Lock()
	for _, ev := range evidences {
		id := tracker.Count(ev.Breakpoint, ev.Kind)
		detector.TagElements(id, ev, tagElements)
	}
	trackerMu.Unlock()

	return &outcome{raw: excluded, tagElements: tagElements}, nil
}

func strand(positive bool) string {
	if positive {
		return "+"
	}
	return "-"
}

func writeTable(w io.Writer, tracker *breakpoint.Tracker, dict *bamio.Dictionary, targetIdx *targets.Index, req targets.Requirement) error {
	tw := metrics.NewWriter(w)
	for _, e := range tracker.SortedByPairedOrdering() {
		bp := e.Breakpoint
		leftTargets := targetIdx.JoinedNames(bp.LeftRefIndex, bp.LeftPos, bp.LeftPos)
		rightTargets := targetIdx.JoinedNames(bp.RightRefIndex, bp.RightPos, bp.RightPos)

		if req != targets.AnnotateOnly {
			leftHit := targetIdx.OverlapsAny(bp.LeftRefIndex, bp.LeftPos, bp.LeftPos)
			rightHit := targetIdx.OverlapsAny(bp.RightRefIndex, bp.RightPos, bp.RightPos)
			switch req {
			case targets.OverlapAny:
				if !leftHit && !rightHit {
					continue
				}
			case targets.OverlapBoth:
				if !leftHit || !rightHit {
					continue
				}
			}
		}

		row := metrics.BreakpointPileupRow{
			ID:           e.Info.ID,
			LeftContig:   dict.Name(bp.LeftRefIndex),
			LeftPos:      bp.LeftPos,
			LeftStrand:   strand(bp.LeftPositive),
			RightContig:  dict.Name(bp.RightRefIndex),
			RightPos:     bp.RightPos,
			RightStrand:  strand(bp.RightPositive),
			SplitReads:   e.Info.SplitRead,
			ReadPairs:    e.Info.ReadPair,
			Total:        e.Info.Total(),
			LeftTargets:  leftTargets,
			RightTargets: rightTargets,
		}
		if err := tw.WriteRow(row); err != nil {
			return errors.E(err, "pileup: writing breakpoint table")
		}
	}
	return tw.Flush()
}
