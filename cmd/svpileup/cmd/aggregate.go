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

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/errors"
	"v.io/x/lib/cmdline"

	"github.com/grailbio/svpileup/aggregate"
	"github.com/grailbio/svpileup/bamio"
	"github.com/grailbio/svpileup/bedpe"
	"github.com/grailbio/svpileup/targets"
)

type aggregateFlags struct {
	input                *string
	output               *string
	bamPath              *string
	flank                *int
	minBreakpointSupport *int
	minFrequency         *float64
	targetsBed           *string
	maxDist              *int
}

func newCmdAggregateSvPileup() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "aggregate-sv-pileup",
		Short: "Cluster nearby breakpoint pileups into aggregated events",
	}
	f := aggregateFlags{
		input:                cmd.Flags.String("input", "", "Input breakpoint table, as produced by sv-pileup (required)"),
		output:               cmd.Flags.String("output", "", "Output aggregated table path (required)"),
		bamPath:              cmd.Flags.String("bam", "", "Optional indexed BAM for allele-frequency computation"),
		flank:                cmd.Flags.Int("flank", 1000, "Bases of flank around each cluster to scan for allele frequency"),
		minBreakpointSupport: cmd.Flags.Int("min-breakpoint-support", 10, "Minimum total support before attempting an allele-frequency scan"),
		minFrequency:         cmd.Flags.Float64("min-frequency", 0.001, "Allele-frequency scans are abandoned once they can no longer meet this bound"),
		targetsBed:           cmd.Flags.String("targets-bed", "", "Optional BED file of named target regions for annotation"),
		maxDist:              cmd.Flags.Int("max-dist", 10, "Maximum per-side position delta for two pileups to cluster together"),
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("aggregate-sv-pileup takes no positional arguments, but got %v", argv)
		}
		return runAggregateSvPileup(f)
	})
	return cmd
}

func runAggregateSvPileup(f aggregateFlags) error {
	if *f.input == "" || *f.output == "" {
		return errors.E("aggregate-sv-pileup: --input and --output are required")
	}

	in, err := os.Open(*f.input)
	if err != nil {
		return errors.E(err, "aggregate-sv-pileup: opening input table")
	}
	defer in.Close()

	pileups, err := aggregate.ParsePileups(in)
	if err != nil {
		return errors.E(err, "aggregate-sv-pileup: parsing input table")
	}

	var dict *bamio.Dictionary
	var source *bamio.RecordSource
	if *f.bamPath != "" {
		bamFile, err := os.Open(*f.bamPath)
		if err != nil {
			return errors.E(err, "aggregate-sv-pileup: opening BAM")
		}
		defer bamFile.Close()
		indexFile, err := os.Open(*f.bamPath + ".bai")
		if err != nil {
			return errors.E(err, "aggregate-sv-pileup: opening BAM index")
		}
		defer indexFile.Close()
		source, err = bamio.NewRecordSource(bamFile, indexFile)
		if err != nil {
			return errors.E(err, "aggregate-sv-pileup: opening record source")
		}
		dict = source.Dictionary()
	}

	var targetIdx *targets.Index
	if *f.targetsBed != "" {
		bedFile, err := os.Open(*f.targetsBed)
		if err != nil {
			return errors.E(err, "aggregate-sv-pileup: opening targets BED")
		}
		defer bedFile.Close()
		if dict == nil {
			return errors.E("aggregate-sv-pileup: --targets-bed requires --bam to resolve contig names")
		}
		targetIdx, err = targets.LoadAuto(bedFile, strings.HasSuffix(*f.targetsBed, ".gz"), dict.RefIndex)
		if err != nil {
			return errors.E(err, "aggregate-sv-pileup: loading targets BED")
		}
	}

	opts := aggregate.DefaultOptions()
	opts.Flank = *f.flank
	opts.MinBreakpointSupport = *f.minBreakpointSupport
	opts.MinFrequency = *f.minFrequency
	opts.MaxDist = *f.maxDist

	rows := aggregate.Aggregate(pileups, dict, source, targetIdx, opts)

	out, err := os.Create(*f.output)
	if err != nil {
		return errors.E(err, "aggregate-sv-pileup: creating output")
	}
	defer out.Close()
	return aggregate.WriteTable(out, rows)
}

type bedpeFlags struct {
	input  *string
	output *string
}

func newCmdAggregateSvPileupToBedPE() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "aggregate-sv-pileup-to-bedpe",
		Short: "Convert an aggregated breakpoint table to BEDPE",
	}
	f := bedpeFlags{
		input:  cmd.Flags.String("input", "", "Input aggregated table, as produced by aggregate-sv-pileup (required)"),
		output: cmd.Flags.String("output", "", "Output BEDPE path (required)"),
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("aggregate-sv-pileup-to-bedpe takes no positional arguments, but got %v", argv)
		}
		return runAggregateSvPileupToBedPE(f)
	})
	return cmd
}

func runAggregateSvPileupToBedPE(f bedpeFlags) error {
	if *f.input == "" || *f.output == "" {
		return errors.E("aggregate-sv-pileup-to-bedpe: --input and --output are required")
	}
	in, err := os.Open(*f.input)
	if err != nil {
		return errors.E(err, "aggregate-sv-pileup-to-bedpe: opening input")
	}
	defer in.Close()

	rows, err := aggregate.ParseAggregatedTable(in)
	if err != nil {
		return errors.E(err, "aggregate-sv-pileup-to-bedpe: parsing input")
	}

	out, err := os.Create(*f.output)
	if err != nil {
		return errors.E(err, "aggregate-sv-pileup-to-bedpe: creating output")
	}
	defer out.Close()
	return bedpe.WriteTable(out, rows)
}
