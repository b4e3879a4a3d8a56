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

	"github.com/biogo/hts/sam"
	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/vcontext"
	"v.io/x/lib/cmdline"

	"github.com/grailbio/svpileup/bamio"
	"github.com/grailbio/svpileup/pileup"
	"github.com/grailbio/svpileup/targets"
)

type svPileupFlags struct {
	input                *string
	output               *string
	maxReadPairInner     *int
	maxSegmentInner      *int
	minPrimaryMapq       *int
	minSupplementaryMapq *int
	minUniqueBases       *int
	slop                 *int
	flagExclude          *int
	targetsBed           *string
	targetsRequirement   *string
	parallelism          *int
}

func newCmdSvPileup() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "sv-pileup",
		Short: "Detect candidate structural-variant breakpoints from a BAM of aligned templates",
	}
	f := svPileupFlags{
		input:                cmd.Flags.String("input", "", "Input queryname-grouped BAM path (required)"),
		output:               cmd.Flags.String("output", "", "Output path prefix; writes <prefix>.txt and <prefix>.bam (required)"),
		maxReadPairInner:     cmd.Flags.Int("max-read-pair-inner-distance", 1000, "Maximum inner distance between read-pair segments before a breakpoint fires"),
		maxSegmentInner:      cmd.Flags.Int("max-aligned-segment-inner-distance", 100, "Maximum inner distance between within-read segments before a breakpoint fires"),
		minPrimaryMapq:       cmd.Flags.Int("min-primary-mapping-quality", 30, "Minimum MAPQ for a primary alignment to be considered"),
		minSupplementaryMapq: cmd.Flags.Int("min-supplementary-mapping-quality", 18, "Minimum MAPQ for a supplementary alignment to be considered"),
		minUniqueBases:       cmd.Flags.Int("min-unique-bases-to-add", 20, "Minimum unique read bases a supplementary alignment must add to join the chain"),
		slop:                 cmd.Flags.Int("slop", 5, "Base-pair tolerance when partitioning merged-segment records into left/right breakends"),
		flagExclude:          cmd.Flags.Int("flag-exclude", 0x500, "Records with a FLAG bit intersecting this value are dropped before template assembly"),
		targetsBed:           cmd.Flags.String("targets-bed", "", "Optional BED file of named target regions for breakpoint annotation"),
		targetsRequirement:   cmd.Flags.String("targets-bed-requirement", "AnnotateOnly", "One of AnnotateOnly, OverlapAny, OverlapBoth"),
		parallelism:          cmd.Flags.Int("parallelism", 1, "Number of templates to process concurrently"),
	}
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return fmt.Errorf("sv-pileup takes no positional arguments, but got %v", argv)
		}
		return runSvPileup(f)
	})
	return cmd
}

func runSvPileup(f svPileupFlags) error {
	if *f.input == "" || *f.output == "" {
		return errors.E("sv-pileup: --input and --output are required")
	}
	requirement, ok := targets.ParseRequirement(*f.targetsRequirement)
	if !ok {
		return errors.E("sv-pileup: invalid --targets-bed-requirement", *f.targetsRequirement)
	}
	if requirement != targets.AnnotateOnly && *f.targetsBed == "" {
		return errors.E("sv-pileup: --targets-bed is required when --targets-bed-requirement is not AnnotateOnly")
	}

	in, err := os.Open(*f.input)
	if err != nil {
		return errors.E(err, "sv-pileup: opening input")
	}
	defer in.Close()

	reader, err := bamio.NewTemplateReader(in, 0)
	if err != nil {
		return errors.E(err, "sv-pileup: opening template reader")
	}
	defer reader.Close()

	var targetIdx *targets.Index
	if *f.targetsBed != "" {
		bedFile, err := os.Open(*f.targetsBed)
		if err != nil {
			return errors.E(err, "sv-pileup: opening targets BED")
		}
		defer bedFile.Close()
		targetIdx, err = targets.LoadAuto(bedFile, strings.HasSuffix(*f.targetsBed, ".gz"), reader.Dictionary().RefIndex)
		if err != nil {
			return errors.E(err, "sv-pileup: loading targets BED")
		}
	}

	bamOut, err := os.Create(*f.output + ".bam")
	if err != nil {
		return errors.E(err, "sv-pileup: creating output BAM")
	}
	defer bamOut.Close()

	writer, err := bamio.NewTemplateWriter(bamOut, reader.Dictionary().Header(), "be", 1)
	if err != nil {
		return errors.E(err, "sv-pileup: opening template writer")
	}

	tableOut, err := os.Create(*f.output + ".txt")
	if err != nil {
		return errors.E(err, "sv-pileup: creating output table")
	}
	defer tableOut.Close()

	opts := pileup.DefaultOptions()
	opts.Detect.MaxReadPairInnerDistance = *f.maxReadPairInner
	opts.Detect.MaxWithinReadDistance = *f.maxSegmentInner
	opts.Filter.MinPrimaryMapq = *f.minPrimaryMapq
	opts.Filter.MinSupplementaryMapq = *f.minSupplementaryMapq
	opts.Chain.MinUniqueBasesToAdd = *f.minUniqueBases
	opts.Chain.Slop = *f.slop
	opts.FlagExclude = sam.Flags(*f.flagExclude)
	opts.Parallelism = *f.parallelism
	opts.TargetsRequirement = requirement

	if err := pileup.Run(vcontext.Background(), reader, writer, tableOut, targetIdx, opts); err != nil {
		return errors.E(err, "sv-pileup: running pileup")
	}
	return writer.Close()
}
