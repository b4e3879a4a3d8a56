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

// Package pileup is the driver of the §2 "Pileup driver" stage: it owns
// template iteration, invokes the template and detector packages,
// accumulates evidence into a breakpoint.Tracker, and writes annotated
// alignment records plus the breakpoint table.
package pileup

import (
	"github.com/biogo/hts/sam"

	"github.com/grailbio/svpileup/detector"
	"github.com/grailbio/svpileup/targets"
	"github.com/grailbio/svpileup/template"
)

// Options bundles every tunable of the §6 SvPileup CLI surface.
type Options struct {
	Filter  template.FilterOptions
	Chain   template.Options
	Detect  detector.Options

	// FlagExclude drops, before template assembly, any record whose SAM
	// flags intersect this mask. Default 0x500 (secondary + duplicate).
	FlagExclude sam.Flags

	// BreakpointTagName names the two-character aux tag for contributing
	// records. Default "be". Run does not read this field: the tag written
	// is the one the bamio.TemplateWriter was created with.
	BreakpointTagName string

	// Parallelism bounds the number of worker goroutines processing
	// templates concurrently. 1 means sequential processing.
	Parallelism int

	// TargetsRequirement governs whether pileups lacking the required
	// target overlap are dropped from the emitted table.
	TargetsRequirement targets.Requirement
}

// DefaultOptions returns the §6 CLI defaults.
func DefaultOptions() Options {
	return Options{
		Filter: template.FilterOptions{
			MinPrimaryMapq:       30,
			MinSupplementaryMapq: 18,
		},
		Chain: template.Options{
			MinUniqueBasesToAdd: 20,
			Slop:                5,
		},
		Detect: detector.Options{
			MaxWithinReadDistance:    100,
			MaxReadPairInnerDistance: 1000,
		},
		FlagExclude:        sam.Secondary | sam.Duplicate,
		BreakpointTagName:  "be",
		Parallelism:        1,
		TargetsRequirement: targets.AnnotateOnly,
	}
}
