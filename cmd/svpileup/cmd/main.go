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

// Package cmd implements the sv-pileup family of subcommands.
package cmd

import (
	"v.io/x/lib/cmdline"
)

// Run parses os.Args and dispatches to the matching subcommand.
func Run() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(&cmdline.Command{
		Name:  "svpileup",
		Short: "Detect and aggregate structural-variant breakpoints from aligned reads",
		Children: []*cmdline.Command{
			newCmdSvPileup(),
			newCmdAggregateSvPileup(),
			newCmdAggregateSvPileupToBedPE(),
		},
	})
}
