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

// svpileup detects candidate structural-variant breakpoints from aligned
// sequencing reads and aggregates nearby breakpoints into events. See
// cmd/svpileup/cmd for the sv-pileup, aggregate-sv-pileup, and
// aggregate-sv-pileup-to-bedpe subcommands.
package main

import (
	"github.com/grailbio/svpileup/cmd/svpileup/cmd"
)

func main() {
	cmd.Run()
}
