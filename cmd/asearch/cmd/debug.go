//  Copyright (c) 2026 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"

	"github.com/couchbaselabs/asearch"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type debugSummary struct {
	Pattern  string
	Len      int
	Final    asearch.State
	Distance int
}

var debugCmd = &cobra.Command{
	Use:   "debug PATTERN TEXT",
	Short: "Prints the automaton state after each character of the text",
	Long: `Prints the accept and epsilon masks of the pattern, followed by the four
state vectors after each character of the text, most significant bit
first.  A summary of the final state ends the output.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("pattern and text are required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := asearch.New(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		err = a.DebugDump(out, args[1])
		if err != nil {
			return err
		}
		spewConfig.Fdump(out, debugSummary{
			Pattern:  args[0],
			Len:      a.Len(),
			Final:    a.Evaluate(args[1]),
			Distance: a.Distance(args[1]),
		})
		return nil
	},
}

func init() {
	RootCmd.AddCommand(debugCmd)
}
