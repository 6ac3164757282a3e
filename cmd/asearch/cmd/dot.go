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
	"github.com/spf13/cobra"
)

var dotAmbiguity uint8
var dotSVGPath string

var dotCmd = &cobra.Command{
	Use:   "dot PATTERN",
	Short: "Exports the automaton of a pattern in GraphViz dot format",
	Long: `Exports the automaton of a pattern in GraphViz dot format.  With --svg
the automaton is rendered to an SVG file instead, which requires dot.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("pattern is required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := asearch.New(args[0])
		if err != nil {
			return err
		}
		if dotSVGPath != "" {
			return asearch.ExportSVGFile(a, dotAmbiguity, dotSVGPath)
		}
		return asearch.ExportDot(a, dotAmbiguity, cmd.OutOrStdout())
	},
}

func init() {
	dotCmd.Flags().Uint8VarP(&dotAmbiguity, "ambiguity", "k", 0, "number of edit levels to draw (0-3)")
	dotCmd.Flags().StringVar(&dotSVGPath, "svg", "", "render SVG to this path")
	RootCmd.AddCommand(dotCmd)
}
