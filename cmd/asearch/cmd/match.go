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
	"bytes"
	"fmt"
	"io"

	"github.com/couchbaselabs/asearch"
	"github.com/spf13/cobra"
)

var matchAmbiguity uint8
var matchLineNumbers bool
var matchCount bool

var matchCmd = &cobra.Command{
	Use:   "match PATTERN [FILE...]",
	Short: "Prints the lines which approximately match the pattern",
	Long: `Prints the lines of the named files which match the pattern with at
most the requested number of edits.  With no file, or when the file is -,
stdin is read.`,
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
		paths := args[1:]
		if len(paths) == 0 {
			paths = []string{"-"}
		}
		opts := matchOptions{
			ambiguity:   matchAmbiguity,
			lineNumbers: matchLineNumbers,
			count:       matchCount,
			withPath:    len(paths) > 1,
		}

		out := cmd.OutOrStdout()
		var total int
		for _, path := range paths {
			n, err := matchPath(out, cmd.InOrStdin(), a, path, opts)
			if err != nil {
				return err
			}
			total += n
		}
		if matchCount {
			fmt.Fprintf(out, "%d\n", total)
		}
		return nil
	},
}

type matchOptions struct {
	ambiguity   uint8
	lineNumbers bool
	count       bool
	withPath    bool
}

func matchPath(w io.Writer, stdin io.Reader, a *asearch.Asearch, path string, opts matchOptions) (int, error) {
	data, release, err := openInput(path, stdin)
	if err != nil {
		return 0, err
	}
	lines := splitLines(data)
	err = release()
	if err != nil {
		return 0, err
	}

	matched := a.FindAll(lines, opts.ambiguity)
	if opts.count {
		return int(matched.Count()), nil
	}
	for i, ok := matched.NextSet(0); ok; i, ok = matched.NextSet(i + 1) {
		if opts.withPath {
			fmt.Fprintf(w, "%s:", path)
		}
		if opts.lineNumbers {
			fmt.Fprintf(w, "%d:", i+1)
		}
		fmt.Fprintln(w, lines[i])
	}
	return int(matched.Count()), nil
}

// splitLines copies each line out of data, which may be unmapped
// afterwards.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	data = bytes.TrimSuffix(data, []byte("\n"))
	parts := bytes.Split(data, []byte("\n"))
	rv := make([]string, len(parts))
	for i, part := range parts {
		rv[i] = string(bytes.TrimSuffix(part, []byte("\r")))
	}
	return rv
}

func init() {
	matchCmd.Flags().Uint8VarP(&matchAmbiguity, "ambiguity", "k", 0, "maximum number of edits (0-3)")
	matchCmd.Flags().BoolVarP(&matchLineNumbers, "line-number", "n", false, "prefix each line with its line number")
	matchCmd.Flags().BoolVarP(&matchCount, "count", "c", false, "only print the number of matching lines")
	RootCmd.AddCommand(matchCmd)
}
