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
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/couchbaselabs/asearch"
	"github.com/spf13/cobra"
)

const defaultBatchTableSize = 1024
const defaultBatchMRUSize = 2

var batchTableSize int
var batchMRUSize int

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Matches the records of a CSV file.",
	Long: `Matches the records of a CSV file.  Each record holds a pattern, a
text and the maximum number of edits, and true or false is printed for
each.  Compiled patterns are cached, so repeated patterns are cheap.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf("path is required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		data, release, err := openInput(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		defer func() {
			_ = release()
		}()

		registry := asearch.NewRegistry(batchTableSize, batchMRUSize, nil)
		out := cmd.OutOrStdout()
		recordCount, matched, err := runBatch(out, bytes.NewReader(data), registry)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "matched %d of %d records\n", matched, recordCount)
		return nil
	},
}

func runBatch(w io.Writer, r io.Reader, registry *asearch.Registry) (int, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	var recordCount, matched int
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return recordCount, matched, err
		}
		if len(record) != 3 {
			return recordCount, matched, fmt.Errorf("incorrect number of fields: %v", record)
		}
		ambig, err := strconv.ParseUint(record[2], 10, 8)
		if err != nil {
			return recordCount, matched, err
		}
		a, err := registry.Compile(record[0])
		if err != nil {
			return recordCount, matched, err
		}
		found := a.Find(record[1], uint8(ambig))
		fmt.Fprintf(w, "%t\n", found)
		recordCount++
		if found {
			matched++
		}
	}
	return recordCount, matched, nil
}

func init() {
	batchCmd.Flags().IntVar(&batchTableSize, "table-size", defaultBatchTableSize, "number of buckets in the pattern cache")
	batchCmd.Flags().IntVar(&batchMRUSize, "mru-size", defaultBatchMRUSize, "number of patterns cached per bucket")
	RootCmd.AddCommand(batchCmd)
}
