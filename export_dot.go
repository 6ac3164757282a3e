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

package asearch

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/bits"
)

var dotHeader = `digraph g {
rankdir=LR
`

var dotFooter = `}
`

// ExportDot will export the automaton of the provided compiled pattern,
// up to ambig edits, into the GraphViz (dot) file format.
func ExportDot(a *Asearch, ambig uint8, w io.Writer) error {
	bw := bufio.NewWriter(w)

	_, err := bw.WriteString(dotHeader)
	if err != nil {
		return err
	}

	levels := int(clampAmbiguity(ambig))
	labels := a.positionLabels()
	for d := 0; d <= levels; d++ {
		err = exportLevelDot(a, d, levels, labels, bw)
		if err != nil {
			return err
		}
	}

	_, err = bw.WriteString(dotFooter)
	if err != nil {
		return err
	}

	return bw.Flush()
}

func exportLevelDot(a *Asearch, d, levels int, labels [][]rune, bw *bufio.Writer) error {
	n := a.Len()
	var buf bytes.Buffer
	for j := 0; j <= n; j++ {
		id := dotNodeID(d, j)
		if j == n {
			_, _ = buf.WriteString(fmt.Sprintf("%s [label=\"%d/%d\" shape=doublecircle]\n", id, j, d))
		} else {
			_, _ = buf.WriteString(fmt.Sprintf("%s [label=\"%d/%d\"]\n", id, j, d))
		}
		if a.epsilon&(initPat>>uint(j)) != 0 {
			_, _ = buf.WriteString(fmt.Sprintf("%s -> %s [label=\"*\"]\n", id, id))
		}
		if j < n {
			_, _ = buf.WriteString(fmt.Sprintf("%s -> %s [label=%q]\n", id, dotNodeID(d, j+1), string(labels[j])))
		}
		if d < levels {
			_, _ = buf.WriteString(fmt.Sprintf("%s -> %s [label=\"ins\" style=dashed]\n", id, dotNodeID(d+1, j)))
			if j < n {
				_, _ = buf.WriteString(fmt.Sprintf("%s -> %s [label=\"sub/del\" style=dashed]\n", id, dotNodeID(d+1, j+1)))
			}
		}
	}
	_, _ = buf.WriteString("\n\n")

	_, err := bw.Write(buf.Bytes())
	return err
}

func dotNodeID(d, j int) string {
	return fmt.Sprintf("\"%d_%d\"", d, j)
}

// positionLabels recovers, for each pattern position, the codepoints which
// match it exactly.
func (a *Asearch) positionLabels() [][]rune {
	rv := make([][]rune, a.Len())
	for c := range a.shiftpat {
		mask := a.shiftpat[c]
		for mask != 0 {
			j := bits.LeadingZeros32(mask)
			if j < len(rv) {
				rv[j] = append(rv[j], rune(c))
			}
			mask &^= initPat >> uint(j)
		}
	}
	return rv
}
