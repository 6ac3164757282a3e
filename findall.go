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
	"io"

	"github.com/willf/bitset"
)

// FindAll tests every text against the pattern and returns the set of
// indexes into texts which match using at most ambig edits.
func (a *Asearch) FindAll(texts []string, ambig uint8) *bitset.BitSet {
	rv := bitset.New(uint(len(texts)))
	for i, text := range texts {
		if a.Find(text, ambig) {
			rv.Set(uint(i))
		}
	}
	return rv
}

// FindReader is like Find but reads the text from r.  Reading stops early
// once the automaton can no longer match.
func (a *Asearch) FindReader(r io.Reader, ambig uint8) (bool, error) {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	s := a.Start()
	for {
		c, _, err := rr.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return false, err
		}
		s = a.Accept(s, c)
		if !a.CanMatch(s) {
			return false, nil
		}
	}
	return a.IsMatch(s, ambig), nil
}
