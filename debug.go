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
	"fmt"
	"io"
)

// DebugDump is only intended for debug purposes, it writes the accept and
// epsilon masks followed by the state reached after each codepoint of
// text to the provided Writer.
func (a *Asearch) DebugDump(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, "accept:  %032b\nepsilon: %032b\n", a.acceptpat, a.epsilon)
	if err != nil {
		return err
	}
	s := a.Start()
	err = dumpState(w, "start", s)
	if err != nil {
		return err
	}
	for _, c := range unpack(text) {
		s = a.Accept(s, c)
		err = dumpState(w, fmt.Sprintf("%q", c), s)
		if err != nil {
			return err
		}
	}
	return nil
}

func dumpState(w io.Writer, label string, s State) error {
	_, err := fmt.Fprintf(w, "%-8s %032b %032b %032b %032b\n", label, s[0], s[1], s[2], s[3])
	return err
}
