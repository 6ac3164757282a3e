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
	"bytes"
	"strings"
	"testing"
)

func TestDebugDump(t *testing.T) {
	a := MustNew("abcde")

	var buf bytes.Buffer
	err := a.DebugDump(&buf, "abXcde")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	// two masks, the start state and one line per character
	if len(lines) != 2+1+6 {
		t.Fatalf("wanted 9 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "accept:  00000100000000000000000000000000" {
		t.Errorf("unexpected accept line %q", lines[0])
	}
	if lines[1] != "epsilon: 00000000000000000000000000000000" {
		t.Errorf("unexpected epsilon line %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "start    10000000000000000000000000000000 ") {
		t.Errorf("unexpected start line %q", lines[2])
	}
	if !strings.HasPrefix(lines[5], "'X'") {
		t.Errorf("unexpected line %q", lines[5])
	}
}
