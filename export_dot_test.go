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

func TestExportDot(t *testing.T) {
	a := MustNew("ab de")

	var buf bytes.Buffer
	err := ExportDot(a, 1, &buf)
	if err != nil {
		t.Fatal(err)
	}
	got := buf.String()

	if !strings.HasPrefix(got, dotHeader) {
		t.Errorf("expected dot header, got %q", got)
	}
	if !strings.HasSuffix(got, dotFooter) {
		t.Errorf("expected dot footer, got %q", got)
	}

	wants := []string{
		`"0_0" -> "0_1" [label="Aa"]`,
		`"0_1" -> "0_2" [label="Bb"]`,
		`"0_2" -> "0_2" [label="*"]`,
		`"1_2" -> "1_2" [label="*"]`,
		`"0_2" -> "0_3" [label="Dd"]`,
		`"0_3" -> "1_3" [label="ins" style=dashed]`,
		`"0_3" -> "1_4" [label="sub/del" style=dashed]`,
		`"0_4" [label="4/0" shape=doublecircle]`,
		`"1_4" [label="4/1" shape=doublecircle]`,
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in:\n%s", want, got)
		}
	}

	// no level above the requested ambiguity
	if strings.Contains(got, `"2_0"`) {
		t.Errorf("unexpected level 2 in:\n%s", got)
	}
}

func TestExportDotNonASCII(t *testing.T) {
	var buf bytes.Buffer
	err := ExportDot(MustNew("漢字"), 0, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"0_0" -> "0_1" [label="漢"]`) {
		t.Errorf("expected han label in:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "ins") {
		t.Errorf("expected no edit edges at ambiguity 0")
	}
}
