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

//go:build havedot
// +build havedot

package asearch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExportSVGFile(t *testing.T) {
	a := MustNew("ab de")

	path := filepath.Join(t.TempDir(), "tmp.svg")

	err := ExportSVGFile(a, 2, path)
	if err != nil {
		t.Fatal(err)
	}

	finfo, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if finfo.Size() == 0 {
		t.Fatalf("expected non-zero file size, got 0")
	}
}
