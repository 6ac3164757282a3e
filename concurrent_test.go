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
	"sync"
	"sync/atomic"
	"testing"
)

// TestConcurrentFind checks that one compiled pattern can be shared by
// many goroutines, each running its own evaluations.
func TestConcurrentFind(t *testing.T) {
	a := MustNew("ab de")

	testCases := []struct {
		text  string
		ambig uint8
		want  bool
	}{
		{"abcde", 0, true},
		{"abXXXXde", 0, true},
		{"ababcccccxede", 1, true},
		{"abcccccxe", 0, false},
		{"xyz", 3, false},
	}

	const numGoroutines = 50
	const numIterations = 100

	var wg sync.WaitGroup
	var failures int64

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				for _, tc := range testCases {
					if a.Find(tc.text, tc.ambig) != tc.want {
						atomic.AddInt64(&failures, 1)
					}
				}
			}
		}()
	}

	wg.Wait()

	if failures != 0 {
		t.Errorf("%d concurrent evaluations returned the wrong result", failures)
	}
}
