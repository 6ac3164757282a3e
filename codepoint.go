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

// unpack converts text into its codepoints, the indices of the shift
// table.
func unpack(text string) []rune {
	return []rune(text)
}

func isUpper(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

func isLower(c rune) bool {
	return c >= 'a' && c <= 'z'
}

func toLower(c rune) rune {
	if isUpper(c) {
		return c + 0x20
	}
	return c
}

func toUpper(c rune) rune {
	if isLower(c) {
		return c - 0x20
	}
	return c
}
