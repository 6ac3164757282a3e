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

import "sync"

// Registry caches compiled patterns, so that compiling a pattern which was
// seen recently returns the already built Asearch.  Patterns are hashed
// into a fixed number of buckets, each holding the mruSize most recently
// used patterns.
type Registry struct {
	m         sync.Mutex
	table     []*registryEntry
	tableSize uint
	mruSize   uint
	opts      *Options
}

type registryEntry struct {
	pattern  string
	compiled *Asearch
}

// NewRegistry returns a Registry with tableSize buckets of mruSize entries
// each, compiling patterns with opts.  A registry with no room at all
// compiles every pattern afresh.
func NewRegistry(tableSize, mruSize int, opts *Options) *Registry {
	if tableSize < 0 || mruSize < 0 {
		tableSize, mruSize = 0, 0
	}
	nsize := tableSize * mruSize
	rv := &Registry{
		table:     make([]*registryEntry, nsize),
		tableSize: uint(tableSize),
		mruSize:   uint(mruSize),
		opts:      opts,
	}
	return rv
}

// Compile returns the compiled form of pattern, from the cache when
// possible.  Errors are not cached.
func (r *Registry) Compile(pattern string) (*Asearch, error) {
	if len(r.table) == 0 {
		return NewWithOptions(pattern, r.opts)
	}

	r.m.Lock()
	defer r.m.Unlock()

	bucket := r.hash(pattern)
	start := r.mruSize * uint(bucket)
	end := start + r.mruSize
	rc := registryCache(r.table[start:end])
	if ent := rc.entry(pattern); ent != nil {
		return ent.compiled, nil
	}

	compiled, err := NewWithOptions(pattern, r.opts)
	if err != nil {
		return nil, err
	}
	rc.insert(&registryEntry{
		pattern:  pattern,
		compiled: compiled,
	})
	return compiled, nil
}

// Len returns the number of patterns currently cached.
func (r *Registry) Len() int {
	r.m.Lock()
	defer r.m.Unlock()
	var rv int
	for _, ent := range r.table {
		if ent != nil {
			rv++
		}
	}
	return rv
}

const fnvPrime = 1099511628211

func (r *Registry) hash(pattern string) int {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(pattern); i++ {
		h ^= uint64(pattern[i])
		h *= fnvPrime
	}
	return int(h % uint64(r.tableSize))
}

type registryCache []*registryEntry

func (r registryCache) entry(pattern string) *registryEntry {
	for i, ent := range r {
		if ent != nil && ent.pattern == pattern {
			r.promote(i)
			return ent
		}
	}
	return nil
}

func (r registryCache) insert(ent *registryEntry) {
	if len(r) == 1 {
		r[0] = ent
		return
	}
	last := len(r) - 1
	r[last] = ent // discard LRU
	r.promote(last)
}

func (r registryCache) promote(i int) {
	for i > 0 {
		r.swap(i-1, i)
		i--
	}
}

func (r registryCache) swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}
