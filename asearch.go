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

// Package asearch implements approximate pattern matching with a
// bit-parallel automaton.  A compiled pattern decides whether a text
// matches it within a Levenshtein distance of at most 3.  A space in the
// pattern matches any run of zero or more characters, and ASCII letters
// match without regard to case.
package asearch

import (
	"fmt"
	"math/bits"
	"strconv"
)

// MaxCodepoint bounds the codepoints a pattern may contain.  Text
// codepoints at or above it never match a pattern character exactly.
const MaxCodepoint = 0x10000

// MaxPatternLen is the maximum number of non-wildcard characters in a
// pattern.  Position MaxPatternLen is the accepting position, and it must
// still fit in the 32-bit state vectors.
const MaxPatternLen = 31

// NoWildcard may be used as Options.Wildcard to disable the wildcard.
const NoWildcard rune = -1

// ErrPatternTooLong is returned when a pattern has more than
// MaxPatternLen non-wildcard characters.
var ErrPatternTooLong = fmt.Errorf("pattern has more than %d characters", MaxPatternLen)

// ErrCodepointOutOfRange is returned when a pattern contains a codepoint
// at or above MaxCodepoint.
var ErrCodepointOutOfRange = fmt.Errorf("codepoint not below %#x", MaxCodepoint)

var defaultOptions = &Options{
	Wildcard: ' ',
}

// Options controls how a pattern is compiled.
type Options struct {
	// Wildcard is the pattern character which matches any run of zero or
	// more text characters.  Zero selects the default, a space, and
	// NoWildcard disables it.
	Wildcard rune

	// CaseSensitive disables the ASCII case folding of pattern letters.
	CaseSensitive bool
}

// Asearch is a compiled pattern.  It is immutable once built, so a
// single Asearch may be used by any number of goroutines at once.
type Asearch struct {
	shiftpat  [MaxCodepoint]uint32
	acceptpat uint32
	epsilon   uint32
}

// New compiles pattern with the default options.
func New(pattern string) (*Asearch, error) {
	return NewWithOptions(pattern, nil)
}

// MustNew is like New but panics if the pattern cannot be compiled.
func MustNew(pattern string) *Asearch {
	a, err := New(pattern)
	if err != nil {
		panic("asearch: New(" + strconv.Quote(pattern) + "): " + err.Error())
	}
	return a
}

// NewWithOptions compiles pattern.  A nil opts uses the defaults.
func NewWithOptions(pattern string, opts *Options) (*Asearch, error) {
	if opts == nil {
		opts = defaultOptions
	}
	wildcard := opts.Wildcard
	if wildcard == 0 {
		wildcard = defaultOptions.Wildcard
	}

	rv := &Asearch{}
	mask := initPat
	n := 0
	for i, c := range unpack(pattern) {
		if c == wildcard {
			rv.epsilon |= mask
			continue
		}
		if c < 0 || c >= MaxCodepoint {
			return nil, fmt.Errorf("%w: %U at offset %d", ErrCodepointOutOfRange, c, i)
		}
		n++
		if n > MaxPatternLen {
			return nil, ErrPatternTooLong
		}
		rv.shiftpat[c] |= mask
		if !opts.CaseSensitive {
			rv.shiftpat[toUpper(c)] |= mask
			rv.shiftpat[toLower(c)] |= mask
		}
		mask >>= 1
	}
	rv.acceptpat = mask
	return rv, nil
}

// Find reports whether text matches the pattern using at most ambig
// edits.  Values of ambig above MaxAmbiguity are treated as MaxAmbiguity.
func (a *Asearch) Find(text string, ambig uint8) bool {
	return a.IsMatch(a.Evaluate(text), ambig)
}

// Evaluate runs the automaton over all of text and returns the final
// state.
func (a *Asearch) Evaluate(text string) State {
	s := a.Start()
	for _, c := range unpack(text) {
		s = a.Accept(s, c)
	}
	return s
}

// Distance returns the smallest number of edits, up to MaxAmbiguity, with
// which text matches the pattern, or -1 if it does not match at all.
func (a *Asearch) Distance(text string) int {
	s := a.Evaluate(text)
	for d := range s {
		if s[d]&a.acceptpat != 0 {
			return d
		}
	}
	return -1
}

// Len returns the number of non-wildcard characters in the pattern.
func (a *Asearch) Len() int {
	return bits.LeadingZeros32(a.acceptpat)
}

// AcceptMask returns the bit marking the position after the last pattern
// character.
func (a *Asearch) AcceptMask() uint32 {
	return a.acceptpat
}

// EpsilonMask returns the positions annotated by a wildcard.
func (a *Asearch) EpsilonMask() uint32 {
	return a.epsilon
}

// ShiftMask returns the positions of the pattern matched by the codepoint
// c.  It is zero for codepoints outside the pattern's alphabet.
func (a *Asearch) ShiftMask(c rune) uint32 {
	if c < 0 || c >= MaxCodepoint {
		return 0
	}
	return a.shiftpat[c]
}

func clampAmbiguity(ambig uint8) uint8 {
	if ambig > MaxAmbiguity {
		return MaxAmbiguity
	}
	return ambig
}
