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

// Levels is the number of edit distances tracked side by side.
const Levels = 4

// MaxAmbiguity is the largest edit distance that can be tested for.
const MaxAmbiguity = Levels - 1

// initPat is pattern position 0, zero characters matched.
const initPat uint32 = 0x80000000

// State is the set of pattern positions reachable after some input, one
// bit vector per edit distance.  Bit j counted from the most significant
// bit is pattern position j.
type State [Levels]uint32

// Automaton represents the general contract of a rune-based approximate
// matching automaton
type Automaton interface {

	// Start returns the start state
	Start() State

	// IsMatch returns true if and only if the state is a match using at
	// most the specified number of edits
	IsMatch(State, uint8) bool

	// CanMatch returns true if and only if it is possible to reach a match
	// in zero or more steps
	CanMatch(State) bool

	// Accept returns the next state given the input to the specified state
	Accept(State, rune) State
}

// Start returns the start state: position 0 reached with no edits.
func (a *Asearch) Start() State {
	return State{initPat, 0, 0, 0}
}

// IsMatch returns true if the accepting position was reached in s using at
// most ambig edits.
func (a *Asearch) IsMatch(s State, ambig uint8) bool {
	return s[clampAmbiguity(ambig)]&a.acceptpat != 0
}

// CanMatch returns false once no position is reachable at any distance,
// no further input can change that.
func (a *Asearch) CanMatch(s State) bool {
	return s[0]|s[1]|s[2]|s[3] != 0
}

// Accept returns the state resulting from consuming c in state s.
func (a *Asearch) Accept(s State, c rune) State {
	mask := a.ShiftMask(c)
	i0, i1, i2, i3 := s[0], s[1], s[2], s[3]

	// highest distance first, each level reads the previous value of the
	// level below it
	i3 = (i3 & a.epsilon) | ((i3 & mask) >> 1) | (i2 >> 1) | i2
	i2 = (i2 & a.epsilon) | ((i2 & mask) >> 1) | (i1 >> 1) | i1
	i1 = (i1 & a.epsilon) | ((i1 & mask) >> 1) | (i0 >> 1) | i0
	i0 = (i0 & a.epsilon) | ((i0 & mask) >> 1)

	// deletions
	i1 |= i0 >> 1
	i2 |= i1 >> 1
	i3 |= i2 >> 1

	return State{i0, i1, i2, i3}
}
