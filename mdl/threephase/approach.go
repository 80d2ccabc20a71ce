// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package threephase implements the parameters of multiplexed three-phase material
// laws. A region (rock type) selects one approach (Default, Stone1, Stone2 or
// TwoPhase) at setup time; its Params object then owns exactly one parameter record
// of the matching type for the rest of the run.
//
// Lifecycle of Params:
//  1. p := NewParams()           -- empty, no approach selected
//  2. p.SetApproach(Stone1)      -- allocates the Stone1 record
//  3. p.EditStone1().Swl = ...   -- setup code populates the record
//  4. p.Finalize()               -- derived quantities computed; object locked
//  5. p.Stone1().Krocw()         -- read-only use in the per-cell loop
//  6. p.Release()                -- the region is torn down
//
// Misuse (selecting twice, editing after Finalize, requesting the record of another
// approach) is a programming error. Checked builds panic; release builds (-tags
// release) skip the checks.
package threephase

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Approach selects the three-phase material law of a region
type Approach int

// approaches
const (
	NoApproach Approach = iota // not selected yet
	Default                    // default (saturation-weighted) approach
	Stone1                     // Stone's first model
	Stone2                     // Stone's second model
	TwoPhase                   // only two phases are active
	nApproaches
)

var approachNames = [nApproaches]string{"none", "default", "stone1", "stone2", "twophase"}

// String returns the name of the approach
func (a Approach) String() string {
	if a < NoApproach || a >= nApproaches {
		return io.Sf("approach(%d)", int(a))
	}
	return approachNames[a]
}

// valid tells whether a is one of the selectable approaches
func (a Approach) valid() bool {
	return a > NoApproach && a < nApproaches
}

// ParseApproach returns the approach with the given name; e.g. "stone1"
func ParseApproach(name string) (Approach, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for a := Default; a < nApproaches; a++ {
		if approachNames[a] == key {
			return a, nil
		}
	}
	return NoApproach, chk.Err("approach %q is not available; options are \"default\", \"stone1\", \"stone2\" and \"twophase\"", name)
}

// TwoPhaseApproach tells which pair of phases is active in a TwoPhase region
type TwoPhaseApproach int

// two-phase approaches
const (
	GasOil   TwoPhaseApproach = iota // water is inactive
	OilWater                         // gas is inactive
	GasWater                         // oil is inactive
)

var twoPhaseNames = [...]string{"gasoil", "oilwater", "gaswater"}

// String returns the name of the two-phase approach
func (a TwoPhaseApproach) String() string {
	if a < GasOil || a > GasWater {
		return io.Sf("twophase(%d)", int(a))
	}
	return twoPhaseNames[a]
}

// ParseTwoPhaseApproach returns the two-phase approach with the given name; e.g. "oilwater"
func ParseTwoPhaseApproach(name string) (TwoPhaseApproach, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range twoPhaseNames {
		if n == key {
			return TwoPhaseApproach(i), nil
		}
	}
	return GasOil, chk.Err("two-phase approach %q is not available; options are \"gasoil\", \"oilwater\" and \"gaswater\"", name)
}
