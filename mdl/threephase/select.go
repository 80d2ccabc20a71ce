// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package threephase

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Phases holds the active phases of a run
type Phases struct {
	Water bool
	Oil   bool
	Gas   bool
}

// Num returns the number of active phases
func (o Phases) Num() (n int) {
	for _, on := range []bool{o.Water, o.Oil, o.Gas} {
		if on {
			n++
		}
	}
	return
}

// SelectApproach selects the approach from the active phases and the saturation
// function keyword of the input deck ("", "DEFAULT", "STONE1" or "STONE2").
//  Note: with two active phases the result is TwoPhase, whatever the keyword.
//        The returned TwoPhaseApproach is meaningful only in this case
func SelectApproach(ph Phases, keyword string) (a Approach, tp TwoPhaseApproach, err error) {
	switch ph.Num() {
	case 3:
	case 2:
		switch {
		case !ph.Water:
			tp = GasOil
		case !ph.Gas:
			tp = OilWater
		default:
			tp = GasWater
		}
		return TwoPhase, tp, nil
	default:
		return NoApproach, tp, chk.Err("material laws require two or three active phases; %d given", ph.Num())
	}
	switch strings.ToUpper(strings.TrimSpace(keyword)) {
	case "", "DEFAULT":
		return Default, tp, nil
	case "STONE1":
		return Stone1, tp, nil
	case "STONE2":
		return Stone2, tp, nil
	}
	return NoApproach, tp, chk.Err("saturation function keyword %q is incorrect; options are \"DEFAULT\", \"STONE1\" and \"STONE2\"", keyword)
}
