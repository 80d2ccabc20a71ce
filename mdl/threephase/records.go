// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package threephase

import (
	"strings"

	"github.com/ElyesAhmed/opm-simulators/dbg"
	"github.com/ElyesAhmed/opm-simulators/mdl/twophase"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// add records to factory
func init() {
	allocators[Default] = func() payload {
		allocated[Default].Inc()
		return new(defaultCase)
	}
	allocators[Stone1] = func() payload {
		c := new(stone1Case)
		c.Edit().Eta = 1
		allocated[Stone1].Inc()
		return c
	}
	allocators[Stone2] = func() payload {
		allocated[Stone2].Inc()
		return new(stone2Case)
	}
	allocators[TwoPhase] = func() payload {
		allocated[TwoPhase].Inc()
		return new(twoPhaseCase)
	}
}

// DefaultParams holds the parameters of the Default approach
type DefaultParams struct {
	GasOil   twophase.Model // gas-oil sub-law; wetting saturation = so + swl
	OilWater twophase.Model // oil-water sub-law; wetting saturation = sw
	Swl      float64        // connate water saturation
}

// Init sets the scalar parameters
func (o *DefaultParams) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "swl":
			o.Swl = p.V
		default:
			return chk.Err("default: parameter named %q is incorrect\n", p.N)
		}
	}
	return checkSwl("default", o.Swl)
}

// Finalize checks the sub-laws
func (o *DefaultParams) Finalize() {
	if dbg.Checked {
		checkLaw(Default, "GasOil", o.GasOil)
		checkLaw(Default, "OilWater", o.OilWater)
	}
}

// Stone1Params holds the parameters of the Stone1 approach
type Stone1Params struct {
	GasOil   twophase.Model // gas-oil sub-law
	OilWater twophase.Model // oil-water sub-law
	Swl      float64        // connate water saturation
	Eta      float64        // exponent of the normalised oil saturation; default = 1

	// derived
	krocw float64 // oil relative permeability at connate water
}

// Init sets the scalar parameters
func (o *Stone1Params) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "swl":
			o.Swl = p.V
		case "eta":
			o.Eta = p.V
		default:
			return chk.Err("stone1: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.Eta <= 0 {
		return chk.Err("stone1: exponent eta = %g must be positive", o.Eta)
	}
	return checkSwl("stone1", o.Swl)
}

// Finalize checks the sub-laws and computes krocw
func (o *Stone1Params) Finalize() {
	if dbg.Checked {
		checkLaw(Stone1, "GasOil", o.GasOil)
		checkLaw(Stone1, "OilWater", o.OilWater)
	}
	o.krocw = o.OilWater.Krn(o.Swl)
}

// Krocw returns the oil relative permeability at connate water saturation
func (o *Stone1Params) Krocw() float64 {
	return o.krocw
}

// Stone2Params holds the parameters of the Stone2 approach
type Stone2Params struct {
	GasOil   twophase.Model // gas-oil sub-law
	OilWater twophase.Model // oil-water sub-law
	Swl      float64        // connate water saturation

	// derived
	krocw float64 // oil relative permeability at connate water
}

// Init sets the scalar parameters
func (o *Stone2Params) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "swl":
			o.Swl = p.V
		default:
			return chk.Err("stone2: parameter named %q is incorrect\n", p.N)
		}
	}
	return checkSwl("stone2", o.Swl)
}

// Finalize checks the sub-laws and computes krocw
func (o *Stone2Params) Finalize() {
	if dbg.Checked {
		checkLaw(Stone2, "GasOil", o.GasOil)
		checkLaw(Stone2, "OilWater", o.OilWater)
	}
	o.krocw = o.OilWater.Krn(o.Swl)
}

// Krocw returns the oil relative permeability at connate water saturation
func (o *Stone2Params) Krocw() float64 {
	return o.krocw
}

// TwoPhaseParams holds the parameters of the TwoPhase approach. Only the sub-law of
// the active pair of phases is required
type TwoPhaseParams struct {
	Phases   TwoPhaseApproach // active pair of phases
	GasOil   twophase.Model   // gas-oil sub-law
	OilWater twophase.Model   // oil-water sub-law
	GasWater twophase.Model   // gas-water sub-law
}

// Init sets the scalar parameters. The TwoPhase approach has none
func (o *TwoPhaseParams) Init(prms dbf.Params) (err error) {
	if len(prms) > 0 {
		return chk.Err("twophase: parameter named %q is incorrect\n", prms[0].N)
	}
	return
}

// Finalize checks the sub-law of the active pair of phases
func (o *TwoPhaseParams) Finalize() {
	if dbg.Checked {
		checkLaw(TwoPhase, o.Phases.String(), o.Law())
	}
}

// Law returns the sub-law of the active pair of phases
func (o *TwoPhaseParams) Law() twophase.Model {
	switch o.Phases {
	case GasOil:
		return o.GasOil
	case OilWater:
		return o.OilWater
	case GasWater:
		return o.GasWater
	}
	return nil
}

// checkLaw panics if a required sub-law is missing
func checkLaw(a Approach, name string, law twophase.Model) {
	if law == nil {
		chk.Panic("%v: %s sub-law must be set before Finalize", a, name)
	}
}

// checkSwl checks the connate water saturation
func checkSwl(caller string, swl float64) error {
	if swl < 0 || swl >= 1 {
		return chk.Err("%s: connate water saturation swl = %g must be in [0, 1)", caller, swl)
	}
	return nil
}
