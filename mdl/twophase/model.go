// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package twophase implements two-phase saturation functions: capillary pressure
// and relative permeabilities of the wetting and non-wetting phases as functions
// of the wetting-phase saturation sw. The gas-oil, oil-water and gas-water
// sub-laws of three-phase material laws are instances of these models.
//  References:
//   [1] Brooks RH and Corey AT (1964) Hydraulic properties of porous media.
//       Hydrology Papers, Colorado State University, 3
//   [2] van Genuchten MT (1980) A closed-form equation for predicting the hydraulic
//       conductivity of unsaturated soils. Soil Science Society of America Journal,
//       44(5), 892-898
package twophase

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model implements a two-phase saturation function
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	SwMin() float64                  // returns the residual (connate) wetting saturation
	SwMax() float64                  // returns the maximum wetting saturation
	Pcnw(sw float64) float64         // computes pc = pn - pw
	Krw(sw float64) float64          // computes the relative permeability of the wetting phase
	Krn(sw float64) float64          // computes the relative permeability of the non-wetting phase
}

// New returns new two-phase model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'twophase' database", name)
	}
	return allocator(), nil
}

// Names returns the names of all available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// effSat computes the effective saturation se ∈ [0, 1]
func effSat(sw, swmin, swmax float64) float64 {
	if sw <= swmin {
		return 0
	}
	if sw >= swmax {
		return 1
	}
	return (sw - swmin) / (swmax - swmin)
}

// checkLimits checks residual and maximum saturations
func checkLimits(name string, swmin, swmax float64) error {
	if swmin < 0 || swmin >= 1 {
		return chk.Err("%s: residual saturation swr = %g is invalid", name, swmin)
	}
	if swmax <= swmin || swmax > 1 {
		return chk.Err("%s: maximum saturation swmax = %g must be in (swr, 1]", name, swmax)
	}
	return nil
}
