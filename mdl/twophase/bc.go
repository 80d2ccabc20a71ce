// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twophase

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// BrooksCorey implements Brooks and Corey's model with Burdine's relative permeabilities
type BrooksCorey struct {

	// parameters
	λ     float64 // pore-size distribution index
	pcae  float64 // entry pressure
	pcmax float64 // pc limit corresponding to swmin
	swmin float64 // residual (minimum) saturation
	swmax float64 // maximum saturation
}

// add model to factory
func init() {
	allocators["bc"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(prms dbf.Params) (err error) {
	o.swmax, o.pcmax = 1.0, 1e+30
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "pcae":
			o.pcae = p.V
		case "pcmax":
			o.pcmax = p.V
		case "swr":
			o.swmin = p.V
		case "swmax":
			o.swmax = p.V
		default:
			return chk.Err("bc: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.λ < 1e-13 {
		return chk.Err("bc: pore-size distribution index lam = %g must be positive", o.λ)
	}
	if o.pcmax < o.pcae {
		return chk.Err("bc: pcmax = %g must not be smaller than pcae = %g", o.pcmax, o.pcae)
	}
	return checkLimits("bc", o.swmin, o.swmax)
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "lam", V: 2.0},
			&dbf.P{N: "pcae", V: 5.0},
			&dbf.P{N: "pcmax", V: 1e3},
			&dbf.P{N: "swr", V: 0.2},
			&dbf.P{N: "swmax", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "lam", V: o.λ},
		&dbf.P{N: "pcae", V: o.pcae},
		&dbf.P{N: "pcmax", V: o.pcmax},
		&dbf.P{N: "swr", V: o.swmin},
		&dbf.P{N: "swmax", V: o.swmax},
	}
}

// SwMin returns sw_min
func (o BrooksCorey) SwMin() float64 {
	return o.swmin
}

// SwMax returns sw_max
func (o BrooksCorey) SwMax() float64 {
	return o.swmax
}

// Pcnw computes pc directly from sw
func (o BrooksCorey) Pcnw(sw float64) float64 {
	se := effSat(sw, o.swmin, o.swmax)
	if se <= 0 {
		return o.pcmax
	}
	return math.Min(o.pcae*math.Pow(se, -1.0/o.λ), o.pcmax)
}

// Krw computes krw
func (o BrooksCorey) Krw(sw float64) float64 {
	se := effSat(sw, o.swmin, o.swmax)
	return math.Pow(se, (2.0+3.0*o.λ)/o.λ)
}

// Krn computes krn
func (o BrooksCorey) Krn(sw float64) float64 {
	se := effSat(sw, o.swmin, o.swmax)
	return (1.0 - se) * (1.0 - se) * (1.0 - math.Pow(se, (2.0+o.λ)/o.λ))
}
