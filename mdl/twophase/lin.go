// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twophase

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Lin implements a linear model: pc(sw) := pcae + (swmax - sw) / λ, krw = se, krn = 1 - se
type Lin struct {

	// parameters
	λ     float64 // slope coefficient
	pcae  float64 // entry pressure
	swmin float64 // residual (minimum) saturation
	swmax float64 // maximum saturation
}

// add model to factory
func init() {
	allocators["lin"] = func() Model { return new(Lin) }
}

// Init initialises model
func (o *Lin) Init(prms dbf.Params) (err error) {
	o.swmax = 1.0
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "lam":
			o.λ = p.V
		case "pcae":
			o.pcae = p.V
		case "swr":
			o.swmin = p.V
		case "swmax":
			o.swmax = p.V
		default:
			return chk.Err("lin: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.λ < 1e-13 {
		return chk.Err("lin: slope coefficient lam = %g must be positive", o.λ)
	}
	return checkLimits("lin", o.swmin, o.swmax)
}

// GetPrms gets (an example) of parameters
func (o Lin) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "lam", V: 0.5},
			&dbf.P{N: "pcae", V: 0.2},
			&dbf.P{N: "swr", V: 0.1},
			&dbf.P{N: "swmax", V: 1.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "lam", V: o.λ},
		&dbf.P{N: "pcae", V: o.pcae},
		&dbf.P{N: "swr", V: o.swmin},
		&dbf.P{N: "swmax", V: o.swmax},
	}
}

// SwMin returns sw_min
func (o Lin) SwMin() float64 {
	return o.swmin
}

// SwMax returns sw_max
func (o Lin) SwMax() float64 {
	return o.swmax
}

// Pcnw computes pc directly from sw
func (o Lin) Pcnw(sw float64) float64 {
	if sw >= o.swmax {
		return o.pcae
	}
	if sw <= o.swmin {
		sw = o.swmin
	}
	return o.pcae + (o.swmax-sw)/o.λ
}

// Krw computes krw
func (o Lin) Krw(sw float64) float64 {
	return effSat(sw, o.swmin, o.swmax)
}

// Krn computes krn
func (o Lin) Krn(sw float64) float64 {
	return 1.0 - effSat(sw, o.swmin, o.swmax)
}
