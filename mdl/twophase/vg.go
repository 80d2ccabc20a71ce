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

// VanGen implements van Genuchten's model with Mualem's relative permeabilities
type VanGen struct {

	// parameters
	α, m, n float64 // parameters
	swmin   float64 // minimum sw
	swmax   float64 // maximum sw
	pcmax   float64 // pc limit corresponding to swmin
}

// add model to factory
func init() {
	allocators["vg"] = func() Model { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms dbf.Params) (err error) {
	o.swmax, o.pcmax = 1.0, 1e+30
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "alp":
			o.α = p.V
		case "m":
			o.m = p.V
		case "n":
			o.n = p.V
		case "swr":
			o.swmin = p.V
		case "swmax":
			o.swmax = p.V
		case "pcmax":
			o.pcmax = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.α < 1e-13 || o.m < 1e-13 || o.n < 1e-13 {
		return chk.Err("vg: parameters alp = %g, m = %g and n = %g must be positive", o.α, o.m, o.n)
	}
	return checkLimits("vg", o.swmin, o.swmax)
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "alp", V: 0.08},
			&dbf.P{N: "m", V: 0.5},
			&dbf.P{N: "n", V: 2},
			&dbf.P{N: "swr", V: 0.15},
			&dbf.P{N: "swmax", V: 1.0},
			&dbf.P{N: "pcmax", V: 1e3},
		}
	}
	return dbf.Params{
		&dbf.P{N: "alp", V: o.α},
		&dbf.P{N: "m", V: o.m},
		&dbf.P{N: "n", V: o.n},
		&dbf.P{N: "swr", V: o.swmin},
		&dbf.P{N: "swmax", V: o.swmax},
		&dbf.P{N: "pcmax", V: o.pcmax},
	}
}

// SwMin returns sw_min
func (o VanGen) SwMin() float64 {
	return o.swmin
}

// SwMax returns sw_max
func (o VanGen) SwMax() float64 {
	return o.swmax
}

// Pcnw computes pc directly from sw
func (o VanGen) Pcnw(sw float64) float64 {
	se := effSat(sw, o.swmin, o.swmax)
	if se <= 0 {
		return o.pcmax
	}
	c := math.Pow(se, -1.0/o.m) - 1.0
	return math.Min(math.Pow(c, 1.0/o.n)/o.α, o.pcmax)
}

// Krw computes krw
func (o VanGen) Krw(sw float64) float64 {
	se := effSat(sw, o.swmin, o.swmax)
	c := 1.0 - math.Pow(1.0-math.Pow(se, 1.0/o.m), o.m)
	return math.Sqrt(se) * c * c
}

// Krn computes krn
func (o VanGen) Krn(sw float64) float64 {
	se := effSat(sw, o.swmin, o.swmax)
	return math.Cbrt(1.0-se) * math.Pow(1.0-math.Pow(se, 1.0/o.m), 2.0*o.m)
}
