// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package twophase

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Check checks the end points and the monotonicity of a model along npts saturations
// in [SwMin, SwMax]
func Check(tst *testing.T, mdl Model, npts int, tol float64, verbose bool) {

	// end points
	swmin, swmax := mdl.SwMin(), mdl.SwMax()
	chk.Float64(tst, "krw(swmin)", tol, mdl.Krw(swmin), 0)
	chk.Float64(tst, "krw(swmax)", tol, mdl.Krw(swmax), 1)
	chk.Float64(tst, "krn(swmin)", tol, mdl.Krn(swmin), 1)
	chk.Float64(tst, "krn(swmax)", tol, mdl.Krn(swmax), 0)

	// for all sw stations
	Sw := utl.LinSpace(swmin, swmax, npts)
	for i := 1; i < npts; i++ {
		pcA, pcB := mdl.Pcnw(Sw[i-1]), mdl.Pcnw(Sw[i])
		krwA, krwB := mdl.Krw(Sw[i-1]), mdl.Krw(Sw[i])
		krnA, krnB := mdl.Krn(Sw[i-1]), mdl.Krn(Sw[i])
		if verbose {
			io.Pforan("sw=%8.5f pc=%12.5e krw=%8.5f krn=%8.5f\n", Sw[i], pcB, krwB, krnB)
		}
		if pcB > pcA+tol {
			tst.Errorf("pc must not increase with sw: pc(%g)=%g > pc(%g)=%g\n", Sw[i], pcB, Sw[i-1], pcA)
			return
		}
		if krwB < krwA-tol {
			tst.Errorf("krw must not decrease with sw: krw(%g)=%g < krw(%g)=%g\n", Sw[i], krwB, Sw[i-1], krwA)
			return
		}
		if krnB > krnA+tol {
			tst.Errorf("krn must not increase with sw: krn(%g)=%g > krn(%g)=%g\n", Sw[i], krnB, Sw[i-1], krnA)
			return
		}
		if krwB < -tol || krwB > 1+tol || krnB < -tol || krnB > 1+tol {
			tst.Errorf("relative permeabilities must be in [0, 1]: krw=%g krn=%g\n", krwB, krnB)
			return
		}
	}
}
