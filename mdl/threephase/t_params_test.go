// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package threephase

import (
	"testing"

	"github.com/ElyesAhmed/opm-simulators/mdl/twophase"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

var allApproaches = []Approach{Default, Stone1, Stone2, TwoPhase}

// newLaw allocates and initialises a two-phase sub-law with example parameters
func newLaw(tst *testing.T, name string) twophase.Model {
	mdl, err := twophase.New(name)
	require.NoError(tst, err)
	require.NoError(tst, mdl.Init(mdl.GetPrms(true)))
	return mdl
}

// populate sets the sub-laws and scalars of the selected record
func populate(tst *testing.T, p *Params) {
	switch p.Approach() {
	case Default:
		r := p.EditDefault()
		r.GasOil, r.OilWater = newLaw(tst, "vg"), newLaw(tst, "bc")
		require.NoError(tst, r.Init(dbf.Params{&dbf.P{N: "swl", V: 0.2}}))
	case Stone1:
		r := p.EditStone1()
		r.GasOil, r.OilWater = newLaw(tst, "vg"), newLaw(tst, "bc")
		require.NoError(tst, r.Init(dbf.Params{&dbf.P{N: "swl", V: 0.6}, &dbf.P{N: "eta", V: 2}}))
	case Stone2:
		r := p.EditStone2()
		r.GasOil, r.OilWater = newLaw(tst, "vg"), newLaw(tst, "bc")
		require.NoError(tst, r.Init(dbf.Params{&dbf.P{N: "swl", V: 0.6}}))
	case TwoPhase:
		r := p.EditTwoPhase()
		r.Phases = OilWater
		r.OilWater = newLaw(tst, "lin")
	}
}

// counts returns the allocation and release counters of all approaches
func counts() (alloc, rel [nApproaches]int64) {
	for a := NoApproach; a < nApproaches; a++ {
		alloc[a], rel[a] = Allocated(a), Released(a)
	}
	return
}

func Test_params01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params01. selection determines the record")

	var p Params
	if p.Approach() != NoApproach || p.payload != nil || p.Finalized() {
		tst.Errorf("zero value must be empty\n")
		return
	}

	for _, a := range allApproaches {
		p := NewParams()
		p.SetApproach(a)
		io.Pforan("%v\n", p)
		if p.Approach() != a {
			tst.Errorf("approach: %v != %v\n", p.Approach(), a)
			return
		}
		if p.payload == nil || p.payload.approach() != a {
			tst.Errorf("record of approach %v is missing\n", a)
			return
		}
		switch a {
		case Default:
			assert.Equal(tst, DefaultParams{}, *p.Default())
		case Stone1:
			assert.Equal(tst, Stone1Params{Eta: 1}, *p.Stone1())
		case Stone2:
			assert.Equal(tst, Stone2Params{}, *p.Stone2())
		case TwoPhase:
			assert.Equal(tst, TwoPhaseParams{}, *p.TwoPhase())
		}
		p.Release()
	}
}

func Test_params02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params02. finalize computes derived quantities")

	p := NewParams()
	p.SetApproach(Stone1)
	populate(tst, p)
	p.Finalize()
	p.Finalize()
	defer p.Release()

	if !p.Finalized() {
		tst.Errorf("Params must be finalized\n")
		return
	}
	chk.String(tst, p.String(), "stone1 (finalized)")

	// bc example: swr = 0.2 and λ = 2; swl = 0.6 ⇒ se = 0.5 ⇒ krn = 0.25 × 0.75
	r := p.Stone1()
	chk.Float64(tst, "swl", 1e-17, r.Swl, 0.6)
	chk.Float64(tst, "eta", 1e-17, r.Eta, 2)
	chk.Float64(tst, "krocw", 1e-15, r.Krocw(), 0.1875)

	q := NewParams()
	q.SetApproach(Stone2)
	populate(tst, q)
	q.Finalize()
	defer q.Release()
	chk.Float64(tst, "krocw", 1e-15, q.Stone2().Krocw(), 0.1875)
}

func Test_params03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params03. no leak across lifetime")

	alloc0, rel0 := counts()
	for _, a := range allApproaches {
		p := NewParams()
		p.SetApproach(a)
		populate(tst, p)
		p.Finalize()
		p.Release()
		p.Release()
	}
	alloc1, rel1 := counts()

	chk.Int(tst, "alloc(none)", int(alloc1[NoApproach]-alloc0[NoApproach]), 0)
	chk.Int(tst, "rel(none)", int(rel1[NoApproach]-rel0[NoApproach]), 0)
	for _, a := range allApproaches {
		chk.Int(tst, "alloc("+a.String()+")", int(alloc1[a]-alloc0[a]), 1)
		chk.Int(tst, "rel("+a.String()+")", int(rel1[a]-rel0[a]), 1)
	}

	// releasing an empty object releases nothing
	var p Params
	p.Release()
	alloc2, rel2 := counts()
	assert.Equal(tst, alloc1, alloc2)
	assert.Equal(tst, rel1, rel2)
}

func Test_params04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params04. copy discards state")

	for _, a := range allApproaches {
		p := NewParams()
		p.SetApproach(a)
		populate(tst, p)
		p.Finalize()

		alloc0, rel0 := counts()
		c := p.Copy()
		alloc1, rel1 := counts()

		if c.Approach() != NoApproach || c.payload != nil || c.Finalized() {
			tst.Errorf("copy of %v must be empty\n", a)
			return
		}
		assert.Equal(tst, alloc0, alloc1, "copy must not allocate")
		assert.Equal(tst, rel0, rel1, "copy must not release")

		// the copy can be set up independently
		c.SetApproach(Default)
		if p.Approach() != a {
			tst.Errorf("source approach changed to %v\n", p.Approach())
			return
		}
		c.Release()
		p.Release()
	}
}

func Test_params05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params05. clone duplicates state")

	p := NewParams()
	p.SetApproach(Stone1)
	populate(tst, p)
	p.Finalize()

	live := Live(Stone1)
	c := p.Clone()
	chk.Int(tst, "live after clone", int(Live(Stone1)), int(live+1))
	if c.Approach() != Stone1 || !c.Finalized() {
		tst.Errorf("clone must keep approach and finalized state\n")
		return
	}
	if c.Stone1() == p.Stone1() {
		tst.Errorf("clone must not share the record\n")
		return
	}
	assert.Equal(tst, *p.Stone1(), *c.Stone1())

	p.Release()
	chk.Float64(tst, "krocw of clone after releasing source", 1e-15, c.Stone1().Krocw(), 0.1875)
	c.Release()
	chk.Int(tst, "live", int(Live(Stone1)), int(live-1))

	// cloning an empty object
	var e Params
	d := e.Clone()
	if d.Approach() != NoApproach || d.payload != nil {
		tst.Errorf("clone of empty object must be empty\n")
	}
}

// recorder records visited approaches
type recorder struct {
	visited []Approach
	swl     float64
}

func (o *recorder) VisitDefault(p *DefaultParams) {
	o.visited = append(o.visited, Default)
	o.swl = p.Swl
}

func (o *recorder) VisitStone1(p *Stone1Params) {
	o.visited = append(o.visited, Stone1)
	o.swl = p.Swl
}

func (o *recorder) VisitStone2(p *Stone2Params) {
	o.visited = append(o.visited, Stone2)
	o.swl = p.Swl
}

func (o *recorder) VisitTwoPhase(p *TwoPhaseParams) {
	o.visited = append(o.visited, TwoPhase)
	o.swl = p.Law().SwMin()
}

func Test_params06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params06. visitor")

	var rec recorder
	swls := []float64{0.2, 0.6, 0.6, 0.1}
	for i, a := range allApproaches {
		p := NewParams()
		p.SetApproach(a)
		populate(tst, p)
		p.Finalize()
		p.Visit(&rec)
		chk.Float64(tst, "swl of "+a.String(), 1e-17, rec.swl, swls[i])
		p.Release()
	}
	assert.Equal(tst, allApproaches, rec.visited)
}

func Test_approach01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("approach01")

	for _, a := range allApproaches {
		b, err := ParseApproach(a.String())
		require.NoError(tst, err)
		assert.Equal(tst, a, b)
	}
	a, err := ParseApproach(" Stone2 ")
	require.NoError(tst, err)
	assert.Equal(tst, Stone2, a)

	_, err = ParseApproach("none")
	assert.Error(tst, err)
	_, err = ParseApproach("stone3")
	assert.Error(tst, err)
	chk.String(tst, Approach(42).String(), "approach(42)")

	for _, tp := range []TwoPhaseApproach{GasOil, OilWater, GasWater} {
		b, err := ParseTwoPhaseApproach(tp.String())
		require.NoError(tst, err)
		assert.Equal(tst, tp, b)
	}
	_, err = ParseTwoPhaseApproach("wateroil")
	assert.Error(tst, err)
}

func Test_records01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("records01. scalar parameters")

	var d DefaultParams
	assert.Error(tst, d.Init(dbf.Params{&dbf.P{N: "swl", V: 1.0}}))
	assert.Error(tst, d.Init(dbf.Params{&dbf.P{N: "eta", V: 1.0}}))

	s1 := Stone1Params{Eta: 1}
	assert.Error(tst, s1.Init(dbf.Params{&dbf.P{N: "eta", V: 0}}))
	s1 = Stone1Params{Eta: 1}
	require.NoError(tst, s1.Init(dbf.Params{&dbf.P{N: "SWL", V: 0.15}}))
	chk.Float64(tst, "swl", 1e-17, s1.Swl, 0.15)

	var s2 Stone2Params
	assert.Error(tst, s2.Init(dbf.Params{&dbf.P{N: "swl", V: -0.1}}))

	var tp TwoPhaseParams
	require.NoError(tst, tp.Init(nil))
	assert.Error(tst, tp.Init(dbf.Params{&dbf.P{N: "swl", V: 0.1}}))
	tp.GasWater = newLaw(tst, "lin")
	tp.Phases = GasWater
	assert.Equal(tst, tp.GasWater, tp.Law())
	tp.Phases = GasOil
	assert.Nil(tst, tp.Law())
}
