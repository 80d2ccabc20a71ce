// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package threephase

import "github.com/ElyesAhmed/opm-simulators/mdl/sealed"

// Visitor receives the record of the selected approach. Adding an approach adds a
// method here, so every visitor must handle it
type Visitor interface {
	VisitDefault(p *DefaultParams)
	VisitStone1(p *Stone1Params)
	VisitStone2(p *Stone2Params)
	VisitTwoPhase(p *TwoPhaseParams)
}

// payload is the closed set of records owned by Params. It is implemented only by
// the case types below
type payload interface {
	approach() Approach // the approach this record belongs to
	clone() payload     // deep copy
	release()           // drops the record
	accept(v Visitor)   // calls the method of v for this record
	Seal()              // finalizes the record
	Sealed() bool       // tells whether the record is finalized
}

// allocators holds the constructors of the default records
var allocators = map[Approach]func() payload{}

// cases
type (
	defaultCase  struct{ sealed.Value[DefaultParams] }
	stone1Case   struct{ sealed.Value[Stone1Params] }
	stone2Case   struct{ sealed.Value[Stone2Params] }
	twoPhaseCase struct{ sealed.Value[TwoPhaseParams] }
)

func (o *defaultCase) approach() Approach  { return Default }
func (o *stone1Case) approach() Approach   { return Stone1 }
func (o *stone2Case) approach() Approach   { return Stone2 }
func (o *twoPhaseCase) approach() Approach { return TwoPhase }

func (o *defaultCase) accept(v Visitor)  { v.VisitDefault(o.Get()) }
func (o *stone1Case) accept(v Visitor)   { v.VisitStone1(o.Get()) }
func (o *stone2Case) accept(v Visitor)   { v.VisitStone2(o.Get()) }
func (o *twoPhaseCase) accept(v Visitor) { v.VisitTwoPhase(o.Get()) }

func (o *defaultCase) clone() payload {
	c := *o
	allocated[Default].Inc()
	return &c
}

func (o *stone1Case) clone() payload {
	c := *o
	allocated[Stone1].Inc()
	return &c
}

func (o *stone2Case) clone() payload {
	c := *o
	allocated[Stone2].Inc()
	return &c
}

func (o *twoPhaseCase) clone() payload {
	c := *o
	allocated[TwoPhase].Inc()
	return &c
}

func (o *defaultCase) release() {
	*o = defaultCase{}
	released[Default].Inc()
}

func (o *stone1Case) release() {
	*o = stone1Case{}
	released[Stone1].Inc()
}

func (o *stone2Case) release() {
	*o = stone2Case{}
	released[Stone2].Inc()
}

func (o *twoPhaseCase) release() {
	*o = twoPhaseCase{}
	released[TwoPhase].Inc()
}
