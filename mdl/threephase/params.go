// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package threephase

import (
	"github.com/ElyesAhmed/opm-simulators/dbg"
	"github.com/ElyesAhmed/opm-simulators/mdl/sealed"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Params holds the parameters of the multiplexed three-phase material law of one
// region. It owns exactly one record of the type matching Approach once an
// approach has been selected.
//  Note: do not copy Params values; use Copy or Clone
type Params struct {
	sealed.Guard // Finalized, AssertMutable and AssertFinalized

	noCopy   noCopy
	approach Approach // selected approach; NoApproach if none
	payload  payload  // record of the selected approach; nil if none
	owner    *Params  // object that allocated payload; differs from o in value copies
	released bool     // Release has been called
}

// NewParams returns a new object with no approach selected
func NewParams() *Params {
	return new(Params)
}

// Copy returns a new object with no approach selected. The state of o, including
// its record, is ignored
//  Note: use Clone to duplicate the record
func (o *Params) Copy() *Params {
	return new(Params)
}

// Clone returns a deep copy of o: approach, record and finalized state
func (o *Params) Clone() *Params {
	c := new(Params)
	c.Guard = o.Guard
	c.approach = o.approach
	if o.payload != nil {
		c.payload = o.payload.clone()
		c.owner = c
	}
	return c
}

// SetApproach selects the approach and allocates its (default) record
//  Note: the approach can be selected only once and not after Finalize
func (o *Params) SetApproach(a Approach) {
	if dbg.Checked {
		o.AssertMutable("SetApproach")
		if o.released {
			chk.Panic("SetApproach: object has been released")
		}
		if o.payload != nil {
			chk.Panic("SetApproach: approach %v has already been selected", o.approach)
		}
		if !a.valid() {
			chk.Panic("SetApproach: cannot select %v", a)
		}
	}
	o.payload = allocators[a]()
	o.owner = o
	o.approach = a
}

// Approach returns the selected approach or NoApproach
func (o *Params) Approach() Approach {
	return o.approach
}

// Finalize computes the derived quantities of the record and locks the object.
// Calling it again has no effect
func (o *Params) Finalize() {
	if o.payload != nil {
		if dbg.Checked && o.payload.approach() != o.approach {
			chk.Panic("Finalize: record of approach %v is stored under approach %v", o.payload.approach(), o.approach)
		}
		o.payload.Seal()
	}
	o.Guard.Finalize()
}

// Release releases the record of the selected approach. Afterwards o holds no
// approach and cannot select one again. Releasing an empty or released object
// releases nothing
//  Note: value copies of Params (q := *p) are not supported. In checked builds,
//        releasing a record through a copy panics
func (o *Params) Release() {
	o.released = true
	if o.payload == nil {
		return
	}
	if dbg.Checked && o.owner != o {
		chk.Panic("Release: record of approach %v belongs to another object; Params values must not be copied", o.approach)
	}
	o.payload.release()
	o.payload = nil
	o.owner = nil
	o.approach = NoApproach
}

// Released tells whether Release has been called
func (o *Params) Released() bool {
	return o.released
}

// Visit calls the method of v matching the selected approach
func (o *Params) Visit(v Visitor) {
	if dbg.Checked && o.payload == nil {
		chk.Panic("Visit: no approach has been selected")
	}
	o.payload.accept(v)
}

// Default returns the record of the Default approach for reading
func (o *Params) Default() *DefaultParams {
	if dbg.Checked && o.approach != Default {
		mismatch("Default", Default, o.approach)
	}
	return o.payload.(*defaultCase).Get()
}

// EditDefault returns the record of the Default approach for modification
func (o *Params) EditDefault() *DefaultParams {
	if dbg.Checked {
		o.AssertMutable("EditDefault")
		if o.approach != Default {
			mismatch("EditDefault", Default, o.approach)
		}
	}
	return o.payload.(*defaultCase).Edit()
}

// Stone1 returns the record of the Stone1 approach for reading
func (o *Params) Stone1() *Stone1Params {
	if dbg.Checked && o.approach != Stone1 {
		mismatch("Stone1", Stone1, o.approach)
	}
	return o.payload.(*stone1Case).Get()
}

// EditStone1 returns the record of the Stone1 approach for modification
func (o *Params) EditStone1() *Stone1Params {
	if dbg.Checked {
		o.AssertMutable("EditStone1")
		if o.approach != Stone1 {
			mismatch("EditStone1", Stone1, o.approach)
		}
	}
	return o.payload.(*stone1Case).Edit()
}

// Stone2 returns the record of the Stone2 approach for reading
func (o *Params) Stone2() *Stone2Params {
	if dbg.Checked && o.approach != Stone2 {
		mismatch("Stone2", Stone2, o.approach)
	}
	return o.payload.(*stone2Case).Get()
}

// EditStone2 returns the record of the Stone2 approach for modification
func (o *Params) EditStone2() *Stone2Params {
	if dbg.Checked {
		o.AssertMutable("EditStone2")
		if o.approach != Stone2 {
			mismatch("EditStone2", Stone2, o.approach)
		}
	}
	return o.payload.(*stone2Case).Edit()
}

// TwoPhase returns the record of the TwoPhase approach for reading
func (o *Params) TwoPhase() *TwoPhaseParams {
	if dbg.Checked && o.approach != TwoPhase {
		mismatch("TwoPhase", TwoPhase, o.approach)
	}
	return o.payload.(*twoPhaseCase).Get()
}

// EditTwoPhase returns the record of the TwoPhase approach for modification
func (o *Params) EditTwoPhase() *TwoPhaseParams {
	if dbg.Checked {
		o.AssertMutable("EditTwoPhase")
		if o.approach != TwoPhase {
			mismatch("EditTwoPhase", TwoPhase, o.approach)
		}
	}
	return o.payload.(*twoPhaseCase).Edit()
}

// String returns a short description of o
func (o *Params) String() string {
	if o.Finalized() {
		return io.Sf("%v (finalized)", o.approach)
	}
	return o.approach.String()
}

// mismatch panics because the record of one approach was requested from another
func mismatch(caller string, requested, selected Approach) {
	chk.Panic("%s: parameters of approach %v requested but the selected approach is %v", caller, requested, selected)
}

// noCopy makes "go vet" report copies of Params values
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
