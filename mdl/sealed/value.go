// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sealed

import (
	"github.com/ElyesAhmed/opm-simulators/dbg"
	"github.com/cpmech/gosl/chk"
)

// Finalizer is implemented by records that compute derived quantities
// once their inputs are complete
type Finalizer interface {
	Finalize()
}

// Value is a write-once wrapper around a record of type T.
// The record can be edited until Seal is called; afterwards it is read-only
type Value[T any] struct {
	guard Guard
	v     T
}

// Edit returns the record for modification
//  Note: panics in checked builds if the value is sealed
func (o *Value[T]) Edit() *T {
	if dbg.Checked && o.guard.finalized {
		chk.Panic("sealed value of type %T cannot be edited after Seal", o.v)
	}
	return &o.v
}

// Get returns the record for reading. The caller must not modify it
func (o *Value[T]) Get() *T {
	return &o.v
}

// Seal finalizes the record (if *T implements Finalizer) and locks it.
// Sealing twice is harmless: the record is finalized only once
func (o *Value[T]) Seal() {
	if o.guard.finalized {
		return
	}
	if f, ok := any(&o.v).(Finalizer); ok {
		f.Finalize()
	}
	o.guard.Finalize()
}

// Sealed tells whether Seal has been called
func (o *Value[T]) Sealed() bool {
	return o.guard.finalized
}
