// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sealed implements the one-shot "setup complete" transition of
// parameter objects. A parameter object is mutable while it is being set up,
// gets finalized exactly once and is read-only afterwards.
package sealed

import (
	"github.com/ElyesAhmed/opm-simulators/dbg"
	"github.com/cpmech/gosl/chk"
)

// Guard holds the finalized flag of a parameter object.
// Embed it to expose Finalize and Finalized on the owner
type Guard struct {
	finalized bool
}

// Finalize marks the owner as finalized. Calling it again has no effect
func (o *Guard) Finalize() {
	o.finalized = true
}

// Finalized tells whether Finalize has been called
func (o *Guard) Finalized() bool {
	return o.finalized
}

// AssertMutable panics in checked builds if the owner is already finalized
func (o *Guard) AssertMutable(caller string) {
	if dbg.Checked && o.finalized {
		chk.Panic("%s: object is finalized and cannot be modified", caller)
	}
}

// AssertFinalized panics in checked builds if the owner has not been finalized yet
func (o *Guard) AssertFinalized(caller string) {
	if dbg.Checked && !o.finalized {
		chk.Panic("%s: object must be finalized before use", caller)
	}
}
