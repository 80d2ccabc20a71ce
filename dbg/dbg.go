// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dbg holds the switch for contract assertions.
//
// Checked builds (the default) verify lifecycle and access contracts of
// parameter objects and panic on misuse. Building with "-tags release"
// turns Checked into a false constant and the compiler drops every
// "if dbg.Checked && ..." branch.
package dbg
