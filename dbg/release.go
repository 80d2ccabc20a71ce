// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build release

package dbg

// Checked tells whether contract assertions are compiled in
const Checked = false
