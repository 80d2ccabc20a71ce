// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package threephase

import "github.com/puzpuzpuz/xsync/v3"

// number of records allocated and released per approach
var (
	allocated = newCounters()
	released  = newCounters()
)

func newCounters() (c [nApproaches]*xsync.Counter) {
	for i := range c {
		c[i] = xsync.NewCounter()
	}
	return
}

// Allocated returns the number of records of approach a allocated so far
func Allocated(a Approach) int64 {
	if a < NoApproach || a >= nApproaches {
		return 0
	}
	return allocated[a].Value()
}

// Released returns the number of records of approach a released so far
func Released(a Approach) int64 {
	if a < NoApproach || a >= nApproaches {
		return 0
	}
	return released[a].Value()
}

// Live returns the number of records of approach a currently owned by Params objects
func Live(a Approach) int64 {
	return Allocated(a) - Released(a)
}
