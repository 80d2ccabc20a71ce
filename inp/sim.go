// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.mat) JSON files
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/ElyesAhmed/opm-simulators/mdl/threephase"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data of a run
type Data struct {
	Desc     string `json:"desc"`     // description of run
	Matfile  string `json:"matfile"`  // materials file path; relative paths start at the directory of the .sim file
	Water    bool   `json:"water"`    // water phase is active
	Oil      bool   `json:"oil"`      // oil phase is active
	Gas      bool   `json:"gas"`      // gas phase is active
	SatFunc  string `json:"satfunc"`  // saturation function keyword: "", "DEFAULT", "STONE1" or "STONE2"
	LogLevel string `json:"loglevel"` // "debug", "info", "warn" or "error"
	Verbose  bool   `json:"verbose"`  // show messages
}

// SetDefault sets default values: three active phases and info logging
func (o *Data) SetDefault() {
	o.Water, o.Oil, o.Gas = true, true, true
	o.LogLevel = "info"
}

// Resolve makes a relative materials file path start at dir
func (o *Data) Resolve(dir string) {
	if o.Matfile != "" && !filepath.IsAbs(o.Matfile) {
		o.Matfile = filepath.Join(dir, o.Matfile)
	}
}

// Phases returns the active phases
func (o Data) Phases() threephase.Phases {
	return threephase.Phases{Water: o.Water, Oil: o.Oil, Gas: o.Gas}
}

// Check checks the run data
func (o Data) Check() (err error) {
	if o.Matfile == "" {
		return chk.Err("materials file (\"matfile\") must be given")
	}
	_, _, err = threephase.SelectApproach(o.Phases(), o.SatFunc)
	return
}

// ReadSim reads run data from a .sim JSON file. Keys not in the file keep their default values
func ReadSim(dir, fn string) (dat *Data, err error) {
	b, err := readFile(dir, fn)
	if err != nil {
		return nil, err
	}
	dat = new(Data)
	dat.SetDefault()
	err = json.Unmarshal(b, dat)
	if err != nil {
		return nil, chk.Err("cannot decode run data in %q:\n%v", fn, err)
	}
	dat.Resolve(dir)
	err = dat.Check()
	return
}

// readFile reads a whole file. io.ReadFile panics on failure; the failure is returned instead
func readFile(dir, fn string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("cannot read %q:\n%v", fn, r)
		}
	}()
	b = io.ReadFile(filepath.Join(dir, fn))
	return
}
