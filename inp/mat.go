// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"log/slog"

	"github.com/ElyesAhmed/opm-simulators/mdl/threephase"
	"github.com/ElyesAhmed/opm-simulators/mdl/twophase"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// LawData holds data of a two-phase sub-law
type LawData struct {

	// input
	Name  string     `json:"name"`  // name of sub-law; e.g. "swof1"
	Model string     `json:"model"` // name of model; e.g. "lin", "bc", "vg"
	Prms  dbf.Params `json:"prms"`  // model parameters

	// derived
	Law twophase.Model `json:"-"` // pointer to actual model
}

// RegionData holds data of a region (rock type) sharing one three-phase material law
type RegionData struct {

	// input
	Name     string     `json:"name"`     // name of region
	Approach string     `json:"approach"` // "default", "stone1", "stone2", "twophase" or "" to select from the run data
	TwoPhase string     `json:"twophase"` // "gasoil", "oilwater", "gaswater" or "" to select from the active phases
	GasOil   string     `json:"gasoil"`   // name of gas-oil sub-law
	OilWater string     `json:"oilwater"` // name of oil-water sub-law
	GasWater string     `json:"gaswater"` // name of gas-water sub-law
	Prms     dbf.Params `json:"prms"`     // scalar parameters of the approach; e.g. "swl", "eta"

	// derived
	Params *threephase.Params `json:"-"` // finalized parameters; nil before Setup
}

// LawsData holds sub-laws
type LawsData []*LawData

// RegionsData holds regions
type RegionsData []*RegionData

// MatDb implements a database of material laws
type MatDb struct {

	// input
	Laws    LawsData    `json:"laws"`    // all two-phase sub-laws
	Regions RegionsData `json:"regions"` // all regions

	// derived
	laws map[string]*LawData // sub-laws by name
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	b, err := readFile(dir, fn)
	if err != nil {
		return nil, err
	}
	return ParseMat(b)
}

// ParseMat decodes materials data and allocates/initialises all sub-laws
func ParseMat(b []byte) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot decode materials data:\n%v", err)
	}

	// alloc/init: sub-laws
	mdb.laws = make(map[string]*LawData)
	for _, m := range mdb.Laws {
		if _, ok := mdb.laws[m.Name]; ok {
			return nil, chk.Err("sub-law %q is defined more than once", m.Name)
		}
		m.Law, err = twophase.New(m.Model)
		if err != nil {
			return nil, chk.Err("sub-law %q:\n%v", m.Name, err)
		}
		err = m.Law.Init(m.Prms)
		if err != nil {
			return nil, chk.Err("sub-law %q:\n%v", m.Name, err)
		}
		mdb.laws[m.Name] = m
	}

	// check regions
	names := make(map[string]bool)
	for _, r := range mdb.Regions {
		if names[r.Name] {
			return nil, chk.Err("region %q is defined more than once", r.Name)
		}
		names[r.Name] = true
	}
	return
}

// Setup allocates, populates and finalizes the parameters of all regions.
//  ph      -- active phases of the run
//  keyword -- saturation function keyword ("", "DEFAULT", "STONE1" or "STONE2") used by
//             regions without an explicit approach
//  log     -- logger; may be nil
func (o *MatDb) Setup(ph threephase.Phases, keyword string, log *slog.Logger) (err error) {
	if log == nil {
		log = slog.Default()
	}
	a0, tp0, err := threephase.SelectApproach(ph, keyword)
	if err != nil {
		return
	}
	for _, r := range o.Regions {
		if r.Params != nil {
			return chk.Err("region %q has been set up already", r.Name)
		}
		r.Params, err = o.setupRegion(r, ph, a0, tp0)
		if err != nil {
			return chk.Err("cannot set up region %q:\n%v", r.Name, err)
		}
		log.Info("region set up", "region", r.Name, "approach", r.Params.Approach())
		if io.Verbose {
			io.Pfgreen("%-12s : %v\n", r.Name, r.Params)
		}
	}
	return
}

// setupRegion returns the finalized parameters of one region
func (o *MatDb) setupRegion(r *RegionData, ph threephase.Phases, a threephase.Approach, tp threephase.TwoPhaseApproach) (p *threephase.Params, err error) {

	// approach
	if r.Approach != "" {
		a, err = threephase.ParseApproach(r.Approach)
		if err != nil {
			return
		}
	}
	if a != threephase.TwoPhase && ph.Num() != 3 {
		return nil, chk.Err("approach %v requires three active phases", a)
	}
	if r.TwoPhase != "" {
		var rtp threephase.TwoPhaseApproach
		rtp, err = threephase.ParseTwoPhaseApproach(r.TwoPhase)
		if err != nil {
			return
		}
		if ph.Num() != 3 && rtp != tp {
			return nil, chk.Err("pair of phases %v does not match the active phases %v", rtp, tp)
		}
		tp = rtp
	} else if a == threephase.TwoPhase && ph.Num() == 3 {
		return nil, chk.Err("the pair of phases (\"twophase\" key) is required when three phases are active")
	}

	// allocate; the record is released if populating fails
	p = threephase.NewParams()
	p.SetApproach(a)
	defer func() {
		if err != nil {
			p.Release()
			p = nil
		}
	}()

	// populate
	switch a {
	case threephase.Default:
		rec := p.EditDefault()
		if rec.GasOil, err = o.law(r.GasOil, "gasoil"); err != nil {
			return
		}
		if rec.OilWater, err = o.law(r.OilWater, "oilwater"); err != nil {
			return
		}
		err = rec.Init(r.Prms)
	case threephase.Stone1:
		rec := p.EditStone1()
		if rec.GasOil, err = o.law(r.GasOil, "gasoil"); err != nil {
			return
		}
		if rec.OilWater, err = o.law(r.OilWater, "oilwater"); err != nil {
			return
		}
		err = rec.Init(r.Prms)
	case threephase.Stone2:
		rec := p.EditStone2()
		if rec.GasOil, err = o.law(r.GasOil, "gasoil"); err != nil {
			return
		}
		if rec.OilWater, err = o.law(r.OilWater, "oilwater"); err != nil {
			return
		}
		err = rec.Init(r.Prms)
	case threephase.TwoPhase:
		rec := p.EditTwoPhase()
		rec.Phases = tp
		var law twophase.Model
		switch tp {
		case threephase.GasOil:
			law, err = o.law(r.GasOil, "gasoil")
			rec.GasOil = law
		case threephase.OilWater:
			law, err = o.law(r.OilWater, "oilwater")
			rec.OilWater = law
		case threephase.GasWater:
			law, err = o.law(r.GasWater, "gaswater")
			rec.GasWater = law
		}
		if err != nil {
			return
		}
		err = rec.Init(r.Prms)
	}
	if err != nil {
		return
	}
	p.Finalize()
	return
}

// law returns the sub-law with the given name
func (o *MatDb) law(name, key string) (twophase.Model, error) {
	if name == "" {
		return nil, chk.Err("%s sub-law is required", key)
	}
	m, ok := o.laws[name]
	if !ok {
		return nil, chk.Err("%s sub-law %q is not available", key, name)
	}
	return m.Law, nil
}

// Get returns a region
//  Note: returns nil if not found
func (o MatDb) Get(name string) *RegionData {
	for _, r := range o.Regions {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Law returns a sub-law
//  Note: returns nil if not found
func (o MatDb) Law(name string) *LawData {
	return o.laws[name]
}

// Clean releases the parameters of all regions
func (o *MatDb) Clean() {
	for _, r := range o.Regions {
		if r.Params != nil {
			r.Params.Release()
			r.Params = nil
		}
	}
}

// String prints one sub-law
func (o *LawData) String() string {
	return io.Sf("    {\"name\" : %q, \"model\" : %q, \"nprms\" : %d}", o.Name, o.Model, len(o.Prms))
}

// String prints one region
func (o *RegionData) String() string {
	state := "not set up"
	if o.Params != nil {
		state = o.Params.String()
	}
	return io.Sf("    {\"name\" : %q, \"approach\" : %q, \"state\" : %q}", o.Name, o.Approach, state)
}

// String prints sub-laws
func (o LawsData) String() string {
	l := "  \"laws\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String prints regions
func (o RegionsData) String() string {
	l := "  \"regions\" : [\n"
	for i, r := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", r)
	}
	l += "\n  ]"
	return l
}

// String outputs all materials
func (o MatDb) String() string {
	return io.Sf("{\n%v,\n%v\n}", o.Laws, o.Regions)
}
