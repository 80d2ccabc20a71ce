// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ElyesAhmed/opm-simulators/inp"
	"github.com/ElyesAhmed/opm-simulators/mdl/threephase"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/lmittmann/tint"
	"github.com/spf13/viper"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/stone1", ".sim", true)
	dat, err := readConfig(fnamepath)
	if err != nil {
		chk.Panic("cannot read run data:\n%v", err)
	}
	io.Verbose = dat.Verbose

	// logger
	var level slog.Level
	if err = level.UnmarshalText([]byte(dat.LogLevel)); err != nil {
		chk.Panic("log level %q is incorrect", dat.LogLevel)
	}
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	// message
	if dat.Verbose {
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"run data file", "fnamepath", fnamepath,
			"materials file", "matfile", dat.Matfile,
			"active phases", "phases", dat.Phases(),
			"saturation functions", "satfunc", dat.SatFunc,
		))
	}

	// materials
	mdb, err := inp.ReadMat(filepath.Dir(dat.Matfile), filepath.Base(dat.Matfile))
	if err != nil {
		chk.Panic("cannot read materials:\n%v", err)
	}
	err = mdb.Setup(dat.Phases(), dat.SatFunc, log)
	if err != nil {
		mdb.Clean()
		chk.Panic("setup failed:\n%v", err)
	}
	log.Info("all regions set up", "desc", dat.Desc, "nregions", len(mdb.Regions))

	// summary
	io.Pf("\n%-12s %-10s %s\n", "region", "approach", "parameters")
	for _, r := range mdb.Regions {
		var s summary
		r.Params.Visit(&s)
		io.Pf("%-12s %-10v %s\n", r.Name, r.Params.Approach(), s.text)
	}

	// clean up
	mdb.Clean()
	for _, a := range []threephase.Approach{threephase.Default, threephase.Stone1, threephase.Stone2, threephase.TwoPhase} {
		if n := threephase.Live(a); n != 0 {
			log.Warn("records not released", "approach", a, "live", n)
		}
		log.Debug("records", "approach", a, "allocated", threephase.Allocated(a), "released", threephase.Released(a))
	}
}

// readConfig reads the run data. Values may be overridden by OPMMUX_<KEY> environment variables
func readConfig(fnamepath string) (dat *inp.Data, err error) {
	dat = new(inp.Data)
	dat.SetDefault()
	v := viper.New()
	v.SetConfigFile(fnamepath)
	v.SetConfigType("json")
	v.SetEnvPrefix("OPMMUX")
	v.AutomaticEnv()
	for key, val := range map[string]interface{}{
		"desc":     dat.Desc,
		"matfile":  dat.Matfile,
		"water":    dat.Water,
		"oil":      dat.Oil,
		"gas":      dat.Gas,
		"satfunc":  dat.SatFunc,
		"loglevel": dat.LogLevel,
		"verbose":  dat.Verbose,
	} {
		v.SetDefault(key, val)
	}
	if err = v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err = v.Unmarshal(dat); err != nil {
		return nil, err
	}
	dat.Resolve(filepath.Dir(fnamepath))
	err = dat.Check()
	return
}

// summary describes the record of a region
type summary struct {
	text string
}

func (o *summary) VisitDefault(p *threephase.DefaultParams) {
	o.text = io.Sf("swl=%g", p.Swl)
}

func (o *summary) VisitStone1(p *threephase.Stone1Params) {
	o.text = io.Sf("swl=%g eta=%g krocw=%g", p.Swl, p.Eta, p.Krocw())
}

func (o *summary) VisitStone2(p *threephase.Stone2Params) {
	o.text = io.Sf("swl=%g krocw=%g", p.Swl, p.Krocw())
}

func (o *summary) VisitTwoPhase(p *threephase.TwoPhaseParams) {
	o.text = io.Sf("phases=%v swr=%g", p.Phases, p.Law().SwMin())
}
