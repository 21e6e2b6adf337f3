// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/Ans3rgus/separator/mdl/fluid"
	"github.com/Ans3rgus/separator/mdl/netsep"
	"github.com/Ans3rgus/separator/mdl/separator"
	"github.com/Ans3rgus/separator/mdl/valve"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/separator
	FnkOut string `json:"fnkout"` // filename key for output files; "" means use the simulation file key
}

// ValveData holds the configuration of one control valve
type ValveData struct {
	Char string     `json:"char"` // characteristic name; e.g. "lin", "eqp" or "parab"
	Prms dbf.Params `json:"prms"` // parameters; e.g. kv0, kv100, cutoff
}

// IniData holds the initial condition of the vessel
type IniData struct {
	Level float64 `json:"level"` // initial liquid level [m]
	Pgas  float64 `json:"pgas"`  // initial gas blanket pressure [Pa]
}

// ControlData holds the control inputs held constant during one stage
type ControlData struct {
	OpenIn  float64 `json:"openin"`  // opening of the inlet mixture valve [0,1]
	OpenGas float64 `json:"opengas"` // opening of the gas outlet valve [0,1]
	OpenLiq float64 `json:"openliq"` // opening of the liquid outlet valve [0,1]
	Omega   float64 `json:"omega"`   // gas mass fraction of the inlet mixture [0,1]
	Pin     float64 `json:"pin"`     // pressure of the feed header upstream of the inlet valve [Pa]
	Pout    float64 `json:"pout"`    // pressure of the headers downstream of both outlet valves [Pa]
}

// ToControl converts the JSON data into a network control set
func (o ControlData) ToControl() *netsep.Control {
	return &netsep.Control{
		OpenIn:  o.OpenIn,
		OpenGas: o.OpenGas,
		OpenLiq: o.OpenLiq,
		Omega:   o.Omega,
		Pin:     o.Pin,
		Pout:    o.Pout,
	}
}

// Stage holds stage data
type Stage struct {
	Desc    string      `json:"desc"`    // description of simulation stage; e.g. activation of loads
	Control ControlData `json:"control"` // control inputs held during this stage
	Tf      float64     `json:"tf"`      // final time of stage [s]
	Dt      float64     `json:"dt"`      // time step size [s]
	DtOut   float64     `json:"dtout"`   // time step size for output of results [s]
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data     Data       `json:"data"`      // global simulation data
	Fluid    dbf.Params `json:"fluid"`     // gas/liquid pair parameters
	Sep      dbf.Params `json:"separator"` // vessel geometry parameters
	ValveIn  ValveData  `json:"valvein"`   // inlet mixture valve
	ValveGas ValveData  `json:"valvegas"`  // gas outlet valve
	ValveLiq ValveData  `json:"valveliq"`  // liquid outlet valve
	Ini      *IniData   `json:"ini"`       // initial condition; nil means the vessel starts empty
	Stages   []*Stage   `json:"stages"`    // stages data

	// derived
	Key    string           `json:"-"` // simulation key; e.g. mysim01.sim => mysim01
	DirOut string           `json:"-"` // directory for output of results
	FnkOut string           `json:"-"` // filename key for output of results
	Flu    *fluid.Model     `json:"-"` // fluid model
	SepMdl *separator.Model `json:"-"` // vessel model
	Vin    *valve.Model     `json:"-"` // inlet mixture valve model
	Vgas   *valve.Model     `json:"-"` // gas outlet valve model
	Vliq   *valve.Model     `json:"-"` // liquid outlet valve model
	Net    *netsep.Model    `json:"-"` // network model tying vessel and valves together
}

// ReadSim reads all simulation data from a (.sim) JSON file, applies default
// values and eagerly builds and validates every model
func ReadSim(simfilepath string) (*Simulation, error) {

	// new sim
	var o Simulation

	// read file. io.ReadFile panics on missing files; the stat check keeps
	// unreadable input as an error for the caller
	if _, err := os.Stat(simfilepath); err != nil {
		return nil, chk.Err("ReadSim: cannot read simulation file %q\n%v\n", simfilepath, err)
	}
	b := io.ReadFile(simfilepath)

	// decode
	err := json.Unmarshal(b, &o)
	if err != nil {
		return nil, chk.Err("ReadSim: cannot unmarshal simulation file %q\n%v\n", simfilepath, err)
	}

	// derived data
	o.Key = io.FnKey(filepath.Base(simfilepath))
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/separator"
	}
	o.FnkOut = o.Data.FnkOut
	if o.FnkOut == "" {
		o.FnkOut = o.Key
	}

	// for all stages
	if len(o.Stages) < 1 {
		return nil, chk.Err("ReadSim: at least one stage must be defined in %q\n", simfilepath)
	}
	for i, stg := range o.Stages {

		// fix Tf
		if stg.Tf < 1e-14 {
			stg.Tf = 1
		}

		// fix Dt
		if stg.Dt < 1e-14 {
			stg.Dt = 1
		}

		// fix DtOut
		if stg.DtOut < 1e-14 {
			stg.DtOut = stg.Dt
		}
		if stg.DtOut < stg.Dt {
			stg.DtOut = stg.Dt
		}

		// check control
		err = stg.Control.ToControl().Validate()
		if err != nil {
			return nil, chk.Err("ReadSim: stage %d: %v", i, err)
		}
	}

	// fluid model
	o.Flu = new(fluid.Model)
	err = o.Flu.Init(o.Fluid)
	if err != nil {
		return nil, chk.Err("ReadSim: fluid: %v", err)
	}

	// vessel model
	o.SepMdl = new(separator.Model)
	err = o.SepMdl.Init(o.Sep, o.Flu)
	if err != nil {
		return nil, chk.Err("ReadSim: separator: %v", err)
	}

	// valve models
	o.Vin = new(valve.Model)
	err = o.Vin.Init(o.ValveIn.Char, o.ValveIn.Prms)
	if err != nil {
		return nil, chk.Err("ReadSim: inlet valve: %v", err)
	}
	o.Vgas = new(valve.Model)
	err = o.Vgas.Init(o.ValveGas.Char, o.ValveGas.Prms)
	if err != nil {
		return nil, chk.Err("ReadSim: gas outlet valve: %v", err)
	}
	o.Vliq = new(valve.Model)
	err = o.Vliq.Init(o.ValveLiq.Char, o.ValveLiq.Prms)
	if err != nil {
		return nil, chk.Err("ReadSim: liquid outlet valve: %v", err)
	}

	// network model
	o.Net = new(netsep.Model)
	err = o.Net.Init(o.Flu, o.SepMdl, o.Vin, o.Vgas, o.Vliq)
	if err != nil {
		return nil, chk.Err("ReadSim: network: %v", err)
	}

	// initial condition
	if o.Ini != nil {
		_, err = o.Net.InitLevelPressure(o.Ini.Level, o.Ini.Pgas)
		if err != nil {
			return nil, chk.Err("ReadSim: initial condition: %v", err)
		}
	}
	return &o, nil
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}
