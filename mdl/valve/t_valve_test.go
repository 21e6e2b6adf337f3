// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package valve

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func Test_valve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("valve01. init and cutoff semantics")

	mdl := new(Model)
	err := mdl.Init("eqp", mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("cannot initialise valve:\n%v", err)
		return
	}
	chk.Float64(tst, "kv0  ", 1e-17, mdl.Kv0, 1e-3)
	chk.Float64(tst, "kv100", 1e-17, mdl.Kv100, 10)
	if !mdl.Cutoff {
		tst.Errorf("cutoff flag should be set\n")
		return
	}

	// cutoff shuts the valve at exactly zero opening
	kv, err := mdl.Kv(0)
	if err != nil {
		tst.Errorf("Kv failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Kv(0) cutoff", 1e-17, kv, 0)

	kv, err = mdl.Kv(1)
	if err != nil {
		tst.Errorf("Kv failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Kv(1)", 1e-15, kv, 10)

	kv, err = mdl.Kv(0.5)
	if err != nil {
		tst.Errorf("Kv failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Kv(0.5)", 1e-15, kv, 0.1)

	// without cutoff the curve value holds at zero opening
	open := new(Model)
	err = open.Init("eqp", dbf.Params{
		&dbf.P{N: "kv0", V: 1e-3},
		&dbf.P{N: "kv100", V: 10},
	})
	if err != nil {
		tst.Errorf("cannot initialise valve:\n%v", err)
		return
	}
	kv, err = open.Kv(0)
	if err != nil {
		tst.Errorf("Kv failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Kv(0) no cutoff", 1e-17, kv, 1e-3)

	// out-of-range openings
	_, err = mdl.Kv(1.2)
	if err == nil {
		tst.Errorf("error should have occurred with opening > 1\n")
		return
	}
	_, err = mdl.Kv(-0.1)
	if err == nil {
		tst.Errorf("error should have occurred with opening < 0\n")
		return
	}
	io.Pf("OK. out-of-range openings rejected\n")
}

func Test_valve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("valve02. flow rates versus Simba reference")

	for _, c := range RefCases() {
		mdl, err := c.Build()
		if err != nil {
			tst.Errorf("cannot build %q:\n%v", c.Desc, err)
			return
		}
		q, err := mdl.Q(c.Opening, c.Rho, c.Pin, c.Pout)
		if err != nil {
			tst.Errorf("Q failed for %q:\n%v", c.Desc, err)
			return
		}
		g, err := mdl.G(c.Opening, c.Rho, c.Pin, c.Pout)
		if err != nil {
			tst.Errorf("G failed for %q:\n%v", c.Desc, err)
			return
		}
		io.Pforan("%-20s: Q=%v G=%v\n", c.Desc, q, g)
		chk.AnaNum(tst, io.Sf("%s: Q", c.Desc), 0.01*c.Qref, c.Qref, q, chk.Verbose)
		chk.AnaNum(tst, io.Sf("%s: G", c.Desc), 0.01*c.Gref, c.Gref, g, chk.Verbose)
	}
}

func Test_valve03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("valve03. flow branches and preconditions")

	mdl := new(Model)
	err := mdl.Init("eqp", dbf.Params{
		&dbf.P{N: "kv0", V: 1.925},
		&dbf.P{N: "kv100", V: 192.5},
		&dbf.P{N: "cutoff", V: 1},
	})
	if err != nil {
		tst.Errorf("cannot initialise valve:\n%v", err)
		return
	}

	// reverse pressure gradient gives exactly zero flow
	q, err := mdl.Q(0.7, 1000, 7e5, 8e5)
	if err != nil {
		tst.Errorf("Q failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Q reverse Δp", 1e-17, q, 0)

	// zero pressure drop gives zero flow
	q, err = mdl.Q(0.7, 1000, 7e5, 7e5)
	if err != nil {
		tst.Errorf("Q failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Q zero Δp", 1e-17, q, 0)

	// cutoff valve at zero opening passes nothing
	g, err := mdl.G(0, 1000, 8e5, 7e5)
	if err != nil {
		tst.Errorf("G failed:\n%v", err)
		return
	}
	chk.Float64(tst, "G cutoff", 1e-17, g, 0)

	// forward gradient with open valve flows
	q, err = mdl.Q(0.5, 1000, 8e5, 7e5)
	if err != nil {
		tst.Errorf("Q failed:\n%v", err)
		return
	}
	if q <= 0 {
		tst.Errorf("flow should be positive. q=%g is invalid\n", q)
		return
	}

	// preconditions
	_, err = mdl.Q(0.5, 0, 8e5, 7e5)
	if err == nil {
		tst.Errorf("error should have occurred with zero density\n")
		return
	}
	_, err = mdl.Q(0.5, -1, 8e5, 7e5)
	if err == nil {
		tst.Errorf("error should have occurred with negative density\n")
		return
	}
	_, err = mdl.Q(0.5, 1000, -1, 7e5)
	if err == nil {
		tst.Errorf("error should have occurred with negative inlet pressure\n")
		return
	}
	_, err = mdl.Q(2, 1000, 8e5, 7e5)
	if err == nil {
		tst.Errorf("error should have occurred with opening > 1\n")
		return
	}
	io.Pf("OK. invalid inputs rejected\n")
}

func Test_valve04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("valve04. mass flow identity and configuration errors")

	c := RefCases()[2]
	mdl, err := c.Build()
	if err != nil {
		tst.Errorf("cannot build valve:\n%v", err)
		return
	}
	q, err := mdl.Q(c.Opening, c.Rho, c.Pin, c.Pout)
	if err != nil {
		tst.Errorf("Q failed:\n%v", err)
		return
	}
	g, err := mdl.G(c.Opening, c.Rho, c.Pin, c.Pout)
	if err != nil {
		tst.Errorf("G failed:\n%v", err)
		return
	}
	chk.Float64(tst, "G = ρ·Q", 1e-17, g, c.Rho*q)

	// unknown characteristic
	bad := new(Model)
	err = bad.Init("square", dbf.Params{
		&dbf.P{N: "kv0", V: 1},
		&dbf.P{N: "kv100", V: 10},
	})
	if err == nil {
		tst.Errorf("error should have occurred with unknown characteristic\n")
		return
	}
	io.Pf("OK. unknown characteristic: %v\n", err)

	// unknown parameter
	bad = new(Model)
	err = bad.Init("lin", dbf.Params{
		&dbf.P{N: "kv0", V: 1},
		&dbf.P{N: "kvmax", V: 10},
	})
	if err == nil {
		tst.Errorf("error should have occurred with unknown parameter\n")
		return
	}

	// missing kv100
	bad = new(Model)
	err = bad.Init("lin", dbf.Params{
		&dbf.P{N: "kv0", V: 1},
	})
	if err == nil {
		tst.Errorf("error should have occurred with missing kv100\n")
		return
	}

	// equal-percentage with kv0=0 is rejected at construction
	bad = new(Model)
	err = bad.Init("eqp", dbf.Params{
		&dbf.P{N: "kv0", V: 0},
		&dbf.P{N: "kv100", V: 10},
		&dbf.P{N: "cutoff", V: 1},
	})
	if err == nil {
		tst.Errorf("error should have occurred with eqp and kv0=0\n")
		return
	}
	io.Pf("OK. configuration errors rejected\n")
}
