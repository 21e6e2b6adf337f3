// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package valve

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func Test_char01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("char01. linear characteristic")

	c, err := NewChar("lin")
	if err != nil {
		tst.Errorf("cannot allocate characteristic:\n%v", err)
		return
	}
	err = c.Init(1.93, 193)
	if err != nil {
		tst.Errorf("cannot initialise characteristic:\n%v", err)
		return
	}
	chk.Float64(tst, "Kv(0)  ", 1e-17, c.Kv(0), 1.93)
	chk.Float64(tst, "Kv(0.5)", 1e-15, c.Kv(0.5), (1.93+193.0)/2.0)
	chk.Float64(tst, "Kv(1)  ", 1e-17, c.Kv(1), 193)

	// slope is constant
	for _, opening := range []float64{0.2, 0.5, 0.8} {
		chk.DerivScaSca(tst, io.Sf("dKv/do @ %g", opening), 1e-8, 193-1.93, opening, 1e-3, chk.Verbose, func(x float64) float64 {
			return c.Kv(x)
		})
	}
}

func Test_char02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("char02. equal-percentage characteristic")

	c, err := NewChar("eqp")
	if err != nil {
		tst.Errorf("cannot allocate characteristic:\n%v", err)
		return
	}
	err = c.Init(1, 100)
	if err != nil {
		tst.Errorf("cannot initialise characteristic:\n%v", err)
		return
	}
	chk.Float64(tst, "Kv(0)  ", 1e-15, c.Kv(0), 1.0)
	chk.Float64(tst, "Kv(0.5)", 1e-13, c.Kv(0.5), 10.0)
	chk.Float64(tst, "Kv(1)  ", 1e-13, c.Kv(1), 100.0)

	// equal increments of opening multiply Kv by a constant factor
	δ := 0.1
	ratio := math.Pow(100.0, δ)
	for _, opening := range []float64{0.0, 0.25, 0.5, 0.75, 0.9} {
		r := c.Kv(opening+δ) / c.Kv(opening)
		chk.Float64(tst, io.Sf("Kv(%g+δ)/Kv(%g)", opening, opening), 1e-12, r, ratio)
	}

	// derivative grows with the curve itself
	lnR := math.Log(100.0)
	for _, opening := range []float64{0.2, 0.5, 0.8} {
		chk.DerivScaSca(tst, io.Sf("dKv/do @ %g", opening), 1e-3, c.Kv(opening)*lnR, opening, 1e-3, chk.Verbose, func(x float64) float64 {
			return c.Kv(x)
		})
	}
}

func Test_char03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("char03. parabolic characteristic")

	c, err := NewChar("parab")
	if err != nil {
		tst.Errorf("cannot allocate characteristic:\n%v", err)
		return
	}
	err = c.Init(0, 100)
	if err != nil {
		tst.Errorf("cannot initialise characteristic:\n%v", err)
		return
	}
	chk.Float64(tst, "Kv(0)  ", 1e-17, c.Kv(0), 0)
	chk.Float64(tst, "Kv(0.5)", 1e-15, c.Kv(0.5), 25.0)
	chk.Float64(tst, "Kv(1)  ", 1e-17, c.Kv(1), 100)

	for _, opening := range []float64{0.2, 0.5, 0.8} {
		chk.DerivScaSca(tst, io.Sf("dKv/do @ %g", opening), 1e-8, 2.0*opening*100.0, opening, 1e-3, chk.Verbose, func(x float64) float64 {
			return c.Kv(x)
		})
	}
}

func Test_char04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("char04. factory and validation")

	_, err := NewChar("quick")
	if err == nil {
		tst.Errorf("error should have occurred with unknown characteristic\n")
		return
	}
	io.Pf("OK. unknown characteristic: %v\n", err)

	c, _ := NewChar("eqp")
	err = c.Init(0, 100)
	if err == nil {
		tst.Errorf("error should have occurred with eqp and kv0=0\n")
		return
	}
	io.Pf("OK. eqp with kv0=0: %v\n", err)

	c, _ = NewChar("lin")
	err = c.Init(-1, 100)
	if err == nil {
		tst.Errorf("error should have occurred with negative kv0\n")
		return
	}
	err = c.Init(200, 100)
	if err == nil {
		tst.Errorf("error should have occurred with kv0 > kv100\n")
		return
	}

	c, _ = NewChar("parab")
	err = c.Init(200, 100)
	if err == nil {
		tst.Errorf("error should have occurred with kv0 > kv100\n")
		return
	}
}

func Test_char05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("char05. monotonicity of all characteristics")

	openings := utl.LinSpace(0, 1, 101)
	for _, name := range []string{"lin", "eqp", "parab"} {
		c, err := NewChar(name)
		if err != nil {
			tst.Errorf("cannot allocate characteristic:\n%v", err)
			return
		}
		err = c.Init(1.93, 193)
		if err != nil {
			tst.Errorf("cannot initialise characteristic:\n%v", err)
			return
		}
		for i := 1; i < len(openings); i++ {
			a, b := openings[i-1], openings[i]
			if c.Kv(a) > c.Kv(b) {
				tst.Errorf("%s: Kv is not monotonic: Kv(%g)=%g > Kv(%g)=%g\n", name, a, c.Kv(a), b, c.Kv(b))
				return
			}
		}
		io.Pforan("%-5s: monotonic OK\n", name)
	}
}
