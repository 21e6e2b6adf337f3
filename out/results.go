// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements simulation output handling: collection of state time
// series and plotting
package out

import (
	"github.com/Ans3rgus/separator/mdl/netsep"
	"github.com/cpmech/gosl/plt"
)

// Results holds time series of the network state collected while a
// simulation runs
type Results struct {
	T      []float64 // time instants [s]
	Pgas   []float64 // gas blanket pressure [Pa]
	Pliq   []float64 // liquid pressure at the bottom outlet [Pa]
	Level  []float64 // liquid level [m]
	Mgas   []float64 // mass of gas inside the vessel [kg]
	Mliq   []float64 // mass of liquid inside the vessel [kg]
	Vgas   []float64 // volume of gas inside the vessel [m³]
	Vliq   []float64 // volume of liquid inside the vessel [m³]
	RhoGas []float64 // density of gas at the blanket pressure [kg/m³]
	Gin    []float64 // mass flow rate through the inlet mixture valve [kg/s]
	Ggas   []float64 // mass flow rate through the gas outlet valve [kg/s]
	Gliq   []float64 // mass flow rate through the liquid outlet valve [kg/s]
}

// Append records one time instant of the network state
func (o *Results) Append(t float64, s *netsep.State) {
	o.T = append(o.T, t)
	o.Pgas = append(o.Pgas, s.Sep.Pgas)
	o.Pliq = append(o.Pliq, s.Sep.Pliq)
	o.Level = append(o.Level, s.Sep.Level)
	o.Mgas = append(o.Mgas, s.Sep.Mgas)
	o.Mliq = append(o.Mliq, s.Sep.Mliq)
	o.Vgas = append(o.Vgas, s.Sep.Vgas)
	o.Vliq = append(o.Vliq, s.Sep.Vliq)
	o.RhoGas = append(o.RhoGas, s.RhoGas)
	o.Gin = append(o.Gin, s.Gin)
	o.Ggas = append(o.Ggas, s.Ggas)
	o.Gliq = append(o.Gliq, s.Gliq)
}

// Nt returns the number of recorded time instants
func (o *Results) Nt() int {
	return len(o.T)
}

// Draw plots the standard four-panel transient figure: pressures, liquid
// level, phase masses and valve mass flow rates versus time
func (o *Results) Draw(dirout, fnkey string) {

	plt.Reset(true, &plt.A{WidthPt: 550, Dpi: 150, Prop: 1.2})

	plt.Subplot(2, 2, 1)
	plt.Plot(o.T, o.Pgas, &plt.A{C: "r", L: "$p_{gas}$"})
	plt.Plot(o.T, o.Pliq, &plt.A{C: "b", L: "$p_{liq}$"})
	plt.Gll("$t\\;[s]$", "$p\\;[Pa]$", nil)

	plt.Subplot(2, 2, 2)
	plt.Plot(o.T, o.Level, &plt.A{C: "g", L: "$h$"})
	plt.Gll("$t\\;[s]$", "$h\\;[m]$", nil)

	plt.Subplot(2, 2, 3)
	plt.Plot(o.T, o.Mgas, &plt.A{C: "r", L: "$m_{gas}$"})
	plt.Plot(o.T, o.Mliq, &plt.A{C: "b", L: "$m_{liq}$"})
	plt.Gll("$t\\;[s]$", "$m\\;[kg]$", nil)

	plt.Subplot(2, 2, 4)
	plt.Plot(o.T, o.Gin, &plt.A{C: "k", L: "$g_{in}$"})
	plt.Plot(o.T, o.Ggas, &plt.A{C: "r", L: "$g_{gas}$"})
	plt.Plot(o.T, o.Gliq, &plt.A{C: "b", L: "$g_{liq}$"})
	plt.Gll("$t\\;[s]$", "$g\\;[kg/s]$", nil)

	plt.Save(dirout, fnkey)
}
