// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netsep

import "github.com/Ans3rgus/separator/mdl/separator"

// State holds the published record of one tick of the network: the vessel
// state plus the densities and valve mass flows that produced it
type State struct {
	Sep    *separator.State // 1 vessel state
	RhoGas float64          // 2 gas density at the previous-tick gas pressure [kg/m³]
	RhoLiq float64          // 3 liquid density [kg/m³]
	Gin    float64          // 4 mass flow through the inlet valve [kg/s]
	Ggas   float64          // 5 mass flow through the gas outlet valve [kg/s]
	Gliq   float64          // 6 mass flow through the liquid outlet valve [kg/s]
}

// GetCopy returns a deep copy of State
func (o State) GetCopy() *State {
	s := &State{
		nil,      // 1
		o.RhoGas, // 2
		o.RhoLiq, // 3
		o.Gin,    // 4
		o.Ggas,   // 5
		o.Gliq,   // 6
	}
	if o.Sep != nil {
		s.Sep = o.Sep.GetCopy()
	}
	return s
}
