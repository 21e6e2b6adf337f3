// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package separator

// State holds the dynamic record of a two-phase gravity separation vessel
type State struct {
	Mgas  float64 // 1 mass of gas [kg]
	Mliq  float64 // 2 mass of liquid [kg]
	Vliq  float64 // 3 volume of liquid [m³]
	Vgas  float64 // 4 volume of gas [m³]
	Pgas  float64 // 5 gas pressure [Pa]
	Pliq  float64 // 6 liquid pressure at the bottom of the vessel [Pa]
	Level float64 // 7 liquid level [m]
}

// GetCopy returns a copy of State
func (o State) GetCopy() *State {
	return &State{
		o.Mgas,  // 1
		o.Mliq,  // 2
		o.Vliq,  // 3
		o.Vgas,  // 4
		o.Pgas,  // 5
		o.Pliq,  // 6
		o.Level, // 7
	}
}

// Set sets this State with another State
func (o *State) Set(s *State) {
	o.Mgas = s.Mgas   // 1
	o.Mliq = s.Mliq   // 2
	o.Vliq = s.Vliq   // 3
	o.Vgas = s.Vgas   // 4
	o.Pgas = s.Pgas   // 5
	o.Pliq = s.Pliq   // 6
	o.Level = s.Level // 7
}
