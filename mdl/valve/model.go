// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package valve implements control valve models: flow characteristic curves
// giving the flow coefficient Kv as a function of stem travel, and the sizing
// equation relating pressure drop and fluid density to flow rates.
package valve

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Char defines flow characteristic models: the flow coefficient Kv [m³/h] as
// a function of the fractional valve opening in [0, 1]
type Char interface {
	Init(kv0, kv100 float64) error   // Init stores and validates the end-point flow coefficients
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Kv(opening float64) float64      // Kv returns the flow coefficient at the given opening
}

// NewChar returns a flow characteristic model
func NewChar(name string) (c Char, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("characteristic %q is not available in 'valve' database", name)
	}
	return allocator(), nil
}

// allocators holds all available characteristics
var allocators = map[string]func() Char{}
