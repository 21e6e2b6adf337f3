// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package valve

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// EqPerc implements the equal-percentage flow characteristic
//
//	Kv = kv0·R^opening,  R = kv100/kv0
//
// where R is the rangeability; equal increments of opening multiply Kv by a
// constant factor. Requires kv0 > 0.
type EqPerc struct {
	kv0   float64 // flow coefficient at zero opening [m³/h]
	kv100 float64 // flow coefficient at full opening [m³/h]
}

// add characteristic to factory
func init() {
	allocators["eqp"] = func() Char { return new(EqPerc) }
}

// Init stores and validates the end-point flow coefficients
func (o *EqPerc) Init(kv0, kv100 float64) (err error) {
	if kv0 <= 0 {
		return chk.Err("eqp: kv0 must be positive for the equal-percentage characteristic. kv0=%g is invalid\n", kv0)
	}
	if kv0 > kv100 {
		return chk.Err("eqp: kv0 cannot be greater than kv100. kv0=%g, kv100=%g are invalid\n", kv0, kv100)
	}
	o.kv0, o.kv100 = kv0, kv100
	return
}

// GetPrms gets (an example) of parameters
func (o EqPerc) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "kv0", V: 1},
			&dbf.P{N: "kv100", V: 100},
		}
	}
	return dbf.Params{
		&dbf.P{N: "kv0", V: o.kv0},
		&dbf.P{N: "kv100", V: o.kv100},
	}
}

// Kv returns the flow coefficient at the given opening
func (o EqPerc) Kv(opening float64) float64 {
	return o.kv0 * math.Pow(o.kv100/o.kv0, opening)
}
