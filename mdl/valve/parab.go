// Copyright 2026 The Separator Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package valve

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Parab implements the parabolic flow characteristic
//
//	Kv = kv0 + (kv100 − kv0)·opening²
type Parab struct {
	kv0   float64 // flow coefficient at zero opening [m³/h]
	kv100 float64 // flow coefficient at full opening [m³/h]
}

// add characteristic to factory
func init() {
	allocators["parab"] = func() Char { return new(Parab) }
}

// Init stores and validates the end-point flow coefficients
func (o *Parab) Init(kv0, kv100 float64) (err error) {
	if kv0 < 0 || kv100 < 0 {
		return chk.Err("parab: flow coefficients must be non-negative. kv0=%g, kv100=%g are invalid\n", kv0, kv100)
	}
	if kv0 > kv100 {
		return chk.Err("parab: kv0 cannot be greater than kv100. kv0=%g, kv100=%g are invalid\n", kv0, kv100)
	}
	o.kv0, o.kv100 = kv0, kv100
	return
}

// GetPrms gets (an example) of parameters
func (o Parab) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "kv0", V: 0},
			&dbf.P{N: "kv100", V: 100},
		}
	}
	return dbf.Params{
		&dbf.P{N: "kv0", V: o.kv0},
		&dbf.P{N: "kv100", V: o.kv100},
	}
}

// Kv returns the flow coefficient at the given opening
func (o Parab) Kv(opening float64) float64 {
	return o.kv0 + (o.kv100-o.kv0)*opening*opening
}
