// Copyright 2025 go-cuv Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// Package hwy provides the portable lane operations the grid kernels are
// written against.
//
// A Vec is a small fixed-capacity register held by value. Kernels load a
// run of consecutive grid cells into one, combine vectors element-wise and
// store the result back into a row:
//
//	a := hwy.Load(north[i:])
//	b := hwy.Load(south[i:])
//	d := hwy.Div(hwy.Sub(a, b), hwy.Set(span))
//	hwy.Store(d, out[i:])
//
// No operation allocates. Every lane is rounded to T once per operation, so
// a lane kernel and a scalar loop evaluating the same expression tree agree
// bit for bit.
package hwy

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// laneCap bounds the number of lanes in a Vec: a 64-byte register of
// float32.
const laneCap = 16

// Vec holds up to laneCap lanes. Only the first NumLanes are meaningful; a
// Load at the end of a row yields a short vector and binary operations
// work on the common prefix.
type Vec[T Floats] struct {
	n     int
	lanes [laneCap]T
}

// NumLanes returns the number of active lanes.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Mask is a per-lane predicate produced by comparisons.
type Mask[T Floats] struct {
	n    int
	bits [laneCap]bool
}

// NumLanes returns the number of active lanes.
func (m Mask[T]) NumLanes() int {
	return m.n
}
