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
package hwy

import "math"

// Load reads up to MaxLanes values from the front of src.
func Load[T Floats](src []T) Vec[T] {
	var v Vec[T]
	v.n = copy(v.lanes[:MaxLanes[T]()], src)
	return v
}

// Store writes the active lanes of v to the front of dst, stopping early if
// dst is shorter.
func Store[T Floats](v Vec[T], dst []T) {
	copy(dst, v.lanes[:v.n])
}

// Set broadcasts value to every lane.
func Set[T Floats](value T) Vec[T] {
	v := Vec[T]{n: MaxLanes[T]()}
	for i := range v.n {
		v.lanes[i] = value
	}
	return v
}

// Zero returns a full-width vector of zeros.
func Zero[T Floats]() Vec[T] {
	return Vec[T]{n: MaxLanes[T]()}
}

func binary[T Floats](a, b Vec[T]) Vec[T] {
	return Vec[T]{n: min(a.n, b.n)}
}

// Add returns a+b per lane.
func Add[T Floats](a, b Vec[T]) Vec[T] {
	r := binary(a, b)
	for i := range r.n {
		r.lanes[i] = a.lanes[i] + b.lanes[i]
	}
	return r
}

// Sub returns a-b per lane.
func Sub[T Floats](a, b Vec[T]) Vec[T] {
	r := binary(a, b)
	for i := range r.n {
		r.lanes[i] = a.lanes[i] - b.lanes[i]
	}
	return r
}

// Mul returns a*b per lane. The product is rounded to T, so it is never
// fused into a later Add or Sub.
func Mul[T Floats](a, b Vec[T]) Vec[T] {
	r := binary(a, b)
	for i := range r.n {
		r.lanes[i] = T(a.lanes[i] * b.lanes[i])
	}
	return r
}

// Div returns a/b per lane.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	r := binary(a, b)
	for i := range r.n {
		r.lanes[i] = a.lanes[i] / b.lanes[i]
	}
	return r
}

// Neg flips the sign of every lane.
func Neg[T Floats](v Vec[T]) Vec[T] {
	for i := range v.n {
		v.lanes[i] = -v.lanes[i]
	}
	return v
}

// Pow returns base**exp per lane, with the special cases of math.Pow.
func Pow[T Floats](base, exp Vec[T]) Vec[T] {
	r := binary(base, exp)
	for i := range r.n {
		r.lanes[i] = T(math.Pow(float64(base.lanes[i]), float64(exp.lanes[i])))
	}
	return r
}

// GreaterThan reports a > b per lane. Lanes holding NaN are false.
func GreaterThan[T Floats](a, b Vec[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.lanes[i] > b.lanes[i]
	}
	return m
}

// IfThenElseZero keeps the lanes of a where mask is set and zeroes the rest.
func IfThenElseZero[T Floats](mask Mask[T], a Vec[T]) Vec[T] {
	r := Vec[T]{n: min(mask.n, a.n)}
	for i := range r.n {
		if mask.bits[i] {
			r.lanes[i] = a.lanes[i]
		}
	}
	return r
}
