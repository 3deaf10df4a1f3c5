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

// ProcessWithTail walks [0, size) in steps of MaxLanes. fullFn gets the
// offset of every whole vector; tailFn, if there is a remainder, gets its
// offset and length. Since Load on a short slice gives a short vector,
// tailFn can usually run the same body on a truncated slice.
func ProcessWithTail[T Floats](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	step := MaxLanes[T]()
	offset := 0
	for ; offset+step <= size; offset += step {
		fullFn(offset)
	}
	if offset < size {
		tailFn(offset, size-offset)
	}
}

// AlignedSize rounds size up to a whole number of vectors, for row strides
// that lane kernels may read in full.
func AlignedSize[T Floats](size int) int {
	step := MaxLanes[T]()
	return (size + step - 1) / step * step
}
