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

package grid

// Wrap returns index wrapped to [0, size) using modulo.
// Longitude is periodic, so this is the edge rule for columns.
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	index = index % size
	if index < 0 {
		index += size
	}
	return index
}

// ShiftWest fills dst[x] with src[Wrap(x-1, n)]: the western neighbour of
// every column, wrapping across the longitude seam.
func ShiftWest[T any](src, dst []T) {
	n := len(src)
	if n == 0 {
		return
	}
	dst[0] = src[n-1]
	copy(dst[1:n], src[:n-1])
}

// ShiftEast fills dst[x] with src[Wrap(x+1, n)]: the eastern neighbour of
// every column, wrapping across the longitude seam.
func ShiftEast[T any](src, dst []T) {
	n := len(src)
	if n == 0 {
		return
	}
	copy(dst[:n-1], src[1:])
	dst[n-1] = src[0]
}
