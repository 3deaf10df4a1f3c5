package hwy

import (
	"os"
	"strconv"
	"unsafe"
)

// vectorBytes is the register width, in bytes, that lane counts are derived
// from. 16 bytes (SSE2, NEON and the SVE minimum) is available everywhere;
// dispatch_amd64.go widens it when AVX2 or AVX-512 is present.
var vectorBytes = 16

// MaxLanes returns how many T fit in one vector, e.g. 4 float64 with AVX2.
func MaxLanes[T Floats]() int {
	var zero T
	return vectorBytes / int(unsafe.Sizeof(zero))
}

// noSimdEnv reports whether HWY_NO_SIMD is set. Any value other than one
// strconv.ParseBool reads as false counts as set. When it is, vectors stay
// at the 16-byte baseline whatever the CPU offers.
func noSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	on, err := strconv.ParseBool(val)
	return err != nil || on
}
