package hwy

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// lanesOf stores the active lanes of v into a fresh slice.
func lanesOf[T Floats](v Vec[T]) []T {
	out := make([]T, v.NumLanes())
	Store(v, out)
	return out
}

// full returns a MaxLanes-long slice with every element set to x.
func full(x float64) []float64 {
	out := make([]float64, MaxLanes[float64]())
	for i := range out {
		out[i] = x
	}
	return out
}

func TestLoad(t *testing.T) {
	data := make([]float64, 2*laneCap)
	for i := range data {
		data[i] = float64(i + 1)
	}
	v := Load(data)

	lanes := MaxLanes[float64]()
	if v.NumLanes() != lanes {
		t.Fatalf("Load: got %d lanes, want %d", v.NumLanes(), lanes)
	}
	if diff := cmp.Diff(data[:lanes], lanesOf(v)); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadShort(t *testing.T) {
	v := Load([]float64{7})
	if v.NumLanes() != 1 {
		t.Fatalf("Load of 1 element: got %d lanes, want 1", v.NumLanes())
	}

	// Binary ops shrink to the common prefix.
	r := Add(v, Set[float64](1))
	if diff := cmp.Diff([]float64{8}, lanesOf(r)); diff != "" {
		t.Errorf("Add with short vector (-want +got):\n%s", diff)
	}
}

func TestStoreShortDst(t *testing.T) {
	dst := []float64{0, 0}
	Store(Set[float64](3), dst)
	if diff := cmp.Diff([]float64{3, 3}, dst); diff != "" {
		t.Errorf("Store into short slice (-want +got):\n%s", diff)
	}
}

func TestSetZero(t *testing.T) {
	if diff := cmp.Diff(full(42), lanesOf(Set[float64](42))); diff != "" {
		t.Errorf("Set (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(full(0), lanesOf(Zero[float64]())); diff != "" {
		t.Errorf("Zero (-want +got):\n%s", diff)
	}
	if n := Set[float32](1).NumLanes(); n != MaxLanes[float32]() {
		t.Errorf("Set[float32]: got %d lanes, want %d", n, MaxLanes[float32]())
	}
}

func TestArithmetic(t *testing.T) {
	a := Set[float64](10.0)
	b := Set[float64](4.0)

	tests := []struct {
		name string
		got  Vec[float64]
		want float64
	}{
		{"Add", Add(a, b), 14},
		{"Sub", Sub(a, b), 6},
		{"Mul", Mul(a, b), 40},
		{"Div", Div(a, b), 2.5},
		{"Neg", Neg(a), -10},
		{"Pow", Pow(b, Set[float64](1.5)), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(full(tt.want), lanesOf(tt.got)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}

	// Operands are values; Neg must not touch its argument.
	if diff := cmp.Diff(full(10), lanesOf(a)); diff != "" {
		t.Errorf("Neg modified its operand (-want +got):\n%s", diff)
	}
}

func TestMulAddNotFused(t *testing.T) {
	// (1+2^-30)^2 minus its rounded square is nonzero only when the
	// multiply is fused into the subtraction.
	x := 1 + math.Ldexp(1, -30)
	sq := x * x
	got := Sub(Mul(Set(x), Set(x)), Set(sq))
	if diff := cmp.Diff(full(0), lanesOf(got)); diff != "" {
		t.Errorf("product was not rounded (-want +got):\n%s", diff)
	}
}

func TestGreaterThanIfThenElseZero(t *testing.T) {
	den := Load([]float64{1, 0, 2, math.NaN()})
	mask := GreaterThan(den, Zero[float64]())
	if mask.NumLanes() != den.NumLanes() {
		t.Fatalf("mask lanes: got %d, want %d", mask.NumLanes(), den.NumLanes())
	}

	// Division by zero and NaN give Inf and NaN in the rejected lanes; the
	// select must discard both.
	got := IfThenElseZero(mask, Div(Set[float64](3), den))
	want := []float64{3, 0, 1.5, 0}[:got.NumLanes()]
	if diff := cmp.Diff(want, lanesOf(got)); diff != "" {
		t.Errorf("IfThenElseZero (-want +got):\n%s", diff)
	}
}

func TestOpsDoNotAllocate(t *testing.T) {
	src := make([]float64, 64)
	dst := make([]float64, 64)
	allocs := testing.AllocsPerRun(100, func() {
		a := Load(src)
		b := Set(2.0)
		m := GreaterThan(a, Zero[float64]())
		Store(IfThenElseZero(m, Pow(Div(Add(Mul(a, b), Neg(b)), b), Sub(b, a))), dst)
	})
	if allocs != 0 {
		t.Errorf("lane ops allocated %v times per run, want 0", allocs)
	}
}

func TestMaxLanes(t *testing.T) {
	maxF32 := MaxLanes[float32]()
	maxF64 := MaxLanes[float64]()
	t.Logf("vector width %d bytes: float32=%d, float64=%d lanes", vectorBytes, maxF32, maxF64)

	if maxF64 < 2 || maxF32 > laneCap {
		t.Errorf("MaxLanes out of range: float32=%d, float64=%d", maxF32, maxF64)
	}
	if maxF64*2 != maxF32 {
		t.Errorf("float64 lanes (%d) should be half of float32 lanes (%d)", maxF64, maxF32)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := noSimdEnv(); got != tt.want {
			t.Errorf("noSimdEnv with %q: got %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestProcessWithTail(t *testing.T) {
	data := make([]float64, 101)
	for i := range data {
		data[i] = float64(i)
	}
	output := make([]float64, len(data))

	fullVectors, tailCount := 0, 0
	ProcessWithTail[float64](len(data),
		func(offset int) {
			fullVectors++
			v := Load(data[offset:])
			Store(Add(v, v), output[offset:])
		},
		func(offset, count int) {
			tailCount = count
			v := Load(data[offset : offset+count])
			Store(Add(v, v), output[offset:])
		},
	)

	lanes := MaxLanes[float64]()
	if want := len(data) / lanes; fullVectors != want {
		t.Errorf("full vectors: got %d, want %d", fullVectors, want)
	}
	if want := len(data) % lanes; tailCount != want {
		t.Errorf("tail count: got %d, want %d", tailCount, want)
	}
	for i, val := range output {
		if want := float64(i) * 2; val != want {
			t.Errorf("output[%d]: got %v, want %v", i, val, want)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	lanes := MaxLanes[float64]()

	tests := []struct {
		size int
		want int
	}{
		{0, 0},
		{1, lanes},
		{lanes, lanes},
		{lanes + 1, 2 * lanes},
	}
	for _, tt := range tests {
		if got := AlignedSize[float64](tt.size); got != tt.want {
			t.Errorf("AlignedSize(%d): got %d, want %d", tt.size, got, tt.want)
		}
	}
}
