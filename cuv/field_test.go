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

package cuv

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-cuv/hwy/contrib/grid"
)

func TestComputeFields(t *testing.T) {
	m, n := 6, 10
	lon := uniformLon(n)
	lat := uniformLat(m, -50, 50)
	ug, vg := randomWind(m, n, 21)

	u := NewField("u", "m s-1", lat, lon, ug)
	v := NewField("v", "m s-1", lat, lon, vg)

	cvort, curv, tp, err := ComputeFields(nil, u, v)
	if err != nil {
		t.Fatalf("ComputeFields: %v", err)
	}

	want := mustCompute(t, nil, lon, lat, ug, vg)

	for _, tc := range []struct {
		field     Field
		name      string
		units     string
		wantField *grid.Grid[float64]
	}{
		{cvort, NameCurvatureVorticity, "s-1", want.CVort},
		{curv, NameCurvature, "m-1", want.Curv},
		{tp, NameTopography, "m s-1", want.TP},
	} {
		if tc.field.Name != tc.name {
			t.Errorf("name = %q, want %q", tc.field.Name, tc.name)
		}
		if tc.field.Units != tc.units {
			t.Errorf("%s units = %q, want %q", tc.name, tc.field.Units, tc.units)
		}
		if diff := cmp.Diff(lat, tc.field.Lat); diff != "" {
			t.Errorf("%s lat (-want +got):\n%s", tc.name, diff)
		}
		if diff := cmp.Diff(lon, tc.field.Lon); diff != "" {
			t.Errorf("%s lon (-want +got):\n%s", tc.name, diff)
		}
		if diff := cmp.Diff(tc.wantField.ToRows(), tc.field.Data.ToRows()); diff != "" {
			t.Errorf("%s data (-want +got):\n%s", tc.name, diff)
		}
	}

	// Output coordinates are copies.
	cvort.Lon[0] = 999
	if lon[0] == 999 {
		t.Error("output longitude aliases the input")
	}
}

func TestComputeFieldsCoordinateMismatch(t *testing.T) {
	lon := uniformLon(8)
	lat := uniformLat(5, -40, 40)
	ug, vg := randomWind(5, 8, 1)

	shifted := append([]float64(nil), lon...)
	shifted[3] += 0.5

	u := NewField("u", "m s-1", lat, lon, ug)
	v := NewField("v", "m s-1", lat, shifted, vg)

	if _, _, _, err := ComputeFields(nil, u, v); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}

	small := NewField("v", "m s-1", lat[:2], lon, grid.New[float64](2, 8))
	smallU := NewField("u", "m s-1", lat[:2], lon, grid.New[float64](2, 8))
	if _, _, _, err := ComputeFields(nil, smallU, small); !errors.Is(err, ErrInsufficientGridSize) {
		t.Errorf("got %v, want ErrInsufficientGridSize", err)
	}
}

func TestComputeDense(t *testing.T) {
	m, n := 5, 7
	lon := uniformLon(n)
	lat := uniformLat(m, -60, 60)
	ug, vg := randomWind(m, n, 13)

	u := grid.ToDense(ug)
	v := grid.ToDense(vg)

	got, err := ComputeDense(nil, lon, lat, u, v)
	if err != nil {
		t.Fatalf("ComputeDense: %v", err)
	}
	want := mustCompute(t, nil, lon, lat, ug, vg)
	if diff := cmp.Diff(want.CVort.ToRows(), got.CVort.ToRows()); diff != "" {
		t.Errorf("cvort (-grid +dense):\n%s", diff)
	}

	cvort, curv, tp := got.Dense()
	for name, d := range map[string]*mat.Dense{"cvort": cvort, "cuv": curv, "tp": tp} {
		r, c := d.Dims()
		if r != m || c != n {
			t.Errorf("%s dims = %dx%d, want %dx%d", name, r, c, m, n)
		}
	}
	if tp.At(2, 3) != want.TP.At(2, 3) {
		t.Errorf("tp.At(2, 3) = %v, want %v", tp.At(2, 3), want.TP.At(2, 3))
	}

	// Transposed views go through the generic At path.
	if _, err := ComputeDense(nil, lon, lat, u.T(), v); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("transposed u: got %v, want ErrDimensionMismatch", err)
	}
	if _, err := ComputeDense(nil, lon, lat, nil, v); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("nil u: got %v, want ErrDimensionMismatch", err)
	}
	var nilDense *mat.Dense
	if _, err := ComputeDense(nil, lon, lat, u, nilDense); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("nil *mat.Dense v: got %v, want ErrDimensionMismatch", err)
	}
}

func TestComputeFieldsCoordinateOverride(t *testing.T) {
	m, n := 5, 12
	lon := uniformLon(n)
	lat := uniformLat(m, -40, 40)
	ug, vg := randomWind(m, n, 31)

	// The carried coordinates disagree with each other and with the grid;
	// both axes are overridden, so neither matters.
	u := NewField("u", "m s-1", []float64{0, 1}, []float64{7}, ug)
	v := NewField("v", "m s-1", nil, lon[:3], vg)

	cvort, _, tp, err := ComputeFields(nil, u, v, WithLon(lon), WithLat(lat))
	if err != nil {
		t.Fatalf("ComputeFields: %v", err)
	}
	want := mustCompute(t, nil, lon, lat, ug, vg)
	if diff := cmp.Diff(want.CVort.ToRows(), cvort.Data.ToRows()); diff != "" {
		t.Errorf("cvort (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(lon, tp.Lon); diff != "" {
		t.Errorf("tp lon should be the override (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(lat, tp.Lat); diff != "" {
		t.Errorf("tp lat should be the override (-want +got):\n%s", diff)
	}

	// Overriding one axis still checks the other.
	u = NewField("u", "m s-1", lat, []float64{7}, ug)
	v = NewField("v", "m s-1", lat[:4], lon, vg)
	if _, _, _, err := ComputeFields(nil, u, v, WithLon(lon)); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("latitude mismatch with lon override: got %v, want ErrDimensionMismatch", err)
	}

	// A nil override falls back to the carried coordinate.
	u = NewField("u", "m s-1", lat, lon, ug)
	v = NewField("v", "m s-1", lat, lon, vg)
	cvort, _, _, err = ComputeFields(nil, u, v, WithLon(nil))
	if err != nil {
		t.Fatalf("ComputeFields with nil override: %v", err)
	}
	if diff := cmp.Diff(lon, cvort.Lon); diff != "" {
		t.Errorf("cvort lon (-want +got):\n%s", diff)
	}

	// An override of the wrong length is a shape error.
	if _, _, _, err := ComputeFields(nil, u, v, WithLat(lat[:4])); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("short lat override: got %v, want ErrDimensionMismatch", err)
	}
}
