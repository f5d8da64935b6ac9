// Copyright 2026 go-lanes Authors
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

package lanes

import (
	"math"
	"testing"
)

// Known-value tests go through the public API, so they hold on whatever
// backend dispatch picks for the test host.

func TestDotKnownValues(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float32
	}{
		{
			name: "simple case",
			a:    []float32{1, 2, 3, 4},
			b:    []float32{5, 6, 7, 8},
			want: 70, // 5+12+21+32
		},
		{
			name: "empty",
			a:    []float32{},
			b:    []float32{},
			want: 0,
		},
		{
			name: "single element",
			a:    []float32{3},
			b:    []float32{-4},
			want: -12,
		},
		{
			name: "crosses register and tail boundaries",
			a:    []float32{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			b:    []float32{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
			want: 34,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dot(tt.a, tt.b); got != tt.want {
				t.Errorf("Dot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSquaredEuclideanKnownValues(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	b := []float32{5, 6, 7, 8}
	if got := SquaredEuclidean(a, b); got != 64 {
		t.Errorf("SquaredEuclidean() = %v, want 64", got)
	}
	if got := SquaredEuclidean(a, a); got != 0 {
		t.Errorf("SquaredEuclidean(a, a) = %v, want 0", got)
	}
}

func TestSquaredNormMatchesDot(t *testing.T) {
	a := []float64{1.5, -2, 3, 4.25, -5, 6, 7, 8, 9, 10, 11}
	if got, want := SquaredNorm(a), Dot(a, a); got != want {
		t.Errorf("SquaredNorm() = %v, Dot(a, a) = %v", got, want)
	}
}

func TestSumKnownValues(t *testing.T) {
	if got := Sum([]float32{1, 2, 3, 4}); got != 10 {
		t.Errorf("Sum() = %v, want 10", got)
	}
	if got := Sum([]float32{}); got != 0 {
		t.Errorf("Sum(empty) = %v, want 0", got)
	}

	// int8 accumulation wraps: 100+100 = 200 -> -56.
	if got := Sum([]int8{100, 100}); got != -56 {
		t.Errorf("Sum(int8) = %v, want -56", got)
	}
}

func TestHorizontalMaxMin(t *testing.T) {
	a := []float32{3, -7, 12, 0.5, -100, 42}
	if got := MaxHorizontal(a); got != 42 {
		t.Errorf("MaxHorizontal() = %v, want 42", got)
	}
	if got := MinHorizontal(a); got != -100 {
		t.Errorf("MinHorizontal() = %v, want -100", got)
	}

	// Empty inputs return the reduction identity.
	if got := MaxHorizontal([]float32{}); !math.IsInf(float64(got), -1) {
		t.Errorf("MaxHorizontal(empty) = %v, want -Inf", got)
	}
	if got := MinHorizontal([]float32{}); !math.IsInf(float64(got), 1) {
		t.Errorf("MinHorizontal(empty) = %v, want +Inf", got)
	}
	if got := MaxHorizontal([]int16{}); got != math.MinInt16 {
		t.Errorf("MaxHorizontal(empty int16) = %v, want %v", got, math.MinInt16)
	}
	if got := MinHorizontal([]uint8{}); got != math.MaxUint8 {
		t.Errorf("MinHorizontal(empty uint8) = %v, want %v", got, math.MaxUint8)
	}
}

func TestCosineKnownValue(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}
	// dot = 70, |a|^2 = 30, |b|^2 = 174, 1 - 70/sqrt(5220)
	want := 1 - 70/math.Sqrt(5220)
	got := Cosine(a, b)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Cosine() = %v, want %v", got, want)
	}

	// Identical directions have distance zero up to rounding.
	c := []float64{2, 4, 6, 8}
	if got := Cosine(a, c); math.Abs(got) > 1e-12 {
		t.Errorf("Cosine(a, 2a) = %v, want 0", got)
	}
}

func TestVerticalOpsKnownValues(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	b := []float32{5, 6, 7, 8}
	result := make([]float32, 4)

	AddVector(a, b, result)
	assertSlice(t, "AddVector", result, []float32{6, 8, 10, 12})

	SubVector(a, b, result)
	assertSlice(t, "SubVector", result, []float32{-4, -4, -4, -4})

	MulVector(a, b, result)
	assertSlice(t, "MulVector", result, []float32{5, 12, 21, 32})

	DivVector(b, a, result)
	assertSlice(t, "DivVector", result, []float32{5, 3, 7.0 / 3.0, 2})

	MaxVector(a, []float32{4, 1, 5, 2}, result)
	assertSlice(t, "MaxVector", result, []float32{4, 2, 5, 4})

	MinVector(a, []float32{4, 1, 5, 2}, result)
	assertSlice(t, "MinVector", result, []float32{1, 1, 3, 2})

	SubValue(1, a, result)
	assertSlice(t, "SubValue", result, []float32{0, 1, 2, 3})

	DivValue(2, a, result)
	assertSlice(t, "DivValue", result, []float32{0.5, 1, 1.5, 2})
}

func TestHypotKnownValues(t *testing.T) {
	a := []float32{3, -3, 0, 5}
	b := []float32{4, 4, 7, 0}
	result := make([]float32, 4)

	HypotVector(a, b, result)
	assertSlice(t, "HypotVector", result, []float32{5, 5, 7, 5})

	HypotValue(4, []float32{3, -3, 0}, result[:3])
	assertSlice(t, "HypotValue", result[:3], []float32{5, 5, 4})

	long := make([]float64, 19)
	for i := range long {
		long[i] = 3
	}
	out := make([]float64, 19)
	HypotValue(4, long, out)
	for i, v := range out {
		if v != 5 {
			t.Errorf("HypotValue at index %d: got %v, want 5", i, v)
		}
	}
}

// The scaled formulation must survive inputs whose squares exceed the
// float range; a naive sqrt(a*a + b*b) overflows to +Inf here.
func TestHypotAvoidsOverflow(t *testing.T) {
	big := float32(1e38)
	result := make([]float32, 1)
	HypotVector([]float32{big}, []float32{big}, result)
	if math.IsInf(float64(result[0]), 1) {
		t.Fatal("hypot overflowed to +Inf")
	}
	want := math.Sqrt2 * 1e38
	if got := float64(result[0]); math.Abs(got-want) > 1e-6*want {
		t.Errorf("hypot(1e38, 1e38) = %g, want %g", got, want)
	}
}

func TestComparisonMasks(t *testing.T) {
	a := []float32{1, 5, 3, 3}
	b := []float32{2, 4, 3, 1}
	result := make([]float32, 4)

	EqVector(a, b, result)
	assertSlice(t, "EqVector", result, []float32{0, 0, 1, 0})

	NeqVector(a, b, result)
	assertSlice(t, "NeqVector", result, []float32{1, 1, 0, 1})

	LtVector(a, b, result)
	assertSlice(t, "LtVector", result, []float32{1, 0, 0, 0})

	LteVector(a, b, result)
	assertSlice(t, "LteVector", result, []float32{1, 0, 1, 0})

	GtVector(a, b, result)
	assertSlice(t, "GtVector", result, []float32{0, 1, 0, 1})

	GteVector(a, b, result)
	assertSlice(t, "GteVector", result, []float32{0, 1, 1, 1})

	GtValue(2, a, result)
	assertSlice(t, "GtValue", result, []float32{0, 1, 1, 1})

	EqValue(3, a, result)
	assertSlice(t, "EqValue", result, []float32{0, 0, 1, 1})
}

// NaN never compares equal, even to itself, and every ordered predicate
// on a NaN lane is false.
func TestComparisonNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := []float32{nan, 1, nan}
	b := []float32{nan, nan, 2}
	result := make([]float32, 3)

	EqVector(a, b, result)
	assertSlice(t, "EqVector", result, []float32{0, 0, 0})

	NeqVector(a, b, result)
	assertSlice(t, "NeqVector", result, []float32{1, 1, 1})

	LtVector(a, b, result)
	assertSlice(t, "LtVector", result, []float32{0, 0, 0})

	GteVector(a, b, result)
	assertSlice(t, "GteVector", result, []float32{0, 0, 0})
}

// In-place use is supported: result may alias either input.
func TestVerticalAliasing(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := []float32{1, 1, 1, 1, 1, 1, 1, 1, 1}

	AddVector(a, b, a)
	assertSlice(t, "AddVector in place", a, []float32{2, 3, 4, 5, 6, 7, 8, 9, 10})

	MulValue(3, a, a)
	assertSlice(t, "MulValue in place", a, []float32{6, 9, 12, 15, 18, 21, 24, 27, 30})
}

func assertSlice[T Lanes](t *testing.T, op string, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length %d, want %d", op, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: index %d got %v, want %v", op, i, got[i], want[i])
		}
	}
}
