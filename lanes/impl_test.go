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
	"math/rand"
	"testing"
)

// Every wide backend must agree with the scalar fallback. The backends are
// plain Go over byte blocks, so all of them compile and run on the test
// host regardless of what dispatch would pick there.
//
// Inputs are small positive integers: exact in every float type, so
// element-wise results must match bit for bit and reductions must match
// exactly too (integer accumulation wraps identically in any order, float
// accumulation of exact small integers does not round). Only cosine, which
// divides and takes a square root, is compared with a tolerance.

func randomVector[T Lanes](rng *rand.Rand, dims int) []T {
	out := make([]T, dims)
	for i := range out {
		out[i] = T(rng.Intn(15) + 1)
	}
	return out
}

func checkScalar[T Lanes](t *testing.T, op string, dims int, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s at dims=%d: got %v, want %v", op, dims, got, want)
	}
}

func checkScalarClose[T Lanes](t *testing.T, op string, dims int, got, want T) {
	t.Helper()
	g, w := float64(got), float64(want)
	if math.Abs(g-w) > 1e-3*math.Max(1, math.Abs(w)) {
		t.Errorf("%s at dims=%d: got %v, want %v", op, dims, got, want)
	}
}

func checkVector[T Lanes](t *testing.T, op string, got, want []T) {
	t.Helper()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s at index %d: got %v, want %v", op, i, got[i], want[i])
			return
		}
	}
}

// parityDims crosses the dense-lane, single-register and scalar-tail
// boundaries for every block width and element size.
var parityDims = []int{0, 1, 3, 16, 64, 65, 257, 1043}

func backendParity[T Lanes, R any, S SimdRegister[T, R]](t *testing.T) {
	t.Helper()
	rng := rand.New(rand.NewSource(99))
	for _, dims := range parityDims {
		a := randomVector[T](rng, dims)
		b := randomVector[T](rng, dims)

		checkScalar(t, "sum", dims,
			genericSum[T, R, S, StdMath[T]](dims, a),
			genericSum[T, T, Fallback[T], StdMath[T]](dims, a))
		checkScalar(t, "max", dims,
			genericMax[T, R, S, StdMath[T]](dims, a),
			genericMax[T, T, Fallback[T], StdMath[T]](dims, a))
		checkScalar(t, "min", dims,
			genericMin[T, R, S, StdMath[T]](dims, a),
			genericMin[T, T, Fallback[T], StdMath[T]](dims, a))
		checkScalar(t, "dot", dims,
			genericDot[T, R, S, StdMath[T]](dims, a, b),
			genericDot[T, T, Fallback[T], StdMath[T]](dims, a, b))
		checkScalar(t, "squaredNorm", dims,
			genericSquaredNorm[T, R, S, StdMath[T]](dims, a),
			genericSquaredNorm[T, T, Fallback[T], StdMath[T]](dims, a))
		checkScalar(t, "squaredEuclidean", dims,
			genericSquaredEuclidean[T, R, S, StdMath[T]](dims, a, b),
			genericSquaredEuclidean[T, T, Fallback[T], StdMath[T]](dims, a, b))
		checkScalarClose(t, "cosine", dims,
			genericCosine[T, R, S, StdMath[T]](dims, a, b),
			genericCosine[T, T, Fallback[T], StdMath[T]](dims, a, b))

		got := make([]T, dims)
		want := make([]T, dims)

		vectorOps := []struct {
			name    string
			backend func(int, []T, []T, []T)
			scalar  func(int, []T, []T, []T)
		}{
			{"addVector", genericAddVector[T, R, S, StdMath[T]], genericAddVector[T, T, Fallback[T], StdMath[T]]},
			{"subVector", genericSubVector[T, R, S, StdMath[T]], genericSubVector[T, T, Fallback[T], StdMath[T]]},
			{"mulVector", genericMulVector[T, R, S, StdMath[T]], genericMulVector[T, T, Fallback[T], StdMath[T]]},
			{"divVector", genericDivVector[T, R, S, StdMath[T]], genericDivVector[T, T, Fallback[T], StdMath[T]]},
			{"maxVector", genericMaxVector[T, R, S, StdMath[T]], genericMaxVector[T, T, Fallback[T], StdMath[T]]},
			{"minVector", genericMinVector[T, R, S, StdMath[T]], genericMinVector[T, T, Fallback[T], StdMath[T]]},
			{"eqVector", genericEqVector[T, R, S, StdMath[T]], genericEqVector[T, T, Fallback[T], StdMath[T]]},
			{"neqVector", genericNeqVector[T, R, S, StdMath[T]], genericNeqVector[T, T, Fallback[T], StdMath[T]]},
			{"ltVector", genericLtVector[T, R, S, StdMath[T]], genericLtVector[T, T, Fallback[T], StdMath[T]]},
			{"lteVector", genericLteVector[T, R, S, StdMath[T]], genericLteVector[T, T, Fallback[T], StdMath[T]]},
			{"gtVector", genericGtVector[T, R, S, StdMath[T]], genericGtVector[T, T, Fallback[T], StdMath[T]]},
			{"gteVector", genericGteVector[T, R, S, StdMath[T]], genericGteVector[T, T, Fallback[T], StdMath[T]]},
		}
		for _, op := range vectorOps {
			op.backend(dims, a, b, got)
			op.scalar(dims, a, b, want)
			checkVector(t, op.name, got, want)
		}

		valueOps := []struct {
			name    string
			backend func(int, T, []T, []T)
			scalar  func(int, T, []T, []T)
		}{
			{"addValue", genericAddValue[T, R, S, StdMath[T]], genericAddValue[T, T, Fallback[T], StdMath[T]]},
			{"subValue", genericSubValue[T, R, S, StdMath[T]], genericSubValue[T, T, Fallback[T], StdMath[T]]},
			{"mulValue", genericMulValue[T, R, S, StdMath[T]], genericMulValue[T, T, Fallback[T], StdMath[T]]},
			{"divValue", genericDivValue[T, R, S, StdMath[T]], genericDivValue[T, T, Fallback[T], StdMath[T]]},
			{"maxValue", genericMaxValue[T, R, S, StdMath[T]], genericMaxValue[T, T, Fallback[T], StdMath[T]]},
			{"minValue", genericMinValue[T, R, S, StdMath[T]], genericMinValue[T, T, Fallback[T], StdMath[T]]},
			{"eqValue", genericEqValue[T, R, S, StdMath[T]], genericEqValue[T, T, Fallback[T], StdMath[T]]},
			{"ltValue", genericLtValue[T, R, S, StdMath[T]], genericLtValue[T, T, Fallback[T], StdMath[T]]},
			{"gteValue", genericGteValue[T, R, S, StdMath[T]], genericGteValue[T, T, Fallback[T], StdMath[T]]},
		}
		value := T(7)
		for _, op := range valueOps {
			op.backend(dims, value, a, got)
			op.scalar(dims, value, a, want)
			checkVector(t, op.name, got, want)
		}
	}
}

// Hypot is a float-only capability, so it gets its own sweep over the two
// float types. Every backend routes through the same scaled per-lane
// routine, so parity with the fallback is exact.
func backendHypotParity[T Floats, R any, S HypotRegister[T, R]](t *testing.T) {
	t.Helper()
	rng := rand.New(rand.NewSource(17))
	for _, dims := range parityDims {
		a := randomVector[T](rng, dims)
		b := randomVector[T](rng, dims)
		got := make([]T, dims)
		want := make([]T, dims)

		genericHypotVector[T, R, S](dims, a, b, got)
		genericHypotVector[T, T, Fallback[T]](dims, a, b, want)
		checkVector(t, "hypotVector", got, want)

		genericHypotValue[T, R, S](dims, T(7), a, got)
		genericHypotValue[T, T, Fallback[T]](dims, T(7), a, want)
		checkVector(t, "hypotValue", got, want)
	}
}

func TestBackendHypotParity(t *testing.T) {
	t.Run("neon", func(t *testing.T) {
		t.Run("float32", func(t *testing.T) { backendHypotParity[float32, Block128, Neon[float32]](t) })
		t.Run("float64", func(t *testing.T) { backendHypotParity[float64, Block128, Neon[float64]](t) })
	})
	t.Run("avx2", func(t *testing.T) {
		t.Run("float32", func(t *testing.T) { backendHypotParity[float32, Block256, Avx2[float32]](t) })
		t.Run("float64", func(t *testing.T) { backendHypotParity[float64, Block256, Avx2[float64]](t) })
	})
	t.Run("avx2fma", func(t *testing.T) {
		t.Run("float32", func(t *testing.T) { backendHypotParity[float32, Block256, Avx2Fma[float32]](t) })
		t.Run("float64", func(t *testing.T) { backendHypotParity[float64, Block256, Avx2Fma[float64]](t) })
	})
	t.Run("avx512", func(t *testing.T) {
		t.Run("float32", func(t *testing.T) { backendHypotParity[float32, Block512, Avx512[float32]](t) })
		t.Run("float64", func(t *testing.T) { backendHypotParity[float64, Block512, Avx512[float64]](t) })
	})
}

func TestBackendParity(t *testing.T) {
	t.Run("neon", func(t *testing.T) {
		t.Run("float32", func(t *testing.T) { backendParity[float32, Block128, Neon[float32]](t) })
		t.Run("float64", func(t *testing.T) { backendParity[float64, Block128, Neon[float64]](t) })
		t.Run("int8", func(t *testing.T) { backendParity[int8, Block128, Neon[int8]](t) })
		t.Run("int16", func(t *testing.T) { backendParity[int16, Block128, Neon[int16]](t) })
		t.Run("int32", func(t *testing.T) { backendParity[int32, Block128, Neon[int32]](t) })
		t.Run("int64", func(t *testing.T) { backendParity[int64, Block128, Neon[int64]](t) })
		t.Run("uint8", func(t *testing.T) { backendParity[uint8, Block128, Neon[uint8]](t) })
		t.Run("uint16", func(t *testing.T) { backendParity[uint16, Block128, Neon[uint16]](t) })
		t.Run("uint32", func(t *testing.T) { backendParity[uint32, Block128, Neon[uint32]](t) })
		t.Run("uint64", func(t *testing.T) { backendParity[uint64, Block128, Neon[uint64]](t) })
	})
	t.Run("avx2", func(t *testing.T) {
		t.Run("float32", func(t *testing.T) { backendParity[float32, Block256, Avx2[float32]](t) })
		t.Run("float64", func(t *testing.T) { backendParity[float64, Block256, Avx2[float64]](t) })
		t.Run("int8", func(t *testing.T) { backendParity[int8, Block256, Avx2[int8]](t) })
		t.Run("int16", func(t *testing.T) { backendParity[int16, Block256, Avx2[int16]](t) })
		t.Run("int32", func(t *testing.T) { backendParity[int32, Block256, Avx2[int32]](t) })
		t.Run("int64", func(t *testing.T) { backendParity[int64, Block256, Avx2[int64]](t) })
		t.Run("uint8", func(t *testing.T) { backendParity[uint8, Block256, Avx2[uint8]](t) })
		t.Run("uint16", func(t *testing.T) { backendParity[uint16, Block256, Avx2[uint16]](t) })
		t.Run("uint32", func(t *testing.T) { backendParity[uint32, Block256, Avx2[uint32]](t) })
		t.Run("uint64", func(t *testing.T) { backendParity[uint64, Block256, Avx2[uint64]](t) })
	})
	t.Run("avx2fma", func(t *testing.T) {
		t.Run("float32", func(t *testing.T) { backendParity[float32, Block256, Avx2Fma[float32]](t) })
		t.Run("float64", func(t *testing.T) { backendParity[float64, Block256, Avx2Fma[float64]](t) })
		t.Run("int8", func(t *testing.T) { backendParity[int8, Block256, Avx2Fma[int8]](t) })
		t.Run("int16", func(t *testing.T) { backendParity[int16, Block256, Avx2Fma[int16]](t) })
		t.Run("int32", func(t *testing.T) { backendParity[int32, Block256, Avx2Fma[int32]](t) })
		t.Run("int64", func(t *testing.T) { backendParity[int64, Block256, Avx2Fma[int64]](t) })
		t.Run("uint8", func(t *testing.T) { backendParity[uint8, Block256, Avx2Fma[uint8]](t) })
		t.Run("uint16", func(t *testing.T) { backendParity[uint16, Block256, Avx2Fma[uint16]](t) })
		t.Run("uint32", func(t *testing.T) { backendParity[uint32, Block256, Avx2Fma[uint32]](t) })
		t.Run("uint64", func(t *testing.T) { backendParity[uint64, Block256, Avx2Fma[uint64]](t) })
	})
	t.Run("avx512", func(t *testing.T) {
		t.Run("float32", func(t *testing.T) { backendParity[float32, Block512, Avx512[float32]](t) })
		t.Run("float64", func(t *testing.T) { backendParity[float64, Block512, Avx512[float64]](t) })
		t.Run("int8", func(t *testing.T) { backendParity[int8, Block512, Avx512[int8]](t) })
		t.Run("int16", func(t *testing.T) { backendParity[int16, Block512, Avx512[int16]](t) })
		t.Run("int32", func(t *testing.T) { backendParity[int32, Block512, Avx512[int32]](t) })
		t.Run("int64", func(t *testing.T) { backendParity[int64, Block512, Avx512[int64]](t) })
		t.Run("uint8", func(t *testing.T) { backendParity[uint8, Block512, Avx512[uint8]](t) })
		t.Run("uint16", func(t *testing.T) { backendParity[uint16, Block512, Avx512[uint16]](t) })
		t.Run("uint32", func(t *testing.T) { backendParity[uint32, Block512, Avx512[uint32]](t) })
		t.Run("uint64", func(t *testing.T) { backendParity[uint64, Block512, Avx512[uint64]](t) })
	})
}
