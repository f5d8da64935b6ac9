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

// Element-wise comparisons. result[i] is T(1) where the predicate holds
// and the zero value where it does not, so masks compose with MulVector
// for branch-free selection. The Value variants compare against a
// broadcast scalar on the right-hand side (LtValue tests a[i] < value).
//
// NaN compares not-equal to everything, including itself, so NeqVector on
// NaN lanes reports 1 and EqVector reports 0.

// EqVector writes 1 where a[i] == b[i], else 0.
func EqVector[T Lanes](a, b, result []T) {
	dims := len(a)
	assertDims(dims, "b", b)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericEqVector[T, Block512, Avx512[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2Fma:
		genericEqVector[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2:
		genericEqVector[T, Block256, Avx2[T], StdMath[T]](dims, a, b, result)
	case LevelNeon:
		genericEqVector[T, Block128, Neon[T], StdMath[T]](dims, a, b, result)
	default:
		genericEqVector[T, T, Fallback[T], StdMath[T]](dims, a, b, result)
	}
}

// NeqVector writes 1 where a[i] != b[i], else 0.
func NeqVector[T Lanes](a, b, result []T) {
	dims := len(a)
	assertDims(dims, "b", b)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericNeqVector[T, Block512, Avx512[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2Fma:
		genericNeqVector[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2:
		genericNeqVector[T, Block256, Avx2[T], StdMath[T]](dims, a, b, result)
	case LevelNeon:
		genericNeqVector[T, Block128, Neon[T], StdMath[T]](dims, a, b, result)
	default:
		genericNeqVector[T, T, Fallback[T], StdMath[T]](dims, a, b, result)
	}
}

// LtVector writes 1 where a[i] < b[i], else 0.
func LtVector[T Lanes](a, b, result []T) {
	dims := len(a)
	assertDims(dims, "b", b)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericLtVector[T, Block512, Avx512[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2Fma:
		genericLtVector[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2:
		genericLtVector[T, Block256, Avx2[T], StdMath[T]](dims, a, b, result)
	case LevelNeon:
		genericLtVector[T, Block128, Neon[T], StdMath[T]](dims, a, b, result)
	default:
		genericLtVector[T, T, Fallback[T], StdMath[T]](dims, a, b, result)
	}
}

// LteVector writes 1 where a[i] <= b[i], else 0.
func LteVector[T Lanes](a, b, result []T) {
	dims := len(a)
	assertDims(dims, "b", b)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericLteVector[T, Block512, Avx512[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2Fma:
		genericLteVector[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2:
		genericLteVector[T, Block256, Avx2[T], StdMath[T]](dims, a, b, result)
	case LevelNeon:
		genericLteVector[T, Block128, Neon[T], StdMath[T]](dims, a, b, result)
	default:
		genericLteVector[T, T, Fallback[T], StdMath[T]](dims, a, b, result)
	}
}

// GtVector writes 1 where a[i] > b[i], else 0.
func GtVector[T Lanes](a, b, result []T) {
	dims := len(a)
	assertDims(dims, "b", b)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericGtVector[T, Block512, Avx512[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2Fma:
		genericGtVector[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2:
		genericGtVector[T, Block256, Avx2[T], StdMath[T]](dims, a, b, result)
	case LevelNeon:
		genericGtVector[T, Block128, Neon[T], StdMath[T]](dims, a, b, result)
	default:
		genericGtVector[T, T, Fallback[T], StdMath[T]](dims, a, b, result)
	}
}

// GteVector writes 1 where a[i] >= b[i], else 0.
func GteVector[T Lanes](a, b, result []T) {
	dims := len(a)
	assertDims(dims, "b", b)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericGteVector[T, Block512, Avx512[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2Fma:
		genericGteVector[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2:
		genericGteVector[T, Block256, Avx2[T], StdMath[T]](dims, a, b, result)
	case LevelNeon:
		genericGteVector[T, Block128, Neon[T], StdMath[T]](dims, a, b, result)
	default:
		genericGteVector[T, T, Fallback[T], StdMath[T]](dims, a, b, result)
	}
}

// EqValue writes 1 where a[i] == value, else 0.
func EqValue[T Lanes](value T, a, result []T) {
	dims := len(a)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericEqValue[T, Block512, Avx512[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2Fma:
		genericEqValue[T, Block256, Avx2Fma[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2:
		genericEqValue[T, Block256, Avx2[T], StdMath[T]](dims, value, a, result)
	case LevelNeon:
		genericEqValue[T, Block128, Neon[T], StdMath[T]](dims, value, a, result)
	default:
		genericEqValue[T, T, Fallback[T], StdMath[T]](dims, value, a, result)
	}
}

// NeqValue writes 1 where a[i] != value, else 0.
func NeqValue[T Lanes](value T, a, result []T) {
	dims := len(a)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericNeqValue[T, Block512, Avx512[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2Fma:
		genericNeqValue[T, Block256, Avx2Fma[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2:
		genericNeqValue[T, Block256, Avx2[T], StdMath[T]](dims, value, a, result)
	case LevelNeon:
		genericNeqValue[T, Block128, Neon[T], StdMath[T]](dims, value, a, result)
	default:
		genericNeqValue[T, T, Fallback[T], StdMath[T]](dims, value, a, result)
	}
}

// LtValue writes 1 where a[i] < value, else 0.
func LtValue[T Lanes](value T, a, result []T) {
	dims := len(a)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericLtValue[T, Block512, Avx512[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2Fma:
		genericLtValue[T, Block256, Avx2Fma[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2:
		genericLtValue[T, Block256, Avx2[T], StdMath[T]](dims, value, a, result)
	case LevelNeon:
		genericLtValue[T, Block128, Neon[T], StdMath[T]](dims, value, a, result)
	default:
		genericLtValue[T, T, Fallback[T], StdMath[T]](dims, value, a, result)
	}
}

// LteValue writes 1 where a[i] <= value, else 0.
func LteValue[T Lanes](value T, a, result []T) {
	dims := len(a)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericLteValue[T, Block512, Avx512[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2Fma:
		genericLteValue[T, Block256, Avx2Fma[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2:
		genericLteValue[T, Block256, Avx2[T], StdMath[T]](dims, value, a, result)
	case LevelNeon:
		genericLteValue[T, Block128, Neon[T], StdMath[T]](dims, value, a, result)
	default:
		genericLteValue[T, T, Fallback[T], StdMath[T]](dims, value, a, result)
	}
}

// GtValue writes 1 where a[i] > value, else 0.
func GtValue[T Lanes](value T, a, result []T) {
	dims := len(a)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericGtValue[T, Block512, Avx512[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2Fma:
		genericGtValue[T, Block256, Avx2Fma[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2:
		genericGtValue[T, Block256, Avx2[T], StdMath[T]](dims, value, a, result)
	case LevelNeon:
		genericGtValue[T, Block128, Neon[T], StdMath[T]](dims, value, a, result)
	default:
		genericGtValue[T, T, Fallback[T], StdMath[T]](dims, value, a, result)
	}
}

// GteValue writes 1 where a[i] >= value, else 0.
func GteValue[T Lanes](value T, a, result []T) {
	dims := len(a)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericGteValue[T, Block512, Avx512[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2Fma:
		genericGteValue[T, Block256, Avx2Fma[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2:
		genericGteValue[T, Block256, Avx2[T], StdMath[T]](dims, value, a, result)
	case LevelNeon:
		genericGteValue[T, Block128, Neon[T], StdMath[T]](dims, value, a, result)
	default:
		genericGteValue[T, T, Fallback[T], StdMath[T]](dims, value, a, result)
	}
}
