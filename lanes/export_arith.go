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

// Element-wise arithmetic. The Vector variants combine two vectors, the
// Value variants combine every element of a with a broadcast scalar on the
// right-hand side (SubValue computes a[i] - value). All of them panic
// unless the inputs and result share one length, and all allow result to
// alias an input.
//
// Integer arithmetic wraps. Integer division by zero faults; float
// division by zero yields infinities and NaNs per IEEE-754.

// AddVector writes a[i] + b[i] into result.
func AddVector[T Lanes](a, b, result []T) {
	dims := len(a)
	assertDims(dims, "b", b)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericAddVector[T, Block512, Avx512[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2Fma:
		genericAddVector[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2:
		genericAddVector[T, Block256, Avx2[T], StdMath[T]](dims, a, b, result)
	case LevelNeon:
		genericAddVector[T, Block128, Neon[T], StdMath[T]](dims, a, b, result)
	default:
		genericAddVector[T, T, Fallback[T], StdMath[T]](dims, a, b, result)
	}
}

// SubVector writes a[i] - b[i] into result.
func SubVector[T Lanes](a, b, result []T) {
	dims := len(a)
	assertDims(dims, "b", b)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericSubVector[T, Block512, Avx512[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2Fma:
		genericSubVector[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2:
		genericSubVector[T, Block256, Avx2[T], StdMath[T]](dims, a, b, result)
	case LevelNeon:
		genericSubVector[T, Block128, Neon[T], StdMath[T]](dims, a, b, result)
	default:
		genericSubVector[T, T, Fallback[T], StdMath[T]](dims, a, b, result)
	}
}

// MulVector writes a[i] * b[i] into result.
func MulVector[T Lanes](a, b, result []T) {
	dims := len(a)
	assertDims(dims, "b", b)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericMulVector[T, Block512, Avx512[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2Fma:
		genericMulVector[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2:
		genericMulVector[T, Block256, Avx2[T], StdMath[T]](dims, a, b, result)
	case LevelNeon:
		genericMulVector[T, Block128, Neon[T], StdMath[T]](dims, a, b, result)
	default:
		genericMulVector[T, T, Fallback[T], StdMath[T]](dims, a, b, result)
	}
}

// DivVector writes a[i] / b[i] into result.
func DivVector[T Lanes](a, b, result []T) {
	dims := len(a)
	assertDims(dims, "b", b)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericDivVector[T, Block512, Avx512[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2Fma:
		genericDivVector[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2:
		genericDivVector[T, Block256, Avx2[T], StdMath[T]](dims, a, b, result)
	case LevelNeon:
		genericDivVector[T, Block128, Neon[T], StdMath[T]](dims, a, b, result)
	default:
		genericDivVector[T, T, Fallback[T], StdMath[T]](dims, a, b, result)
	}
}

// MaxVector writes max(a[i], b[i]) into result.
func MaxVector[T Lanes](a, b, result []T) {
	dims := len(a)
	assertDims(dims, "b", b)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericMaxVector[T, Block512, Avx512[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2Fma:
		genericMaxVector[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2:
		genericMaxVector[T, Block256, Avx2[T], StdMath[T]](dims, a, b, result)
	case LevelNeon:
		genericMaxVector[T, Block128, Neon[T], StdMath[T]](dims, a, b, result)
	default:
		genericMaxVector[T, T, Fallback[T], StdMath[T]](dims, a, b, result)
	}
}

// MinVector writes min(a[i], b[i]) into result.
func MinVector[T Lanes](a, b, result []T) {
	dims := len(a)
	assertDims(dims, "b", b)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericMinVector[T, Block512, Avx512[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2Fma:
		genericMinVector[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b, result)
	case LevelAvx2:
		genericMinVector[T, Block256, Avx2[T], StdMath[T]](dims, a, b, result)
	case LevelNeon:
		genericMinVector[T, Block128, Neon[T], StdMath[T]](dims, a, b, result)
	default:
		genericMinVector[T, T, Fallback[T], StdMath[T]](dims, a, b, result)
	}
}

// AddValue writes a[i] + value into result.
func AddValue[T Lanes](value T, a, result []T) {
	dims := len(a)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericAddValue[T, Block512, Avx512[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2Fma:
		genericAddValue[T, Block256, Avx2Fma[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2:
		genericAddValue[T, Block256, Avx2[T], StdMath[T]](dims, value, a, result)
	case LevelNeon:
		genericAddValue[T, Block128, Neon[T], StdMath[T]](dims, value, a, result)
	default:
		genericAddValue[T, T, Fallback[T], StdMath[T]](dims, value, a, result)
	}
}

// SubValue writes a[i] - value into result.
func SubValue[T Lanes](value T, a, result []T) {
	dims := len(a)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericSubValue[T, Block512, Avx512[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2Fma:
		genericSubValue[T, Block256, Avx2Fma[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2:
		genericSubValue[T, Block256, Avx2[T], StdMath[T]](dims, value, a, result)
	case LevelNeon:
		genericSubValue[T, Block128, Neon[T], StdMath[T]](dims, value, a, result)
	default:
		genericSubValue[T, T, Fallback[T], StdMath[T]](dims, value, a, result)
	}
}

// MulValue writes a[i] * value into result.
func MulValue[T Lanes](value T, a, result []T) {
	dims := len(a)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericMulValue[T, Block512, Avx512[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2Fma:
		genericMulValue[T, Block256, Avx2Fma[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2:
		genericMulValue[T, Block256, Avx2[T], StdMath[T]](dims, value, a, result)
	case LevelNeon:
		genericMulValue[T, Block128, Neon[T], StdMath[T]](dims, value, a, result)
	default:
		genericMulValue[T, T, Fallback[T], StdMath[T]](dims, value, a, result)
	}
}

// DivValue writes a[i] / value into result.
func DivValue[T Lanes](value T, a, result []T) {
	dims := len(a)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericDivValue[T, Block512, Avx512[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2Fma:
		genericDivValue[T, Block256, Avx2Fma[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2:
		genericDivValue[T, Block256, Avx2[T], StdMath[T]](dims, value, a, result)
	case LevelNeon:
		genericDivValue[T, Block128, Neon[T], StdMath[T]](dims, value, a, result)
	default:
		genericDivValue[T, T, Fallback[T], StdMath[T]](dims, value, a, result)
	}
}

// MaxValue writes max(a[i], value) into result.
func MaxValue[T Lanes](value T, a, result []T) {
	dims := len(a)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericMaxValue[T, Block512, Avx512[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2Fma:
		genericMaxValue[T, Block256, Avx2Fma[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2:
		genericMaxValue[T, Block256, Avx2[T], StdMath[T]](dims, value, a, result)
	case LevelNeon:
		genericMaxValue[T, Block128, Neon[T], StdMath[T]](dims, value, a, result)
	default:
		genericMaxValue[T, T, Fallback[T], StdMath[T]](dims, value, a, result)
	}
}

// MinValue writes min(a[i], value) into result.
func MinValue[T Lanes](value T, a, result []T) {
	dims := len(a)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericMinValue[T, Block512, Avx512[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2Fma:
		genericMinValue[T, Block256, Avx2Fma[T], StdMath[T]](dims, value, a, result)
	case LevelAvx2:
		genericMinValue[T, Block256, Avx2[T], StdMath[T]](dims, value, a, result)
	case LevelNeon:
		genericMinValue[T, Block128, Neon[T], StdMath[T]](dims, value, a, result)
	default:
		genericMinValue[T, T, Fallback[T], StdMath[T]](dims, value, a, result)
	}
}
