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

import "fmt"

// The exported functions are thin shells: validate buffer lengths, then
// route to the kernel instantiated for the active backend. The five-way
// switch repeats in every function because each arm names a distinct
// compile-time instantiation; there is nothing to hoist.

func assertDims[T Lanes](dims int, name string, buf []T) {
	if len(buf) != dims {
		panic(fmt.Sprintf("lanes: %s has length %d, want %d", name, len(buf), dims))
	}
}

// Sum returns the horizontal sum of a. An empty input sums to zero.
// Integer types accumulate with wrapping arithmetic.
func Sum[T Lanes](a []T) T {
	dims := len(a)
	switch activeLevel() {
	case LevelAvx512:
		return genericSum[T, Block512, Avx512[T], StdMath[T]](dims, a)
	case LevelAvx2Fma:
		return genericSum[T, Block256, Avx2Fma[T], StdMath[T]](dims, a)
	case LevelAvx2:
		return genericSum[T, Block256, Avx2[T], StdMath[T]](dims, a)
	case LevelNeon:
		return genericSum[T, Block128, Neon[T], StdMath[T]](dims, a)
	default:
		return genericSum[T, T, Fallback[T], StdMath[T]](dims, a)
	}
}

// MaxHorizontal returns the largest element of a. An empty input returns
// negative infinity for floats and the type minimum for integers.
func MaxHorizontal[T Lanes](a []T) T {
	dims := len(a)
	switch activeLevel() {
	case LevelAvx512:
		return genericMax[T, Block512, Avx512[T], StdMath[T]](dims, a)
	case LevelAvx2Fma:
		return genericMax[T, Block256, Avx2Fma[T], StdMath[T]](dims, a)
	case LevelAvx2:
		return genericMax[T, Block256, Avx2[T], StdMath[T]](dims, a)
	case LevelNeon:
		return genericMax[T, Block128, Neon[T], StdMath[T]](dims, a)
	default:
		return genericMax[T, T, Fallback[T], StdMath[T]](dims, a)
	}
}

// MinHorizontal returns the smallest element of a. An empty input returns
// positive infinity for floats and the type maximum for integers.
func MinHorizontal[T Lanes](a []T) T {
	dims := len(a)
	switch activeLevel() {
	case LevelAvx512:
		return genericMin[T, Block512, Avx512[T], StdMath[T]](dims, a)
	case LevelAvx2Fma:
		return genericMin[T, Block256, Avx2Fma[T], StdMath[T]](dims, a)
	case LevelAvx2:
		return genericMin[T, Block256, Avx2[T], StdMath[T]](dims, a)
	case LevelNeon:
		return genericMin[T, Block128, Neon[T], StdMath[T]](dims, a)
	default:
		return genericMin[T, T, Fallback[T], StdMath[T]](dims, a)
	}
}
