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

// Dot returns the dot product of a and b. Panics unless len(a) == len(b).
func Dot[T Lanes](a, b []T) T {
	dims := len(a)
	assertDims(dims, "b", b)
	switch activeLevel() {
	case LevelAvx512:
		return genericDot[T, Block512, Avx512[T], StdMath[T]](dims, a, b)
	case LevelAvx2Fma:
		return genericDot[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b)
	case LevelAvx2:
		return genericDot[T, Block256, Avx2[T], StdMath[T]](dims, a, b)
	case LevelNeon:
		return genericDot[T, Block128, Neon[T], StdMath[T]](dims, a, b)
	default:
		return genericDot[T, T, Fallback[T], StdMath[T]](dims, a, b)
	}
}

// SquaredNorm returns the squared L2 norm of a, equivalent to Dot(a, a)
// with half the loads.
func SquaredNorm[T Lanes](a []T) T {
	dims := len(a)
	switch activeLevel() {
	case LevelAvx512:
		return genericSquaredNorm[T, Block512, Avx512[T], StdMath[T]](dims, a)
	case LevelAvx2Fma:
		return genericSquaredNorm[T, Block256, Avx2Fma[T], StdMath[T]](dims, a)
	case LevelAvx2:
		return genericSquaredNorm[T, Block256, Avx2[T], StdMath[T]](dims, a)
	case LevelNeon:
		return genericSquaredNorm[T, Block128, Neon[T], StdMath[T]](dims, a)
	default:
		return genericSquaredNorm[T, T, Fallback[T], StdMath[T]](dims, a)
	}
}

// SquaredEuclidean returns the squared Euclidean distance between a and b.
// Panics unless len(a) == len(b).
func SquaredEuclidean[T Lanes](a, b []T) T {
	dims := len(a)
	assertDims(dims, "b", b)
	switch activeLevel() {
	case LevelAvx512:
		return genericSquaredEuclidean[T, Block512, Avx512[T], StdMath[T]](dims, a, b)
	case LevelAvx2Fma:
		return genericSquaredEuclidean[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b)
	case LevelAvx2:
		return genericSquaredEuclidean[T, Block256, Avx2[T], StdMath[T]](dims, a, b)
	case LevelNeon:
		return genericSquaredEuclidean[T, Block128, Neon[T], StdMath[T]](dims, a, b)
	default:
		return genericSquaredEuclidean[T, T, Fallback[T], StdMath[T]](dims, a, b)
	}
}

// Cosine returns the cosine distance 1 - dot(a,b)/sqrt(|a|*|b|) between a
// and b. If either vector has a zero norm the distance is reported as
// zero. Panics unless len(a) == len(b).
//
// Integer instantiations compile but wrap on overflow and truncate the
// square root; cosine distance is only really meaningful for floats.
func Cosine[T Lanes](a, b []T) T {
	dims := len(a)
	assertDims(dims, "b", b)
	switch activeLevel() {
	case LevelAvx512:
		return genericCosine[T, Block512, Avx512[T], StdMath[T]](dims, a, b)
	case LevelAvx2Fma:
		return genericCosine[T, Block256, Avx2Fma[T], StdMath[T]](dims, a, b)
	case LevelAvx2:
		return genericCosine[T, Block256, Avx2[T], StdMath[T]](dims, a, b)
	case LevelNeon:
		return genericCosine[T, Block128, Neon[T], StdMath[T]](dims, a, b)
	default:
		return genericCosine[T, T, Fallback[T], StdMath[T]](dims, a, b)
	}
}
