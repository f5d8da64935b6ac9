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

// Element-wise hypotenuse: result[i] is the distance from the origin to
// the point (a[i], b[i]) on the Euclidean plane. Unlike a naive
// sqrt(a*a + b*b) the intermediate squares are scaled, so inputs near the
// float range limits do not overflow to infinity. Restricted to float
// element types at compile time.

// HypotVector writes hypot(a[i], b[i]) into result. Panics unless all
// three buffers share one length.
func HypotVector[T Floats](a, b, result []T) {
	dims := len(a)
	assertDims(dims, "b", b)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericHypotVector[T, Block512, Avx512[T]](dims, a, b, result)
	case LevelAvx2Fma:
		genericHypotVector[T, Block256, Avx2Fma[T]](dims, a, b, result)
	case LevelAvx2:
		genericHypotVector[T, Block256, Avx2[T]](dims, a, b, result)
	case LevelNeon:
		genericHypotVector[T, Block128, Neon[T]](dims, a, b, result)
	default:
		genericHypotVector[T, T, Fallback[T]](dims, a, b, result)
	}
}

// HypotValue writes hypot(a[i], value) into result. Panics unless a and
// result share one length.
func HypotValue[T Floats](value T, a, result []T) {
	dims := len(a)
	assertDims(dims, "result", result)
	switch activeLevel() {
	case LevelAvx512:
		genericHypotValue[T, Block512, Avx512[T]](dims, value, a, result)
	case LevelAvx2Fma:
		genericHypotValue[T, Block256, Avx2Fma[T]](dims, value, a, result)
	case LevelAvx2:
		genericHypotValue[T, Block256, Avx2[T]](dims, value, a, result)
	case LevelNeon:
		genericHypotValue[T, Block128, Neon[T]](dims, value, a, result)
	default:
		genericHypotValue[T, T, Fallback[T]](dims, value, a, result)
	}
}
