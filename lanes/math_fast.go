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

import "math"

// FastMath trades bit-exact reproducibility for throughput. Square roots
// use a bit-manipulation approximation (average deviation around 5%);
// everything else matches StdMath. Integers are unaffected.
//
// Use it by instantiating kernels directly; the flat package API always
// uses StdMath.
type FastMath[T Lanes] struct {
	StdMath[T]
}

// Sqrt is an approximate square root. Negative inputs return NaN for
// floats and zero for integers.
func (FastMath[T]) Sqrt(a T) T {
	switch av := any(a).(type) {
	case float32:
		return any(sqrtApprox(av)).(T)
	case float64:
		return any(float64(sqrtApprox(float32(av)))).(T)
	default:
		if a < T(1) {
			var zero T
			return zero
		}
		return T(sqrtApprox(float32(a)))
	}
}

// sqrtApprox halves the exponent through the bit representation.
func sqrtApprox(a float32) float32 {
	if a < 0 {
		return float32(math.NaN())
	}
	return math.Float32frombits((math.Float32bits(a) + 0x3f80_0000) >> 1)
}
