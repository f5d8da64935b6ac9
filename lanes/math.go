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

	"github.com/chewxy/math32"
)

// Math describes the per-element numeric semantics a kernel relies on,
// decoupled from vectorization so the same kernel compiles for floats and
// integers. Implementations are zero-size structs; the compiler
// monomorphizes every call.
//
// Integer instantiations use wrapping semantics for all arithmetic. They
// never trap on overflow; see the package documentation. Integer division
// by zero is a caller precondition, not a runtime check.
type Math[T Lanes] interface {
	Zero() T
	One() T
	// MinValue is the identity for horizontal max: negative infinity for
	// floats, the type minimum for integers.
	MinValue() T
	// MaxValue is the identity for horizontal min: positive infinity for
	// floats, the type maximum for integers.
	MaxValue() T
	Sqrt(a T) T
	Abs(a T) T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	CmpEq(a, b T) bool
	CmpLt(a, b T) bool
	CmpLte(a, b T) bool
	CmpGt(a, b T) bool
	CmpGte(a, b T) bool
	CmpMin(a, b T) T
	CmpMax(a, b T) T
}

// StdMath applies no specialised handling: IEEE-754 semantics for floats,
// wrapping arithmetic for integers.
type StdMath[T Lanes] struct{}

func (StdMath[T]) Zero() T { var zero T; return zero }

func (StdMath[T]) One() T { return T(1) }

func (StdMath[T]) MinValue() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(math.Inf(-1))).(T)
	case float64:
		return any(math.Inf(-1)).(T)
	case int8:
		return any(int8(math.MinInt8)).(T)
	case int16:
		return any(int16(math.MinInt16)).(T)
	case int32:
		return any(int32(math.MinInt32)).(T)
	case int64:
		return any(int64(math.MinInt64)).(T)
	default:
		// Unsigned integers bottom out at zero.
		return zero
	}
}

func (StdMath[T]) MaxValue() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(math.Inf(1))).(T)
	case float64:
		return any(math.Inf(1)).(T)
	case int8:
		return any(int8(math.MaxInt8)).(T)
	case int16:
		return any(int16(math.MaxInt16)).(T)
	case int32:
		return any(int32(math.MaxInt32)).(T)
	case int64:
		return any(int64(math.MaxInt64)).(T)
	case uint8:
		return any(uint8(math.MaxUint8)).(T)
	case uint16:
		return any(uint16(math.MaxUint16)).(T)
	case uint32:
		return any(uint32(math.MaxUint32)).(T)
	default:
		return any(uint64(math.MaxUint64)).(T)
	}
}

// Sqrt computes the square root. Float32 goes through math32 to avoid the
// float64 round trip; integers truncate the float64 result.
func (StdMath[T]) Sqrt(a T) T {
	switch av := any(a).(type) {
	case float32:
		return any(math32.Sqrt(av)).(T)
	case float64:
		return any(math.Sqrt(av)).(T)
	default:
		return T(math.Sqrt(float64(a)))
	}
}

func (StdMath[T]) Abs(a T) T {
	switch av := any(a).(type) {
	case float32:
		return any(math32.Abs(av)).(T)
	case float64:
		return any(math.Abs(av)).(T)
	default:
		if a < 0 {
			return -a
		}
		return a
	}
}

func (StdMath[T]) Add(a, b T) T { return a + b }

func (StdMath[T]) Sub(a, b T) T { return a - b }

func (StdMath[T]) Mul(a, b T) T { return a * b }

// Div divides a by b. For integers a zero divisor is a caller-contract
// violation and will fault.
func (StdMath[T]) Div(a, b T) T { return a / b }

func (StdMath[T]) CmpEq(a, b T) bool { return a == b }

func (StdMath[T]) CmpLt(a, b T) bool { return a < b }

func (StdMath[T]) CmpLte(a, b T) bool { return a <= b }

func (StdMath[T]) CmpGt(a, b T) bool { return a > b }

func (StdMath[T]) CmpGte(a, b T) bool { return a >= b }

func (StdMath[T]) CmpMin(a, b T) T {
	if b < a {
		return b
	}
	return a
}

func (StdMath[T]) CmpMax(a, b T) T {
	if b > a {
		return b
	}
	return a
}
