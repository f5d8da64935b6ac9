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

// Fallback is the no-SIMD floor: the register is a single element, every
// operation is straight-line scalar code the compiler can still unroll
// across the dense lane. It is the unconditional last tier of the dispatch
// chain and the reference implementation the other backends are tested
// against.
//
// Fmadd rounds twice (multiply, then add).
type Fallback[T Lanes] struct{}

func (Fallback[T]) ElementsPerLane() int { return 1 }

func (Fallback[T]) Load(mem *T) T { return *mem }

func (Fallback[T]) Filled(value T) T { return value }

func (Fallback[T]) Zeroed() T { var zero T; return zero }

func (Fallback[T]) Add(l1, l2 T) T { return l1 + l2 }

func (Fallback[T]) Sub(l1, l2 T) T { return l1 - l2 }

func (Fallback[T]) Mul(l1, l2 T) T { return l1 * l2 }

func (Fallback[T]) Div(l1, l2 T) T { return l1 / l2 }

func (Fallback[T]) Fmadd(l1, l2, acc T) T { return l1*l2 + acc }

func (Fallback[T]) Hypot(l1, l2 T) T { return scalarHypot(l1, l2) }

func (Fallback[T]) Max(l1, l2 T) T {
	if l2 > l1 {
		return l2
	}
	return l1
}

func (Fallback[T]) Min(l1, l2 T) T {
	if l2 < l1 {
		return l2
	}
	return l1
}

func (Fallback[T]) Eq(l1, l2 T) T {
	if l1 == l2 {
		return T(1)
	}
	var zero T
	return zero
}

func (Fallback[T]) Neq(l1, l2 T) T {
	if l1 != l2 {
		return T(1)
	}
	var zero T
	return zero
}

func (Fallback[T]) Lt(l1, l2 T) T {
	if l1 < l2 {
		return T(1)
	}
	var zero T
	return zero
}

func (Fallback[T]) Lte(l1, l2 T) T {
	if l1 <= l2 {
		return T(1)
	}
	var zero T
	return zero
}

func (Fallback[T]) Gt(l1, l2 T) T {
	if l1 > l2 {
		return T(1)
	}
	var zero T
	return zero
}

func (Fallback[T]) Gte(l1, l2 T) T {
	if l1 >= l2 {
		return T(1)
	}
	var zero T
	return zero
}

func (Fallback[T]) SumToValue(reg T) T { return reg }

func (Fallback[T]) MaxToValue(reg T) T { return reg }

func (Fallback[T]) MinToValue(reg T) T { return reg }

func (Fallback[T]) Write(mem *T, reg T) { *mem = reg }
