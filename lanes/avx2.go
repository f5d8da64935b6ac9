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

// Avx2 is the 256-bit backend for CPUs without a fused-multiply unit.
// Fmadd rounds twice (multiply, then add), so float results are
// bit-identical to the scalar fallback.
type Avx2[T Lanes] struct{}

func (Avx2[T]) ElementsPerLane() int { return blockLanes[T, Block256]() }

func (Avx2[T]) Load(mem *T) Block256 { return blockLoad[T, Block256](mem) }

func (Avx2[T]) Filled(value T) Block256 { return blockFilled[T, Block256](value) }

func (Avx2[T]) Zeroed() Block256 { var zero Block256; return zero }

func (Avx2[T]) Add(l1, l2 Block256) Block256 { return blockAdd[T](l1, l2) }

func (Avx2[T]) Sub(l1, l2 Block256) Block256 { return blockSub[T](l1, l2) }

func (Avx2[T]) Mul(l1, l2 Block256) Block256 { return blockMul[T](l1, l2) }

func (Avx2[T]) Div(l1, l2 Block256) Block256 { return blockDiv[T](l1, l2) }

func (Avx2[T]) Fmadd(l1, l2, acc Block256) Block256 { return blockFmaddPlain[T](l1, l2, acc) }

func (Avx2[T]) Hypot(l1, l2 Block256) Block256 { return blockHypot[T](l1, l2) }

func (Avx2[T]) Max(l1, l2 Block256) Block256 { return blockMax[T](l1, l2) }

func (Avx2[T]) Min(l1, l2 Block256) Block256 { return blockMin[T](l1, l2) }

func (Avx2[T]) Eq(l1, l2 Block256) Block256 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a == b })
}

func (Avx2[T]) Neq(l1, l2 Block256) Block256 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a != b })
}

func (Avx2[T]) Lt(l1, l2 Block256) Block256 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a < b })
}

func (Avx2[T]) Lte(l1, l2 Block256) Block256 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a <= b })
}

func (Avx2[T]) Gt(l1, l2 Block256) Block256 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a > b })
}

func (Avx2[T]) Gte(l1, l2 Block256) Block256 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a >= b })
}

func (Avx2[T]) SumToValue(reg Block256) T { return blockSum[T](reg) }

func (Avx2[T]) MaxToValue(reg Block256) T { return blockMaxValue[T](reg) }

func (Avx2[T]) MinToValue(reg Block256) T { return blockMinValue[T](reg) }

func (Avx2[T]) Write(mem *T, reg Block256) { blockWrite[T](mem, reg) }

// Avx2Fma is Avx2 plus the fused-multiply unit: identical register
// geometry, but Fmadd rounds once per lane. Kept as a separate tier
// because the single rounding changes float results relative to Avx2.
type Avx2Fma[T Lanes] struct {
	Avx2[T]
}

func (Avx2Fma[T]) Fmadd(l1, l2, acc Block256) Block256 { return blockFmaddFused[T](l1, l2, acc) }
