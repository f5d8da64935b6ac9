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

// Avx512 is the 512-bit backend. FMA is part of the AVX-512 foundation, so
// float Fmadd rounds once.
type Avx512[T Lanes] struct{}

func (Avx512[T]) ElementsPerLane() int { return blockLanes[T, Block512]() }

func (Avx512[T]) Load(mem *T) Block512 { return blockLoad[T, Block512](mem) }

func (Avx512[T]) Filled(value T) Block512 { return blockFilled[T, Block512](value) }

func (Avx512[T]) Zeroed() Block512 { var zero Block512; return zero }

func (Avx512[T]) Add(l1, l2 Block512) Block512 { return blockAdd[T](l1, l2) }

func (Avx512[T]) Sub(l1, l2 Block512) Block512 { return blockSub[T](l1, l2) }

func (Avx512[T]) Mul(l1, l2 Block512) Block512 { return blockMul[T](l1, l2) }

func (Avx512[T]) Div(l1, l2 Block512) Block512 { return blockDiv[T](l1, l2) }

func (Avx512[T]) Fmadd(l1, l2, acc Block512) Block512 { return blockFmaddFused[T](l1, l2, acc) }

func (Avx512[T]) Hypot(l1, l2 Block512) Block512 { return blockHypot[T](l1, l2) }

func (Avx512[T]) Max(l1, l2 Block512) Block512 { return blockMax[T](l1, l2) }

func (Avx512[T]) Min(l1, l2 Block512) Block512 { return blockMin[T](l1, l2) }

func (Avx512[T]) Eq(l1, l2 Block512) Block512 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a == b })
}

func (Avx512[T]) Neq(l1, l2 Block512) Block512 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a != b })
}

func (Avx512[T]) Lt(l1, l2 Block512) Block512 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a < b })
}

func (Avx512[T]) Lte(l1, l2 Block512) Block512 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a <= b })
}

func (Avx512[T]) Gt(l1, l2 Block512) Block512 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a > b })
}

func (Avx512[T]) Gte(l1, l2 Block512) Block512 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a >= b })
}

func (Avx512[T]) SumToValue(reg Block512) T { return blockSum[T](reg) }

func (Avx512[T]) MaxToValue(reg Block512) T { return blockMaxValue[T](reg) }

func (Avx512[T]) MinToValue(reg Block512) T { return blockMinValue[T](reg) }

func (Avx512[T]) Write(mem *T, reg Block512) { blockWrite[T](mem, reg) }
