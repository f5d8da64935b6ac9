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

// Neon is the 128-bit ARM backend. Float Fmadd rounds once, matching the
// vfma family of instructions.
//
// The backend body is portable Go over a 16-byte block, so it compiles and
// is testable on every architecture; only dispatch selection is gated on
// the host actually being arm64.
type Neon[T Lanes] struct{}

func (Neon[T]) ElementsPerLane() int { return blockLanes[T, Block128]() }

func (Neon[T]) Load(mem *T) Block128 { return blockLoad[T, Block128](mem) }

func (Neon[T]) Filled(value T) Block128 { return blockFilled[T, Block128](value) }

func (Neon[T]) Zeroed() Block128 { var zero Block128; return zero }

func (Neon[T]) Add(l1, l2 Block128) Block128 { return blockAdd[T](l1, l2) }

func (Neon[T]) Sub(l1, l2 Block128) Block128 { return blockSub[T](l1, l2) }

func (Neon[T]) Mul(l1, l2 Block128) Block128 { return blockMul[T](l1, l2) }

func (Neon[T]) Div(l1, l2 Block128) Block128 { return blockDiv[T](l1, l2) }

func (Neon[T]) Fmadd(l1, l2, acc Block128) Block128 { return blockFmaddFused[T](l1, l2, acc) }

func (Neon[T]) Hypot(l1, l2 Block128) Block128 { return blockHypot[T](l1, l2) }

func (Neon[T]) Max(l1, l2 Block128) Block128 { return blockMax[T](l1, l2) }

func (Neon[T]) Min(l1, l2 Block128) Block128 { return blockMin[T](l1, l2) }

func (Neon[T]) Eq(l1, l2 Block128) Block128 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a == b })
}

func (Neon[T]) Neq(l1, l2 Block128) Block128 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a != b })
}

func (Neon[T]) Lt(l1, l2 Block128) Block128 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a < b })
}

func (Neon[T]) Lte(l1, l2 Block128) Block128 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a <= b })
}

func (Neon[T]) Gt(l1, l2 Block128) Block128 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a > b })
}

func (Neon[T]) Gte(l1, l2 Block128) Block128 {
	return blockCmp[T](l1, l2, func(a, b T) bool { return a >= b })
}

func (Neon[T]) SumToValue(reg Block128) T { return blockSum[T](reg) }

func (Neon[T]) MaxToValue(reg Block128) T { return blockMaxValue[T](reg) }

func (Neon[T]) MinToValue(reg Block128) T { return blockMinValue[T](reg) }

func (Neon[T]) Write(mem *T, reg Block128) { blockWrite[T](mem, reg) }
