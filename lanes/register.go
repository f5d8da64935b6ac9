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

// SimdRegister is the capability surface a backend provides for element
// type T with physical register representation R. Backends are zero-size
// structs; kernels take the backend as a type parameter so every operation
// is resolved at compile time and there is no dynamic dispatch inside hot
// loops.
//
// Registers are values: operations return new registers and never mutate
// in place. Load and Write move exactly ElementsPerLane elements and trust
// the caller for pointer validity; that contract is enforced at the public
// API, not here.
//
// Comparison operations return a register holding one or zero per lane.
// They are only defined for the ordered numeric types admitted by the
// Lanes constraint, so a non-orderable instantiation fails to compile
// rather than producing garbage.
type SimdRegister[T Lanes, R any] interface {
	// ElementsPerLane is register byte width / sizeof(T), derived, never
	// stored.
	ElementsPerLane() int

	Load(mem *T) R
	Filled(value T) R
	Zeroed() R

	Add(l1, l2 R) R
	Sub(l1, l2 R) R
	Mul(l1, l2 R) R
	Div(l1, l2 R) R
	// Fmadd computes l1*l2 + acc. Whether the multiply rounds separately
	// is a per-backend property; see the backend docs.
	Fmadd(l1, l2, acc R) R
	Max(l1, l2 R) R
	Min(l1, l2 R) R

	Eq(l1, l2 R) R
	Neq(l1, l2 R) R
	Lt(l1, l2 R) R
	Lte(l1, l2 R) R
	Gt(l1, l2 R) R
	Gte(l1, l2 R) R

	SumToValue(reg R) T
	MaxToValue(reg R) T
	MinToValue(reg R) T

	Write(mem *T, reg R)
}

// HypotRegister extends SimdRegister with an element-wise hypotenuse:
// the distance from the origin to (x, y) on the Euclidean plane, computed
// without undue overflow or underflow in the intermediate squares. It is a
// separate capability because it is only meaningful for float lanes; the
// public API constrains it accordingly.
type HypotRegister[T Lanes, R any] interface {
	SimdRegister[T, R]
	Hypot(l1, l2 R) R
}

// denseRegisters is the number of registers a DenseLane groups per outer
// loop iteration. Eight keeps enough independent accumulator chains in
// flight to hide load and execute latency.
const denseRegisters = 8

// DenseLane is a tile of exactly eight registers covering
// 8*ElementsPerLane contiguous elements. It is never partially filled;
// tails fall back to single registers and then scalars.
type DenseLane[R any] struct {
	a, b, c, d, e, f, g, h R
}

// copyDense broadcasts one register to all eight slots.
func copyDense[R any](value R) DenseLane[R] {
	return DenseLane[R]{a: value, b: value, c: value, d: value, e: value, f: value, g: value, h: value}
}

// Everything below is derived purely from the single-register interface
// and therefore written exactly once for all backends.

func elementsPerDense[T Lanes, R any, S SimdRegister[T, R]]() int {
	var ops S
	return ops.ElementsPerLane() * denseRegisters
}

func loadDense[T Lanes, R any, S SimdRegister[T, R]](mem *T) DenseLane[R] {
	var ops S
	w := ops.ElementsPerLane()
	return DenseLane[R]{
		a: ops.Load(ptrAdd(mem, 0*w)),
		b: ops.Load(ptrAdd(mem, 1*w)),
		c: ops.Load(ptrAdd(mem, 2*w)),
		d: ops.Load(ptrAdd(mem, 3*w)),
		e: ops.Load(ptrAdd(mem, 4*w)),
		f: ops.Load(ptrAdd(mem, 5*w)),
		g: ops.Load(ptrAdd(mem, 6*w)),
		h: ops.Load(ptrAdd(mem, 7*w)),
	}
}

func filledDense[T Lanes, R any, S SimdRegister[T, R]](value T) DenseLane[R] {
	var ops S
	return copyDense(ops.Filled(value))
}

func zeroedDense[T Lanes, R any, S SimdRegister[T, R]]() DenseLane[R] {
	var ops S
	return copyDense(ops.Zeroed())
}

func writeDense[T Lanes, R any, S SimdRegister[T, R]](mem *T, lane DenseLane[R]) {
	var ops S
	w := ops.ElementsPerLane()
	ops.Write(ptrAdd(mem, 0*w), lane.a)
	ops.Write(ptrAdd(mem, 1*w), lane.b)
	ops.Write(ptrAdd(mem, 2*w), lane.c)
	ops.Write(ptrAdd(mem, 3*w), lane.d)
	ops.Write(ptrAdd(mem, 4*w), lane.e)
	ops.Write(ptrAdd(mem, 5*w), lane.f)
	ops.Write(ptrAdd(mem, 6*w), lane.g)
	ops.Write(ptrAdd(mem, 7*w), lane.h)
}

// applyDense2 maps a binary register op across two dense lanes.
func applyDense2[R any](op func(l1, l2 R) R, l1, l2 DenseLane[R]) DenseLane[R] {
	return DenseLane[R]{
		a: op(l1.a, l2.a),
		b: op(l1.b, l2.b),
		c: op(l1.c, l2.c),
		d: op(l1.d, l2.d),
		e: op(l1.e, l2.e),
		f: op(l1.f, l2.f),
		g: op(l1.g, l2.g),
		h: op(l1.h, l2.h),
	}
}

// applyDense3 maps a ternary register op across three dense lanes.
func applyDense3[R any](op func(l1, l2, l3 R) R, l1, l2, l3 DenseLane[R]) DenseLane[R] {
	return DenseLane[R]{
		a: op(l1.a, l2.a, l3.a),
		b: op(l1.b, l2.b, l3.b),
		c: op(l1.c, l2.c, l3.c),
		d: op(l1.d, l2.d, l3.d),
		e: op(l1.e, l2.e, l3.e),
		f: op(l1.f, l2.f, l3.f),
		g: op(l1.g, l2.g, l3.g),
		h: op(l1.h, l2.h, l3.h),
	}
}

func addDense[T Lanes, R any, S SimdRegister[T, R]](l1, l2 DenseLane[R]) DenseLane[R] {
	var ops S
	return applyDense2(ops.Add, l1, l2)
}

func subDense[T Lanes, R any, S SimdRegister[T, R]](l1, l2 DenseLane[R]) DenseLane[R] {
	var ops S
	return applyDense2(ops.Sub, l1, l2)
}

func mulDense[T Lanes, R any, S SimdRegister[T, R]](l1, l2 DenseLane[R]) DenseLane[R] {
	var ops S
	return applyDense2(ops.Mul, l1, l2)
}

func divDense[T Lanes, R any, S SimdRegister[T, R]](l1, l2 DenseLane[R]) DenseLane[R] {
	var ops S
	return applyDense2(ops.Div, l1, l2)
}

func fmaddDense[T Lanes, R any, S SimdRegister[T, R]](l1, l2, acc DenseLane[R]) DenseLane[R] {
	var ops S
	return applyDense3(ops.Fmadd, l1, l2, acc)
}

func hypotDense[T Lanes, R any, S HypotRegister[T, R]](l1, l2 DenseLane[R]) DenseLane[R] {
	var ops S
	return applyDense2(ops.Hypot, l1, l2)
}

func maxDense[T Lanes, R any, S SimdRegister[T, R]](l1, l2 DenseLane[R]) DenseLane[R] {
	var ops S
	return applyDense2(ops.Max, l1, l2)
}

func minDense[T Lanes, R any, S SimdRegister[T, R]](l1, l2 DenseLane[R]) DenseLane[R] {
	var ops S
	return applyDense2(ops.Min, l1, l2)
}

func eqDense[T Lanes, R any, S SimdRegister[T, R]](l1, l2 DenseLane[R]) DenseLane[R] {
	var ops S
	return applyDense2(ops.Eq, l1, l2)
}

func neqDense[T Lanes, R any, S SimdRegister[T, R]](l1, l2 DenseLane[R]) DenseLane[R] {
	var ops S
	return applyDense2(ops.Neq, l1, l2)
}

func ltDense[T Lanes, R any, S SimdRegister[T, R]](l1, l2 DenseLane[R]) DenseLane[R] {
	var ops S
	return applyDense2(ops.Lt, l1, l2)
}

func lteDense[T Lanes, R any, S SimdRegister[T, R]](l1, l2 DenseLane[R]) DenseLane[R] {
	var ops S
	return applyDense2(ops.Lte, l1, l2)
}

func gtDense[T Lanes, R any, S SimdRegister[T, R]](l1, l2 DenseLane[R]) DenseLane[R] {
	var ops S
	return applyDense2(ops.Gt, l1, l2)
}

func gteDense[T Lanes, R any, S SimdRegister[T, R]](l1, l2 DenseLane[R]) DenseLane[R] {
	var ops S
	return applyDense2(ops.Gte, l1, l2)
}

// sumToRegister rolls the eight registers up pairwise (a+b, c+d, e+f, g+h,
// then pairs of pairs) rather than folding linearly, keeping the
// dependency chain at three adds deep instead of seven.
func sumToRegister[T Lanes, R any, S SimdRegister[T, R]](lane DenseLane[R]) R {
	var ops S
	acc1 := ops.Add(lane.a, lane.b)
	acc2 := ops.Add(lane.c, lane.d)
	acc3 := ops.Add(lane.e, lane.f)
	acc4 := ops.Add(lane.g, lane.h)
	return ops.Add(ops.Add(acc1, acc2), ops.Add(acc3, acc4))
}

// maxToRegister reduces the lane to one register with the same pairwise
// tree as sumToRegister.
func maxToRegister[T Lanes, R any, S SimdRegister[T, R]](lane DenseLane[R]) R {
	var ops S
	acc1 := ops.Max(lane.a, lane.b)
	acc2 := ops.Max(lane.c, lane.d)
	acc3 := ops.Max(lane.e, lane.f)
	acc4 := ops.Max(lane.g, lane.h)
	return ops.Max(ops.Max(acc1, acc2), ops.Max(acc3, acc4))
}

// minToRegister reduces the lane to one register with the same pairwise
// tree as sumToRegister.
func minToRegister[T Lanes, R any, S SimdRegister[T, R]](lane DenseLane[R]) R {
	var ops S
	acc1 := ops.Min(lane.a, lane.b)
	acc2 := ops.Min(lane.c, lane.d)
	acc3 := ops.Min(lane.e, lane.f)
	acc4 := ops.Min(lane.g, lane.h)
	return ops.Min(ops.Min(acc1, acc2), ops.Min(acc3, acc4))
}
