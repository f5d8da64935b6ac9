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

import "unsafe"

// Vertical (element-wise) kernels. Two appliers cover every vertical
// operation: vector-vector and vector-value, each parameterised over the
// dense, register and scalar flavours of the same operation so the loop
// shape is written once.
//
// result may alias a or b; every stride reads its inputs before writing.

func applyVectorVector[T Lanes, R any, S SimdRegister[T, R]](
	dims int,
	a, b, result []T,
	denseOp func(l1, l2 DenseLane[R]) DenseLane[R],
	regOp func(l1, l2 R) R,
	scalarOp func(a, b T) T,
) {
	var ops S
	epd := elementsPerDense[T, R, S]()
	epl := ops.ElementsPerLane()
	aPtr := unsafe.SliceData(a)
	bPtr := unsafe.SliceData(b)
	resultPtr := unsafe.SliceData(result)

	offsetFrom := dims % epd
	i := 0
	for ; i < dims-offsetFrom; i += epd {
		l1 := loadDense[T, R, S](ptrAdd(aPtr, i))
		l2 := loadDense[T, R, S](ptrAdd(bPtr, i))
		writeDense[T, R, S](ptrAdd(resultPtr, i), denseOp(l1, l2))
	}

	offsetFrom %= epl
	for ; i < dims-offsetFrom; i += epl {
		l1 := ops.Load(ptrAdd(aPtr, i))
		l2 := ops.Load(ptrAdd(bPtr, i))
		ops.Write(ptrAdd(resultPtr, i), regOp(l1, l2))
	}

	for ; i < dims; i++ {
		result[i] = scalarOp(a[i], b[i])
	}
}

// applyVectorValue broadcasts value once and applies op(a[i], value) per
// element; the broadcast always sits on the right-hand side, which is what
// makes Sub and Div read naturally ("subtract value from a").
func applyVectorValue[T Lanes, R any, S SimdRegister[T, R]](
	dims int,
	value T,
	a, result []T,
	denseOp func(l1, l2 DenseLane[R]) DenseLane[R],
	regOp func(l1, l2 R) R,
	scalarOp func(a, b T) T,
) {
	var ops S
	epd := elementsPerDense[T, R, S]()
	epl := ops.ElementsPerLane()
	aPtr := unsafe.SliceData(a)
	resultPtr := unsafe.SliceData(result)

	valueReg := ops.Filled(value)
	valueDense := copyDense(valueReg)

	offsetFrom := dims % epd
	i := 0
	for ; i < dims-offsetFrom; i += epd {
		l1 := loadDense[T, R, S](ptrAdd(aPtr, i))
		writeDense[T, R, S](ptrAdd(resultPtr, i), denseOp(l1, valueDense))
	}

	offsetFrom %= epl
	for ; i < dims-offsetFrom; i += epl {
		l1 := ops.Load(ptrAdd(aPtr, i))
		ops.Write(ptrAdd(resultPtr, i), regOp(l1, valueReg))
	}

	for ; i < dims; i++ {
		result[i] = scalarOp(a[i], value)
	}
}

func genericAddVector[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b, result []T) {
	var ops S
	var m M
	applyVectorVector[T, R, S](dims, a, b, result, addDense[T, R, S], ops.Add, m.Add)
}

func genericSubVector[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b, result []T) {
	var ops S
	var m M
	applyVectorVector[T, R, S](dims, a, b, result, subDense[T, R, S], ops.Sub, m.Sub)
}

func genericMulVector[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b, result []T) {
	var ops S
	var m M
	applyVectorVector[T, R, S](dims, a, b, result, mulDense[T, R, S], ops.Mul, m.Mul)
}

func genericDivVector[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b, result []T) {
	var ops S
	var m M
	applyVectorVector[T, R, S](dims, a, b, result, divDense[T, R, S], ops.Div, m.Div)
}

// The hypot kernels skip the Math parameter: their scalar flavour comes
// from the overflow-safe library routine, not from element arithmetic.
func genericHypotVector[T Floats, R any, S HypotRegister[T, R]](dims int, a, b, result []T) {
	var ops S
	applyVectorVector[T, R, S](dims, a, b, result, hypotDense[T, R, S], ops.Hypot, scalarHypot[T])
}

func genericHypotValue[T Floats, R any, S HypotRegister[T, R]](dims int, value T, a, result []T) {
	var ops S
	applyVectorValue[T, R, S](dims, value, a, result, hypotDense[T, R, S], ops.Hypot, scalarHypot[T])
}

func genericMaxVector[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b, result []T) {
	var ops S
	var m M
	applyVectorVector[T, R, S](dims, a, b, result, maxDense[T, R, S], ops.Max, m.CmpMax)
}

func genericMinVector[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b, result []T) {
	var ops S
	var m M
	applyVectorVector[T, R, S](dims, a, b, result, minDense[T, R, S], ops.Min, m.CmpMin)
}

func genericAddValue[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, value T, a, result []T) {
	var ops S
	var m M
	applyVectorValue[T, R, S](dims, value, a, result, addDense[T, R, S], ops.Add, m.Add)
}

func genericSubValue[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, value T, a, result []T) {
	var ops S
	var m M
	applyVectorValue[T, R, S](dims, value, a, result, subDense[T, R, S], ops.Sub, m.Sub)
}

func genericMulValue[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, value T, a, result []T) {
	var ops S
	var m M
	applyVectorValue[T, R, S](dims, value, a, result, mulDense[T, R, S], ops.Mul, m.Mul)
}

func genericDivValue[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, value T, a, result []T) {
	var ops S
	var m M
	applyVectorValue[T, R, S](dims, value, a, result, divDense[T, R, S], ops.Div, m.Div)
}

func genericMaxValue[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, value T, a, result []T) {
	var ops S
	var m M
	applyVectorValue[T, R, S](dims, value, a, result, maxDense[T, R, S], ops.Max, m.CmpMax)
}

func genericMinValue[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, value T, a, result []T) {
	var ops S
	var m M
	applyVectorValue[T, R, S](dims, value, a, result, minDense[T, R, S], ops.Min, m.CmpMin)
}
