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

// Distance and similarity kernels. All accumulate through Fmadd, so the
// float rounding behaviour follows the active backend.

func genericDot[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b []T) T {
	var ops S
	var m M
	epd := elementsPerDense[T, R, S]()
	epl := ops.ElementsPerLane()
	aPtr := unsafe.SliceData(a)
	bPtr := unsafe.SliceData(b)

	offsetFrom := dims % epd
	acc := zeroedDense[T, R, S]()

	i := 0
	for ; i < dims-offsetFrom; i += epd {
		l1 := loadDense[T, R, S](ptrAdd(aPtr, i))
		l2 := loadDense[T, R, S](ptrAdd(bPtr, i))
		acc = fmaddDense[T, R, S](l1, l2, acc)
	}

	accReg := sumToRegister[T, R, S](acc)

	offsetFrom %= epl
	for ; i < dims-offsetFrom; i += epl {
		l1 := ops.Load(ptrAdd(aPtr, i))
		l2 := ops.Load(ptrAdd(bPtr, i))
		accReg = ops.Fmadd(l1, l2, accReg)
	}

	total := ops.SumToValue(accReg)
	for ; i < dims; i++ {
		total = m.Add(total, m.Mul(a[i], b[i]))
	}
	return total
}

// genericSquaredNorm is dot(a, a) with a single load per stride.
func genericSquaredNorm[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a []T) T {
	var ops S
	var m M
	epd := elementsPerDense[T, R, S]()
	epl := ops.ElementsPerLane()
	aPtr := unsafe.SliceData(a)

	offsetFrom := dims % epd
	acc := zeroedDense[T, R, S]()

	i := 0
	for ; i < dims-offsetFrom; i += epd {
		l1 := loadDense[T, R, S](ptrAdd(aPtr, i))
		acc = fmaddDense[T, R, S](l1, l1, acc)
	}

	accReg := sumToRegister[T, R, S](acc)

	offsetFrom %= epl
	for ; i < dims-offsetFrom; i += epl {
		l1 := ops.Load(ptrAdd(aPtr, i))
		accReg = ops.Fmadd(l1, l1, accReg)
	}

	total := ops.SumToValue(accReg)
	for ; i < dims; i++ {
		total = m.Add(total, m.Mul(a[i], a[i]))
	}
	return total
}

func genericSquaredEuclidean[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b []T) T {
	var ops S
	var m M
	epd := elementsPerDense[T, R, S]()
	epl := ops.ElementsPerLane()
	aPtr := unsafe.SliceData(a)
	bPtr := unsafe.SliceData(b)

	offsetFrom := dims % epd
	acc := zeroedDense[T, R, S]()

	i := 0
	for ; i < dims-offsetFrom; i += epd {
		l1 := loadDense[T, R, S](ptrAdd(aPtr, i))
		l2 := loadDense[T, R, S](ptrAdd(bPtr, i))
		diff := subDense[T, R, S](l1, l2)
		acc = fmaddDense[T, R, S](diff, diff, acc)
	}

	accReg := sumToRegister[T, R, S](acc)

	offsetFrom %= epl
	for ; i < dims-offsetFrom; i += epl {
		l1 := ops.Load(ptrAdd(aPtr, i))
		l2 := ops.Load(ptrAdd(bPtr, i))
		diff := ops.Sub(l1, l2)
		accReg = ops.Fmadd(diff, diff, accReg)
	}

	total := ops.SumToValue(accReg)
	for ; i < dims; i++ {
		diff := m.Sub(a[i], b[i])
		total = m.Add(total, m.Mul(diff, diff))
	}
	return total
}

// genericCosine computes the cosine distance 1 - dot/sqrt(|a|*|b|) in a
// single pass over both inputs, accumulating the dot product and both
// squared norms simultaneously.
func genericCosine[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b []T) T {
	var ops S
	var m M
	epd := elementsPerDense[T, R, S]()
	epl := ops.ElementsPerLane()
	aPtr := unsafe.SliceData(a)
	bPtr := unsafe.SliceData(b)

	offsetFrom := dims % epd
	dotAcc := zeroedDense[T, R, S]()
	normAAcc := zeroedDense[T, R, S]()
	normBAcc := zeroedDense[T, R, S]()

	i := 0
	for ; i < dims-offsetFrom; i += epd {
		l1 := loadDense[T, R, S](ptrAdd(aPtr, i))
		l2 := loadDense[T, R, S](ptrAdd(bPtr, i))
		dotAcc = fmaddDense[T, R, S](l1, l2, dotAcc)
		normAAcc = fmaddDense[T, R, S](l1, l1, normAAcc)
		normBAcc = fmaddDense[T, R, S](l2, l2, normBAcc)
	}

	dotReg := sumToRegister[T, R, S](dotAcc)
	normAReg := sumToRegister[T, R, S](normAAcc)
	normBReg := sumToRegister[T, R, S](normBAcc)

	offsetFrom %= epl
	for ; i < dims-offsetFrom; i += epl {
		l1 := ops.Load(ptrAdd(aPtr, i))
		l2 := ops.Load(ptrAdd(bPtr, i))
		dotReg = ops.Fmadd(l1, l2, dotReg)
		normAReg = ops.Fmadd(l1, l1, normAReg)
		normBReg = ops.Fmadd(l2, l2, normBReg)
	}

	dot := ops.SumToValue(dotReg)
	normA := ops.SumToValue(normAReg)
	normB := ops.SumToValue(normBReg)
	for ; i < dims; i++ {
		dot = m.Add(dot, m.Mul(a[i], b[i]))
		normA = m.Add(normA, m.Mul(a[i], a[i]))
		normB = m.Add(normB, m.Mul(b[i], b[i]))
	}

	return cosineValue[T, M](dot, normA, normB)
}

// cosineValue folds the three accumulated sums into the final distance.
// A zero norm means the vector carries no direction, so any pair involving
// one is reported as identical (distance zero) rather than undefined.
func cosineValue[T Lanes, M Math[T]](dot, normA, normB T) T {
	var m M
	if m.CmpEq(normA, m.Zero()) || m.CmpEq(normB, m.Zero()) {
		return m.Zero()
	}
	return m.Sub(m.One(), m.Div(dot, m.Sqrt(m.Mul(normA, normB))))
}
