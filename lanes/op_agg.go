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

// Horizontal reduction kernels. Every kernel in this package walks its
// input the same way: dense-lane strides first, then single registers,
// then a scalar loop for the final < W elements. dims is trusted to match
// the buffer lengths; the public API checks that before entering.

func genericSum[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a []T) T {
	var ops S
	var m M
	epd := elementsPerDense[T, R, S]()
	epl := ops.ElementsPerLane()
	aPtr := unsafe.SliceData(a)

	offsetFrom := dims % epd
	sumDense := zeroedDense[T, R, S]()

	i := 0
	for ; i < dims-offsetFrom; i += epd {
		l1 := loadDense[T, R, S](ptrAdd(aPtr, i))
		sumDense = addDense[T, R, S](sumDense, l1)
	}

	sumReg := sumToRegister[T, R, S](sumDense)

	offsetFrom %= epl
	for ; i < dims-offsetFrom; i += epl {
		sumReg = ops.Add(sumReg, ops.Load(ptrAdd(aPtr, i)))
	}

	sum := ops.SumToValue(sumReg)
	for ; i < dims; i++ {
		sum = m.Add(sum, a[i])
	}
	return sum
}

// genericMax returns the horizontal maximum; the identity for dims == 0 is
// MinValue (negative infinity, or the integer minimum).
func genericMax[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a []T) T {
	var ops S
	var m M
	epd := elementsPerDense[T, R, S]()
	epl := ops.ElementsPerLane()
	aPtr := unsafe.SliceData(a)

	offsetFrom := dims % epd
	maxDenseAcc := filledDense[T, R, S](m.MinValue())

	i := 0
	for ; i < dims-offsetFrom; i += epd {
		l1 := loadDense[T, R, S](ptrAdd(aPtr, i))
		maxDenseAcc = maxDense[T, R, S](maxDenseAcc, l1)
	}

	maxReg := maxToRegister[T, R, S](maxDenseAcc)

	offsetFrom %= epl
	for ; i < dims-offsetFrom; i += epl {
		maxReg = ops.Max(maxReg, ops.Load(ptrAdd(aPtr, i)))
	}

	maxVal := ops.MaxToValue(maxReg)
	for ; i < dims; i++ {
		maxVal = m.CmpMax(maxVal, a[i])
	}
	return maxVal
}

// genericMin returns the horizontal minimum; the identity for dims == 0 is
// MaxValue (positive infinity, or the integer maximum).
func genericMin[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a []T) T {
	var ops S
	var m M
	epd := elementsPerDense[T, R, S]()
	epl := ops.ElementsPerLane()
	aPtr := unsafe.SliceData(a)

	offsetFrom := dims % epd
	minDenseAcc := filledDense[T, R, S](m.MaxValue())

	i := 0
	for ; i < dims-offsetFrom; i += epd {
		l1 := loadDense[T, R, S](ptrAdd(aPtr, i))
		minDenseAcc = minDense[T, R, S](minDenseAcc, l1)
	}

	minReg := minToRegister[T, R, S](minDenseAcc)

	offsetFrom %= epl
	for ; i < dims-offsetFrom; i += epl {
		minReg = ops.Min(minReg, ops.Load(ptrAdd(aPtr, i)))
	}

	minVal := ops.MinToValue(minReg)
	for ; i < dims; i++ {
		minVal = m.CmpMin(minVal, a[i])
	}
	return minVal
}
