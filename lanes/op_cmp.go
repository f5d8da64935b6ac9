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

// Element-wise comparison kernels. Each writes T(1) where the predicate
// holds and the zero value where it does not, reusing the vertical
// appliers with the comparison flavour of the register ops.

// maskValue converts a predicate result to the one/zero lane encoding.
func maskValue[T Lanes](keep bool) T {
	if keep {
		return T(1)
	}
	var zero T
	return zero
}

func genericEqVector[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b, result []T) {
	var ops S
	var m M
	applyVectorVector[T, R, S](dims, a, b, result, eqDense[T, R, S], ops.Eq,
		func(a, b T) T { return maskValue[T](m.CmpEq(a, b)) })
}

func genericNeqVector[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b, result []T) {
	var ops S
	var m M
	applyVectorVector[T, R, S](dims, a, b, result, neqDense[T, R, S], ops.Neq,
		func(a, b T) T { return maskValue[T](!m.CmpEq(a, b)) })
}

func genericLtVector[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b, result []T) {
	var ops S
	var m M
	applyVectorVector[T, R, S](dims, a, b, result, ltDense[T, R, S], ops.Lt,
		func(a, b T) T { return maskValue[T](m.CmpLt(a, b)) })
}

func genericLteVector[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b, result []T) {
	var ops S
	var m M
	applyVectorVector[T, R, S](dims, a, b, result, lteDense[T, R, S], ops.Lte,
		func(a, b T) T { return maskValue[T](m.CmpLte(a, b)) })
}

func genericGtVector[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b, result []T) {
	var ops S
	var m M
	applyVectorVector[T, R, S](dims, a, b, result, gtDense[T, R, S], ops.Gt,
		func(a, b T) T { return maskValue[T](m.CmpGt(a, b)) })
}

func genericGteVector[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, a, b, result []T) {
	var ops S
	var m M
	applyVectorVector[T, R, S](dims, a, b, result, gteDense[T, R, S], ops.Gte,
		func(a, b T) T { return maskValue[T](m.CmpGte(a, b)) })
}

func genericEqValue[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, value T, a, result []T) {
	var ops S
	var m M
	applyVectorValue[T, R, S](dims, value, a, result, eqDense[T, R, S], ops.Eq,
		func(a, b T) T { return maskValue[T](m.CmpEq(a, b)) })
}

func genericNeqValue[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, value T, a, result []T) {
	var ops S
	var m M
	applyVectorValue[T, R, S](dims, value, a, result, neqDense[T, R, S], ops.Neq,
		func(a, b T) T { return maskValue[T](!m.CmpEq(a, b)) })
}

func genericLtValue[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, value T, a, result []T) {
	var ops S
	var m M
	applyVectorValue[T, R, S](dims, value, a, result, ltDense[T, R, S], ops.Lt,
		func(a, b T) T { return maskValue[T](m.CmpLt(a, b)) })
}

func genericLteValue[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, value T, a, result []T) {
	var ops S
	var m M
	applyVectorValue[T, R, S](dims, value, a, result, lteDense[T, R, S], ops.Lte,
		func(a, b T) T { return maskValue[T](m.CmpLte(a, b)) })
}

func genericGtValue[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, value T, a, result []T) {
	var ops S
	var m M
	applyVectorValue[T, R, S](dims, value, a, result, gtDense[T, R, S], ops.Gt,
		func(a, b T) T { return maskValue[T](m.CmpGt(a, b)) })
}

func genericGteValue[T Lanes, R any, S SimdRegister[T, R], M Math[T]](dims int, value T, a, result []T) {
	var ops S
	var m M
	applyVectorValue[T, R, S](dims, value, a, result, gteDense[T, R, S], ops.Gte,
		func(a, b T) T { return maskValue[T](m.CmpGte(a, b)) })
}
