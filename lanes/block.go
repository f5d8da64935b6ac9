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
	"unsafe"

	"github.com/chewxy/math32"
)

// This file is the trusted kernel boundary: the only place where buffers
// are reinterpreted through raw pointers. Every function here presumes the
// pointer it receives covers at least one full block of fully-initialized
// elements; callers validate slice shapes once at the public API and then
// step through memory with ptrAdd.
//
// A block is the physical representation of one vector register. Element
// count per block is always blockBytes / sizeof(T), so the same block
// holds 8 float32 or 4 float64 at 256 bits, mirroring how the hardware
// registers are split into lanes.

// Block128 is a 128-bit register representation (ARM NEON width).
type Block128 [16]byte

// Block256 is a 256-bit register representation (AVX2 width).
type Block256 [32]byte

// Block512 is a 512-bit register representation (AVX-512 width).
type Block512 [64]byte

// blockType constrains the physical register representations.
type blockType interface {
	Block128 | Block256 | Block512
}

// ptrAdd advances an element pointer by n elements.
func ptrAdd[T Lanes](mem *T, n int) *T {
	var t T
	return (*T)(unsafe.Add(unsafe.Pointer(mem), uintptr(n)*unsafe.Sizeof(t)))
}

// blockLanes reports the number of elements of T held by a block of B.
func blockLanes[T Lanes, B blockType]() int {
	var b B
	var t T
	return int(unsafe.Sizeof(b) / unsafe.Sizeof(t))
}

// blockIndex returns a pointer to lane i of the block.
func blockIndex[T Lanes, B blockType](b *B, i int) *T {
	var t T
	return (*T)(unsafe.Add(unsafe.Pointer(b), uintptr(i)*unsafe.Sizeof(t)))
}

// blockLoad reads exactly blockLanes elements starting at mem.
func blockLoad[T Lanes, B blockType](mem *T) B {
	return *(*B)(unsafe.Pointer(mem))
}

// blockWrite writes exactly blockLanes elements starting at mem.
func blockWrite[T Lanes, B blockType](mem *T, b B) {
	*(*B)(unsafe.Pointer(mem)) = b
}

// blockFilled broadcasts value to every lane.
func blockFilled[T Lanes, B blockType](value T) B {
	var out B
	for i := 0; i < blockLanes[T, B](); i++ {
		*blockIndex[T](&out, i) = value
	}
	return out
}

func blockAdd[T Lanes, B blockType](l1, l2 B) B {
	for i := 0; i < blockLanes[T, B](); i++ {
		*blockIndex[T](&l1, i) += *blockIndex[T](&l2, i)
	}
	return l1
}

func blockSub[T Lanes, B blockType](l1, l2 B) B {
	for i := 0; i < blockLanes[T, B](); i++ {
		*blockIndex[T](&l1, i) -= *blockIndex[T](&l2, i)
	}
	return l1
}

func blockMul[T Lanes, B blockType](l1, l2 B) B {
	for i := 0; i < blockLanes[T, B](); i++ {
		*blockIndex[T](&l1, i) *= *blockIndex[T](&l2, i)
	}
	return l1
}

func blockDiv[T Lanes, B blockType](l1, l2 B) B {
	for i := 0; i < blockLanes[T, B](); i++ {
		*blockIndex[T](&l1, i) /= *blockIndex[T](&l2, i)
	}
	return l1
}

// blockFmaddPlain is multiply-then-add with two roundings, for backends
// without a fused-multiply unit.
func blockFmaddPlain[T Lanes, B blockType](l1, l2, acc B) B {
	for i := 0; i < blockLanes[T, B](); i++ {
		a := *blockIndex[T](&l1, i)
		b := *blockIndex[T](&l2, i)
		*blockIndex[T](&acc, i) += a * b
	}
	return acc
}

// blockFmaddFused rounds once per lane for floats, matching hardware FMA.
// Integers are wrapping multiply-then-add either way.
func blockFmaddFused[T Lanes, B blockType](l1, l2, acc B) B {
	for i := 0; i < blockLanes[T, B](); i++ {
		a := *blockIndex[T](&l1, i)
		b := *blockIndex[T](&l2, i)
		c := blockIndex[T](&acc, i)
		*c = fusedMulAdd(a, b, *c)
	}
	return acc
}

func fusedMulAdd[T Lanes](a, b, acc T) T {
	switch av := any(a).(type) {
	case float32:
		bv := any(b).(float32)
		cv := any(acc).(float32)
		return any(float32(math.FMA(float64(av), float64(bv), float64(cv)))).(T)
	case float64:
		bv := any(b).(float64)
		cv := any(acc).(float64)
		return any(math.FMA(av, bv, cv)).(T)
	default:
		return a*b + acc
	}
}

func blockHypot[T Lanes, B blockType](l1, l2 B) B {
	for i := 0; i < blockLanes[T, B](); i++ {
		a := *blockIndex[T](&l1, i)
		b := blockIndex[T](&l2, i)
		*b = scalarHypot(a, *b)
	}
	return l2
}

// scalarHypot computes sqrt(a*a + b*b) without undue overflow or underflow
// at the extremes, via the scaled library routines. Integer instantiations
// exist only to satisfy the compiler; the public surface restricts hypot
// to float types.
func scalarHypot[T Lanes](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		return any(math32.Hypot(av, any(b).(float32))).(T)
	case float64:
		return any(math.Hypot(av, any(b).(float64))).(T)
	default:
		return T(math.Hypot(float64(a), float64(b)))
	}
}

func blockMax[T Lanes, B blockType](l1, l2 B) B {
	for i := 0; i < blockLanes[T, B](); i++ {
		a := blockIndex[T](&l1, i)
		b := *blockIndex[T](&l2, i)
		if b > *a {
			*a = b
		}
	}
	return l1
}

func blockMin[T Lanes, B blockType](l1, l2 B) B {
	for i := 0; i < blockLanes[T, B](); i++ {
		a := blockIndex[T](&l1, i)
		b := *blockIndex[T](&l2, i)
		if b < *a {
			*a = b
		}
	}
	return l1
}

// Comparison blocks produce one() or zero() per lane, the same shape the
// exported comparison operations write out.

func blockCmp[T Lanes, B blockType](l1, l2 B, keep func(a, b T) bool) B {
	var out B
	for i := 0; i < blockLanes[T, B](); i++ {
		if keep(*blockIndex[T](&l1, i), *blockIndex[T](&l2, i)) {
			*blockIndex[T](&out, i) = T(1)
		}
	}
	return out
}

func blockSum[T Lanes, B blockType](b B) T {
	var sum T
	for i := 0; i < blockLanes[T, B](); i++ {
		sum += *blockIndex[T](&b, i)
	}
	return sum
}

func blockMaxValue[T Lanes, B blockType](b B) T {
	acc := *blockIndex[T](&b, 0)
	for i := 1; i < blockLanes[T, B](); i++ {
		if v := *blockIndex[T](&b, i); v > acc {
			acc = v
		}
	}
	return acc
}

func blockMinValue[T Lanes, B blockType](b B) T {
	acc := *blockIndex[T](&b, 0)
	for i := 1; i < blockLanes[T, B](); i++ {
		if v := *blockIndex[T](&b, i); v < acc {
			acc = v
		}
	}
	return acc
}
