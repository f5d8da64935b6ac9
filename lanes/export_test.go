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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportsPanicOnShapeMismatch(t *testing.T) {
	a := []float32{1, 2, 3}
	short := []float32{1, 2}

	require.Panics(t, func() { Dot(a, short) })
	require.Panics(t, func() { SquaredEuclidean(a, short) })
	require.Panics(t, func() { Cosine(a, short) })
	require.Panics(t, func() { AddVector(a, short, make([]float32, 3)) })
	require.Panics(t, func() { AddVector(a, a, short) })
	require.Panics(t, func() { LtVector(a, a, short) })
	require.Panics(t, func() { AddValue(1, a, short) })
	require.Panics(t, func() { GteValue(1, a, short) })
	require.Panics(t, func() { HypotVector(a, short, make([]float32, 3)) })
	require.Panics(t, func() { HypotValue(1, a, short) })
}

// A zero-norm vector has no direction, so cosine distance against it is
// reported as zero rather than NaN, including the both-zero case.
func TestCosineZeroNormConvention(t *testing.T) {
	zero := []float32{0, 0, 0, 0}
	a := []float32{1, 2, 3, 4}

	assert.Zero(t, Cosine(zero, zero))
	assert.Zero(t, Cosine(zero, a))
	assert.Zero(t, Cosine(a, zero))
	assert.Zero(t, Cosine([]float32{}, []float32{}))
}

func TestDotCommutative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := make([]float64, 537)
	b := make([]float64, 537)
	for i := range a {
		a[i] = rng.NormFloat64()
		b[i] = rng.NormFloat64()
	}
	// Both orders accumulate the same products in the same sequence, so
	// this holds exactly, not just approximately.
	assert.Equal(t, Dot(a, b), Dot(b, a))
}

func TestExportsAcceptAllTypes(t *testing.T) {
	// Smoke-check one export per category at every element type; the
	// exhaustive numeric coverage lives in the parity tests.
	assert.Equal(t, float32(10), Sum([]float32{1, 2, 3, 4}))
	assert.Equal(t, float64(10), Sum([]float64{1, 2, 3, 4}))
	assert.Equal(t, int8(10), Sum([]int8{1, 2, 3, 4}))
	assert.Equal(t, int16(10), Sum([]int16{1, 2, 3, 4}))
	assert.Equal(t, int32(10), Sum([]int32{1, 2, 3, 4}))
	assert.Equal(t, int64(10), Sum([]int64{1, 2, 3, 4}))
	assert.Equal(t, uint8(10), Sum([]uint8{1, 2, 3, 4}))
	assert.Equal(t, uint16(10), Sum([]uint16{1, 2, 3, 4}))
	assert.Equal(t, uint32(10), Sum([]uint32{1, 2, 3, 4}))
	assert.Equal(t, uint64(10), Sum([]uint64{1, 2, 3, 4}))

	assert.Equal(t, int32(70), Dot([]int32{1, 2, 3, 4}, []int32{5, 6, 7, 8}))
	assert.Equal(t, uint16(4), MaxHorizontal([]uint16{1, 4, 2}))

	got := make([]int64, 3)
	MaxValue(int64(2), []int64{1, 2, 3}, got)
	assert.Equal(t, []int64{2, 2, 3}, got)
}

// Unsigned subtraction wraps through the element-wise path the same way
// scalar Go does.
func TestVerticalUnsignedWrap(t *testing.T) {
	a := []uint8{0, 1, 2}
	b := []uint8{1, 1, 1}
	result := make([]uint8, 3)
	SubVector(a, b, result)
	assert.Equal(t, []uint8{255, 0, 1}, result)
}
