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

// lanesinfo prints which backend dispatch selected on this machine and the
// lane counts it implies per element type. Useful for checking what a
// deployment target actually runs, and for verifying the LANES_TARGET and
// LANES_NO_SIMD environment overrides.
//
// Usage:
//
//	lanesinfo [-bench n]
//
// With -bench, also times a dot product of the given dimensionality on
// the selected backend.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/ajroetker/go-lanes/lanes"
)

var benchDims = flag.Int("bench", 0, "time a float32 dot product of this many dimensions (0 to skip)")

func main() {
	flag.Parse()

	fmt.Printf("backend:        %s\n", lanes.CurrentLevel())
	fmt.Printf("register width: %d bytes\n", lanes.RegisterWidth())
	fmt.Println()
	fmt.Println("lanes per register:")
	fmt.Printf("  float32: %2d    float64: %2d\n", lanes.MaxLanes[float32](), lanes.MaxLanes[float64]())
	fmt.Printf("  int8:    %2d    uint8:   %2d\n", lanes.MaxLanes[int8](), lanes.MaxLanes[uint8]())
	fmt.Printf("  int16:   %2d    uint16:  %2d\n", lanes.MaxLanes[int16](), lanes.MaxLanes[uint16]())
	fmt.Printf("  int32:   %2d    uint32:  %2d\n", lanes.MaxLanes[int32](), lanes.MaxLanes[uint32]())
	fmt.Printf("  int64:   %2d    uint64:  %2d\n", lanes.MaxLanes[int64](), lanes.MaxLanes[uint64]())

	if *benchDims > 0 {
		benchmarkDot(*benchDims)
	}
}

func benchmarkDot(dims int) {
	rng := rand.New(rand.NewSource(1))
	a := make([]float32, dims)
	b := make([]float32, dims)
	for i := range a {
		a[i] = rng.Float32()
		b[i] = rng.Float32()
	}

	// Warm up dispatch and caches before timing.
	var sink float32
	sink = lanes.Dot(a, b)

	const rounds = 1000
	start := time.Now()
	for i := 0; i < rounds; i++ {
		sink = lanes.Dot(a, b)
	}
	elapsed := time.Since(start)

	perCall := elapsed / rounds
	fmt.Println()
	fmt.Printf("dot product, %d dims: %s/call (%.2f GB/s, result %g)\n",
		dims, perCall, float64(8*dims)/perCall.Seconds()/1e9, sink)
}
