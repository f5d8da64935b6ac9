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

// Package transpose provides cache-friendly matrix transposition for
// row-major buffers of any element type the core package supports.
package transpose

import (
	"fmt"

	"github.com/ajroetker/go-lanes/lanes"
)

// Transpose writes the transpose of a into result. a is a row-major
// width x height matrix (width columns, height rows); result receives the
// height x width transpose. Panics unless both buffers hold exactly
// width*height elements. result must not alias a.
//
// The walk is tiled at twice the active register width so each tile's rows
// and columns stay resident in cache across the swap, which is what makes
// the difference on large matrices; the arithmetic itself is pure data
// movement.
func Transpose[T lanes.Lanes](width, height int, a, result []T) {
	if len(a) != width*height {
		panic(fmt.Sprintf("transpose: input has length %d, want %d (%d x %d)", len(a), width*height, width, height))
	}
	if len(result) != width*height {
		panic(fmt.Sprintf("transpose: result has length %d, want %d (%d x %d)", len(result), width*height, width, height))
	}

	// A single row or column transposes to the same flat layout.
	if width <= 1 || height <= 1 {
		copy(result, a)
		return
	}

	tile := 2 * lanes.MaxLanes[T]()
	for y := 0; y < height; y += tile {
		yEnd := min(y+tile, height)
		for x := 0; x < width; x += tile {
			xEnd := min(x+tile, width)
			for row := y; row < yEnd; row++ {
				src := a[row*width : row*width+width]
				for col := x; col < xEnd; col++ {
					result[col*height+row] = src[col]
				}
			}
		}
	}
}
