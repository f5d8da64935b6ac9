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

// Package lanes provides portable vector kernels with runtime CPU dispatch.
//
// Kernels (sum, dot product, squared Euclidean distance, cosine distance,
// element-wise arithmetic, horizontal min/max) are written once against a
// generic register abstraction and instantiated for every backend. At run
// time the highest-capability backend the CPU supports is selected once
// per process and reused for all calls.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-lanes/lanes"
//
//	d := lanes.Dot(a, b)
//	lanes.AddVector(a, b, result)
//
// Integer arithmetic wraps on overflow throughout the package. This is a
// deliberate tradeoff: it matches what vector hardware does and keeps the
// hot loops free of overflow branches. Callers that need checked
// arithmetic must validate their inputs first.
package lanes

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all element types that can be packed into a
// vector register.
type Lanes interface {
	Floats | Integers
}
