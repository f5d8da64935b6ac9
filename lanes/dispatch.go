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
	"os"
	"strconv"
	"strings"
	"sync"
	"unsafe"
)

// Level identifies which backend the public API routes through. Levels are
// ordered: a numerically higher level is always preferred when the CPU
// supports it.
type Level int

const (
	// LevelScalar is the pure Go fallback, available everywhere.
	LevelScalar Level = iota

	// LevelNeon is the 128-bit ARM backend.
	LevelNeon

	// LevelAvx2 is the 256-bit x86 backend without fused multiply-add.
	LevelAvx2

	// LevelAvx2Fma is the 256-bit x86 backend with fused multiply-add.
	LevelAvx2Fma

	// LevelAvx512 is the 512-bit x86 backend.
	LevelAvx512
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelNeon:
		return "neon"
	case LevelAvx2:
		return "avx2"
	case LevelAvx2Fma:
		return "avx2+fma"
	case LevelAvx512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParseLevel maps a level name (as produced by String) back to a Level.
func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scalar":
		return LevelScalar, true
	case "neon":
		return LevelNeon, true
	case "avx2":
		return LevelAvx2, true
	case "avx2+fma", "avx2fma":
		return LevelAvx2Fma, true
	case "avx512":
		return LevelAvx512, true
	default:
		return LevelScalar, false
	}
}

// registerBytes returns the backend register width in bytes.
func (l Level) registerBytes() int {
	switch l {
	case LevelNeon:
		return int(unsafe.Sizeof(Block128{}))
	case LevelAvx2, LevelAvx2Fma:
		return int(unsafe.Sizeof(Block256{}))
	case LevelAvx512:
		return int(unsafe.Sizeof(Block512{}))
	default:
		// Scalar mode processes one element at a time; report the widest
		// element size so MaxLanes degrades to one lane for every type.
		return 8
	}
}

// cpuFeatures is what the per-architecture probe reports. Only features
// relevant to backend selection appear here.
type cpuFeatures struct {
	avx2   bool
	fma    bool
	avx512 bool
	neon   bool
}

// supports reports whether the probed CPU can execute the given level.
func (f cpuFeatures) supports(l Level) bool {
	switch l {
	case LevelScalar:
		return true
	case LevelNeon:
		return f.neon
	case LevelAvx2:
		return f.avx2
	case LevelAvx2Fma:
		return f.avx2 && f.fma
	case LevelAvx512:
		return f.avx512
	default:
		return false
	}
}

// activeLevel resolves the backend exactly once per process. Order of
// precedence: LANES_NO_SIMD forces scalar; LANES_TARGET pins a level if
// the CPU supports it (silently ignored otherwise); then the highest
// supported level wins.
var activeLevel = sync.OnceValue(func() Level {
	if noSimdEnv() {
		return LevelScalar
	}
	features := detectFeatures()
	if target, ok := ParseLevel(os.Getenv("LANES_TARGET")); ok && features.supports(target) {
		return target
	}
	for _, l := range []Level{LevelAvx512, LevelAvx2Fma, LevelAvx2, LevelNeon} {
		if features.supports(l) {
			return l
		}
	}
	return LevelScalar
})

// noSimdEnv checks the LANES_NO_SIMD environment variable. Any value that
// is not an explicit false disables SIMD; useful for testing and for
// bisecting numeric differences against the scalar path.
func noSimdEnv() bool {
	val := os.Getenv("LANES_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// CurrentLevel returns the backend the public API routes through. The
// choice is made on first use and never changes for the life of the
// process.
func CurrentLevel() Level {
	return activeLevel()
}

// RegisterWidth returns the register width in bytes of the active backend.
func RegisterWidth() int {
	return activeLevel().registerBytes()
}

// MaxLanes returns how many elements of type T one register of the active
// backend holds. Scalar mode reports one.
//
// For example with avx2 (32-byte registers): float32 packs 8 lanes,
// float64 packs 4.
func MaxLanes[T Lanes]() int {
	if activeLevel() == LevelScalar {
		return 1
	}
	var dummy T
	return activeLevel().registerBytes() / int(unsafe.Sizeof(dummy))
}
