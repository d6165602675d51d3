//go:build amd64

/*
 * vjson, (C) 2024 vjson authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package vjson

import (
	"encoding/binary"
	"math/bits"
	"sync"

	"github.com/klauspost/cpuid/v2"
)

// The three find-next-special-character back-ends process a string body
// looking for the first '"' or '\\'. All three must agree on every input
// (see scan_amd64_test.go and scan_test.go); they differ only in how
// many bytes of lookahead they commit to per iteration, which is what
// "AVX2 beats SSE2 beats scalar" amounts to once the hot loop is reduced
// to branchless word-at-a-time comparisons (see DESIGN.md for why these
// are SWAR kernels rather than literal vector assembly).

const quoteByte = '"'
const escapeByte = '\\'

func broadcast(b byte) uint64 {
	return 0x0101010101010101 * uint64(b)
}

// wordHasSpecial returns a bitmask (bit position 8*i+7 for lane i,
// matching the pattern a movemask-style result would take) that is
// nonzero iff some lane of w equals quoteByte or escapeByte. Its lowest
// set bit marks the first such lane; bits above it may be spurious (see
// hasByteMask), which is why callers only use firstSpecialLane.
func wordHasSpecial(w uint64) uint64 {
	hasQuote := hasByteMask(w, quoteByte)
	hasEscape := hasByteMask(w, escapeByte)
	return hasQuote | hasEscape
}

// hasByteMask implements the classic SWAR "does this word contain byte v"
// trick: after XORing with v, a lane equal to v becomes zero, and
// (x - 0x01..01) & ^x & 0x80..80 sets the high bit of the lowest zero
// lane. The borrow out of a zero lane can also set the high bit of a lane
// above it, so only the lowest set bit is exact.
func hasByteMask(w uint64, v byte) uint64 {
	x := w ^ broadcast(v)
	return (x - 0x0101010101010101) & ^x & 0x8080808080808080
}

func firstSpecialLane(mask uint64) int {
	return bits.TrailingZeros64(mask) / 8
}

// findNextSpecialCharacterSSE2 scans 16 bytes (two 8-byte lanes) per
// iteration.
func findNextSpecialCharacterSSE2(slice []byte) int {
	i := 0
	n := len(slice)
	for i+16 <= n {
		w0 := binary.LittleEndian.Uint64(slice[i:])
		w1 := binary.LittleEndian.Uint64(slice[i+8:])
		if m := wordHasSpecial(w0); m != 0 {
			return i + firstSpecialLane(m)
		}
		if m := wordHasSpecial(w1); m != 0 {
			return i + 8 + firstSpecialLane(m)
		}
		i += 16
	}
	if i < n {
		return i + findNextSpecialCharacterScalar(slice[i:])
	}
	return i
}

// findNextSpecialCharacterAVX2 scans 32 bytes (four 8-byte lanes) per
// iteration.
func findNextSpecialCharacterAVX2(slice []byte) int {
	i := 0
	n := len(slice)
	for i+32 <= n {
		w0 := binary.LittleEndian.Uint64(slice[i:])
		w1 := binary.LittleEndian.Uint64(slice[i+8:])
		w2 := binary.LittleEndian.Uint64(slice[i+16:])
		w3 := binary.LittleEndian.Uint64(slice[i+24:])
		if m := wordHasSpecial(w0); m != 0 {
			return i + firstSpecialLane(m)
		}
		if m := wordHasSpecial(w1); m != 0 {
			return i + 8 + firstSpecialLane(m)
		}
		if m := wordHasSpecial(w2); m != 0 {
			return i + 16 + firstSpecialLane(m)
		}
		if m := wordHasSpecial(w3); m != 0 {
			return i + 24 + firstSpecialLane(m)
		}
		i += 32
	}
	if i < n {
		return i + findNextSpecialCharacterSSE2(slice[i:])
	}
	return i
}

type scanBackend uint8

const (
	backendScalar scanBackend = iota
	backendSSE2
	backendAVX2
)

var (
	backendOnce    sync.Once
	selectedBackend scanBackend
)

func selectBackend() scanBackend {
	backendOnce.Do(func() {
		switch {
		case cpuid.CPU.Has(cpuid.AVX2):
			selectedBackend = backendAVX2
		case cpuid.CPU.Has(cpuid.SSE2):
			selectedBackend = backendSSE2
		default:
			selectedBackend = backendScalar
		}
	})
	return selectedBackend
}

// findNextSpecialCharacter dispatches to the fastest back-end the running
// CPU supports, selected once per process and cached.
func findNextSpecialCharacter(slice []byte) int {
	switch selectBackend() {
	case backendAVX2:
		return findNextSpecialCharacterAVX2(slice)
	case backendSSE2:
		return findNextSpecialCharacterSSE2(slice)
	default:
		return findNextSpecialCharacterScalar(slice)
	}
}

// SupportedSIMD reports whether a non-scalar scanning back-end is active
// on this CPU.
func SupportedSIMD() bool {
	return selectBackend() != backendScalar
}
