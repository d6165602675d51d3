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
	"math"
	"testing"
)

func parseOneNumber(t *testing.T, text string) event {
	t.Helper()
	l := newLexer([]byte(text), false)
	ev, err := l.event()
	if err != nil {
		t.Fatalf("event(%q) error: %v", text, err)
	}
	if l.pos != len(text) {
		t.Fatalf("event(%q) left pos=%d, want %d", text, l.pos, len(text))
	}
	return ev
}

func TestParseIntegerNonnegative(t *testing.T) {
	ev := parseOneNumber(t, "12345")
	if ev.kind != eventNonnegative || ev.u != 12345 {
		t.Fatalf("got %+v", ev)
	}
}

func TestParseIntegerNegative(t *testing.T) {
	ev := parseOneNumber(t, "-42")
	if ev.kind != eventNegative || ev.i != -42 {
		t.Fatalf("got %+v", ev)
	}
}

func TestParseIntegerZero(t *testing.T) {
	ev := parseOneNumber(t, "0")
	if ev.kind != eventNonnegative || ev.u != 0 {
		t.Fatalf("got %+v", ev)
	}
}

func TestParseIntegerLeadingZeroRejected(t *testing.T) {
	l := newLexer([]byte("01"), false)
	if _, err := l.event(); err != Error {
		t.Fatalf("expected Error, got %v", err)
	}
}

// TestParseIntegerOverflowPromotesToFloat: a u64-overflowing integer
// literal must be reported as a float rather than erroring.
func TestParseIntegerOverflowPromotesToFloat(t *testing.T) {
	ev := parseOneNumber(t, "99999999999999999999999999")
	if ev.kind != eventFloat {
		t.Fatalf("got kind %v, want eventFloat", ev.kind)
	}
	want := 1e26
	if math.Abs(ev.f-want)/want > 1e-9 {
		t.Fatalf("got %v, want ~%v", ev.f, want)
	}
}

func TestParseDecimal(t *testing.T) {
	ev := parseOneNumber(t, "3.25")
	if ev.kind != eventFloat || ev.f != 3.25 {
		t.Fatalf("got %+v", ev)
	}
}

func TestParseDecimalTruncatesExcessDigits(t *testing.T) {
	// Enough fractional digits to overflow the u64 significand
	// accumulator; the excess digits must be silently truncated, not
	// rounded, matching the preserved source behavior.
	ev := parseOneNumber(t, "1.00000000000000000000001")
	if ev.kind != eventFloat {
		t.Fatalf("got kind %v", ev.kind)
	}
}

func TestParseExponent(t *testing.T) {
	ev := parseOneNumber(t, "1.5e3")
	if ev.kind != eventFloat || ev.f != 1500 {
		t.Fatalf("got %+v", ev)
	}
	ev = parseOneNumber(t, "2E2")
	if ev.kind != eventFloat || ev.f != 200 {
		t.Fatalf("got %+v", ev)
	}
	ev = parseOneNumber(t, "5e-2")
	if ev.kind != eventFloat || ev.f != 0.05 {
		t.Fatalf("got %+v", ev)
	}
}

// TestExponentOverflowAsymmetry locks in the preserved Open Question
// behavior: a positive exponent overflow with a nonzero significand is an
// error, while a negative exponent overflow silently yields 0 (or -0 for
// a negative significand).
func TestExponentOverflowAsymmetry(t *testing.T) {
	l := newLexer([]byte("1e99999999999999999999"), false)
	if _, err := l.event(); err != Error {
		t.Fatalf("positive exponent overflow: got %v, want Error", err)
	}

	ev := parseOneNumber(t, "1e-99999999999999999999")
	if ev.kind != eventFloat || ev.f != 0 {
		t.Fatalf("negative exponent overflow: got %+v, want float 0", ev)
	}

	ev = parseOneNumber(t, "-1e-99999999999999999999")
	if ev.kind != eventFloat || !math.Signbit(ev.f) || ev.f != 0 {
		t.Fatalf("negative exponent overflow of negative significand: got %+v, want -0", ev)
	}
}

// TestF64FromPartsLargeExponent: 1e400 is beyond float64 range, so a
// positive exponent just past the pow10 table with a nonzero significand
// is an error rather than +Inf.
func TestF64FromPartsLargeExponent(t *testing.T) {
	_, err := f64FromParts(true, 1, 400)
	if err != Error {
		t.Fatalf("got %v, want Error", err)
	}
}

func TestF64FromPartsOverflowsToError(t *testing.T) {
	_, err := f64FromParts(true, 1, 400000)
	if err != Error {
		t.Fatalf("got %v, want Error", err)
	}
}

func TestOverflowsU64(t *testing.T) {
	if overflowsU64(1, 0) {
		t.Fatal("1*10+0 should not overflow")
	}
	if !overflowsU64(^uint64(0)/10+1, 0) {
		t.Fatal("expected overflow")
	}
}
