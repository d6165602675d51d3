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

import "math"

// pow10 holds 10^0 .. 10^308, the full range of finite float64 exponents.
// Read-only, process-lifetime; built once by init rather than written
// out as 309 literals.
var pow10 [309]float64

func init() {
	v := 1.0
	for i := range pow10 {
		pow10[i] = v
		v *= 10
	}
}

// overflowsU64 reports whether a*10+digit would overflow a uint64,
// mirroring the source's overflow! macro: a is already >= max/10 and
// either strictly greater, or equal with digit pushing it past the
// remainder.
func overflowsU64(a, digit uint64) bool {
	const max = ^uint64(0)
	return a >= max/10 && (a > max/10 || digit > max%10)
}

func overflowsI32(a, digit int32) bool {
	const max = int32(1<<31 - 1)
	return a >= max/10 && (a > max/10 || digit > max%10)
}

// f64FromParts combines a significand and decimal exponent into a float,
// applying the sign last. Positive exponents multiply by pow10, negative
// exponents divide; exponents beyond the table are repeatedly scaled by
// 1e308 until they land inside it, or the value has already collapsed to
// zero (this matches f64_from_parts in the source, including returning
// an error rather than +Inf for positive overflow with a nonzero
// significand).
func f64FromParts(nonnegative bool, significand uint64, exponent int32) (float64, error) {
	f := float64(significand)
	for {
		abs := exponent
		if abs < 0 {
			abs = -abs
		}
		if int(abs) < len(pow10) {
			p := pow10[abs]
			if exponent >= 0 {
				f *= p
				if math.IsInf(f, 0) {
					return 0, Error
				}
			} else {
				f /= p
			}
			break
		}
		if f == 0 {
			break
		}
		if exponent >= 0 {
			return 0, Error
		}
		f /= 1e308
		exponent += 308
	}
	if !nonnegative {
		f = -f
	}
	return f, nil
}

// numLexer parses JSON numbers out of an input buffer starting at *pos,
// which must point just past the byte(s) already consumed to decide this
// is a number (the leading digit, or '-' then the leading digit).
type numLexer struct {
	input []byte
	pos   *int
}

func (n *numLexer) peekOrNul() byte {
	if *n.pos < len(n.input) {
		return n.input[*n.pos]
	}
	return 0
}

func (n *numLexer) bump() {
	*n.pos++
}

// parseInteger is the entry point: nonnegative is false when a leading
// '-' was already consumed, and firstDigit is the first digit byte
// (already consumed from input).
func (n *numLexer) parseInteger(nonnegative bool, firstDigit byte) (event, error) {
	if firstDigit == '0' {
		if c := n.peekOrNul(); c >= '0' && c <= '9' {
			return event{}, Error
		}
		return n.parseNumber(nonnegative, 0)
	}
	if firstDigit < '1' || firstDigit > '9' {
		return event{}, Error
	}
	res := uint64(firstDigit - '0')
	for {
		c := n.peekOrNul()
		if c < '0' || c > '9' {
			return n.parseNumber(nonnegative, res)
		}
		n.bump()
		digit := uint64(c - '0')
		if overflowsU64(res, digit) {
			f, err := n.parseLongInteger(nonnegative, res, 1)
			if err != nil {
				return event{}, err
			}
			return event{kind: eventFloat, f: f}, nil
		}
		res = res*10 + digit
	}
}

func (n *numLexer) parseLongInteger(nonnegative bool, significand uint64, exponent int32) (float64, error) {
	for {
		c := n.peekOrNul()
		switch {
		case c >= '0' && c <= '9':
			n.bump()
			exponent++
		case c == '.':
			return n.parseDecimal(nonnegative, significand, exponent)
		case c == 'e' || c == 'E':
			return n.parseExponent(nonnegative, significand, exponent)
		default:
			return f64FromParts(nonnegative, significand, exponent)
		}
	}
}

func (n *numLexer) parseNumber(nonnegative bool, significand uint64) (event, error) {
	switch n.peekOrNul() {
	case '.':
		f, err := n.parseDecimal(nonnegative, significand, 0)
		if err != nil {
			return event{}, err
		}
		return event{kind: eventFloat, f: f}, nil
	case 'e', 'E':
		f, err := n.parseExponent(nonnegative, significand, 0)
		if err != nil {
			return event{}, err
		}
		return event{kind: eventFloat, f: f}, nil
	default:
		if nonnegative {
			return event{kind: eventNonnegative, u: significand}, nil
		}
		neg := -int64(significand)
		if neg > 0 {
			// Magnitude overflowed int64 range; fall back to float.
			return event{kind: eventFloat, f: -float64(significand)}, nil
		}
		return event{kind: eventNegative, i: neg}, nil
	}
}

func (n *numLexer) parseDecimal(nonnegative bool, significand uint64, exponent int32) (float64, error) {
	n.bump() // consume '.'
	atLeastOneDigit := false
	for {
		c := n.peekOrNul()
		if c < '0' || c > '9' {
			break
		}
		n.bump()
		digit := uint64(c - '0')
		atLeastOneDigit = true
		if overflowsU64(significand, digit) {
			// Truncate: discard remaining fractional digits silently.
			for {
				c := n.peekOrNul()
				if c < '0' || c > '9' {
					break
				}
				n.bump()
			}
			break
		}
		significand = significand*10 + digit
		exponent--
	}
	if !atLeastOneDigit {
		return 0, Error
	}
	if c := n.peekOrNul(); c == 'e' || c == 'E' {
		return n.parseExponent(nonnegative, significand, exponent)
	}
	return f64FromParts(nonnegative, significand, exponent)
}

func (n *numLexer) parseExponent(nonnegative bool, significand uint64, startingExp int32) (float64, error) {
	n.bump() // consume 'e'/'E'
	positiveExp := true
	switch n.peekOrNul() {
	case '+':
		n.bump()
	case '-':
		positiveExp = false
		n.bump()
	}

	c := n.peekOrNul()
	if c < '0' || c > '9' {
		return 0, Error
	}
	n.bump()
	exp := int32(c - '0')

	for {
		c := n.peekOrNul()
		if c < '0' || c > '9' {
			break
		}
		n.bump()
		digit := int32(c - '0')
		if overflowsI32(exp, digit) {
			return n.parseExponentOverflow(nonnegative, significand, positiveExp)
		}
		exp = exp*10 + digit
	}

	var finalExp int32
	if positiveExp {
		finalExp = saturatingAddI32(startingExp, exp)
	} else {
		finalExp = saturatingSubI32(startingExp, exp)
	}
	return f64FromParts(nonnegative, significand, finalExp)
}

// parseExponentOverflow handles an exponent whose magnitude doesn't fit
// in an int32. Per the source this is an intentional asymmetry: a
// positive exponent with a nonzero significand is an error (rather than
// +Inf), while a negative exponent of unrepresentable magnitude silently
// collapses to 0. Preserved as specified, not "fixed."
func (n *numLexer) parseExponentOverflow(nonnegative bool, significand uint64, positiveExp bool) (float64, error) {
	if significand != 0 && positiveExp {
		return 0, Error
	}
	for {
		c := n.peekOrNul()
		if c < '0' || c > '9' {
			break
		}
		n.bump()
	}
	if nonnegative {
		return 0.0, nil
	}
	return negZero, nil
}

var negZero = math.Copysign(0, -1)

func saturatingAddI32(a, b int32) int32 {
	const maxI32 = int32(1<<31 - 1)
	const minI32 = -maxI32 - 1
	sum := int64(a) + int64(b)
	if sum > int64(maxI32) {
		return maxI32
	}
	if sum < int64(minI32) {
		return minI32
	}
	return int32(sum)
}

func saturatingSubI32(a, b int32) int32 {
	const maxI32 = int32(1<<31 - 1)
	const minI32 = -maxI32 - 1
	diff := int64(a) - int64(b)
	if diff > int64(maxI32) {
		return maxI32
	}
	if diff < int64(minI32) {
		return minI32
	}
	return int32(diff)
}
