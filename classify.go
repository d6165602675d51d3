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

// charClass is the classification of a single input byte, used to drive
// skipWhitespaceAndPeek and the top-level event dispatch without a chain
// of byte comparisons.
type charClass uint8

const (
	classWhitespace charClass = iota // ' ', '\n', '\r', '\t'
	classControl                     // other 0x00..=0x1F
	classDigit                       // '0'..='9'
	classQuote                       // '"'
	classLeftBrace                  // '{'
	classRightBrace                 // '}'
	classLeftBracket                // '['
	classRightBracket                // ']'
	classComma                      // ','
	classColon                      // ':'
	classMinus                      // '-'
	classIdent                      // 't', 'f', 'n'
	classError                      // anything else
)

var classify = buildClassifyTable()

func buildClassifyTable() [256]charClass {
	var t [256]charClass
	for i := range t {
		t[i] = classError
	}
	for _, b := range []byte{' ', '\n', '\r', '\t'} {
		t[b] = classWhitespace
	}
	for b := 0; b <= 0x1F; b++ {
		switch byte(b) {
		case ' ', '\n', '\r', '\t':
			// already whitespace
		default:
			t[b] = classControl
		}
	}
	for b := byte('0'); b <= '9'; b++ {
		t[b] = classDigit
	}
	t['"'] = classQuote
	t['{'] = classLeftBrace
	t['}'] = classRightBrace
	t['['] = classLeftBracket
	t[']'] = classRightBracket
	t[','] = classComma
	t[':'] = classColon
	t['-'] = classMinus
	t['t'] = classIdent
	t['f'] = classIdent
	t['n'] = classIdent
	return t
}

// skipWhitespaceAndPeek advances pos past any run of whitespace bytes and
// returns the first non-whitespace byte and its class, or ok=false if the
// input is exhausted.
func skipWhitespaceAndPeek(input []byte, pos *int) (b byte, class charClass, ok bool) {
	n := len(input)
	i := *pos
	for i < n {
		c := input[i]
		cls := classify[c]
		if cls != classWhitespace {
			*pos = i
			return c, cls, true
		}
		i++
	}
	*pos = i
	return 0, 0, false
}
