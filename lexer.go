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

// lexer turns an input buffer into a stream of events, one per call to
// event. It owns the position cursor and the scratch buffer that string
// parsing reuses across the whole document.
type lexer struct {
	input    []byte
	pos      int
	scratch  []byte
	validate bool
}

func newLexer(input []byte, validate bool) *lexer {
	return &lexer{input: input, validate: validate}
}

func (l *lexer) next() (byte, bool) {
	if l.pos < len(l.input) {
		b := l.input[l.pos]
		l.pos++
		return b, true
	}
	return 0, false
}

func (l *lexer) nextOrNul() byte {
	b, ok := l.next()
	if !ok {
		return 0
	}
	return b
}

func (l *lexer) peekOrNul() byte {
	if l.pos < len(l.input) {
		return l.input[l.pos]
	}
	return 0
}

func (l *lexer) bump() { l.pos++ }

// skipWhitespaceAndPeekClass returns the next non-whitespace byte and its
// class without consuming it, or ok=false at end of input.
func (l *lexer) skipWhitespaceAndPeekClass() (byte, charClass, bool) {
	return skipWhitespaceAndPeek(l.input, &l.pos)
}

func (l *lexer) parseIdent(ident string) error {
	for i := 0; i < len(ident); i++ {
		b, ok := l.next()
		if !ok || b != ident[i] {
			return Error
		}
	}
	return nil
}

func (l *lexer) parseStr() (string, error) {
	sl := strLexer{input: l.input, pos: &l.pos, scratch: &l.scratch, validate: l.validate}
	return sl.parseStr()
}

func (l *lexer) parseInteger(nonnegative bool, firstDigit byte) (event, error) {
	nl := numLexer{input: l.input, pos: &l.pos}
	return nl.parseInteger(nonnegative, firstDigit)
}

// event lexes and returns the next token, consuming it from the input.
func (l *lexer) event() (event, error) {
	peek, _, ok := l.skipWhitespaceAndPeekClass()
	if !ok {
		return event{}, Error
	}
	l.bump()

	switch peek {
	case '"':
		s, err := l.parseStr()
		if err != nil {
			return event{}, err
		}
		return event{kind: eventStr, s: s}, nil
	case '{':
		return event{kind: eventMapStart}, nil
	case '[':
		return event{kind: eventSeqStart}, nil
	case 'n':
		if err := l.parseIdent("ull"); err != nil {
			return event{}, err
		}
		return event{kind: eventNull}, nil
	case 't':
		if err := l.parseIdent("rue"); err != nil {
			return event{}, err
		}
		return event{kind: eventBool, b: true}, nil
	case 'f':
		if err := l.parseIdent("alse"); err != nil {
			return event{}, err
		}
		return event{kind: eventBool, b: false}, nil
	case '-':
		firstDigit := l.nextOrNul()
		return l.parseInteger(false, firstDigit)
	default:
		if peek >= '0' && peek <= '9' {
			return l.parseInteger(true, peek)
		}
		return event{}, Error
	}
}
