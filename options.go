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

// parserState collects the FromStr/FromSlice options below before a lexer
// is built.
type parserState struct {
	validateUTF8 bool
	reuse        *Buffer
}

// ParserOption configures a single FromStr/FromSlice call.
type ParserOption func(*parserState) error

// WithValidateUTF8 turns on UTF-8 validation of every unescaped chunk of
// every string body, with or without escapes, at some scanning cost.
// Default: false. FromSlice
// always validates regardless of this option, since it takes untrusted
// raw bytes; this only matters for FromStr, whose input is already a Go
// string and so already guaranteed valid UTF-8 unless the caller built it
// unsafely.
func WithValidateUTF8(b bool) ParserOption {
	return func(s *parserState) error {
		s.validateUTF8 = b
		return nil
	}
}

// WithReuse hands the parser a Buffer to pull its escape scratch space
// from, and to return it to afterwards, so back-to-back calls over many
// small documents don't allocate a fresh scratch buffer each time.
func WithReuse(buf *Buffer) ParserOption {
	return func(s *parserState) error {
		s.reuse = buf
		return nil
	}
}

// Buffer holds a reusable string-unescaping scratch buffer. Pass the same
// *Buffer via WithReuse across many FromStr/FromSlice calls to amortize
// its allocation instead of growing a fresh one per document.
type Buffer struct {
	scratch []byte
}

func newParserState(opts []ParserOption) (parserState, error) {
	var s parserState
	for _, opt := range opts {
		if err := opt(&s); err != nil {
			return parserState{}, err
		}
	}
	return s, nil
}

func (s *parserState) newLexer(input []byte) *lexer {
	l := newLexer(input, s.validateUTF8)
	if s.reuse != nil {
		l.scratch = s.reuse.scratch
	}
	return l
}

func (s *parserState) release(l *lexer) {
	if s.reuse != nil {
		s.reuse.scratch = l.scratch
	}
}
