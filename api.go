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

// Package vjson is a minimal, non-recursive JSON serialization engine: a
// hand-written lexer/parser that walks arbitrarily deep JSON with an
// explicit heap stack instead of host-stack recursion, feeding a
// caller-supplied Visitor, and a symmetric Fragment-based writer that
// produces JSON text or an in-memory Value tree the same way.
package vjson

// FromStr parses text into a T, driving PT's Visitor (see Deserialize)
// off a []byte copy of text. text is a Go string, already guaranteed valid UTF-8 by the language, so
// unlike FromSlice this does not force a validation pass over it;
// WithValidateUTF8 still applies if the caller passes it explicitly.
func FromStr[T any, PT Deserialize[T]](text string, opts ...ParserOption) (T, error) {
	return fromBytes[T, PT]([]byte(text), false, opts)
}

// FromSlice parses data into a T, driving PT's Visitor off data. Unlike
// FromStr, data is untrusted raw bytes, so FromSlice always validates its
// string bodies as UTF-8 regardless of WithValidateUTF8.
func FromSlice[T any, PT Deserialize[T]](data []byte, opts ...ParserOption) (T, error) {
	return fromBytes[T, PT](data, true, opts)
}

func fromBytes[T any, PT Deserialize[T]](data []byte, forceValidateUTF8 bool, opts []ParserOption) (T, error) {
	var out T
	state, err := newParserState(opts)
	if err != nil {
		return out, err
	}
	state.validateUTF8 = state.validateUTF8 || forceValidateUTF8
	l := state.newLexer(data)
	defer state.release(l)

	visitor := PT(&out).VjsonBegin()
	if err := runFromLexer(l, visitor); err != nil {
		return out, err
	}
	return out, nil
}

// FromValue decodes an already-parsed Value into a T, driving PT's
// Visitor directly from the Value tree (spec.md's from_value entry
// point) rather than re-lexing JSON text.
func FromValue[T any, PT Deserialize[T]](v Value) (T, error) {
	var out T
	visitor := PT(&out).VjsonBegin()
	if err := runFromValue(v, visitor); err != nil {
		return out, err
	}
	return out, nil
}

// ToString renders v as a JSON text.
func ToString(v Serialize) string {
	return string(ToBytes(v))
}

// ToBytes renders v as JSON text, appended to a freshly allocated buffer.
func ToBytes(v Serialize) []byte {
	return appendSerialize(nil, v)
}

// ToValue renders v into an in-memory Value tree instead of JSON text,
// useful for further Go-side manipulation (Value.Index/Field/Equal)
// without a round trip through text.
func ToValue(v Serialize) Value {
	return buildValue(v)
}
