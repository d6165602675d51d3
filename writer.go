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
	"bytes"
	"math"
	"strconv"
)

type writerLayerKind uint8

const (
	writerLayerSeq writerLayerKind = iota
	writerLayerMap
)

type writerLayer struct {
	kind writerLayerKind
	seq  SeqIter
	mp   MapIter
}

// appendSerialize is the non-recursive text writer of SPEC_FULL.md §10:
// it walks root's Fragment tree with an explicit stack of writerLayer
// instead of recursing once per nesting level, and appends JSON text to
// dst.
func appendSerialize(dst []byte, root Serialize) []byte {
	var stack []writerLayer
	fragment := root.VjsonSerialize()

outer:
	for {
		switch fragment.Kind {
		case FragmentNull:
			dst = append(dst, "null"...)
		case FragmentBool:
			if fragment.Bool {
				dst = append(dst, "true"...)
			} else {
				dst = append(dst, "false"...)
			}
		case FragmentStr:
			dst = appendEscapedString(dst, fragment.Str)
		case FragmentU64:
			dst = strconv.AppendUint(dst, fragment.U64, 10)
		case FragmentI64:
			dst = strconv.AppendInt(dst, fragment.I64, 10)
		case FragmentF64:
			dst = appendFloat(dst, fragment.F64)
		case FragmentSeq:
			dst = append(dst, '[')
			if next := fragment.Seq.Next(); next != nil {
				stack = append(stack, writerLayer{kind: writerLayerSeq, seq: fragment.Seq})
				fragment = next.VjsonSerialize()
				continue outer
			}
			dst = append(dst, ']')
		case FragmentMap:
			dst = append(dst, '{')
			if key, val, ok := fragment.Map.Next(); ok {
				dst = appendEscapedString(dst, key)
				dst = append(dst, ':')
				stack = append(stack, writerLayer{kind: writerLayerMap, mp: fragment.Map})
				fragment = val.VjsonSerialize()
				continue outer
			}
			dst = append(dst, '}')
		}

		for {
			if len(stack) == 0 {
				return dst
			}
			top := &stack[len(stack)-1]
			if top.kind == writerLayerSeq {
				if next := top.seq.Next(); next != nil {
					dst = append(dst, ',')
					fragment = next.VjsonSerialize()
					continue outer
				}
				dst = append(dst, ']')
				stack = stack[:len(stack)-1]
				continue
			}
			if key, val, ok := top.mp.Next(); ok {
				dst = append(dst, ',')
				dst = appendEscapedString(dst, key)
				dst = append(dst, ':')
				fragment = val.VjsonSerialize()
				continue outer
			}
			dst = append(dst, '}')
			stack = stack[:len(stack)-1]
		}
	}
}

// appendFloat renders a finite float in its shortest round-trip decimal
// form; non-finite floats serialize as "null" per spec.md §4.5. Go's
// strconv.AppendFloat with precision -1 already produces the shortest
// decimal string that round-trips to the same float64, so there is no
// need to vendor a ryu implementation for this. AppendFloat drops the
// fractional part for whole numbers (2.0 -> "2"), which would blur the
// wire distinction between a float and an integer fragment, so a bare
// integral result is always given back its ".0".
func appendFloat(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}
	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'g', -1, 64)
	if !bytes.ContainsAny(dst[start:], ".eE") {
		dst = append(dst, '.', '0')
	}
	return dst
}
