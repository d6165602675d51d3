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

type tvLayerKind uint8

const (
	tvLayerSeq tvLayerKind = iota
	tvLayerMap
)

type tvLayer struct {
	kind       tvLayerKind
	seq        SeqIter
	array      Array
	mp         MapIter
	object     Object
	pendingKey string
}

// buildValue is the to_value walker of SPEC_FULL.md §10: it shares the
// writer's non-recursive-walk shape, but instead of writing bytes it
// assembles a Value tree bottom-up, substituting each finished
// Array/Object as the "current value" of its parent layer once that
// layer's iterator is exhausted.
func buildValue(root Serialize) Value {
	var stack []tvLayer
	fragment := root.VjsonSerialize()
	var current Value

outer:
	for {
		switch fragment.Kind {
		case FragmentNull:
			current = Value{Kind: KindNull}
		case FragmentBool:
			current = Value{Kind: KindBool, Bool: fragment.Bool}
		case FragmentStr:
			current = Value{Kind: KindString, String: fragment.Str}
		case FragmentU64:
			current = Value{Kind: KindNumber, Number: Number{Kind: NumU64, U64: fragment.U64}}
		case FragmentI64:
			current = Value{Kind: KindNumber, Number: Number{Kind: NumI64, I64: fragment.I64}}
		case FragmentF64:
			current = Value{Kind: KindNumber, Number: Number{Kind: NumF64, F64: fragment.F64}}
		case FragmentSeq:
			if next := fragment.Seq.Next(); next != nil {
				stack = append(stack, tvLayer{kind: tvLayerSeq, seq: fragment.Seq})
				fragment = next.VjsonSerialize()
				continue outer
			}
			current = Value{Kind: KindArray}
		case FragmentMap:
			if key, val, ok := fragment.Map.Next(); ok {
				stack = append(stack, tvLayer{kind: tvLayerMap, mp: fragment.Map, pendingKey: key})
				fragment = val.VjsonSerialize()
				continue outer
			}
			current = Value{Kind: KindObject}
		}

		for {
			if len(stack) == 0 {
				return current
			}
			top := &stack[len(stack)-1]
			if top.kind == tvLayerSeq {
				top.array = append(top.array, current)
				if next := top.seq.Next(); next != nil {
					fragment = next.VjsonSerialize()
					continue outer
				}
				finished := top.array
				stack = stack[:len(stack)-1]
				current = Value{Kind: KindArray, Array: finished}
				continue
			}
			top.object.Set(top.pendingKey, current)
			if key, val, ok := top.mp.Next(); ok {
				top.pendingKey = key
				fragment = val.VjsonSerialize()
				continue outer
			}
			finished := top.object
			stack = stack[:len(stack)-1]
			current = Value{Kind: KindObject, Object: finished}
		}
	}
}
