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

// valueFrame is runFromValue's explicit stack entry: the in-memory
// counterpart of driverFrame, walking an already-built Array/Object
// instead of pulling lexer events.
type valueFrame struct {
	outer  Visitor
	kind   layerKind
	seq    Seq
	mp     Map
	arr    Array
	arrIdx int
	obj    *Object
	objIdx int
}

// runFromValue drives visitor directly from an in-memory Value tree,
// the same Visitor protocol the lexer-backed driver uses, satisfying
// spec.md §6's from_value entry point. It walks the tree with an
// explicit stack rather than recursing once per nesting level, so
// driving a Visitor from a ~10^5-deep Value does not consume host stack
// proportional to depth.
func runFromValue(root Value, visitor Visitor) error {
	var stack []valueFrame
	cur := root

outer:
	for {
		var haveLayer bool
		var kind layerKind
		var seq Seq
		var mp Map

		switch cur.Kind {
		case KindNull:
			if err := visitor.Null(); err != nil {
				return err
			}
		case KindBool:
			if err := visitor.Bool(cur.Bool); err != nil {
				return err
			}
		case KindString:
			if err := visitor.Str(cur.String); err != nil {
				return err
			}
		case KindNumber:
			switch cur.Number.Kind {
			case NumU64:
				if err := visitor.Nonnegative(cur.Number.U64); err != nil {
					return err
				}
			case NumI64:
				if err := visitor.Negative(cur.Number.I64); err != nil {
					return err
				}
			default:
				if err := visitor.Float(cur.Number.F64); err != nil {
					return err
				}
			}
		case KindArray:
			s, err := visitor.Seq()
			if err != nil {
				return err
			}
			seq, kind, haveLayer = s, layerSeq, true
		case KindObject:
			m, err := visitor.Map()
			if err != nil {
				return err
			}
			mp, kind, haveLayer = m, layerMap, true
		}

		if haveLayer {
			frame := valueFrame{kind: kind, seq: seq, mp: mp}
			if kind == layerSeq {
				frame.arr = cur.Array
			} else {
				obj := cur.Object
				frame.obj = &obj
			}
			stack = append(stack, frame)
		}

		for {
			if len(stack) == 0 {
				return nil
			}
			top := &stack[len(stack)-1]
			if top.kind == layerSeq {
				if top.arrIdx < len(top.arr) {
					elem, err := top.seq.Element()
					if err != nil {
						return err
					}
					cur = top.arr[top.arrIdx]
					top.arrIdx++
					visitor = elem
					continue outer
				}
				if err := top.seq.Finish(); err != nil {
					return err
				}
				visitor = top.outer
				stack = stack[:len(stack)-1]
				continue
			}
			if top.objIdx < len(top.obj.keys) {
				k := top.obj.keys[top.objIdx]
				v := top.obj.vals[top.objIdx]
				entry, err := top.mp.Key(k)
				if err != nil {
					return err
				}
				cur = v
				top.objIdx++
				visitor = entry
				continue outer
			}
			if err := top.mp.Finish(); err != nil {
				return err
			}
			visitor = top.outer
			stack = stack[:len(stack)-1]
		}
	}
}
