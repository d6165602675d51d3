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

// VjsonSerialize makes Value a Serialize source, the mirror image of
// VjsonBegin: it describes v as one Fragment, with Array/Object
// producing iterators the writer walks to reach the next Fragment.
func (v Value) VjsonSerialize() Fragment {
	switch v.Kind {
	case KindNull:
		return Fragment{Kind: FragmentNull}
	case KindBool:
		return Fragment{Kind: FragmentBool, Bool: v.Bool}
	case KindString:
		return Fragment{Kind: FragmentStr, Str: v.String}
	case KindNumber:
		switch v.Number.Kind {
		case NumU64:
			return Fragment{Kind: FragmentU64, U64: v.Number.U64}
		case NumI64:
			return Fragment{Kind: FragmentI64, I64: v.Number.I64}
		default:
			return Fragment{Kind: FragmentF64, F64: v.Number.F64}
		}
	case KindArray:
		items := make([]Serialize, len(v.Array))
		for i := range v.Array {
			items[i] = v.Array[i]
		}
		return Fragment{Kind: FragmentSeq, Seq: &sliceSeqIter{items: items}}
	case KindObject:
		obj := v.Object
		return Fragment{Kind: FragmentMap, Map: &valueObjectIter{obj: &obj}}
	default:
		return Fragment{Kind: FragmentNull}
	}
}

// valueObjectIter walks an Object's members in insertion order.
type valueObjectIter struct {
	obj *Object
	pos int
}

func (it *valueObjectIter) Next() (string, Serialize, bool) {
	if it.obj == nil || it.pos >= len(it.obj.keys) {
		return "", nil, false
	}
	k := it.obj.keys[it.pos]
	val := it.obj.vals[it.pos]
	it.pos++
	return k, val, true
}
