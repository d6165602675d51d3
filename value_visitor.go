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

// VjsonBegin makes *Value a Deserialize placement target: the returned
// Visitor fills v in place as the driver delivers events to it. This is
// the only Deserialize instance the package ships (see visitor.go).
func (v *Value) VjsonBegin() Visitor {
	return &valuePlace{out: v}
}

// valuePlace is the placement Visitor for a single Value slot, mirroring
// value.rs's `impl Deserialize for Value` Place.
type valuePlace struct {
	out *Value
}

func (p *valuePlace) Null() error {
	*p.out = Value{Kind: KindNull}
	return nil
}

func (p *valuePlace) Bool(b bool) error {
	*p.out = Value{Kind: KindBool, Bool: b}
	return nil
}

func (p *valuePlace) Str(s string) error {
	*p.out = Value{Kind: KindString, String: s}
	return nil
}

func (p *valuePlace) Negative(n int64) error {
	*p.out = Value{Kind: KindNumber, Number: Number{Kind: NumI64, I64: n}}
	return nil
}

func (p *valuePlace) Nonnegative(n uint64) error {
	*p.out = Value{Kind: KindNumber, Number: Number{Kind: NumU64, U64: n}}
	return nil
}

func (p *valuePlace) Float(n float64) error {
	*p.out = Value{Kind: KindNumber, Number: Number{Kind: NumF64, F64: n}}
	return nil
}

func (p *valuePlace) Seq() (Seq, error) {
	return &valueArrayBuilder{out: p.out}, nil
}

func (p *valuePlace) Map() (Map, error) {
	return &valueObjectBuilder{out: p.out}, nil
}

// valueArrayBuilder accumulates Array elements as the driver visits
// them, one pending element at a time (the driver's ordering guarantee
// means the pending element is always fully decoded before Element or
// Finish is called again).
type valueArrayBuilder struct {
	out         *Value
	array       Array
	pending     Value
	havePending bool
}

func (b *valueArrayBuilder) shift() {
	if b.havePending {
		b.array = append(b.array, b.pending)
		b.havePending = false
	}
}

func (b *valueArrayBuilder) Element() (Visitor, error) {
	b.shift()
	b.pending = Value{}
	b.havePending = true
	return &valuePlace{out: &b.pending}, nil
}

func (b *valueArrayBuilder) Finish() error {
	b.shift()
	*b.out = Value{Kind: KindArray, Array: b.array}
	return nil
}

// valueObjectBuilder accumulates Object members the same way.
type valueObjectBuilder struct {
	out     *Value
	object  Object
	key     string
	haveKey bool
	value   Value
}

func (b *valueObjectBuilder) shift() {
	if b.haveKey {
		b.object.Set(b.key, b.value)
		b.haveKey = false
	}
}

func (b *valueObjectBuilder) Key(k string) (Visitor, error) {
	b.shift()
	b.key = k
	b.haveKey = true
	b.value = Value{}
	return &valuePlace{out: &b.value}, nil
}

func (b *valueObjectBuilder) Finish() error {
	b.shift()
	*b.out = Value{Kind: KindObject, Object: b.object}
	return nil
}
