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

// Visitor is the sink the driver feeds parsed events into. Exactly one of
// its methods is called per scalar event; Seq/Map are called for
// composite openers and return a scoped sub-sink for the body. Any method
// returning a non-nil error aborts the whole parse immediately.
//
// A Visitor must not be used after the Seq or Map call that produced it
// has had Finish called, and a Deserialize implementation must not retain
// a Visitor past the call that produced it.
type Visitor interface {
	Null() error
	Bool(b bool) error
	Str(s string) error
	Negative(n int64) error
	Nonnegative(n uint64) error
	Float(n float64) error
	Seq() (Seq, error)
	Map() (Map, error)
}

// Seq is the scoped sink for the body of a JSON array. Element is called
// once per array element, in array order, and returns the Visitor that
// should receive that element's value. Finish is called exactly once,
// after the closing ']', and is always the last call made on a Seq.
type Seq interface {
	Element() (Visitor, error)
	Finish() error
}

// Map is the scoped sink for the body of a JSON object. Key is called
// once per member, in document order, with the member's (already
// unescaped) name, and returns the Visitor that should receive that
// member's value. Finish is called exactly once, after the closing '}',
// and is always the last call made on a Map.
type Map interface {
	Key(k string) (Visitor, error)
	Finish() error
}

// Deserialize is implemented by *T for a placeable type T: VjsonBegin
// returns a Visitor that deserializes into the receiver. The constraint
// shape (PT is *T and implements the method) is the generic-Go rendering
// of the "placement visitor" in spec.md — a value of type T starts zero
// and is mutated in place by the Visitor the call to Begin returns,
// standing in for Rust's `&mut Option<Self>` out-parameter.
//
// The per-type glue that would implement this for arbitrary user structs
// is outside this package's scope, and the repository ships no
// hand-written instances for other types; the engine itself ships only
// the implementation for Value.
type Deserialize[T any] interface {
	*T
	VjsonBegin() Visitor
}
