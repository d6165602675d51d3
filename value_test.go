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

import "testing"

func TestValueZeroIsNull(t *testing.T) {
	var v Value
	if v.Kind != KindNull {
		t.Fatalf("zero Value.Kind = %v, want KindNull", v.Kind)
	}
}

func TestValueIndexTotality(t *testing.T) {
	arr := Value{Kind: KindArray, Array: Array{
		{Kind: KindNumber, Number: Number{Kind: NumU64, U64: 1}},
		{Kind: KindNumber, Number: Number{Kind: NumU64, U64: 2}},
	}}
	if got := arr.Index(0); got.Kind != KindNumber {
		t.Fatalf("Index(0) = %v", got)
	}
	if got := arr.Index(5); !got.Equal(nullValue) {
		t.Fatalf("out-of-range Index should be Null, got %v", got)
	}
	if got := arr.Index(-1); !got.Equal(nullValue) {
		t.Fatalf("negative Index should be Null, got %v", got)
	}

	notArray := Value{Kind: KindString, String: "x"}
	if got := notArray.Index(0); !got.Equal(nullValue) {
		t.Fatalf("Index on non-array should be Null, got %v", got)
	}
}

func TestValueFieldTotality(t *testing.T) {
	var obj Object
	obj.Set("name", Value{Kind: KindString, String: "ok"})
	v := Value{Kind: KindObject, Object: obj}

	if got := v.Field("name"); got.Kind != KindString || got.String != "ok" {
		t.Fatalf("Field(name) = %+v", got)
	}
	if got := v.Field("missing"); !got.Equal(nullValue) {
		t.Fatalf("Field(missing) should be Null, got %v", got)
	}

	notObject := Value{Kind: KindBool, Bool: true}
	if got := notObject.Field("x"); !got.Equal(nullValue) {
		t.Fatalf("Field on non-object should be Null, got %v", got)
	}
}

func TestChainedAccessIsTotal(t *testing.T) {
	var root Value // Null
	got := root.Field("users").Index(0).Field("name")
	if !got.Equal(nullValue) {
		t.Fatalf("chained access on absent path should be Null, got %v", got)
	}
}

func TestAsAccessors(t *testing.T) {
	if b, ok := (Value{Kind: KindBool, Bool: true}).AsBool(); !ok || !b {
		t.Fatal("AsBool failed")
	}
	if _, ok := (Value{Kind: KindNull}).AsBool(); ok {
		t.Fatal("AsBool should fail on Null")
	}

	if s, ok := (Value{Kind: KindString, String: "hi"}).AsStr(); !ok || s != "hi" {
		t.Fatal("AsStr failed")
	}

	u64 := Value{Kind: KindNumber, Number: Number{Kind: NumU64, U64: 7}}
	if n, ok := u64.AsU64(); !ok || n != 7 {
		t.Fatal("AsU64 on NumU64 failed")
	}
	if n, ok := u64.AsI64(); !ok || n != 7 {
		t.Fatal("AsI64 on NumU64 failed")
	}
	if n, ok := u64.AsF64(); !ok || n != 7 {
		t.Fatal("AsF64 on NumU64 failed")
	}

	negI64 := Value{Kind: KindNumber, Number: Number{Kind: NumI64, I64: -3}}
	if _, ok := negI64.AsU64(); ok {
		t.Fatal("AsU64 should fail on a negative I64")
	}
	if n, ok := negI64.AsI64(); !ok || n != -3 {
		t.Fatal("AsI64 on NumI64 failed")
	}

	huge := Value{Kind: KindNumber, Number: Number{Kind: NumU64, U64: 1 << 63}}
	if _, ok := huge.AsI64(); ok {
		t.Fatal("AsI64 should fail on a U64 beyond int64 range")
	}
}

func TestObjectPreservesInsertionOrder(t *testing.T) {
	var obj Object
	obj.Set("z", Value{Kind: KindNull})
	obj.Set("a", Value{Kind: KindNull})
	obj.Set("m", Value{Kind: KindNull})
	want := []string{"z", "a", "m"}
	got := obj.Keys()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestObjectSetOverwritesInPlace(t *testing.T) {
	var obj Object
	obj.Set("a", Value{Kind: KindNumber, Number: Number{Kind: NumU64, U64: 1}})
	obj.Set("b", Value{Kind: KindNumber, Number: Number{Kind: NumU64, U64: 2}})
	obj.Set("a", Value{Kind: KindNumber, Number: Number{Kind: NumU64, U64: 99}})

	if got := obj.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("overwrite should preserve original position, got %v", got)
	}
	v, ok := obj.Get("a")
	if !ok || v.Number.U64 != 99 {
		t.Fatalf("Get(a) = %+v, %v", v, ok)
	}
}

func TestValueEqual(t *testing.T) {
	a := Value{Kind: KindArray, Array: Array{
		{Kind: KindString, String: "x"},
		{Kind: KindNumber, Number: Number{Kind: NumU64, U64: 1}},
	}}
	b := Value{Kind: KindArray, Array: Array{
		{Kind: KindString, String: "x"},
		{Kind: KindNumber, Number: Number{Kind: NumU64, U64: 1}},
	}}
	if !a.Equal(b) {
		t.Fatal("structurally identical trees should be equal")
	}

	c := Value{Kind: KindArray, Array: Array{
		{Kind: KindString, String: "x"},
		{Kind: KindNumber, Number: Number{Kind: NumU64, U64: 2}},
	}}
	if a.Equal(c) {
		t.Fatal("trees differing in a leaf should not be equal")
	}
}

func TestValueEqualDeepNestDoesNotRecurse(t *testing.T) {
	const depth = 100000
	var a Value = Value{Kind: KindNull}
	for i := 0; i < depth; i++ {
		a = Value{Kind: KindArray, Array: Array{a}}
	}
	b := a // shares a's backing arrays; Equal still walks every level
	if !a.Equal(b) {
		t.Fatal("deeply nested identical trees should be equal")
	}
}

func TestGoStringRendersDebugForm(t *testing.T) {
	v := Value{Kind: KindBool, Bool: true}
	if got := v.GoString(); got != "Bool(true)" {
		t.Fatalf("got %q", got)
	}
	null := Value{}
	if got := null.GoString(); got != "Null" {
		t.Fatalf("got %q", got)
	}
}
