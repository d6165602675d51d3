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
	"testing"
)

func sampleSnapshotValue() Value {
	var inner Object
	inner.Set("name", Value{Kind: KindString, String: "ada"})
	inner.Set("age", Value{Kind: KindNumber, Number: Number{Kind: NumU64, U64: 37}})
	inner.Set("balance", Value{Kind: KindNumber, Number: Number{Kind: NumI64, I64: -12}})
	inner.Set("score", Value{Kind: KindNumber, Number: Number{Kind: NumF64, F64: 3.5}})
	inner.Set("active", Value{Kind: KindBool, Bool: true})
	inner.Set("tag", Value{Kind: KindNull})

	var root Object
	root.Set("user", Value{Kind: KindObject, Object: inner})
	root.Set("tags", Value{Kind: KindArray, Array: Array{
		{Kind: KindString, String: "a"},
		{Kind: KindString, String: "b"},
		{Kind: KindString, String: "a"},
	}})
	return Value{Kind: KindObject, Object: root}
}

func TestSnapshotRoundTripCodecNone(t *testing.T) {
	v := sampleSnapshotValue()
	var buf bytes.Buffer
	if err := SaveValue(&buf, v); err != nil {
		t.Fatalf("SaveValue: %v", err)
	}
	got, err := LoadValue(&buf)
	if err != nil {
		t.Fatalf("LoadValue: %v", err)
	}
	if !got.Equal(v) {
		t.Fatalf("round trip mismatch:\n got %s\nwant %s", got.GoString(), v.GoString())
	}
}

func TestSnapshotRoundTripCodecS2(t *testing.T) {
	v := sampleSnapshotValue()
	var buf bytes.Buffer
	if err := SaveValue(&buf, v, WithCompression(CodecS2)); err != nil {
		t.Fatalf("SaveValue: %v", err)
	}
	got, err := LoadValue(&buf)
	if err != nil {
		t.Fatalf("LoadValue: %v", err)
	}
	if !got.Equal(v) {
		t.Fatal("s2 round trip mismatch")
	}
}

func TestSnapshotRoundTripCodecZstd(t *testing.T) {
	v := sampleSnapshotValue()
	var buf bytes.Buffer
	if err := SaveValue(&buf, v, WithCompression(CodecZstd)); err != nil {
		t.Fatalf("SaveValue: %v", err)
	}
	got, err := LoadValue(&buf)
	if err != nil {
		t.Fatalf("LoadValue: %v", err)
	}
	if !got.Equal(v) {
		t.Fatal("zstd round trip mismatch")
	}
}

func TestSnapshotScalarRoundTrip(t *testing.T) {
	cases := []Value{
		{Kind: KindNull},
		{Kind: KindBool, Bool: false},
		{Kind: KindBool, Bool: true},
		{Kind: KindNumber, Number: Number{Kind: NumU64, U64: 42}},
		{Kind: KindNumber, Number: Number{Kind: NumI64, I64: -42}},
		{Kind: KindNumber, Number: Number{Kind: NumF64, F64: 1.0 / 3.0}},
		{Kind: KindString, String: ""},
		{Kind: KindArray},
		{Kind: KindObject},
	}
	for _, v := range cases {
		var buf bytes.Buffer
		if err := SaveValue(&buf, v); err != nil {
			t.Fatalf("SaveValue(%+v): %v", v, err)
		}
		got, err := LoadValue(&buf)
		if err != nil {
			t.Fatalf("LoadValue(%+v): %v", v, err)
		}
		if !got.Equal(v) {
			t.Errorf("round trip mismatch for %+v: got %+v", v, got)
		}
	}
}

func TestSnapshotDeduplicatesRepeatedStrings(t *testing.T) {
	v := Value{Kind: KindArray, Array: Array{
		{Kind: KindString, String: "repeat"},
		{Kind: KindString, String: "repeat"},
		{Kind: KindString, String: "repeat"},
	}}
	table, _ := collectStrings(v)
	if len(table) != 1 {
		t.Fatalf("got %d distinct strings, want 1", len(table))
	}
}

func TestSnapshotDeepNestRoundTrip(t *testing.T) {
	const depth = 100000
	v := Value{Kind: KindNull}
	for i := 0; i < depth; i++ {
		v = Value{Kind: KindArray, Array: Array{v}}
	}
	var buf bytes.Buffer
	if err := SaveValue(&buf, v); err != nil {
		t.Fatalf("SaveValue: %v", err)
	}
	got, err := LoadValue(&buf)
	if err != nil {
		t.Fatalf("LoadValue: %v", err)
	}
	if !got.Equal(v) {
		t.Fatal("deep-nest snapshot round trip should not recurse and should reproduce the tree")
	}
}

func TestLoadValueRejectsTruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	if err := SaveValue(&buf, sampleSnapshotValue()); err != nil {
		t.Fatalf("SaveValue: %v", err)
	}
	truncated := buf.Bytes()[:buf.Len()/2]
	if _, err := LoadValue(bytes.NewReader(truncated)); err != Error {
		t.Fatalf("got %v, want Error", err)
	}
}

func TestLoadValueRejectsUnknownCodec(t *testing.T) {
	if _, err := LoadValue(bytes.NewReader([]byte{0xff})); err != Error {
		t.Fatalf("got %v, want Error", err)
	}
}
