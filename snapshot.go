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
	"encoding/binary"
	"io"
	"math"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// Codec names a snapshot's payload compressor.
type Codec uint8

const (
	CodecNone Codec = iota
	CodecS2
	CodecZstd
)

type snapshotState struct {
	codec Codec
}

// SnapshotOption configures a single SaveValue call.
type SnapshotOption func(*snapshotState)

// WithCompression picks the codec SaveValue wraps its payload writer in.
// Default: CodecNone.
func WithCompression(c Codec) SnapshotOption {
	return func(s *snapshotState) { s.codec = c }
}

// Binary snapshot tags. Every value starts with exactly one of these;
// tagObjectStart/tagArrayStart are followed by zero or more members/
// elements and a matching End tag, so the stream is self-delimiting
// without needing a length prefix per container.
const (
	tagNull byte = iota
	tagFalse
	tagTrue
	tagU64
	tagI64
	tagF64
	tagStr
	tagArrayStart
	tagArrayEnd
	tagObjectStart
	tagObjectEnd
	tagKey
)

// SaveValue writes v to w as a compact tagged binary stream: a
// deduplicated string table (mirroring the teacher's Strings
// buffer/offset scheme for parsed documents) followed by the tag stream,
// optionally compressed. This is an added feature giving
// github.com/klauspost/compress a concrete home; it is not part of the
// JSON wire format and LoadValue is its only reader.
func SaveValue(w io.Writer, v Value, opts ...SnapshotOption) error {
	var st snapshotState
	for _, opt := range opts {
		opt(&st)
	}

	table, index := collectStrings(v)
	payload := binary.AppendUvarint(nil, uint64(len(table)))
	for _, s := range table {
		payload = binary.AppendUvarint(payload, uint64(len(s)))
		payload = append(payload, s...)
	}
	payload = encodeValue(payload, v, index)

	if _, err := w.Write([]byte{byte(st.codec)}); err != nil {
		return err
	}

	switch st.codec {
	case CodecNone:
		_, err := w.Write(payload)
		return err
	case CodecS2:
		zw := s2.NewWriter(w)
		if _, err := zw.Write(payload); err != nil {
			return err
		}
		return zw.Close()
	case CodecZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return err
		}
		if _, err := zw.Write(payload); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	default:
		return Error
	}
}

// LoadValue reads a stream written by SaveValue back into a Value.
func LoadValue(r io.Reader) (Value, error) {
	var codecByte [1]byte
	if _, err := io.ReadFull(r, codecByte[:]); err != nil {
		return Value{}, Error
	}

	var payloadReader io.Reader
	switch Codec(codecByte[0]) {
	case CodecNone:
		payloadReader = r
	case CodecS2:
		payloadReader = s2.NewReader(r)
	case CodecZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return Value{}, Error
		}
		defer zr.Close()
		payloadReader = zr
	default:
		return Value{}, Error
	}

	data, err := io.ReadAll(payloadReader)
	if err != nil {
		return Value{}, Error
	}

	dec := snapDecoder{data: data}
	table, err := dec.readStringTable()
	if err != nil {
		return Value{}, err
	}
	dec.table = table
	return dec.decodeValue()
}

// collectStrings walks v with an explicit stack (order doesn't matter for
// a dedup table, so no container-close bookkeeping is needed) and returns
// every distinct string value and object key, plus an index into it.
func collectStrings(root Value) ([]string, map[string]int) {
	var table []string
	index := make(map[string]int)
	add := func(s string) {
		if _, ok := index[s]; ok {
			return
		}
		index[s] = len(table)
		table = append(table, s)
	}

	stack := []Value{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch v.Kind {
		case KindString:
			add(v.String)
		case KindArray:
			stack = append(stack, v.Array...)
		case KindObject:
			for i, k := range v.Object.keys {
				add(k)
				stack = append(stack, v.Object.vals[i])
			}
		}
	}
	return table, index
}

type snapLayerKind uint8

const (
	snapLayerArray snapLayerKind = iota
	snapLayerObject
)

type snapLayer struct {
	kind snapLayerKind
	arr  Array
	idx  int
	obj  *Object
}

// encodeValue appends root's tag stream to dst, walking the tree with an
// explicit stack instead of recursing once per nesting level.
func encodeValue(dst []byte, root Value, index map[string]int) []byte {
	var stack []snapLayer
	cur := root

outer:
	for {
		switch cur.Kind {
		case KindNull:
			dst = append(dst, tagNull)
		case KindBool:
			if cur.Bool {
				dst = append(dst, tagTrue)
			} else {
				dst = append(dst, tagFalse)
			}
		case KindString:
			dst = append(dst, tagStr)
			dst = binary.AppendUvarint(dst, uint64(index[cur.String]))
		case KindNumber:
			switch cur.Number.Kind {
			case NumU64:
				dst = append(dst, tagU64)
				dst = binary.AppendUvarint(dst, cur.Number.U64)
			case NumI64:
				dst = append(dst, tagI64)
				dst = binary.AppendVarint(dst, cur.Number.I64)
			default:
				dst = append(dst, tagF64)
				dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(cur.Number.F64))
			}
		case KindArray:
			dst = append(dst, tagArrayStart)
			stack = append(stack, snapLayer{kind: snapLayerArray, arr: cur.Array})
		case KindObject:
			dst = append(dst, tagObjectStart)
			obj := cur.Object
			stack = append(stack, snapLayer{kind: snapLayerObject, obj: &obj})
		}

		for {
			if len(stack) == 0 {
				return dst
			}
			top := &stack[len(stack)-1]
			if top.kind == snapLayerArray {
				if top.idx < len(top.arr) {
					cur = top.arr[top.idx]
					top.idx++
					continue outer
				}
				dst = append(dst, tagArrayEnd)
				stack = stack[:len(stack)-1]
				continue
			}
			if top.idx < len(top.obj.keys) {
				dst = append(dst, tagKey)
				dst = binary.AppendUvarint(dst, uint64(index[top.obj.keys[top.idx]]))
				cur = top.obj.vals[top.idx]
				top.idx++
				continue outer
			}
			dst = append(dst, tagObjectEnd)
			stack = stack[:len(stack)-1]
		}
	}
}

type snapFrameKind uint8

const (
	snapFrameArray snapFrameKind = iota
	snapFrameObject
)

type snapFrame struct {
	kind       snapFrameKind
	array      Array
	object     Object
	pendingKey string
}

type snapDecoder struct {
	data  []byte
	pos   int
	table []string
}

func (d *snapDecoder) readStringTable() ([]string, error) {
	n, err := d.readUvarint()
	if err != nil {
		return nil, err
	}
	table := make([]string, n)
	for i := range table {
		l, err := d.readUvarint()
		if err != nil {
			return nil, err
		}
		if l > uint64(len(d.data)-d.pos) {
			return nil, Error
		}
		table[i] = string(d.data[d.pos : d.pos+int(l)])
		d.pos += int(l)
	}
	return table, nil
}

func (d *snapDecoder) readByte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, Error
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

func (d *snapDecoder) readUvarint() (uint64, error) {
	v, n := binary.Uvarint(d.data[d.pos:])
	if n <= 0 {
		return 0, Error
	}
	d.pos += n
	return v, nil
}

func (d *snapDecoder) readVarint() (int64, error) {
	v, n := binary.Varint(d.data[d.pos:])
	if n <= 0 {
		return 0, Error
	}
	d.pos += n
	return v, nil
}

func (d *snapDecoder) stringAt(idx uint64) (string, error) {
	if idx >= uint64(len(d.table)) {
		return "", Error
	}
	return d.table[idx], nil
}

// decodeValue is encodeValue's inverse: it reads one tag at a time and
// maintains an explicit stack of in-progress array/object frames instead
// of recursing once per nesting level.
func (d *snapDecoder) decodeValue() (Value, error) {
	var stack []snapFrame
	var current Value

outer:
	for {
		tag, err := d.readByte()
		if err != nil {
			return Value{}, err
		}

		switch tag {
		case tagNull:
			current = Value{Kind: KindNull}
		case tagFalse:
			current = Value{Kind: KindBool, Bool: false}
		case tagTrue:
			current = Value{Kind: KindBool, Bool: true}
		case tagU64:
			u, err := d.readUvarint()
			if err != nil {
				return Value{}, err
			}
			current = Value{Kind: KindNumber, Number: Number{Kind: NumU64, U64: u}}
		case tagI64:
			i, err := d.readVarint()
			if err != nil {
				return Value{}, err
			}
			current = Value{Kind: KindNumber, Number: Number{Kind: NumI64, I64: i}}
		case tagF64:
			if d.pos+8 > len(d.data) {
				return Value{}, Error
			}
			bits := binary.LittleEndian.Uint64(d.data[d.pos : d.pos+8])
			d.pos += 8
			current = Value{Kind: KindNumber, Number: Number{Kind: NumF64, F64: math.Float64frombits(bits)}}
		case tagStr:
			idx, err := d.readUvarint()
			if err != nil {
				return Value{}, err
			}
			s, err := d.stringAt(idx)
			if err != nil {
				return Value{}, err
			}
			current = Value{Kind: KindString, String: s}
		case tagArrayStart:
			stack = append(stack, snapFrame{kind: snapFrameArray})
			continue outer
		case tagObjectStart:
			stack = append(stack, snapFrame{kind: snapFrameObject})
			continue outer
		case tagKey:
			if len(stack) == 0 || stack[len(stack)-1].kind != snapFrameObject {
				return Value{}, Error
			}
			idx, err := d.readUvarint()
			if err != nil {
				return Value{}, err
			}
			k, err := d.stringAt(idx)
			if err != nil {
				return Value{}, err
			}
			stack[len(stack)-1].pendingKey = k
			continue outer
		case tagArrayEnd:
			if len(stack) == 0 || stack[len(stack)-1].kind != snapFrameArray {
				return Value{}, Error
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			current = Value{Kind: KindArray, Array: top.array}
		case tagObjectEnd:
			if len(stack) == 0 || stack[len(stack)-1].kind != snapFrameObject {
				return Value{}, Error
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			current = Value{Kind: KindObject, Object: top.object}
		default:
			return Value{}, Error
		}

		if len(stack) == 0 {
			return current, nil
		}
		top := &stack[len(stack)-1]
		if top.kind == snapFrameArray {
			top.array = append(top.array, current)
		} else {
			top.object.Set(top.pendingKey, current)
		}
	}
}
