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

// layerKind says which handle in a driverFrame is live.
type layerKind uint8

const (
	layerSeq layerKind = iota
	layerMap
)

// driverFrame is one entry of the explicit stack the non-recursive
// driver pushes per '[' or '{' it opens. outer is the Visitor that
// produced the Seq/Map handle (and so will resume once the handle is
// finished); the handle stays referenced here for exactly as long as a
// Visitor it produced might still be live, which in Go just means "as
// long as this slice element exists" — the garbage collector, not
// manual lifetime bookkeeping, keeps it alive. See DESIGN.md.
type driverFrame struct {
	outer Visitor
	kind  layerKind
	seq   Seq
	mp    Map
}

// runFromLexer pumps events out of l into root, maintaining an explicit
// heap stack of driverFrame instead of recursing once per nesting level.
// This is the non-recursive deserialize driver of SPEC_FULL.md §7.
func runFromLexer(l *lexer, root Visitor) error {
	visitor := root
	var stack []driverFrame

outer:
	for {
		ev, err := l.event()
		if err != nil {
			return err
		}

		var haveLayer bool
		var curKind layerKind
		var curSeq Seq
		var curMap Map

		switch ev.kind {
		case eventNull:
			if err := visitor.Null(); err != nil {
				return err
			}
		case eventBool:
			if err := visitor.Bool(ev.b); err != nil {
				return err
			}
		case eventStr:
			if err := visitor.Str(ev.s); err != nil {
				return err
			}
		case eventNegative:
			if err := visitor.Negative(ev.i); err != nil {
				return err
			}
		case eventNonnegative:
			if err := visitor.Nonnegative(ev.u); err != nil {
				return err
			}
		case eventFloat:
			if err := visitor.Float(ev.f); err != nil {
				return err
			}
		case eventSeqStart:
			s, err := visitor.Seq()
			if err != nil {
				return err
			}
			curSeq, curKind, haveLayer = s, layerSeq, true
		case eventMapStart:
			m, err := visitor.Map()
			if err != nil {
				return err
			}
			curMap, curKind, haveLayer = m, layerMap, true
		}

		var acceptComma bool
		if haveLayer {
			acceptComma = false
		} else {
			if len(stack) == 0 {
				break outer
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			visitor, curKind, curSeq, curMap = top.outer, top.kind, top.seq, top.mp
			acceptComma = true
		}

		// Delimiter phase: consume commas/closers until it's time to
		// read the next element/entry of the current layer.
		for {
			b, _, ok := l.skipWhitespaceAndPeekClass()
			switch {
			case ok && b == ',' && acceptComma:
				l.bump()
			case ok && (b == ']' || b == '}'):
				l.bump()
				switch {
				case b == ']' && curKind == layerSeq:
					if err := curSeq.Finish(); err != nil {
						return err
					}
				case b == '}' && curKind == layerMap:
					if err := curMap.Finish(); err != nil {
						return err
					}
				default:
					return Error
				}
				if len(stack) == 0 {
					break outer
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				visitor, curKind, curSeq, curMap = top.outer, top.kind, top.seq, top.mp
				acceptComma = true
				continue
			default:
				if acceptComma {
					return Error
				}
			}
			break
		}

		// Element phase: read the next element/entry of the current
		// layer and make its Visitor current.
		outerVisitor := visitor
		switch curKind {
		case layerSeq:
			elem, err := curSeq.Element()
			if err != nil {
				return err
			}
			visitor = elem
			stack = append(stack, driverFrame{outer: outerVisitor, kind: layerSeq, seq: curSeq})
		case layerMap:
			b, _, ok := l.skipWhitespaceAndPeekClass()
			if !ok || b != '"' {
				return Error
			}
			keyEv, err := l.event()
			if err != nil {
				return err
			}
			if keyEv.kind != eventStr {
				return Error
			}
			entry, err := curMap.Key(keyEv.s)
			if err != nil {
				return err
			}
			colon, _, ok := l.skipWhitespaceAndPeekClass()
			if !ok || colon != ':' {
				return Error
			}
			l.bump()
			visitor = entry
			stack = append(stack, driverFrame{outer: outerVisitor, kind: layerMap, mp: curMap})
		}
	}

	if _, _, ok := l.skipWhitespaceAndPeekClass(); ok {
		return Error
	}
	return nil
}
