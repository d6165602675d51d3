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

// eventKind identifies the shape of a lexed event. Events are transient:
// the lexer never stores them, it hands one to the driver and moves on.
type eventKind uint8

const (
	eventNull eventKind = iota
	eventBool
	eventStr
	eventNegative
	eventNonnegative
	eventFloat
	eventSeqStart
	eventMapStart
)

// event is the lexer's single output token. Only the field matching kind
// is meaningful.
type event struct {
	kind eventKind
	b    bool
	s    string
	i    int64
	u    uint64
	f    float64
}
