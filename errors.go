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

import "errors"

// Error is the single opaque error value returned by every parse and
// decode failure in this package: malformed syntax, a type mismatch
// between an event and its destination, invalid UTF-8, an out-of-range
// number, or trailing garbage after the document. The engine does not
// track source positions or distinguish failure causes beyond this;
// callers that need more context should wrap it, e.g.
// fmt.Errorf("decoding %q: %w", field, vjson.Error).
var Error = errors.New("vjson: invalid input")
