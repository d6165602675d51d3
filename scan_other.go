//go:build !amd64

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

// findNextSpecialCharacter falls back to the scalar scanner on
// non-amd64 architectures, where neither SSE2 nor AVX2 apply.
func findNextSpecialCharacter(slice []byte) int {
	return findNextSpecialCharacterScalar(slice)
}

// SupportedSIMD always reports false outside amd64.
func SupportedSIMD() bool {
	return false
}
