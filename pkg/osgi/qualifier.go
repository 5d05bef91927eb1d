// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package osgi

// SanitizeQualifier returns q unchanged if every character is an ASCII
// letter, an ASCII digit, '_' or '-'. Otherwise it fails with
// *MalformedQualifierError; characters are never silently dropped.
func SanitizeQualifier(q string) (string, error) {
	for i := 0; i < len(q); i++ {
		if !isQualifierChar(q[i]) {
			return "", &MalformedQualifierError{Qualifier: q}
		}
	}
	return q, nil
}

// isQualifierChar works on bytes: every byte of a multi-byte UTF-8 sequence
// is >= 0x80 and therefore rejected.
func isQualifierChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', isDigit(c):
		return true
	case c == '_', c == '-':
		return true
	default:
		return false
	}
}
