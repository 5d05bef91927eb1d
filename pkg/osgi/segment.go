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

import (
	"strings"
)

// maxSegments is the number of slots in an OSGi version.
const maxSegments = 4

// SegmentKind classifies a single version token.
type SegmentKind int

const (
	// SegmentEmpty means the token has no leading digit.
	SegmentEmpty SegmentKind = iota
	// SegmentNumeric means the token consists of digits only.
	SegmentNumeric
	// SegmentNumericSuffix means the token is a run of digits followed by
	// at least one non-digit character.
	SegmentNumericSuffix
)

// String returns the name of the kind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentEmpty:
		return "empty"
	case SegmentNumeric:
		return "numeric"
	case SegmentNumericSuffix:
		return "numeric-suffix"
	default:
		return "unknown"
	}
}

// Classification is the result of classifying a token.
// Number is empty for SegmentEmpty; Rest is only set for SegmentNumericSuffix.
type Classification struct {
	Kind   SegmentKind
	Number string
	Rest   string
}

// SplitSegments strips ASCII whitespace from raw and splits the result on '.'
// into at most four tokens. Anything after the third dot stays in the fourth
// token. An input that is empty after stripping whitespace is rejected.
func SplitSegments(raw string) ([]string, error) {
	return splitStripped(raw, stripWhitespace(raw))
}

// splitStripped splits stripped, the whitespace-free form of raw.
func splitStripped(raw, stripped string) ([]string, error) {
	if stripped == "" {
		return nil, &MalformedVersionError{Version: raw}
	}
	return strings.SplitN(stripped, ".", maxSegments), nil
}

// Classify splits token into its leading ASCII digit run and the remainder.
func Classify(token string) Classification {
	i := 0
	for i < len(token) && isDigit(token[i]) {
		i++
	}

	switch {
	case i == 0:
		return Classification{Kind: SegmentEmpty}
	case i == len(token):
		return Classification{Kind: SegmentNumeric, Number: token}
	default:
		return Classification{Kind: SegmentNumericSuffix, Number: token[:i], Rest: token[i:]}
	}
}

// stripWhitespace drops space, \t, \n, \v, \f and \r. Other Unicode spaces
// are kept and later rejected as qualifier characters.
func stripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return -1
		}
		return r
	}, s)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
