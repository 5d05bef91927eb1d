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
	"fmt"
	"strings"
	"time"
)

const (
	// DefaultSegment is the value of a major, minor or micro slot that the
	// input version does not provide.
	DefaultSegment = "0"

	// TimestampLayout renders the build time used by QualifierTimestamp.
	// It matches Maven's default maven.build.timestamp format (yyyyMMdd-HHmm)
	// and only produces characters that are valid in a qualifier.
	TimestampLayout = "20060102-1504"
)

// QualifierPolicy decides the qualifier of versions without one.
type QualifierPolicy string

const (
	// QualifierZero uses the literal "0".
	QualifierZero QualifierPolicy = "zero"
	// QualifierTimestamp uses the UTC translation time formatted with TimestampLayout.
	QualifierTimestamp QualifierPolicy = "timestamp"
)

// IsValid reports whether p is a known policy.
func (p QualifierPolicy) IsValid() bool {
	switch p {
	case QualifierZero, QualifierTimestamp:
		return true
	default:
		return false
	}
}

// String returns the string representation of the policy.
func (p QualifierPolicy) String() string {
	return string(p)
}

// SupportedQualifierPolicies returns the names of all policies.
func SupportedQualifierPolicies() []string {
	return []string{
		string(QualifierZero),
		string(QualifierTimestamp),
	}
}

// Version is an OSGi version. All four slots are always populated.
type Version struct {
	Major     string `json:"major" yaml:"major"`
	Minor     string `json:"minor" yaml:"minor"`
	Micro     string `json:"micro" yaml:"micro"`
	Qualifier string `json:"qualifier" yaml:"qualifier"`
}

// Segments returns the slots in order major, minor, micro, qualifier.
func (v Version) Segments() [maxSegments]string {
	return [maxSegments]string{v.Major, v.Minor, v.Micro, v.Qualifier}
}

// String joins the four slots with '.'.
func (v Version) String() string {
	s := v.Segments()
	return strings.Join(s[:], ".")
}

// Option is a functional option for configuring Translator instances.
type Option func(*Translator)

// WithQualifierPolicy sets the policy for versions without a qualifier.
// Unknown policies are ignored.
func WithQualifierPolicy(p QualifierPolicy) Option {
	return func(t *Translator) {
		if p.IsValid() {
			t.policy = p
		}
	}
}

// WithLeadingDashStrip controls whether the '-' that introduces a qualifier
// after a numeric segment ("1.2.3-beta") is dropped. A fourth dotted segment
// is never altered.
func WithLeadingDashStrip(strip bool) Option {
	return func(t *Translator) {
		t.stripDash = strip
	}
}

// WithClock sets the time source used by QualifierTimestamp.
func WithClock(now func() time.Time) Option {
	return func(t *Translator) {
		if now != nil {
			t.now = now
		}
	}
}

// Translator converts coordinate versions to OSGi versions.
type Translator struct {
	policy    QualifierPolicy
	stripDash bool
	now       func() time.Time
}

// NewTranslator creates a Translator. Without options it uses QualifierZero
// and strips the leading dash of the qualifier.
func NewTranslator(opts ...Option) *Translator {
	t := &Translator{
		policy:    QualifierZero,
		stripDash: true,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var defaultTranslator = NewTranslator()

// CalculateVersion converts raw with the default Translator.
func CalculateVersion(raw string) (string, error) {
	return defaultTranslator.CalculateVersion(raw)
}

// Policy returns the qualifier policy of the Translator.
func (t *Translator) Policy() QualifierPolicy {
	return t.policy
}

// CalculateVersion converts raw into its OSGi string form.
func (t *Translator) CalculateVersion(raw string) (string, error) {
	v, err := t.Translate(raw)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Translate converts raw into an OSGi Version.
//
// Segment rules, by position i of the token and its classification:
//   - i == 3: the whole token becomes the qualifier.
//   - numeric: the digits fill slot i.
//   - numeric with suffix in the last token: the digits fill slot i and the
//     suffix becomes the qualifier, without its introducing dash unless the
//     strip is disabled.
//   - anything else fails with *MalformedSegmentError.
//
// Qualifiers are checked with SanitizeQualifier.
func (t *Translator) Translate(raw string) (Version, error) {
	version := stripWhitespace(raw)
	tokens, err := splitStripped(raw, version)
	if err != nil {
		return Version{}, err
	}

	slots := [maxSegments]string{DefaultSegment, DefaultSegment, DefaultSegment, ""}
	last := len(tokens) - 1

	for i, token := range tokens {
		c := Classify(token)

		if i == maxSegments-1 {
			q, err := SanitizeQualifier(token)
			if err != nil {
				return Version{}, err
			}
			slots[i] = q
			continue
		}

		switch c.Kind {
		case SegmentEmpty:
			return Version{}, &MalformedSegmentError{Version: version, Position: i, Segment: token}
		case SegmentNumeric:
			slots[i] = c.Number
		case SegmentNumericSuffix:
			if i != last {
				return Version{}, &MalformedSegmentError{Version: version, Position: i, Segment: token}
			}
			rest := c.Rest
			if t.stripDash {
				rest = strings.TrimPrefix(rest, "-")
			}
			q, err := SanitizeQualifier(rest)
			if err != nil {
				return Version{}, err
			}
			slots[i] = c.Number
			slots[maxSegments-1] = q
		default:
			return Version{}, &MalformedVersionError{Version: version}
		}
	}

	q := slots[maxSegments-1]
	if q == "" {
		q = t.defaultQualifier()
	}

	return Version{
		Major:     slots[0],
		Minor:     slots[1],
		Micro:     slots[2],
		Qualifier: q,
	}, nil
}

func (t *Translator) defaultQualifier() string {
	if t.policy == QualifierTimestamp {
		return t.now().UTC().Format(TimestampLayout)
	}
	return DefaultSegment
}

// Validate checks that s already is a four-segment OSGi version:
// three digit-only segments followed by a non-empty qualifier made of
// [A-Za-z0-9_-]. Translating a valid version returns it unchanged.
func Validate(s string) error {
	parts := strings.SplitN(s, ".", maxSegments)
	if len(parts) != maxSegments {
		return fmt.Errorf("%w: expected %d segments, got %d",
			&MalformedVersionError{Version: s}, maxSegments, len(parts))
	}

	for i, p := range parts[:maxSegments-1] {
		if Classify(p).Kind != SegmentNumeric {
			return &MalformedSegmentError{Version: s, Position: i, Segment: p}
		}
	}

	q := parts[maxSegments-1]
	if q == "" {
		return &MalformedQualifierError{Qualifier: q}
	}
	if _, err := SanitizeQualifier(q); err != nil {
		return err
	}
	return nil
}
