package osgi

import (
	"errors"
	"testing"
	"time"

	cnserrors "github.com/NVIDIA/osgi-version/pkg/errors"
)

func TestCalculateVersion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "major only", input: "1", expected: "1.0.0.0"},
		{name: "major.minor", input: "1.2", expected: "1.2.0.0"},
		{name: "major.minor.micro", input: "1.2.3", expected: "1.2.3.0"},
		{name: "four numeric segments", input: "1.2.3.4", expected: "1.2.3.4"},
		{name: "dash qualifier with dash", input: "1.2.3-beta1-2", expected: "1.2.3.beta1-2"},
		{name: "qualifier on minor", input: "1.2-test", expected: "1.2.0.test"},
		{name: "snapshot on minor", input: "1.2-SNAPSHOT", expected: "1.2.0.SNAPSHOT"},
		{name: "snapshot on major", input: "1-SNAPSHOT", expected: "1.0.0.SNAPSHOT"},
		{name: "dotted qualifier", input: "1.2.3.beta-1", expected: "1.2.3.beta-1"},
		{name: "dotted qualifier keeps leading dash", input: "1.2.3.-x", expected: "1.2.3.-x"},
		{name: "underscore qualifier", input: "1.2.3_beta", expected: "1.2.3._beta"},
		{name: "whitespace removed", input: " 1. 2 .3\t", expected: "1.2.3.0"},
		{name: "leading zeros preserved", input: "01.002.3", expected: "01.002.3.0"},
		{name: "trailing dot", input: "1.2.3.", expected: "1.2.3.0"},
		{name: "trailing dash", input: "1.2.3-", expected: "1.2.3.0"},
		{name: "only one leading dash stripped", input: "1.2.3--rc", expected: "1.2.3.-rc"},
		{name: "double dash on minor", input: "1.2--x", expected: "1.2.0.-x"},
		{name: "already osgi", input: "2.1.4.0", expected: "2.1.4.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateVersion(tt.input)
			if err != nil {
				t.Fatalf("CalculateVersion(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("CalculateVersion(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCalculateVersion_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode cnserrors.ErrorCode
		check    func(*testing.T, error)
	}{
		{
			name:     "empty",
			input:    "",
			wantCode: cnserrors.ErrCodeMalformedVersion,
		},
		{
			name:     "whitespace only",
			input:    " \t ",
			wantCode: cnserrors.ErrCodeMalformedVersion,
		},
		{
			name:     "non-numeric minor before more segments",
			input:    "1.asdf.3.asd.asdf.sdf",
			wantCode: cnserrors.ErrCodeMalformedSegment,
			check: func(t *testing.T, err error) {
				var segErr *MalformedSegmentError
				if !errors.As(err, &segErr) {
					t.Fatalf("expected *MalformedSegmentError, got %T", err)
				}
				if segErr.Position != 1 || segErr.Segment != "asdf" {
					t.Errorf("got position %d segment %q, want 1 %q", segErr.Position, segErr.Segment, "asdf")
				}
				if segErr.Version != "1.asdf.3.asd.asdf.sdf" {
					t.Errorf("got version %q", segErr.Version)
				}
			},
		},
		{
			name:     "empty leading segment",
			input:    ".asdf..33öjkhadsf",
			wantCode: cnserrors.ErrCodeMalformedSegment,
		},
		{
			name:     "empty middle segment",
			input:    "1..3",
			wantCode: cnserrors.ErrCodeMalformedSegment,
		},
		{
			name:     "suffix on non-last segment",
			input:    "1.2a.3",
			wantCode: cnserrors.ErrCodeMalformedSegment,
		},
		{
			name:     "v prefix",
			input:    "v1.2.3",
			wantCode: cnserrors.ErrCodeMalformedSegment,
		},
		{
			name:     "non-ascii digit",
			input:    "١.2",
			wantCode: cnserrors.ErrCodeMalformedSegment,
		},
		{
			name:     "invalid qualifier characters",
			input:    "1.2.3.4-_asdfasdf&/",
			wantCode: cnserrors.ErrCodeMalformedQualifier,
			check: func(t *testing.T, err error) {
				var qErr *MalformedQualifierError
				if !errors.As(err, &qErr) {
					t.Fatalf("expected *MalformedQualifierError, got %T", err)
				}
				if qErr.Qualifier != "4-_asdfasdf&/" {
					t.Errorf("got qualifier %q", qErr.Qualifier)
				}
			},
		},
		{
			name:     "invalid dash qualifier",
			input:    "1.2.3-beta!",
			wantCode: cnserrors.ErrCodeMalformedQualifier,
		},
		{
			name:     "non-breaking space in qualifier",
			input:    "1.2.3-a\u00a0b",
			wantCode: cnserrors.ErrCodeMalformedQualifier,
		},
		{
			name:     "next line character in qualifier",
			input:    "1.2.3.a\u0085b",
			wantCode: cnserrors.ErrCodeMalformedQualifier,
		},
		{
			name:     "more than four segments",
			input:    "1.2.3.4.5",
			wantCode: cnserrors.ErrCodeMalformedQualifier,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateVersion(tt.input)
			if err == nil {
				t.Fatalf("CalculateVersion(%q) = %q, expected error", tt.input, got)
			}
			if code := cnserrors.CodeOf(err); code != tt.wantCode {
				t.Errorf("CalculateVersion(%q) code = %s, want %s (err: %v)", tt.input, code, tt.wantCode, err)
			}
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&MalformedVersionError{Version: ""}, "Malformed version ''"},
		{&MalformedSegmentError{Version: "1.x", Segment: "x"}, "Malformed segment for version '1.x' at segment 'x'"},
		{&MalformedQualifierError{Qualifier: "a&b"}, "Malformed qualifier 'a&b'"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestTranslator_LeadingDashStrip(t *testing.T) {
	keep := NewTranslator(WithLeadingDashStrip(false))

	got, err := keep.CalculateVersion("1.2.3-beta1-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1.2.3.-beta1-2" {
		t.Errorf("got %q, want %q", got, "1.2.3.-beta1-2")
	}

	got, err = keep.CalculateVersion("1.2.3-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1.2.3.-" {
		t.Errorf("got %q, want %q", got, "1.2.3.-")
	}
}

func TestTranslator_QualifierTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	clock := func() time.Time {
		return time.Date(2026, time.October, 16, 14, 30, 59, 0, loc)
	}
	tr := NewTranslator(
		WithQualifierPolicy(QualifierTimestamp),
		WithClock(clock),
	)

	if tr.Policy() != QualifierTimestamp {
		t.Fatalf("Policy() = %s, want %s", tr.Policy(), QualifierTimestamp)
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"1.2.3", "1.2.3.20261016-1230"},
		{"1", "1.0.0.20261016-1230"},
		{"1.2.3.", "1.2.3.20261016-1230"},
		{"1.2.3-SNAPSHOT", "1.2.3.SNAPSHOT"},
		{"1.2.3.4", "1.2.3.4"},
	}
	for _, tt := range tests {
		got, err := tr.CalculateVersion(tt.input)
		if err != nil {
			t.Fatalf("CalculateVersion(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("CalculateVersion(%q) = %q, want %q", tt.input, got, tt.expected)
		}
		if err := Validate(got); err != nil {
			t.Errorf("Validate(%q) = %v", got, err)
		}
	}
}

func TestTranslator_UnknownPolicyIgnored(t *testing.T) {
	tr := NewTranslator(WithQualifierPolicy("weekly"), WithClock(nil))
	if tr.Policy() != QualifierZero {
		t.Errorf("Policy() = %s, want %s", tr.Policy(), QualifierZero)
	}
	got, err := tr.CalculateVersion("3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "3.0.0.0" {
		t.Errorf("got %q", got)
	}
}

func TestTranslate_Segments(t *testing.T) {
	v, err := NewTranslator().Translate("4.5-rc1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [4]string{"4", "5", "0", "rc1"}
	if v.Segments() != want {
		t.Errorf("Segments() = %v, want %v", v.Segments(), want)
	}
	if v.String() != "4.5.0.rc1" {
		t.Errorf("String() = %q", v.String())
	}
}

func TestTranslate_Idempotent(t *testing.T) {
	inputs := []string{
		"1", "1.2", "1.2.3", "1.2.3.4", "1.2.3-beta1-2", "1.2-SNAPSHOT",
		"0.0.0.0", "10.20.30.final_1", "7.0.1.-dash", "1.2.3--rc", "1.2--x",
		"1.2.3-", "4.5.6.--",
	}
	for _, in := range inputs {
		first, err := CalculateVersion(in)
		if err != nil {
			t.Fatalf("CalculateVersion(%q) unexpected error: %v", in, err)
		}
		second, err := CalculateVersion(first)
		if err != nil {
			t.Fatalf("CalculateVersion(%q) unexpected error: %v", first, err)
		}
		if first != second {
			t.Errorf("not idempotent: %q -> %q -> %q", in, first, second)
		}
	}
}

func TestTranslate_FourthSegmentUntouched(t *testing.T) {
	for _, strip := range []bool{true, false} {
		got, err := NewTranslator(WithLeadingDashStrip(strip)).CalculateVersion("1.2.3.-rc")
		if err != nil {
			t.Fatalf("strip=%v: unexpected error: %v", strip, err)
		}
		if got != "1.2.3.-rc" {
			t.Errorf("strip=%v: got %q, want %q", strip, got, "1.2.3.-rc")
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		input    string
		wantCode cnserrors.ErrorCode
	}{
		{"1.2.3.0", ""},
		{"1.2.3.beta-1_x", ""},
		{"1.2.3", cnserrors.ErrCodeMalformedVersion},
		{"1.2.x.0", cnserrors.ErrCodeMalformedSegment},
		{"1.2.3.", cnserrors.ErrCodeMalformedQualifier},
		{"1.2.3.a.b", cnserrors.ErrCodeMalformedQualifier},
		{"", cnserrors.ErrCodeMalformedVersion},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := Validate(tt.input)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("Validate(%q) unexpected error: %v", tt.input, err)
				}
				return
			}
			if code := cnserrors.CodeOf(err); code != tt.wantCode {
				t.Errorf("Validate(%q) code = %s, want %s", tt.input, code, tt.wantCode)
			}
		})
	}
}

func TestQualifierPolicy(t *testing.T) {
	for _, p := range SupportedQualifierPolicies() {
		if !QualifierPolicy(p).IsValid() {
			t.Errorf("policy %q should be valid", p)
		}
	}
	if QualifierPolicy("").IsValid() {
		t.Error("empty policy should be invalid")
	}
}
