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

	cnserrors "github.com/NVIDIA/osgi-version/pkg/errors"
)

// MalformedVersionError reports a version that is empty or whose segments do
// not fit any recognized classification.
type MalformedVersionError struct {
	Version string
}

func (e *MalformedVersionError) Error() string {
	return fmt.Sprintf("Malformed version '%s'", e.Version)
}

// Code implements errors.Coder.
func (e *MalformedVersionError) Code() cnserrors.ErrorCode {
	return cnserrors.ErrCodeMalformedVersion
}

// MalformedSegmentError reports a major, minor or micro segment that has no
// leading number, or that carries trailing text while not being the last
// segment of the version.
type MalformedSegmentError struct {
	Version  string
	Position int
	Segment  string
}

func (e *MalformedSegmentError) Error() string {
	return fmt.Sprintf("Malformed segment for version '%s' at segment '%s'", e.Version, e.Segment)
}

// Code implements errors.Coder.
func (e *MalformedSegmentError) Code() cnserrors.ErrorCode {
	return cnserrors.ErrCodeMalformedSegment
}

// MalformedQualifierError reports a qualifier that contains characters outside
// of [A-Za-z0-9_-].
type MalformedQualifierError struct {
	Qualifier string
}

func (e *MalformedQualifierError) Error() string {
	return fmt.Sprintf("Malformed qualifier '%s'", e.Qualifier)
}

// Code implements errors.Coder.
func (e *MalformedQualifierError) Code() cnserrors.ErrorCode {
	return cnserrors.ErrCodeMalformedQualifier
}
