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

// Package serializer reads and writes the documents exchanged by osgiver.
//
// Output formats:
//   - json: indented JSON
//   - yaml: YAML with two-space indentation
//   - table: flattened FIELD/VALUE listing for terminals
//   - text: the document's primary value only, for shell pipelines
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//		return err
//	}
//
// Inputs are read from local paths or HTTP(S) URLs; the format follows the
// file extension:
//
//	p, err := serializer.FromFile[project.Project]("project.yaml")
//
// For HTTP responses use RespondJSON, which buffers the encoding so a failed
// encode never produces a partial body.
package serializer

import "context"

// Serializer writes a document in a concrete format.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is implemented by Serializers that hold resources such as file handles.
type Closer interface {
	Close() error
}

// Texter is implemented by documents that have a single primary value.
// FormatText writes that value instead of the whole document.
type Texter interface {
	Text() string
}

// Format represents the output format type.
type Format string

const (
	// FormatJSON outputs data in JSON format.
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format.
	FormatYAML Format = "yaml"
	// FormatTable outputs data in table format.
	FormatTable Format = "table"
	// FormatText outputs the primary value of a Texter.
	FormatText Format = "text"
)

// IsUnknown reports whether f is not a supported format.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable, FormatText:
		return false
	default:
		return true
	}
}

// SupportedFormats returns a list of all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatTable),
		string(FormatText),
	}
}
