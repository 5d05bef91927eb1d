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

package properties

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
)

// defaultFileMode is used for property files created by the store.
const defaultFileMode os.FileMode = 0o644

// FileStore is a Java .properties file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file need not exist.
func NewFileStore(path string) (*FileStore, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("properties file path is empty")
	}
	return &FileStore{path: trimmed}, nil
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() (*properties.Properties, error) {
	// ${...} in stored values is literal text, not a reference
	loader := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
		IgnoreMissing:    true,
	}
	p, err := loader.LoadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties %s: %w", s.path, err)
	}
	p.DisableExpansion = true
	return p, nil
}

// Values returns all key/value pairs in the file. A missing file is empty.
func (s *FileStore) Values(_ context.Context) (map[string]string, error) {
	p, err := s.load()
	if err != nil {
		return nil, err
	}
	return p.Map(), nil
}

// Set merges values into the file, replacing it atomically.
func (s *FileStore) Set(_ context.Context, values map[string]string) error {
	p, err := s.load()
	if err != nil {
		return err
	}

	for _, k := range sortedKeys(values) {
		if _, _, err := p.Set(k, values[k]); err != nil {
			return fmt.Errorf("failed to set property %s: %w", k, err)
		}
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".osgiver-*.properties")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(s.fileMode()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set mode of %s: %w", tmpName, err)
	}
	if _, err := p.Write(tmp, properties.UTF8); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write properties: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	slog.Debug("properties written", "path", s.path, "keys", len(values))
	return nil
}

// fileMode returns the permissions of the existing file, or
// defaultFileMode when it does not exist yet.
func (s *FileStore) fileMode() os.FileMode {
	if fi, err := os.Stat(s.path); err == nil {
		return fi.Mode().Perm()
	}
	return defaultFileMode
}
