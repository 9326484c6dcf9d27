// ApolloSunshineGameFinder
// Copyright (c) 2026 The ApolloSunshineGameFinder Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of ApolloSunshineGameFinder.
//
// ApolloSunshineGameFinder is free software: you can redistribute it and/or
// modify it under the terms of the GNU General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ApolloSunshineGameFinder is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ApolloSunshineGameFinder.  If not, see <http://www.gnu.org/licenses/>.

package apollo

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	defaultFileMode   os.FileMode = 0o644
	backupTimeLayout              = "20060102-150405"
	backupFileSuffix              = ".bak"
	tempFilePattern               = ".apps-*.json.tmp"
	utf8BOM                       = "\xef\xbb\xbf"
)

// StoreOptions controls how apps.json is written.
type StoreOptions struct {
	Clock  clockwork.Clock
	Backup bool
}

// Store loads and saves one apps.json file.
type Store struct {
	fs   afero.Fs
	opts StoreOptions
	path string
}

// NewStore creates a Store for the apps.json at path.
func NewStore(fs afero.Fs, path string, opts StoreOptions) *Store {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	return &Store{fs: fs, path: path, opts: opts}
}

// Path returns the apps.json location.
func (s *Store) Path() string {
	return s.path
}

// Load reads apps.json. A missing or blank file yields an empty document.
func (s *Store) Load() (*Document, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", s.path).Msg("apps config not found, starting empty")
		return NewDocument(), nil
	} else if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigLoad, s.path, err)
	}

	data = bytes.TrimPrefix(data, []byte(utf8BOM))
	if len(bytes.TrimSpace(data)) == 0 {
		log.Warn().Str("path", s.path).Msg("apps config is empty, starting empty")
		return NewDocument(), nil
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigCorrupt, s.path, err)
	}
	if err := Validate(data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigCorrupt, s.path, err)
	}

	log.Debug().
		Str("path", s.path).
		Int("apps", len(doc.Apps)).
		Str("indent", fmt.Sprintf("%q", doc.Indent())).
		Msg("loaded apps config")
	return doc, nil
}

// Save atomically replaces apps.json with doc. An existing file is backed
// up first when enabled. It returns the backup path, if any.
func (s *Store) Save(doc *Document) (string, error) {
	data, err := doc.Marshal()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}

	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create directory %s: %w", ErrWrite, dir, err)
	}

	mode := defaultFileMode
	exists := false
	if info, statErr := s.fs.Stat(s.path); statErr == nil {
		mode = info.Mode().Perm()
		exists = true
	}

	backupPath := ""
	if exists && s.opts.Backup {
		backupPath, err = s.backup(mode)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	if err := s.writeAtomic(data, mode); err != nil {
		return backupPath, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	log.Info().Str("path", s.path).Int("apps", len(doc.Apps)).Msg("saved apps config")
	return backupPath, nil
}

func (s *Store) backup(mode os.FileMode) (string, error) {
	current, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return "", fmt.Errorf("read for backup: %w", err)
	}

	stamp := s.opts.Clock.Now().Format(backupTimeLayout)
	backupPath := s.path + "." + stamp + backupFileSuffix
	if err := afero.WriteFile(s.fs, backupPath, current, mode); err != nil {
		return "", fmt.Errorf("write backup %s: %w", backupPath, err)
	}

	log.Info().Str("path", backupPath).Msg("backed up apps config")
	return backupPath, nil
}

// writeAtomic writes to a temp file in the target directory and renames
// it over the target, so readers never see a partial file.
func (s *Store) writeAtomic(data []byte, mode os.FileMode) error {
	tmp, err := afero.TempFile(s.fs, filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if success {
			return
		}
		if rmErr := s.fs.Remove(tmpPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			log.Warn().Err(rmErr).Str("path", tmpPath).Msg("failed to remove temp file")
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := s.fs.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("set file mode: %w", err)
	}
	if err := s.fs.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
