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

package helpers

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FSHelper provides utilities for filesystem mocking in tests
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// NewOSFS creates a filesystem helper using the real filesystem (for integration tests)
func NewOSFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewOsFs(),
	}
}

// VDFEscapePath escapes backslashes in paths for VDF files.
// VDF format requires backslashes to be escaped as double backslashes.
func VDFEscapePath(path string) string {
	return strings.ReplaceAll(path, `\`, `\\`)
}

// ManifestVDF renders a minimal appmanifest_<id>.acf body.
func ManifestVDF(appID, name, installDir string) string {
	return `"AppState"
{
	"appid"		"` + appID + `"
	"Universe"		"1"
	"name"		"` + name + `"
	"StateFlags"		"4"
	"installdir"		"` + installDir + `"
}`
}

// CreateManifest writes appmanifest_<appID>.acf into a library's
// steamapps directory.
func (h *FSHelper) CreateManifest(libraryRoot, appID, name, installDir string) error {
	path := filepath.Join(libraryRoot, "steamapps", "appmanifest_"+appID+".acf")
	return h.WriteFile(path, []byte(ManifestVDF(appID, name, installDir)))
}

// CreateLibraryFolders writes a libraryfolders.vdf into the Steam
// installation listing the given library paths.
func (h *FSHelper) CreateLibraryFolders(steamDir string, libraries ...string) error {
	var b strings.Builder
	b.WriteString("\"libraryfolders\"\n{\n")
	for i, lib := range libraries {
		fmt.Fprintf(&b, "\t\"%d\"\n\t{\n\t\t\"path\"\t\t\"%s\"\n\t\t\"label\"\t\t\"\"\n\t}\n", i, VDFEscapePath(lib))
	}
	b.WriteString("}\n")

	path := filepath.Join(steamDir, "steamapps", "libraryfolders.vdf")
	return h.WriteFile(path, []byte(b.String()))
}

// CreateAppsFile writes an apps.json document from a generic map.
func (h *FSHelper) CreateAppsFile(path string, doc map[string]any) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal apps to JSON: %w", err)
	}
	return h.WriteFile(path, data)
}

// FileExists checks if a file exists
func (h *FSHelper) FileExists(path string) bool {
	exists, err := afero.Exists(h.Fs, path)
	if err != nil {
		return false
	}
	return exists
}

// ReadFile reads a file and returns its content
func (h *FSHelper) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(h.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return data, nil
}

// WriteFile writes content to a file, creating parent directories.
func (h *FSHelper) WriteFile(path string, content []byte) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for file %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// ListFiles lists all files in a directory
func (h *FSHelper) ListFiles(path string) ([]string, error) {
	files, err := afero.ReadDir(h.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	fileNames := make([]string, len(files))
	for i, file := range files {
		fileNames[i] = file.Name()
	}

	return fileNames, nil
}
