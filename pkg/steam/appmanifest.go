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

package steam

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

var manifestNameRe = regexp.MustCompile(`(?i)^appmanifest_(\d+)\.acf$`)

// IsManifestName reports whether a file name looks like an app manifest.
func IsManifestName(name string) bool {
	return manifestNameRe.MatchString(name)
}

// ReadManifest parses a single appmanifest_<id>.acf file. The app ID is
// taken from the manifest and falls back to the file name.
func (s *Scanner) ReadManifest(path string) (GameRecord, error) {
	m, err := parseVDFFile(s.fs, path)
	if err != nil {
		return GameRecord{}, fmt.Errorf("%w: %w", ErrManifestParse, err)
	}

	appState, ok := m["appstate"].(map[string]any)
	if !ok {
		return GameRecord{}, fmt.Errorf("%w: no AppState in %s", ErrManifestParse, path)
	}

	name, _ := appState["name"].(string) //nolint:revive // checked below
	name = strings.TrimSpace(name)
	if name == "" {
		return GameRecord{}, fmt.Errorf("%w: no name in %s", ErrManifestParse, path)
	}

	appID, _ := appState["appid"].(string) //nolint:revive // falls back to file name
	appID = strings.TrimSpace(appID)
	if appID == "" {
		if fm := manifestNameRe.FindStringSubmatch(filepath.Base(path)); fm != nil {
			appID = fm[1]
		}
	}
	if _, err := strconv.ParseUint(appID, 10, 64); err != nil {
		return GameRecord{}, fmt.Errorf("%w: invalid appid %q in %s", ErrManifestParse, appID, path)
	}

	rec := GameRecord{
		AppID:        appID,
		Name:         name,
		LaunchTarget: BuildSteamURL(appID),
	}
	if installDir, ok := appState["installdir"].(string); ok && installDir != "" {
		rec.InstallDir = filepath.Join(filepath.Dir(path), "common", installDir)
	}

	return rec, nil
}

// FindSteamAppsDir finds the steamapps directory from a library root.
// It checks for both lowercase and mixed-case "steamapps" directories.
func FindSteamAppsDir(fs afero.Fs, root string) string {
	candidates := []string{
		"steamapps",
		"SteamApps",
		"steam/steamapps",
	}

	for _, candidate := range candidates {
		path := filepath.Join(root, candidate)
		if info, err := fs.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}

	return filepath.Join(root, "steamapps")
}
