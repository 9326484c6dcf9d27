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
	"iter"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Scanner enumerates installed apps in Steam libraries.
type Scanner struct {
	fs           afero.Fs
	artworkRoots []string
}

// NewScanner creates a Scanner reading through fs. artworkRoots are Steam
// installation directories searched for library artwork.
func NewScanner(fs afero.Fs, artworkRoots ...string) *Scanner {
	return &Scanner{fs: fs, artworkRoots: artworkRoots}
}

// Scan yields a record for each valid app manifest under a library root,
// in file name order. Broken manifests are logged and skipped.
func (s *Scanner) Scan(root string) iter.Seq[GameRecord] {
	return func(yield func(GameRecord) bool) {
		steamApps := FindSteamAppsDir(s.fs, root)

		entries, err := afero.ReadDir(s.fs, steamApps)
		if err != nil {
			log.Warn().Err(err).Str("path", steamApps).Msg("error listing steamapps folder")
			return
		}

		found := 0
		for _, entry := range entries {
			if entry.IsDir() || !IsManifestName(entry.Name()) {
				continue
			}
			found++

			path := filepath.Join(steamApps, entry.Name())
			log.Debug().Msgf("manifest file: %s", path)

			rec, err := s.ReadManifest(path)
			if err != nil {
				log.Warn().Err(err).Str("manifest", path).Msg("skipping manifest")
				continue
			}
			rec.Library = root
			rec.ImagePath = s.findArtwork(rec.AppID)

			if !yield(rec) {
				return
			}
		}

		log.Debug().Str("library", root).Int("manifests", found).Msg("library scan complete")
	}
}

// ScanAll scans every root in order and collects the records.
func (s *Scanner) ScanAll(roots []string) []GameRecord {
	var records []GameRecord
	for _, root := range roots {
		records = append(records, slices.Collect(s.Scan(root))...)
	}
	return records
}

// findArtwork returns the portrait library artwork Steam cached for an
// app, checking both the legacy flat layout and the per-app layout.
func (s *Scanner) findArtwork(appID string) string {
	for _, root := range s.artworkRoots {
		cache := filepath.Join(root, "appcache", "librarycache")
		for _, candidate := range []string{
			filepath.Join(cache, appID+"_library_600x900.jpg"),
			filepath.Join(cache, appID, "library_600x900.jpg"),
		} {
			if info, err := s.fs.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
	}
	return ""
}
