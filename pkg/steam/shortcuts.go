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
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sebagsm/ApolloSunshineGameFinder/internal/vdfbinary"
	"github.com/spf13/afero"
)

// ScanShortcuts yields non-Steam games (user-added shortcuts) from every
// user's shortcuts.vdf. steamDir should point to the Steam root directory.
func (s *Scanner) ScanShortcuts(steamDir string) iter.Seq[GameRecord] {
	return func(yield func(GameRecord) bool) {
		userdataDir := filepath.Join(steamDir, "userdata")

		userDirs, err := afero.ReadDir(s.fs, userdataDir)
		if err != nil {
			log.Debug().Err(err).Str("path", userdataDir).Msg("no Steam userdata directory")
			return
		}

		for _, userDir := range userDirs {
			if !userDir.IsDir() {
				continue
			}

			shortcutsPath := filepath.Join(userdataDir, userDir.Name(), "config", "shortcuts.vdf")
			for _, rec := range s.readShortcuts(shortcutsPath) {
				if !yield(rec) {
					return
				}
			}
		}
	}
}

func (s *Scanner) readShortcuts(path string) []GameRecord {
	f, err := s.fs.Open(path)
	if err != nil {
		log.Debug().Str("path", path).Msg("no shortcuts.vdf for user")
		return nil
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing shortcuts.vdf")
		}
	}()

	shortcuts, err := vdfbinary.ParseShortcuts(f)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("error parsing shortcuts.vdf")
		return nil
	}

	records := make([]GameRecord, 0, len(shortcuts))
	for _, sc := range shortcuts {
		name := strings.TrimSpace(sc.AppName)
		if name == "" || sc.IsHidden {
			continue
		}

		// Steam launches shortcuts by their 64-bit Big Picture ID:
		// BPID = (AppID << 32) | 0x02000000
		id := strconv.FormatUint((uint64(sc.AppID)<<32)|0x02000000, 10)

		records = append(records, GameRecord{
			AppID:        id,
			Name:         name,
			InstallDir:   strings.Trim(sc.StartDir, `"`),
			LaunchTarget: BuildSteamURL(id),
			Shortcut:     true,
		})
	}

	log.Debug().Str("path", path).Int("count", len(records)).Msg("parsed shortcuts")
	return records
}
