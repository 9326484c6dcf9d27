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
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/helpers"
	"github.com/spf13/afero"
)

// Locator finds Steam library roots on the local machine.
type Locator struct {
	fs   afero.Fs
	opts Options
}

// NewLocator creates a Locator reading through fs.
func NewLocator(fs afero.Fs, opts Options) *Locator {
	return &Locator{fs: fs, opts: opts}
}

// LibraryRoots returns the library roots to scan. Explicit paths skip
// auto-detection entirely; otherwise the Steam installation and every
// library listed in its libraryfolders.vdf are returned.
func (l *Locator) LibraryRoots(userPaths []string) ([]string, error) {
	if len(userPaths) > 0 {
		var roots []string
		for _, p := range userPaths {
			if l.isDir(p) {
				log.Debug().Str("path", p).Msg("using custom library path")
				roots = append(roots, p)
			} else {
				log.Warn().Str("path", p).Msg("custom library path not found")
			}
		}
		roots = dedupeRoots(roots)
		if len(roots) == 0 {
			return nil, fmt.Errorf("%w: none of the given paths exist", ErrNoLibraryFound)
		}
		return roots, nil
	}

	steamDir := l.FindSteamDir()
	if steamDir == "" {
		return nil, fmt.Errorf("%w: Steam installation not detected", ErrNoLibraryFound)
	}

	roots := []string{steamDir}
	for _, p := range l.libraryFolders(steamDir) {
		if !l.isDir(p) {
			log.Warn().Str("path", p).Msg("library folder listed by Steam not found")
			continue
		}
		roots = append(roots, p)
	}

	return dedupeRoots(roots), nil
}

// libraryFolders lists the library paths from libraryfolders.vdf in
// index order. Both the current format ("0" { "path" ... }) and the
// pre-2021 one ("1" "D:\\SteamLibrary") are accepted.
func (l *Locator) libraryFolders(steamDir string) []string {
	vdfPath := filepath.Join(FindSteamAppsDir(l.fs, steamDir), "libraryfolders.vdf")

	m, err := parseVDFFile(l.fs, vdfPath)
	if err != nil {
		log.Debug().Err(err).Msg("libraryfolders.vdf not usable, scanning Steam dir only")
		return nil
	}

	lfs, ok := m["libraryfolders"].(map[string]any)
	if !ok {
		log.Warn().Str("path", vdfPath).Msg("libraryfolders is not a map")
		return nil
	}

	keys := make([]string, 0, len(lfs))
	for k := range lfs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA == nil && errB == nil {
			return a < b
		}
		return keys[i] < keys[j]
	})

	var paths []string
	for _, k := range keys {
		switch v := lfs[k].(type) {
		case map[string]any:
			if p, ok := v["path"].(string); ok && p != "" {
				paths = append(paths, p)
			}
		case string:
			if _, err := strconv.Atoi(k); err == nil && v != "" {
				paths = append(paths, v)
			}
		}
	}

	log.Debug().Int("count", len(paths)).Msg("read libraryfolders.vdf")
	return paths
}

func (l *Locator) isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := l.fs.Stat(path)
	return err == nil && info.IsDir()
}

func (l *Locator) home() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn().Err(err).Msg("failed to get user home directory")
		return ""
	}
	return home
}

func dedupeRoots(roots []string) []string {
	seen := make(map[string]struct{}, len(roots))
	out := make([]string, 0, len(roots))
	for _, r := range roots {
		key := helpers.NormalizePathForComparison(r)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
