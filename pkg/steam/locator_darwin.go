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

//go:build darwin

package steam

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// DefaultOptions returns the detection options for this platform.
func DefaultOptions() Options {
	return Options{}
}

// FindSteamDir locates the Steam installation directory on macOS.
// Returns an empty string if no candidate exists.
func (l *Locator) FindSteamDir() string {
	var paths []string
	if home := l.home(); home != "" {
		paths = append(paths, filepath.Join(home, "Library", "Application Support", "Steam"))
	}
	paths = append(paths, l.opts.FallbackPath)

	for _, path := range paths {
		if l.isDir(path) {
			log.Debug().Msgf("found Steam installation: %s", path)
			return path
		}
	}

	log.Debug().Msg("Steam detection failed")
	return ""
}
