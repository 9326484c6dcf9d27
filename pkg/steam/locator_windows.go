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

//go:build windows

package steam

import (
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows/registry"
)

// DefaultOptions returns the detection options for this platform.
func DefaultOptions() Options {
	return Options{
		FallbackPath: `C:\Program Files (x86)\Steam`,
	}
}

type registryHint struct {
	path  string
	value string
	root  registry.Key
}

var registryHints = []registryHint{
	// Per-user key written by the Steam client itself.
	{root: registry.CURRENT_USER, path: `Software\Valve\Steam`, value: "SteamPath"},
	// Installer keys, 64-bit systems first.
	{root: registry.LOCAL_MACHINE, path: `SOFTWARE\Wow6432Node\Valve\Steam`, value: "InstallPath"},
	{root: registry.LOCAL_MACHINE, path: `SOFTWARE\Valve\Steam`, value: "InstallPath"},
}

// registrySteamPaths returns the install paths recorded in the Registry, in
// lookup order.
var registrySteamPaths = func() []string {
	var paths []string
	for _, hint := range registryHints {
		key, err := registry.OpenKey(hint.root, hint.path, registry.QUERY_VALUE)
		if err != nil {
			continue
		}

		installPath, _, err := key.GetStringValue(hint.value)
		if closeErr := key.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing registry key")
		}
		if err != nil || installPath == "" {
			continue
		}
		paths = append(paths, installPath)
	}
	return paths
}

// FindSteamDir locates the Steam installation directory on Windows using
// the Registry. Returns an empty string if no candidate exists.
func (l *Locator) FindSteamDir() string {
	for _, installPath := range registrySteamPaths() {
		// SteamPath is stored with forward slashes.
		installPath = strings.ReplaceAll(installPath, "/", `\`)
		if l.isDir(installPath) {
			log.Debug().Msgf("found Steam installation via registry: %s", installPath)
			return installPath
		}
	}

	if l.isDir(l.opts.FallbackPath) {
		log.Debug().Msgf("Steam registry detection failed, using fallback: %s", l.opts.FallbackPath)
		return l.opts.FallbackPath
	}

	log.Debug().Msg("Steam detection failed")
	return ""
}
