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

//go:build !linux && !darwin && !windows

package steam

// DefaultOptions returns the detection options for this platform.
func DefaultOptions() Options {
	return Options{}
}

// FindSteamDir only honours the fallback path on platforms without a
// native Steam client.
func (l *Locator) FindSteamDir() string {
	if l.isDir(l.opts.FallbackPath) {
		return l.opts.FallbackPath
	}
	return ""
}
