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

//go:build linux

package steam

import (
	"path/filepath"
	"testing"

	testhelpers "github.com/sebagsm/ApolloSunshineGameFinder/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:paralleltest // modifies HOME
func TestFindSteamDirLinux(t *testing.T) {
	home := "/home/tester"
	t.Setenv("HOME", home)

	t.Run("prefers_dot_steam", func(t *testing.T) {
		h := testhelpers.NewMemoryFS()
		dotSteam := filepath.Join(home, ".steam", "steam")
		require.NoError(t, h.Fs.MkdirAll(dotSteam, 0o755))
		require.NoError(t, h.Fs.MkdirAll(filepath.Join(home, ".local", "share", "Steam"), 0o755))

		assert.Equal(t, dotSteam, NewLocator(h.Fs, DefaultOptions()).FindSteamDir())
	})

	t.Run("finds_local_share", func(t *testing.T) {
		h := testhelpers.NewMemoryFS()
		localShare := filepath.Join(home, ".local", "share", "Steam")
		require.NoError(t, h.Fs.MkdirAll(localShare, 0o755))

		assert.Equal(t, localShare, NewLocator(h.Fs, DefaultOptions()).FindSteamDir())
	})

	t.Run("extra_paths_before_flatpak", func(t *testing.T) {
		h := testhelpers.NewMemoryFS()
		require.NoError(t, h.Fs.MkdirAll("/custom/steam", 0o755))
		require.NoError(t, h.Fs.MkdirAll(
			filepath.Join(home, ".var", "app", FlatpakSteamID, ".steam", "steam"), 0o755,
		))

		opts := DefaultOptions()
		opts.ExtraPaths = []string{"/custom/steam"}

		assert.Equal(t, "/custom/steam", NewLocator(h.Fs, opts).FindSteamDir())
	})

	t.Run("finds_flatpak", func(t *testing.T) {
		h := testhelpers.NewMemoryFS()
		flatpak := filepath.Join(home, ".var", "app", FlatpakSteamID, ".steam", "steam")
		require.NoError(t, h.Fs.MkdirAll(flatpak, 0o755))

		assert.Equal(t, flatpak, NewLocator(h.Fs, DefaultOptions()).FindSteamDir())
	})

	t.Run("skips_flatpak_when_disabled", func(t *testing.T) {
		h := testhelpers.NewMemoryFS()
		flatpak := filepath.Join(home, ".var", "app", FlatpakSteamID, ".steam", "steam")
		require.NoError(t, h.Fs.MkdirAll(flatpak, 0o755))

		assert.Empty(t, NewLocator(h.Fs, Options{}).FindSteamDir())
	})

	t.Run("uses_fallback_last", func(t *testing.T) {
		h := testhelpers.NewMemoryFS()
		require.NoError(t, h.Fs.MkdirAll("/fallback", 0o755))
		require.NoError(t, h.Fs.MkdirAll("/opt/steam", 0o755))

		assert.Equal(t, "/opt/steam", NewLocator(h.Fs, Options{FallbackPath: "/fallback"}).FindSteamDir())
	})

	t.Run("returns_empty_when_missing", func(t *testing.T) {
		h := testhelpers.NewMemoryFS()

		assert.Empty(t, NewLocator(h.Fs, DefaultOptions()).FindSteamDir())
	})
}
