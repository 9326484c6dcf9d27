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
	"testing"

	testhelpers "github.com/sebagsm/ApolloSunshineGameFinder/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:paralleltest // modifies HOME
func TestFindSteamDirDarwin(t *testing.T) {
	home := "/Users/tester"
	t.Setenv("HOME", home)

	t.Run("finds_application_support", func(t *testing.T) {
		h := testhelpers.NewMemoryFS()
		appSupport := filepath.Join(home, "Library", "Application Support", "Steam")
		require.NoError(t, h.Fs.MkdirAll(appSupport, 0o755))
		require.NoError(t, h.Fs.MkdirAll("/fallback", 0o755))

		got := NewLocator(h.Fs, Options{FallbackPath: "/fallback"}).FindSteamDir()

		assert.Equal(t, appSupport, got)
	})

	t.Run("uses_fallback", func(t *testing.T) {
		h := testhelpers.NewMemoryFS()
		require.NoError(t, h.Fs.MkdirAll("/fallback", 0o755))

		got := NewLocator(h.Fs, Options{FallbackPath: "/fallback"}).FindSteamDir()

		assert.Equal(t, "/fallback", got)
	})

	t.Run("returns_empty_when_missing", func(t *testing.T) {
		h := testhelpers.NewMemoryFS()

		assert.Empty(t, NewLocator(h.Fs, DefaultOptions()).FindSteamDir())
	})
}
