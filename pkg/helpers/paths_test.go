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
	"path/filepath"
	"runtime"
	"testing"

	testhelpers "github.com/sebagsm/ApolloSunshineGameFinder/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAppsPath(t *testing.T) {
	t.Parallel()

	env := func(vals map[string]string) func(string) string {
		return func(k string) string { return vals[k] }
	}

	t.Run("windows_program_data", func(t *testing.T) {
		t.Parallel()

		got := defaultAppsPath("windows", env(map[string]string{"PROGRAMDATA": `D:\ProgramData`}), "")

		assert.Equal(t, `D:\ProgramData\Sunshine\apps.json`, got)
	})

	t.Run("windows_default_program_data", func(t *testing.T) {
		t.Parallel()

		got := defaultAppsPath("windows", env(nil), "")

		assert.Equal(t, `C:\ProgramData\Sunshine\apps.json`, got)
	})

	t.Run("linux_xdg_config", func(t *testing.T) {
		t.Parallel()

		got := defaultAppsPath("linux", env(nil), "/home/tester/.config")

		assert.Equal(t, filepath.Join("/home/tester/.config", "sunshine", "apps.json"), got)
	})

	t.Run("darwin_home_config", func(t *testing.T) {
		t.Parallel()

		got := defaultAppsPath("darwin", env(map[string]string{"HOME": "/Users/tester"}), "")

		assert.Equal(t, filepath.Join("/Users/tester", ".config", "sunshine", "apps.json"), got)
	})
}

func TestResolveAppsPath(t *testing.T) {
	t.Parallel()

	h := testhelpers.NewMemoryFS()
	require.NoError(t, h.Fs.MkdirAll("/etc/sunshine", 0o755))

	t.Run("flag_wins", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "/tmp/a.json", ResolveAppsPath(h.Fs, "/tmp/a.json", "/tmp/b.json"))
	})

	t.Run("settings_used_without_flag", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "/tmp/b.json", ResolveAppsPath(h.Fs, "", "/tmp/b.json"))
	})

	t.Run("directory_gets_apps_json", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, filepath.Join("/etc/sunshine", "apps.json"), ResolveAppsPath(h.Fs, "/etc/sunshine", ""))
	})

	t.Run("falls_back_to_default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, DefaultAppsPath(), ResolveAppsPath(h.Fs, "", ""))
	})
}

func TestNormalizePathForComparison(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/games/lib", NormalizePathForComparison("/games/lib/"))
	assert.Equal(t, "/games/lib", NormalizePathForComparison("/games/./other/../lib"))
	if runtime.GOOS == "windows" {
		assert.Equal(t, "d:/steamlibrary", NormalizePathForComparison(`D:\SteamLibrary`))
	} else {
		assert.Equal(t, "/Games/Lib", NormalizePathForComparison("/Games/Lib"))
	}
}
