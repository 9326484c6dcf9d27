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

package config

import (
	"slices"
	"testing"

	testhelpers "github.com/sebagsm/ApolloSunshineGameFinder/pkg/testing/helpers"
	"pgregory.net/rapid"
)

// TestPropertySaveLoadRoundTrip verifies saved settings load back unchanged.
func TestPropertySaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		vals := BaseDefaults
		vals.Steam.LibraryPaths = rapid.SliceOf(
			rapid.StringMatching(`/[A-Za-z0-9 _-]{1,20}(/[A-Za-z0-9 _-]{1,10})?`),
		).Draw(t, "libraryPaths")
		vals.Steam.ExcludeAppIDs = rapid.SliceOf(rapid.StringMatching(`[1-9][0-9]{0,9}`)).Draw(t, "excluded")
		vals.Steam.IncludeShortcuts = rapid.Bool().Draw(t, "shortcuts")
		vals.Apollo.VirtualDisplay = rapid.Bool().Draw(t, "virtualDisplay")
		vals.Apollo.AppsPath = rapid.StringMatching(`(/[a-z]{1,8}){0,3}`).Draw(t, "appsPath")

		h := testhelpers.NewMemoryFS()
		saved := &Instance{fs: h.Fs, cfgPath: "/cfg/settings.toml", vals: vals, defaults: BaseDefaults}
		if err := saved.Save(); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		loaded, err := NewConfig(h.Fs, "/cfg", "/cfg/settings.toml", BaseDefaults)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}

		if !slices.Equal(loaded.LibraryPaths(), vals.Steam.LibraryPaths) {
			t.Fatalf("library paths: got %q, want %q", loaded.LibraryPaths(), vals.Steam.LibraryPaths)
		}
		if !slices.Equal(loaded.ExcludeAppIDs(), vals.Steam.ExcludeAppIDs) {
			t.Fatalf("excluded ids: got %q, want %q", loaded.ExcludeAppIDs(), vals.Steam.ExcludeAppIDs)
		}
		if loaded.IncludeShortcuts() != vals.Steam.IncludeShortcuts {
			t.Fatalf("include shortcuts mismatch")
		}
		if loaded.VirtualDisplay() != vals.Apollo.VirtualDisplay {
			t.Fatalf("virtual display mismatch")
		}
		if loaded.AppsPath() != vals.Apollo.AppsPath {
			t.Fatalf("apps path: got %q, want %q", loaded.AppsPath(), vals.Apollo.AppsPath)
		}
	})
}
