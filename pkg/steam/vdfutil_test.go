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
	"testing"

	testhelpers "github.com/sebagsm/ApolloSunshineGameFinder/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVDFKeys(t *testing.T) {
	t.Parallel()

	t.Run("lowercases_nested_keys", func(t *testing.T) {
		t.Parallel()

		m := map[string]any{
			"AppState": map[string]any{
				"AppID": "123",
				"Name":  "Test Game",
			},
		}

		result := normalizeVDFKeys(m)

		nested, ok := result["appstate"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "123", nested["appid"])
		assert.Equal(t, "Test Game", nested["name"])
		_, hasOriginal := result["AppState"]
		assert.False(t, hasOriginal)
	})

	t.Run("preserves_values", func(t *testing.T) {
		t.Parallel()

		result := normalizeVDFKeys(map[string]any{"key": "MixedCaseValue"})

		assert.Equal(t, "MixedCaseValue", result["key"])
	})

	t.Run("handles_empty_map", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, normalizeVDFKeys(map[string]any{}))
	})
}

func TestParseVDFFile(t *testing.T) {
	t.Parallel()

	t.Run("parses_file", func(t *testing.T) {
		t.Parallel()

		h := testhelpers.NewMemoryFS()
		require.NoError(t, h.WriteFile("/m.acf", []byte(testhelpers.ManifestVDF("440", "Team Fortress 2", "tf"))))

		m, err := parseVDFFile(h.Fs, "/m.acf")

		require.NoError(t, err)
		state, ok := m["appstate"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "440", state["appid"])
		assert.Equal(t, "tf", state["installdir"])
	})

	t.Run("ignores_byte_order_mark", func(t *testing.T) {
		t.Parallel()

		h := testhelpers.NewMemoryFS()
		body := "\xef\xbb\xbf" + testhelpers.ManifestVDF("570", "Dota 2", "dota 2 beta")
		require.NoError(t, h.WriteFile("/bom.acf", []byte(body)))

		m, err := parseVDFFile(h.Fs, "/bom.acf")

		require.NoError(t, err)
		state, ok := m["appstate"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "570", state["appid"])
		assert.Equal(t, "Dota 2", state["name"])
	})

	t.Run("missing_file", func(t *testing.T) {
		t.Parallel()

		_, err := parseVDFFile(testhelpers.NewMemoryFS().Fs, "/missing.acf")

		require.Error(t, err)
	})
}
