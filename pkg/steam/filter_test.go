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

	"github.com/stretchr/testify/assert"
)

func TestIsTool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  GameRecord
		want bool
	}{
		{name: "game", rec: GameRecord{AppID: "440", Name: "Team Fortress 2"}, want: false},
		{name: "redistributables", rec: GameRecord{AppID: "228980", Name: "Steamworks Common Redistributables"}, want: true},
		{name: "runtime_by_id", rec: GameRecord{AppID: "1628350", Name: "whatever"}, want: true},
		{name: "proton_by_name", rec: GameRecord{AppID: "2348590", Name: "Proton 8.0"}, want: true},
		{name: "runtime_by_name", rec: GameRecord{AppID: "9999999", Name: "Steam Linux Runtime 4.0"}, want: true},
		{name: "protonvpn_is_not_proton", rec: GameRecord{AppID: "1", Name: "ProtonVPN Simulator"}, want: false},
		{name: "shortcut_never_tool", rec: GameRecord{AppID: "228980", Name: "Proton 8.0", Shortcut: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsTool(tt.rec))
		})
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	records := []GameRecord{
		{AppID: "440", Name: "Team Fortress 2"},
		{AppID: "228980", Name: "Steamworks Common Redistributables"},
		{AppID: "730", Name: "Counter-Strike 2"},
		{AppID: "1493710", Name: "Proton Experimental"},
	}

	t.Run("drops_tools_by_default", func(t *testing.T) {
		t.Parallel()

		got := Filter(records, FilterOptions{})

		assert.Equal(t, []GameRecord{records[0], records[2]}, got)
	})

	t.Run("keeps_tools_when_requested", func(t *testing.T) {
		t.Parallel()

		got := Filter(records, FilterOptions{IncludeTools: true})

		assert.Equal(t, records, got)
	})

	t.Run("drops_excluded_ids", func(t *testing.T) {
		t.Parallel()

		got := Filter(records, FilterOptions{ExcludeAppIDs: []string{" 730 ", "999"}})

		assert.Equal(t, []GameRecord{records[0]}, got)
	})

	t.Run("empty_input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, Filter(nil, FilterOptions{}))
	})
}
