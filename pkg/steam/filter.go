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
	"strings"

	"github.com/rs/zerolog/log"
)

// toolAppIDs are apps Steam installs alongside games that cannot be
// launched on their own.
var toolAppIDs = map[string]string{
	"228980":  "Steamworks Common Redistributables",
	"1070560": "Steam Linux Runtime 1.0 (scout)",
	"1391110": "Steam Linux Runtime 2.0 (soldier)",
	"1628350": "Steam Linux Runtime 3.0 (sniper)",
	"1493710": "Proton Experimental",
}

var toolNamePrefixes = []string{
	"proton ",
	"steam linux runtime",
	"steamworks common",
}

// IsTool reports whether a record is a Steam runtime or compatibility
// tool rather than a game.
func IsTool(rec GameRecord) bool {
	if rec.Shortcut {
		return false
	}
	if _, ok := toolAppIDs[rec.AppID]; ok {
		return true
	}
	name := strings.ToLower(rec.Name)
	for _, prefix := range toolNamePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// FilterOptions selects which scanned records are registered.
type FilterOptions struct {
	ExcludeAppIDs []string
	IncludeTools  bool
}

// Filter drops tools and excluded app IDs, keeping scan order.
func Filter(records []GameRecord, opts FilterOptions) []GameRecord {
	excluded := make(map[string]struct{}, len(opts.ExcludeAppIDs))
	for _, id := range opts.ExcludeAppIDs {
		excluded[strings.TrimSpace(id)] = struct{}{}
	}

	kept := make([]GameRecord, 0, len(records))
	for _, rec := range records {
		if _, ok := excluded[rec.AppID]; ok {
			log.Debug().Str("appid", rec.AppID).Str("name", rec.Name).Msg("skipping excluded app")
			continue
		}
		if !opts.IncludeTools && IsTool(rec) {
			log.Debug().Str("appid", rec.AppID).Str("name", rec.Name).Msg("skipping Steam tool")
			continue
		}
		kept = append(kept, rec)
	}
	return kept
}
