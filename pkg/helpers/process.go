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
	"context"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v4/process"
)

// hostProcessNames are the executables of the streaming hosts that read
// apps.json.
var hostProcessNames = []string{"sunshine", "apollo"}

// IsHostProcess reports whether an executable name or path belongs to
// Sunshine or Apollo.
func IsHostProcess(exe string) bool {
	base := strings.ToLower(filepath.Base(strings.ReplaceAll(exe, `\`, "/")))
	base = strings.TrimSuffix(base, ".exe")
	for _, name := range hostProcessNames {
		if base == name {
			return true
		}
	}
	return false
}

// HostRunning reports whether a Sunshine or Apollo process is running.
// Processes that cannot be inspected are skipped.
func HostRunning(ctx context.Context) bool {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("failed to list processes")
		return false
	}

	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if IsHostProcess(name) {
			log.Debug().Int32("pid", p.Pid).Str("name", name).Msg("streaming host is running")
			return true
		}
	}
	return false
}
