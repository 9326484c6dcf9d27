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
	"testing"
	"time"

	testhelpers "github.com/sebagsm/ApolloSunshineGameFinder/pkg/testing/helpers"
	"github.com/stretchr/testify/require"
)

// TestInstance_ConcurrentAccess runs accessors against Load and Save.
// With -tags=deadlock, go-deadlock panics on lock misuse.
func TestInstance_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	h := testhelpers.NewMemoryFS()
	cfg, err := NewConfig(h.Fs, "/cfg", "", BaseDefaults)
	require.NoError(t, err)

	done := make(chan struct{})
	for i := range 10 {
		go func() {
			for range 50 {
				switch i % 3 {
				case 0:
					_ = cfg.LibraryPaths()
					_ = cfg.ExcludeAppIDs()
					_ = cfg.VirtualDisplay()
				case 1:
					cfg.SetDebugLogging(!cfg.DebugLogging())
				default:
					_ = cfg.Save()
					_ = cfg.Load()
				}
			}
			done <- struct{}{}
		}()
	}

	for range 10 {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("concurrent access deadlocked")
		}
	}
}
