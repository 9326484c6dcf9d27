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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:paralleltest // replaces the global logger
func TestInitLogging(t *testing.T) {
	t.Cleanup(func() {
		assert.NoError(t, CloseLogging())
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Logger = zerolog.New(os.Stderr)
	})

	t.Run("console_shows_warnings_only", func(t *testing.T) {
		var console, extra bytes.Buffer
		require.NoError(t, InitLogging(LogOptions{Console: &console}, &extra))

		log.Info().Msg("scanning library")
		log.Warn().Msg("manifest skipped")

		assert.NotContains(t, console.String(), "scanning library")
		assert.Contains(t, console.String(), "manifest skipped")
		assert.Contains(t, extra.String(), "scanning library")
		assert.Contains(t, extra.String(), "manifest skipped")
	})

	t.Run("verbose_shows_debug", func(t *testing.T) {
		var console bytes.Buffer
		require.NoError(t, InitLogging(LogOptions{Console: &console, Verbose: true}))

		log.Debug().Msg("found Steam installation")

		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
		assert.Contains(t, console.String(), "found Steam installation")
	})

	t.Run("debug_logging_keeps_console_quiet", func(t *testing.T) {
		var console, extra bytes.Buffer
		require.NoError(t, InitLogging(LogOptions{Console: &console, Debug: true}, &extra))

		log.Debug().Msg("parsed shortcuts")

		assert.Empty(t, console.String())
		assert.Contains(t, extra.String(), "parsed shortcuts")
	})

	t.Run("writes_log_file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")
		require.NoError(t, InitLogging(LogOptions{Dir: dir}))

		log.Info().Msg("saved apps config")

		data, err := os.ReadFile(filepath.Join(dir, LogFile))
		require.NoError(t, err)
		assert.Contains(t, string(data), "saved apps config")
		require.NoError(t, CloseLogging())
	})

	t.Run("reinit_closes_previous_log_file", func(t *testing.T) {
		prev := &trackingCloser{}
		require.NoError(t, swapLogFile(prev))

		require.NoError(t, InitLogging(LogOptions{Dir: t.TempDir()}))

		assert.Equal(t, 1, prev.closed)
		require.NoError(t, CloseLogging())
	})

	t.Run("close_logging_closes_current_file", func(t *testing.T) {
		require.NoError(t, InitLogging(LogOptions{}))
		current := &trackingCloser{}
		require.NoError(t, swapLogFile(current))

		require.NoError(t, CloseLogging())
		require.NoError(t, CloseLogging())

		assert.Equal(t, 1, current.closed)
	})
}

type trackingCloser struct {
	closed int
}

func (c *trackingCloser) Close() error {
	c.closed++
	return nil
}
