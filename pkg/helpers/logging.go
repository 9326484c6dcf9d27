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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/helpers/syncutil"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// LogOptions configures InitLogging.
type LogOptions struct {
	// Console receives human-readable output, usually os.Stderr.
	Console io.Writer
	// Dir holds the rotating log file. Empty disables file logging.
	Dir string
	// Verbose shows debug output on the console and in the file.
	Verbose bool
	// Debug enables debug output in the file only.
	Debug bool
}

var (
	logFileMu syncutil.Mutex
	logFile   io.Closer
)

// swapLogFile makes next the open log file and closes the one it replaces.
func swapLogFile(next io.Closer) error {
	logFileMu.Lock()
	prev := logFile
	logFile = next
	logFileMu.Unlock()

	if prev == nil {
		return nil
	}
	if err := prev.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// CloseLogging closes the log file opened by InitLogging, if any.
func CloseLogging() error {
	return swapLogFile(nil)
}

// InitLogging sets up the global zerolog logger. The console only shows
// warnings unless Verbose is set; the file gets everything at the global
// level. Calling it again closes the log file of the previous call.
func InitLogging(opts LogOptions, writers ...io.Writer) error {
	level := zerolog.InfoLevel
	if opts.Verbose || opts.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	var logWriters []io.Writer
	var file *lumberjack.Logger
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o750); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   filepath.Join(opts.Dir, LogFile),
			MaxSize:    1,
			MaxBackups: 2,
		}
		logWriters = append(logWriters, file)
	}

	if opts.Console != nil {
		consoleLevel := zerolog.WarnLevel
		if opts.Verbose {
			consoleLevel = zerolog.DebugLevel
		}
		logWriters = append(logWriters, &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: zerolog.ConsoleWriter{
				Out:        opts.Console,
				TimeFormat: time.Kitchen,
			}},
			Level: consoleLevel,
		})
	}

	logWriters = append(logWriters, writers...)
	if len(logWriters) == 0 {
		logWriters = append(logWriters, io.Discard)
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	log.Logger = log.Output(zerolog.MultiLevelWriter(logWriters...)).
		With().Timestamp().Caller().Logger()

	var next io.Closer
	if file != nil {
		next = file
	}
	if err := swapLogFile(next); err != nil {
		log.Warn().Err(err).Msg("previous log file not closed cleanly")
	}
	return nil
}
