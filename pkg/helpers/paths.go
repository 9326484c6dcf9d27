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
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	AppName      = "apollo-game-finder"
	LogFile      = AppName + ".log"
	AppsFile     = "apps.json"
	sunshineName = "sunshine"
)

// ConfigDir returns the directory holding the tool's settings file.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// LogDir returns the directory holding the rotating log file.
func LogDir() string {
	return filepath.Join(os.TempDir(), AppName)
}

// DefaultAppsPath returns where Apollo and Sunshine keep apps.json on
// this platform.
func DefaultAppsPath() string {
	return defaultAppsPath(runtime.GOOS, os.Getenv, xdg.ConfigHome)
}

func defaultAppsPath(goos string, getenv func(string) string, configHome string) string {
	switch goos {
	case "windows":
		programData := getenv("PROGRAMDATA")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return programData + `\Sunshine\` + AppsFile
	case "darwin":
		home := getenv("HOME")
		return filepath.Join(home, ".config", sunshineName, AppsFile)
	default:
		return filepath.Join(configHome, sunshineName, AppsFile)
	}
}

// ResolveAppsPath picks the apps.json location. An explicit path wins,
// then the settings value, then the platform default. A path naming an
// existing directory means apps.json inside it.
func ResolveAppsPath(fs afero.Fs, flagPath, settingsPath string) string {
	path := flagPath
	if path == "" {
		path = settingsPath
	}
	if path == "" {
		return DefaultAppsPath()
	}

	if isDir, err := afero.IsDir(fs, path); err == nil && isDir {
		resolved := filepath.Join(path, AppsFile)
		log.Debug().Str("path", resolved).Msg("config path is a directory, using apps.json inside it")
		return resolved
	}
	return path
}

// NormalizePathForComparison normalizes a path so that equivalent
// spellings compare equal. Separators become forward slashes; on Windows
// the result is also lower-cased since its filesystems ignore case.
func NormalizePathForComparison(path string) string {
	p := filepath.ToSlash(filepath.Clean(path))
	if runtime.GOOS == "windows" {
		p = strings.ToLower(p)
	}
	return p
}
