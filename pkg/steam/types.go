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
	"errors"
	"regexp"
)

var (
	// ErrNoLibraryFound means no usable Steam installation or library path
	// could be located.
	ErrNoLibraryFound = errors.New("no Steam library found")
	// ErrManifestParse means a single app manifest could not be read or
	// did not describe an app.
	ErrManifestParse = errors.New("invalid app manifest")
)

// GameRecord is one installed game found in a Steam library.
type GameRecord struct {
	AppID        string `json:"appid" yaml:"appid" csv:"appid"`
	Name         string `json:"name" yaml:"name" csv:"name"`
	InstallDir   string `json:"install_dir,omitempty" yaml:"install_dir,omitempty" csv:"install_dir"`
	LaunchTarget string `json:"launch_target" yaml:"launch_target" csv:"launch_target"`
	Library      string `json:"library,omitempty" yaml:"library,omitempty" csv:"library"`
	ImagePath    string `json:"image_path,omitempty" yaml:"image_path,omitempty" csv:"image_path"`
	Shortcut     bool   `json:"shortcut,omitempty" yaml:"shortcut,omitempty" csv:"shortcut"`
}

// Options tunes Steam installation detection.
type Options struct {
	// FallbackPath is checked last if no known location exists.
	// Windows example: "C:\\Program Files (x86)\\Steam"
	FallbackPath string

	// ExtraPaths are additional Steam root candidates.
	// Only used on Linux; ignored elsewhere.
	ExtraPaths []string

	// CheckFlatpak enables checking for a Flatpak Steam installation.
	// Only used on Linux; ignored elsewhere.
	CheckFlatpak bool
}

var steamURLRe = regexp.MustCompile(`steam://(?:rungameid|run)/(\d+)`)

// BuildSteamURL builds a Steam launch URL from a game ID.
func BuildSteamURL(id string) string {
	return "steam://rungameid/" + id
}

// ExtractAppID finds a Steam launch URL inside a command line or detached
// command and returns its game ID.
// Accepts "steam://rungameid/[id]" and "steam://run/[id]".
func ExtractAppID(command string) (string, bool) {
	m := steamURLRe.FindStringSubmatch(command)
	if m == nil {
		return "", false
	}
	return m[1], true
}
