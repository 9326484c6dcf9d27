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

package vdfbinary

import (
	"errors"
	"fmt"
	"io"
)

var ErrNoShortcuts = errors.New("no 'shortcuts' map in vdf")

// Shortcut is a non-Steam game registered in the Steam client.
type Shortcut struct {
	AppName       string
	Exe           string
	StartDir      string
	Icon          string
	LaunchOptions string
	Tags          []string
	AppID         uint32
	IsHidden      bool
}

// ParseShortcuts decodes shortcuts.vdf. Only appid and AppName are
// required; tools like EmuDeck and Lutris leave the rest out.
func ParseShortcuts(r io.Reader) ([]Shortcut, error) {
	root, err := Decode(r)
	if err != nil {
		return nil, err
	}

	list, ok := root.Child("shortcuts")
	if !ok || list.Kind != KindMap {
		return nil, ErrNoShortcuts
	}

	entries := list.List()
	shortcuts := make([]Shortcut, 0, len(entries))
	for i, entry := range entries {
		appID, ok := entry.Uint("appid")
		if !ok {
			return nil, fmt.Errorf("shortcut %d: missing 'appid'", i)
		}
		name, ok := entry.String("AppName")
		if !ok {
			return nil, fmt.Errorf("shortcut %d: missing 'AppName'", i)
		}

		s := Shortcut{AppID: appID, AppName: name}
		s.Exe, _ = entry.String("Exe")
		s.StartDir, _ = entry.String("StartDir")
		s.Icon, _ = entry.String("icon")
		s.LaunchOptions, _ = entry.String("LaunchOptions")
		s.IsHidden, _ = entry.Bool("IsHidden")

		if tags, ok := entry.Child("tags"); ok {
			for _, t := range tags.List() {
				if t.Kind == KindString {
					s.Tags = append(s.Tags, t.Str)
				}
			}
		}

		shortcuts = append(shortcuts, s)
	}

	return shortcuts, nil
}
