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

package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/apollo"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/config"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/steam"
)

var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	noteColor  = color.New(color.FgCyan)
)

// printer writes user-facing lines. Diagnostics go through zerolog instead.
type printer struct {
	w       io.Writer
	verbose bool
}

func (p printer) Plain(format string, a ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", a...)
}

func (p printer) Info(format string, a ...any) {
	_, _ = infoColor.Fprintf(p.w, format+"\n", a...)
}

func (p printer) Warn(format string, a ...any) {
	_, _ = warnColor.Fprintf(p.w, format+"\n", a...)
}

// Debug only prints with --verbose.
func (p printer) Debug(format string, a ...any) {
	if !p.verbose {
		return
	}
	_, _ = noteColor.Fprintf(p.w, format+"\n", a...)
}

// PrintError writes a fatal error and, for the errors a user can fix, a
// hint on how to fix it.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	_, _ = errorColor.Fprintf(w, "Error: %v\n", err)

	var hint string
	switch {
	case errors.Is(err, steam.ErrNoLibraryFound):
		hint = "Pass the library location with --steam-path, e.g. --steam-path \"D:\\SteamLibrary\"."
	case errors.Is(err, apollo.ErrConfigCorrupt):
		hint = "apps.json was left untouched. Fix or remove it and run again."
	case errors.Is(err, apollo.ErrConfigLoad):
		hint = "Check that the file is readable or point --config at another location."
	case errors.Is(err, config.ErrInvalidSettings):
		hint = "Fix the settings file or pass --settings to use another one."
	}
	if hint != "" {
		_, _ = warnColor.Fprintln(w, hint)
	}
}

func enabled(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}
