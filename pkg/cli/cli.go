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
	"context"
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/helpers"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/steam"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// AppVersion is set at build time with -ldflags.
var AppVersion = "dev"

// Flags holds the parsed command line.
type Flags struct {
	SteamPaths       []string
	ConfigPath       string
	SettingsPath     string
	Format           string
	NoVirtualDisplay bool
	Verbose          bool
	DryRun           bool
	List             bool
	IncludeShortcuts bool
	NoBackup         bool
}

// Env holds the process-level dependencies of a run. Tests replace them
// with in-memory versions.
type Env struct {
	Fs          afero.Fs
	Stdout      io.Writer
	Stderr      io.Writer
	Clock       clockwork.Clock
	NewUUID     func() string
	HostRunning func(ctx context.Context) bool
	InitLogging func(opts helpers.LogOptions) error
	Locator     steam.Options
	ConfigDir   string
	LogDir      string
}

// DefaultEnv returns the environment of a real invocation.
func DefaultEnv() Env {
	return Env{
		Fs:          afero.NewOsFs(),
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Clock:       clockwork.NewRealClock(),
		HostRunning: helpers.HostRunning,
		InitLogging: func(opts helpers.LogOptions) error {
			return helpers.InitLogging(opts)
		},
		Locator:   steam.DefaultOptions(),
		ConfigDir: helpers.ConfigDir(),
		LogDir:    helpers.LogDir(),
	}
}

// NewRootCmd builds the apollo-game-finder command.
func NewRootCmd(env Env) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:   helpers.AppName + " [flags] [PATH...]",
		Short: "Add installed Steam games to Apollo/Sunshine apps.json",
		Long: "Scans the local Steam libraries and registers every installed game " +
			"as a launch entry in the Apollo/Sunshine apps.json file.\n\n" +
			"Extra PATH arguments are treated as additional --steam-path values.",
		Version:       AppVersion,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.SteamPaths = append(flags.SteamPaths, args...)
			return Run(cmd.Context(), env, *flags)
		},
	}
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	f := cmd.Flags()
	f.StringArrayVar(&flags.SteamPaths, "steam-path", nil,
		"Steam library root to scan (repeatable, skips auto-detection)")
	f.StringVar(&flags.ConfigPath, "config", "",
		"apps.json file, or a directory that holds apps.json")
	f.BoolVar(&flags.NoVirtualDisplay, "no-virtual-display", false,
		"do not enable the virtual display on added games")
	f.BoolVarP(&flags.Verbose, "verbose", "v", false, "show debug output")
	f.BoolVar(&flags.DryRun, "dry-run", false, "scan and merge but do not write apps.json")
	f.BoolVar(&flags.List, "list", false, "print the scanned games and exit")
	f.StringVar(&flags.Format, "format", FormatYAML, "output format for --list: yaml, csv or json")
	f.BoolVar(&flags.IncludeShortcuts, "include-shortcuts", false,
		"also add non-Steam shortcuts registered in Steam")
	f.BoolVar(&flags.NoBackup, "no-backup", false, "do not back up apps.json before replacing it")
	f.StringVar(&flags.SettingsPath, "settings", "", "tool settings file")

	return cmd
}
