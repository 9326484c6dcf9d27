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
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/apollo"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/config"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/helpers"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/steam"
)

// options is the result of combining flags with the settings file.
// Explicit flags win.
type options struct {
	steamPaths       []string
	excludeAppIDs    []string
	appsPath         string
	format           string
	virtualDisplay   bool
	verbose          bool
	dryRun           bool
	list             bool
	includeShortcuts bool
	includeTools     bool
	backup           bool
}

func resolveOptions(env Env, flags Flags, cfg *config.Instance) options {
	opts := options{
		steamPaths:       flags.SteamPaths,
		excludeAppIDs:    cfg.ExcludeAppIDs(),
		appsPath:         helpers.ResolveAppsPath(env.Fs, flags.ConfigPath, cfg.AppsPath()),
		format:           flags.Format,
		virtualDisplay:   cfg.VirtualDisplay() && !flags.NoVirtualDisplay,
		verbose:          flags.Verbose,
		dryRun:           flags.DryRun,
		list:             flags.List,
		includeShortcuts: cfg.IncludeShortcuts() || flags.IncludeShortcuts,
		includeTools:     cfg.IncludeTools(),
		backup:           cfg.Backup() && !flags.NoBackup,
	}
	if len(opts.steamPaths) == 0 {
		opts.steamPaths = cfg.LibraryPaths()
	}
	return opts
}

// Run executes one scan, merge and write pass.
func Run(ctx context.Context, env Env, flags Flags) error {
	if err := validFormat(flags.Format); err != nil {
		return err
	}

	logOpts := helpers.LogOptions{Console: env.Stderr, Dir: env.LogDir, Verbose: flags.Verbose}
	if err := env.InitLogging(logOpts); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Read-only runs leave the settings file alone.
	loadConfig := config.NewConfig
	if flags.List || flags.DryRun {
		loadConfig = config.LoadConfig
	}
	cfg, err := loadConfig(env.Fs, env.ConfigDir, flags.SettingsPath, config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if cfg.DebugLogging() && !flags.Verbose {
		logOpts.Debug = true
		if err := env.InitLogging(logOpts); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
	}

	opts := resolveOptions(env, flags, cfg)
	out := printer{w: env.Stdout, verbose: opts.verbose}
	log.Info().
		Str("version", AppVersion).
		Strs("steam_paths", opts.steamPaths).
		Str("apps_path", opts.appsPath).
		Bool("dry_run", opts.dryRun).
		Msg("starting")

	records, err := scan(env, opts, out)
	if err != nil {
		return err
	}

	if opts.list {
		return writeRecords(env.Stdout, records, opts.format)
	}

	if len(records) == 0 {
		out.Warn("No installed Steam games found.")
	} else {
		out.Info("Found %d installed games.", len(records))
	}

	store := apollo.NewStore(env.Fs, opts.appsPath, apollo.StoreOptions{
		Clock:  env.Clock,
		Backup: opts.backup,
	})
	doc, err := store.Load()
	if err != nil {
		return err
	}

	report := apollo.Merge(doc, records, apollo.MergeOptions{
		NewUUID:        env.NewUUID,
		VirtualDisplay: opts.virtualDisplay,
	})
	printReport(out, report, opts)

	if !report.Changed() {
		out.Plain("No new games to add, %s is up to date.", opts.appsPath)
		return nil
	}

	if opts.dryRun {
		out.Warn("Dry run: %d games would be added and %d updated. %s was not written.",
			len(report.Added), len(report.Updated), opts.appsPath)
		return nil
	}

	backup, err := store.Save(doc)
	if err != nil {
		return err
	}
	if backup != "" {
		out.Debug("Backup written to %s", backup)
	}
	out.Info("Configuration saved to %s", opts.appsPath)
	out.Plain("Total games added: %d", len(report.Added))
	if len(report.Updated) > 0 {
		out.Plain("Total games updated: %d", len(report.Updated))
	}
	out.Plain("Virtual display: %s", enabled(opts.virtualDisplay))

	if env.HostRunning != nil && env.HostRunning(ctx) {
		out.Warn("Apollo/Sunshine is running. Restart it to load the new games.")
	} else {
		out.Plain("Start Apollo/Sunshine to see the new games.")
	}
	return nil
}

// scan locates the libraries and collects the records to register.
func scan(env Env, opts options, out printer) ([]steam.GameRecord, error) {
	locator := steam.NewLocator(env.Fs, env.Locator)
	roots, err := locator.LibraryRoots(opts.steamPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to locate Steam libraries: %w", err)
	}
	out.Debug("Scanning %d Steam libraries", len(roots))

	artworkRoots := slices.Clone(roots)
	if steamDir := locator.FindSteamDir(); steamDir != "" && !slices.Contains(artworkRoots, steamDir) {
		artworkRoots = append(artworkRoots, steamDir)
	}

	scanner := steam.NewScanner(env.Fs, artworkRoots...)
	records := scanner.ScanAll(roots)

	if opts.includeShortcuts {
		for _, root := range artworkRoots {
			records = slices.AppendSeq(records, scanner.ScanShortcuts(root))
		}
	}

	return steam.Filter(records, steam.FilterOptions{
		ExcludeAppIDs: opts.excludeAppIDs,
		IncludeTools:  opts.includeTools,
	}), nil
}

func printReport(out printer, report apollo.Report, opts options) {
	vd := ""
	if opts.virtualDisplay {
		vd = " [Virtual Display Enabled]"
	}
	for _, m := range report.Added {
		out.Info("Added: %s%s", m.Record.Name, vd)
	}
	for _, m := range report.Updated {
		out.Info("Updated: %s", m.Record.Name)
	}
	for _, m := range report.Unchanged {
		out.Debug("Skipped (already exists): %s", m.Entry)
	}
	for _, m := range report.Similar {
		out.Warn("Added %q looks like existing entry %q (%.0f%% similar), check for duplicates.",
			m.Record.Name, m.Entry, m.Similarity*100)
	}
}
