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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/helpers/syncutil"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	CfgEnv        = "APOLLO_GAME_FINDER_CFG"
	CfgFile       = "settings.toml"
)

// ErrInvalidSettings means the settings file exists but cannot be used.
var ErrInvalidSettings = errors.New("invalid settings")

type Values struct {
	Steam        Steam  `toml:"steam"`
	Apollo       Apollo `toml:"apollo"`
	ConfigSchema int    `toml:"config_schema"`
	DebugLogging bool   `toml:"debug_logging"`
}

type Steam struct {
	LibraryPaths     []string `toml:"library_paths,multiline" validate:"dive,required"`
	ExcludeAppIDs    []string `toml:"exclude_app_ids" validate:"dive,number"`
	IncludeShortcuts bool     `toml:"include_shortcuts"`
	IncludeTools     bool     `toml:"include_tools"`
}

type Apollo struct {
	AppsPath       string `toml:"apps_path"`
	VirtualDisplay bool   `toml:"virtual_display"`
	Backup         bool   `toml:"backup"`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Steam: Steam{
		LibraryPaths:  []string{},
		ExcludeAppIDs: []string{},
	},
	Apollo: Apollo{
		VirtualDisplay: true,
		Backup:         true,
	},
}

type Instance struct {
	fs       afero.Fs
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

// NewConfig loads settings from cfgPath. An empty cfgPath falls back to
// the CfgEnv variable and then to configDir/settings.toml. A missing file
// is created with defaults; failing to create it is not fatal.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(afs afero.Fs, configDir, cfgPath string, defaults Values) (*Instance, error) {
	return newConfig(afs, configDir, cfgPath, defaults, true)
}

// LoadConfig is NewConfig without the write: a missing file yields the
// defaults and leaves the disk as it is.
//
//nolint:gocritic // config struct copied for immutability
func LoadConfig(afs afero.Fs, configDir, cfgPath string, defaults Values) (*Instance, error) {
	return newConfig(afs, configDir, cfgPath, defaults, false)
}

//nolint:gocritic // config struct copied for immutability
func newConfig(afs afero.Fs, configDir, cfgPath string, defaults Values, writeDefaults bool) (*Instance, error) {
	if cfgPath == "" {
		cfgPath = os.Getenv(CfgEnv)
		log.Debug().Msgf("env config path: %s", cfgPath)
	}
	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := &Instance{
		fs:       afs,
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := afs.Stat(cfgPath); errors.Is(err, fs.ErrNotExist) {
		if !writeDefaults {
			log.Debug().Str("path", cfgPath).Msg("no settings file, using defaults")
			return cfg, nil
		}
		log.Info().Str("path", cfgPath).Msg("saving new default settings to disk")
		if err := cfg.Save(); err != nil {
			log.Warn().Err(err).Msg("could not write default settings, using defaults")
		}
		return cfg, nil
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := afero.ReadFile(c.fs, c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	// Start with defaults, then unmarshal file values on top.
	newVals := c.defaults
	if err := toml.Unmarshal(data, &newVals); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidSettings, c.cfgPath, err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return fmt.Errorf("%w: schema version mismatch", ErrInvalidSettings)
	}

	if err := validate(&newVals); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidSettings, c.cfgPath, err)
	}

	c.vals = newVals
	log.Debug().Str("path", c.cfgPath).Msg("loaded settings")
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := c.fs.MkdirAll(filepath.Dir(c.cfgPath), 0o750); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

func validate(vals *Values) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(vals)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validation failed: %w", err)
	}
	errMsgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		errMsgs = append(errMsgs, formatValidationError(fe))
	}
	return errors.New(strings.Join(errMsgs, "; "))
}

func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "number":
		return fmt.Sprintf("%s: %q is not a numeric app id", fe.Namespace(), fe.Value())
	case "required":
		return fmt.Sprintf("%s must not be empty", fe.Namespace())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Namespace(), fe.Tag())
	}
}

func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// LibraryPaths returns the configured library roots. Empty means
// auto-detect.
func (c *Instance) LibraryPaths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Steam.LibraryPaths)
}

func (c *Instance) ExcludeAppIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Steam.ExcludeAppIDs)
}

func (c *Instance) IncludeShortcuts() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Steam.IncludeShortcuts
}

func (c *Instance) IncludeTools() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Steam.IncludeTools
}

// AppsPath returns the configured apps.json location, or "" for the
// platform default.
func (c *Instance) AppsPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Apollo.AppsPath
}

func (c *Instance) VirtualDisplay() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Apollo.VirtualDisplay
}

func (c *Instance) Backup() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Apollo.Backup
}
