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
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/steam"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML = "yaml"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

func validFormat(format string) error {
	switch format {
	case FormatYAML, FormatCSV, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q (want yaml, csv or json)", ErrUnknownFormat, format)
	}
}

// writeRecords prints scanned games for --list.
func writeRecords(w io.Writer, records []steam.GameRecord, format string) error {
	if records == nil {
		records = []steam.GameRecord{}
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
	case FormatCSV:
		if err := gocsv.Marshal(records, w); err != nil {
			return fmt.Errorf("failed to encode csv: %w", err)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	default:
		return validFormat(format)
	}
	return nil
}
