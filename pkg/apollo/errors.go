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

package apollo

import "errors"

var (
	// ErrConfigLoad means apps.json exists but could not be read.
	ErrConfigLoad = errors.New("failed to load apps config")
	// ErrConfigCorrupt means apps.json is not valid JSON or not a valid
	// app list. The file is never overwritten in that case.
	ErrConfigCorrupt = errors.New("apps config is corrupt")
	// ErrWrite means the updated apps.json could not be written.
	ErrWrite = errors.New("failed to write apps config")
)
