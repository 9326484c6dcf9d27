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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/cli"
	"github.com/sebagsm/ApolloSunshineGameFinder/pkg/helpers"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer func() {
		if err := helpers.CloseLogging(); err != nil {
			log.Warn().Err(err).Msg("error closing log file")
		}
	}()

	env := cli.DefaultEnv()
	if err := cli.NewRootCmd(env).ExecuteContext(ctx); err != nil {
		cli.PrintError(env.Stderr, err)
		return err
	}
	return nil
}
