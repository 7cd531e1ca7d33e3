// Copyright (c) 2025 [`safarimarks` contributors]
// (https://github.com/simtools/safarimarks/graphs/contributors).
// All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// This file is part of safarimarks.
//
// safarimarks is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// safarimarks is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with safarimarks.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// Overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const usageLine = "usage: safarimarks [add|rm|list] [-u url] [-l locale] ..."

func newApp() *cli.Command {
	app := &cli.Command{}
	app.Name = "safarimarks"
	app.Version = version
	app.Usage = "edit the Safari bookmarks bundled with iOS Simulator SDKs"
	app.Description = `
safarimarks edits the StaticBookmarks plist inside every installed iOS
Simulator SDK, so that freshly-reset simulators come up with your own
Safari bookmarks instead of the stock ones.

Edits apply to every SDK version that carries a bookmark file for the
selected locale. The first edit of a file leaves the pristine copy next
to it with a .orig suffix.

Usage examples:
  safarimarks list                           # show bookmarks per SDK
  safarimarks add "Dev portal" -u http://dev.local
  echo http://dev.local | safarimarks add "Dev portal"
  safarimarks rm "Dev portal" -lfr_FR`
	app.UsageText = usageLine
	app.HideVersion = true

	app.Commands = []*cli.Command{
		newAddCmd(),
		newRmCmd(),
		newListCmd(),
	}

	// a bare or unrecognized invocation prints the short usage; this is
	// deliberately not an error
	app.Action = func(ctx context.Context, cmd *cli.Command) error {
		fmt.Fprintln(os.Stderr, usageLine)
		return nil
	}

	app.CommandNotFound = func(ctx context.Context, cmd *cli.Command, name string) {
		fmt.Fprintln(os.Stderr, usageLine)
	}

	app.ExitErrHandler = func(ctx context.Context, cmd *cli.Command, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		} else {
			os.Exit(0)
		}
	}

	return app
}

var (
	// flags that consume the following token as their value
	valueFlags = map[string]bool{
		"-l": true, "--locale": true,
		"-u": true, "--url": true,
		"--sdk-root": true,
	}

	// short flags accepted joined to their value, -len_US style
	joinedFlags = map[string]bool{"-l": true, "-u": true}

	commandNames = map[string]bool{"add": true, "rm": true, "list": true}
)

// normalizeArgs rewrites joined short-flag tokens (-lVALUE -> -l VALUE)
// and moves the command name in front of any flags preceding it, so the
// locale and url flags may appear anywhere on the line.
func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, args[0])

	var cmd string
	rest := make([]string, 0, len(args))
	wantValue := false

	for _, arg := range args[1:] {
		if len(arg) > 2 && strings.HasPrefix(arg, "-") &&
			!strings.HasPrefix(arg, "--") && joinedFlags[arg[:2]] {
			rest = append(rest, arg[:2], arg[2:])
			wantValue = false
			continue
		}

		// first bare token naming a command selects it; later bare
		// tokens stay positional
		if cmd == "" && !wantValue && !strings.HasPrefix(arg, "-") && commandNames[arg] {
			cmd = arg
			continue
		}

		wantValue = valueFlags[arg]
		rest = append(rest, arg)
	}

	if cmd != "" {
		out = append(out, cmd)
	}

	return append(out, rest...)
}

func main() {
	app := newApp()

	if err := app.Run(context.Background(), normalizeArgs(os.Args)); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
