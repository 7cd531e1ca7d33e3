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
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/simtools/safarimarks/internal/bookmarks"
	"github.com/simtools/safarimarks/internal/sim"
)

// commands are built fresh per invocation, flag state is not shared
// between runs
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "locale",
			Aliases: []string{"l"},
			Value:   sim.DefaultLocale,
			Usage:   "target the bookmark file for `LOCALE`",
		},
		&cli.StringFlag{
			Name:        "sdk-root",
			Value:       sim.DefaultSDKRoot,
			DefaultText: "Xcode simulator SDKs",
			Usage:       "simulator SDK root `PATH`",
		},
		&cli.BoolFlag{
			Name:    "dry-run",
			Aliases: []string{"n"},
			Usage:   "report what would be edited without writing",
		},
	}
}

func newAddCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "prepend a bookmark to every matching file",
		ArgsUsage: "TITLE",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "bookmark `URL` (read from stdin when piped and omitted)",
			},
		}, commonFlags()...),
		Action: addBookmark,
	}
}

func newRmCmd() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "remove a bookmark by title from every matching file",
		ArgsUsage: "TITLE",
		Flags:     commonFlags(),
		Action:    removeBookmark,
	}
}

func newListCmd() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "show bookmarks per located file",
		Flags:  commonFlags(),
		Action: listBookmarks,
	}
}

func locate(cmd *cli.Command) (sim.Locator, []string, error) {
	loc := sim.New(cmd.String("sdk-root"))
	files, err := loc.BookmarkFiles(cmd.String("locale"))
	return loc, files, err
}

func addBookmark(ctx context.Context, cmd *cli.Command) error {
	title := strings.TrimSpace(cmd.Args().First())
	if title == "" {
		return errors.New("add: missing bookmark title")
	}

	url := strings.TrimSpace(cmd.String("url"))
	if url == "" && !isatty.IsTerminal(os.Stdin.Fd()) {
		url = readURLFromStdin()
	}
	if url == "" {
		return errors.New("add: missing bookmark url (pass -u or pipe it on stdin)")
	}

	loc, files, err := locate(cmd)
	if err != nil {
		return err
	}

	edited := 0
	for _, path := range files {
		store, err := bookmarks.Load(path)
		if err != nil {
			return err
		}
		if !store.Writable() {
			return fmt.Errorf("%s: not writable by current user", loc.ShortPath(path))
		}

		store.Prepend(title, url)

		if cmd.Bool("dry-run") {
			fmt.Printf("Would edit %s\n", loc.ShortPath(path))
			edited++
			continue
		}

		if err := store.Save(); err != nil {
			return err
		}
		fmt.Printf("Edited %s\n", loc.ShortPath(path))
		edited++
	}

	if edited == 0 {
		return fmt.Errorf("no bookmarks edited for locale %s", cmd.String("locale"))
	}

	return nil
}

func removeBookmark(ctx context.Context, cmd *cli.Command) error {
	title := strings.TrimSpace(cmd.Args().First())
	if title == "" {
		return errors.New("rm: missing bookmark title")
	}

	loc, files, err := locate(cmd)
	if err != nil {
		return err
	}

	edited := 0
	for _, path := range files {
		store, err := bookmarks.Load(path)
		if err != nil {
			return err
		}
		if !store.Writable() {
			return fmt.Errorf("%s: not writable by current user", loc.ShortPath(path))
		}

		if !store.RemoveByTitle(title) {
			continue
		}

		if cmd.Bool("dry-run") {
			fmt.Printf("Would edit %s\n", loc.ShortPath(path))
			edited++
			continue
		}

		if err := store.Save(); err != nil {
			return err
		}
		fmt.Printf("Edited %s\n", loc.ShortPath(path))
		edited++
	}

	if edited == 0 {
		return fmt.Errorf("no bookmarks edited: no entry titled %q", title)
	}

	return nil
}

func listBookmarks(ctx context.Context, cmd *cli.Command) error {
	loc, files, err := locate(cmd)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no bookmark files found for locale %s", cmd.String("locale"))
	}

	for i, path := range files {
		store, err := bookmarks.Load(path)
		if err != nil {
			return err
		}

		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s:\n", loc.ShortPath(path))

		for _, item := range store.Items {
			title := item.DisplayTitle()
			url := item.DisplayURL()
			// items with no usable title/url pair are skipped, the
			// stock files carry a few separator-like entries
			if title == "" || url == "" {
				continue
			}
			fmt.Printf("  %s  [%s]\n", title, url)
		}
	}

	return nil
}

func readURLFromStdin() string {
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text())
	}

	return ""
}
