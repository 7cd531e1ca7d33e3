//
// Copyright (c) 2025 [`safarimarks` contributors]
// (https://github.com/simtools/safarimarks/graphs/contributors).
//
// All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// This file is part of safarimarks.
//
// safarimarks is free software: you can redistribute it and/or modify it under
// the terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option) any
// later version.
//
// safarimarks is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR
// A PARTICULAR PURPOSE.  See the GNU Affero General Public License for more
// details.
//
// You should have received a copy of the GNU Affero General Public License along
// with safarimarks.  If not, see <http://www.gnu.org/licenses/>.

// Package sim discovers per-locale Safari bookmark files across the
// installed iOS Simulator SDKs. The filesystem is the source of truth:
// there is no registry, every call re-reads the SDK root.
package sim

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/simtools/safarimarks/internal/utils"
	"github.com/simtools/safarimarks/pkg/logging"
)

var log = logging.GetLogger("sim")

const (
	// DefaultSDKRoot is where Xcode installs simulator platform versions.
	DefaultSDKRoot = "/Developer/Platforms/iPhoneSimulator.platform/Developer/SDKs"

	// DefaultLocale selects the bookmark file edited when no locale flag
	// is given.
	DefaultLocale = "en_US"
)

// bookmarkFileName is the per-locale Safari bookmarks plist inside an
// SDK's MobileSafari bundle.
func bookmarkFileName(locale string) string {
	return fmt.Sprintf("StaticBookmarks-%s.plist", locale)
}

// Locator scans one SDK root for bookmark files.
type Locator struct {
	Root string
}

// New returns a Locator over root, defaulting to the Xcode SDK root.
func New(root string) Locator {
	if root == "" {
		root = DefaultSDKRoot
	}
	return Locator{Root: root}
}

// SDKs lists the simulator platform versions installed under the root,
// skipping hidden entries. A missing root is a normal condition (no
// simulator installed) and yields an empty list, not an error.
func (l Locator) SDKs() ([]string, error) {
	entries, err := os.ReadDir(l.Root)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("sdk root <%s> does not exist", l.Root)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sdks []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		sdks = append(sdks, entry.Name())
	}

	return sdks, nil
}

// BookmarkFiles returns, in SDK enumeration order, the bookmark plists
// that exist on disk for the given locale. An empty result is not an
// error; the caller decides what that means.
func (l Locator) BookmarkFiles(locale string) ([]string, error) {
	sdks, err := l.SDKs()
	if err != nil {
		return nil, err
	}

	var files []string
	for _, sdk := range sdks {
		candidate := filepath.Join(
			l.Root, sdk,
			"Applications", "MobileSafari.app",
			bookmarkFileName(locale),
		)

		exists, err := utils.FileExists(candidate)
		if err != nil {
			return nil, err
		}
		if exists {
			log.Debugf("found bookmark file <%s>", candidate)
			files = append(files, candidate)
		}
	}

	return files, nil
}

// ShortPath strips the SDK root prefix for display.
func (l Locator) ShortPath(path string) string {
	short := strings.TrimPrefix(path, l.Root)
	return strings.TrimPrefix(short, string(os.PathSeparator))
}
