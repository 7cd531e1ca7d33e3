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

// Package bookmarks loads, edits and persists one Safari bookmark plist
// at a time. Whatever serialization variant (binary or XML) a file was
// read in, it is written back in.
package bookmarks

import (
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
	"howett.net/plist"

	"github.com/simtools/safarimarks"
	"github.com/simtools/safarimarks/internal/utils"
	"github.com/simtools/safarimarks/pkg/logging"
)

var log = logging.GetLogger("marks")

// BackupExt is appended to a bookmark file's path to name its one-time
// safety backup.
const BackupExt = ".orig"

// Store is the decoded contents of one bookmark plist. An edit session
// is load, mutate, save; a Store is never reloaded or saved twice within
// one invocation.
type Store struct {
	Items []safarimarks.Item

	path   string
	format int
	mode   fs.FileMode
}

// Load reads and decodes the bookmark plist at path. The detected
// serialization format and the file's permission bits are remembered so
// Save can reproduce both.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var items []safarimarks.Item
	format, err := plist.Unmarshal(raw, &items)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}

	log.Debugf("loaded %d items from <%s> (format %d)", len(items), path, format)

	return &Store{
		Items:  items,
		path:   path,
		format: format,
		mode:   info.Mode().Perm(),
	}, nil
}

// Path returns the file this store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Format returns the plist format token observed at load time (see
// plist.XMLFormat, plist.BinaryFormat).
func (s *Store) Format() int {
	return s.format
}

// Prepend inserts a new entry at the front of the list. New entries
// always use the canonical Title/URL keys; existing legacy-keyed items
// are left as they are.
func (s *Store) Prepend(title string, url string) {
	s.Items = append([]safarimarks.Item{safarimarks.NewItem(title, url)}, s.Items...)
}

// RemoveByTitle removes the first item whose canonical Title exactly
// equals title and reports whether a removal happened. Duplicates past
// the first match are kept.
func (s *Store) RemoveByTitle(title string) bool {
	for i, item := range s.Items {
		if item.Title() == title {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return true
		}
	}

	return false
}

// Writable reports whether the current process may write the target
// file. Checked up front so a batch fails before any partial write.
func (s *Store) Writable() bool {
	return unix.Access(s.path, unix.W_OK) == nil
}

// Save writes the item list back to the original path, in the same
// format it was loaded in. The very first save of a path puts a copy of
// the untouched file next to it as <path>.orig; once that sidecar
// exists it is never overwritten.
func (s *Store) Save() error {
	if err := s.backup(); err != nil {
		return err
	}

	data, err := plist.Marshal(s.Items, s.format)
	if err != nil {
		return &EncodeError{Path: s.path, Err: err}
	}

	return os.WriteFile(s.path, data, s.mode)
}

func (s *Store) backup() error {
	orig := s.path + BackupExt

	exists, err := utils.FileExists(orig)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	log.Debugf("backing up <%s> to <%s>", s.path, orig)

	return utils.CopyFileToDst(s.path, orig)
}
