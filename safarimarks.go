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

// Package safarimarks holds the shared bookmark types used across the CLI
// and the plist store.
package safarimarks

// Bookmark plist keys. Older simulator images ship files keyed with the
// iPhone* variants; those are read for display only and never written.
const (
	KeyTitle = "Title"
	KeyURL   = "URL"

	KeyLegacyTitle = "iPhoneTitle"
	KeyLegacyURL   = "iPhoneURL"
)

// Item is a single Safari bookmark entry. Real bookmark files carry
// metadata keys beyond Title/URL, so Item is an open mapping: whatever
// was decoded is kept verbatim and survives an edit round trip.
type Item map[string]any

// NewItem builds an entry with the canonical Title/URL keys.
func NewItem(title, url string) Item {
	return Item{KeyTitle: title, KeyURL: url}
}

// Title returns the canonical title, or "" when absent or not a string.
// Legacy keys are deliberately not consulted here; matching (e.g. for
// removal) only ever targets the canonical key.
func (it Item) Title() string {
	title, _ := it[KeyTitle].(string)
	return title
}

// URL returns the canonical url, or "" when absent or not a string.
func (it Item) URL() string {
	url, _ := it[KeyURL].(string)
	return url
}

// DisplayTitle returns the title for listing purposes, falling back to
// the legacy iPhoneTitle key.
func (it Item) DisplayTitle() string {
	if title := it.Title(); title != "" {
		return title
	}
	title, _ := it[KeyLegacyTitle].(string)
	return title
}

// DisplayURL returns the url for listing purposes, falling back to the
// legacy iPhoneURL key.
func (it Item) DisplayURL() string {
	if url := it.URL(); url != "" {
		return url
	}
	url, _ := it[KeyLegacyURL].(string)
	return url
}
