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

package safarimarks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_DisplayFallback(t *testing.T) {
	tests := []struct {
		name      string
		item      Item
		wantTitle string
		wantURL   string
	}{
		{"canonical", Item{"Title": "Apple", "URL": "http://apple.com"}, "Apple", "http://apple.com"},
		{"legacy", Item{"iPhoneTitle": "Apple", "iPhoneURL": "http://apple.com"}, "Apple", "http://apple.com"},
		{"canonical_wins", Item{"Title": "A", "iPhoneTitle": "B", "URL": "u1", "iPhoneURL": "u2"}, "A", "u1"},
		{"mixed", Item{"Title": "A", "iPhoneURL": "u2"}, "A", "u2"},
		{"empty", Item{}, "", ""},
		{"non_string_values", Item{"Title": 42, "URL": true}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantTitle, tt.item.DisplayTitle())
			assert.Equal(t, tt.wantURL, tt.item.DisplayURL())
		})
	}
}

func TestItem_TitleCanonicalOnly(t *testing.T) {
	legacy := Item{"iPhoneTitle": "Apple", "iPhoneURL": "http://apple.com"}

	// Title is the matching key for removal, legacy titles must not match
	assert.Equal(t, "", legacy.Title())
	assert.Equal(t, "Apple", legacy.DisplayTitle())
}

func TestNewItem(t *testing.T) {
	item := NewItem("Apple", "http://apple.com")

	assert.Equal(t, Item{"Title": "Apple", "URL": "http://apple.com"}, item)
}
