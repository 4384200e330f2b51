// seehuhn.de/go/tilesheet - print sheets of mahjong tiles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package tiles finds tile images in a directory and puts them into print
// order.
//
// Tile images are named after the tile they show, using a number followed
// by a suit letter: "1m" to "9m" (characters), "1p" to "9p" (circles),
// "1s" to "9s" (bamboo) and "1z" to "7z" (honors).
package tiles

import (
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Suit is one of the four tile suits.
type Suit byte

// The four suits, in print order.
const (
	Man   Suit = 'm'
	Pin   Suit = 'p'
	Sou   Suit = 's'
	Honor Suit = 'z'
)

func (s Suit) String() string {
	return string(rune(s))
}

var suitOrder = map[Suit]int{
	Man:   0,
	Pin:   1,
	Sou:   2,
	Honor: 3,
}

// honorOrder puts the dragons (5z, 6z, 7z) before the winds.
var honorOrder = map[int]int{
	5: 0,
	6: 1,
	7: 2,
	1: 3,
	2: 4,
	3: 5,
	4: 6,
}

// Identity describes which tile an image shows.
type Identity struct {
	Rank int
	Suit Suit
}

func (id Identity) String() string {
	return strconv.Itoa(id.Rank) + id.Suit.String()
}

// Tile is an image file found in the input directory.
type Tile struct {
	Path  string
	Label string

	// ID is nil if the label is not a valid tile name.
	ID *Identity
}

// Parse parses a tile name like "5z".  The name must consist of one or more
// ASCII digits, followed by exactly one suit letter.
func Parse(label string) (*Identity, bool) {
	n := len(label)
	if n < 2 {
		return nil, false
	}
	suit := Suit(label[n-1])
	if _, ok := suitOrder[suit]; !ok {
		return nil, false
	}
	digits := label[:n-1]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, false
		}
	}
	rank, err := strconv.Atoi(digits)
	if err != nil {
		return nil, false
	}
	return &Identity{Rank: rank, Suit: suit}, true
}

// New returns the catalog entry for the file at path.
// The label is the file name without extension, in Unicode NFKC form.
// This maps full-width digits and letters, as in "１ｍ.png", to ASCII.
func New(path string) *Tile {
	base := filepath.Base(path)
	label := norm.NFKC.String(strings.TrimSuffix(base, filepath.Ext(base)))
	id, _ := Parse(label)
	return &Tile{Path: path, Label: label, ID: id}
}

// Compare defines the print order of tiles.  It returns a negative number
// if a comes before b, a positive number if a comes after b, and zero if
// both have the same label and path.
//
// Tiles are ordered by suit (m, p, s, z) and then by rank, except that
// within the honors 5z, 6z and 7z come before 1z to 4z.  Tiles without a
// valid name come last.
func Compare(a, b *Tile) int {
	switch {
	case a.ID != nil && b.ID == nil:
		return -1
	case a.ID == nil && b.ID != nil:
		return 1
	case a.ID != nil:
		if c := suitOrder[a.ID.Suit] - suitOrder[b.ID.Suit]; c != 0 {
			return c
		}
		if ka, kb := rankKey(a.ID), rankKey(b.ID); ka != kb {
			if ka < kb {
				return -1
			}
			return 1
		}
	}
	if c := strings.Compare(a.Label, b.Label); c != 0 {
		return c
	}
	return strings.Compare(a.Path, b.Path)
}

func rankKey(id *Identity) int {
	if id.Suit == Honor {
		if k, ok := honorOrder[id.Rank]; ok {
			return k - len(honorOrder)
		}
	}
	return id.Rank
}
