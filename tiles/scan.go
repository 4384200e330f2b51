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

package tiles

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

// Ext is the file name extension of tile images.
const Ext = ".png"

// Scan lists the tile images in dir, in print order.
// Only regular files, or symbolic links to regular files, are considered.
// Files which are not PNG files, or whose names are not valid tile names,
// are silently ignored.  Subdirectories are not searched.
func Scan(dir string) ([]*Tile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var res []*Tile
	for _, entry := range entries {
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), Ext) {
			continue
		}
		path := filepath.Join(dir, name)
		if !isRegular(path, entry) {
			continue
		}
		tile := New(path)
		if tile.ID == nil {
			continue
		}
		res = append(res, tile)
	}
	Sort(res)
	return res, nil
}

// isRegular reports whether entry is a regular file, following symbolic
// links.  Dangling links are not regular files.
func isRegular(path string, entry fs.DirEntry) bool {
	mode := entry.Type()
	if mode&fs.ModeSymlink != 0 {
		fi, err := os.Stat(path)
		if err != nil {
			return false
		}
		mode = fi.Mode()
	}
	return mode.IsRegular()
}

// Sort puts tiles into print order, as defined by [Compare].
func Sort(tiles []*Tile) {
	slices.SortFunc(tiles, Compare)
}
