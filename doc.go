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

// Package tilesheet converts a directory of mahjong tile images into a PDF
// file which can be printed and cut into a set of tiles.
//
// The input directory must contain PNG images named after the tiles they
// show, for example "1m.png" for the one of characters or "5z.png" for the
// white dragon.  Files with other names are ignored.  Tiles are printed in
// the conventional order: characters (m), dots (p), bamboos (s), then honors
// (z).  Every page shows four different tiles, each repeated four times.
//
// Use [Create] to write the PDF file to disk, or [Build] to obtain the file
// contents in memory.
package tilesheet
