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

// Package pdf implements a minimal writer for PDF files.
//
// A [Writer] collects indirect objects in memory and assigns them
// consecutive object numbers.  Forward references are created using
// [Writer.Alloc] and filled in later using [Writer.Set].  The final file,
// including the cross-reference table, is produced by [Writer.WriteTo].
//
// Only the features needed for pages of images are implemented: there is
// no support for fonts, annotations, encryption, object streams or
// incremental updates.
package pdf
