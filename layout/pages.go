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

// Package layout arranges tile images on pages.
//
// Every page shows up to [RowsPerPage] different tiles, one per row.  Each
// tile is repeated [Cols] times across its row, so that a printed page can
// be cut into a set of tiles with duplicates.  All measurements are fixed
// and given in millimeters.
package layout

import (
	"bytes"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/tilesheet/graphics"
	"seehuhn.de/go/tilesheet/pdf"
)

// Page geometry, in millimeters.
const (
	PageWidth  = 100.0
	PageHeight = 148.0

	CellWidth  = 17.0
	CellHeight = 24.0
	Gap        = 4.0

	MarginTop  = 20.0
	MarginLeft = 10.0
)

// Grid capacity of a page.
const (
	Cols        = 4
	RowsPerPage = 4
)

// Mm converts a length from millimeters to PDF points.
func Mm(x float64) float64 {
	return x * 72 / 25.4
}

// Tile is an image to be placed on a page.
type Tile struct {
	Label string
	Image pdf.Reference
}

// Page is the content of a single page.
type Page struct {
	// Content is the content stream of the page.
	Content []byte

	// Resources is the resource dictionary of the page.
	Resources pdf.Dict

	// Tiles lists the labels of the tiles shown on the page.
	Tiles []string
}

// MediaBox returns the page size in PDF points.
func MediaBox() rect.Rect {
	return rect.Rect{URx: Mm(PageWidth), URy: Mm(PageHeight)}
}

// CellBox returns the area covered by the given grid cell, in PDF points.
// Rows are counted from the top of the page, columns from the left.
func CellBox(row, col int) rect.Rect {
	x := MarginLeft + float64(col)*(CellWidth+Gap)
	top := MarginTop + float64(row)*(CellHeight+Gap)
	y := PageHeight - top - CellHeight
	return rect.Rect{
		LLx: Mm(x),
		LLy: Mm(y),
		URx: Mm(x + CellWidth),
		URy: Mm(y + CellHeight),
	}
}

// GridBox returns the area covered by a full grid of cells, including the
// gaps between cells.
func GridBox() rect.Rect {
	topLeft := CellBox(0, 0)
	bottomRight := CellBox(RowsPerPage-1, Cols-1)
	return rect.Rect{
		LLx: topLeft.LLx,
		LLy: bottomRight.LLy,
		URx: bottomRight.URx,
		URy: topLeft.URy,
	}
}

// Paginate breaks the list of tiles into pages.  If showGuides is true,
// alignment guides are drawn on top of the tiles.
func Paginate(tiles []Tile, showGuides bool) []*Page {
	var pages []*Page
	for start := 0; start < len(tiles); start += RowsPerPage {
		end := min(start+RowsPerPage, len(tiles))
		pages = append(pages, makePage(tiles[start:end], showGuides))
	}
	return pages
}

func makePage(tiles []Tile, showGuides bool) *Page {
	buf := &bytes.Buffer{}
	w := graphics.NewWriter(buf)

	page := &Page{}
	for row, tile := range tiles {
		for col := 0; col < Cols; col++ {
			box := CellBox(row, col)
			w.PushGraphicsState()
			w.Transform(matrix.Scale(box.Dx(), box.Dy()).Mul(matrix.Translate(box.LLx, box.LLy)))
			w.DrawXObject(tile.Image)
			w.PopGraphicsState()
		}
		page.Tiles = append(page.Tiles, tile.Label)
	}
	if showGuides {
		drawGuides(w)
	}

	// Content is written to memory and all operators are used in valid
	// order, so no error can occur here.
	if err := w.Close(); err != nil {
		panic("layout: " + err.Error())
	}

	page.Content = buf.Bytes()
	page.Resources = w.Resources.AsDict()
	return page
}
