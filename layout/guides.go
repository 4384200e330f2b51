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

package layout

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tilesheet/graphics"
)

// GuideWidth is the line width of the alignment guides, in PDF points.
const GuideWidth = 0.5

// Colors of the alignment guides, as RGB values.
var (
	CenterLineColor = [3]float64{1, 0, 0}
	GridFrameColor  = [3]float64{0, 0, 1}
)

// drawGuides draws lines through the center of the page, and a frame
// around the tile grid.  These can be used to check the alignment of the
// printout.
func drawGuides(w *graphics.Writer) {
	page := MediaBox()
	cx := (page.LLx + page.URx) / 2
	cy := (page.LLy + page.URy) / 2

	w.PushGraphicsState()
	w.SetLineWidth(GuideWidth)

	w.SetStrokeColorRGB(CenterLineColor[0], CenterLineColor[1], CenterLineColor[2])
	w.Line(vec.Vec2{X: page.LLx, Y: cy}, vec.Vec2{X: page.URx, Y: cy})
	w.Line(vec.Vec2{X: cx, Y: page.LLy}, vec.Vec2{X: cx, Y: page.URy})
	w.Stroke()

	w.SetStrokeColorRGB(GridFrameColor[0], GridFrameColor[1], GridFrameColor[2])
	w.Rectangle(GridBox())
	w.Stroke()

	w.PopGraphicsState()
}
