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

package graphics

import (
	"fmt"

	"seehuhn.de/go/tilesheet/internal/float"
)

// SetStrokeColorRGB sets the color to use for stroking operations, using
// the DeviceRGB color space.  The components must be in the range [0, 1].
//
// This implements the PDF graphics operator "RG".
func (w *Writer) SetStrokeColorRGB(r, g, b float64) {
	if !w.isValid("SetStrokeColorRGB", objPage) {
		return
	}
	for _, x := range []float64{r, g, b} {
		if x < 0 || x > 1 {
			w.Err = fmt.Errorf("SetStrokeColorRGB: invalid component %g", x)
			return
		}
	}
	c := [3]float64{r, g, b}
	if w.isSet(StateStrokeColor) && c == w.StrokeColor {
		return
	}

	w.StrokeColor = c
	w.Set |= StateStrokeColor

	_, w.Err = fmt.Fprintln(w.Content,
		float.Format(r, 3), float.Format(g, 3), float.Format(b, 3), "RG")
}
