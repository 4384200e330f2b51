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

	"seehuhn.de/go/tilesheet/pdf"
)

// This file implements the "XObject operator".
// The operator is defined in table 86 of ISO 32000-2:2020.

// DrawXObject draws the XObject ref, for example an image, on the page.
// The object is drawn into the unit square of the current user space.
//
// This implements the PDF graphics operator "Do".
func (w *Writer) DrawXObject(ref pdf.Reference) {
	if !w.isValid("DrawXObject", objPage) {
		return
	}

	name := w.getResourceName(ref)
	w.Err = name.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "", "Do")
}
