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

package pdf

import (
	"fmt"
	"io"
)

// writeXRefTable writes a classic cross-reference table, followed by the
// trailer dictionary.  Entry 0 is the head of the free list; xref[i] is the
// byte offset of object i for all i > 0.
func writeXRefTable(w io.Writer, xref []int64, trailer Dict) error {
	_, err := fmt.Fprintf(w, "xref\n0 %d\n", len(xref))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "0000000000 65535 f\r\n")
	if err != nil {
		return err
	}
	for _, pos := range xref[1:] {
		_, err = fmt.Fprintf(w, "%010d 00000 n\r\n", pos)
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "trailer\n")
	if err != nil {
		return err
	}
	return trailer.PDF(w)
}
