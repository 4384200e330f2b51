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

package raster

// splitPlanes converts reconstructed 8-bit samples into an RGB plane and,
// if the color type has an alpha channel, a separate opacity plane.
// Gray values are copied into all three color components.
func splitPlanes(pix []byte, ct ColorType) (rgb, alpha []byte) {
	bpp := ct.bytesPerPixel()
	n := len(pix) / bpp

	rgb = make([]byte, 3*n)
	if ct.hasAlpha() {
		alpha = make([]byte, n)
	}

	for i := 0; i < n; i++ {
		px := pix[i*bpp : (i+1)*bpp]
		out := rgb[3*i : 3*i+3]
		switch ct {
		case Gray:
			out[0], out[1], out[2] = px[0], px[0], px[0]
		case GrayAlpha:
			out[0], out[1], out[2] = px[0], px[0], px[0]
			alpha[i] = px[1]
		case RGB:
			copy(out, px)
		case RGBA:
			copy(out, px[:3])
			alpha[i] = px[3]
		}
	}
	return rgb, alpha
}
