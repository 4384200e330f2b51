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

// Package image provides functions for embedding images in PDF files.
package image

import (
	"seehuhn.de/go/tilesheet/pdf"
	"seehuhn.de/go/tilesheet/raster"
)

// Embed writes img to the PDF file as an image XObject and returns the
// reference to the image.  If img has an opacity plane, this is written
// first, as a separate DeviceGray image which is used as the soft mask of
// the color image.
func Embed(w *pdf.Writer, img *raster.Image) (pdf.Reference, error) {
	var mask pdf.Object
	if img.HasAlpha() {
		maskRef, err := w.PutStream(imageDict(img, "DeviceGray"), img.Alpha)
		if err != nil {
			return 0, err
		}
		mask = maskRef
	}

	dict := imageDict(img, "DeviceRGB")
	dict["SMask"] = mask
	return w.PutStream(dict, img.Color)
}

func imageDict(img *raster.Image, cs pdf.Name) pdf.Dict {
	return pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(img.Width),
		"Height":           pdf.Integer(img.Height),
		"ColorSpace":       cs,
		"BitsPerComponent": pdf.Integer(img.BitDepth),
		"Filter":           pdf.Name("FlateDecode"),
	}
}
