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

// Sample-tiles writes placeholder tile images, which can be used to try out
// the tilesheet command without the real tile artwork.
//
// One image is written for every tile of a mahjong set, named 1m.png to
// 9m.png, 1p.png to 9p.png, 1s.png to 9s.png, and 1z.png to 7z.png.  The
// suit tiles have cut corners and use transparency, the honor tiles are
// opaque.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"seehuhn.de/go/tilesheet/layout"
)

var (
	outDir = flag.String("out", "sample-tiles", "write the images to `dir`")
	scale  = flag.Int("scale", 4, "image resolution in pixels per millimeter")
)

func main() {
	flag.Parse()
	if *scale < 1 || flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	err := run(*outDir, *scale)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dir string, scale int) error {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}
	for _, label := range allLabels() {
		img := drawTile(label, scale)
		err := writePNG(filepath.Join(dir, label+".png"), img)
		if err != nil {
			return err
		}
	}
	return nil
}

func allLabels() []string {
	var res []string
	for _, suit := range "mps" {
		for rank := 1; rank <= 9; rank++ {
			res = append(res, fmt.Sprintf("%d%c", rank, suit))
		}
	}
	for rank := 1; rank <= 7; rank++ {
		res = append(res, fmt.Sprintf("%dz", rank))
	}
	return res
}

var (
	faceColor  = color.NRGBA{R: 0xfa, G: 0xf6, B: 0xe8, A: 0xff}
	suitColors = map[byte]color.NRGBA{
		'm': {R: 0xb0, G: 0x10, B: 0x10, A: 0xff},
		'p': {R: 0x10, G: 0x30, B: 0xa0, A: 0xff},
		's': {R: 0x10, G: 0x80, B: 0x30, A: 0xff},
		'z': {R: 0x20, G: 0x20, B: 0x20, A: 0xff},
	}
)

// drawTile draws a placeholder image for the given tile.  The image has the
// aspect ratio of a layout cell.
func drawTile(label string, scale int) *image.NRGBA {
	w := int(layout.CellWidth) * scale
	h := int(layout.CellHeight) * scale
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	suit := label[len(label)-1]
	if suit == 'z' {
		draw.Draw(img, img.Bounds(), image.NewUniform(faceColor), image.Point{}, draw.Src)
	} else {
		fw, fh := float32(w), float32(h)
		r := float32(2 * scale)
		z := vector.NewRasterizer(w, h)
		z.MoveTo(r, 0)
		z.LineTo(fw-r, 0)
		z.LineTo(fw, r)
		z.LineTo(fw, fh-r)
		z.LineTo(fw-r, fh)
		z.LineTo(r, fh)
		z.LineTo(0, fh-r)
		z.LineTo(0, r)
		z.ClosePath()
		z.Draw(img, img.Bounds(), image.NewUniform(faceColor), image.Point{})
	}

	// Render the label at the native font size, then enlarge it to fill
	// three quarters of the tile width.
	face := basicfont.Face7x13
	d := &font.Drawer{
		Src:  image.NewUniform(suitColors[suit]),
		Face: face,
	}
	textWidth := d.MeasureString(label).Ceil()
	small := image.NewNRGBA(image.Rect(0, 0, textWidth, face.Height))
	d.Dst = small
	d.Dot = fixed.P(0, face.Ascent)
	d.DrawString(label)

	k := max(1, w*3/4/textWidth)
	dw, dh := k*textWidth, k*face.Height
	x0 := (w - dw) / 2
	y0 := (h - dh) / 2
	xdraw.NearestNeighbor.Scale(img, image.Rect(x0, y0, x0+dw, y0+dh),
		small, small.Bounds(), draw.Over, nil)

	return img
}

func writePNG(fname string, img image.Image) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	err = enc.Encode(out, img)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
