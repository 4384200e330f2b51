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

// Package raster decodes PNG images into separate color and opacity planes.
//
// Only the subset of PNG needed for tile artwork is supported: 8 bits per
// sample, no interlacing, and the color types gray, RGB, gray+alpha and
// RGBA.  The decoded planes are stored zlib-compressed, ready to be
// embedded into a PDF file as an image and a soft mask.
package raster

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Image is a decoded PNG image.
type Image struct {
	Width, Height int

	// BitDepth is the number of bits per sample.  This is always 8.
	BitDepth int

	// Color holds the zlib-compressed RGB samples, 3 bytes per pixel,
	// in row-major order.
	Color []byte

	// Alpha holds the zlib-compressed opacity samples, 1 byte per pixel.
	// This is nil if the PNG file has no alpha channel.
	Alpha []byte
}

// HasAlpha reports whether the image has an opacity plane.
func (img *Image) HasAlpha() bool {
	return img.Alpha != nil
}

// RGB returns the uncompressed RGB plane.
func (img *Image) RGB() ([]byte, error) {
	return inflate(img.Color, 3*img.Width*img.Height)
}

// Opacity returns the uncompressed opacity plane, or nil if the image has
// no alpha channel.
func (img *Image) Opacity() ([]byte, error) {
	if img.Alpha == nil {
		return nil, nil
	}
	return inflate(img.Alpha, img.Width*img.Height)
}

// ColorType is the PNG color type stored in the IHDR chunk.
type ColorType byte

// The supported color types.
const (
	Gray      ColorType = 0
	RGB       ColorType = 2
	GrayAlpha ColorType = 4
	RGBA      ColorType = 6
)

// bytesPerPixel returns the number of bytes per pixel for 8-bit samples,
// or 0 if the color type is not supported.
func (ct ColorType) bytesPerPixel() int {
	switch ct {
	case Gray:
		return 1
	case GrayAlpha:
		return 2
	case RGB:
		return 3
	case RGBA:
		return 4
	default:
		return 0
	}
}

func (ct ColorType) hasAlpha() bool {
	return ct == GrayAlpha || ct == RGBA
}

// maxPixels limits the memory used for a single image.
const maxPixels = 1 << 26

var signature = []byte("\x89PNG\r\n\x1a\n")

type header struct {
	width, height int
	bitDepth      byte
	colorType     ColorType
	compression   byte
	filter        byte
	interlace     byte
}

type chunk struct {
	tp   string
	data []byte
	pos  int
}

// Decode decodes a PNG image.
//
// If the data is not a well-formed PNG file, a [*MalformedError] is
// returned.  If the file uses features outside the supported subset,
// an [*UnsupportedError] is returned.
func Decode(data []byte) (*Image, error) {
	if !bytes.HasPrefix(data, signature) {
		return nil, malformed(0, errSignature)
	}

	hdr, idat, err := readChunks(data, len(signature))
	if err != nil {
		return nil, err
	}
	err = hdr.check()
	if err != nil {
		return nil, err
	}

	bpp := hdr.colorType.bytesPerPixel()
	stride := hdr.width * bpp
	filtered, err := inflate(idat, hdr.height*(1+stride))
	if err != nil {
		return nil, err
	}

	pix := make([]byte, hdr.height*stride)
	prev := make([]byte, stride)
	for y := 0; y < hdr.height; y++ {
		in := filtered[y*(1+stride) : (y+1)*(1+stride)]
		cur := pix[y*stride : (y+1)*stride]
		copy(cur, in[1:])
		err = unfilter(in[0], cur, prev, bpp)
		if err != nil {
			return nil, malformed(0, fmt.Errorf("row %d: %w", y, err))
		}
		prev = cur
	}

	rgb, alpha := splitPlanes(pix, hdr.colorType)
	img := &Image{
		Width:    hdr.width,
		Height:   hdr.height,
		BitDepth: int(hdr.bitDepth),
	}
	img.Color, err = deflate(rgb)
	if err != nil {
		return nil, err
	}
	if alpha != nil {
		img.Alpha, err = deflate(alpha)
		if err != nil {
			return nil, err
		}
	}
	return img, nil
}

// readChunks scans the chunks of a PNG file, starting at pos.  It returns
// the image header and the concatenated contents of all IDAT chunks.
func readChunks(data []byte, pos int) (*header, []byte, error) {
	var hdr *header
	var idat []byte
	seenData := false
	for {
		c, next, err := nextChunk(data, pos)
		if err != nil {
			return nil, nil, err
		}
		pos = next

		if hdr == nil && c.tp != "IHDR" {
			return nil, nil, malformed(c.pos, errNoHeader)
		}
		switch c.tp {
		case "IHDR":
			if hdr != nil {
				return nil, nil, malformed(c.pos, errors.New("duplicate IHDR chunk"))
			}
			hdr, err = parseHeader(c)
			if err != nil {
				return nil, nil, err
			}
		case "IDAT":
			idat = append(idat, c.data...)
			seenData = true
		case "IEND":
			if !seenData {
				return nil, nil, malformed(c.pos, errNoData)
			}
			return hdr, idat, nil
		}
	}
}

// nextChunk reads the chunk starting at pos and returns the position of
// the following chunk.  The CRC is not checked.
func nextChunk(data []byte, pos int) (chunk, int, error) {
	if pos == len(data) {
		return chunk{}, 0, malformed(pos, errNoEnd)
	}
	if len(data)-pos < 8 {
		return chunk{}, 0, malformed(pos, errTruncated)
	}
	length := binary.BigEndian.Uint32(data[pos:])
	tp := string(data[pos+4 : pos+8])
	start := pos + 8
	if uint64(length)+4 > uint64(len(data)-start) {
		return chunk{}, 0, malformed(pos,
			fmt.Errorf("%q chunk of length %d overruns end of data", tp, length))
	}
	end := start + int(length)
	return chunk{tp: tp, data: data[start:end], pos: pos}, end + 4, nil
}

func parseHeader(c chunk) (*header, error) {
	if len(c.data) != 13 {
		return nil, malformed(c.pos, fmt.Errorf("IHDR chunk has length %d", len(c.data)))
	}
	width := binary.BigEndian.Uint32(c.data[0:])
	height := binary.BigEndian.Uint32(c.data[4:])
	if width == 0 || height == 0 || width > 1<<31-1 || height > 1<<31-1 {
		return nil, malformed(c.pos, errDimensions)
	}
	return &header{
		width:       int(width),
		height:      int(height),
		bitDepth:    c.data[8],
		colorType:   ColorType(c.data[9]),
		compression: c.data[10],
		filter:      c.data[11],
		interlace:   c.data[12],
	}, nil
}

func (hdr *header) check() error {
	if hdr.compression != 0 || hdr.filter != 0 {
		return malformed(0, fmt.Errorf("invalid compression/filter method %d/%d",
			hdr.compression, hdr.filter))
	}
	if hdr.bitDepth != 8 {
		return &UnsupportedError{Feature: fmt.Sprintf("bit depth %d", hdr.bitDepth)}
	}
	if hdr.interlace != 0 {
		return &UnsupportedError{Feature: "interlacing"}
	}
	if hdr.colorType.bytesPerPixel() == 0 {
		return &UnsupportedError{Feature: fmt.Sprintf("color type %d", hdr.colorType)}
	}
	if uint64(hdr.width)*uint64(hdr.height) > maxPixels {
		return &UnsupportedError{
			Feature: fmt.Sprintf("image size %dx%d", hdr.width, hdr.height)}
	}
	return nil
}

// inflate decompresses zlib data, which must contain at least n bytes.
// Any further data is ignored.
func inflate(data []byte, n int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, malformed(0, err)
	}
	defer zr.Close()

	// Memory use is bounded by the data present, not by the declared size.
	out, err := io.ReadAll(io.LimitReader(zr, int64(n)))
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, malformed(0, errShortData)
	} else if err != nil {
		return nil, malformed(0, err)
	}
	if len(out) < n {
		return nil, malformed(0, errShortData)
	}
	return out, nil
}

func deflate(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	_, err = zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
