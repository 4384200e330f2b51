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

package tilesheet

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/tilesheet/image"
	"seehuhn.de/go/tilesheet/internal/float"
	"seehuhn.de/go/tilesheet/layout"
	"seehuhn.de/go/tilesheet/metadata"
	"seehuhn.de/go/tilesheet/pdf"
	"seehuhn.de/go/tilesheet/raster"
	"seehuhn.de/go/tilesheet/tiles"
)

// Producer is stored in the document metadata when a title is set.
const Producer = "seehuhn.de/go/tilesheet"

// ErrEmptyInput is returned when the input directory contains no tile
// images.
var ErrEmptyInput = errors.New("no tile images found")

// Options can be used to control the generated PDF file.
// A nil value is equivalent to the zero value.
type Options struct {
	// Guides enables alignment guides on every page: red lines through the
	// center of the page, and a blue frame around the grid of tiles.
	Guides bool

	// Title, if non-empty, is stored in the document information
	// dictionary and in an XMP metadata stream.
	Title string

	// Logger receives progress messages at debug level.
	// If this is nil, no messages are logged.
	Logger *slog.Logger
}

var defaultOptions = &Options{}

func (opt *Options) logger() *slog.Logger {
	if opt.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return opt.Logger
}

// Result summarizes a generated PDF file.
type Result struct {
	// Tiles is the number of different tiles included in the file.
	Tiles int

	// Pages is the number of pages in the file.
	Pages int

	// Size is the file size in bytes.
	Size int
}

// Create reads the tile images in dir and writes the PDF file to out.
// Missing parent directories of out are created.
func Create(dir, out string, opt *Options) (*Result, error) {
	data, res, err := build(dir, opt)
	if err != nil {
		return nil, err
	}

	err = os.MkdirAll(filepath.Dir(out), 0o755)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", out, err)
	}
	err = os.WriteFile(out, data, 0o644)
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", out, err)
	}

	return res, nil
}

// Build reads the tile images in dir and returns the contents of the
// PDF file.
func Build(dir string, opt *Options) ([]byte, error) {
	data, _, err := build(dir, opt)
	return data, err
}

func build(dir string, opt *Options) ([]byte, *Result, error) {
	if opt == nil {
		opt = defaultOptions
	}
	log := opt.logger()

	list, err := tiles.Scan(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(list) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", dir, ErrEmptyInput)
	}
	log.Debug("found tiles", slog.String("dir", dir), slog.Int("count", len(list)))

	w := pdf.NewWriter(pdf.V1_7)

	var placed []layout.Tile
	for _, tile := range list {
		ref, err := embedTile(w, tile)
		if err != nil {
			return nil, nil, err
		}
		placed = append(placed, layout.Tile{Label: tile.Label, Image: ref})
		log.Debug("embedded tile",
			slog.String("label", tile.Label),
			slog.Any("image", ref))
	}

	// The page tree root is reserved here, and filled in once all pages
	// are known.
	pagesRef := w.Alloc()
	pages := layout.Paginate(placed, opt.Guides)
	mediaBox := rectArray(layout.MediaBox())

	var kids pdf.Array
	for i, page := range pages {
		contents, err := w.PutStream(nil, page.Content)
		if err != nil {
			return nil, nil, err
		}
		pageRef, err := w.Put(pdf.Dict{
			"Type":      pdf.Name("Page"),
			"Parent":    pagesRef,
			"MediaBox":  mediaBox,
			"Resources": page.Resources,
			"Contents":  contents,
		})
		if err != nil {
			return nil, nil, err
		}
		kids = append(kids, pageRef)
		log.Debug("added page",
			slog.Int("page", i+1),
			slog.Any("tiles", page.Tiles))
	}

	err = w.Set(pagesRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(kids)),
	})
	if err != nil {
		return nil, nil, err
	}

	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": pagesRef,
	}
	if opt.Title != "" {
		info, meta, err := metadata.Embed(w, opt.Title, Producer)
		if err != nil {
			return nil, nil, err
		}
		err = w.SetInfo(info)
		if err != nil {
			return nil, nil, err
		}
		catalog["Metadata"] = meta
	}
	root, err := w.Put(catalog)
	if err != nil {
		return nil, nil, err
	}

	data, err := w.Bytes(root)
	if err != nil {
		return nil, nil, err
	}
	log.Debug("wrote PDF",
		slog.Int("objects", w.Len()),
		slog.Int("bytes", len(data)))

	res := &Result{
		Tiles: len(list),
		Pages: len(pages),
		Size:  len(data),
	}
	return data, res, nil
}

func embedTile(w *pdf.Writer, tile *tiles.Tile) (pdf.Reference, error) {
	data, err := os.ReadFile(tile.Path)
	if err != nil {
		return 0, err
	}
	img, err := raster.Decode(data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", tile.Path, err)
	}
	ref, err := image.Embed(w, img)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", tile.Path, err)
	}
	return ref, nil
}

func rectArray(r rect.Rect) pdf.Array {
	return pdf.Array{
		pdf.Real(float.Round(r.LLx, 3)),
		pdf.Real(float.Round(r.LLy, 3)),
		pdf.Real(float.Round(r.URx, 3)),
		pdf.Real(float.Round(r.URy, 3)),
	}
}
