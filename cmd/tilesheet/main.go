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

// Tilesheet creates a printable PDF file from a directory of mahjong tile
// images.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/tilesheet"
	"seehuhn.de/go/tilesheet/internal/buildinfo"
	"seehuhn.de/go/tilesheet/internal/profile"
)

var (
	inDir      = flag.String("in", "", "read tile images from `dir`")
	outFile    = flag.String("out", "tiles.pdf", "write the PDF to `file`")
	guides     = flag.Bool("guides", false, "draw alignment guides")
	title      = flag.String("title", "", "document title")
	verbose    = flag.Bool("v", false, "show progress information")
	version    = flag.Bool("version", false, "print version information and exit")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tilesheet \u2014 print sheets of mahjong tiles\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("tilesheet"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  tilesheet -in <dir> [options]\n\n")
		fmt.Fprintf(os.Stderr, "The input directory must contain images named like 1m.png, 9p.png\n")
		fmt.Fprintf(os.Stderr, "or 5z.png.  Other files are ignored.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tilesheet -in tiles/\n")
		fmt.Fprintf(os.Stderr, "  tilesheet -in tiles/ -out print/test.pdf -guides\n")
	}
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short("tilesheet"))
		return
	}
	if *inDir == "" || flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tilesheet:", err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		if err := stop(); err != nil {
			fmt.Fprintln(os.Stderr, "tilesheet:", err)
		}
	}()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	opt := &tilesheet.Options{
		Guides: *guides,
		Title:  *title,
		Logger: logger,
	}
	logger.Info("reading tiles", slog.String("dir", *inDir))
	res, err := tilesheet.Create(*inDir, *outFile, opt)
	if err != nil {
		return err
	}
	logger.Info("wrote PDF",
		slog.String("file", *outFile),
		slog.Int("tiles", res.Tiles),
		slog.Int("pages", res.Pages))

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("%s: %d tiles on %d pages (%d bytes)\n",
			*outFile, res.Tiles, res.Pages, res.Size)
	}
	return nil
}
