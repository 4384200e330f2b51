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
	"bytes"
	"errors"
	goimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/tilesheet/internal/xrefcheck"
	"seehuhn.de/go/tilesheet/raster"
)

func writePNG(t *testing.T, fname string, img goimage.Image) {
	t.Helper()
	buf := &bytes.Buffer{}
	err := png.Encode(buf, img)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(fname, buf.Bytes(), 0o644)
	if err != nil {
		t.Fatal(err)
	}
}

func grayTile(width int) goimage.Image {
	img := goimage.NewGray(goimage.Rect(0, 0, width, 3))
	for i := range img.Pix {
		img.Pix[i] = byte(40 * i)
	}
	return img
}

// makeTileDir creates a directory with five opaque tiles, together with
// some files which must be ignored.  The tile widths 1, ..., 5 give the
// expected print order.
func makeTileDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	widths := map[string]int{
		"1z": 5,
		"5z": 4,
		"3p": 3,
		"9m": 2,
		"1m": 1,
	}
	for label, width := range widths {
		writePNG(t, filepath.Join(dir, label+".png"), grayTile(width))
	}
	err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte("hello"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	err = os.WriteFile(filepath.Join(dir, "back.png"), []byte("not a PNG"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestBuild(t *testing.T) {
	dir := makeTileDir(t)

	data, err := Build(dir, nil)
	if err != nil {
		t.Fatal(err)
	}

	f, err := xrefcheck.Check(data)
	if err != nil {
		t.Fatal(err)
	}

	// images are embedded in print order, before all other objects
	for i := 1; i <= 5; i++ {
		obj := string(f.Object(data, i))
		if !strings.Contains(obj, "/Width "+strconv.Itoa(i)+"\n") {
			t.Errorf("object %d is not image %d", i, i)
		}
		if strings.Contains(obj, "/SMask") {
			t.Errorf("object %d: unexpected soft mask", i)
		}
	}

	if n := bytes.Count(data, []byte("/Type /Page\n")); n != 2 {
		t.Errorf("found %d pages, want 2", n)
	}
	if !bytes.Contains(data, []byte("/Count 2\n")) {
		t.Error("page tree does not count 2 pages")
	}
	if n := bytes.Count(data, []byte(" Do\n")); n != 20 {
		t.Errorf("found %d painted images, want 20", n)
	}
	if !bytes.Contains(data, []byte("/MediaBox [0. 0. 283.465 419.528]")) {
		t.Error("wrong media box")
	}
	if bytes.Contains(data, []byte(" RG\n")) {
		t.Error("unexpected guides")
	}
	if bytes.Contains(data, []byte("/Info ")) || bytes.Contains(data, []byte("/Metadata ")) {
		t.Error("unexpected metadata")
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.7\n")) || !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Error("malformed file header or trailer")
	}
}

func TestBuildDeterministic(t *testing.T) {
	dir := makeTileDir(t)
	opt := &Options{Guides: true, Title: "Tiles"}

	data1, err := Build(dir, opt)
	if err != nil {
		t.Fatal(err)
	}
	data2, err := Build(dir, opt)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data1, data2) {
		t.Error("output differs between runs")
	}
}

func TestOptions(t *testing.T) {
	dir := makeTileDir(t)
	data, err := Build(dir, &Options{Guides: true, Title: "Mahjong"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := xrefcheck.Check(data); err != nil {
		t.Fatal(err)
	}

	if n := bytes.Count(data, []byte("1 0 0 RG\n")); n != 2 {
		t.Errorf("found %d pages with guides, want 2", n)
	}
	for _, want := range []string{"/Info ", "/Metadata ", "/Title (Mahjong)", "/Subtype /XML"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("missing %q", want)
		}
	}
}

func TestSoftMask(t *testing.T) {
	dir := t.TempDir()
	img := goimage.NewNRGBA(goimage.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	img.Set(1, 1, color.NRGBA{R: 10, G: 200, B: 10, A: 128})
	writePNG(t, filepath.Join(dir, "7s.png"), img)

	data, err := Build(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	f, err := xrefcheck.Check(data)
	if err != nil {
		t.Fatal(err)
	}

	mask := string(f.Object(data, 1))
	if !strings.Contains(mask, "/ColorSpace /DeviceGray") {
		t.Errorf("object 1 is not the soft mask: %.80q", mask)
	}
	rgb := string(f.Object(data, 2))
	if !strings.Contains(rgb, "/SMask 1 0 R") || !strings.Contains(rgb, "/ColorSpace /DeviceRGB") {
		t.Errorf("object 2 is not the color image: %.80q", rgb)
	}
}

func TestEmptyInput(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "east.png"), []byte("x"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Build(dir, nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestMissingDir(t *testing.T) {
	_, err := Build(filepath.Join(t.TempDir(), "missing"), nil)
	if err == nil {
		t.Fatal("missing directory not detected")
	}
	if errors.Is(err, ErrEmptyInput) {
		t.Error("missing directory reported as empty")
	}
}

func TestMalformedTile(t *testing.T) {
	dir := makeTileDir(t)
	bad := filepath.Join(dir, "2m.png")
	err := os.WriteFile(bad, []byte("\x89PNG\r\n\x1a\ngarbage"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Build(dir, nil)
	var malformed *raster.MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected a MalformedError, got %v", err)
	}
	if !strings.Contains(err.Error(), bad) {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestCreate(t *testing.T) {
	dir := makeTileDir(t)
	out := filepath.Join(t.TempDir(), "a", "b", "tiles.pdf")

	res, err := Create(dir, out, nil)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := &Result{Tiles: 5, Pages: 2, Size: len(data)}
	if d := cmp.Diff(want, res); d != "" {
		t.Errorf("result (-want +got):\n%s", d)
	}

	ref, err := Build(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ref, data) {
		t.Error("Create and Build disagree")
	}
}
