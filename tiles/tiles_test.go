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

package tiles

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		label string
		id    *Identity
	}{
		{"1m", &Identity{1, Man}},
		{"9p", &Identity{9, Pin}},
		{"5s", &Identity{5, Sou}},
		{"7z", &Identity{7, Honor}},
		{"05z", &Identity{5, Honor}},
		{"12s", &Identity{12, Sou}},
		{"m", nil},
		{"1", nil},
		{"", nil},
		{"1x", nil},
		{"1mm", nil},
		{"a1m", nil},
		{"1M", nil},
		{" 1m", nil},
		{"-1m", nil},
		{"１m", nil}, // full-width digit
		{"99999999999999999999999m", nil},
	}
	for _, c := range cases {
		id, ok := Parse(c.label)
		if ok != (c.id != nil) {
			t.Errorf("Parse(%q): ok = %t", c.label, ok)
			continue
		}
		if d := cmp.Diff(c.id, id); d != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", c.label, d)
		}
	}
}

func labels(tiles []*Tile) []string {
	var res []string
	for _, tile := range tiles {
		res = append(res, tile.Label)
	}
	return res
}

func TestOrder(t *testing.T) {
	var in []*Tile
	for _, label := range []string{"5z", "1z", "9m", "1m", "3p"} {
		in = append(in, New(label+".png"))
	}
	Sort(in)
	want := []string{"1m", "9m", "3p", "5z", "1z"}
	if d := cmp.Diff(want, labels(in)); d != "" {
		t.Errorf("wrong order (-want +got):\n%s", d)
	}
}

func TestOrderFull(t *testing.T) {
	var in []*Tile
	for _, label := range []string{
		"4z", "3z", "2z", "1z", "7z", "6z", "5z", "8z",
		"9s", "1s", "2p", "10p", "1p", "01p", "2m",
		"junk", "abc",
	} {
		in = append(in, New(filepath.Join("dir", label+".png")))
	}
	Sort(in)
	want := []string{
		"2m",
		"01p", "1p", "2p", "10p",
		"1s", "9s",
		"5z", "6z", "7z", "1z", "2z", "3z", "4z", "8z",
		"abc", "junk",
	}
	if d := cmp.Diff(want, labels(in)); d != "" {
		t.Errorf("wrong order (-want +got):\n%s", d)
	}
}

func TestCompareTotal(t *testing.T) {
	a := New("3s.png")
	b := New("03s.png")
	if Compare(a, a) != 0 {
		t.Error("Compare(a, a) != 0")
	}
	if Compare(a, b) <= 0 || Compare(b, a) >= 0 {
		t.Error("labels do not break ties between equal identities")
	}
}

func TestNew(t *testing.T) {
	tile := New(filepath.Join("some", "where", "7z.PNG"))
	if tile.Label != "7z" || tile.ID == nil || *tile.ID != (Identity{7, Honor}) {
		t.Errorf("unexpected tile %+v", tile)
	}
	if tile.ID.String() != "7z" {
		t.Errorf("String() = %q", tile.ID.String())
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"5z.png", "1z.PNG", "9m.png", "1m.png", "3p.png",
		"README.txt", "1s.jpg", "back.png", "1mm.png",
	} {
		err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644)
		if err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "2s.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	tiles, err := Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1m", "9m", "3p", "5z", "1z"}
	if d := cmp.Diff(want, labels(tiles)); d != "" {
		t.Errorf("wrong tiles (-want +got):\n%s", d)
	}
	if tiles[4].Path != filepath.Join(dir, "1z.PNG") {
		t.Errorf("wrong path %q", tiles[4].Path)
	}
}

func TestScanEmpty(t *testing.T) {
	tiles, err := Scan(t.TempDir())
	if err != nil || len(tiles) != 0 {
		t.Errorf("got %v, %v", tiles, err)
	}

	_, err = Scan(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestNewFullWidth(t *testing.T) {
	cases := []struct {
		name  string
		label string
		id    *Identity
	}{
		{"１ｍ.png", "1m", &Identity{1, Man}},
		{"７ｚ.png", "7z", &Identity{7, Honor}},
		{"1ｓ.png", "1s", &Identity{1, Sou}},
		{"東.png", "東", nil},
	}
	for _, c := range cases {
		tile := New(c.name)
		if tile.Label != c.label {
			t.Errorf("New(%q).Label = %q, want %q", c.name, tile.Label, c.label)
		}
		if d := cmp.Diff(c.id, tile.ID); d != "" {
			t.Errorf("New(%q).ID (-want +got):\n%s", c.name, d)
		}
	}
}

func TestCompareSameLabel(t *testing.T) {
	a := New(filepath.Join("dir", "1m.png"))
	b := New(filepath.Join("dir", "１ｍ.png"))
	if a.Label != b.Label {
		t.Fatalf("labels differ: %q %q", a.Label, b.Label)
	}
	if Compare(a, b) == 0 || Compare(a, b) != -Compare(b, a) {
		t.Error("paths do not break ties between equal labels")
	}
}

func TestScanFileTypes(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()

	target := filepath.Join(other, "tile.png")
	if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "1m.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	// a link to a file, a link to a directory, and a dangling link
	links := map[string]string{
		"2m.png": target,
		"3m.png": other,
		"4m.png": filepath.Join(other, "missing.png"),
	}
	for name, dest := range links {
		if err := os.Symlink(dest, filepath.Join(dir, name)); err != nil {
			t.Skipf("cannot create symbolic links: %v", err)
		}
	}

	tiles, err := Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1m", "2m"}
	if d := cmp.Diff(want, labels(tiles)); d != "" {
		t.Errorf("wrong tiles (-want +got):\n%s", d)
	}
}
