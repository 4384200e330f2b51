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

package metadata

import (
	"bytes"
	"strings"
	"testing"

	"seehuhn.de/go/xmp"

	"seehuhn.de/go/tilesheet/internal/xrefcheck"
	"seehuhn.de/go/tilesheet/pdf"
)

func TestPacket(t *testing.T) {
	packet, err := Packet("Mahjong Tiles", "tilesheet")
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	err = packet.Write(buf, nil)
	if err != nil {
		t.Fatal(err)
	}

	text := buf.String()
	for _, want := range []string{"Mahjong Tiles", "tilesheet", "x-default", "http://ns.adobe.com/pdf/1.3/"} {
		if !strings.Contains(text, want) {
			t.Errorf("packet does not contain %q", want)
		}
	}

	_, err = xmp.Read(buf)
	if err != nil {
		t.Errorf("cannot read back packet: %v", err)
	}
}

func TestEmbed(t *testing.T) {
	w := pdf.NewWriter(pdf.V1_7)
	info, meta, err := Embed(w, "Mahjong Tiles", "tilesheet")
	if err != nil {
		t.Fatal(err)
	}
	if err := w.SetInfo(info); err != nil {
		t.Fatal(err)
	}
	root, err := w.Put(pdf.Dict{
		"Type":     pdf.Name("Catalog"),
		"Metadata": meta,
	})
	if err != nil {
		t.Fatal(err)
	}

	data, err := w.Bytes(root)
	if err != nil {
		t.Fatal(err)
	}
	f, err := xrefcheck.Check(data)
	if err != nil {
		t.Fatal(err)
	}

	stream := string(f.Object(data, meta.Number()))
	for _, want := range []string{"/Type /Metadata", "/Subtype /XML", "Mahjong Tiles", "tilesheet"} {
		if !strings.Contains(stream, want) {
			t.Errorf("metadata stream does not contain %q", want)
		}
	}

	infoDict := string(f.Object(data, info.Number()))
	if !strings.Contains(infoDict, "/Title (Mahjong Tiles)") {
		t.Errorf("info dictionary lacks title: %s", infoDict)
	}
	if !strings.Contains(string(data), "/Info "+pdf.Format(info)) {
		t.Error("trailer does not link the info dictionary")
	}
}
