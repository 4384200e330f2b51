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

// Package metadata adds document-level metadata to a PDF file.
//
// The metadata is stored twice: once in the document information dictionary,
// and once as an XMP packet attached to the document catalog.  No dates are
// included, so that the same input always gives the same output.
package metadata

import (
	"bytes"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/tilesheet/pdf"
)

// PDF 2.0 sections: 14.3.2 14.3.3

// PDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type PDF struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Producer xmp.AgentName
}

var defaultLang = language.MustParse("x-default")

// Packet returns an XMP packet with the given title and producer.
func Packet(title, producer string) (*xmp.Packet, error) {
	dc := &xmp.DublinCore{}
	dc.Title.Set(defaultLang, title)

	info := &PDF{}
	info.Producer = xmp.NewAgentName(producer)

	packet := xmp.NewPacket()
	err := packet.Set(dc, info)
	if err != nil {
		return nil, err
	}
	return packet, nil
}

// Embed writes the document information dictionary and the XMP metadata
// stream for a document with the given title.  The caller must link info
// from the file trailer and meta from the document catalog.
func Embed(w *pdf.Writer, title, producer string) (info, meta pdf.Reference, err error) {
	packet, err := Packet(title, producer)
	if err != nil {
		return 0, 0, err
	}

	buf := &bytes.Buffer{}
	err = packet.Write(buf, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return 0, 0, err
	}

	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	meta, err = w.PutStream(dict, buf.Bytes())
	if err != nil {
		return 0, 0, err
	}

	info, err = w.Put(pdf.Dict{
		"Title":    pdf.TextString(title),
		"Producer": pdf.TextString(producer),
	})
	if err != nil {
		return 0, 0, err
	}

	return info, meta, nil
}
