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

// Package xrefcheck verifies the structure of PDF files in tests.
package xrefcheck

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
)

// File describes the structure of a PDF file, as recovered from its
// cross-reference table.
type File struct {
	// Offsets[i] is the byte offset of object i.  Offsets[0] is unused.
	Offsets []int64

	// Root is the object number of the document catalog.
	Root int
}

var (
	startXRefRegexp = regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`)
	xrefHeadRegexp  = regexp.MustCompile(`^xref\n0 (\d+)\n`)
	rootRegexp      = regexp.MustCompile(`/Root (\d+) 0 R`)
	refRegexp       = regexp.MustCompile(`\b(\d+) 0 R\b`)
	entryRegexp     = regexp.MustCompile(`^(\d{10}) (\d{5}) ([fn])\r\n$`)
)

// Check parses the cross-reference table of a PDF file and verifies that
// every recorded offset points at the header of the corresponding object,
// and that every object reference in the file names an existing object.
func Check(data []byte) (*File, error) {
	m := startXRefRegexp.FindSubmatch(data)
	if m == nil {
		return nil, fmt.Errorf("missing startxref")
	}
	xrefPos, err := strconv.Atoi(string(m[1]))
	if err != nil || xrefPos >= len(data) {
		return nil, fmt.Errorf("invalid startxref value %q", m[1])
	}

	tail := data[xrefPos:]
	h := xrefHeadRegexp.FindSubmatch(tail)
	if h == nil {
		return nil, fmt.Errorf("no xref table at offset %d", xrefPos)
	}
	size, _ := strconv.Atoi(string(h[1]))
	tail = tail[len(h[0]):]
	if len(tail) < 20*size {
		return nil, fmt.Errorf("xref table truncated")
	}

	res := &File{Offsets: make([]int64, size)}
	for i := 0; i < size; i++ {
		e := entryRegexp.FindSubmatch(tail[20*i : 20*i+20])
		if e == nil {
			return nil, fmt.Errorf("malformed xref entry %d: %q", i, tail[20*i:20*i+20])
		}
		pos, _ := strconv.ParseInt(string(e[1]), 10, 64)
		if i == 0 {
			if string(e[2]) != "65535" || string(e[3]) != "f" {
				return nil, fmt.Errorf("entry 0 is not the free list head")
			}
			continue
		}
		if string(e[3]) != "n" {
			return nil, fmt.Errorf("object %d is not in use", i)
		}
		header := []byte(strconv.Itoa(i) + " 0 obj\n")
		if pos < 0 || pos >= int64(xrefPos) || !bytes.HasPrefix(data[pos:], header) {
			return nil, fmt.Errorf("object %d: offset %d does not point at the object", i, pos)
		}
		res.Offsets[i] = pos
	}

	trailer := tail[20*size:]
	r := rootRegexp.FindSubmatch(trailer)
	if r == nil {
		return nil, fmt.Errorf("trailer has no /Root")
	}
	res.Root, _ = strconv.Atoi(string(r[1]))
	if res.Root < 1 || res.Root >= size {
		return nil, fmt.Errorf("/Root %d is not in the xref table", res.Root)
	}

	for _, ref := range refRegexp.FindAllSubmatch(stripStreams(data[:xrefPos]), -1) {
		n, err := strconv.Atoi(string(ref[1]))
		if err != nil || n < 1 || n >= size {
			return nil, fmt.Errorf("dangling reference %q", ref[0])
		}
	}
	return res, nil
}

// Object returns the body of object number n, without the surrounding
// "obj" and "endobj" keywords.
func (f *File) Object(data []byte, n int) []byte {
	start := f.Offsets[n]
	body := data[start:]
	body = body[bytes.IndexByte(body, '\n')+1:]
	end := bytes.Index(body, []byte("\nendobj\n"))
	return body[:end]
}

// stripStreams removes the contents of all streams, so that binary data
// cannot be mistaken for object references.
func stripStreams(data []byte) []byte {
	var res []byte
	for {
		start := bytes.Index(data, []byte("\nstream\n"))
		if start < 0 {
			return append(res, data...)
		}
		res = append(res, data[:start]...)
		data = data[start:]
		end := bytes.Index(data, []byte("\nendstream"))
		if end < 0 {
			return res
		}
		data = data[end:]
	}
}
