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

package pdf

import (
	"bytes"
	"fmt"
	"io"
)

// Version represents a version of the PDF standard.
type Version int

// PDF versions supported by this library.
const (
	V1_4 Version = iota + 4
	V1_5
	V1_6
	V1_7
)

func (ver Version) String() string {
	if ver < V1_4 || ver > V1_7 {
		return fmt.Sprintf("Version(%d)", int(ver))
	}
	return fmt.Sprintf("1.%d", int(ver))
}

// Writer collects the indirect objects of a PDF file in memory.
// Objects are numbered in the order they are registered, starting at 1.
// Once all objects are registered, [Writer.WriteTo] writes the complete
// file, including the cross-reference table and the trailer.
type Writer struct {
	ver     Version
	objects []*entry
	info    Reference
}

type entry struct {
	body    []byte
	written bool
}

// NewWriter returns a new, empty writer for a file of the given PDF version.
func NewWriter(ver Version) *Writer {
	return &Writer{ver: ver}
}

// Len returns the number of objects registered so far, including
// reserved objects which have not been written yet.
func (pdf *Writer) Len() int {
	return len(pdf.objects)
}

// Alloc reserves an object number for an indirect object.  The object
// must later be written using [Writer.Set].  This can be used to create
// forward references.
func (pdf *Writer) Alloc() Reference {
	pdf.objects = append(pdf.objects, &entry{})
	return Reference(len(pdf.objects))
}

// Put adds obj to the file as an indirect object.  The returned reference
// can be used to refer to this object from other parts of the file.
func (pdf *Writer) Put(obj Object) (Reference, error) {
	ref := pdf.Alloc()
	err := pdf.Set(ref, obj)
	if err != nil {
		pdf.objects = pdf.objects[:len(pdf.objects)-1]
		return 0, err
	}
	return ref, nil
}

// PutStream adds a stream object to the file.  The /Length entry of the
// stream dictionary is set to len(data).
func (pdf *Writer) PutStream(dict Dict, data []byte) (Reference, error) {
	return pdf.Put(&Stream{Dict: dict, Data: data})
}

// Set writes the body of an object previously reserved using
// [Writer.Alloc].  Each reserved object can be written exactly once.
func (pdf *Writer) Set(ref Reference, obj Object) error {
	e, err := pdf.lookup(ref)
	if err != nil {
		return err
	}
	if e.written {
		return fmt.Errorf("%s: %w", ref, ErrAlreadyWritten)
	}

	buf := &bytes.Buffer{}
	err = writeObject(buf, obj)
	if err != nil {
		return err
	}
	e.body = buf.Bytes()
	e.written = true
	return nil
}

// SetInfo sets the document information dictionary of the file.
func (pdf *Writer) SetInfo(ref Reference) error {
	if _, err := pdf.lookup(ref); err != nil {
		return err
	}
	pdf.info = ref
	return nil
}

func (pdf *Writer) lookup(ref Reference) (*entry, error) {
	if ref == 0 || int(ref) > len(pdf.objects) {
		return nil, fmt.Errorf("%s: %w", ref, ErrUnknownReference)
	}
	return pdf.objects[ref-1], nil
}

// WriteTo writes the complete PDF file to w, using root as the document
// catalog.  The method can be called more than once and always produces
// the same output.
func (pdf *Writer) WriteTo(w io.Writer, root Reference) (int64, error) {
	if _, err := pdf.lookup(root); err != nil {
		return 0, fmt.Errorf("document catalog: %w", err)
	}
	for i, e := range pdf.objects {
		if !e.written {
			return 0, &UnwrittenError{Ref: Reference(i + 1)}
		}
	}

	out := &posWriter{w: w}
	_, err := fmt.Fprintf(out, "%%PDF-%s\n%%\x80\x80\x80\x80\n", pdf.ver)
	if err != nil {
		return out.pos, err
	}

	xref := make([]int64, len(pdf.objects)+1)
	for i, e := range pdf.objects {
		number := i + 1
		xref[number] = out.pos
		_, err = fmt.Fprintf(out, "%d 0 obj\n", number)
		if err != nil {
			return out.pos, err
		}
		_, err = out.Write(e.body)
		if err != nil {
			return out.pos, err
		}
		_, err = io.WriteString(out, "\nendobj\n")
		if err != nil {
			return out.pos, err
		}
	}

	trailer := Dict{
		"Size": Integer(len(xref)),
		"Root": root,
	}
	if pdf.info != 0 {
		trailer["Info"] = pdf.info
	}

	xRefPos := out.pos
	err = writeXRefTable(out, xref, trailer)
	if err != nil {
		return out.pos, err
	}
	_, err = fmt.Fprintf(out, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	return out.pos, err
}

// Bytes returns the complete PDF file as a byte slice.
func (pdf *Writer) Bytes(root Reference) ([]byte, error) {
	buf := &bytes.Buffer{}
	_, err := pdf.WriteTo(buf, root)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// posWriter keeps track of the number of bytes written so far.
type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
