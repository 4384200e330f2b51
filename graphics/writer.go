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

package graphics

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/tilesheet/internal/float"
	"seehuhn.de/go/tilesheet/pdf"
)

// Writer writes a PDF content stream.
type Writer struct {
	Content   io.Writer
	Resources *Resources
	Err       error

	currentObject objectType

	State
	stack []State

	resName map[pdf.Reference]pdf.Name
}

// Resources lists the resources used by a content stream.
type Resources struct {
	XObject pdf.Dict
}

// AsDict returns the resource dictionary for use in a page object.
func (r *Resources) AsDict() pdf.Dict {
	res := pdf.Dict{}
	if len(r.XObject) > 0 {
		res["XObject"] = r.XObject
	}
	return res
}

// NewWriter allocates a new Writer object.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		Content:       out,
		Resources:     &Resources{},
		currentObject: objPage,

		State: NewState(),

		resName: make(map[pdf.Reference]pdf.Name),
	}
}

// Close checks that all graphics states have been restored, and returns
// the first error which occurred while writing the content stream.
func (w *Writer) Close() error {
	if w.Err != nil {
		return w.Err
	}
	if len(w.stack) > 0 {
		return errors.New("unbalanced PushGraphicsState")
	}
	if w.currentObject != objPage {
		return fmt.Errorf("content stream ends inside a %s object", w.currentObject)
	}
	return nil
}

// isValid returns true, if the current graphics object is one of the given types
// and if w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) coord(x float64) string {
	return float.Format(x, 3)
}

// getResourceName returns the name used to refer to the XObject ref from
// within the content stream.  The XObject is added to the resource
// dictionary on first use.
func (w *Writer) getResourceName(ref pdf.Reference) pdf.Name {
	if name, ok := w.resName[ref]; ok {
		return name
	}

	if w.Resources.XObject == nil {
		w.Resources.XObject = pdf.Dict{}
	}
	dict := w.Resources.XObject

	var name pdf.Name
	for k := len(dict) + 1; ; k++ {
		name = "X" + pdf.Name(strconv.Itoa(k))
		if _, isUsed := dict[name]; !isUsed {
			break
		}
	}
	dict[name] = ref
	w.resName[ref] = name
	return name
}

// See Figure 9 (p. 113) of PDF 32000-1:2008.
type objectType int

const (
	objPage objectType = 1 << iota
	objPath
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	default:
		return fmt.Sprintf("objectType(%d)", s)
	}
}
