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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tilesheet/pdf"
)

func TestWriterOperators(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	w.PushGraphicsState()
	w.Transform(matrix.Scale(48.1891, 68.0316).Mul(matrix.Translate(28.3466, 283.4646)))
	w.DrawXObject(7)
	w.PopGraphicsState()
	w.PushGraphicsState()
	w.SetLineWidth(0.5)
	w.SetLineWidth(0.5)
	w.SetStrokeColorRGB(1, 0, 0)
	w.Line(vec.Vec2{X: 0, Y: 210}, vec.Vec2{X: 283.5, Y: 210})
	w.Stroke()
	w.SetStrokeColorRGB(1, 0, 0)
	w.SetStrokeColorRGB(0, 0, 1)
	w.Rectangle(rect.Rect{LLx: 10, LLy: 20, URx: 30, URy: 60})
	w.Stroke()
	w.PopGraphicsState()
	w.DrawXObject(7)
	w.DrawXObject(9)

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	want := `q
48.189 0 0 68.032 28.347 283.465 cm
/X1 Do
Q
q
.5 w
1 0 0 RG
0 210 m
283.5 210 l
S
0 0 1 RG
10 20 20 40 re
S
Q
/X1 Do
/X2 Do
`
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("content stream (-want +got):\n%s", d)
	}

	wantRes := pdf.Dict{
		"XObject": pdf.Dict{
			"X1": pdf.Reference(7),
			"X2": pdf.Reference(9),
		},
	}
	if d := cmp.Diff(wantRes, w.Resources.AsDict()); d != "" {
		t.Errorf("resources (-want +got):\n%s", d)
	}
}

func TestStateRestore(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	w.PushGraphicsState()
	w.SetLineWidth(3)
	w.Transform(matrix.Translate(5, 6))
	w.PopGraphicsState()

	if w.LineWidth != 1 || w.isSet(StateLineWidth) {
		t.Errorf("line width not restored: %g", w.LineWidth)
	}
	if w.CTM != matrix.Identity {
		t.Errorf("CTM not restored: %v", w.CTM)
	}
}

func TestWriterErrors(t *testing.T) {
	cases := []struct {
		name string
		ops  func(w *Writer)
	}{
		{"unbalanced pop", func(w *Writer) { w.PopGraphicsState() }},
		{"unbalanced push", func(w *Writer) { w.PushGraphicsState() }},
		{"stroke without path", func(w *Writer) { w.Stroke() }},
		{"line without move", func(w *Writer) { w.LineTo(1, 1) }},
		{"open path", func(w *Writer) { w.MoveTo(1, 1) }},
		{"draw inside path", func(w *Writer) { w.MoveTo(1, 1); w.DrawXObject(1) }},
		{"negative width", func(w *Writer) { w.SetLineWidth(-1) }},
		{"invalid color", func(w *Writer) { w.SetStrokeColorRGB(0, 2, 0) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWriter(&bytes.Buffer{})
			c.ops(w)
			if w.Close() == nil {
				t.Error("expected an error")
			}
		})
	}
}
