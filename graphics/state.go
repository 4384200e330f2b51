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
	"math"

	"seehuhn.de/go/geom/matrix"
)

// State holds the parts of the graphics state which are tracked by the
// [Writer].
type State struct {
	CTM         matrix.Matrix
	LineWidth   float64
	StrokeColor [3]float64

	// Set records which of the parameters have been set explicitly.
	Set StateBits
}

// StateBits is a bit mask for the parameters in [State].
type StateBits int

// Possible values for StateBits.
const (
	StateLineWidth StateBits = 1 << iota
	StateStrokeColor
)

// NewState returns the graphics state at the start of a content stream.
func NewState() State {
	return State{
		CTM:       matrix.Identity,
		LineWidth: 1,
	}
}

func (s State) isSet(bits StateBits) bool {
	return s.Set&bits == bits
}

func nearlyEqual(a, b float64) bool {
	const ε = 1e-6
	return math.Abs(a-b) < ε
}
