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
	"errors"
	"strconv"
)

var (
	// ErrUnknownReference is returned when a reference does not name an
	// object registered with the writer.
	ErrUnknownReference = errors.New("unknown object reference")

	// ErrAlreadyWritten is returned when an object is written twice.
	ErrAlreadyWritten = errors.New("object already written")
)

// UnwrittenError indicates that an object was reserved using
// [Writer.Alloc], but never written.
type UnwrittenError struct {
	Ref Reference
}

func (err *UnwrittenError) Error() string {
	return "object " + strconv.Itoa(err.Ref.Number()) + " was allocated but never written"
}
