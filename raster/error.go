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

package raster

import (
	"errors"
	"strconv"
)

// MalformedError indicates that the data is not a valid PNG file.
type MalformedError struct {
	Pos int64
	Err error
}

func (err *MalformedError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid PNG file" + middle + tail
}

func (err *MalformedError) Unwrap() error {
	return err.Err
}

// UnsupportedError indicates a valid PNG file which uses features not
// supported by this package.
type UnsupportedError struct {
	Feature string
}

func (err *UnsupportedError) Error() string {
	return "unsupported PNG feature: " + err.Feature
}

var (
	errSignature  = errors.New("wrong signature")
	errTruncated  = errors.New("unexpected end of data")
	errNoHeader   = errors.New("missing IHDR chunk")
	errNoData     = errors.New("missing IDAT chunk")
	errNoEnd      = errors.New("missing IEND chunk")
	errDimensions = errors.New("invalid image dimensions")
	errShortData  = errors.New("not enough image data")
)

func malformed(pos int, err error) error {
	return &MalformedError{Pos: int64(pos), Err: err}
}
