// seehuhn.de/go/colorimetry - colour spaces and chromatic adaptation
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

package colorimetry

import "errors"

// Configuration errors.  These are reported when a colour space or an
// adaptation transform is constructed, never when it is used.
var (
	// ErrSingularMatrix indicates a 3x3 matrix without an inverse.
	ErrSingularMatrix = errors.New("colorimetry: singular matrix")

	// ErrDegeneratePrimaries indicates RGB primaries which do not span a
	// triangle in the chromaticity diagram.
	ErrDegeneratePrimaries = errors.New("colorimetry: degenerate primaries")

	// ErrInvalidWhitePoint indicates a reference white with zero or
	// non-finite luminance.
	ErrInvalidWhitePoint = errors.New("colorimetry: invalid white point")

	// ErrInvalidGamma indicates a power-law exponent which is not a
	// positive, finite number.
	ErrInvalidGamma = errors.New("colorimetry: invalid gamma")

	// ErrUnknownName indicates a lookup of an unknown transform or space.
	ErrUnknownName = errors.New("colorimetry: unknown name")
)
