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

import (
	"fmt"
	"math"
	"sync"
)

// Primaries are the chromaticities of the red, green and blue primaries
// of an RGB space.
type Primaries struct {
	Red, Green, Blue Chromaticity
}

// Area returns the signed area of the gamut triangle in the xy
// chromaticity diagram.  The area is positive if the primaries are listed
// counter-clockwise.
func (p Primaries) Area() float64 {
	ax, ay := p.Green.X-p.Red.X, p.Green.Y-p.Red.Y
	bx, by := p.Blue.X-p.Red.X, p.Blue.Y-p.Red.Y
	return (ax*by - ay*bx) / 2
}

// matrix returns the matrix whose columns are the XYZ values of the
// primaries, each at unit luminance.
func (p Primaries) matrix() Matrix3 {
	return Columns(p.Red.XYZ(1), p.Green.XYZ(1), p.Blue.XYZ(1))
}

// RGBSpec describes an RGB space by its primaries, its transfer function
// and its reference white.
//
// The matrices which map linear RGB values to XYZ and back are derived
// from the primaries and the white point on first use, and are then shared
// by all users of the specification.  An RGBSpec is safe for concurrent
// use.
type RGBSpec struct {
	name      string
	primaries Primaries
	tf        TransferFunction
	ctx       Context

	matrix  func() Matrix3
	inverse func() Matrix3
}

// NewRGBSpec returns the specification of an RGB space.
//
// Colinear primaries, a primary with y = 0, or a reference white on an
// edge of the gamut triangle give an error wrapping
// [ErrDegeneratePrimaries].  A context whose reference white has zero
// luminance gives an error wrapping [ErrInvalidWhitePoint].
func NewRGBSpec(name string, p Primaries, tf TransferFunction, ctx Context) (*RGBSpec, error) {
	for _, c := range []Chromaticity{p.Red, p.Green, p.Blue} {
		if c.Y == 0 || !isFinite(c.X) || !isFinite(c.Y) {
			return nil, fmt.Errorf("colorimetry: %s: %w", name, ErrDegeneratePrimaries)
		}
	}
	pm := p.matrix()
	det := pm.Determinant()
	if !(math.Abs(p.Area()) >= 1e-12) || det == 0 || !isFinite(det) {
		return nil, fmt.Errorf("colorimetry: %s: %w", name, ErrDegeneratePrimaries)
	}
	white := ctx.WhitePoint()
	if !validWhite(white) {
		return nil, fmt.Errorf("colorimetry: %s: %w", name, ErrInvalidWhitePoint)
	}

	// The white is a positive combination of the primaries if it lies
	// inside the triangle.  A vanishing weight puts it on an edge, and the
	// RGB to XYZ matrix would be singular.
	scale := mustInverse(pm).Apply(white)
	largest := max(math.Abs(scale[0]), math.Abs(scale[1]), math.Abs(scale[2]))
	for _, w := range scale {
		if !isFinite(w) || !(math.Abs(w) > whiteWeightTolerance*largest) {
			return nil, fmt.Errorf("colorimetry: %s: %w", name, ErrDegeneratePrimaries)
		}
	}

	s := &RGBSpec{
		name:      name,
		primaries: p,
		tf:        tf,
		ctx:       ctx,
	}
	s.matrix = sync.OnceValue(func() Matrix3 {
		return pm.Mul(Diagonal(scale[0], scale[1], scale[2]))
	})
	s.inverse = sync.OnceValue(func() Matrix3 {
		return mustInverse(s.matrix())
	})
	return s, nil
}

// whiteWeightTolerance is the relative size below which the weight of a
// primary in the reference white counts as zero.
const whiteWeightTolerance = 1e-9

func mustRGBSpec(name string, p Primaries, tf TransferFunction, ctx Context) *RGBSpec {
	s, err := NewRGBSpec(name, p, tf, ctx)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the name of the space, e.g. "sRGB".
func (s *RGBSpec) Name() string {
	return s.name
}

// Primaries returns the chromaticities of the primaries.
func (s *RGBSpec) Primaries() Primaries {
	return s.primaries
}

// Transfer returns the transfer function of the space.
func (s *RGBSpec) Transfer() TransferFunction {
	return s.tf
}

// Context returns the viewing context of the space.
func (s *RGBSpec) Context() Context {
	return s.ctx
}

// Matrix returns the matrix mapping linear RGB values to XYZ.
func (s *RGBSpec) Matrix() Matrix3 {
	return s.matrix()
}

// InverseMatrix returns the matrix mapping XYZ to linear RGB values.
func (s *RGBSpec) InverseMatrix() Matrix3 {
	return s.inverse()
}

func (s *RGBSpec) String() string {
	return s.name
}

// toXYZ maps encoded RGB values to XYZ.
func (s *RGBSpec) toXYZ(rgb [3]float64) [3]float64 {
	for i, v := range rgb {
		rgb[i] = s.tf.Decode(v)
	}
	return s.matrix().Apply(rgb)
}

// fromXYZ maps XYZ values to encoded RGB values.
func (s *RGBSpec) fromXYZ(xyz [3]float64) [3]float64 {
	rgb := s.inverse().Apply(xyz)
	for i, v := range rgb {
		rgb[i] = s.tf.Encode(v)
	}
	return rgb
}
