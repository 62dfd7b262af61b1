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

import "fmt"

// UVPrime is a point in the CIE 1976 u'v' chromaticity diagram, the
// chromaticity plane of [Luv].
type UVPrime struct {
	U, V float64
}

// UV is a point in the CIE 1960 uv chromaticity diagram, which is still
// used for correlated colour temperatures.  It differs from [UVPrime] only
// by the scale of v.
type UV struct {
	U, V float64
}

// UVPrime returns the u'v' coordinates of c.
func (c Chromaticity) UVPrime() UVPrime {
	d := -2*c.X + 12*c.Y + 3
	if d == 0 {
		return UVPrime{}
	}
	return UVPrime{U: 4 * c.X / d, V: 9 * c.Y / d}
}

// UV returns the CIE 1960 uv coordinates of c.
func (c Chromaticity) UV() UV {
	return c.UVPrime().UV()
}

// Chromaticity returns the xy coordinates of c.
func (c UVPrime) Chromaticity() Chromaticity {
	d := 6*c.U - 16*c.V + 12
	if d == 0 {
		return Chromaticity{}
	}
	return Chromaticity{X: 9 * c.U / d, Y: 4 * c.V / d}
}

// UV returns the CIE 1960 coordinates of c.
func (c UVPrime) UV() UV {
	return UV{U: c.U, V: c.V * 2 / 3}
}

func (c UVPrime) String() string {
	return fmt.Sprintf("u'v'(%.4f, %.4f)", c.U, c.V)
}

// Chromaticity returns the xy coordinates of c.
func (c UV) Chromaticity() Chromaticity {
	return c.UVPrime().Chromaticity()
}

// UVPrime returns the CIE 1976 coordinates of c.
func (c UV) UVPrime() UVPrime {
	return UVPrime{U: c.U, V: c.V * 3 / 2}
}

func (c UV) String() string {
	return fmt.Sprintf("uv(%.4f, %.4f)", c.U, c.V)
}

// UVPrime returns the u'v' chromaticity of c.  Black has coordinates (0, 0).
func (c XYZ) UVPrime() UVPrime {
	u, v := uvPrime(c.vector())
	return UVPrime{U: u, V: v}
}

// UV returns the CIE 1960 uv chromaticity of c.
func (c XYZ) UV() UV {
	return c.UVPrime().UV()
}

// RG is a chromaticity relative to the primaries of the RGB space S: the
// shares r = R/(R+G+B) and g = G/(R+G+B) of the linear channel values.
type RG[S Space] struct {
	R, G float64
}

// RGOf returns the rg chromaticity of c in the RGB space S.  Colours with
// R+G+B = 0 have coordinates (0, 0).
func RGOf[S Space](c Color) RG[S] {
	lin := Convert[LinearRGB[S]](c)
	r, g, b := float64(lin.R), float64(lin.G), float64(lin.B)
	sum := r + g + b
	if sum == 0 {
		return RG[S]{}
	}
	return RG[S]{R: r / sum, G: g / sum}
}

// Chromaticity returns the xy coordinates of c.
func (c RG[S]) Chromaticity() Chromaticity {
	xyz := specOf[S]().Matrix().Apply([3]float64{c.R, c.G, 1 - c.R - c.G})
	sum := xyz[0] + xyz[1] + xyz[2]
	if sum == 0 {
		return Chromaticity{}
	}
	return Chromaticity{X: xyz[0] / sum, Y: xyz[1] / sum}
}

func (c RG[S]) String() string {
	return fmt.Sprintf("rg[%s](%.4f, %.4f)", specOf[S]().name, c.R, c.G)
}
