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

// CMY is the subtractive complement of the encoded RGB values of the space
// S: C = 1-R, M = 1-G, Y = 1-B.
type CMY[S Space] struct {
	C, M, Y Scalar

	alpha opacity
}

// NewCMY returns the CMY colour with the given components.
func NewCMY[S Space, T Number](c, m, y T) CMY[S] {
	return CMY[S]{C: Of(c), M: Of(m), Y: Of(y)}
}

func cmyFromRGB[S Space](c RGB[S]) CMY[S] {
	return CMY[S]{C: 1 - c.R, M: 1 - c.G, Y: 1 - c.B, alpha: c.alpha}
}

// RGB converts c to the underlying RGB representation.
func (c CMY[S]) RGB() RGB[S] {
	return RGB[S]{R: 1 - c.C, G: 1 - c.M, B: 1 - c.Y, alpha: c.alpha}
}

// Spec returns the specification of the RGB space.
func (c CMY[S]) Spec() *RGBSpec {
	return specOf[S]()
}

// XYZ implements the [Color] interface.
func (c CMY[S]) XYZ() XYZ {
	return c.RGB().XYZ()
}

// FromXYZ converts from the hub.
func (CMY[S]) FromXYZ(x XYZ) CMY[S] {
	return cmyFromRGB(RGB[S]{}.FromXYZ(x))
}

func (c CMY[S]) rgb() (*RGBSpec, [3]float64) {
	return c.RGB().rgb()
}

func (c CMY[S]) inks() [4]float64 {
	return [4]float64{float64(c.C), float64(c.M), float64(c.Y), 0}
}

// Components returns C, M and Y.
func (c CMY[S]) Components() []float64 {
	return []float64{float64(c.C), float64(c.M), float64(c.Y)}
}

// WithComponents returns a copy of c with C, M and Y replaced.
func (c CMY[S]) WithComponents(v ...float64) CMY[S] {
	c.SetComponents(v...)
	return c
}

// SetComponents sets C, M and Y.
func (c *CMY[S]) SetComponents(v ...float64) {
	checkComponents("CMY", 3, v)
	c.C, c.M, c.Y = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c CMY[S]) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c CMY[S]) WithAlpha(a float64) CMY[S] {
	c.alpha = alpha(a)
	return c
}

func (c CMY[S]) convertTo(dst any) bool {
	if d, ok := dst.(*RGB[S]); ok {
		*d = c.RGB()
		return true
	}
	return c.RGB().convertTo(dst)
}

func (c CMY[S]) String() string {
	return fmt.Sprintf("CMY[%s](%v, %v, %v)", specOf[S]().name, c.C, c.M, c.Y)
}

// CMYK is the naive four-colour separation of the encoded RGB values of
// the space S, with the black key K = 1 - max(R, G, B).  No ink model is
// involved.
type CMYK[S Space] struct {
	C, M, Y, K Scalar

	alpha opacity
}

// NewCMYK returns the CMYK colour with the given components.
func NewCMYK[S Space, T Number](c, m, y, k T) CMYK[S] {
	return CMYK[S]{C: Of(c), M: Of(m), Y: Of(y), K: Of(k)}
}

func cmykFromRGB[S Space](c RGB[S]) CMYK[S] {
	v := separate(c.vector())
	return CMYK[S]{
		C:     Scalar(v[0]),
		M:     Scalar(v[1]),
		Y:     Scalar(v[2]),
		K:     Scalar(v[3]),
		alpha: c.alpha,
	}
}

// separate computes the CMYK values for the encoded RGB values v.
// If K is 1, C, M and Y hold the distance of each channel from the largest
// one; this is 0 for black.
func separate(v [3]float64) [4]float64 {
	k := 1 - max(v[0], v[1], v[2])
	res := [4]float64{1 - v[0] - k, 1 - v[1] - k, 1 - v[2] - k, k}
	if k != 1 {
		for i := 0; i < 3; i++ {
			res[i] /= 1 - k
		}
	}
	return res
}

// RGB converts c to the underlying RGB representation.
func (c CMYK[S]) RGB() RGB[S] {
	if c.K == 1 {
		// black, or out of gamut with max(R, G, B) = 0
		return RGB[S]{R: -c.C, G: -c.M, B: -c.Y, alpha: c.alpha}
	}
	return RGB[S]{
		R:     (1 - c.C) * (1 - c.K),
		G:     (1 - c.M) * (1 - c.K),
		B:     (1 - c.Y) * (1 - c.K),
		alpha: c.alpha,
	}
}

// Spec returns the specification of the RGB space.
func (c CMYK[S]) Spec() *RGBSpec {
	return specOf[S]()
}

// XYZ implements the [Color] interface.
func (c CMYK[S]) XYZ() XYZ {
	return c.RGB().XYZ()
}

// FromXYZ converts from the hub.
func (CMYK[S]) FromXYZ(x XYZ) CMYK[S] {
	return cmykFromRGB(RGB[S]{}.FromXYZ(x))
}

func (c CMYK[S]) rgb() (*RGBSpec, [3]float64) {
	return c.RGB().rgb()
}

// Components returns C, M, Y and K.
func (c CMYK[S]) Components() []float64 {
	return []float64{float64(c.C), float64(c.M), float64(c.Y), float64(c.K)}
}

// WithComponents returns a copy of c with C, M, Y and K replaced.
func (c CMYK[S]) WithComponents(v ...float64) CMYK[S] {
	c.SetComponents(v...)
	return c
}

// SetComponents sets C, M, Y and K.
func (c *CMYK[S]) SetComponents(v ...float64) {
	checkComponents("CMYK", 4, v)
	c.C, c.M, c.Y, c.K = Scalar(v[0]), Scalar(v[1]), Scalar(v[2]), Scalar(v[3])
}

// Alpha returns the opacity of the colour.
func (c CMYK[S]) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c CMYK[S]) WithAlpha(a float64) CMYK[S] {
	c.alpha = alpha(a)
	return c
}

func (c CMYK[S]) inks() [4]float64 {
	return [4]float64{float64(c.C), float64(c.M), float64(c.Y), float64(c.K)}
}

func (c CMYK[S]) convertTo(dst any) bool {
	if d, ok := dst.(*RGB[S]); ok {
		*d = c.RGB()
		return true
	}
	return c.RGB().convertTo(dst)
}

func (c CMYK[S]) String() string {
	return fmt.Sprintf("CMYK[%s](%v, %v, %v, %v)", specOf[S]().name, c.C, c.M, c.Y, c.K)
}
