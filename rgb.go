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

// RGB is a colour given by encoded (gamma corrected) red, green and blue
// values in the RGB space S.  In-gamut colours have all components in
// [0, 1]; other values are kept as they are.
type RGB[S Space] struct {
	R, G, B Scalar

	alpha opacity
}

// NewRGB returns the colour with the given encoded components, which are
// nominally in the range [0, 1].
func NewRGB[S Space, T Number](r, g, b T) RGB[S] {
	return RGB[S]{R: Of(r), G: Of(g), B: Of(b)}
}

// NewRGB8 returns the colour with the given 8-bit components.
func NewRGB8[S Space](r, g, b uint8) RGB[S] {
	return RGB[S]{R: Scalar(r) / 255, G: Scalar(g) / 255, B: Scalar(b) / 255}
}

func specOf[S Space]() *RGBSpec {
	var s S
	return s.Spec()
}

// encodedRGB converts x to encoded RGB values in the given space.  The
// colour is first adapted to the white of the space if needed.
func encodedRGB(spec *RGBSpec, x XYZ) [3]float64 {
	if x.ctx.WhitePoint() != spec.ctx.WhitePoint() {
		x = x.AdaptTo(spec.ctx)
	}
	return spec.fromXYZ(x.vector())
}

func rgbFromVector[S Space](v [3]float64, a opacity) RGB[S] {
	return RGB[S]{R: Scalar(v[0]), G: Scalar(v[1]), B: Scalar(v[2]), alpha: a}
}

func (c RGB[S]) vector() [3]float64 {
	return [3]float64{float64(c.R), float64(c.G), float64(c.B)}
}

// Spec returns the specification of the RGB space.
func (c RGB[S]) Spec() *RGBSpec {
	return specOf[S]()
}

// XYZ implements the [Color] interface.  The result is relative to the
// reference white of the RGB space.
func (c RGB[S]) XYZ() XYZ {
	spec := specOf[S]()
	res := xyzFromVector(spec.toXYZ(c.vector()), spec.ctx)
	res.alpha = c.alpha
	return res
}

// FromXYZ converts from the hub, adapting x to the white of the space if
// needed.
func (RGB[S]) FromXYZ(x XYZ) RGB[S] {
	return rgbFromVector[S](encodedRGB(specOf[S](), x), x.alpha)
}

func (c RGB[S]) rgb() (*RGBSpec, [3]float64) {
	return specOf[S](), c.vector()
}

// Components returns R, G and B.
func (c RGB[S]) Components() []float64 {
	return []float64{float64(c.R), float64(c.G), float64(c.B)}
}

// WithComponents returns a copy of c with R, G and B replaced.
func (c RGB[S]) WithComponents(v ...float64) RGB[S] {
	c.SetComponents(v...)
	return c
}

// SetComponents sets R, G and B.
func (c *RGB[S]) SetComponents(v ...float64) {
	checkComponents("RGB", 3, v)
	c.R, c.G, c.B = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c RGB[S]) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c RGB[S]) WithAlpha(a float64) RGB[S] {
	c.alpha = alpha(a)
	return c
}

// Linear returns the linear-light values of c.
func (c RGB[S]) Linear() LinearRGB[S] {
	tf := specOf[S]().tf
	return LinearRGB[S]{
		R:     Scalar(tf.Decode(float64(c.R))),
		G:     Scalar(tf.Decode(float64(c.G))),
		B:     Scalar(tf.Decode(float64(c.B))),
		alpha: c.alpha,
	}
}

// InGamut reports whether all components are in the range [0, 1], up to
// a small tolerance for rounding errors.
func (c RGB[S]) InGamut() bool {
	for _, v := range c.vector() {
		if v < -gamutTolerance || v > 1+gamutTolerance {
			return false
		}
	}
	return true
}

// Clamped returns c with all components limited to [0, 1].
func (c RGB[S]) Clamped() RGB[S] {
	c.R = c.R.Clamp(0, 1)
	c.G = c.G.Clamp(0, 1)
	c.B = c.B.Clamp(0, 1)
	return c
}

// convertTo implements direct conversions to the other representations
// of the same RGB space.
func (c RGB[S]) convertTo(dst any) bool {
	switch d := dst.(type) {
	case *LinearRGB[S]:
		*d = c.Linear()
	case *HSL[S]:
		*d = hslFromRGB(c)
	case *HSV[S]:
		*d = hsvFromRGB(c)
	case *HWB[S]:
		*d = hwbFromRGB(c)
	case *HSI[S]:
		*d = hsiFromRGB(c)
	case *CMY[S]:
		*d = cmyFromRGB(c)
	case *CMYK[S]:
		*d = cmykFromRGB(c)
	default:
		return false
	}
	return true
}

func (c RGB[S]) String() string {
	return fmt.Sprintf("RGB[%s](%v, %v, %v)", specOf[S]().name, c.R, c.G, c.B)
}

// gamutTolerance is the amount by which a component may exceed the
// nominal range and still count as in gamut.
const gamutTolerance = 1e-9

// LinearRGB is a colour given by linear-light red, green and blue values
// in the RGB space S.
type LinearRGB[S Space] struct {
	R, G, B Scalar

	alpha opacity
}

// NewLinearRGB returns the colour with the given linear components.
func NewLinearRGB[S Space, T Number](r, g, b T) LinearRGB[S] {
	return LinearRGB[S]{R: Of(r), G: Of(g), B: Of(b)}
}

// Spec returns the specification of the RGB space.
func (c LinearRGB[S]) Spec() *RGBSpec {
	return specOf[S]()
}

func (c LinearRGB[S]) vector() [3]float64 {
	return [3]float64{float64(c.R), float64(c.G), float64(c.B)}
}

// XYZ implements the [Color] interface.
func (c LinearRGB[S]) XYZ() XYZ {
	spec := specOf[S]()
	res := xyzFromVector(spec.Matrix().Apply(c.vector()), spec.ctx)
	res.alpha = c.alpha
	return res
}

// FromXYZ converts from the hub, adapting x to the white of the space if
// needed.
func (LinearRGB[S]) FromXYZ(x XYZ) LinearRGB[S] {
	spec := specOf[S]()
	if x.ctx.WhitePoint() != spec.ctx.WhitePoint() {
		x = x.AdaptTo(spec.ctx)
	}
	v := spec.InverseMatrix().Apply(x.vector())
	return LinearRGB[S]{R: Scalar(v[0]), G: Scalar(v[1]), B: Scalar(v[2]), alpha: x.alpha}
}

func (c LinearRGB[S]) rgb() (*RGBSpec, [3]float64) {
	return specOf[S](), c.Encoded().vector()
}

// Components returns R, G and B.
func (c LinearRGB[S]) Components() []float64 {
	return []float64{float64(c.R), float64(c.G), float64(c.B)}
}

// WithComponents returns a copy of c with R, G and B replaced.
func (c LinearRGB[S]) WithComponents(v ...float64) LinearRGB[S] {
	c.SetComponents(v...)
	return c
}

// SetComponents sets R, G and B.
func (c *LinearRGB[S]) SetComponents(v ...float64) {
	checkComponents("LinearRGB", 3, v)
	c.R, c.G, c.B = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c LinearRGB[S]) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c LinearRGB[S]) WithAlpha(a float64) LinearRGB[S] {
	c.alpha = alpha(a)
	return c
}

// Encoded applies the transfer function of the space.
func (c LinearRGB[S]) Encoded() RGB[S] {
	tf := specOf[S]().tf
	return RGB[S]{
		R:     Scalar(tf.Encode(float64(c.R))),
		G:     Scalar(tf.Encode(float64(c.G))),
		B:     Scalar(tf.Encode(float64(c.B))),
		alpha: c.alpha,
	}
}

func (c LinearRGB[S]) convertTo(dst any) bool {
	switch d := dst.(type) {
	case *RGB[S]:
		*d = c.Encoded()
		return true
	}
	return false
}

func (c LinearRGB[S]) String() string {
	return fmt.Sprintf("LinearRGB[%s](%v, %v, %v)", specOf[S]().name, c.R, c.G, c.B)
}
