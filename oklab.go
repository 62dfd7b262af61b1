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
)

// The matrices of Björn Ottosson's Oklab space.
var (
	oklabM1 = Matrix3{
		{0.8189330101, 0.3618667424, -0.1288597137},
		{0.0329845436, 0.9293118715, 0.0361456387},
		{0.0482003018, 0.2643662691, 0.6338517070},
	}
	oklabM2 = Matrix3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	oklabM1Inv = mustInverse(oklabM1)
	oklabM2Inv = mustInverse(oklabM2)
)

// oklabAchromaticThreshold is the Oklab chroma below which a colour counts
// as grey.  The published matrices map the D65 white to a chroma of about
// 1e-4, well below anything visible.
const oklabAchromaticThreshold = 4e-4

// Oklab is a colour in the Oklab perceptual space.  Oklab is defined
// relative to a D65 white: colours with a different reference white are
// adapted on conversion.
//
// L is the perceived lightness, 0 for black and 1 for the reference white.
// A and B are the green/red and blue/yellow opponent axes.
type Oklab struct {
	L, A, B Scalar

	alpha opacity
}

// NewOklab returns the Oklab colour with the given components.
func NewOklab[T Number](l, a, b T) Oklab {
	return Oklab{L: Of(l), A: Of(a), B: Of(b)}
}

// oklabContext is the context of the XYZ values produced by Oklab.
var oklabContext = Context{Illuminant: D65, Observer: CIE1931}

// XYZ implements the [Color] interface.
func (c Oklab) XYZ() XYZ {
	lms := oklabM2Inv.Apply([3]float64{float64(c.L), float64(c.A), float64(c.B)})
	for i, v := range lms {
		lms[i] = v * v * v
	}
	res := xyzFromVector(oklabM1Inv.Apply(lms), oklabContext)
	res.alpha = c.alpha
	return res
}

// FromXYZ converts from the hub.
func (Oklab) FromXYZ(x XYZ) Oklab {
	if x.ctx.WhitePoint() != oklabContext.WhitePoint() {
		x = x.AdaptTo(oklabContext)
	}
	lms := oklabM1.Apply(x.vector())
	for i, v := range lms {
		lms[i] = math.Cbrt(v)
	}
	lab := oklabM2.Apply(lms)
	return Oklab{L: Scalar(lab[0]), A: Scalar(lab[1]), B: Scalar(lab[2]), alpha: x.alpha}
}

// Components returns L, a and b.
func (c Oklab) Components() []float64 {
	return []float64{float64(c.L), float64(c.A), float64(c.B)}
}

// WithComponents returns a copy of c with L, a and b replaced.
func (c Oklab) WithComponents(v ...float64) Oklab {
	c.SetComponents(v...)
	return c
}

// SetComponents sets L, a and b.
func (c *Oklab) SetComponents(v ...float64) {
	checkComponents("Oklab", 3, v)
	c.L, c.A, c.B = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c Oklab) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c Oklab) WithAlpha(a float64) Oklab {
	c.alpha = alpha(a)
	return c
}

// Lightness returns L.
func (c Oklab) Lightness() float64 {
	return float64(c.L)
}

// Chroma returns the distance from the neutral axis.
func (c Oklab) Chroma() float64 {
	return math.Hypot(float64(c.A), float64(c.B))
}

// Hue returns the hue angle in degrees, see [Hue].
func (c Oklab) Hue() float64 {
	_, h := polar(float64(c.A), float64(c.B), oklabAchromaticThreshold)
	return h
}

// WithHueRotatedBy rotates the a/b plane by deg degrees.
func (c Oklab) WithHueRotatedBy(deg float64) Oklab {
	s, co := math.Sincos(deg * math.Pi / 180)
	a, b := float64(c.A), float64(c.B)
	c.A, c.B = Scalar(a*co-b*s), Scalar(a*s+b*co)
	return c
}

// MixedWith returns the colour a fraction t of the way from c to o,
// interpolating L, a and b linearly.
func (c Oklab) MixedWith(o Color, t float64) Oklab {
	b, ok := o.(Oklab)
	if !ok {
		b = Oklab{}.FromXYZ(o.XYZ())
	}
	c.L += Scalar(t) * (b.L - c.L)
	c.A += Scalar(t) * (b.A - c.A)
	c.B += Scalar(t) * (b.B - c.B)
	c.alpha = mixAlpha(c, o, t)
	return c
}

func (c Oklab) oklch() Oklch {
	C, h := polar(float64(c.A), float64(c.B), oklabAchromaticThreshold)
	return Oklch{L: c.L, C: Scalar(C), H: Scalar(h), alpha: c.alpha}
}

func (c Oklab) convertTo(dst any) bool {
	switch d := dst.(type) {
	case *Oklch:
		*d = c.oklch()
		return true
	}
	return false
}

func (c Oklab) String() string {
	return fmt.Sprintf("Oklab(%v, %v, %v)", c.L, c.A, c.B)
}

// Oklch is the cylindrical form of [Oklab], with the hue H in degrees.
// Oklch defines the hue, chroma and lightness reported by [Hue], [Chroma]
// and [Lightness].
type Oklch struct {
	L, C, H Scalar

	alpha opacity
}

// NewOklch returns the Oklch colour with the given components.
func NewOklch[T Number](l, c, h T) Oklch {
	return Oklch{L: Of(l), C: Of(c), H: Of(h)}
}

func (c Oklch) oklab() Oklab {
	a, b := cartesian(float64(c.C), float64(c.H))
	return Oklab{L: c.L, A: Scalar(a), B: Scalar(b), alpha: c.alpha}
}

// XYZ implements the [Color] interface.
func (c Oklch) XYZ() XYZ {
	return c.oklab().XYZ()
}

// FromXYZ converts from the hub.
func (Oklch) FromXYZ(x XYZ) Oklch {
	return Oklab{}.FromXYZ(x).oklch()
}

// Components returns L, C and h.
func (c Oklch) Components() []float64 {
	return []float64{float64(c.L), float64(c.C), float64(c.H)}
}

// WithComponents returns a copy of c with L, C and h replaced.
func (c Oklch) WithComponents(v ...float64) Oklch {
	c.SetComponents(v...)
	return c
}

// SetComponents sets L, C and h.
func (c *Oklch) SetComponents(v ...float64) {
	checkComponents("Oklch", 3, v)
	c.L, c.C, c.H = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c Oklch) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c Oklch) WithAlpha(a float64) Oklch {
	c.alpha = alpha(a)
	return c
}

// Lightness returns L.
func (c Oklch) Lightness() float64 {
	return float64(c.L)
}

// Chroma returns C.
func (c Oklch) Chroma() float64 {
	return float64(c.C)
}

// Hue returns the hue angle in [0, 360).  For achromatic colours the
// result is [AchromaticHue].
func (c Oklch) Hue() float64 {
	return hueOf(float64(c.C), float64(c.H), oklabAchromaticThreshold)
}

// WithHueRotatedBy returns c with the hue angle increased by deg degrees.
func (c Oklch) WithHueRotatedBy(deg float64) Oklch {
	c.H = Scalar(normalizeHue(float64(c.H) + deg))
	return c
}

// MixedWith returns the colour a fraction t of the way from c to o.
// Lightness and chroma are interpolated linearly, the hue along the
// shorter arc.
func (c Oklch) MixedWith(o Color, t float64) Oklch {
	b, ok := o.(Oklch)
	if !ok {
		b = Oklch{}.FromXYZ(o.XYZ())
	}
	c1, c2 := float64(c.C), float64(b.C)
	h := mixHue(c1, float64(c.H), c2, float64(b.H), t, oklabAchromaticThreshold)
	c.L += Scalar(t) * (b.L - c.L)
	c.C = Scalar(c1 + t*(c2-c1))
	c.H = Scalar(h)
	c.alpha = mixAlpha(c, o, t)
	return c
}

func (c Oklch) convertTo(dst any) bool {
	switch d := dst.(type) {
	case *Oklab:
		*d = c.oklab()
		return true
	}
	return false
}

func (c Oklch) String() string {
	return fmt.Sprintf("Oklch(%v, %v, %v°)", c.L, c.C, c.H)
}
