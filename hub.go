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
	"math"

	"fortio.org/safecast"
)

// AchromaticHue is the hue reported for colours without chroma, for
// example greys.  Hue angles of such colours are undefined; this value
// is used instead of NaN.
const AchromaticHue = 0.0

// achromaticThreshold is the chroma below which a colour is treated as
// achromatic.
const achromaticThreshold = 1e-9

// Convert converts the colour c to the representation T.
//
// If c already has type T, it is returned unchanged.  Representations which
// know a direct path to T, for example [Lab] to [LCh] or [RGB] to [HSL] in
// the same RGB space, use it.  All other conversions go through [XYZ].
func Convert[T Model[T]](c Color) T {
	if v, ok := c.(T); ok {
		return v
	}
	var out T
	if d, ok := c.(directConverter); ok && d.convertTo(&out) {
		return out
	}
	return out.FromXYZ(c.XYZ())
}

// back converts x to the representation of orig, in the context of orig.
func back[T Model[T]](orig T, x XYZ) T {
	ctx := orig.XYZ().ctx
	if x.ctx.WhitePoint() != ctx.WhitePoint() {
		x = x.AdaptTo(ctx)
	} else {
		x.ctx = ctx
	}
	return orig.FromXYZ(x)
}

// Luminance returns the relative luminance Y of c.  The reference white of
// the colour's context has luminance 1.
func Luminance(c Color) float64 {
	if l, ok := c.(luminancer); ok {
		return l.Luminance()
	}
	return float64(c.XYZ().Y)
}

// ChromaticityOf returns the CIE xy chromaticity of c.
func ChromaticityOf(c Color) Chromaticity {
	if l, ok := c.(chromaticitier); ok {
		return l.Chromaticity()
	}
	return c.XYZ().Chromaticity()
}

// Hue returns the hue angle of c in degrees, in the range [0, 360).
// Unless c has its own notion of hue, this is the Oklch hue.  For
// achromatic colours the result is [AchromaticHue].
func Hue(c Color) float64 {
	if h, ok := c.(huer); ok {
		return h.Hue()
	}
	return Oklch{}.FromXYZ(c.XYZ()).Hue()
}

// Chroma returns the chroma of c.  Unless c has its own notion of chroma,
// this is the Oklch chroma.
func Chroma(c Color) float64 {
	if h, ok := c.(chromaer); ok {
		return h.Chroma()
	}
	return Oklch{}.FromXYZ(c.XYZ()).Chroma()
}

// Lightness returns the perceived lightness of c, as given by the L
// component of Oklab.
func Lightness(c Color) float64 {
	if l, ok := c.(lightnesser); ok {
		return l.Lightness()
	}
	return Oklab{}.FromXYZ(c.XYZ()).Lightness()
}

// channels returns the encoded RGB values of c in the colour's own RGB
// space, or in sRGB for representations not tied to an RGB space.
func channels(c Color) [3]float64 {
	if s, ok := c.(rgbSource); ok {
		_, v := s.rgb()
		return v
	}
	return encodedRGB(SRGBSpec, c.XYZ())
}

// to8bit scales v to [0, 255] and rounds.  Values which do not fit into
// a byte, including NaN, saturate.
func to8bit(v float64) uint8 {
	b, err := safecast.Round[uint8](v * 255)
	if err != nil {
		if v > 0 {
			return 255
		}
		return 0
	}
	return b
}

// Red returns the red channel of c as an 8-bit value.  The channel is
// taken in the colour's own RGB space, or in sRGB if c is not tied to an
// RGB space.  Values outside the gamut are clipped.
func Red(c Color) uint8 {
	return to8bit(channels(c)[0])
}

// Green returns the green channel of c as an 8-bit value, see [Red].
func Green(c Color) uint8 {
	return to8bit(channels(c)[1])
}

// Blue returns the blue channel of c as an 8-bit value, see [Red].
func Blue(c Color) uint8 {
	return to8bit(channels(c)[2])
}

// inks returns the subtractive components of c.  CMY and CMYK values
// report their own components, everything else is separated from its RGB
// channels as for [Red].
func inks(c Color) [4]float64 {
	if s, ok := c.(inker); ok {
		return s.inks()
	}
	return separate(channels(c))
}

// Cyan returns the cyan component of the CMYK separation of c.
func Cyan(c Color) float64 {
	return inks(c)[0]
}

// Magenta returns the magenta component of the CMYK separation of c.
func Magenta(c Color) float64 {
	return inks(c)[1]
}

// Yellow returns the yellow component of the CMYK separation of c.
func Yellow(c Color) float64 {
	return inks(c)[2]
}

// Key returns the black component of the CMYK separation of c.
func Key(c Color) float64 {
	return inks(c)[3]
}

// InGamut reports whether c can be represented in the RGB space S with
// all components in [0, 1].
func InGamut[S Space](c Color) bool {
	return Convert[RGB[S]](c).InGamut()
}

// WithLuminance returns the colour with the chromaticity of c and
// relative luminance y.
func WithLuminance[T Model[T]](c T, y float64) T {
	if s, ok := any(c).(luminanceSetter[T]); ok {
		return s.WithLuminance(y)
	}
	return back(c, c.XYZ().WithLuminance(y))
}

// SetLuminance changes the luminance of *c in place, see [WithLuminance].
func SetLuminance[T Model[T]](c *T, y float64) {
	*c = WithLuminance(*c, y)
}

// WithLuminanceScaledBy returns c with its luminance multiplied by f.
func WithLuminanceScaledBy[T Model[T]](c T, f float64) T {
	if s, ok := any(c).(luminanceScaler[T]); ok {
		return s.WithLuminanceScaledBy(f)
	}
	return WithLuminance(c, Luminance(c)*f)
}

// ScaleLuminance multiplies the luminance of *c by f.
func ScaleLuminance[T Model[T]](c *T, f float64) {
	*c = WithLuminanceScaledBy(*c, f)
}

// WithLuminanceIncrementedBy returns c with d added to its luminance.
func WithLuminanceIncrementedBy[T Model[T]](c T, d float64) T {
	return WithLuminance(c, Luminance(c)+d)
}

// IncrementLuminance adds d to the luminance of *c.
func IncrementLuminance[T Model[T]](c *T, d float64) {
	*c = WithLuminanceIncrementedBy(*c, d)
}

// WithLuminanceDecrementedBy returns c with d subtracted from its
// luminance.
func WithLuminanceDecrementedBy[T Model[T]](c T, d float64) T {
	return WithLuminance(c, Luminance(c)-d)
}

// DecrementLuminance subtracts d from the luminance of *c.
func DecrementLuminance[T Model[T]](c *T, d float64) {
	*c = WithLuminanceDecrementedBy(*c, d)
}

// AmplifiedBy returns c with all tristimulus values multiplied by f.
func AmplifiedBy[T Model[T]](c T, f float64) T {
	x := c.XYZ()
	x.X *= Scalar(f)
	x.Y *= Scalar(f)
	x.Z *= Scalar(f)
	return c.FromXYZ(x)
}

// Amplify multiplies the tristimulus values of *c by f.
func Amplify[T Model[T]](c *T, f float64) {
	*c = AmplifiedBy(*c, f)
}

// AttenuatedBy returns c with all tristimulus values divided by f.
func AttenuatedBy[T Model[T]](c T, f float64) T {
	return AmplifiedBy(c, 1/f)
}

// Attenuate divides the tristimulus values of *c by f.
func Attenuate[T Model[T]](c *T, f float64) {
	*c = AttenuatedBy(*c, f)
}

// AdaptedTo returns the colour corresponding to c under the viewing
// conditions ctx.  Representations with a fixed reference white, like the
// RGB spaces and Oklab, express the result relative to their own white.
func AdaptedTo[T Model[T]](c T, ctx Context) T {
	if a, ok := any(c).(adapter[T]); ok {
		return a.AdaptTo(ctx)
	}
	return c.FromXYZ(c.XYZ().AdaptTo(ctx))
}

// AdaptTo changes *c to the corresponding colour under ctx, see
// [AdaptedTo].
func AdaptTo[T Model[T]](c *T, ctx Context) {
	*c = AdaptedTo(*c, ctx)
}

// WithHueRotatedBy returns c with its hue turned by deg degrees.  Unless c
// has its own notion of hue, the rotation is done in Oklch.
func WithHueRotatedBy[T Model[T]](c T, deg float64) T {
	if r, ok := any(c).(hueRotator[T]); ok {
		return r.WithHueRotatedBy(deg)
	}
	lch := Oklch{}.FromXYZ(c.XYZ()).WithHueRotatedBy(deg)
	return back(c, lch.XYZ())
}

// RotateHue turns the hue of *c by deg degrees.
func RotateHue[T Model[T]](c *T, deg float64) {
	*c = WithHueRotatedBy(*c, deg)
}

// MixedWith returns the colour a fraction t of the way from c to o.
// Representations with their own MixedWith method interpolate in their
// own coordinates.  For all others the interpolation, including the alpha
// channel, is linear in Oklab.
func MixedWith[T Model[T]](c T, o Color, t float64) T {
	if m, ok := any(c).(mixer[T]); ok {
		return m.MixedWith(o, t)
	}
	a := Oklab{}.FromXYZ(c.XYZ())
	b := Oklab{}.FromXYZ(o.XYZ())
	lerp := func(x, y Scalar) Scalar {
		return x + Scalar(t)*(y-x)
	}
	m := Oklab{
		L:     lerp(a.L, b.L),
		A:     lerp(a.A, b.A),
		B:     lerp(a.B, b.B),
		alpha: mixAlpha(a, b, t),
	}
	return back(c, m.XYZ())
}

// mixAlpha interpolates the opacities of a and b.
func mixAlpha(a, b Color, t float64) opacity {
	x, y := opacityOf(a), opacityOf(b)
	return alpha(x + t*(y-x))
}

// opacityOf returns the alpha channel of any colour value.
func opacityOf(c Color) float64 {
	if a, ok := c.(interface{ Alpha() float64 }); ok {
		return a.Alpha()
	}
	return c.XYZ().Alpha()
}

// mixHue returns the hue a fraction t of the way from h1 to h2 along the
// shorter arc.  If one of the colours is achromatic, the hue of the other
// is used.
func mixHue(c1, h1, c2, h2, t, eps float64) float64 {
	switch {
	case math.Abs(c1) < eps && math.Abs(c2) < eps:
		return AchromaticHue
	case math.Abs(c1) < eps:
		return normalizeHue(h2)
	case math.Abs(c2) < eps:
		return normalizeHue(h1)
	}
	d := normalizeHue(h2 - h1)
	if d > 180 {
		d -= 360
	}
	return normalizeHue(h1 + t*d)
}

// Mix changes *c to the colour a fraction t of the way to o.
func Mix[T Model[T]](c *T, o Color, t float64) {
	*c = MixedWith(*c, o, t)
}

// Gradient returns n colours evenly spaced between from and to, both
// included.  For n = 1 the result contains only from.
func Gradient[T Model[T]](from T, to Color, n int) []T {
	if n <= 0 {
		return nil
	}
	res := make([]T, n)
	res[0] = from
	for i := 1; i < n; i++ {
		res[i] = MixedWith(from, to, float64(i)/float64(n-1))
	}
	return res
}

// ClampedTo converts c to the RGB space S and limits all components to
// [0, 1].
func ClampedTo[S Space](c Color) RGB[S] {
	return Convert[RGB[S]](c).Clamped()
}

// Clamped returns c with its RGB channels limited to [0, 1].  The channels
// are taken in the colour's own RGB space, or in sRGB for representations
// which are not tied to an RGB space.  No other operation in this package
// clamps values.
func Clamped[T Model[T]](c T) T {
	if r, ok := any(c).(interface{ Clamped() T }); ok {
		return r.Clamped()
	}
	spec := SRGBSpec
	if s, ok := any(c).(rgbSource); ok {
		spec, _ = s.rgb()
	}
	v := channels(c)
	for i := range v {
		v[i] = clamp(v[i], 0, 1)
	}
	x := xyzFromVector(spec.toXYZ(v), spec.ctx)
	x.alpha = alpha(c.Alpha())
	return back(c, x)
}

// Clamp limits the RGB channels of *c to [0, 1], see [Clamped].
func Clamp[T Model[T]](c *T) {
	*c = Clamped(*c)
}
