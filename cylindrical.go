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

// HSL is a colour given by hue, saturation and lightness, computed from the
// encoded values of the RGB space S.  H is in degrees, S and L are in
// [0, 1] for colours in gamut.
//
// The hue of HSL is a property of the RGB space and differs from the
// perceptual hue returned by [Hue] for other representations.
type HSL[S Space] struct {
	H, S, L Scalar

	alpha opacity
}

// NewHSL returns the HSL colour with the given components.
func NewHSL[S Space, T Number](h, s, l T) HSL[S] {
	return HSL[S]{H: Of(h), S: Of(s), L: Of(l)}
}

// rgbHue computes the hexcone hue of the RGB values v, where hi and lo are
// the largest and smallest component.
func rgbHue(v [3]float64, hi, lo float64) float64 {
	d := hi - lo
	if d == 0 {
		return AchromaticHue
	}
	var h float64
	switch hi {
	case v[0]:
		h = (v[1] - v[2]) / d
	case v[1]:
		h = (v[2]-v[0])/d + 2
	default:
		h = (v[0]-v[1])/d + 4
	}
	return normalizeHue(60 * h)
}

// hueToRGB returns the RGB values of the fully saturated colour with hue
// h, scaled to chroma c and offset by m.
func hueToRGB(h, c, m float64) [3]float64 {
	hp := normalizeHue(h) / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return [3]float64{r + m, g + m, b + m}
}

func minMax(v [3]float64) (lo, hi float64) {
	return min(v[0], v[1], v[2]), max(v[0], v[1], v[2])
}

// hslRange is the largest chroma possible at lightness l.  It vanishes for
// l = 0 and l = 1, where S stores the chroma itself so that out-of-gamut
// values like RGB(1.2, 0.8, 1.0) survive the conversion.
func hslRange(l float64) float64 {
	return 1 - math.Abs(2*l-1)
}

func hslFromRGB[S Space](c RGB[S]) HSL[S] {
	v := c.vector()
	lo, hi := minMax(v)
	l := (hi + lo) / 2
	s := hi - lo
	if r := hslRange(l); s != 0 && r != 0 {
		s /= r
	}
	return HSL[S]{H: Scalar(rgbHue(v, hi, lo)), S: Scalar(s), L: Scalar(l), alpha: c.alpha}
}

// RGB converts c to the underlying RGB representation.
func (c HSL[S]) RGB() RGB[S] {
	l, s := float64(c.L), float64(c.S)
	chroma := s
	if r := hslRange(l); r != 0 {
		chroma *= r
	}
	return rgbFromVector[S](hueToRGB(float64(c.H), chroma, l-chroma/2), c.alpha)
}

// Spec returns the specification of the RGB space.
func (c HSL[S]) Spec() *RGBSpec {
	return specOf[S]()
}

// XYZ implements the [Color] interface.
func (c HSL[S]) XYZ() XYZ {
	return c.RGB().XYZ()
}

// FromXYZ converts from the hub.
func (HSL[S]) FromXYZ(x XYZ) HSL[S] {
	return hslFromRGB(RGB[S]{}.FromXYZ(x))
}

func (c HSL[S]) rgb() (*RGBSpec, [3]float64) {
	return c.RGB().rgb()
}

// Components returns H, S and L.
func (c HSL[S]) Components() []float64 {
	return []float64{float64(c.H), float64(c.S), float64(c.L)}
}

// WithComponents returns a copy of c with H, S and L replaced.
func (c HSL[S]) WithComponents(v ...float64) HSL[S] {
	c.SetComponents(v...)
	return c
}

// SetComponents sets H, S and L.
func (c *HSL[S]) SetComponents(v ...float64) {
	checkComponents("HSL", 3, v)
	c.H, c.S, c.L = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c HSL[S]) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c HSL[S]) WithAlpha(a float64) HSL[S] {
	c.alpha = alpha(a)
	return c
}

// Hue returns the stored hue in [0, 360), or [AchromaticHue] if the
// saturation is zero.
func (c HSL[S]) Hue() float64 {
	return hueOf(float64(c.S), float64(c.H), achromaticThreshold)
}

// WithHueRotatedBy returns c with the hue increased by deg degrees.
func (c HSL[S]) WithHueRotatedBy(deg float64) HSL[S] {
	c.H = Scalar(normalizeHue(float64(c.H) + deg))
	return c
}

func (c HSL[S]) convertTo(dst any) bool {
	if d, ok := dst.(*RGB[S]); ok {
		*d = c.RGB()
		return true
	}
	return c.RGB().convertTo(dst)
}

func (c HSL[S]) String() string {
	return fmt.Sprintf("HSL[%s](%v°, %v, %v)", specOf[S]().name, c.H, c.S, c.L)
}

// HSV is a colour given by hue, saturation and value, computed from the
// encoded values of the RGB space S.  Like for [HSL], the hue is a
// property of the RGB space.
type HSV[S Space] struct {
	H, S, V Scalar

	alpha opacity
}

// NewHSV returns the HSV colour with the given components.
func NewHSV[S Space, T Number](h, s, v T) HSV[S] {
	return HSV[S]{H: Of(h), S: Of(s), V: Of(v)}
}

func hsvFromRGB[S Space](c RGB[S]) HSV[S] {
	v := c.vector()
	lo, hi := minMax(v)
	// For V = 0 the saturation is undefined and S stores the chroma.
	s := hi - lo
	if s != 0 && hi != 0 {
		s /= hi
	}
	return HSV[S]{H: Scalar(rgbHue(v, hi, lo)), S: Scalar(s), V: Scalar(hi), alpha: c.alpha}
}

// RGB converts c to the underlying RGB representation.
func (c HSV[S]) RGB() RGB[S] {
	v := float64(c.V)
	chroma := float64(c.S)
	if v != 0 {
		chroma *= v
	}
	return rgbFromVector[S](hueToRGB(float64(c.H), chroma, v-chroma), c.alpha)
}

// Spec returns the specification of the RGB space.
func (c HSV[S]) Spec() *RGBSpec {
	return specOf[S]()
}

// XYZ implements the [Color] interface.
func (c HSV[S]) XYZ() XYZ {
	return c.RGB().XYZ()
}

// FromXYZ converts from the hub.
func (HSV[S]) FromXYZ(x XYZ) HSV[S] {
	return hsvFromRGB(RGB[S]{}.FromXYZ(x))
}

func (c HSV[S]) rgb() (*RGBSpec, [3]float64) {
	return c.RGB().rgb()
}

// Components returns H, S and V.
func (c HSV[S]) Components() []float64 {
	return []float64{float64(c.H), float64(c.S), float64(c.V)}
}

// WithComponents returns a copy of c with H, S and V replaced.
func (c HSV[S]) WithComponents(v ...float64) HSV[S] {
	c.SetComponents(v...)
	return c
}

// SetComponents sets H, S and V.
func (c *HSV[S]) SetComponents(v ...float64) {
	checkComponents("HSV", 3, v)
	c.H, c.S, c.V = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c HSV[S]) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c HSV[S]) WithAlpha(a float64) HSV[S] {
	c.alpha = alpha(a)
	return c
}

// Hue returns the stored hue in [0, 360), or [AchromaticHue] if the
// saturation is zero.
func (c HSV[S]) Hue() float64 {
	return hueOf(float64(c.S), float64(c.H), achromaticThreshold)
}

// WithHueRotatedBy returns c with the hue increased by deg degrees.
func (c HSV[S]) WithHueRotatedBy(deg float64) HSV[S] {
	c.H = Scalar(normalizeHue(float64(c.H) + deg))
	return c
}

func (c HSV[S]) convertTo(dst any) bool {
	if d, ok := dst.(*RGB[S]); ok {
		*d = c.RGB()
		return true
	}
	return c.RGB().convertTo(dst)
}

func (c HSV[S]) String() string {
	return fmt.Sprintf("HSV[%s](%v°, %v, %v)", specOf[S]().name, c.H, c.S, c.V)
}

// HWB is a colour given by hue, whiteness and blackness, computed from the
// encoded values of the RGB space S.
type HWB[S Space] struct {
	H, W, B Scalar

	alpha opacity
}

// NewHWB returns the HWB colour with the given components.
func NewHWB[S Space, T Number](h, w, b T) HWB[S] {
	return HWB[S]{H: Of(h), W: Of(w), B: Of(b)}
}

func hwbFromRGB[S Space](c RGB[S]) HWB[S] {
	v := c.vector()
	lo, hi := minMax(v)
	return HWB[S]{H: Scalar(rgbHue(v, hi, lo)), W: Scalar(lo), B: Scalar(1 - hi), alpha: c.alpha}
}

// RGB converts c to the underlying RGB representation.  If whiteness and
// blackness add up to more than 1, they are scaled down proportionally.
func (c HWB[S]) RGB() RGB[S] {
	w, b := float64(c.W), float64(c.B)
	if w+b >= 1 {
		g := w / (w + b)
		return rgbFromVector[S]([3]float64{g, g, g}, c.alpha)
	}
	v := 1 - b
	chroma := v - w
	return rgbFromVector[S](hueToRGB(float64(c.H), chroma, w), c.alpha)
}

// Spec returns the specification of the RGB space.
func (c HWB[S]) Spec() *RGBSpec {
	return specOf[S]()
}

// XYZ implements the [Color] interface.
func (c HWB[S]) XYZ() XYZ {
	return c.RGB().XYZ()
}

// FromXYZ converts from the hub.
func (HWB[S]) FromXYZ(x XYZ) HWB[S] {
	return hwbFromRGB(RGB[S]{}.FromXYZ(x))
}

func (c HWB[S]) rgb() (*RGBSpec, [3]float64) {
	return c.RGB().rgb()
}

// Components returns H, W and B.
func (c HWB[S]) Components() []float64 {
	return []float64{float64(c.H), float64(c.W), float64(c.B)}
}

// WithComponents returns a copy of c with H, W and B replaced.
func (c HWB[S]) WithComponents(v ...float64) HWB[S] {
	c.SetComponents(v...)
	return c
}

// SetComponents sets H, W and B.
func (c *HWB[S]) SetComponents(v ...float64) {
	checkComponents("HWB", 3, v)
	c.H, c.W, c.B = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c HWB[S]) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c HWB[S]) WithAlpha(a float64) HWB[S] {
	c.alpha = alpha(a)
	return c
}

// Hue returns the stored hue in [0, 360), or [AchromaticHue] for greys.
func (c HWB[S]) Hue() float64 {
	return hueOf(max(0, 1-float64(c.W)-float64(c.B)), float64(c.H), achromaticThreshold)
}

// WithHueRotatedBy returns c with the hue increased by deg degrees.
func (c HWB[S]) WithHueRotatedBy(deg float64) HWB[S] {
	c.H = Scalar(normalizeHue(float64(c.H) + deg))
	return c
}

func (c HWB[S]) convertTo(dst any) bool {
	if d, ok := dst.(*RGB[S]); ok {
		*d = c.RGB()
		return true
	}
	return c.RGB().convertTo(dst)
}

func (c HWB[S]) String() string {
	return fmt.Sprintf("HWB[%s](%v°, %v, %v)", specOf[S]().name, c.H, c.W, c.B)
}

// HSI is a colour given by hue, saturation and intensity, computed from
// the encoded values of the RGB space S.  The intensity I is the mean of
// the three channels and S = 1 - min(R, G, B)/I.  Unlike for [HSL] and
// [HSV], H is the geometric angle of the colour around the grey axis of
// the RGB cube.
type HSI[S Space] struct {
	H, S, I Scalar

	alpha opacity
}

// NewHSI returns the HSI colour with the given components.
func NewHSI[S Space, T Number](h, s, i T) HSI[S] {
	return HSI[S]{H: Of(h), S: Of(s), I: Of(i)}
}

func hsiFromRGB[S Space](c RGB[S]) HSI[S] {
	v := c.vector()
	lo, hi := minMax(v)
	i := (v[0] + v[1] + v[2]) / 3

	h := AchromaticHue
	if hi != lo {
		h = normalizeHue(math.Atan2(math.Sqrt(3)*(v[1]-v[2]), 2*v[0]-v[1]-v[2]) * 180 / math.Pi)
	}
	// For I = 0 S stores the distance of the smallest channel from the mean.
	s := i - lo
	if s != 0 && i != 0 {
		s /= i
	}
	return HSI[S]{H: Scalar(h), S: Scalar(s), I: Scalar(i), alpha: c.alpha}
}

// RGB converts c to the underlying RGB representation.
func (c HSI[S]) RGB() RGB[S] {
	i, d := float64(c.I), float64(c.S)
	if i != 0 {
		d *= i
	}
	if d == 0 {
		return rgbFromVector[S]([3]float64{i, i, i}, c.alpha)
	}

	// u points from the grey axis towards the hue; its smallest entry is
	// between -1 and -1/2.
	h := float64(c.H) * math.Pi / 180
	u := [3]float64{
		math.Cos(h),
		math.Cos(h - 2*math.Pi/3),
		math.Cos(h + 2*math.Pi/3),
	}
	f := d / -min(u[0], u[1], u[2])
	return rgbFromVector[S]([3]float64{i + f*u[0], i + f*u[1], i + f*u[2]}, c.alpha)
}

// Spec returns the specification of the RGB space.
func (c HSI[S]) Spec() *RGBSpec {
	return specOf[S]()
}

// XYZ implements the [Color] interface.
func (c HSI[S]) XYZ() XYZ {
	return c.RGB().XYZ()
}

// FromXYZ converts from the hub.
func (HSI[S]) FromXYZ(x XYZ) HSI[S] {
	return hsiFromRGB(RGB[S]{}.FromXYZ(x))
}

func (c HSI[S]) rgb() (*RGBSpec, [3]float64) {
	return c.RGB().rgb()
}

// Components returns H, S and I.
func (c HSI[S]) Components() []float64 {
	return []float64{float64(c.H), float64(c.S), float64(c.I)}
}

// WithComponents returns a copy of c with H, S and I replaced.
func (c HSI[S]) WithComponents(v ...float64) HSI[S] {
	c.SetComponents(v...)
	return c
}

// SetComponents sets H, S and I.
func (c *HSI[S]) SetComponents(v ...float64) {
	checkComponents("HSI", 3, v)
	c.H, c.S, c.I = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c HSI[S]) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c HSI[S]) WithAlpha(a float64) HSI[S] {
	c.alpha = alpha(a)
	return c
}

// Hue returns the stored hue in [0, 360), or [AchromaticHue] if the
// saturation is zero.
func (c HSI[S]) Hue() float64 {
	return hueOf(float64(c.S), float64(c.H), achromaticThreshold)
}

// WithHueRotatedBy returns c with the hue increased by deg degrees.
func (c HSI[S]) WithHueRotatedBy(deg float64) HSI[S] {
	c.H = Scalar(normalizeHue(float64(c.H) + deg))
	return c
}

func (c HSI[S]) convertTo(dst any) bool {
	if d, ok := dst.(*RGB[S]); ok {
		*d = c.RGB()
		return true
	}
	return c.RGB().convertTo(dst)
}

func (c HSI[S]) String() string {
	return fmt.Sprintf("HSI[%s](%v°, %v, %v)", specOf[S]().name, c.H, c.S, c.I)
}
