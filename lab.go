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

// Lab is a colour in the CIE 1976 L*a*b* space, relative to the reference
// white of its context.  L* ranges from 0 to 100 for colours between black
// and the reference white.
type Lab struct {
	L, A, B Scalar

	ctx   Context
	alpha opacity
}

// NewLab returns the L*a*b* colour with the given components in the
// default context, which has a D65 reference white.
func NewLab[T Number](l, a, b T) Lab {
	return Lab{L: Of(l), A: Of(a), B: Of(b)}
}

// XYZ implements the [Color] interface.
func (c Lab) XYZ() XYZ {
	v := labToXYZ(float64(c.L), float64(c.A), float64(c.B), c.ctx.WhitePoint())
	res := xyzFromVector(v, c.ctx)
	res.alpha = c.alpha
	return res
}

// FromXYZ converts from the hub.  The result uses the context of x.
func (Lab) FromXYZ(x XYZ) Lab {
	L, a, b := xyzToLab(x.vector(), x.ctx.WhitePoint())
	return Lab{L: Scalar(L), A: Scalar(a), B: Scalar(b), ctx: x.ctx, alpha: x.alpha}
}

// Components returns L*, a* and b*.
func (c Lab) Components() []float64 {
	return []float64{float64(c.L), float64(c.A), float64(c.B)}
}

// WithComponents returns a copy of c with L*, a* and b* replaced.
func (c Lab) WithComponents(v ...float64) Lab {
	c.SetComponents(v...)
	return c
}

// SetComponents sets L*, a* and b*.
func (c *Lab) SetComponents(v ...float64) {
	checkComponents("Lab", 3, v)
	c.L, c.A, c.B = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c Lab) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c Lab) WithAlpha(a float64) Lab {
	c.alpha = alpha(a)
	return c
}

// Context returns the viewing context of the colour.
func (c Lab) Context() Context {
	return c.ctx
}

// WithContext returns a copy of c labelled with ctx, without changing
// the component values.
func (c Lab) WithContext(ctx Context) Lab {
	c.ctx = ctx
	return c
}

// AdaptTo returns the corresponding colour relative to the reference white
// of ctx.  If the reference whites agree, only the label changes.
func (c Lab) AdaptTo(ctx Context) Lab {
	if c.ctx.WhitePoint() == ctx.WhitePoint() {
		return c.WithContext(ctx)
	}
	return Lab{}.FromXYZ(c.XYZ().AdaptTo(ctx))
}

// MixedWith returns the colour a fraction t of the way from c to o,
// interpolating L*, a* and b* linearly.  The result has the context of c.
func (c Lab) MixedWith(o Color, t float64) Lab {
	b, ok := o.(Lab)
	if !ok || b.ctx.WhitePoint() != c.ctx.WhitePoint() {
		b = back(c, o.XYZ())
	}
	c.L += Scalar(t) * (b.L - c.L)
	c.A += Scalar(t) * (b.A - c.A)
	c.B += Scalar(t) * (b.B - c.B)
	c.alpha = mixAlpha(c, o, t)
	return c
}

// convertTo implements the direct path to LCh.
func (c Lab) convertTo(dst any) bool {
	switch d := dst.(type) {
	case *LCh:
		*d = c.lch()
		return true
	}
	return false
}

func (c Lab) lch() LCh {
	C, h := polar(float64(c.A), float64(c.B), achromaticThreshold)
	return LCh{L: c.L, C: Scalar(C), H: Scalar(h), ctx: c.ctx, alpha: c.alpha}
}

func (c Lab) String() string {
	return fmt.Sprintf("Lab(%v, %v, %v)", c.L, c.A, c.B)
}

// LCh is the cylindrical form of [Lab]: lightness L*, chroma C*ab and hue
// angle h°ab in degrees.
type LCh struct {
	L, C, H Scalar

	ctx   Context
	alpha opacity
}

// NewLCh returns the LCh colour with the given components in the default
// context.
func NewLCh[T Number](l, c, h T) LCh {
	return LCh{L: Of(l), C: Of(c), H: Of(h)}
}

// XYZ implements the [Color] interface.
func (c LCh) XYZ() XYZ {
	return c.lab().XYZ()
}

// FromXYZ converts from the hub.  The result uses the context of x.
func (LCh) FromXYZ(x XYZ) LCh {
	return Lab{}.FromXYZ(x).lch()
}

func (c LCh) lab() Lab {
	a, b := cartesian(float64(c.C), float64(c.H))
	return Lab{L: c.L, A: Scalar(a), B: Scalar(b), ctx: c.ctx, alpha: c.alpha}
}

// Components returns L*, C* and h.
func (c LCh) Components() []float64 {
	return []float64{float64(c.L), float64(c.C), float64(c.H)}
}

// WithComponents returns a copy of c with L*, C* and h replaced.
func (c LCh) WithComponents(v ...float64) LCh {
	c.SetComponents(v...)
	return c
}

// SetComponents sets L*, C* and h.
func (c *LCh) SetComponents(v ...float64) {
	checkComponents("LCh", 3, v)
	c.L, c.C, c.H = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c LCh) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c LCh) WithAlpha(a float64) LCh {
	c.alpha = alpha(a)
	return c
}

// Context returns the viewing context of the colour.
func (c LCh) Context() Context {
	return c.ctx
}

// WithContext returns a copy of c labelled with ctx, without changing
// the component values.
func (c LCh) WithContext(ctx Context) LCh {
	c.ctx = ctx
	return c
}

// AdaptTo returns the corresponding colour relative to the reference white
// of ctx.
func (c LCh) AdaptTo(ctx Context) LCh {
	if c.ctx.WhitePoint() == ctx.WhitePoint() {
		return c.WithContext(ctx)
	}
	return c.lab().AdaptTo(ctx).lch()
}

// Hue returns the CIE hue angle h°ab in [0, 360).  This is not the same as
// the hue returned by the package-level [Hue] for other representations.
func (c LCh) Hue() float64 {
	return hueOf(float64(c.C), float64(c.H), achromaticThreshold)
}

// Chroma returns C*ab.
func (c LCh) Chroma() float64 {
	return float64(c.C)
}

// WithHueRotatedBy returns c with the hue angle increased by deg degrees.
func (c LCh) WithHueRotatedBy(deg float64) LCh {
	c.H = Scalar(normalizeHue(float64(c.H) + deg))
	return c
}

// MixedWith returns the colour a fraction t of the way from c to o.
// Lightness and chroma are interpolated linearly, the hue along the
// shorter arc.
func (c LCh) MixedWith(o Color, t float64) LCh {
	b, ok := o.(LCh)
	if !ok || b.ctx.WhitePoint() != c.ctx.WhitePoint() {
		b = back(c, o.XYZ())
	}
	c1, c2 := float64(c.C), float64(b.C)
	h := mixHue(c1, float64(c.H), c2, float64(b.H), t, achromaticThreshold)
	c.L += Scalar(t) * (b.L - c.L)
	c.C = Scalar(c1 + t*(c2-c1))
	c.H = Scalar(h)
	c.alpha = mixAlpha(c, o, t)
	return c
}

// convertTo implements the direct path to Lab.
func (c LCh) convertTo(dst any) bool {
	switch d := dst.(type) {
	case *Lab:
		*d = c.lab()
		return true
	}
	return false
}

func (c LCh) String() string {
	return fmt.Sprintf("LCh(%v, %v, %v°)", c.L, c.C, c.H)
}

const (
	labEpsilon = 216.0 / 24389.0 // (6/29)^3
	labKappa   = 24389.0 / 27.0  // (29/3)^3
)

// labToXYZ converts Lab to XYZ using the given white point.
// L is in [0, 100].
func labToXYZ(L, a, b float64, white [3]float64) [3]float64 {
	fy := (L + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200

	return [3]float64{
		labFInv(fx) * white[0],
		labFInv(fy) * white[1],
		labFInv(fz) * white[2],
	}
}

// xyzToLab converts XYZ to Lab using the given white point.
func xyzToLab(xyz, white [3]float64) (L, a, b float64) {
	fx := labF(xyz[0] / white[0])
	fy := labF(xyz[1] / white[1])
	fz := labF(xyz[2] / white[2])

	L = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return L, a, b
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	// 841/108 = (29/6)^2 / 3
	return t*841.0/108.0 + 16.0/116.0
}

func labFInv(f float64) float64 {
	if f > 6.0/29.0 {
		return f * f * f
	}
	// 108/841 = 3 * (6/29)^2
	return (f - 16.0/116.0) * 108.0 / 841.0
}

// polar converts rectangular coordinates to chroma and hue in degrees.
// The hue of a point within eps of the origin is [AchromaticHue].
func polar(a, b, eps float64) (c, h float64) {
	c = math.Hypot(a, b)
	if c < eps {
		return c, AchromaticHue
	}
	return c, normalizeHue(math.Atan2(b, a) * 180 / math.Pi)
}

func cartesian(c, h float64) (a, b float64) {
	s, co := math.Sincos(h * math.Pi / 180)
	return c * co, c * s
}

// normalizeHue maps an angle in degrees to [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// hueOf returns the hue h normalised to [0, 360), or [AchromaticHue] if
// the chroma c is below eps.
func hueOf(c, h, eps float64) float64 {
	if math.Abs(c) < eps || math.IsNaN(h) {
		return AchromaticHue
	}
	return normalizeHue(h)
}
