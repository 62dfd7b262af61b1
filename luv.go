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

// Luv is a colour in the CIE 1976 L*u*v* space, relative to the reference
// white of its context.
type Luv struct {
	L, U, V Scalar

	ctx   Context
	alpha opacity
}

// NewLuv returns the L*u*v* colour with the given components in the
// default context.
func NewLuv[T Number](l, u, v T) Luv {
	return Luv{L: Of(l), U: Of(u), V: Of(v)}
}

// uvPrime returns the CIE 1976 u'v' chromaticity of the XYZ values v.
func uvPrime(v [3]float64) (u, w float64) {
	d := v[0] + 15*v[1] + 3*v[2]
	if d == 0 {
		return 0, 0
	}
	return 4 * v[0] / d, 9 * v[1] / d
}

// XYZ implements the [Color] interface.
func (c Luv) XYZ() XYZ {
	var v [3]float64
	L := float64(c.L)
	if L != 0 {
		white := c.ctx.WhitePoint()
		un, vn := uvPrime(white)
		up := float64(c.U)/(13*L) + un
		vp := float64(c.V)/(13*L) + vn

		var y float64
		if L > labKappa*labEpsilon {
			f := (L + 16) / 116
			y = f * f * f
		} else {
			y = L / labKappa
		}
		y *= white[1]
		if vp != 0 {
			v = [3]float64{
				y * 9 * up / (4 * vp),
				y,
				y * (12 - 3*up - 20*vp) / (4 * vp),
			}
		} else {
			v[1] = y
		}
	}
	res := xyzFromVector(v, c.ctx)
	res.alpha = c.alpha
	return res
}

// FromXYZ converts from the hub.  The result uses the context of x.
func (Luv) FromXYZ(x XYZ) Luv {
	white := x.ctx.WhitePoint()
	v := x.vector()

	yr := v[1] / white[1]
	var L float64
	if yr > labEpsilon {
		L = 116*labF(yr) - 16
	} else {
		L = labKappa * yr
	}
	up, vp := uvPrime(v)
	un, vn := uvPrime(white)
	var u, w float64
	if v[0]+15*v[1]+3*v[2] != 0 {
		u = 13 * L * (up - un)
		w = 13 * L * (vp - vn)
	}
	return Luv{L: Scalar(L), U: Scalar(u), V: Scalar(w), ctx: x.ctx, alpha: x.alpha}
}

// Components returns L*, u* and v*.
func (c Luv) Components() []float64 {
	return []float64{float64(c.L), float64(c.U), float64(c.V)}
}

// WithComponents returns a copy of c with L*, u* and v* replaced.
func (c Luv) WithComponents(v ...float64) Luv {
	c.SetComponents(v...)
	return c
}

// SetComponents sets L*, u* and v*.
func (c *Luv) SetComponents(v ...float64) {
	checkComponents("Luv", 3, v)
	c.L, c.U, c.V = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c Luv) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c Luv) WithAlpha(a float64) Luv {
	c.alpha = alpha(a)
	return c
}

// Context returns the viewing context of the colour.
func (c Luv) Context() Context {
	return c.ctx
}

// WithContext returns a copy of c labelled with ctx, without changing
// the component values.
func (c Luv) WithContext(ctx Context) Luv {
	c.ctx = ctx
	return c
}

// AdaptTo returns the corresponding colour relative to the reference white
// of ctx.  If the reference whites agree, only the label changes.
func (c Luv) AdaptTo(ctx Context) Luv {
	if c.ctx.WhitePoint() == ctx.WhitePoint() {
		return c.WithContext(ctx)
	}
	return Luv{}.FromXYZ(c.XYZ().AdaptTo(ctx))
}

func (c Luv) convertTo(dst any) bool {
	switch d := dst.(type) {
	case *LChuv:
		C, h := polar(float64(c.U), float64(c.V), achromaticThreshold)
		*d = LChuv{L: c.L, C: Scalar(C), H: Scalar(h), ctx: c.ctx, alpha: c.alpha}
		return true
	}
	return false
}

func (c Luv) String() string {
	return fmt.Sprintf("Luv(%v, %v, %v)", c.L, c.U, c.V)
}

// LChuv is the cylindrical form of [Luv].  H is the hue angle h°uv in
// degrees.
type LChuv struct {
	L, C, H Scalar

	ctx   Context
	alpha opacity
}

// NewLChuv returns the LChuv colour with the given components in the
// default context.
func NewLChuv[T Number](l, c, h T) LChuv {
	return LChuv{L: Of(l), C: Of(c), H: Of(h)}
}

func (c LChuv) luv() Luv {
	u, v := cartesian(float64(c.C), float64(c.H))
	return Luv{L: c.L, U: Scalar(u), V: Scalar(v), ctx: c.ctx, alpha: c.alpha}
}

// XYZ implements the [Color] interface.
func (c LChuv) XYZ() XYZ {
	return c.luv().XYZ()
}

// FromXYZ converts from the hub.  The result uses the context of x.
func (LChuv) FromXYZ(x XYZ) LChuv {
	var res LChuv
	Luv{}.FromXYZ(x).convertTo(&res)
	return res
}

// Components returns L*, C*uv and h.
func (c LChuv) Components() []float64 {
	return []float64{float64(c.L), float64(c.C), float64(c.H)}
}

// WithComponents returns a copy of c with L*, C*uv and h replaced.
func (c LChuv) WithComponents(v ...float64) LChuv {
	c.SetComponents(v...)
	return c
}

// SetComponents sets L*, C*uv and h.
func (c *LChuv) SetComponents(v ...float64) {
	checkComponents("LChuv", 3, v)
	c.L, c.C, c.H = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c LChuv) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c LChuv) WithAlpha(a float64) LChuv {
	c.alpha = alpha(a)
	return c
}

// Context returns the viewing context of the colour.
func (c LChuv) Context() Context {
	return c.ctx
}

// WithContext returns a copy of c labelled with ctx, without changing
// the component values.
func (c LChuv) WithContext(ctx Context) LChuv {
	c.ctx = ctx
	return c
}

// AdaptTo returns the corresponding colour relative to the reference white
// of ctx.
func (c LChuv) AdaptTo(ctx Context) LChuv {
	if c.ctx.WhitePoint() == ctx.WhitePoint() {
		return c.WithContext(ctx)
	}
	var res LChuv
	c.luv().AdaptTo(ctx).convertTo(&res)
	return res
}

// Hue returns the hue angle h°uv in [0, 360).
func (c LChuv) Hue() float64 {
	return hueOf(float64(c.C), float64(c.H), achromaticThreshold)
}

// Chroma returns C*uv.
func (c LChuv) Chroma() float64 {
	return float64(c.C)
}

// WithHueRotatedBy returns c with the hue angle increased by deg degrees.
func (c LChuv) WithHueRotatedBy(deg float64) LChuv {
	c.H = Scalar(normalizeHue(float64(c.H) + deg))
	return c
}

func (c LChuv) convertTo(dst any) bool {
	switch d := dst.(type) {
	case *Luv:
		*d = c.luv()
		return true
	}
	return false
}

func (c LChuv) String() string {
	return fmt.Sprintf("LChuv(%v, %v, %v°)", c.L, c.C, c.H)
}
