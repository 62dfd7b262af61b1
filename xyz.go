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

// XYZ is a colour given by CIE XYZ tristimulus values, relative to the
// reference white of its context.  The reference white has Y = 1.
//
// XYZ is the hub through which all conversions between colour
// representations pass.  The zero context is the default context, see
// [Context].
type XYZ struct {
	X, Y, Z Scalar

	ctx   Context
	alpha opacity
}

// NewXYZ returns the colour with the given tristimulus values in the
// default context.
func NewXYZ[T Number](x, y, z T) XYZ {
	return XYZ{X: Of(x), Y: Of(y), Z: Of(z)}
}

func xyzFromVector(v [3]float64, ctx Context) XYZ {
	return XYZ{X: Scalar(v[0]), Y: Scalar(v[1]), Z: Scalar(v[2]), ctx: ctx}
}

func (c XYZ) vector() [3]float64 {
	return [3]float64{float64(c.X), float64(c.Y), float64(c.Z)}
}

// XYZ implements the [Color] interface.
func (c XYZ) XYZ() XYZ {
	return c
}

// FromXYZ returns x unchanged.
func (XYZ) FromXYZ(x XYZ) XYZ {
	return x
}

// Components returns X, Y and Z.
func (c XYZ) Components() []float64 {
	return []float64{float64(c.X), float64(c.Y), float64(c.Z)}
}

// WithComponents returns a copy of c with X, Y and Z replaced.
func (c XYZ) WithComponents(v ...float64) XYZ {
	c.SetComponents(v...)
	return c
}

// SetComponents sets X, Y and Z.
func (c *XYZ) SetComponents(v ...float64) {
	checkComponents("XYZ", 3, v)
	c.X, c.Y, c.Z = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c XYZ) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c XYZ) WithAlpha(a float64) XYZ {
	c.alpha = alpha(a)
	return c
}

// Context returns the viewing context of the colour.
func (c XYZ) Context() Context {
	return c.ctx
}

// WithContext returns a copy of c which is labelled with the context ctx.
// The tristimulus values are not changed; use [XYZ.AdaptTo] to transform
// them to a new reference white.
func (c XYZ) WithContext(ctx Context) XYZ {
	c.ctx = ctx
	return c
}

// AdaptTo returns the corresponding colour in the context ctx, computed
// with the adaptation transform of ctx.
func (c XYZ) AdaptTo(ctx Context) XYZ {
	res := ctx.Adaptation().Adapt(c, c.ctx.ReferenceWhite(), ctx.ReferenceWhite())
	res.ctx = ctx
	return res
}

// Luminance returns Y.
func (c XYZ) Luminance() float64 {
	return float64(c.Y)
}

// Chromaticity returns the xy chromaticity coordinates of c.
// Black has chromaticity (0, 0).
func (c XYZ) Chromaticity() Chromaticity {
	sum := c.X + c.Y + c.Z
	if sum == 0 {
		return Chromaticity{}
	}
	return Chromaticity{X: float64(c.X / sum), Y: float64(c.Y / sum)}
}

// WithLuminance returns the colour with the same chromaticity as c and
// luminance y.  If c is black, only Y is set.
func (c XYZ) WithLuminance(y float64) XYZ {
	if c.Y != 0 {
		f := Scalar(y) / c.Y
		c.X *= f
		c.Z *= f
	}
	c.Y = Scalar(y)
	return c
}

// WithLuminanceScaledBy returns c with all tristimulus values multiplied
// by f.
func (c XYZ) WithLuminanceScaledBy(f float64) XYZ {
	c.X *= Scalar(f)
	c.Y *= Scalar(f)
	c.Z *= Scalar(f)
	return c
}

// LMS returns the cone response of c, computed with the adaptation
// transform of its context.
func (c XYZ) LMS() LMS {
	return LMS{}.FromXYZ(c)
}

func (c XYZ) String() string {
	return fmt.Sprintf("XYZ(%v, %v, %v)", c.X, c.Y, c.Z)
}

// XyY is a colour given by its xy chromaticity coordinates Cx, Cy and its
// luminance Y.
type XyY struct {
	Cx, Cy, Y Scalar

	ctx   Context
	alpha opacity
}

// NewXyY returns the colour with chromaticity (x, y) and luminance lum in
// the default context.
func NewXyY[T Number](x, y, lum T) XyY {
	return XyY{Cx: Of(x), Cy: Of(y), Y: Of(lum)}
}

// XYZ implements the [Color] interface.
func (c XyY) XYZ() XYZ {
	xy := Chromaticity{X: float64(c.Cx), Y: float64(c.Cy)}
	res := xyzFromVector(xy.XYZ(float64(c.Y)), c.ctx)
	res.alpha = c.alpha
	return res
}

// FromXYZ converts from the hub.
func (XyY) FromXYZ(x XYZ) XyY {
	xy := x.Chromaticity()
	return XyY{
		Cx:    Scalar(xy.X),
		Cy:    Scalar(xy.Y),
		Y:     x.Y,
		ctx:   x.ctx,
		alpha: x.alpha,
	}
}

// Components returns x, y and Y.
func (c XyY) Components() []float64 {
	return []float64{float64(c.Cx), float64(c.Cy), float64(c.Y)}
}

// WithComponents returns a copy of c with x, y and Y replaced.
func (c XyY) WithComponents(v ...float64) XyY {
	c.SetComponents(v...)
	return c
}

// SetComponents sets x, y and Y.
func (c *XyY) SetComponents(v ...float64) {
	checkComponents("xyY", 3, v)
	c.Cx, c.Cy, c.Y = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c XyY) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c XyY) WithAlpha(a float64) XyY {
	c.alpha = alpha(a)
	return c
}

// Context returns the viewing context of the colour.
func (c XyY) Context() Context {
	return c.ctx
}

// WithContext returns a copy of c labelled with ctx, without changing
// the component values.
func (c XyY) WithContext(ctx Context) XyY {
	c.ctx = ctx
	return c
}

// Luminance returns Y.
func (c XyY) Luminance() float64 {
	return float64(c.Y)
}

// Chromaticity returns the stored chromaticity coordinates.
func (c XyY) Chromaticity() Chromaticity {
	return Chromaticity{X: float64(c.Cx), Y: float64(c.Cy)}
}

// WithLuminance returns c with the luminance replaced.
func (c XyY) WithLuminance(y float64) XyY {
	c.Y = Scalar(y)
	return c
}

func (c XyY) String() string {
	return fmt.Sprintf("xyY(%v, %v, %v)", c.Cx, c.Cy, c.Y)
}

// LMS is a cone response, obtained from XYZ with the matrix of the
// adaptation transform of its context.
type LMS struct {
	L, M, S Scalar

	ctx   Context
	alpha opacity
}

// NewLMS returns the cone response with the given components in the
// default context.
func NewLMS[T Number](l, m, s T) LMS {
	return LMS{L: Of(l), M: Of(m), S: Of(s)}
}

// XYZ implements the [Color] interface.
func (c LMS) XYZ() XYZ {
	v := [3]float64{float64(c.L), float64(c.M), float64(c.S)}
	res := xyzFromVector(c.ctx.Adaptation().Inverse().Apply(v), c.ctx)
	res.alpha = c.alpha
	return res
}

// FromXYZ converts from the hub.
func (LMS) FromXYZ(x XYZ) LMS {
	v := x.ctx.Adaptation().Matrix().Apply(x.vector())
	return LMS{
		L:     Scalar(v[0]),
		M:     Scalar(v[1]),
		S:     Scalar(v[2]),
		ctx:   x.ctx,
		alpha: x.alpha,
	}
}

// Components returns L, M and S.
func (c LMS) Components() []float64 {
	return []float64{float64(c.L), float64(c.M), float64(c.S)}
}

// WithComponents returns a copy of c with L, M and S replaced.
func (c LMS) WithComponents(v ...float64) LMS {
	c.SetComponents(v...)
	return c
}

// SetComponents sets L, M and S.
func (c *LMS) SetComponents(v ...float64) {
	checkComponents("LMS", 3, v)
	c.L, c.M, c.S = Scalar(v[0]), Scalar(v[1]), Scalar(v[2])
}

// Alpha returns the opacity of the colour.
func (c LMS) Alpha() float64 {
	return c.alpha.value()
}

// WithAlpha returns a copy of c with the given opacity.
func (c LMS) WithAlpha(a float64) LMS {
	c.alpha = alpha(a)
	return c
}

// Context returns the viewing context of the colour.
func (c LMS) Context() Context {
	return c.ctx
}

// WithContext returns a copy of c labelled with ctx, without changing
// the component values.  The adaptation transform of ctx determines how
// the components are read.
func (c LMS) WithContext(ctx Context) LMS {
	c.ctx = ctx
	return c
}

func (c LMS) String() string {
	return fmt.Sprintf("LMS(%v, %v, %v)", c.L, c.M, c.S)
}
