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

// Context is the viewing condition attached to tristimulus values: the
// illuminant which defines the reference white, the standard observer, and
// the chromatic adaptation transform used to move colours between whites.
//
// Contexts are plain values.  Fields left at their zero value resolve to
// the defaults: [D65], [CIE1931] and [DefaultCAT].
type Context struct {
	Illuminant WhiteSource
	Observer   Observer
	CAT        *CAT
}

// DefaultContext returns the context with illuminant D65, the CIE 1931
// observer and the default chromatic adaptation transform.
func DefaultContext() Context {
	return Context{Illuminant: D65, Observer: CIE1931, CAT: DefaultCAT()}
}

// resolved returns c with all zero fields replaced by the defaults.
func (c Context) resolved() Context {
	if c.Illuminant == nil {
		c.Illuminant = D65
	}
	if c.CAT == nil {
		c.CAT = DefaultCAT()
	}
	return c
}

// WithIlluminant returns a copy of c which uses the given illuminant.
func (c Context) WithIlluminant(w WhiteSource) Context {
	c.Illuminant = w
	return c
}

// WithObserver returns a copy of c which uses the given observer.
func (c Context) WithObserver(obs Observer) Context {
	c.Observer = obs
	return c
}

// WithCAT returns a copy of c which uses the given adaptation transform.
func (c Context) WithCAT(cat *CAT) Context {
	c.CAT = cat
	return c
}

// WhitePoint returns the reference white of the context as XYZ values,
// normalised to Y = 1.
func (c Context) WhitePoint() [3]float64 {
	c = c.resolved()
	return c.Illuminant.WhitePoint(c.Observer)
}

// ReferenceWhite returns the reference white as a colour in context c.
func (c Context) ReferenceWhite() XYZ {
	return xyzFromVector(c.WhitePoint(), c)
}

// Adaptation returns the transform used by c.
func (c Context) Adaptation() *CAT {
	return c.resolved().CAT
}

// Equal reports whether c and o describe the same viewing condition.
// Illuminants are compared by their white points.
func (c Context) Equal(o Context) bool {
	c, o = c.resolved(), o.resolved()
	return c.Observer == o.Observer &&
		c.CAT == o.CAT &&
		c.Illuminant.WhitePoint(c.Observer) == o.Illuminant.WhitePoint(o.Observer)
}

func (c Context) String() string {
	c = c.resolved()
	return fmt.Sprintf("%s/%s/%s", c.Illuminant.Name(), c.Observer, c.CAT.Name())
}
